package main

import (
	"strings"

	"github.com/go-dwm/dwm/drawadapter"
	"github.com/BurntSushi/xgbutil/icccm"
	xp "github.com/BurntSushi/xgb/xproto"
)

// drawAdapter is the one Draw Adapter instance every monitor's bar shares;
// initDrawing creates it at the root window's width and resizeBar re-sizes
// it to each bar's width.
// Mirrors dwm.c's single process-wide Drw *drw.
var drawAdapter *drawadapter.Adapter

var schemeNormal, schemeSelected, schemeUrgent drawadapter.Scheme

// initDrawing parses config.go's hex color scheme once and creates the
// shared Draw Adapter instance, grounded on dwm.c's setup()'s drw_create +
// scheme-array construction.
func initDrawing() error {
	var err error
	schemeNormal, err = buildScheme(cfg.Normal)
	if err != nil {
		return err
	}
	schemeSelected, err = buildScheme(cfg.Selected)
	if err != nil {
		return err
	}
	schemeUrgent, err = buildScheme(cfg.Urgent)
	if err != nil {
		return err
	}
	drawAdapter, err = drawadapter.New(xu, rootWin, screenW, cfg.BarHeight, cfg.Fonts)
	return err
}

func buildScheme(s scheme) (drawadapter.Scheme, error) {
	fg, err := drawadapter.ColorCreate(s.Fg)
	if err != nil {
		return drawadapter.Scheme{}, err
	}
	bg, err := drawadapter.ColorCreate(s.Bg)
	if err != nil {
		return drawadapter.Scheme{}, err
	}
	border, err := drawadapter.ColorCreate(s.Border)
	if err != nil {
		return drawadapter.Scheme{}, err
	}
	return drawadapter.Scheme{Fg: fg, Bg: bg, Border: border}, nil
}

// createBar creates m's bar window: an override-redirect InputOutput window
// spanning the monitor's width at the configured height, either above or
// below the work area. Mirrors dwm.c's updatebars.
func createBar(m *monitor) error {
	win, err := xp.NewWindowId(xu.Conn())
	if err != nil {
		return err
	}
	setup := xp.Setup(xu.Conn())
	screen := setup.Roots[0]
	err = xp.CreateWindowChecked(
		xu.Conn(), screen.RootDepth, win, rootWin,
		int16(m.screenArea.X), int16(m.barY), uint16(m.screenArea.W), uint16(cfg.BarHeight), 0,
		xp.WindowClassInputOutput, screen.RootVisual,
		xp.CwOverrideRedirect|xp.CwBackPixel|xp.CwEventMask,
		[]uint32{1, screen.BlackPixel, xp.EventMaskExposure},
	).Check()
	if err != nil {
		return err
	}
	m.barWin = win
	return xp.MapWindowChecked(xu.Conn(), win).Check()
}

func resizeBar(m *monitor) {
	if m.barWin == 0 {
		return
	}
	mask := xp.ConfigWindowX | xp.ConfigWindowY | xp.ConfigWindowWidth | xp.ConfigWindowHeight
	values := []uint32{uint32(int32(m.screenArea.X)), uint32(int32(m.barY)), uint32(m.screenArea.W), uint32(cfg.BarHeight)}
	check(xp.ConfigureWindowChecked(xu.Conn(), m.barWin, mask, values))
	drawAdapter.Resize(m.screenArea.W, cfg.BarHeight)
}

func drawBars() {
	for m := monStart; m != nil; m = m.next {
		drawBar(m)
	}
}

// drawBar composes m's bar: tag occupancy squares, the current layout
// symbol, the selected client's title, and (on selmon only) status text,
// then maps the composed pixmap onto the bar window. Mirrors dwm.c's
// drawbar, §3.7's Bar Presenter responsibility.
func drawBar(m *monitor) {
	if !m.showBar || drawAdapter == nil {
		return
	}

	occupied, urgent := tagBits(m)
	x := 0
	for i, name := range cfg.Tags {
		w := drawAdapter.TextWidth(name)
		selected := m.tagset[m.seltags]&(1<<uint(i)) != 0
		if urgent&(1<<uint(i)) != 0 {
			drawAdapter.SetScheme(schemeUrgent)
		} else {
			setSchemeFor(selected)
		}
		drawAdapter.Text(x, 0, w, cfg.BarHeight, name, selected)
		if occupied&(1<<uint(i)) != 0 {
			filled := m.sel != nil && m.sel.tags&(1<<uint(i)) != 0
			drawAdapter.Rect(x+1, 1, w/6, w/6, filled, urgent&(1<<uint(i)) != 0, selected)
		}
		x += w
	}

	ltw := drawAdapter.TextWidth(m.ltSymbol)
	setSchemeFor(false)
	drawAdapter.Text(x, 0, ltw, cfg.BarHeight, m.ltSymbol, false)
	x += ltw

	statusW := 0
	if m == selmon {
		status := barStatus()
		statusW = drawAdapter.TextWidth(status)
		drawAdapter.Text(m.screenArea.W-statusW, 0, statusW, cfg.BarHeight, status, false)
	}

	titleW := m.screenArea.W - x - statusW
	if titleW > 0 {
		if m.sel != nil {
			setSchemeFor(m == selmon)
			drawAdapter.Text(x, 0, titleW, cfg.BarHeight, m.sel.name, m == selmon)
		} else {
			setSchemeFor(false)
			drawAdapter.Text(x, 0, titleW, cfg.BarHeight, "", false)
		}
	}

	drawAdapter.Map(m.barWin, 0, 0, m.screenArea.W, cfg.BarHeight)
}

func setSchemeFor(selected bool) {
	if selected {
		drawAdapter.SetScheme(schemeSelected)
	} else {
		drawAdapter.SetScheme(schemeNormal)
	}
}

func tagBits(m *monitor) (occupied, urgent uint32) {
	for c := m.clients; c != nil; c = c.next {
		occupied |= c.tags
		if c.isUrgent {
			urgent |= c.tags
		}
	}
	return
}

// barStatus is the text shown at the right edge of selmon's bar. The Bar
// Presenter reads it rather than generating it — status text generation is
// explicitly out of scope (spec.md §1) — so this returns the root window's
// WM_NAME (set with xsetroot -name, dwm's usual status mechanism), or the
// placeholder "dwm-<version>" while that is unset or empty.
func barStatus() string {
	name, err := rootWindowName()
	if err != nil || name == "" {
		return "dwm-" + version
	}
	return name
}

func rootWindowName() (string, error) {
	return icccm.WmNameGet(xu, rootWin)
}

// barClickTarget classifies an x coordinate on m's bar into the click enum
// input.go's button dispatch needs. Mirrors dwm.c's buttonpress's bar-area
// arithmetic.
func barClickTarget(m *monitor, x int) (click, uint32) {
	cur := 0
	for i, name := range cfg.Tags {
		w := drawAdapter.TextWidth(name)
		cur += w
		if x < cur {
			return clkTagBar, 1 << uint(i)
		}
	}
	ltw := drawAdapter.TextWidth(m.ltSymbol)
	if x < cur+ltw {
		return clkLtSymbol, 0
	}
	cur += ltw
	if x > m.screenArea.W-drawAdapter.TextWidth(barStatus()) {
		return clkStatusText, 0
	}
	return clkWinTitle, 0
}

func fmtTagMask(tags uint32) string {
	var names []string
	for i, name := range cfg.Tags {
		if tags&(1<<uint(i)) != 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}
