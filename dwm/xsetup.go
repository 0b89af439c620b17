package main

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/icccm"
	xp "github.com/BurntSushi/xgb/xproto"
)

// xu is the xgbutil handle every icccm/ewmh/xprop call in this package takes.
// screenW/screenH are the root window's pixel dimensions, queried at startup
// and refreshed when the root window is resized; applySizeHints and the interactive move/resize loop clamp against
// them the way dwm.c clamps against sw/sh.
var (
	xu   *xgbutil.XUtil
	rootWin xp.Window

	screenW int
	screenH int
)

// becomeTheWM asks the X server for SubstructureRedirect on the root window.
// A BadAccess reply means another window manager already holds it; this is
// the one failure dwm.c treats as fatal via its own die(), mirrored here by
// taowm's becomeTheWM (xinit.go).
func becomeTheWM() error {
	mask := uint32(xp.EventMaskSubstructureRedirect |
		xp.EventMaskSubstructureNotify |
		xp.EventMaskButtonPress |
		xp.EventMaskPointerMotion |
		xp.EventMaskEnterWindow |
		xp.EventMaskLeaveWindow |
		xp.EventMaskStructureNotify |
		xp.EventMaskPropertyChange)
	err := xp.ChangeWindowAttributesChecked(xu.Conn(), rootWin, xp.CwEventMask, []uint32{mask}).Check()
	if err != nil {
		if _, ok := err.(xp.AccessError); ok {
			return fmt.Errorf("another window manager is already running")
		}
		return err
	}
	return nil
}

// setupDisplay opens the connection and records the root window and screen
// dimensions.
func setupDisplay() error {
	var err error
	xu, err = xgbutil.NewConn()
	if err != nil {
		return fmt.Errorf("open display: %w", err)
	}
	rootWin = xu.RootWin()

	setup := xp.Setup(xu.Conn())
	screen := setup.Roots[0]
	screenW = int(screen.WidthInPixels)
	screenH = int(screen.HeightInPixels)
	return nil
}

// updateGeometry (re)builds the monitor list from the current Xinerama
// topology, migrating clients off monitors that disappeared onto the first
// monitor in the list, and creating/destroying monitor structs to match.
// Mirrors dwm.c's updategeom.
func updateGeometry() error {
	rects, err := queryOutputRects()
	if err != nil {
		return err
	}

	n := 0
	for m := monStart; m != nil; m = m.next {
		n++
	}

	if n <= len(rects) {
		for i := 0; i < len(rects)-n; i++ {
			m := newMonitor()
			appendMonitor(m)
		}
	} else {
		for n > len(rects) {
			m := lastMonitor()
			for m.clients != nil {
				c := m.clients
				detach(c)
				detachStack(c)
				c.mon = monStart
				attach(c)
				attachStack(c)
			}
			if m == selmon {
				selmon = monStart
			}
			removeMonitor(m)
			n--
		}
	}

	i := 0
	for m := monStart; m != nil && i < len(rects); m, i = m.next, i+1 {
		m.num = i
		m.screenArea = rects[i]
		m.updateBarPosition()
	}
	if selmon == nil {
		selmon = monStart
	}
	return nil
}

// queryOutputRects returns one rectangle per physical output: the
// deduplicated Xinerama screen list when Xinerama is available and reports
// at least one screen, or a single screen-sized rectangle otherwise. Mirrors dwm.c's updategeom
// screen enumeration (HAVE_XINERAMA branch and its single-monitor fallback).
func queryOutputRects() ([]rect, error) {
	if err := xinerama.Init(xu.Conn()); err != nil {
		slog.Debug("xinerama unavailable, assuming a single output", "err", err)
		return []rect{{X: 0, Y: 0, W: screenW, H: screenH}}, nil
	}
	reply, err := xinerama.QueryScreens(xu.Conn()).Reply()
	if err != nil || len(reply.ScreenInfo) == 0 {
		return []rect{{X: 0, Y: 0, W: screenW, H: screenH}}, nil
	}
	rects := make([]rect, len(reply.ScreenInfo))
	for i, si := range reply.ScreenInfo {
		rects[i] = rect{X: int(si.XOrg), Y: int(si.YOrg), W: int(si.Width), H: int(si.Height)}
	}
	return dedupeRects(rects), nil
}

func appendMonitor(m *monitor) {
	if monStart == nil {
		monStart = m
		return
	}
	t := monStart
	for t.next != nil {
		t = t.next
	}
	t.next = m
}

func lastMonitor() *monitor {
	m := monStart
	for m.next != nil {
		m = m.next
	}
	return m
}

func removeMonitor(target *monitor) {
	if monStart == target {
		monStart = target.next
		return
	}
	for m := monStart; m != nil; m = m.next {
		if m.next == target {
			m.next = target.next
			return
		}
	}
}

// scanExisting manages every already-mapped, non-override-redirect top
// level window, in the order XQueryTree reports them — the startup path for
// windows that existed before dwm took over, mirrored from dwm.c's scan().
// Transient windows are managed on a second pass so their WM_TRANSIENT_FOR
// target is already known.
func scanExisting() error {
	tree, err := xp.QueryTree(xu.Conn(), rootWin).Reply()
	if err != nil {
		return err
	}

	var transients []xp.Window
	for _, w := range tree.Children {
		attrs, err := xp.GetWindowAttributes(xu.Conn(), w).Reply()
		if err != nil || attrs.OverrideRedirect || attrs.MapState == xp.MapStateUnmapped {
			continue
		}
		if hints, err := icccm.WmTransientForGet(xu, w); err == nil && hints != 0 {
			transients = append(transients, w)
			continue
		}
		manage(w)
	}
	for _, w := range transients {
		manage(w)
	}
	return nil
}
