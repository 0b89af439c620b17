package main

import (
	"log/slog"

	"github.com/BurntSushi/xgbutil/icccm"
	xp "github.com/BurntSushi/xgb/xproto"
)

// manage brings win under management: builds a client, reads its hints and
// transient-for target, applies rules, reparents no windows (dwm doesn't
// reparent, unlike most WMs — the border lives on the client window
// itself), sets WM_STATE to Normal, grabs its buttons, and maps it. Mirrors
// dwm.c's manage().
func manage(win xp.Window) {
	geom, err := xp.GetGeometry(xu.Conn(), xp.Drawable(win)).Reply()
	if err != nil {
		slog.Debug("get geometry for new client failed", "win", win, "err", err)
		return
	}

	c := &client{
		win: win,
		x:   int(geom.X), y: int(geom.Y),
		w: int(geom.Width), h: int(geom.Height),
		oldbw: int(geom.BorderWidth),
		bw:    cfg.BorderPx,
	}
	c.oldx, c.oldy, c.oldw, c.oldh = c.x, c.y, c.w, c.h

	c.mon = selmon
	if transient, terr := icccm.WmTransientForGet(xu, win); terr == nil && transient != 0 {
		if t := findClient(transient); t != nil {
			c.mon = t.mon
			c.isFloating = true
		}
	}

	if c.x+c.width() > c.mon.screenArea.X+c.mon.screenArea.W {
		c.x = c.mon.screenArea.X + c.mon.screenArea.W - c.width()
	}
	if c.y+c.height() > c.mon.screenArea.Y+c.mon.screenArea.H {
		c.y = c.mon.screenArea.Y + c.mon.screenArea.H - c.height()
	}
	c.x = max(c.x, c.mon.screenArea.X)
	c.y = max(c.y, c.mon.screenArea.Y)

	c.updateTitle()
	c.updateClass()
	c.updateSizeHints()
	c.updateWMHints()
	applyRules(c)

	check(xp.ConfigureWindowChecked(xu.Conn(), win, xp.ConfigWindowBorderWidth, []uint32{uint32(c.bw)}))
	updateWindowBorderColor(c, cfg.Normal.Border)
	check(xp.ConfigureWindowChecked(xu.Conn(), win, xp.ConfigWindowX|xp.ConfigWindowY|xp.ConfigWindowWidth|xp.ConfigWindowHeight|xp.ConfigWindowBorderWidth,
		[]uint32{uint32(int32(c.x)), uint32(int32(c.y)), uint32(c.w), uint32(c.h), uint32(c.bw)}))
	setClientState(c, icccmNormalState)

	if c.mon == selmon {
		unfocus(selmon.sel, false)
	}
	attach(c)
	attachStack(c)
	check(xp.ChangeWindowAttributesChecked(xu.Conn(), win, xp.CwEventMask,
		[]uint32{xp.EventMaskEnterWindow | xp.EventMaskFocusChange | xp.EventMaskPropertyChange | xp.EventMaskStructureNotify}))
	grabButtons(c, false)
	if !c.isFloating {
		c.isFloating = c.isFixed
	}
	if c.isFloating {
		check(xp.ConfigureWindowChecked(xu.Conn(), win, xp.ConfigWindowStackMode, []uint32{xp.StackModeAbove}))
	}

	check(xp.MapWindowChecked(xu.Conn(), win))
	arrange(c.mon)
	focus(c)

	slog.Debug("managed client", "win", win, "class", c.class, "title", c.name, "tags", fmtTagMask(c.tags))
}

const (
	icccmWithdrawnState = 0
	icccmNormalState    = 1
	icccmIconicState    = 3
)

func setClientState(c *client, state uint32) {
	check(xp.ChangePropertyChecked(xu.Conn(), xp.PropModeReplace, c.win, atomWMState, atomWMState, 32,
		2, u32sToBytes([]uint32{state, 0})))
}

func u32sToBytes(vs []uint32) []byte {
	out := make([]byte, 0, 4*len(vs))
	for _, v := range vs {
		out = append(out, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
	return out
}

// unmanage removes win from the client/focus-stack lists, restoring its
// border width unless it was destroyed (destroyed is true for
// DestroyNotify, false for UnmapNotify, mirroring dwm.c's unmanage's
// `destroyed` parameter), and rearranges its former monitor.
func unmanage(win xp.Window, destroyed bool) {
	c := findClient(win)
	if c == nil {
		return
	}
	m := c.mon
	detach(c)
	detachStack(c)
	if !destroyed {
		check(xp.ConfigureWindowChecked(xu.Conn(), c.win, xp.ConfigWindowBorderWidth, []uint32{uint32(c.oldbw)}))
		check(xp.UngrabButtonChecked(xu.Conn(), xp.ButtonIndexAny, c.win, xp.ModMaskAny))
		setClientState(c, icccmWithdrawnState)
	}
	focus(nil)
	updateNetClientList()
	arrange(m)
}

func updateNetClientList() {
	var wins []xp.Window
	for m := monStart; m != nil; m = m.next {
		for c := m.clients; c != nil; c = c.next {
			wins = append(wins, c.win)
		}
	}
	check(xp.ChangePropertyChecked(xu.Conn(), xp.PropModeReplace, rootWin, mustAtom("_NET_CLIENT_LIST"), xp.AtomWindow, 32,
		uint32(len(wins)), windowsToBytes(wins)))
}

func windowsToBytes(wins []xp.Window) []byte {
	vs := make([]uint32, len(wins))
	for i, w := range wins {
		vs[i] = uint32(w)
	}
	return u32sToBytes(vs)
}

func mustAtom(name string) xp.Atom {
	a, err := internAtom(name)
	if err != nil {
		slog.Debug("intern atom failed", "name", name, "err", err)
		return 0
	}
	return a
}
