package main

import (
	"log/slog"

	"github.com/BurntSushi/xgbutil/ewmh"
	xp "github.com/BurntSushi/xgb/xproto"
)

// focus selects c (or, if c is nil or no longer visible, the first visible
// client on the focus stack of selmon) as the input focus: it unfocuses the
// previous selection, moves c to the front of its monitor's focus stack,
// redraws both borders, asserts X input focus, and advertises
// _NET_ACTIVE_WINDOW. Mirrors dwm.c's focus().
func focus(c *client) {
	if c == nil || !c.isVisible() {
		c = nil
		for t := selmon.stack; t != nil; t = t.snext {
			if t.isVisible() {
				c = t
				break
			}
		}
	}
	if selmon.sel != nil && selmon.sel != c {
		unfocus(selmon.sel, false)
	}
	if c != nil {
		if c.mon != selmon {
			selmon = c.mon
		}
		if c.isUrgent {
			c.isUrgent = false
		}
		detachStack(c)
		attachStack(c)
		updateWindowBorder(c)
		setInputFocus(c)
		warpPointer(c)
	} else {
		if err := xp.SetInputFocusChecked(xu.Conn(), xp.InputFocusPointerRoot, rootWin, xp.TimeCurrentTime).Check(); err != nil {
			slog.Debug("clear input focus failed", "err", err)
		}
		if err := xp.DeletePropertyChecked(xu.Conn(), rootWin, atomNetActiveWindow).Check(); err != nil {
			slog.Debug("clear active window property failed", "err", err)
		}
		warpToMonitorCenter(selmon)
	}
	if selmon.sel != c {
		selmon.prevSel = selmon.sel
	}
	selmon.sel = c
	drawBars()
}

// unfocus removes c's selected-border coloring and, unless setFocus is
// false (the caller is about to assert focus on something else anyway),
// reverts X input focus to the root window. Mirrors dwm.c's unfocus().
func unfocus(c *client, setFocus bool) {
	if c == nil {
		return
	}
	grabButtons(c, false)
	updateWindowBorderColor(c, cfg.Normal.Border)
	if setFocus {
		if err := xp.SetInputFocusChecked(xu.Conn(), xp.InputFocusPointerRoot, rootWin, xp.TimeCurrentTime).Check(); err != nil {
			slog.Debug("revert input focus failed", "err", err)
		}
	}
}

// setInputFocus sets X input focus on c and publishes it as
// _NET_ACTIVE_WINDOW unless c has the never-focus hint, then sends
// WM_TAKE_FOCUS in either case (delivered only if c advertises it) and grabs
// c's buttons in focused mode. Mirrors dwm.c's setfocus().
func setInputFocus(c *client) {
	if c == nil {
		return
	}
	if !c.neverFocus {
		if err := xp.SetInputFocusChecked(xu.Conn(), xp.InputFocusPointerRoot, c.win, xp.TimeCurrentTime).Check(); err != nil {
			slog.Debug("set input focus failed", "win", c.win, "err", err)
		}
		if err := ewmh.ActiveWindowSet(xu, c.win); err != nil {
			slog.Debug("set active window failed", "err", err)
		}
	}
	c.sendEvent(atomWMTakeFocus)
	grabButtons(c, true)
}

// restack raises m's selected client when it is floating or m has no
// arranger, then (under an arranger) stacks the visible tiled clients below
// the bar in focus-stack order, each below the previous one, and syncs. It
// does nothing when m has no selected client. Mirrors dwm.c's restack().
func restack(m *monitor) {
	if m.sel == nil {
		return
	}
	if m.sel.isFloating || m.lt[m.sellt].Arrange == nil {
		check(xp.ConfigureWindowChecked(xu.Conn(), m.sel.win, xp.ConfigWindowStackMode,
			[]uint32{xp.StackModeAbove}))
	}
	if m.lt[m.sellt].Arrange != nil {
		sibling := m.barWin
		for c := m.stack; c != nil; c = c.snext {
			if !c.isFloating && c.isVisible() {
				check(xp.ConfigureWindowChecked(xu.Conn(), c.win, xp.ConfigWindowSibling|xp.ConfigWindowStackMode,
					[]uint32{uint32(sibling), xp.StackModeBelow}))
				sibling = c.win
			}
		}
	}
	xp.Sync(xu.Conn())
	drainMotionNotify()
}

// drainMotionNotify discards queued MotionNotify events generated by the
// restack above, the same defensive drain dwm.c performs after XSync in
// restack() to avoid spurious monitor switches.
func drainMotionNotify() {
	for {
		e, err := xu.Conn().PollForEvent()
		if err != nil || e == nil {
			return
		}
		if _, ok := e.(xp.MotionNotifyEvent); !ok {
			dispatch(e)
			return
		}
	}
}

// zoom promotes the selected client to the master slot, or demotes the
// current master if it is already selected and there is a second tiled
// client to swap with. Mirrors dwm.c's zoom().
func zoom(m *monitor, _ arg) {
	c := m.sel
	if m.lt[m.sellt].Arrange == nil || (c != nil && c.isFloating) {
		return
	}
	if c == nextTiled(m.clients) {
		c = nextTiled(c.next)
		if c == nil {
			return
		}
	}
	pushToFront(c)
	focus(c)
	arrange(m)
}

// pushToFront splices c to the head of its monitor's client list without
// touching the focus stack, the move zoom uses to promote a client to
// master. Mirrors dwm.c's pop()/detach()+attach() pairing.
func pushToFront(c *client) {
	detach(c)
	attach(c)
}

// focusStack moves selection among the monitor's visible clients in client
// list order per a's stackDir: forward/backward by one visible client, back
// to the previously selected client, or to one of the four absolute slots
// (first, second, third, last). Mirrors
// dwm.c's focusstack() (movestack-style extension, see config.go).
func focusStack(m *monitor, a arg) {
	c := selectStackTarget(m, a)
	if c == nil {
		return
	}
	focus(c)
	restack(m)
}

// pushStack swaps the selected client's position in the client list with
// the target selected the same way focusStack picks one, without changing
// which client has focus. Mirrors the movestack.c patch's pushstack().
func pushStack(m *monitor, a arg) {
	c := m.sel
	target := selectStackTarget(m, a)
	if c == nil || target == nil || c == target {
		return
	}
	swapClientListOrder(m, c, target)
	arrange(m)
}

func selectStackTarget(m *monitor, a arg) *client {
	visible := visibleClients(m)
	if len(visible) == 0 {
		return nil
	}
	idx := -1
	for i, c := range visible {
		if c == m.sel {
			idx = i
			break
		}
	}
	switch stackDir(a.i) {
	case stackDirForward:
		if idx < 0 {
			return visible[0]
		}
		return visible[(idx+1)%len(visible)]
	case stackDirBackward:
		if idx < 0 {
			return visible[len(visible)-1]
		}
		return visible[(idx-1+len(visible))%len(visible)]
	case stackDirPrevSel:
		return m.prevSel
	case stackDirFirst:
		return visible[0]
	case stackDirSecond:
		if len(visible) > 1 {
			return visible[1]
		}
		return visible[0]
	case stackDirThird:
		if len(visible) > 2 {
			return visible[2]
		}
		return visible[len(visible)-1]
	case stackDirLast:
		return visible[len(visible)-1]
	}
	return nil
}

func visibleClients(m *monitor) []*client {
	var out []*client
	for c := m.clients; c != nil; c = c.next {
		if c.isVisible() {
			out = append(out, c)
		}
	}
	return out
}

// swapClientListOrder exchanges c1 and c2's positions in the client list by
// relinking their next pointers, preserving everyone else's order.
func swapClientListOrder(m *monitor, c1, c2 *client) {
	clients := make([]*client, 0, 8)
	for c := m.clients; c != nil; c = c.next {
		clients = append(clients, c)
	}
	i1, i2 := -1, -1
	for i, c := range clients {
		if c == c1 {
			i1 = i
		}
		if c == c2 {
			i2 = i
		}
	}
	if i1 < 0 || i2 < 0 {
		return
	}
	clients[i1], clients[i2] = clients[i2], clients[i1]
	m.clients = clients[0]
	for i := 0; i < len(clients)-1; i++ {
		clients[i].next = clients[i+1]
	}
	clients[len(clients)-1].next = nil
}

// warpPointer moves the pointer to the center of c's window, skipping
// dialog/notification clients when cfg.WarpSkipsDialogs is set (spec.md's
// open question on warp-on-focus, resolved in SPEC_FULL.md §5), and skipping
// the warp entirely if the pointer is already inside c's border-inclusive
// rectangle or sitting over the bar. Mirrors taowm's warpPointerTo
// (actions.go) and dwm.c's warp() (original_source/dwm.c:2130-2155).
func warpPointer(c *client) {
	if c == nil {
		return
	}
	if cfg.WarpSkipsDialogs && isDialog(c) {
		return
	}
	ptr, err := xp.QueryPointer(xu.Conn(), rootWin).Reply()
	if err != nil {
		slog.Debug("query pointer for warp failed", "err", err)
		return
	}
	px, py := int(ptr.RootX), int(ptr.RootY)
	borderRect := rect{c.x - c.bw, c.y - c.bw, c.w + 2*c.bw, c.h + 2*c.bw}
	if borderRect.contains(px, py) {
		return
	}
	if c.mon != nil && c.mon.showBar {
		barRect := rect{c.mon.screenArea.X, c.mon.barY, c.mon.screenArea.W, cfg.BarHeight}
		if barRect.contains(px, py) {
			return
		}
	}
	cx, cy := rect{c.x, c.y, c.w, c.h}.center()
	if err := xp.WarpPointerChecked(xu.Conn(), xp.WindowNone, rootWin, 0, 0, 0, 0,
		int16(cx), int16(cy)).Check(); err != nil {
		slog.Debug("warp pointer failed", "err", err)
	}
}

// warpToMonitorCenter moves the pointer to m's work-area center, the
// null-client case spec.md §4.7 calls out separately from warping onto a
// client window.
func warpToMonitorCenter(m *monitor) {
	if m == nil {
		return
	}
	cx, cy := m.workArea.center()
	if err := xp.WarpPointerChecked(xu.Conn(), xp.WindowNone, rootWin, 0, 0, 0, 0,
		int16(cx), int16(cy)).Check(); err != nil {
		slog.Debug("warp pointer to monitor center failed", "err", err)
	}
}

func isDialog(c *client) bool {
	types, err := ewmh.WmWindowTypeGet(xu, c.win)
	if err != nil {
		return false
	}
	for _, t := range types {
		if t == "_NET_WM_WINDOW_TYPE_DIALOG" || t == "_NET_WM_WINDOW_TYPE_NOTIFICATION" ||
			t == "_NET_WM_WINDOW_TYPE_UTILITY" || t == "_NET_WM_WINDOW_TYPE_SPLASH" {
			return true
		}
	}
	return false
}
