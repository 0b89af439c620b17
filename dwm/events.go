package main

import (
	"log/slog"

	xp "github.com/BurntSushi/xgb/xproto"
)

// lastEventTime is the timestamp of the most recently processed event
// carrying one; sendClientMessage (atoms.go) stamps outgoing WM_PROTOCOLS
// messages with it, mirroring dwm.c's global lastevent.
var lastEventTime xp.Timestamp

// checker defers an X request's error check to the next event loop
// iteration instead of blocking on it immediately, exactly like taowm's
// checkers slice (main.go) and dwm.c's asynchronous xerror handling.
type checker interface {
	Check() error
}

var checkers []checker

func check(c checker) {
	checkers = append(checkers, c)
}

func drainCheckers() {
	for _, c := range checkers {
		err := c.Check()
		switch err.(type) {
		case nil:
		case xp.WindowError, xp.MatchError, xp.DrawableError, xp.AccessError:
			slog.Debug("deferred X request failed", "err", err)
		default:
			slog.Warn("deferred X request failed", "err", err)
		}
	}
	checkers = checkers[:0]
}

type xEventOrError struct {
	event xp.Event
	err   error
}

// run is the main event loop: drain deferred checkers, then block for the
// next X event and dispatch it by concrete type. Mirrors taowm's main()
// loop (main.go) and dwm.c's run()'s handler[XCB_EVENT_MAX] dispatch table
// — Go's type switch plays the role of dwm.c's array-of-function-pointers
// indexed by event number.
func run() {
	eventCh := make(chan xEventOrError)
	go func() {
		for {
			e, err := xu.Conn().WaitForEvent()
			eventCh <- xEventOrError{e, err}
		}
	}()

	for !quitRequested {
		drainCheckers()
		ee := <-eventCh
		if ee.err != nil {
			slog.Debug("x protocol error", "err", ee.err)
			continue
		}
		dispatch(ee.event)
	}
}

var quitRequested bool

func dispatch(e xp.Event) {
	switch ev := e.(type) {
	case xp.ButtonPressEvent:
		lastEventTime = ev.Time
		handleButtonPress(ev)
	case xp.ClientMessageEvent:
		handleClientMessage(ev)
	case xp.ConfigureRequestEvent:
		handleConfigureRequest(ev)
	case xp.ConfigureNotifyEvent:
		handleConfigureNotify(ev)
	case xp.DestroyNotifyEvent:
		unmanage(ev.Window, true)
	case xp.EnterNotifyEvent:
		lastEventTime = ev.Time
		handleEnterNotify(ev)
	case xp.ExposeEvent:
		handleExpose(ev)
	case xp.FocusInEvent:
		handleFocusIn(ev)
	case xp.KeyPressEvent:
		lastEventTime = ev.Time
		handleKeyPress(ev)
	case xp.MappingNotifyEvent:
		handleMappingNotify(ev)
	case xp.MapRequestEvent:
		handleMapRequest(ev)
	case xp.MotionNotifyEvent:
		lastEventTime = ev.Time
		handleMotionNotify(ev)
	case xp.PropertyNotifyEvent:
		handlePropertyNotify(ev)
	case xp.UnmapNotifyEvent:
		unmanage(ev.Window, false)
	default:
		slog.Debug("unhandled event", "type", fmtEventType(e))
	}
}

func fmtEventType(e xp.Event) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}

func handleClientMessage(e xp.ClientMessageEvent) {
	c := findClient(e.Window)
	if c == nil {
		return
	}
	name, err := atomName(e.Type)
	if err != nil {
		return
	}
	if name == "_NET_WM_STATE" {
		data := e.Data.Data32
		if len(data) < 3 {
			return
		}
		// _NET_WM_STATE messages may carry the changed atom in either
		// slot 1 or slot 2 (EWMH _NET_WM_STATE wire format).
		target1, err1 := atomName(xp.Atom(data[1]))
		target2, err2 := atomName(xp.Atom(data[2]))
		isFullscreenTarget := (err1 == nil && target1 == "_NET_WM_STATE_FULLSCREEN") ||
			(err2 == nil && target2 == "_NET_WM_STATE_FULLSCREEN")
		if !isFullscreenTarget {
			return
		}
		// data[0]: 0 remove, 1 add, 2 toggle (EWMH _NET_WM_STATE wire format).
		want := c.isFullscreen
		switch data[0] {
		case 0:
			want = false
		case 1:
			want = true
		case 2:
			want = !c.isFullscreen
		}
		setFullscreen(c, want)
	} else if name == "_NET_ACTIVE_WINDOW" {
		popClient(c)
	}
}

// popClient implements the _NET_ACTIVE_WINDOW ClientMessage: if c is not
// visible on its monitor's current tagset, flip to the tagset it's on, then
// pop it to the front of the client list, focused and arranged. Mirrors
// dwm.c's clientmessage()'s `seltags ^= 1; tagset[seltags] = c->tags; pop(c)`.
func popClient(c *client) {
	if !c.isVisible() && c.mon != nil {
		c.mon.seltags ^= 1
		c.mon.tagset[c.mon.seltags] = c.tags
	}
	pushToFront(c)
	focus(c)
	arrange(c.mon)
}

func handleConfigureNotify(e xp.ConfigureNotifyEvent) {
	if e.Window != rootWin {
		return
	}
	if int(e.Width) == screenW && int(e.Height) == screenH {
		return
	}
	screenW, screenH = int(e.Width), int(e.Height)
	if err := updateGeometry(); err != nil {
		slog.Debug("update geometry after root resize failed", "err", err)
		return
	}
	for m := monStart; m != nil; m = m.next {
		for c := m.clients; c != nil; c = c.next {
			if c.isFullscreen {
				resizeClient(c, m.screenArea.X, m.screenArea.Y, m.screenArea.W, m.screenArea.H)
			}
		}
		resizeBar(m)
	}
	focus(nil)
	arrange(nil)
}

// handleConfigureRequest forwards a request for an unmanaged window as is.
// A managed client that is floating, or whose monitor has no arranger, gets
// the requested position (relative to its monitor) and size, re-centered if
// a floating client would run past the monitor's right or bottom edge, and
// that geometry is committed; its stacking and border-width requests are not
// applied. A tiled client keeps its geometry and is sent a synthetic
// ConfigureNotify describing it. Mirrors dwm.c's configurerequest.
func handleConfigureRequest(e xp.ConfigureRequestEvent) {
	c := findClient(e.Window)
	if c == nil {
		mask, values := configureRequestPassthroughMask(e)
		check(xp.ConfigureWindowChecked(xu.Conn(), e.Window, mask, values))
		return
	}

	if c.isFloating || (c.mon != nil && c.mon.lt[c.mon.sellt].Arrange == nil) {
		if e.ValueMask&xp.ConfigWindowX != 0 {
			c.x = c.mon.screenArea.X + int(e.X)
		}
		if e.ValueMask&xp.ConfigWindowY != 0 {
			c.y = c.mon.screenArea.Y + int(e.Y)
		}
		if e.ValueMask&xp.ConfigWindowWidth != 0 {
			c.w = int(e.Width)
		}
		if e.ValueMask&xp.ConfigWindowHeight != 0 {
			c.h = int(e.Height)
		}
		if (c.x+c.w) > c.mon.screenArea.X+c.mon.screenArea.W && c.isFloating {
			c.x = c.mon.screenArea.X + (c.mon.screenArea.W / 2) - (c.w / 2)
		}
		if (c.y+c.h) > c.mon.screenArea.Y+c.mon.screenArea.H && c.isFloating {
			c.y = c.mon.screenArea.Y + (c.mon.screenArea.H / 2) - (c.h / 2)
		}
		configureNotify(c)
		resizeClient(c, c.x, c.y, c.w, c.h)
	} else {
		configureNotify(c)
	}
}

func configureRequestPassthroughMask(e xp.ConfigureRequestEvent) (uint16, []uint32) {
	var mask uint16
	var values []uint32
	if e.ValueMask&xp.ConfigWindowX != 0 {
		mask |= xp.ConfigWindowX
		values = append(values, uint32(int32(e.X)))
	}
	if e.ValueMask&xp.ConfigWindowY != 0 {
		mask |= xp.ConfigWindowY
		values = append(values, uint32(int32(e.Y)))
	}
	if e.ValueMask&xp.ConfigWindowWidth != 0 {
		mask |= xp.ConfigWindowWidth
		values = append(values, uint32(e.Width))
	}
	if e.ValueMask&xp.ConfigWindowHeight != 0 {
		mask |= xp.ConfigWindowHeight
		values = append(values, uint32(e.Height))
	}
	if e.ValueMask&xp.ConfigWindowBorderWidth != 0 {
		mask |= xp.ConfigWindowBorderWidth
		values = append(values, uint32(e.BorderWidth))
	}
	if e.ValueMask&xp.ConfigWindowSibling != 0 {
		mask |= xp.ConfigWindowSibling
		values = append(values, uint32(e.Sibling))
	}
	if e.ValueMask&xp.ConfigWindowStackMode != 0 {
		mask |= xp.ConfigWindowStackMode
		values = append(values, uint32(e.StackMode))
	}
	return mask, values
}

func handleEnterNotify(e xp.EnterNotifyEvent) {
	if e.Mode != xp.NotifyModeNormal || e.Detail == xp.NotifyDetailInferior {
		if e.Window != rootWin {
			return
		}
	}
	c := findClient(e.Window)
	m := selmon
	if c != nil {
		m = c.mon
	} else {
		m = pointtomon(int(e.RootX), int(e.RootY))
	}
	if m != selmon {
		unfocus(selmon.sel, true)
		selmon = m
	} else if c == nil || c == selmon.sel {
		return
	}
	focus(c)
}

func handleExpose(e xp.ExposeEvent) {
	if e.Count != 0 {
		return
	}
	for m := monStart; m != nil; m = m.next {
		if m.barWin == e.Window {
			drawBar(m)
			return
		}
	}
}

func handleFocusIn(e xp.FocusInEvent) {
	if selmon.sel != nil && e.Event != selmon.sel.win {
		setInputFocus(selmon.sel)
	}
}

func handleMapRequest(e xp.MapRequestEvent) {
	attrs, err := xp.GetWindowAttributes(xu.Conn(), e.Window).Reply()
	if err != nil || attrs.OverrideRedirect {
		return
	}
	if findClient(e.Window) == nil {
		manage(e.Window)
	}
}

func handleMappingNotify(e xp.MappingNotifyEvent) {
	if e.Request == xp.MappingModifier || e.Request == xp.MappingKeyboard {
		ungrabKeys()
		grabKeys()
	}
}

func handleMotionNotify(e xp.MotionNotifyEvent) {
	if e.Event != rootWin {
		return
	}
	if m := pointtomon(int(e.RootX), int(e.RootY)); m != selmon {
		unfocus(selmon.sel, true)
		selmon = m
		focus(nil)
	}
}

func handlePropertyNotify(e xp.PropertyNotifyEvent) {
	if e.Window == rootWin {
		if name, err := atomName(e.Atom); err == nil && name == "WM_NAME" {
			drawBars()
		}
		return
	}
	c := findClient(e.Window)
	if c == nil {
		return
	}
	name, err := atomName(e.Atom)
	if err != nil {
		return
	}
	switch name {
	case "WM_TRANSIENT_FOR":
		// Transience is resolved once at manage time (spec.md §4.3); a
		// later change is rare enough that dwm.c itself ignores it too.
	case "WM_NORMAL_HINTS":
		c.updateSizeHints()
	case "WM_HINTS":
		c.updateWMHints()
		updateWindowBorder(c)
	case "WM_NAME", "_NET_WM_NAME":
		c.updateTitle()
		if c == c.mon.sel {
			drawBar(c.mon)
		}
	case "_NET_WM_WINDOW_TYPE":
		if !c.isFloating && isDialog(c) {
			c.isFloating = true
			arrange(c.mon)
		}
	}
}
