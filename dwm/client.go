package main

import (
	"log/slog"

	"github.com/BurntSushi/xgbutil/icccm"
	xp "github.com/BurntSushi/xgb/xproto"
	"github.com/go-dwm/dwm/drawadapter"
)

const maxTitleLen = 255

// client is one managed top-level X window. Field names mirror dwm.c's
// Client struct; the two successor links (next, snext) are the intrusive
// singly-linked lists described in spec.md §3.1/§9: next threads the
// creation-order client list, snext threads the MRU focus stack. Both live
// on monitor, never shared across monitors.
type client struct {
	name                 string
	x, y, w, h           int
	oldx, oldy, oldw, oldh int
	basew, baseh         int
	incw, inch           int
	maxw, maxh           int
	minw, minh           int
	mina, maxa           float64 // min/max aspect ratio, 0 means unset
	bw, oldbw            int
	tags                 uint32
	isFixed, isFloating  bool
	isUrgent             bool
	neverFocus           bool
	isFullscreen         bool
	oldState             bool // floating flag saved across fullscreen
	class, instance      string
	win                  xp.Window
	mon                  *monitor // weak back-reference; never follow after unmanage
	next                 *client  // client list (creation order)
	snext                *client  // focus stack (MRU order)
}

func (c *client) width() int  { return c.w + 2*c.bw }
func (c *client) height() int { return c.h + 2*c.bw }

// isVisible reports whether c shows on its monitor's current tagset.
func (c *client) isVisible() bool {
	return c.mon != nil && c.tags&c.mon.tagset[c.mon.seltags] != 0
}

// attach prepends c to c.mon's client list (creation-order list).
func attach(c *client) {
	c.next = c.mon.clients
	c.mon.clients = c
}

// detach splices c out of its monitor's client list.
func detach(c *client) {
	pp := &c.mon.clients
	for *pp != nil && *pp != c {
		pp = &(*pp).next
	}
	*pp = c.next
	c.next = nil
}

// attachStack prepends c to c.mon's focus stack (MRU list).
func attachStack(c *client) {
	c.snext = c.mon.stack
	c.mon.stack = c
}

// detachStack splices c out of its monitor's focus stack. If c was the
// monitor's selected client, the new selection becomes the first visible
// successor in the stack, or nil.
func detachStack(c *client) {
	pp := &c.mon.stack
	for *pp != nil && *pp != c {
		pp = &(*pp).snext
	}
	*pp = c.snext
	c.snext = nil

	if c == c.mon.sel {
		t := c.mon.stack
		for t != nil && !t.isVisible() {
			t = t.snext
		}
		c.mon.sel = t
	}
}

// nextTiled advances past floating or invisible clients; arrangers always
// iterate the client list through this filter (spec.md §4.2).
func nextTiled(c *client) *client {
	for c != nil && (c.isFloating || !c.isVisible()) {
		c = c.next
	}
	return c
}

func (c *client) updateTitle() {
	name, err := icccm.WmNameGet(xu, c.win)
	if err != nil || name == "" {
		name, err = netWMNameGet(c.win)
	}
	if err != nil || name == "" {
		name = "broken"
	}
	if len(name) > maxTitleLen {
		name = name[:maxTitleLen]
	}
	c.name = name
}

func (c *client) updateClass() {
	cls, err := icccm.WmClassGet(xu, c.win)
	if err != nil || cls == nil {
		return
	}
	c.class = cls.Class
	c.instance = cls.Instance
}

// updateSizeHints refreshes basew/baseh, incw/inch, minw/minh, maxw/maxh,
// mina/maxa and isFixed from WM_NORMAL_HINTS. Mirrors dwm.c's
// updatesizehints.
func (c *client) updateSizeHints() {
	h, err := icccm.WmNormalHintsGet(xu, c.win)
	if err != nil || h == nil {
		h = &icccm.NormalHints{}
	}

	c.basew, c.baseh = 0, 0
	if h.Flags&icccm.SizeHintPBaseSize != 0 {
		c.basew, c.baseh = int(h.BaseWidth), int(h.BaseHeight)
	} else if h.Flags&icccm.SizeHintPMinSize != 0 {
		c.basew, c.baseh = int(h.MinWidth), int(h.MinHeight)
	}

	c.incw, c.inch = 0, 0
	if h.Flags&icccm.SizeHintPResizeInc != 0 {
		c.incw, c.inch = int(h.WidthInc), int(h.HeightInc)
	}

	c.maxw, c.maxh = 0, 0
	if h.Flags&icccm.SizeHintPMaxSize != 0 {
		c.maxw, c.maxh = int(h.MaxWidth), int(h.MaxHeight)
	}

	if h.Flags&icccm.SizeHintPMinSize != 0 {
		c.minw, c.minh = int(h.MinWidth), int(h.MinHeight)
	} else if h.Flags&icccm.SizeHintPBaseSize != 0 {
		c.minw, c.minh = int(h.BaseWidth), int(h.BaseHeight)
	} else {
		c.minw, c.minh = 0, 0
	}

	c.mina, c.maxa = 0, 0
	if h.Flags&icccm.SizeHintPAspect != 0 && h.MinAspect.Num != 0 && h.MaxAspect.Den != 0 {
		c.mina = float64(h.MinAspect.Den) / float64(h.MinAspect.Num)
		c.maxa = float64(h.MaxAspect.Num) / float64(h.MaxAspect.Den)
	}

	c.isFixed = c.maxw > 0 && c.maxh > 0 && c.maxw == c.minw && c.maxh == c.minh
}

// updateWMHints refreshes urgency and the never-focus flag from WM_HINTS.
// For its monitor's selected client an urgency hint is not recorded but
// cleared from WM_HINTS instead. Mirrors dwm.c's updatewmhints.
func (c *client) updateWMHints() {
	h, err := icccm.WmHintsGet(xu, c.win)
	if err != nil || h == nil {
		return
	}
	if c.mon != nil && c == c.mon.sel && h.Flags&icccm.HintUrgency != 0 {
		h.Flags &^= icccm.HintUrgency
		if setErr := icccm.WmHintsSet(xu, c.win, h); setErr != nil {
			slog.Debug("clear urgency hint failed", "err", setErr)
		}
	} else {
		c.isUrgent = h.Flags&icccm.HintUrgency != 0
	}
	if h.Flags&icccm.HintInput != 0 {
		c.neverFocus = h.Input == 0
	} else {
		c.neverFocus = false
	}
}

// sendEvent delivers a WM_PROTOCOLS client message naming proto, returning
// whether the client advertises support for it.
func (c *client) sendEvent(proto xp.Atom) bool {
	protos, err := icccm.WmProtocolsGet(xu, c.win)
	if err != nil {
		return false
	}
	name, nameErr := atomName(proto)
	if nameErr != nil {
		return false
	}
	found := false
	for _, p := range protos {
		if p == name {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	return sendClientMessage(c.win, atomWMProtocols, proto) == nil
}

// findClient returns the managed client for win, or nil. Linear scan across
// every monitor's client list, same cost and shape as dwm.c's wintoclient.
func findClient(win xp.Window) *client {
	for m := monStart; m != nil; m = m.next {
		for c := m.clients; c != nil; c = c.next {
			if c.win == win {
				return c
			}
		}
	}
	return nil
}

// updateWindowBorder colors c's border according to whether c is its
// monitor's selected client, using the urgent color when c is urgent.
// Mirrors the common tail of dwm.c's focus()/unfocus() border updates.
func updateWindowBorder(c *client) {
	color := cfg.Normal.Border
	if c.mon != nil && c == c.mon.sel {
		color = cfg.Selected.Border
	}
	if c.isUrgent {
		color = cfg.Urgent.Border
	}
	updateWindowBorderColor(c, color)
}

func updateWindowBorderColor(c *client, hex string) {
	rgba, err := drawadapter.ColorCreate(hex)
	if err != nil {
		slog.Debug("parse border color failed", "color", hex, "err", err)
		return
	}
	pixel := drawadapter.Pixel(rgba)
	if err := xp.ChangeWindowAttributesChecked(xu.Conn(), c.win, xp.CwBorderPixel, []uint32{pixel}).Check(); err != nil {
		slog.Debug("set border color failed", "win", c.win, "err", err)
	}
}

// toggleFloating flips the selected client's floating flag (a fixed-size
// client stays floating), re-applies its current geometry through resize
// when it becomes floating, and rearranges. Mirrors dwm.c's
// togglefloating(); fullscreen clients are exempt, matching dwm.c's guard.
func toggleFloating(m *monitor, _ arg) {
	c := m.sel
	if c == nil || c.isFullscreen {
		return
	}
	c.isFloating = !c.isFloating || c.isFixed
	if c.isFloating {
		resize(c, c.x, c.y, c.w, c.h, false)
	}
	arrange(m)
}
