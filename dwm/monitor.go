package main

import (
	xp "github.com/BurntSushi/xgb/xproto"
)

const numTags = 9 // fewer than 32 tags (spec.md §3.2 invariant 6)

const allTags uint32 = (1 << numTags) - 1

// monitor is a physical output, or the whole screen when Xinerama is
// unavailable. Field names mirror dwm.c's Monitor struct.
type monitor struct {
	num         int
	mfact       float64
	nmaster     int
	barY        int
	screenArea  rect // full output geometry
	workArea    rect // screenArea minus the bar
	ltSymbol    string
	tagset      [2]uint32
	seltags     int
	showBar     bool
	topBar      bool
	lt          [2]*layout
	sellt       int
	clients     *client // creation-order list
	sel         *client // selected client, head of stack's visible prefix
	prevSel     *client // selection immediately before sel, for stackDirPrevSel
	stack       *client // MRU focus stack
	next        *monitor
	barWin      xp.Window
}

// monStart anchors the global monitor list; selmon is the globally selected
// monitor (spec.md §3.2 invariant 3). Both are process-wide state, captured
// here rather than threaded through every call, same as dwm.c's globals and
// taowm's package-level xConn/rootXWin.
var (
	monStart *monitor
	selmon   *monitor
)

func newMonitor() *monitor {
	m := &monitor{
		mfact:   cfg.MFact,
		nmaster: cfg.NMaster,
		showBar: cfg.ShowBar,
		topBar:  cfg.TopBar,
		tagset:  [2]uint32{1, 1},
	}
	m.lt[0] = cfg.Layouts[0]
	m.lt[1] = cfg.Layouts[len(cfg.Layouts)-1%len(cfg.Layouts)]
	if len(cfg.Layouts) > 1 {
		m.lt[1] = cfg.Layouts[1]
	}
	m.ltSymbol = m.lt[0].Symbol
	return m
}

// updateBarPosition recomputes workArea from screenArea and the bar's
// presence/placement, mirroring dwm.c's updatebarpos.
func (m *monitor) updateBarPosition() {
	m.workArea = m.screenArea
	if m.showBar {
		m.workArea.H -= cfg.BarHeight
		if m.topBar {
			m.barY = m.workArea.Y
			m.workArea.Y += cfg.BarHeight
		} else {
			m.barY = m.workArea.Y + m.workArea.H
		}
	} else {
		m.barY = -cfg.BarHeight
	}
}

// curTagset returns m's currently selected tagset. Nothing in the package
// calls it at present.
func (m *monitor) curTagset() uint32 {
	return m.tagset[m.seltags]
}

// view switches m's visible tagset to a.ui, or toggles back to the
// previously selected tagset when a.ui is 0 (the MODKEY-Tab binding).
// Mirrors dwm.c's view().
func view(m *monitor, a arg) {
	if a.ui&allTags == m.tagset[m.seltags] {
		return
	}
	m.seltags ^= 1
	if a.ui != 0 {
		m.tagset[m.seltags] = a.ui & allTags
	}
	focus(nil)
	arrange(m)
}

// toggleview flips a.ui's bits in m's current tagset without switching away
// from the other currently-visible tags. Mirrors dwm.c's toggleview().
func toggleview(m *monitor, a arg) {
	newTags := m.tagset[m.seltags] ^ (a.ui & allTags)
	if newTags == 0 {
		return
	}
	m.tagset[m.seltags] = newTags
	focus(nil)
	arrange(m)
}

// tagClient moves the selected client to exactly the tags in a.ui. Mirrors
// dwm.c's tag().
func tagClient(m *monitor, a arg) {
	if m.sel == nil || a.ui&allTags == 0 {
		return
	}
	m.sel.tags = a.ui & allTags
	focus(nil)
	arrange(m)
}

// toggleTag flips a.ui's bits in the selected client's tags, refusing to
// leave it with no tags at all. Mirrors dwm.c's toggletag().
func toggleTag(m *monitor, a arg) {
	if m.sel == nil {
		return
	}
	newTags := m.sel.tags ^ (a.ui & allTags)
	if newTags == 0 {
		return
	}
	m.sel.tags = newTags
	focus(nil)
	arrange(m)
}

// dirToMon resolves a signed monitor offset (a.i) to the target monitor,
// wrapping around the monitor ring. Mirrors dwm.c's dirtomon(); the
// REDESIGN FLAG in SPEC_FULL.md §5 resolves this as a numeric offset, not a
// directional enum.
func dirToMon(i int) *monitor {
	var monitors []*monitor
	for m := monStart; m != nil; m = m.next {
		monitors = append(monitors, m)
	}
	if len(monitors) == 0 {
		return selmon
	}
	cur := 0
	for idx, m := range monitors {
		if m == selmon {
			cur = idx
			break
		}
	}
	next := (cur+i)%len(monitors) + len(monitors)
	next %= len(monitors)
	return monitors[next]
}

// focusMon switches selmon to the monitor a.i away and refocuses there;
// focus warps the pointer onto the newly focused client, or to the
// monitor's work-area center when it has no visible client. Mirrors dwm.c's
// focusmon().
func focusMon(m *monitor, a arg) {
	target := dirToMon(a.i)
	if target == selmon {
		return
	}
	unfocus(selmon.sel, false)
	selmon = target
	focus(nil)
}

// tagMon moves the selected client to the monitor a.i away and rearranges
// both monitors. Mirrors dwm.c's tagmon().
func tagMon(m *monitor, a arg) {
	if m.sel == nil {
		return
	}
	target := dirToMon(a.i)
	if target == m {
		return
	}
	sendClientToMonitor(m.sel, target)
}

// sendClientToMonitor detaches c from its current monitor and attaches it
// to dst, giving it dst's currently selected tagset. Mirrors dwm.c's
// sendmon().
func sendClientToMonitor(c *client, dst *monitor) {
	if c.mon == dst {
		return
	}
	unfocus(c, true)
	detach(c)
	detachStack(c)
	c.mon = dst
	c.tags = dst.tagset[dst.seltags]
	attach(c)
	attachStack(c)
	focus(nil)
	arrange(nil)
}

// dedupeRects returns in with repeated rectangles dropped, keeping the first
// occurrence of each in its original order. queryOutputRects uses it on the
// Xinerama screen list, as dwm.c's updategeom dedupes screens.
func dedupeRects(in []rect) []rect {
	out := make([]rect, 0, len(in))
	for _, r := range in {
		dup := false
		for _, o := range out {
			if o == r {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, r)
		}
	}
	return out
}
