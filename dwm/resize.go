package main

import (
	"log/slog"

	xp "github.com/BurntSushi/xgb/xproto"
)

// resize applies size hints to the proposed geometry and, if it changed,
// commits it via resizeClient. Mirrors dwm.c's resize/resizeclient split
// (spec.md §4.6).
func resize(c *client, x, y, w, h int, interact bool) {
	nx, ny, nw, nh, changed := applySizeHints(c, x, y, w, h, interact)
	if changed {
		resizeClient(c, nx, ny, nw, nh)
	}
}

// resizeClient commits geometry to c, applying the gap policy (spec.md
// §4.6), then pushes it to the X server. The geometry math lives in
// commitGeometry so it can be exercised without a live display connection.
func resizeClient(c *client, x, y, w, h int) {
	commitGeometry(c, x, y, w, h)
	if xu == nil {
		return
	}

	mask := xp.ConfigWindowX | xp.ConfigWindowY | xp.ConfigWindowWidth |
		xp.ConfigWindowHeight | xp.ConfigWindowBorderWidth
	values := []uint32{
		uint32(int32(c.x)), uint32(int32(c.y)),
		uint32(c.w), uint32(c.h), uint32(c.bw),
	}
	if err := xp.ConfigureWindowChecked(xu.Conn(), c.win, mask, values).Check(); err != nil {
		slog.Debug("configure window failed", "win", c.win, "err", err)
	}
	configureNotify(c)
	xp.Sync(xu.Conn())
}

// commitGeometry applies the gap policy (spec.md §4.6: floating clients and
// null-arranger monitors get no gap; monocle and lone-tiled-client monitors
// collapse borders to 0 and grow by the border they drop; everything else is
// inset by cfg.Gap on every side via gapOffset/gapIncr, so neighbouring
// windows end up 2*cfg.Gap apart) and writes the result into c's geometry
// fields.
func commitGeometry(c *client, x, y, w, h int) {
	gapOffset, gapIncr := 0, 0
	isFloatingMode := c.mon != nil && c.mon.lt[c.mon.sellt].Arrange == nil
	if !c.isFloating && !isFloatingMode {
		// dwm.c's gaps patch (dwm.c:1360) counts via selmon->clients
		// directly rather than a generic helper; countTiled(c.mon) here
		// is the deliberate generalization to the non-selected-monitor
		// case (DESIGN.md).
		if isMonocle(c.mon) || countTiled(c.mon) == 1 {
			gapOffset = 0
			gapIncr = -2 * c.bw
			c.bw = 0
		} else {
			gapOffset = cfg.Gap
			gapIncr = 2 * cfg.Gap
		}
	}

	c.oldx, c.oldy, c.oldw, c.oldh = c.x, c.y, c.w, c.h
	c.x = x + gapOffset
	c.y = y + gapOffset
	c.w = w - gapIncr
	c.h = h - gapIncr
}

func isMonocle(m *monitor) bool {
	return m.lt[m.sellt] == layoutMonocle
}

// configureNotify sends the synthetic ConfigureNotify every resize commits,
// informing clients of their new geometry without a round trip (ICCCM
// §4.1.5).
func configureNotify(c *client) {
	ev := xp.ConfigureNotifyEvent{
		Event:            c.win,
		Window:           c.win,
		X:                int16(c.x),
		Y:                int16(c.y),
		Width:            uint16(c.w),
		Height:           uint16(c.h),
		BorderWidth:      uint16(c.bw),
		AboveSibling:     0,
		OverrideRedirect: false,
	}
	if err := xp.SendEventChecked(xu.Conn(), false, c.win, xp.EventMaskStructureNotify, string(ev.Bytes())).Check(); err != nil {
		slog.Debug("synthetic configure notify failed", "win", c.win, "err", err)
	}
}
