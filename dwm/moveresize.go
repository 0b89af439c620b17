package main

import (
	"log/slog"

	"github.com/BurntSushi/xgbutil/xcursor"
	xp "github.com/BurntSushi/xgb/xproto"
	"github.com/go-dwm/dwm/drawadapter"
)

// moveMouse drags the selected client by the pointer until the button is
// released, snapping to the monitor's work-area edges within cfg.Snap
// pixels. Mirrors dwm.c's movemouse().
func moveMouse(m *monitor, _ arg) {
	c := m.sel
	if c == nil || c.isFullscreen {
		return
	}
	restack(m)
	ox, oy := c.x, c.y

	ptr, err := xp.QueryPointer(xu.Conn(), rootWin).Reply()
	if err != nil {
		slog.Debug("query pointer for movemouse failed", "err", err)
		return
	}
	startX, startY := int(ptr.RootX), int(ptr.RootY)

	cur, err := drawadapter.CursorCreate(xu, xcursor.Fleur)
	if err != nil {
		slog.Debug("create move cursor failed", "err", err)
		return
	}
	defer drawadapter.CursorFree(xu, cur)
	if err := xp.GrabPointerChecked(xu.Conn(), false, rootWin,
		xp.EventMaskButtonRelease|xp.EventMaskPointerMotion,
		xp.GrabModeAsync, xp.GrabModeAsync, xp.WindowNone, cur, xp.TimeCurrentTime).Check(); err != nil {
		slog.Debug("grab pointer for movemouse failed", "err", err)
		return
	}
	defer xp.UngrabPointer(xu.Conn(), xp.TimeCurrentTime)

	for {
		ev, err := xu.Conn().WaitForEvent()
		if err != nil {
			continue
		}
		switch e := ev.(type) {
		case xp.MotionNotifyEvent:
			nx := ox + int(e.RootX) - startX
			ny := oy + int(e.RootY) - startY
			nx, ny = snapToEdges(c, nx, ny)
			if !c.isFloating && c.mon.lt[c.mon.sellt].Arrange != nil {
				if abs(nx-c.x) > cfg.Snap || abs(ny-c.y) > cfg.Snap {
					toggleFloating(m, arg{})
				}
			}
			if c.isFloating || c.mon.lt[c.mon.sellt].Arrange == nil {
				resize(c, nx, ny, c.w, c.h, true)
			}
		case xp.ButtonReleaseEvent:
			target := recttomon(rect{c.x, c.y, c.width(), c.height()})
			if target != m {
				sendClientToMonitor(c, target)
			}
			return
		default:
			dispatch(ev)
		}
	}
}

// resizeMouse drags the selected client's bottom-right corner until the
// button is released. Warps the pointer to that corner at grab start so new
// dimensions can be read directly off the motion event's absolute position,
// same as dwm.c's resizemouse() (original_source/dwm.c:1408,1436).
func resizeMouse(m *monitor, _ arg) {
	c := m.sel
	if c == nil || c.isFullscreen {
		return
	}
	restack(m)
	ox, oy := c.x, c.y

	if err := xp.WarpPointerChecked(xu.Conn(), xp.WindowNone, c.win, 0, 0, 0, 0,
		int16(c.w+c.bw-1), int16(c.h+c.bw-1)).Check(); err != nil {
		slog.Debug("warp pointer for resizemouse failed", "err", err)
		return
	}

	cur, err := drawadapter.CursorCreate(xu, xcursor.XTerm)
	if err != nil {
		slog.Debug("create resize cursor failed", "err", err)
		return
	}
	defer drawadapter.CursorFree(xu, cur)
	if err := xp.GrabPointerChecked(xu.Conn(), false, rootWin,
		xp.EventMaskButtonRelease|xp.EventMaskPointerMotion,
		xp.GrabModeAsync, xp.GrabModeAsync, xp.WindowNone, cur, xp.TimeCurrentTime).Check(); err != nil {
		slog.Debug("grab pointer for resizemouse failed", "err", err)
		return
	}
	defer xp.UngrabPointer(xu.Conn(), xp.TimeCurrentTime)

	for {
		ev, err := xu.Conn().WaitForEvent()
		if err != nil {
			continue
		}
		switch e := ev.(type) {
		case xp.MotionNotifyEvent:
			nw := max(int(e.RootX)-c.x-2*c.bw+1, 1)
			nh := max(int(e.RootY)-c.y-2*c.bw+1, 1)
			if !c.isFloating && c.mon.lt[c.mon.sellt].Arrange != nil {
				if abs(nw-c.w) > cfg.Snap || abs(nh-c.h) > cfg.Snap {
					toggleFloating(m, arg{})
				}
			}
			if c.isFloating || c.mon.lt[c.mon.sellt].Arrange == nil {
				resize(c, ox, oy, nw, nh, true)
			}
		case xp.ButtonReleaseEvent:
			target := recttomon(rect{c.x, c.y, c.width(), c.height()})
			if target != m {
				sendClientToMonitor(c, target)
			}
			return
		default:
			dispatch(ev)
		}
	}
}

// snapToEdges pulls (x, y) to c.mon's work-area edges when within cfg.Snap
// pixels. Mirrors dwm.c's movemouse's nx/ny snapping arithmetic.
func snapToEdges(c *client, x, y int) (int, int) {
	wa := c.mon.workArea
	if abs(x-wa.X) < cfg.Snap {
		x = wa.X
	} else if abs(wa.X+wa.W-(x+c.width())) < cfg.Snap {
		x = wa.X + wa.W - c.width()
	}
	if abs(y-wa.Y) < cfg.Snap {
		y = wa.Y
	} else if abs(wa.Y+wa.H-(y+c.height())) < cfg.Snap {
		y = wa.Y + wa.H - c.height()
	}
	return x, y
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
