package main

import (
	"log/slog"

	"github.com/BurntSushi/xgbutil/ewmh"
	xp "github.com/BurntSushi/xgb/xproto"
)

// setFullscreen transitions c into or out of fullscreen, publishing
// _NET_WM_STATE_FULLSCREEN, saving/restoring the floating flag and border
// width it had before, and resizing to/from the full monitor rectangle.
// Mirrors dwm.c's setfullscreen.
func setFullscreen(c *client, fullscreen bool) {
	if fullscreen == c.isFullscreen {
		return
	}
	if fullscreen {
		if err := ewmh.WmStateSet(xu, c.win, []string{"_NET_WM_STATE_FULLSCREEN"}); err != nil {
			slog.Debug("set fullscreen state failed", "err", err)
		}
		c.isFullscreen = true
		c.oldState = c.isFloating
		c.oldbw = c.bw
		c.bw = 0
		c.isFloating = true
		resizeClient(c, c.mon.screenArea.X, c.mon.screenArea.Y, c.mon.screenArea.W, c.mon.screenArea.H)
		check(xp.ConfigureWindowChecked(xu.Conn(), c.win, xp.ConfigWindowStackMode, []uint32{xp.StackModeAbove}))
	} else {
		if err := ewmh.WmStateSet(xu, c.win, nil); err != nil {
			slog.Debug("clear fullscreen state failed", "err", err)
		}
		c.isFullscreen = false
		c.isFloating = c.oldState
		c.bw = c.oldbw
		c.x, c.y, c.w, c.h = c.oldx, c.oldy, c.oldw, c.oldh
		resizeClient(c, c.x, c.y, c.w, c.h)
		arrange(c.mon)
	}
}
