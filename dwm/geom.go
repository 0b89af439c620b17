package main

import (
	"github.com/BurntSushi/xgbutil/xrect"
)

// rect is a plain rectangle in root coordinates. dwm's C core keeps x/y/w/h
// as bare ints on Client and Monitor; we do the same instead of threading
// xproto's int16/uint16 pairs through the model, and only narrow at the
// X protocol boundary (xsetup.go, client.go).
type rect struct {
	X, Y, W, H int
}

func (r rect) xrect() xrect.Rect {
	return xrect.New(r.X, r.Y, r.W, r.H)
}

// intersectArea returns the area of the overlap between r and other, 0 if
// they don't overlap. Used by monitor lookup by rectangle (recttomon).
func intersectArea(r, other rect) int {
	dx := min(r.X+r.W, other.X+other.W) - max(r.X, other.X)
	dy := min(r.Y+r.H, other.Y+other.H) - max(r.Y, other.Y)
	if dx <= 0 || dy <= 0 {
		return 0
	}
	return dx * dy
}

func (r rect) contains(x, y int) bool {
	return r.X <= x && x < r.X+r.W && r.Y <= y && y < r.Y+r.H
}

func (r rect) center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// recttomon returns the monitor with the greatest intersection area with r
// (the first such monitor on a tie), or selmon if r overlaps none. Mirrors
// dwm.c's recttomon.
func recttomon(r rect) *monitor {
	best := selmon
	bestArea := 0
	for m := monStart; m != nil; m = m.next {
		if a := intersectArea(r, m.screenArea); a > bestArea {
			best, bestArea = m, a
		}
	}
	return best
}

// pointtomon returns the monitor containing the point (x, y), or the first
// monitor if none contains it. Mirrors dwm.c's pointtomon/recttomon(x,y,1,1)
// usage in button/enter/motion handling.
func pointtomon(x, y int) *monitor {
	for m := monStart; m != nil; m = m.next {
		if m.screenArea.contains(x, y) {
			return m
		}
	}
	return monStart
}
