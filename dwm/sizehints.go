package main

// applySizeHints clamps and snaps a proposed geometry to c's ICCCM size
// hints (spec.md §4.4, ICCCM §4.1.2.3). It returns the adjusted (x, y, w, h)
// and whether the result differs from c's current geometry — callers only
// issue a resize when it does (spec.md §8 property 3: applySizeHints is
// idempotent on its own output).
func applySizeHints(c *client, x, y, w, h int, interact bool) (int, int, int, int, bool) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	if interact {
		if x > screenW {
			x = screenW - c.width()
		}
		if y > screenH {
			y = screenH - c.height()
		}
		if x+w+2*c.bw < 0 {
			x = 0
		}
		if y+h+2*c.bw < 0 {
			y = 0
		}
	} else {
		wa := c.mon.workArea
		if x >= wa.X+wa.W {
			x = wa.X + wa.W - c.width()
		}
		if y >= wa.Y+wa.H {
			y = wa.Y + wa.H - c.height()
		}
		if x+w+2*c.bw <= wa.X {
			x = wa.X
		}
		if y+h+2*c.bw <= wa.Y {
			y = wa.Y
		}
	}

	if h < cfg.BarHeight {
		h = cfg.BarHeight
	}
	if w < cfg.BarHeight {
		w = cfg.BarHeight
	}

	var arranger *layout
	if c.mon != nil {
		arranger = c.mon.lt[c.mon.sellt]
	}
	if cfg.ResizeHints || c.isFloating || arranger == nil || arranger.Arrange == nil {
		baseIsMin := c.basew == c.minw && c.baseh == c.minh
		if !baseIsMin {
			w -= c.basew
			h -= c.baseh
		}
		if c.mina > 0 && c.maxa > 0 {
			if c.maxa < float64(w)/float64(h) {
				w = int(float64(h)*c.maxa + 0.5)
			} else if c.mina < float64(h)/float64(w) {
				h = int(float64(w)*c.mina + 0.5)
			}
		}
		if baseIsMin {
			w -= c.basew
			h -= c.baseh
		}
		if c.incw != 0 {
			w -= w % c.incw
		}
		if c.inch != 0 {
			h -= h % c.inch
		}
		w = max(w+c.basew, c.minw)
		h = max(h+c.baseh, c.minh)
		if c.maxw != 0 {
			w = min(w, c.maxw)
		}
		if c.maxh != 0 {
			h = min(h, c.maxh)
		}
	}

	changed := x != c.x || y != c.y || w != c.w || h != c.h
	return x, y, w, h, changed
}
