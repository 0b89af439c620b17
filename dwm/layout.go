package main

import "fmt"

// layout pairs a status-bar symbol with an arranger. A nil Arrange denotes
// floating mode: no tiling pass runs (spec.md §3.1, §4.5).
type layout struct {
	Symbol  string
	Arrange func(*monitor)
}

// arrange lays out m's visible clients under its selected layout, then
// restacks and redraws. Mirrors dwm.c's arrange/arrangemon split: arrange
// hides/shows nothing (dwm has no hidden-window concept beyond tag
// visibility), it just reapplies geometry and restacking.
func arrange(m *monitor) {
	if m == nil {
		for x := monStart; x != nil; x = x.next {
			arrangeMon(x)
		}
		return
	}
	arrangeMon(m)
}

func arrangeMon(m *monitor) {
	m.ltSymbol = m.lt[m.sellt].Symbol
	if m.lt[m.sellt].Arrange != nil {
		m.lt[m.sellt].Arrange(m)
	}
	restack(m)
}

func countTiled(m *monitor) int {
	n := 0
	for c := nextTiled(m.clients); c != nil; c = nextTiled(c.next) {
		n++
	}
	return n
}

// tileArrange stacks up to nmaster clients on the left occupying mfact of
// the work width (or the full width if n <= nmaster), remaining clients
// stacked on the right; spec.md §4.5.
func tileArrange(m *monitor) {
	n := countTiled(m)
	if n == 0 {
		return
	}

	wa := m.workArea
	mw := wa.W
	if n > m.nmaster {
		if m.nmaster > 0 {
			mw = int(float64(wa.W) * m.mfact)
		} else {
			mw = 0
		}
	}

	var (
		i      int
		my, ty int
	)
	for c := nextTiled(m.clients); c != nil; c = nextTiled(c.next) {
		if i < m.nmaster {
			h := (wa.H - my) / (min(n, m.nmaster) - i)
			resize(c, wa.X, wa.Y+my, mw-2*c.bw, h-2*c.bw, false)
			if my+c.height() < wa.H {
				my += c.height()
			}
		} else {
			h := (wa.H - ty) / (n - i)
			resize(c, wa.X+mw, wa.Y+ty, wa.W-mw-2*c.bw, h-2*c.bw, false)
			if ty+c.height() < wa.H {
				ty += c.height()
			}
		}
		i++
	}
}

// monocleArrange gives every visible client the full work area; the layout
// symbol becomes "[n]" for n visible clients, spec.md §4.5.
func monocleArrange(m *monitor) {
	n := countTiled(m)
	m.ltSymbol = fmt.Sprintf("[%d]", n)
	wa := m.workArea
	for c := nextTiled(m.clients); c != nil; c = nextTiled(c.next) {
		resize(c, wa.X, wa.Y, wa.W-2*c.bw, wa.H-2*c.bw, false)
	}
}

// bstackArrange puts masters in a row across the top, stack clients sharing
// the bottom row divided by width, spec.md §4.5.
func bstackArrange(m *monitor) {
	n := countTiled(m)
	if n == 0 {
		return
	}

	wa := m.workArea
	mh := wa.H
	if n > m.nmaster {
		if m.nmaster > 0 {
			mh = int(float64(wa.H) * m.mfact)
		} else {
			mh = 0
		}
	}

	var (
		i      int
		mx, tx int
	)
	for c := nextTiled(m.clients); c != nil; c = nextTiled(c.next) {
		if i < m.nmaster {
			w := (wa.W - mx) / (min(n, m.nmaster) - i)
			resize(c, wa.X+mx, wa.Y, w-2*c.bw, mh-2*c.bw, false)
			if mx+c.width() < wa.W {
				mx += c.width()
			}
		} else {
			w := (wa.W - tx) / (n - i)
			resize(c, wa.X+tx, wa.Y+mh, w-2*c.bw, wa.H-mh-2*c.bw, false)
			if tx+c.width() < wa.W {
				tx += c.width()
			}
		}
		i++
	}
}

// bstackHorizArrange puts masters in a row across the top; stack clients fill
// the bottom as stacked rows divided by height, spec.md §4.5.
func bstackHorizArrange(m *monitor) {
	n := countTiled(m)
	if n == 0 {
		return
	}

	wa := m.workArea
	mh := wa.H
	if n > m.nmaster {
		if m.nmaster > 0 {
			mh = int(float64(wa.H) * m.mfact)
		} else {
			mh = 0
		}
	}

	var (
		i      int
		mx, ty int
	)
	for c := nextTiled(m.clients); c != nil; c = nextTiled(c.next) {
		if i < m.nmaster {
			w := (wa.W - mx) / (min(n, m.nmaster) - i)
			resize(c, wa.X+mx, wa.Y, w-2*c.bw, mh-2*c.bw, false)
			if mx+c.width() < wa.W {
				mx += c.width()
			}
		} else {
			h := (wa.H - mh - ty) / (n - i)
			resize(c, wa.X, wa.Y+mh+ty, wa.W-2*c.bw, h-2*c.bw, false)
			if ty+c.height() < wa.H-mh {
				ty += c.height()
			}
		}
		i++
	}
}
