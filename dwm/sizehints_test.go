package main

import "testing"

// TestApplySizeHintsIdempotent checks that re-applying the hints to the
// geometry applySizeHints already produced leaves it unchanged (spec.md §8
// property 3).
func TestApplySizeHintsIdempotent(t *testing.T) {
	m := &monitor{workArea: rect{0, 0, 1000, 800}}
	c := &client{mon: m, x: 0, y: 0, w: 50, h: 50, incw: 10, inch: 10, minw: 20, minh: 20}

	x, y, w, h, changed := applySizeHints(c, 10, 10, 97, 63, false)
	if !changed {
		t.Fatalf("first applySizeHints reported no change")
	}
	c.x, c.y, c.w, c.h = x, y, w, h

	_, _, _, _, changed2 := applySizeHints(c, x, y, w, h, false)
	if changed2 {
		t.Errorf("applySizeHints not idempotent: reapplying (%d,%d,%d,%d) reported a change", x, y, w, h)
	}
}

func TestApplySizeHintsMinimumSize(t *testing.T) {
	m := &monitor{workArea: rect{0, 0, 1000, 800}}
	c := &client{mon: m, minw: 100, minh: 100}

	_, _, w, h, _ := applySizeHints(c, 0, 0, 10, 10, false)
	if w < 100 || h < 100 {
		t.Errorf("applySizeHints(w=10,h=10) with minw=minh=100 = (%d, %d), want >= (100, 100)", w, h)
	}
}

func TestApplySizeHintsMaximumSize(t *testing.T) {
	m := &monitor{workArea: rect{0, 0, 1000, 800}}
	c := &client{mon: m, maxw: 200, maxh: 200}

	_, _, w, h, _ := applySizeHints(c, 0, 0, 5000, 5000, false)
	if w > 200 || h > 200 {
		t.Errorf("applySizeHints(w=5000,h=5000) with maxw=maxh=200 = (%d, %d), want <= (200, 200)", w, h)
	}
}

func TestApplySizeHintsIncrement(t *testing.T) {
	m := &monitor{workArea: rect{0, 0, 1000, 800}}
	c := &client{mon: m, basew: 0, baseh: 0, minw: 0, minh: 0, incw: 10, inch: 10}

	_, _, w, h, _ := applySizeHints(c, 0, 0, 107, 93, false)
	if w%10 != 0 || h%10 != 0 {
		t.Errorf("applySizeHints with incw=inch=10 produced (%d, %d), not a multiple of 10", w, h)
	}
}

func TestApplySizeHintsNeverZero(t *testing.T) {
	m := &monitor{workArea: rect{0, 0, 1000, 800}}
	c := &client{mon: m}

	_, _, w, h, _ := applySizeHints(c, 0, 0, 0, 0, false)
	if w < 1 || h < 1 {
		t.Errorf("applySizeHints(w=0,h=0) = (%d, %d), want both >= 1", w, h)
	}
}
