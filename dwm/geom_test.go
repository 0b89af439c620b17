package main

import "testing"

func TestIntersectArea(t *testing.T) {
	var tests = []struct {
		a, b rect
		out  int
	}{
		{rect{0, 0, 10, 10}, rect{5, 5, 10, 10}, 25},
		{rect{0, 0, 10, 10}, rect{20, 20, 10, 10}, 0},
		{rect{0, 0, 10, 10}, rect{0, 0, 10, 10}, 100},
		{rect{0, 0, 10, 10}, rect{10, 0, 10, 10}, 0},
	}
	for _, tt := range tests {
		if ret := intersectArea(tt.a, tt.b); ret != tt.out {
			t.Errorf("intersectArea(%v, %v) = %d, want %d", tt.a, tt.b, ret, tt.out)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := rect{10, 10, 100, 50}
	var tests = []struct {
		x, y int
		out  bool
	}{
		{10, 10, true},
		{109, 59, true},
		{110, 10, false},
		{10, 60, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		if ret := r.contains(tt.x, tt.y); ret != tt.out {
			t.Errorf("rect.contains(%d, %d) = %v, want %v", tt.x, tt.y, ret, tt.out)
		}
	}
}

func TestPointToMon(t *testing.T) {
	m1 := &monitor{screenArea: rect{0, 0, 800, 600}}
	m2 := &monitor{screenArea: rect{800, 0, 800, 600}}
	m1.next = m2
	oldMonStart, oldSelmon := monStart, selmon
	monStart, selmon = m1, m1
	defer func() { monStart, selmon = oldMonStart, oldSelmon }()

	if got := pointtomon(100, 100); got != m1 {
		t.Errorf("pointtomon(100, 100) = %v, want m1", got)
	}
	if got := pointtomon(900, 100); got != m2 {
		t.Errorf("pointtomon(900, 100) = %v, want m2", got)
	}
	if got := pointtomon(-5, -5); got != m1 {
		t.Errorf("pointtomon(-5, -5) = %v, want m1 (fallback)", got)
	}
}

func TestRectToMon(t *testing.T) {
	m1 := &monitor{screenArea: rect{0, 0, 800, 600}}
	m2 := &monitor{screenArea: rect{800, 0, 800, 600}}
	m1.next = m2
	oldMonStart, oldSelmon := monStart, selmon
	monStart, selmon = m1, m1
	defer func() { monStart, selmon = oldMonStart, oldSelmon }()

	if got := recttomon(rect{780, 0, 100, 100}); got != m2 {
		t.Errorf("recttomon mostly-on-m2 = %v, want m2", got)
	}
	if got := recttomon(rect{0, 0, 100, 100}); got != m1 {
		t.Errorf("recttomon on-m1 = %v, want m1", got)
	}
}
