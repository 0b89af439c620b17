package main

import "testing"

func newTestMonitor() *monitor {
	m := &monitor{tagset: [2]uint32{1, 1}}
	m.lt[0] = layoutTile
	m.lt[1] = layoutFloating
	return m
}

func TestAttachDetach(t *testing.T) {
	m := newTestMonitor()
	c1 := &client{mon: m, tags: 1}
	c2 := &client{mon: m, tags: 1}
	c3 := &client{mon: m, tags: 1}

	attach(c1)
	attach(c2)
	attach(c3)

	// attach prepends, so the list reads c3, c2, c1.
	if m.clients != c3 || c3.next != c2 || c2.next != c1 || c1.next != nil {
		t.Fatalf("attach order wrong: got %v -> %v -> %v", m.clients, c3.next, c2.next)
	}

	detach(c2)
	if m.clients != c3 || c3.next != c1 || c1.next != nil {
		t.Errorf("detach(c2) left list as %v -> %v, want c3 -> c1", m.clients, c3.next)
	}
	if c2.next != nil {
		t.Errorf("detach(c2) left c2.next = %v, want nil", c2.next)
	}
}

func TestAttachStackDetachStackUpdatesSelection(t *testing.T) {
	m := newTestMonitor()
	c1 := &client{mon: m, tags: 1}
	c2 := &client{mon: m, tags: 1}

	attachStack(c1)
	attachStack(c2)
	m.sel = c2

	detachStack(c2)
	if m.sel != c1 {
		t.Errorf("detachStack(selected) left m.sel = %v, want c1 (next visible)", m.sel)
	}
	if m.stack != c1 {
		t.Errorf("detachStack(c2) left stack head %v, want c1", m.stack)
	}
}

func TestIsVisible(t *testing.T) {
	m := newTestMonitor()
	m.tagset[m.seltags] = 1 << 2
	c := &client{mon: m, tags: 1 << 2}
	if !c.isVisible() {
		t.Errorf("client on the visible tag reports isVisible() = false")
	}
	c.tags = 1 << 3
	if c.isVisible() {
		t.Errorf("client on a hidden tag reports isVisible() = true")
	}
}

func TestNextTiledSkipsFloating(t *testing.T) {
	m := newTestMonitor()
	m.tagset[m.seltags] = 1
	c1 := &client{mon: m, tags: 1, isFloating: true}
	c2 := &client{mon: m, tags: 1}
	c1.next = c2

	if got := nextTiled(c1); got != c2 {
		t.Errorf("nextTiled skipped over a floating head incorrectly: got %v, want c2", got)
	}
}

func TestFindClient(t *testing.T) {
	m := newTestMonitor()
	c := &client{mon: m, win: 42}
	attach(c)
	oldMonStart := monStart
	monStart = m
	defer func() { monStart = oldMonStart }()

	if got := findClient(42); got != c {
		t.Errorf("findClient(42) = %v, want c", got)
	}
	if got := findClient(99); got != nil {
		t.Errorf("findClient(99) = %v, want nil", got)
	}
}
