package main

import "testing"

// newTiledMonitor builds n clients linked in index order
// (m.clients -> clients[0] -> clients[1] -> ...), the order tileArrange
// walks them in.
func newTiledMonitor(n int) (*monitor, []*client) {
	m := newTestMonitor()
	m.workArea = rect{0, 0, 1000, 800}
	m.nmaster = 1
	m.mfact = 0.5
	m.tagset[m.seltags] = 1

	clients := make([]*client, n)
	for i := range clients {
		clients[i] = &client{mon: m, tags: 1}
	}
	if n > 0 {
		m.clients = clients[0]
		for i := 0; i < n-1; i++ {
			clients[i].next = clients[i+1]
		}
	}
	return m, clients
}

func TestCountTiled(t *testing.T) {
	m, _ := newTiledMonitor(3)
	if got := countTiled(m); got != 3 {
		t.Errorf("countTiled = %d, want 3", got)
	}
}

func TestCountTiledSkipsFloating(t *testing.T) {
	m, clients := newTiledMonitor(3)
	clients[1].isFloating = true
	if got := countTiled(m); got != 2 {
		t.Errorf("countTiled with one floating client = %d, want 2", got)
	}
}

// TestTileArrangeMasterGetsMFactWidth verifies the master column occupies
// mfact of the work-area width when more clients exist than nmaster; each
// client sits inside its column inset by cfg.Gap on every side.
func TestTileArrangeMasterGetsMFactWidth(t *testing.T) {
	m, clients := newTiledMonitor(2)
	tileArrange(m)

	colW := int(float64(m.workArea.W) * m.mfact)
	wantW := colW - 2*cfg.Gap
	if clients[0].w != wantW {
		t.Errorf("master client width = %d, want %d (mfact share of %d minus gaps)", clients[0].w, wantW, m.workArea.W)
	}
	if clients[0].x != m.workArea.X+cfg.Gap {
		t.Errorf("master client x = %d, want %d", clients[0].x, m.workArea.X+cfg.Gap)
	}
	if clients[1].x != m.workArea.X+colW+cfg.Gap {
		t.Errorf("stack client x = %d, want %d (right of master column)", clients[1].x, m.workArea.X+colW+cfg.Gap)
	}
}

// TestTileArrangeSingleClientFillsWorkArea checks the nmaster >= n case:
// one client with no stack occupies the full work width.
func TestTileArrangeSingleClientFillsWorkArea(t *testing.T) {
	m, clients := newTiledMonitor(1)
	tileArrange(m)

	if clients[0].w != m.workArea.W {
		t.Errorf("sole master client width = %d, want full work width %d", clients[0].w, m.workArea.W)
	}
}

func TestMonocleArrangeFillsWorkArea(t *testing.T) {
	m, clients := newTiledMonitor(3)
	m.lt[m.sellt] = layoutMonocle
	monocleArrange(m)
	for i, c := range clients {
		if c.w != m.workArea.W || c.h != m.workArea.H {
			t.Errorf("monocle client %d geometry = (%d, %d), want full work area (%d, %d)", i, c.w, c.h, m.workArea.W, m.workArea.H)
		}
	}
	if m.ltSymbol != "[3]" {
		t.Errorf("monocleArrange set ltSymbol = %q, want %q", m.ltSymbol, "[3]")
	}
}
