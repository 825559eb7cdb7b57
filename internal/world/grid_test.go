package world

import (
	"errors"
	"math/rand"
	"testing"
)

// expectPanic runs fn and fails unless it panics with a PreconditionError of
// the given kind.
func expectPanic(t *testing.T, kind error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v, got none", kind)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic, got %T: %v", r, r)
		}
		var pe *PreconditionError
		if !errors.As(err, &pe) || !errors.Is(err, kind) {
			t.Fatalf("expected %v, got %v", kind, err)
		}
	}()
	fn()
}

func TestIndexRoundTrip(t *testing.T) {
	g := NewGrid(16, 9)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			h := HexCoord{X: x, Y: y}
			i := g.ToIndex(h)
			if i < 0 || i >= g.Size() {
				t.Fatalf("index %d for %v out of range", i, h)
			}
			if back := g.ToHex(i); back != h {
				t.Fatalf("expected %v, got %v", h, back)
			}
		}
	}
	for i := 0; i < g.Size(); i++ {
		if back := g.ToIndex(g.ToHex(i)); back != i {
			t.Fatalf("expected index %d, got %d", i, back)
		}
	}
}

func TestOutOfBoundsPanics(t *testing.T) {
	g := NewGrid(4, 3)
	expectPanic(t, ErrOutOfBounds, func() { g.ToIndex(HexCoord{X: 4, Y: 0}) })
	expectPanic(t, ErrOutOfBounds, func() { g.ToIndex(HexCoord{X: 0, Y: -1}) })
	expectPanic(t, ErrOutOfBounds, func() { g.ToHex(12) })
	expectPanic(t, ErrOutOfBounds, func() { g.ToHex(-1) })
	expectPanic(t, ErrOutOfBounds, func() { g.Neighbors(99) })
	expectPanic(t, ErrInvalidGrid, func() { NewGrid(0, 3) })
}

func TestDistanceMetric(t *testing.T) {
	g := NewGrid(8, 6)
	for a := 0; a < g.Size(); a++ {
		ha := g.ToHex(a)
		if d := Distance(ha, ha); d != 0 {
			t.Fatalf("expected distance(%v,%v)=0, got %d", ha, ha, d)
		}
		for b := 0; b < g.Size(); b++ {
			hb := g.ToHex(b)
			dab := Distance(ha, hb)
			if dab != Distance(hb, ha) {
				t.Fatalf("distance not symmetric for %v, %v", ha, hb)
			}
			if a != b && dab == 0 {
				t.Fatalf("distinct hexes %v, %v at distance 0", ha, hb)
			}
			for c := 0; c < g.Size(); c += 5 {
				hc := g.ToHex(c)
				if Distance(ha, hc) > dab+Distance(hb, hc) {
					t.Fatalf("triangle inequality fails for %v, %v, %v", ha, hb, hc)
				}
			}
		}
		for _, n := range g.Neighbors(a) {
			if d := Distance(ha, g.ToHex(n)); d != 1 {
				t.Fatalf("expected neighbor distance 1 between %v and %v, got %d", ha, g.ToHex(n), d)
			}
		}
	}
}

func TestNeighborsCounts(t *testing.T) {
	g := NewGrid(16, 9)
	tests := []struct {
		hex  HexCoord
		want int
	}{
		{HexCoord{X: 0, Y: 0}, 2},  // top-left corner, even column
		{HexCoord{X: 1, Y: 0}, 5},  // top edge, odd column sits lower
		{HexCoord{X: 15, Y: 8}, 2}, // bottom-right corner, odd column
		{HexCoord{X: 4, Y: 4}, 6},  // interior
		{HexCoord{X: 5, Y: 4}, 6},
	}
	for _, tt := range tests {
		if got := len(g.Neighbors(g.ToIndex(tt.hex))); got != tt.want {
			t.Errorf("%v: expected %d neighbors, got %d", tt.hex, tt.want, got)
		}
	}
}

func TestNeighborDirections(t *testing.T) {
	g := NewGrid(16, 9)
	a := g.ToIndex(HexCoord{X: 3, Y: 4})
	want := map[Direction]HexCoord{
		DirN:  {X: 3, Y: 3},
		DirNE: {X: 4, Y: 4},
		DirSE: {X: 4, Y: 5},
		DirS:  {X: 3, Y: 5},
		DirSW: {X: 2, Y: 5},
		DirNW: {X: 2, Y: 4},
	}
	for d, h := range want {
		if got := g.Neighbor(a, d); got != g.ToIndex(h) {
			t.Errorf("%v of (3,4): expected %v, got %v", d, h, g.ToHex(got))
		}
	}

	corner := g.ToIndex(HexCoord{X: 0, Y: 0})
	for _, d := range []Direction{DirN, DirNE, DirSW, DirNW} {
		if got := g.Neighbor(corner, d); got != OffGrid {
			t.Errorf("%v of (0,0): expected off-grid, got %d", d, got)
		}
	}
}

func TestNeighborIsSymmetric(t *testing.T) {
	g := NewGrid(7, 5)
	for i := 0; i < g.Size(); i++ {
		for _, d := range Directions {
			n := g.Neighbor(i, d)
			if n == OffGrid {
				continue
			}
			if back := g.Neighbor(n, d.Opposite()); back != i {
				t.Fatalf("%d -%v-> %d but %v leads to %d", i, d, n, d.Opposite(), back)
			}
		}
	}
}

func TestRandomHexCoversGrid(t *testing.T) {
	g := NewGrid(4, 3)
	rng := rand.New(rand.NewSource(7))
	seen := make(map[HexCoord]int)
	for i := 0; i < 2000; i++ {
		h := g.RandomHex(rng)
		if !g.InBounds(h) {
			t.Fatalf("random hex %v off grid", h)
		}
		seen[h]++
	}
	if len(seen) != g.Size() {
		t.Fatalf("expected all %d hexes drawn, got %d", g.Size(), len(seen))
	}
}
