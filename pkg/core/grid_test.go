package core

import (
	"errors"
	"slices"
	"testing"
)

func mustRows(t *testing.T, rows [][]uint8) *Grid {
	t.Helper()
	g, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return g
}

func TestCellAtWrapsToroidally(t *testing.T) {
	g := mustRows(t, [][]uint8{
		{1, 0, 1},
		{0, 1, 0},
		{1, 0, 0},
	})

	cases := []struct {
		r, c   int
		wr, wc int
	}{
		{-1, -1, 2, 2},
		{3, 3, 0, 0},
		{1, -1, 1, 2},
		{1, 3, 1, 0},
		{-1, 1, 2, 1},
		{3, 1, 0, 1},
		{-1, 3, 2, 0},
		{3, -1, 0, 2},
		{-7, -10, 2, 2},
		{301, -299, 1, 1},
	}
	for _, tc := range cases {
		if got, want := g.CellAt(tc.r, tc.c), g.CellAt(tc.wr, tc.wc); got != want {
			t.Fatalf("CellAt(%d,%d)=%d, want CellAt(%d,%d)=%d", tc.r, tc.c, got, tc.wr, tc.wc, want)
		}
		if r, c := g.Wrap(tc.r, tc.c); r != tc.wr || c != tc.wc {
			t.Fatalf("Wrap(%d,%d)=(%d,%d), want (%d,%d)", tc.r, tc.c, r, c, tc.wr, tc.wc)
		}
	}
}

func TestCellAtDoesNotMutate(t *testing.T) {
	g := mustRows(t, [][]uint8{{1, 0}, {0, 1}})
	before := g.Cells()
	for i := 0; i < 10; i++ {
		if g.CellAt(-1, 5) != g.CellAt(-1, 5) {
			t.Fatal("repeated reads returned different values")
		}
	}
	if !slices.Equal(before, g.Cells()) {
		t.Fatal("CellAt mutated the grid")
	}
}

func TestFromRowsRejectsMalformedInput(t *testing.T) {
	if _, err := FromRows([][]uint8{{1, 0}, {1}}); !errors.Is(err, ErrRagged) {
		t.Fatalf("expected ErrRagged, got %v", err)
	}
	if _, err := FromRows([][]uint8{{1, 2}}); !errors.Is(err, ErrCellValue) {
		t.Fatalf("expected ErrCellValue, got %v", err)
	}
	if _, err := FromCells(2, 2, []uint8{0, 1, 0}); !errors.Is(err, ErrDimensions) {
		t.Fatalf("expected ErrDimensions, got %v", err)
	}
	if _, err := NewGrid(-1, 3); !errors.Is(err, ErrDimensions) {
		t.Fatalf("expected ErrDimensions, got %v", err)
	}
}

func TestFromRowsCopiesInput(t *testing.T) {
	src := [][]uint8{{1, 0}, {0, 0}}
	g := mustRows(t, src)
	src[0][0] = 0
	if g.CellAt(0, 0) != 1 {
		t.Fatal("grid shares storage with its source rows")
	}
	cells := g.Cells()
	cells[0] = 0
	if g.CellAt(0, 0) != 1 {
		t.Fatal("Cells exposed the backing buffer")
	}
}

func TestEqual(t *testing.T) {
	a := mustRows(t, [][]uint8{{1, 0}, {0, 1}})
	b := mustRows(t, [][]uint8{{1, 0}, {0, 1}})
	if !Equal(a, b) {
		t.Fatal("identical grids should be equal")
	}
	if Equal(a, mustRows(t, [][]uint8{{1, 0}, {1, 1}})) {
		t.Fatal("grids with different values should differ")
	}
	if Equal(a, mustRows(t, [][]uint8{{1, 0}})) {
		t.Fatal("grids with different row counts should differ")
	}
	if Equal(a, mustRows(t, [][]uint8{{1, 0, 1}, {0, 1, 0}})) {
		t.Fatal("grids with different column counts should differ")
	}
	empty := mustRows(t, nil)
	if !Equal(empty, mustRows(t, [][]uint8{})) {
		t.Fatal("empty grids should be equal")
	}
	if Equal(empty, a) || Equal(nil, a) {
		t.Fatal("empty or nil grid should not equal a populated one")
	}
	if !Equal(nil, nil) {
		t.Fatal("nil grids should be equal")
	}

	big := make([][]uint8, 100)
	for i := range big {
		big[i] = ones(100)
	}
	if !Equal(mustRows(t, big), mustRows(t, big)) {
		t.Fatal("large identical grids should be equal")
	}
}

func TestStringAndAlive(t *testing.T) {
	g := mustRows(t, [][]uint8{{1, 0, 0}, {0, 1, 1}})
	if got, want := g.String(), "O..\n.OO\n"; got != want {
		t.Fatalf("String()=%q, want %q", got, want)
	}
	if g.Alive() != 3 {
		t.Fatalf("Alive()=%d, want 3", g.Alive())
	}
	if s := g.Size(); s.W != 3 || s.H != 2 {
		t.Fatalf("Size()=%+v, want 3x2", s)
	}
	if !slices.Equal(g.Row(1), []uint8{0, 1, 1}) {
		t.Fatalf("Row(1)=%v", g.Row(1))
	}
}

func ones(n int) []uint8 {
	buf := make([]uint8, n)
	for i := range buf {
		buf[i] = 1
	}
	return buf
}
