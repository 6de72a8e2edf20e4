package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDimensions reports a negative row or column count.
	ErrDimensions = errors.New("core: invalid grid dimensions")
	// ErrRagged reports rows of differing lengths.
	ErrRagged = errors.New("core: rows differ in length")
	// ErrCellValue reports a cell value outside {0, 1}.
	ErrCellValue = errors.New("core: cell value is not 0 or 1")
)

// Grid is an immutable rows x cols snapshot of binary cells stored in
// row-major order. Reads through CellAt wrap toroidally.
type Grid struct {
	rows, cols int
	data       []uint8
}

// NewGrid allocates an all-dead grid.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, rows, cols)
	}
	return &Grid{rows: rows, cols: cols, data: make([]uint8, rows*cols)}, nil
}

// FromRows copies a slice of rows into a Grid. Every row must have the same
// length as the first and hold only 0 or 1.
func FromRows(src [][]uint8) (*Grid, error) {
	rows := len(src)
	cols := 0
	if rows > 0 {
		cols = len(src[0])
	}
	data := make([]uint8, 0, rows*cols)
	for r, row := range src {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRagged, r, len(row), cols)
		}
		for c, v := range row {
			if v > 1 {
				return nil, fmt.Errorf("%w: (%d,%d)=%d", ErrCellValue, r, c, v)
			}
		}
		data = append(data, row...)
	}
	return &Grid{rows: rows, cols: cols, data: data}, nil
}

// FromCells copies a row-major buffer into a Grid.
func FromCells(rows, cols int, cells []uint8) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, rows, cols)
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("%w: %d cells for %dx%d", ErrDimensions, len(cells), rows, cols)
	}
	for i, v := range cells {
		if v > 1 {
			return nil, fmt.Errorf("%w: (%d,%d)=%d", ErrCellValue, i/cols, i%cols, v)
		}
	}
	return &Grid{rows: rows, cols: cols, data: append([]uint8(nil), cells...)}, nil
}

// Adopt wraps cells without copying or validating them. Ownership of cells
// passes to the returned Grid; the caller must not write to it afterwards.
// It panics when len(cells) != rows*cols.
func Adopt(rows, cols int, cells []uint8) *Grid {
	if rows < 0 || cols < 0 || len(cells) != rows*cols {
		panic(fmt.Sprintf("core.Adopt: %d cells for %dx%d", len(cells), rows, cols))
	}
	return &Grid{rows: rows, cols: cols, data: cells}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the grid dimensions as width (cols) and height (rows).
func (g *Grid) Size() Size { return Size{W: g.cols, H: g.rows} }

// Empty reports whether the grid has no cells.
func (g *Grid) Empty() bool { return g.rows == 0 || g.cols == 0 }

// Wrap normalizes any integer coordinate onto [0, rows) x [0, cols).
func (g *Grid) Wrap(r, c int) (int, int) {
	r = (r%g.rows + g.rows) % g.rows
	c = (c%g.cols + g.cols) % g.cols
	return r, c
}

// CellAt returns the cell at (r, c) with toroidal wrapping. The grid must
// have non-zero dimensions.
func (g *Grid) CellAt(r, c int) uint8 {
	r, c = g.Wrap(r, c)
	return g.data[r*g.cols+c]
}

// Cells returns a copy of the row-major cell buffer.
func (g *Grid) Cells() []uint8 { return append([]uint8(nil), g.data...) }

// Row returns a copy of row r, which must be in range.
func (g *Grid) Row(r int) []uint8 {
	return append([]uint8(nil), g.data[r*g.cols:(r+1)*g.cols]...)
}

// Alive counts live cells.
func (g *Grid) Alive() int {
	n := 0
	for _, v := range g.data {
		n += int(v)
	}
	return n
}

// String renders the grid with 'O' for live and '.' for dead cells.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for _, v := range g.data[r*g.cols : (r+1)*g.cols] {
			if v != 0 {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Equal reports structural equality: same dimensions and identical cells.
// Grids of different sizes are unequal. Grids without rows are equal
// regardless of their nominal column count.
func Equal(a, b *Grid) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows {
		return false
	}
	if a.rows == 0 {
		return true
	}
	if a.cols != b.cols {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}
