// Package life implements Conway's Game of Life on a toroidal grid together
// with a run state that halts once the board settles into a still life or a
// period-2 oscillator.
package life

import (
	"golang.org/x/sync/errgroup"

	"toruslife/pkg/core"
)

// NextGeneration applies Conway's rule to every cell of g and returns the
// result as a new grid. Neighbor counts are taken from g only, so all cells
// change simultaneously; g itself is never modified.
func NextGeneration(g *core.Grid) *core.Grid {
	rows, cols := g.Rows(), g.Cols()
	next := make([]uint8, rows*cols)
	if !g.Empty() {
		fillRows(g, next, 0, rows)
	}
	return core.Adopt(rows, cols, next)
}

// NextGenerationParallel computes the same result as NextGeneration by
// splitting the rows into strips and evaluating each strip on its own
// goroutine. It returns once every strip is done.
func NextGenerationParallel(g *core.Grid, workers int) *core.Grid {
	rows, cols := g.Rows(), g.Cols()
	if workers <= 1 || rows < 2 || g.Empty() {
		return NextGeneration(g)
	}
	if workers > rows {
		workers = rows
	}
	next := make([]uint8, rows*cols)

	var eg errgroup.Group
	for i := 0; i < workers; i++ {
		start := i * rows / workers
		end := (i + 1) * rows / workers
		eg.Go(func() error {
			fillRows(g, next, start, end)
			return nil
		})
	}
	// Strips cannot fail; Wait only joins them.
	eg.Wait()
	return core.Adopt(rows, cols, next)
}

// fillRows writes the next state of rows [start, end) into dst. Strips never
// overlap, so concurrent calls on disjoint ranges are safe.
func fillRows(g *core.Grid, dst []uint8, start, end int) {
	cols := g.Cols()
	for y := start; y < end; y++ {
		for x := 0; x < cols; x++ {
			dst[y*cols+x] = rule(g.CellAt(y, x), liveNeighbors(g, y, x))
		}
	}
}

func liveNeighbors(g *core.Grid, y, x int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n += int(g.CellAt(y+dy, x+dx))
		}
	}
	return n
}

func rule(cell uint8, neighbors int) uint8 {
	alive := cell == 1
	if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
		return 1
	}
	return 0
}
