package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrPatternTooLarge reports a pattern that does not fit the target grid.
var ErrPatternTooLarge = errors.New("core: pattern larger than grid")

// ParsePattern reads a plaintext pattern. Lines starting with '!' are
// comments; 'O', '*' and '1' mark live cells, '.' and '0' dead ones. Short
// lines are padded with dead cells to the widest line.
func ParsePattern(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	cols := 0
	for _, l := range lines {
		if len(l) > cols {
			cols = len(l)
		}
	}
	data := make([]uint8, len(lines)*cols)
	for y, l := range lines {
		for x, ch := range []byte(l) {
			switch ch {
			case 'O', '*', '1':
				data[y*cols+x] = 1
			case '.', '0':
			default:
				return nil, fmt.Errorf("pattern line %d col %d: unexpected %q", y+1, x+1, ch)
			}
		}
	}
	return Adopt(len(lines), cols, data), nil
}

// Place centers pattern on an all-dead rows x cols grid.
func Place(rows, cols int, pattern *Grid) (*Grid, error) {
	if pattern.rows > rows || pattern.cols > cols {
		return nil, fmt.Errorf("%w: %dx%d into %dx%d", ErrPatternTooLarge, pattern.rows, pattern.cols, rows, cols)
	}
	g, err := NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	offR := (rows - pattern.rows) / 2
	offC := (cols - pattern.cols) / 2
	for r := 0; r < pattern.rows; r++ {
		copy(g.data[(r+offR)*cols+offC:], pattern.data[r*pattern.cols:(r+1)*pattern.cols])
	}
	return g, nil
}
