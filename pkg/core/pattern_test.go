package core

import (
	"errors"
	"strings"
	"testing"
)

func TestParsePattern(t *testing.T) {
	src := "!Name: glider\n.O.\n..O\nOOO\n\n"
	g, err := ParsePattern(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParsePattern: %v", err)
	}
	if g.Rows() != 3 || g.Cols() != 3 {
		t.Fatalf("got %dx%d, want 3x3", g.Rows(), g.Cols())
	}
	if got := g.String(); got != ".O.\n..O\nOOO\n" {
		t.Fatalf("unexpected grid:\n%s", got)
	}
}

func TestParsePatternPadsShortLines(t *testing.T) {
	g, err := ParsePattern(strings.NewReader("O\n.OO\n"))
	if err != nil {
		t.Fatalf("ParsePattern: %v", err)
	}
	if got := g.String(); got != "O..\n.OO\n" {
		t.Fatalf("unexpected grid:\n%s", got)
	}
}

func TestParsePatternRejectsUnknownRunes(t *testing.T) {
	if _, err := ParsePattern(strings.NewReader("O.x\n")); err == nil {
		t.Fatal("expected an error for 'x'")
	}
}

func TestPlaceCentersPattern(t *testing.T) {
	p, err := ParsePattern(strings.NewReader("O\nO\nO\n"))
	if err != nil {
		t.Fatalf("ParsePattern: %v", err)
	}
	g, err := Place(5, 5, p)
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			want := uint8(0)
			if c == 2 && r >= 1 && r <= 3 {
				want = 1
			}
			if got := g.CellAt(r, c); got != want {
				t.Fatalf("cell (%d,%d)=%d, want %d", r, c, got, want)
			}
		}
	}
	if _, err := Place(2, 2, p); !errors.Is(err, ErrPatternTooLarge) {
		t.Fatalf("expected ErrPatternTooLarge, got %v", err)
	}
}
