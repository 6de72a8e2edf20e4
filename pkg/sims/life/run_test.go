package life

import (
	"testing"

	"toruslife/pkg/core"
)

func TestNewRunState(t *testing.T) {
	g := board(t, 3, 3)
	s := NewRunState(g)
	if s.Iterations != 0 || s.Converged || s.Status() != Running {
		t.Fatalf("unexpected initial state %+v", s)
	}
}

func TestNewRunStateRejectsNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewRunState(nil) should panic")
		}
	}()
	NewRunState(nil)
}

func TestStepDetectsStillLife(t *testing.T) {
	// L-tromino grows into a block after one generation.
	start := board(t, 6, 6, [2]int{2, 2}, [2]int{2, 3}, [2]int{3, 2})
	block := board(t, 6, 6, [2]int{2, 2}, [2]int{2, 3}, [2]int{3, 2}, [2]int{3, 3})

	s := Step(NewRunState(start))
	if s.Converged || s.Iterations != 1 || !core.Equal(s.Current, block) {
		t.Fatalf("first step: converged=%v iterations=%d\n%s", s.Converged, s.Iterations, s.Current)
	}

	s = Step(s)
	if !s.Converged || s.Status() != Converged {
		t.Fatal("block should be detected as converged")
	}
	if s.Iterations != 1 || !core.Equal(s.Current, block) {
		t.Fatalf("converging step must not advance: iterations=%d\n%s", s.Iterations, s.Current)
	}
}

func TestStepDetectsOscillator(t *testing.T) {
	vertical := board(t, 5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	before := vertical.Cells()

	s := Step(NewRunState(vertical))
	if !s.Converged {
		t.Fatal("blinker returns to itself after two generations and should converge")
	}
	if s.Iterations != 0 {
		t.Fatalf("iterations=%d, want 0", s.Iterations)
	}
	if s.Current != vertical {
		t.Fatal("converged run should keep the pre-step grid")
	}
	for i, v := range vertical.Cells() {
		if v != before[i] {
			t.Fatal("Step mutated the grid")
		}
	}
}

func TestStepCountsDistinctGenerations(t *testing.T) {
	// An I-tetromino settles into a beehive after two distinct generations.
	start := board(t, 8, 8, [2]int{3, 2}, [2]int{3, 3}, [2]int{3, 4}, [2]int{3, 5})
	beehive := board(t, 8, 8,
		[2]int{2, 3}, [2]int{2, 4},
		[2]int{3, 2}, [2]int{3, 5},
		[2]int{4, 3}, [2]int{4, 4},
	)

	s := RunUntil(NewRunState(start), 10)
	if !s.Converged {
		t.Fatal("expected convergence")
	}
	if s.Iterations != 2 {
		t.Fatalf("iterations=%d, want 2", s.Iterations)
	}
	if !core.Equal(s.Current, beehive) {
		t.Fatalf("expected a beehive, got\n%s", s.Current)
	}
}

func TestConvergedIsTerminal(t *testing.T) {
	block := board(t, 4, 4, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2})
	s := Step(NewRunState(block))
	if !s.Converged {
		t.Fatal("block should converge immediately")
	}
	for i := 0; i < 5; i++ {
		again := Step(s)
		if again.Current != s.Current || again.Iterations != s.Iterations || !again.Converged {
			t.Fatalf("step %d changed a converged run", i)
		}
	}
}

func TestStepDoesNotAliasPreviousState(t *testing.T) {
	start := board(t, 6, 6, [2]int{2, 2}, [2]int{2, 3}, [2]int{3, 2})
	s0 := NewRunState(start)
	s1 := Step(s0)
	if s0.Iterations != 0 || s0.Current != start || s0.Converged {
		t.Fatal("Step modified the state it was given")
	}
	if s1.Current == s0.Current {
		t.Fatal("running step should install a new generation")
	}
}

func TestEmptyGridConvergesImmediately(t *testing.T) {
	g, _ := core.NewGrid(0, 0)
	s := Step(NewRunState(g))
	if !s.Converged || s.Iterations != 0 {
		t.Fatalf("empty grid: converged=%v iterations=%d", s.Converged, s.Iterations)
	}
}

func TestGliderNeverConverges(t *testing.T) {
	// A glider on a torus has period 4 in place and a longer period overall;
	// period-2 detection never fires.
	glider := board(t, 8, 8, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2})
	s := RunUntil(NewRunState(glider), 64)
	if s.Converged {
		t.Fatal("glider should keep running")
	}
	if s.Iterations != 64 {
		t.Fatalf("iterations=%d, want 64", s.Iterations)
	}
}

func TestParallelRunMatchesSequential(t *testing.T) {
	g, _ := core.RandomGrid(24, 24, core.NewRNG(3), 0.5)
	seq := RunUntil(NewRunState(g), 200)
	par := NewRunState(g)
	par.Workers = 4
	par = RunUntil(par, 200)
	if seq.Iterations != par.Iterations || seq.Converged != par.Converged || !core.Equal(seq.Current, par.Current) {
		t.Fatalf("parallel run diverged: seq %d/%v par %d/%v", seq.Iterations, seq.Converged, par.Iterations, par.Converged)
	}
}
