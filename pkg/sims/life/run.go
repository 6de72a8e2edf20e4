package life

import "toruslife/pkg/core"

// Status classifies a run.
type Status int

const (
	// Running means the run has not yet been seen to repeat.
	Running Status = iota
	// Converged means the run reached a still life or a period-2 oscillator.
	// It is terminal.
	Converged
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Converged:
		return "converged"
	default:
		return "unknown"
	}
}

// RunState is one simulation run. It is a plain value: Step returns the
// successor and leaves its argument alone, and Current is never mutated.
type RunState struct {
	Current    *core.Grid
	Iterations int
	Converged  bool

	// Workers > 1 selects NextGenerationParallel with that many strips.
	Workers int
}

// NewRunState starts a run from g, which must not be nil. A 0x0 grid is
// fine and converges on the first Step.
func NewRunState(g *core.Grid) RunState {
	if g == nil {
		panic("life.NewRunState: nil grid")
	}
	return RunState{Current: g}
}

// Status reports Running or Converged.
func (s RunState) Status() Status {
	if s.Converged {
		return Converged
	}
	return Running
}

func (s RunState) next(g *core.Grid) *core.Grid {
	if s.Workers > 1 {
		return NextGenerationParallel(g, s.Workers)
	}
	return NextGeneration(g)
}

// Step advances the run by one generation.
//
// It looks two generations ahead: if the grid after next equals the current
// one, the run is marked converged and Current is kept as is. Otherwise
// Current becomes the next generation and Iterations grows by one. Calling
// Step on a converged run returns it unchanged.
//
// Cycles longer than two generations are not detected and keep the run in
// the Running state.
func Step(s RunState) RunState {
	if s.Converged {
		return s
	}
	next := s.next(s.Current)
	afterNext := s.next(next)
	if core.Equal(s.Current, afterNext) {
		s.Converged = true
		return s
	}
	s.Iterations++
	s.Current = next
	return s
}

// RunUntil steps s until it converges or maxSteps calls have been made.
// maxSteps <= 0 means no limit, which never returns for cycles of period
// three or more.
func RunUntil(s RunState, maxSteps int) RunState {
	for i := 0; !s.Converged && (maxSteps <= 0 || i < maxSteps); i++ {
		s = Step(s)
	}
	return s
}
