package life

import (
	"errors"
	"fmt"

	"toruslife/pkg/core"
)

var (
	// ErrNilGrid reports a missing board passed to Load.
	ErrNilGrid = errors.New("life: nil grid")
	// ErrDensity reports a seeding density outside [0, 1].
	ErrDensity = errors.New("life: density out of range")
)

// Life adapts a RunState to the core.Sim contract so drivers can step and
// render it.
type Life struct {
	cfg     Config
	pattern *core.Grid
	state   RunState
}

// New returns a Life simulation with an all-dead board of the configured
// size. Call Reset or Load before stepping. Negative dimensions and a
// density outside [0, 1] are rejected.
func New(cfg Config) (*Life, error) {
	if cfg.Density < 0 || cfg.Density > 1 {
		return nil, fmt.Errorf("%w: %g", ErrDensity, cfg.Density)
	}
	g, err := core.NewGrid(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, fmt.Errorf("life: %w", err)
	}
	l := &Life{cfg: cfg}
	l.start(g)
	return l, nil
}

func (l *Life) start(g *core.Grid) {
	l.state = NewRunState(g)
	l.state.Workers = l.cfg.Workers
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.state.Current.Size() }

// Cells returns a copy of the current generation.
func (l *Life) Cells() []uint8 { return l.state.Current.Cells() }

// Grid returns the current generation.
func (l *Life) Grid() *core.Grid { return l.state.Current }

// State returns the run state.
func (l *Life) State() RunState { return l.state }

// Converged reports whether the run has halted.
func (l *Life) Converged() bool { return l.state.Converged }

// Iterations returns the number of distinct generations produced so far.
func (l *Life) Iterations() int { return l.state.Iterations }

// Load starts a new run from g and makes it the board Reset returns to.
func (l *Life) Load(g *core.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	if g.Rows() != l.cfg.Rows || g.Cols() != l.cfg.Cols {
		return fmt.Errorf("life: pattern is %dx%d, board is %dx%d", g.Rows(), g.Cols(), l.cfg.Rows, l.cfg.Cols)
	}
	l.pattern = g
	l.start(g)
	return nil
}

// Reset starts a new run. A loaded pattern is restored as is; otherwise the
// board is randomized from seed using the configured density.
func (l *Life) Reset(seed int64) {
	if l.pattern != nil {
		l.start(l.pattern)
		return
	}
	g, err := core.RandomGrid(l.cfg.Rows, l.cfg.Cols, core.NewRNG(seed), l.cfg.Density)
	if err != nil {
		// New validated the dimensions, so this cannot happen.
		panic(err)
	}
	l.cfg.Seed = seed
	l.start(g)
}

// Step advances the run by one generation; it does nothing once converged.
func (l *Life) Step() {
	l.state = Step(l.state)
}

// Parameters reports the board configuration and run progress.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("rows", "Rows", l.cfg.Rows),
				core.IntParam("cols", "Cols", l.cfg.Cols),
				core.Int64Param("seed", "Seed", l.cfg.Seed),
				core.FloatParam("density", "Density", l.cfg.Density),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("iterations", "Iterations", l.state.Iterations),
				core.IntParam("alive", "Alive", l.state.Current.Alive()),
				core.StringParam("status", "Status", l.state.Status().String()),
			},
		},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		l, err := New(FromMap(cfg))
		if err != nil {
			// FromMap keeps defaults for out-of-range values.
			panic(err)
		}
		return l
	})
}
