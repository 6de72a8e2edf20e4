package main

import (
	"fmt"
	"os"

	"toruslife/internal/app"
	"toruslife/pkg/core"
	"toruslife/pkg/sims/life"
)

// buildSim creates the run described by cfg. It reports whether the board is
// random, in which case reseeding makes sense.
func buildSim(cfg *app.Config) (*life.Life, bool, error) {
	factory, ok := core.Sims()["life"]
	if !ok {
		return nil, false, fmt.Errorf("life sim not registered (have %v)", core.SimNames())
	}
	sim, ok := factory(cfg.SimConfig()).(*life.Life)
	if !ok {
		return nil, false, fmt.Errorf("life factory returned an unexpected sim")
	}
	if cfg.Pattern == "" {
		sim.Reset(cfg.Seed)
		return sim, true, nil
	}

	f, err := os.Open(cfg.Pattern)
	if err != nil {
		return nil, false, err
	}
	defer f.Close()
	pattern, err := core.ParsePattern(f)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", cfg.Pattern, err)
	}
	board, err := core.Place(cfg.Rows, cfg.Cols, pattern)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", cfg.Pattern, err)
	}
	if err := sim.Load(board); err != nil {
		return nil, false, err
	}
	return sim, false, nil
}
