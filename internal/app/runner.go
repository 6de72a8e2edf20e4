package app

import (
	"context"
	"errors"
	"log"
	"time"

	"toruslife/internal/stats"
	"toruslife/pkg/core"
)

// Result summarizes a headless run.
type Result struct {
	Steps      int
	Iterations int
	Converged  bool
}

// Runner drives a sim without a window: it steps at the pacer's rate until
// the sim converges, MaxSteps is reached or the context ends, then reports
// the iteration count once.
type Runner struct {
	Sim      core.Sim
	Reporter stats.Reporter
	// Pacer limits the step rate; nil steps as fast as possible.
	Pacer    *core.FixedStep
	MaxSteps int
	// OnFrame, when set, is called after every step.
	OnFrame func(core.Sim)
	Logger  *log.Logger
}

// Run blocks until the run ends. It returns the context's error when
// cancelled; reporting failures are logged, not returned.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}
	halter, _ := r.Sim.(core.Halter)

	var res Result
	for {
		if halter != nil && halter.Converged() {
			break
		}
		if r.MaxSteps > 0 && res.Steps >= r.MaxSteps {
			break
		}
		if err := r.wait(ctx); err != nil {
			return r.result(res, halter), err
		}
		r.Sim.Step()
		res.Steps++
		if r.OnFrame != nil {
			r.OnFrame(r.Sim)
		}
	}

	res = r.result(res, halter)
	if !res.Converged {
		logger.Printf("%s: stopped after %d steps without converging", r.Sim.Name(), res.Steps)
		return res, nil
	}
	logger.Printf("%s: converged after %d iterations", r.Sim.Name(), res.Iterations)
	if r.Reporter != nil {
		if err := r.Reporter.Report(ctx, res.Iterations); err != nil && !errors.Is(err, stats.ErrNoEndpoint) {
			logger.Printf("%s: report: %v", r.Sim.Name(), err)
		}
	}
	return res, nil
}

func (r *Runner) result(res Result, halter core.Halter) Result {
	if halter != nil {
		res.Converged = halter.Converged()
		res.Iterations = halter.Iterations()
	} else {
		res.Iterations = res.Steps
	}
	return res
}

func (r *Runner) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.Pacer == nil {
		return nil
	}
	for !r.Pacer.ShouldStep() {
		t := time.NewTimer(r.Pacer.Until())
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
	return nil
}
