package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"toruslife/pkg/core"
	"toruslife/pkg/sims/life"
)

type scenarioResult struct {
	seed       int64
	iterations int
	converged  bool
	alive      int
}

type summary struct {
	runs      int
	converged int
	min, max  int
	median    float64
	mean      float64
}

func main() {
	rows := flag.Int("rows", 80, "board rows")
	cols := flag.Int("cols", 80, "board columns")
	seeds := flag.Int("seeds", 200, "number of seeds to run")
	firstSeed := flag.Int64("first-seed", 1, "first seed; the rest follow consecutively")
	density := flag.Float64("density", 0.5, "initial live-cell probability")
	maxSteps := flag.Int("max-steps", 5000, "give up on a seed after this many steps")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d seeds on %dx%d (%d workers, cap %d steps)\n", *seeds, *rows, *cols, *workers, *maxSteps)

	results := make([]scenarioResult, *seeds)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(*workers, 1))

	start := time.Now()
	for i := range results {
		seed := *firstSeed + int64(i)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runScenario(*rows, *cols, seed, *density, *maxSteps)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatalf("life-sweep: %v", err)
	}
	elapsed := time.Since(start)

	s := summarize(results)
	fmt.Printf("\nConverged %d/%d runs (elapsed %s)\n", s.converged, s.runs, elapsed.Round(time.Millisecond))
	if s.converged > 0 {
		fmt.Printf("Iterations: min=%d median=%.1f mean=%.1f max=%d\n", s.min, s.median, s.mean, s.max)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].iterations > results[j].iterations })
	fmt.Printf("\nLongest runs:\n")
	for i := 0; i < len(results) && i < 5; i++ {
		res := results[i]
		fmt.Printf("%2d) seed=%d iterations=%d converged=%v alive=%d\n", i+1, res.seed, res.iterations, res.converged, res.alive)
	}
}

func runScenario(rows, cols int, seed int64, density float64, maxSteps int) (scenarioResult, error) {
	g, err := core.RandomGrid(rows, cols, core.NewRNG(seed), density)
	if err != nil {
		return scenarioResult{}, err
	}
	s := life.RunUntil(life.NewRunState(g), maxSteps)
	return scenarioResult{
		seed:       seed,
		iterations: s.Iterations,
		converged:  s.Converged,
		alive:      s.Current.Alive(),
	}, nil
}

// summarize computes iteration statistics over the converged runs only.
func summarize(results []scenarioResult) summary {
	s := summary{runs: len(results)}
	var its []int
	for _, r := range results {
		if r.converged {
			its = append(its, r.iterations)
		}
	}
	s.converged = len(its)
	if len(its) == 0 {
		return s
	}
	sort.Ints(its)
	total := 0
	for _, v := range its {
		total += v
	}
	s.min, s.max = its[0], its[len(its)-1]
	s.mean = float64(total) / float64(len(its))
	mid := len(its) / 2
	if len(its)%2 == 1 {
		s.median = float64(its[mid])
	} else {
		s.median = float64(its[mid-1]+its[mid]) / 2
	}
	return s
}
