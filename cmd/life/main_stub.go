//go:build !ebiten

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"toruslife/internal/app"
	"toruslife/internal/stats"
	"toruslife/pkg/core"
)

// Without the ebiten tag the simulation runs headless and prints the final
// board. Build with -tags ebiten for the window.
func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	quietFrames := flag.Bool("quiet", false, "do not print the final board")
	flag.Parse()
	cfg.ApplyEnv(flag.CommandLine, nil)

	sim, _, err := buildSim(cfg)
	if err != nil {
		log.Fatalf("life: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := &app.Runner{
		Sim:      sim,
		Reporter: stats.NewHTTPReporter(cfg.APIURL),
		MaxSteps: cfg.MaxSteps,
	}
	if cfg.TPS > 0 {
		runner.Pacer = core.NewFixedStep(cfg.TPS)
	}

	res, err := runner.Run(ctx)
	if err != nil {
		log.Printf("life: %v", err)
	}
	if !*quietFrames {
		fmt.Print(sim.Grid())
	}
	fmt.Printf("steps=%d iterations=%d converged=%v alive=%d\n", res.Steps, res.Iterations, res.Converged, sim.Grid().Alive())
	if !res.Converged {
		os.Exit(1)
	}
}
