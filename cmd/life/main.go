//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"toruslife/internal/app"
	"toruslife/internal/stats"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.ApplyEnv(flag.CommandLine, nil)

	sim, reseed, err := buildSim(cfg)
	if err != nil {
		log.Fatalf("life: %v", err)
	}

	game := app.New(sim, cfg.Scale, cfg.Seed, stats.NewHTTPReporter(cfg.APIURL), reseed)
	size := sim.Size()

	ebiten.SetWindowTitle("toruslife")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
