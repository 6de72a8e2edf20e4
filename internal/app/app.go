//go:build ebiten

package app

import (
	"context"
	"errors"
	"log"
	"time"

	"toruslife/internal/render"
	"toruslife/internal/stats"
	"toruslife/internal/ui"
	"toruslife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. It stops
// stepping once the sim converges and reports the run once per reset.
type Game struct {
	sim      core.Sim
	halter   core.Halter
	painter  *render.GridPainter
	hud      *ui.HUD
	reporter stats.Reporter

	scale    int
	paused   bool
	tickOnce bool
	reported bool
	seed     int64
	reseed   bool
}

// New constructs a Game for the provided simulation. reporter may be nil.
// Sims loaded from a pattern should pass reseed=false so R and S restore
// the pattern instead of randomizing.
func New(sim core.Sim, scale int, seed int64, reporter stats.Reporter, reseed bool) *Game {
	size := sim.Size()
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H, scale, render.DefaultPalette()),
		hud:      ui.NewHUD(sim),
		reporter: reporter,
		scale:    scale,
		seed:     seed,
		reseed:   reseed,
	}
	g.halter, _ = sim.(core.Halter)
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.reported = false
}

func (g *Game) converged() bool {
	return g.halter != nil && g.halter.Converged()
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if g.reseed && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if (!g.paused || g.tickOnce) && !g.converged() {
		g.sim.Step()
		g.tickOnce = false
	}
	if g.converged() && !g.reported {
		g.reported = true
		g.report(g.halter.Iterations())
	}
	g.hud.Update()
	return nil
}

func (g *Game) report(iterations int) {
	log.Printf("%s: converged after %d iterations", g.sim.Name(), iterations)
	if g.reporter == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := g.reporter.Report(ctx, iterations); err != nil && !errors.Is(err, stats.ErrNoEndpoint) {
			log.Printf("%s: report: %v", g.sim.Name(), err)
		}
	}()
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells())
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
