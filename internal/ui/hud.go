//go:build ebiten

package ui

import (
	"image/color"

	"toruslife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 4
	hudLineHeight = 13
)

// HUD draws a one-line run status over the top-left corner of the board.
type HUD struct {
	provider core.ParameterProvider
	line     string
	pixel    *ebiten.Image
}

// NewHUD constructs a HUD for sims that expose parameters. Other sims get a
// nil HUD, on which Update and Draw are no-ops.
func NewHUD(sim core.Sim) *HUD {
	provider, ok := sim.(core.ParameterProvider)
	if !ok {
		return nil
	}
	h := &HUD{provider: provider}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update refreshes the cached status line.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	h.line = StatusLine(h.provider.Parameters())
}

// Draw renders the status line on a translucent backdrop.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.line == "" {
		return
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, h.line)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()+2*hudPadding), float64(hudLineHeight+2*hudPadding))
	op.ColorScale.ScaleWithColor(color.RGBA{A: 170})
	screen.DrawImage(h.pixel, op)

	text.Draw(screen, h.line, face, hudPadding, hudPadding+hudLineHeight-3, color.White)
}
