//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from binary cell data.
type GridPainter struct {
	w, h    int
	scale   int
	palette Palette
	img     *ebiten.Image
	buf     []byte
}

// NewGridPainter allocates a painter for a w x h grid drawn at scale pixels
// per cell.
func NewGridPainter(w, h, scale int, p Palette) *GridPainter {
	if scale < 1 {
		scale = 1
	}
	gp := &GridPainter{w: w, h: h, scale: scale, palette: p}
	if w > 0 && h > 0 {
		gp.buf = make([]byte, 4*w*scale*h*scale)
		gp.img = ebiten.NewImage(w*scale, h*scale)
	}
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8) {
	if gp.img == nil || len(cells) != gp.w*gp.h {
		return
	}
	FillGridRGBA(gp.buf, cells, gp.w, gp.h, gp.scale, gp.palette)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}
