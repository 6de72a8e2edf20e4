package render

import "image/color"

// Palette holds the colors used to draw a binary grid.
type Palette struct {
	Alive color.RGBA
	Dead  color.RGBA
	Line  color.RGBA
}

// DefaultPalette draws live cells black and dead cells white, separated by
// light grey grid lines.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.RGBA{A: 255},
		Dead:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Line:  color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 255},
	}
}

// minLineScale is the smallest cell size that gets grid lines; below it the
// lines would cover the cells.
const minLineScale = 3

// FillGridRGBA converts w x h binary cells into RGBA pixels in buf, drawing
// each cell as a scale x scale block. With scale >= 3 the top row and left
// column of every block use the line color. buf must hold
// 4*w*scale*h*scale bytes.
func FillGridRGBA(buf []byte, cells []uint8, w, h, scale int, p Palette) {
	if scale < 1 {
		scale = 1
	}
	stride := w * scale
	lines := scale >= minLineScale
	for py := 0; py < h*scale; py++ {
		y, oy := py/scale, py%scale
		for px := 0; px < stride; px++ {
			x, ox := px/scale, px%scale
			col := p.Dead
			switch {
			case lines && (ox == 0 || oy == 0):
				col = p.Line
			case cells[y*w+x] != 0:
				col = p.Alive
			}
			base := (py*stride + px) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
