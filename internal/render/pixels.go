package render

import (
	"image/color"

	"lifelike/internal/core"
)

// LiveCells is the read side of a board as the renderers see it.
type LiveCells interface {
	Size() core.Size
	ForEachLiveCell(fn func(x, y int, age uint8))
}

// Palette picks cell colours.
type Palette struct {
	Live color.RGBA
	Dead color.RGBA
	// Heatmap shades live cells by age instead of using Live.
	Heatmap bool
}

// DefaultPalette draws white cells on black.
func DefaultPalette() Palette {
	return Palette{
		Live: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Dead: color.RGBA{A: 255},
	}
}

// HeatColor fades a live cell from white to red as it ages, reaching pure red
// after 26 generations.
func HeatColor(age uint8) color.RGBA {
	v := 255 - 10*int(age)
	if v < 0 {
		v = 0
	}
	return color.RGBA{R: 255, G: uint8(v), B: uint8(v), A: 255}
}

// Color returns the colour of a live cell with the given age.
func (p Palette) Color(age uint8) color.RGBA {
	if p.Heatmap {
		return HeatColor(age)
	}
	return p.Live
}

// Frame is one RGBA pixel per cell, row-major.
type Frame struct {
	W, H int
	Pix  []byte
}

// NewFrame allocates a frame for a w*h board.
func NewFrame(w, h int) *Frame {
	return &Frame{W: w, H: h, Pix: make([]byte, 4*w*h)}
}

// Fill repaints the frame from src. Boards of a different size are ignored.
func (f *Frame) Fill(src LiveCells, p Palette) {
	if s := src.Size(); s.W != f.W || s.H != f.H {
		return
	}
	fillSolid(f.Pix, p.Dead)
	src.ForEachLiveCell(func(x, y int, age uint8) {
		f.set(x, y, p.Color(age))
	})
}

// At returns the colour stored for (x, y).
func (f *Frame) At(x, y int) color.RGBA {
	base := (y*f.W + x) * 4
	return color.RGBA{R: f.Pix[base], G: f.Pix[base+1], B: f.Pix[base+2], A: f.Pix[base+3]}
}

func (f *Frame) set(x, y int, c color.RGBA) {
	base := (y*f.W + x) * 4
	f.Pix[base+0] = c.R
	f.Pix[base+1] = c.G
	f.Pix[base+2] = c.B
	f.Pix[base+3] = c.A
}

func fillSolid(buf []byte, c color.RGBA) {
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}
