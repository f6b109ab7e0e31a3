//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a board into a single image, one pixel per cell, and
// draws it scaled to the cell size.
type GridPainter struct {
	frame *Frame
	img   *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{frame: NewFrame(w, h), img: ebiten.NewImage(w, h)}
}

// Blit repaints the board and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, src LiveCells, p Palette, scale int) {
	if scale <= 0 {
		scale = 1
	}
	gp.frame.Fill(src, p)
	gp.img.WritePixels(gp.frame.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.frame.W, gp.frame.H }
