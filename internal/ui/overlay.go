//go:build ebiten

package ui

import (
	"image/color"

	"lifelike/internal/core"
	"lifelike/internal/patterns"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// OverlaySource supplies the host state drawn over the board.
type OverlaySource interface {
	ShowGrid() bool
	Pattern() (patterns.Pattern, bool)
	Mirror() (int, int)
	Status() string
}

// Overlay draws gridlines, the stamp preview under the cursor and the status
// bar on top of the board.
type Overlay struct {
	src   OverlaySource
	size  core.Size
	scale int
}

// NewOverlay constructs an overlay for a board of the given size.
func NewOverlay(src OverlaySource, size core.Size, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{src: src, size: size, scale: scale}
}

var (
	gridColor    = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	previewColor = color.RGBA{R: 90, G: 200, B: 120, A: 140}
	statusBg     = color.RGBA{R: 0, G: 0, B: 0, A: 170}
	statusFg     = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

// Draw renders the overlay. cx, cy is the cell under the cursor; the stamp
// preview is skipped when it lies off the board.
func (o *Overlay) Draw(screen *ebiten.Image, cx, cy int) {
	if o.size.W <= 0 || o.size.H <= 0 {
		return
	}
	if o.src.ShowGrid() && o.scale >= 3 {
		o.drawGrid(screen)
	}
	if cx >= 0 && cy >= 0 && cx < o.size.W && cy < o.size.H {
		o.drawPreview(screen, cx, cy)
	}
	o.drawStatus(screen)
}

func (o *Overlay) drawGrid(screen *ebiten.Image) {
	s := float32(o.scale)
	w := float32(o.size.W) * s
	h := float32(o.size.H) * s
	for y := 0; y <= o.size.H; y++ {
		py := float32(y) * s
		vector.StrokeLine(screen, 0, py, w, py, 1, gridColor, false)
	}
	for x := 0; x <= o.size.W; x++ {
		px := float32(x) * s
		vector.StrokeLine(screen, px, 0, px, h, 1, gridColor, false)
	}
}

func (o *Overlay) drawPreview(screen *ebiten.Image, cx, cy int) {
	p, ok := o.src.Pattern()
	if !ok {
		return
	}
	mx, my := o.src.Mirror()
	s := float32(o.scale)
	for _, c := range p.Cells(cx, cy, mx, my) {
		x, y := c[0], c[1]
		if x < 0 || y < 0 || x >= o.size.W || y >= o.size.H {
			continue
		}
		vector.DrawFilledRect(screen, float32(x)*s, float32(y)*s, s, s, previewColor, false)
	}
}

func (o *Overlay) drawStatus(screen *ebiten.Image) {
	const barHeight = 18
	status := o.src.Status()
	if status == "" {
		return
	}
	w := float32(o.size.W * o.scale)
	top := float32(o.size.H*o.scale - barHeight)
	vector.DrawFilledRect(screen, 0, top, w, barHeight, statusBg, false)
	text.Draw(screen, status, basicfont.Face7x13, 6, int(top)+13, statusFg)
}
