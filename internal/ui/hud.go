//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strings"

	"lifelike/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOff   = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD renders the parameter panel to the right of the board: -/+ rows for
// the board's controls, then its counters grouped by heading.
type HUD struct {
	sim   core.Sim
	width int
	title string
	panel *ebiten.Image

	controls []control
	groups   []core.ParameterGroup
	offsetX  int
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0), title: "Controls"}
	if name := sim.Name(); name != "" {
		h.title = strings.ToUpper(name[:1]) + name[1:]
	}
	h.controls = newControls(sim)
	return h
}

// Update re-reads the board's parameters and handles clicks on the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.offsetX = panelOffsetX
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	snap := provider.Parameters()
	for i := range h.controls {
		h.controls[i].read(snap)
	}
	h.groups = readouts(snap, h.controls)

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	p := image.Pt(mx-h.offsetX, my)
	for i := range h.controls {
		minus, plus := h.buttons(i)
		switch {
		case p.In(minus):
			adjust(h.sim, &h.controls[i], -1)
			return
		case p.In(plus):
			adjust(h.sim, &h.controls[i], 1)
			return
		}
	}
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, padding, padding+baseline, titleColor)
	for i := range h.controls {
		c := &h.controls[i]
		minus, plus := h.buttons(i)
		y := minus.Min.Y + buttonSize/2 + 5
		text.Draw(h.panel, c.Label, face, padding, y, labelColor)
		valueColor := labelColor
		if !c.known {
			valueColor = dimColor
		}
		w := text.BoundString(face, c.text).Dx()
		text.Draw(h.panel, c.text, face, minus.Min.X-buttonGap-w, y, valueColor)
		h.drawButton(minus, "-", canAdjust(h.sim, c, -1))
		h.drawButton(plus, "+", canAdjust(h.sim, c, 1))
	}

	y := controlsTop + len(h.controls)*rowHeight + groupGap
	for _, group := range h.groups {
		text.Draw(h.panel, group.Name, face, padding, y, titleColor)
		y += readoutHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, padding, y, dimColor)
			w := text.BoundString(face, p.Value).Dx()
			text.Draw(h.panel, p.Value, face, h.width-padding-w, y, labelColor)
			y += readoutHeight
		}
		y += groupGap / 2
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

// buttons returns the -/+ rectangles of control i in panel coordinates.
func (h *HUD) buttons(i int) (minus, plus image.Rectangle) {
	y := controlsTop + i*rowHeight + (rowHeight-buttonSize)/2
	x := h.width - padding - buttonSize
	plus = image.Rect(x, y, x+buttonSize, y+buttonSize)
	x -= buttonGap + buttonSize
	minus = image.Rect(x, y, x+buttonSize, y+buttonSize)
	return minus, plus
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, labelColor
	if !enabled {
		bg, fg = buttonOff, dimColor
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)
	b := text.BoundString(basicfont.Face7x13, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()+b.Dy())/2
	text.Draw(h.panel, label, basicfont.Face7x13, x, y, fg)
}

const (
	padding       = 12
	baseline      = 13
	rowHeight     = 32
	buttonSize    = 22
	buttonGap     = 6
	groupGap      = 20
	readoutHeight = 16
	controlsTop   = padding + baseline + 10
)
