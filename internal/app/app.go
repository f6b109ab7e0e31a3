//go:build ebiten

package app

import (
	"log"

	"lifelike/internal/core"
	"lifelike/internal/render"
	"lifelike/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyRunes maps ebiten keys onto the session's command runes.
var keyRunes = map[ebiten.Key]rune{
	ebiten.KeyQ:          'q',
	ebiten.KeyEscape:     'q',
	ebiten.KeySpace:      ' ',
	ebiten.KeyEnter:      '\n',
	ebiten.KeyN:          'n',
	ebiten.KeyC:          'c',
	ebiten.KeyR:          'r',
	ebiten.KeyS:          's',
	ebiten.KeyL:          'l',
	ebiten.KeyP:          'p',
	ebiten.KeyW:          'w',
	ebiten.KeyE:          'e',
	ebiten.KeyH:          'h',
	ebiten.KeyG:          'g',
	ebiten.KeyX:          'x',
	ebiten.KeyY:          'y',
	ebiten.KeyB:          'b',
	ebiten.KeyV:          'v',
	ebiten.KeyMinus:      '-',
	ebiten.KeyEqual:      '+',
	ebiten.KeyKPSubtract: '-',
	ebiten.KeyKPAdd:      '+',
	ebiten.KeyDigit0:     '0',
	ebiten.KeyDigit1:     '1',
	ebiten.KeyDigit2:     '2',
	ebiten.KeyDigit3:     '3',
	ebiten.KeyDigit4:     '4',
	ebiten.KeyDigit5:     '5',
	ebiten.KeyDigit6:     '6',
	ebiten.KeyDigit7:     '7',
	ebiten.KeyDigit8:     '8',
	ebiten.KeyDigit9:     '9',
}

// Game adapts a board to the ebiten.Game interface.
type Game struct {
	session *Session
	board   Driver
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	timer   *core.FixedStep

	scale    int
	hudWidth int
	chars    []rune
}

// New constructs a Game for the provided session. scale is the cell size in
// pixels and hudWidth the width of the control panel.
func New(session *Session, scale, hudWidth int) *Game {
	if scale <= 0 {
		scale = 1
	}
	board := session.Board()
	size := board.Size()
	return &Game{
		session:  session,
		board:    board,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(session, size, scale),
		hud:      ui.NewHUD(board, hudWidth),
		timer:    core.NewFixedStep(board.Delay()),
		scale:    scale,
		hudWidth: hudWidth,
	}
}

// Update handles per-frame input and ticks the board when its delay elapses.
func (g *Game) Update() error {
	if g.session.Editing() {
		g.handleRuleInput()
	} else {
		for key, r := range keyRunes {
			if inpututil.IsKeyJustPressed(key) && g.session.HandleRune(r) {
				return ebiten.Termination
			}
		}
	}

	g.handleMouse()
	if g.hud != nil {
		g.hud.Update(g.boardWidth())
	}

	g.timer.SetDelay(g.board.Delay())
	if g.timer.ShouldStep() {
		if err := g.session.Tick(); err != nil {
			log.Printf("tick: %v", err)
		}
	}
	return nil
}

// handleRuleInput routes typed characters into the open rule field.
func (g *Game) handleRuleInput() {
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		g.session.HandleRune(r)
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.session.HandleRune('\n')
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.session.HandleRune('\b')
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.session.HandleRune(0x1b)
	}
}

func (g *Game) handleMouse() {
	x, y, ok := g.cursorCell()
	if !ok {
		return
	}
	if g.session.Stamping() {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.session.Paint(x, y)
		}
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.session.Paint(x, y)
	}
}

// cursorCell converts the cursor to board coordinates.
func (g *Game) cursorCell() (int, int, bool) {
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= g.boardWidth() {
		return -1, -1, false
	}
	x, y := mx/g.scale, my/g.scale
	size := g.board.Size()
	if y >= size.H {
		return -1, -1, false
	}
	return x, y, true
}

// Draw renders the board, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.board, g.session.Palette(), g.scale)
	cx, cy, _ := g.cursorCell()
	g.overlay.Draw(screen, cx, cy)
	if g.hud != nil {
		g.hud.Draw(screen, g.boardWidth(), g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.board.Size()
	return g.boardWidth() + g.hudWidth, s.H * g.scale
}

func (g *Game) boardWidth() int { return g.board.Size().W * g.scale }
