package main

import (
	"lifelike/internal/app"
	"lifelike/internal/render"

	"github.com/gdamore/tcell/v2"
)

// cellWidth is the number of terminal columns per board cell, which keeps
// cells roughly square in most fonts.
const cellWidth = 2

var (
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	gridRune    = '·'
)

func tcellColor(c render.Palette, age uint8) tcell.Color {
	col := c.Color(age)
	return tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B))
}

// drawBoard paints as much of the board as fits above the status line.
func drawBoard(screen tcell.Screen, session *app.Session) {
	sw, sh := screen.Size()
	rows := sh - 1
	board := session.Board()
	size := board.Size()
	palette := session.Palette()

	screen.Clear()
	gridStyle := deadStyle.Foreground(tcell.ColorDarkSlateGray)
	for y := 0; y < size.H && y < rows; y++ {
		for x := 0; x < size.W && x*cellWidth < sw; x++ {
			r := ' '
			if session.ShowGrid() {
				r = gridRune
			}
			screen.SetContent(x*cellWidth, y, r, nil, gridStyle)
			screen.SetContent(x*cellWidth+1, y, ' ', nil, deadStyle)
		}
	}
	board.ForEachLiveCell(func(x, y int, age uint8) {
		if y >= rows || x*cellWidth >= sw {
			return
		}
		style := tcell.StyleDefault.Background(tcellColor(palette, age))
		screen.SetContent(x*cellWidth, y, ' ', nil, style)
		screen.SetContent(x*cellWidth+1, y, ' ', nil, style)
	})
	drawStatus(screen, session.Status(), sh-1, sw)
	screen.Show()
}

func drawStatus(screen tcell.Screen, status string, row, width int) {
	col := 0
	for _, r := range status {
		if col >= width {
			break
		}
		screen.SetContent(col, row, r, nil, statusStyle)
		col++
	}
}

// input feeds terminal events to a session. Stamps go down once per press;
// freehand drawing follows the pointer while Button1 is held.
type input struct {
	session *app.Session
	held    bool
}

// handle applies one event and reports whether the host should quit.
func (in *input) handle(ev tcell.Event) bool {
	session := in.session
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if session.Editing() {
			switch ev.Key() {
			case tcell.KeyEscape:
				session.HandleRune(0x1b)
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				session.HandleRune('\b')
			case tcell.KeyEnter:
				session.HandleRune('\n')
			case tcell.KeyRune:
				session.HandleRune(ev.Rune())
			}
			return false
		}
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyEnter:
			return session.HandleRune('\n')
		case tcell.KeyRune:
			return session.HandleRune(ev.Rune())
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		wasHeld := in.held
		in.held = pressed
		if !pressed || (wasHeld && session.Stamping()) {
			return false
		}
		x, y := ev.Position()
		session.Paint(x/cellWidth, y)
	}
	return false
}
