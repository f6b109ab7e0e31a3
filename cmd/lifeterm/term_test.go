package main

import (
	"path/filepath"
	"testing"

	"lifelike/internal/app"
	"lifelike/internal/patterns"
	"lifelike/internal/sims/life"

	"github.com/gdamore/tcell/v2"
)

func newTestSession(t *testing.T) *app.Session {
	t.Helper()
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = 10, 6
	cfg.SavePath = filepath.Join(t.TempDir(), "save.txt")
	s := app.NewSession(life.New(cfg), t.TempDir())
	s.HandleRune('c')
	if err := s.Tick(); err != nil {
		t.Fatalf("clear tick: %v", err)
	}
	return s
}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func TestDrawBoardPaintsLiveCells(t *testing.T) {
	s := newTestSession(t)
	s.Paint(1, 2)
	screen := newScreen(t, 40, 10)
	drawBoard(screen, s)

	live := tcellColor(s.Palette(), 0)
	for _, col := range []int{2, 3} {
		_, _, style, _ := screen.GetContent(col, 2)
		_, bg, _ := style.Decompose()
		if bg != live {
			t.Fatalf("column %d background = %v, expected %v", col, bg, live)
		}
	}
	_, _, style, _ := screen.GetContent(0, 0)
	if _, bg, _ := style.Decompose(); bg == live {
		t.Fatalf("dead cell painted as live")
	}
}

func TestDrawBoardClipsToScreen(t *testing.T) {
	s := newTestSession(t)
	s.Paint(9, 5)
	screen := newScreen(t, 6, 3)
	drawBoard(screen, s)
	if r, _, _, _ := screen.GetContent(0, 2); r == ' ' {
		t.Fatalf("status line missing on the last row")
	}
}

func TestHandleEvent(t *testing.T) {
	s := newTestSession(t)
	in := &input{session: s}
	if in.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) {
		t.Fatalf("space should not quit")
	}
	if !s.Board().Running() {
		t.Fatalf("space should start the board")
	}
	if !in.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatalf("escape should quit")
	}
	if !in.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatalf("q should quit")
	}

	in.handle(tcell.NewEventMouse(6, 4, tcell.Button1, tcell.ModNone))
	if c, _ := s.Board().(*life.Life).Cell(3, 4); !c.Alive() {
		t.Fatalf("click at column 6 should draw cell (3,4)")
	}
	in.handle(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	if c, _ := s.Board().(*life.Life).Cell(0, 0); c.Alive() {
		t.Fatalf("mouse motion without a button should not draw")
	}
}

func TestHandleEventStamps(t *testing.T) {
	s := newTestSession(t)
	in := &input{session: s}
	in.handle(tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone))
	p, ok := s.Pattern()
	if !ok || p.ID != patterns.All()[0].ID {
		t.Fatalf("key 1 did not select the first pattern")
	}
	in.handle(tcell.NewEventMouse(8, 3, tcell.Button1, tcell.ModNone))
	if s.Board().Population() == 0 {
		t.Fatalf("click should stamp the pattern")
	}

	stamped := s.Board().Population()
	for x := 10; x <= 16; x += 2 {
		in.handle(tcell.NewEventMouse(x, 3, tcell.Button1, tcell.ModNone))
	}
	if got := s.Board().Population(); got != stamped {
		t.Fatalf("dragging a stamp changed population %d -> %d", stamped, got)
	}

	in.handle(tcell.NewEventMouse(16, 3, tcell.ButtonNone, tcell.ModNone))
	in.handle(tcell.NewEventMouse(2, 0, tcell.Button1, tcell.ModNone))
	if s.Board().Population() == stamped {
		t.Fatalf("a new press should stamp again")
	}
}

func TestHandleEventDragDraws(t *testing.T) {
	s := newTestSession(t)
	in := &input{session: s}
	for x := 0; x < 8; x += 2 {
		in.handle(tcell.NewEventMouse(x, 1, tcell.Button1, tcell.ModNone))
	}
	if got := s.Board().Population(); got != 4 {
		t.Fatalf("freehand drag drew %d cells, expected 4", got)
	}
}
