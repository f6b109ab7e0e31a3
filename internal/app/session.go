package app

import (
	"fmt"
	"path/filepath"
	"time"

	"lifelike/internal/core"
	"lifelike/internal/patterns"
	"lifelike/internal/render"
	"lifelike/internal/savefile"
	"lifelike/internal/sims/life"
)

// Driver is the board a host controls.
type Driver interface {
	core.Sim
	render.LiveCells

	Tick() error
	Running() bool
	SetRunning(running bool)
	Generation() int
	Population() int
	Rules() life.RuleSet
	SetRules(birth, survival string) life.RuleSet
	Boundary() core.Boundary
	SetBoundary(b core.Boundary)
	Delay() time.Duration
	SetDelay(d time.Duration) time.Duration
	SavePath() string

	RequestSave()
	RequestLoad(path string)
	RequestClear()
	RequestRandomize()
	RequestStep()

	DrawCell(x, y int, alive bool)
	StampPattern(x, y int, id patterns.ID, mirrorX, mirrorY int) error
}

const delayStep = 5 * time.Millisecond

// Session holds the host-side state around a board: draw mode, display
// toggles, the selected stamp and the last status message. Hosts translate
// their input into runes and board coordinates and feed them here.
type Session struct {
	board     Driver
	presetDir string

	erase   bool
	heatmap bool
	grid    bool

	pattern int
	mirrorX int
	mirrorY int
	preset  int

	// editing is 'b' or 's' while a birth or survival rule is being typed.
	editing rune
	input   []rune

	status string
}

// NewSession wraps board. presetDir is where the bundled save files live.
func NewSession(board Driver, presetDir string) *Session {
	return &Session{board: board, presetDir: presetDir, mirrorX: 1, mirrorY: 1, grid: true}
}

// Board returns the controlled board.
func (s *Session) Board() Driver { return s.board }

// HandleRune applies one keyboard command and reports whether the host should
// quit.
//
//	q        quit
//	space    pause/resume        enter  resume
//	n        single step         c      clear
//	r        randomize           s      save
//	l        load the save file  p      load the next bundled preset
//	w        toggle wrap/clamp   e      toggle draw/erase
//	h        toggle heatmap      g      toggle gridlines
//	1-9      select a stamp      0      back to freehand drawing
//	x, y     flip the stamp      -, +   slower, faster
//	b, v     type new birth or survival digits, enter applies, escape cancels
func (s *Session) HandleRune(r rune) bool {
	if s.editing != 0 {
		s.editRune(r)
		return false
	}
	b := s.board
	switch r {
	case 'q', 'Q':
		return true
	case ' ':
		b.SetRunning(!b.Running())
	case '\n', '\r':
		b.SetRunning(true)
	case 'n', 'N':
		b.RequestStep()
	case 'c', 'C':
		b.RequestClear()
	case 'r', 'R':
		b.RequestRandomize()
	case 's', 'S':
		b.RequestSave()
		s.status = "saved to " + b.SavePath()
	case 'l', 'L':
		b.RequestLoad(b.SavePath())
		s.status = "loaded " + b.SavePath()
	case 'p', 'P':
		name := savefile.Presets[s.preset%len(savefile.Presets)]
		s.preset++
		b.RequestLoad(filepath.Join(s.presetDir, name))
		s.status = "loaded " + name
	case 'w', 'W':
		if b.Boundary() == core.Wrap {
			b.SetBoundary(core.Clamp)
		} else {
			b.SetBoundary(core.Wrap)
		}
	case 'e', 'E':
		s.erase = !s.erase
	case 'h', 'H':
		s.heatmap = !s.heatmap
	case 'g', 'G':
		s.grid = !s.grid
	case 'x', 'X':
		s.mirrorX = -s.mirrorX
	case 'y', 'Y':
		s.mirrorY = -s.mirrorY
	case '-', '_':
		b.SetDelay(b.Delay() + delayStep)
	case '+', '=':
		b.SetDelay(b.Delay() - delayStep)
	case 'b', 'B':
		s.startEdit('b', b.Rules().Birth.Digits())
	case 'v', 'V':
		s.startEdit('s', b.Rules().Survival.Digits())
	case '0':
		s.pattern = 0
	default:
		if r >= '1' && r <= '9' && int(r-'0') <= len(patterns.All()) {
			s.pattern = int(r - '0')
		}
	}
	return false
}

// Editing reports whether keys currently go to a rule field.
func (s *Session) Editing() bool { return s.editing != 0 }

func (s *Session) startEdit(field rune, current string) {
	s.editing = field
	s.input = append(s.input[:0], []rune(current)...)
}

// editRune handles a key while a rule field is open. Only 0-8 are kept, so
// the field never holds a count the rule engine would drop.
func (s *Session) editRune(r rune) {
	switch {
	case r == '\n' || r == '\r':
		rules := s.board.Rules()
		birth, survival := rules.Birth.Digits(), rules.Survival.Digits()
		if s.editing == 'b' {
			birth = string(s.input)
		} else {
			survival = string(s.input)
		}
		s.status = "rule " + s.board.SetRules(birth, survival).String()
		s.editing = 0
	case r == 0x1b:
		s.editing = 0
	case r == '\b' || r == 0x7f:
		if len(s.input) > 0 {
			s.input = s.input[:len(s.input)-1]
		}
	case r >= '0' && r <= '8':
		for _, have := range s.input {
			if have == r {
				return
			}
		}
		s.input = append(s.input, r)
	}
}

// Tick runs one board cycle and records any failure in the status line.
func (s *Session) Tick() error {
	err := s.board.Tick()
	if err != nil {
		s.status = err.Error()
	}
	return err
}

// Stamping reports whether clicks place the selected pattern.
func (s *Session) Stamping() bool { return s.pattern > 0 }

// Pattern returns the selected stamp.
func (s *Session) Pattern() (patterns.Pattern, bool) {
	all := patterns.All()
	if s.pattern <= 0 || s.pattern > len(all) {
		return patterns.Pattern{}, false
	}
	return all[s.pattern-1], true
}

// Mirror returns the stamp orientation.
func (s *Session) Mirror() (int, int) { return s.mirrorX, s.mirrorY }

// Paint applies the pointer at cell (x, y): a stamp when one is selected,
// otherwise a freehand draw or erase.
func (s *Session) Paint(x, y int) {
	if p, ok := s.Pattern(); ok {
		if err := s.board.StampPattern(x, y, p.ID, s.mirrorX, s.mirrorY); err != nil {
			s.status = err.Error()
		}
		return
	}
	s.board.DrawCell(x, y, !s.erase)
}

// Erasing reports whether freehand drawing kills cells.
func (s *Session) Erasing() bool { return s.erase }

// ShowGrid reports whether gridlines are drawn.
func (s *Session) ShowGrid() bool { return s.grid }

// Palette returns the colours for the current display toggles.
func (s *Session) Palette() render.Palette {
	p := render.DefaultPalette()
	p.Heatmap = s.heatmap
	return p
}

// Status summarises the board and the host mode in one line.
func (s *Session) Status() string {
	b := s.board
	state := "paused"
	if b.Running() {
		state = "running"
	}
	mode := "draw"
	if s.erase {
		mode = "erase"
	}
	if p, ok := s.Pattern(); ok {
		mode = "stamp " + p.Name
	}
	switch s.editing {
	case 'b':
		mode = "birth: B" + string(s.input) + "_"
	case 's':
		mode = "survival: S" + string(s.input) + "_"
	}
	line := fmt.Sprintf("%s  gen %d  pop %d  %s  %s  %dms  %s",
		state, b.Generation(), b.Population(), b.Rules(), b.Boundary(), b.Delay().Milliseconds(), mode)
	if s.status != "" {
		line += "  | " + s.status
	}
	return line
}
