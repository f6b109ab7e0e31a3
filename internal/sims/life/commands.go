package life

import (
	"lifelike/internal/core"
	"lifelike/internal/patterns"
)

// commands are one-shot requests set by the host and consumed by Tick.
type commands struct {
	save      bool
	load      bool
	loadPath  string
	clear     bool
	randomize bool
	step      bool
}

// take returns the pending requests and resets them.
func (c *commands) take() commands {
	out := *c
	*c = commands{}
	return out
}

// RequestSave asks the next tick to write the board to the save path.
func (l *Life) RequestSave() {
	l.mu.Lock()
	l.cmd.save = true
	l.mu.Unlock()
}

// RequestLoad asks the next tick to clear the board and load path.
func (l *Life) RequestLoad(path string) {
	l.mu.Lock()
	l.cmd.load = true
	l.cmd.loadPath = path
	l.mu.Unlock()
}

// RequestClear asks the next tick to kill every cell.
func (l *Life) RequestClear() {
	l.mu.Lock()
	l.cmd.clear = true
	l.mu.Unlock()
}

// RequestRandomize asks the next tick to reseed the board at the current density.
func (l *Life) RequestRandomize() {
	l.mu.Lock()
	l.cmd.randomize = true
	l.mu.Unlock()
}

// RequestStep asks the next tick to advance one generation, even while paused.
func (l *Life) RequestStep() {
	l.mu.Lock()
	l.cmd.step = true
	l.mu.Unlock()
}

// SetRunning switches between the running and paused states.
func (l *Life) SetRunning(running bool) {
	l.mu.Lock()
	l.running = running
	l.mu.Unlock()
}

// Play resumes automatic generation.
func (l *Life) Play() { l.SetRunning(true) }

// Pause stops automatic generation. Ticks still honor other commands.
func (l *Life) Pause() { l.SetRunning(false) }

// SetBoundary selects toroidal or clamped neighborhoods.
func (l *Life) SetBoundary(b core.Boundary) {
	l.mu.Lock()
	l.boundary = b
	l.mu.Unlock()
}

// SetRules replaces the rule set from user-entered digit strings.
func (l *Life) SetRules(birth, survival string) RuleSet {
	r := NewRuleSet(birth, survival)
	l.mu.Lock()
	l.rules = r
	l.mu.Unlock()
	return r
}

// DrawCell sets (x, y) live or dead immediately. Points off the board are ignored.
func (l *Life) DrawCell(x, y int, alive bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.grid.InBounds(x, y) {
		return
	}
	l.grid.SetAlive(x, y, alive)
}

// StampPattern draws a library pattern anchored at (x, y), clipped to the board.
func (l *Life) StampPattern(x, y int, id patterns.ID, mirrorX, mirrorY int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return patterns.Stamp(l.grid, x, y, id, mirrorX, mirrorY)
}
