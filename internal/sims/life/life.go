// Package life implements two-state lifelike automata with configurable
// birth/survival rules, cell ages and a command-driven tick loop.
package life

import (
	"errors"
	"sync"
	"time"

	"lifelike/internal/core"
	"lifelike/internal/savefile"
)

// Life is a lifelike automaton plus the controller state that drives it. All
// methods are safe for concurrent use; a tick holds the lock for the whole
// generation so edits never land mid-computation.
type Life struct {
	mu sync.Mutex

	name string
	cfg  Config
	grid *core.Grid
	rng  *core.RNG

	rules    RuleSet
	boundary core.Boundary
	density  float64
	delay    time.Duration

	running    bool
	generation int
	cmd        commands

	lastLoad savefile.Report
	observer func()
	display  []uint8
}

// New returns a paused Life board named "life" built from cfg.
func New(cfg Config) *Life {
	return NewNamed("life", cfg)
}

// NewNamed is New with an explicit sim name, used for rule presets.
func NewNamed(name string, cfg Config) *Life {
	boundary, err := core.ParseBoundary(cfg.Boundary)
	if err != nil {
		boundary = core.Wrap
	}
	grid := core.NewGrid(cfg.Width, cfg.Height, cfg.CellSize)
	l := &Life{
		name:     name,
		cfg:      cfg,
		grid:     grid,
		rng:      core.NewRNG(cfg.Seed),
		rules:    cfg.Rules(),
		boundary: boundary,
		density:  min(max(cfg.Density, 0), 1),
		delay:    core.ClampDelay(time.Duration(cfg.DelayMS) * time.Millisecond),
		display:  make([]uint8, grid.W*grid.H),
	}
	if cfg.SavePath == "" {
		l.cfg.SavePath = savefile.DefaultSaveFile
	}
	if cfg.InitialLoad != "" {
		l.cmd.load = true
		l.cmd.loadPath = cfg.InitialLoad
	} else {
		grid.Randomize(l.density, l.rng.Source())
	}
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return l.name }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// CellSize returns the configured on-screen cell size in pixels.
func (l *Life) CellSize() int { return l.grid.CellSize }

// Reset reseeds the RNG and replaces the board with a fresh random soup.
func (l *Life) Reset(seed int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rng.Reseed(seed)
	l.grid.Randomize(l.density, l.rng.Source())
	l.generation = 0
}

// Step computes and publishes one generation immediately, ignoring pending
// commands and the paused state.
func (l *Life) Step() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.advance()
}

// Cells returns the live/dead state of the current generation in row-major
// order. The slice is reused by the next call.
func (l *Life) Cells() []uint8 {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, c := range l.grid.Current() {
		l.display[i] = c.State
	}
	return l.display
}

// SetObserver installs fn to be called at the end of every tick, after the
// lock is released. It replaces any previous observer.
func (l *Life) SetObserver(fn func()) {
	l.mu.Lock()
	l.observer = fn
	l.mu.Unlock()
}

// Tick runs one controller cycle: save, load, clear, randomize, then one
// generation if running or a step was requested, then the observer. Save and
// load failures are returned but never stop the cycle.
func (l *Life) Tick() error {
	l.mu.Lock()
	pending := l.cmd.take()
	var errs []error
	if pending.save {
		if err := savefile.Save(l.cfg.SavePath, l.grid); err != nil {
			errs = append(errs, err)
		}
	}
	if pending.load {
		rep, err := savefile.Load(pending.loadPath, l.grid)
		l.lastLoad = rep
		l.generation = 0
		if err != nil {
			errs = append(errs, err)
		}
	}
	if pending.clear {
		l.grid.Clear()
		l.generation = 0
	}
	if pending.randomize {
		l.grid.Randomize(l.density, l.rng.Source())
		l.generation = 0
	}
	if l.running || pending.step {
		l.advance()
	}
	observer := l.observer
	l.mu.Unlock()

	if observer != nil {
		observer()
	}
	return errors.Join(errs...)
}

// advance computes the next generation into the back buffer and publishes it.
// Callers hold l.mu.
func (l *Life) advance() {
	g := l.grid
	cur, nxt := g.Current(), g.Next()
	for y := 0; y < g.H; y++ {
		row := y * g.W
		for x := 0; x < g.W; x++ {
			n := core.CountNeighbors(g, x, y, l.boundary)
			nxt[row+x] = NextCell(cur[row+x], n, l.rules)
		}
	}
	g.Advance()
	l.generation++
}

// ForEachLiveCell calls fn for every live cell of the current generation,
// row by row. fn must not call back into l.
func (l *Life) ForEachLiveCell(fn func(x, y int, age uint8)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	g := l.grid
	cells := g.Current()
	for y := 0; y < g.H; y++ {
		row := y * g.W
		for x := 0; x < g.W; x++ {
			if c := cells[row+x]; c.State == 1 {
				fn(x, y, c.Age)
			}
		}
	}
}

// Cell returns the current cell at (x, y).
func (l *Life) Cell(x, y int) (core.Cell, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.grid.Get(x, y)
}

// Running reports whether generations advance on every tick.
func (l *Life) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Generation counts generations since the board was last replaced.
func (l *Life) Generation() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.generation
}

// Population counts live cells in the current generation.
func (l *Life) Population() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.grid.Population()
}

// Rules returns the active rule set.
func (l *Life) Rules() RuleSet {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rules
}

// Boundary returns the active neighborhood policy.
func (l *Life) Boundary() core.Boundary {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.boundary
}

// Delay returns the tick interval hosts should use.
func (l *Life) Delay() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.delay
}

// SetDelay changes the tick interval, clamped to [10ms, 200ms].
func (l *Life) SetDelay(d time.Duration) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.delay = core.ClampDelay(d)
	return l.delay
}

// Density returns the live fraction used by randomize.
func (l *Life) Density() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.density
}

// SetDensity changes the randomize density, clamped to [0, 1].
func (l *Life) SetDensity(d float64) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.density = min(max(d, 0), 1)
	return l.density
}

// SavePath returns where RequestSave writes.
func (l *Life) SavePath() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cfg.SavePath
}

// LastLoad reports how the most recent load decoded.
func (l *Life) LastLoad() savefile.Report {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastLoad
}

// SaveTo writes the current generation to path right away, outside the tick
// cycle. Headless tools use it; interactive hosts go through RequestSave.
func (l *Life) SaveTo(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return savefile.Save(path, l.grid)
}
