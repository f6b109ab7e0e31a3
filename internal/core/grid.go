package core

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrOutOfBounds reports an access outside the grid.
var ErrOutOfBounds = errors.New("cell out of bounds")

// DefaultDensity is the live-cell probability used for random boards. Denser
// soups collapse to near-empty on the first generation under B3/S23.
const DefaultDensity = 0.3

// MaxAge caps the number of consecutive generations a cell records.
const MaxAge = 255

// Cell is a single automaton cell. Age counts consecutive live generations.
type Cell struct {
	State uint8
	Age   uint8
}

// Alive reports whether the cell is live.
func (c Cell) Alive() bool { return c.State == 1 }

// Grid stores the current and next generations in row-major order. Both
// buffers always have the same shape.
type Grid struct {
	W, H int

	// CellSize is the on-screen size of a cell in pixels. Only hosts read it.
	CellSize int

	cur []Cell
	nxt []Cell
}

// NewGrid allocates a cleared grid with the given dimensions.
func NewGrid(w, h, cellSize int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Grid{W: w, H: h, CellSize: cellSize, cur: make([]Cell, w*h), nxt: make([]Cell, w*h)}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.W }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.H }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Current exposes the displayed generation.
func (g *Grid) Current() []Cell { return g.cur }

// Next exposes the generation under construction.
func (g *Grid) Next() []Cell { return g.nxt }

// Get returns the current cell at (x, y).
func (g *Grid) Get(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Cell{}, fmt.Errorf("get (%d,%d) on %dx%d grid: %w", x, y, g.W, g.H, ErrOutOfBounds)
	}
	return g.cur[g.Index(x, y)], nil
}

// Set writes c into both buffers at (x, y).
func (g *Grid) Set(x, y int, c Cell) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("set (%d,%d) on %dx%d grid: %w", x, y, g.W, g.H, ErrOutOfBounds)
	}
	idx := g.Index(x, y)
	g.cur[idx] = c
	g.nxt[idx] = c
	return nil
}

// SetAlive changes the state of (x, y) in both buffers so the edit is visible
// immediately. Changing state resets the age; re-drawing a live cell keeps it.
func (g *Grid) SetAlive(x, y int, alive bool) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("draw (%d,%d) on %dx%d grid: %w", x, y, g.W, g.H, ErrOutOfBounds)
	}
	idx := g.Index(x, y)
	c := g.cur[idx]
	if c.Alive() == alive {
		g.nxt[idx] = c
		return nil
	}
	c = Cell{}
	if alive {
		c.State = 1
	}
	g.cur[idx] = c
	g.nxt[idx] = c
	return nil
}

// Clear kills every cell in both buffers.
func (g *Grid) Clear() {
	clear(g.cur)
	clear(g.nxt)
}

// Randomize seeds both buffers with live cells at the given density.
func (g *Grid) Randomize(density float64, r *rand.Rand) {
	density = min(max(density, 0), 1)
	for i := range g.cur {
		c := Cell{}
		if r.Float64() < density {
			c.State = 1
		}
		g.cur[i] = c
		g.nxt[i] = c
	}
}

// Advance publishes the next generation by copying it over the current one.
func (g *Grid) Advance() {
	copy(g.cur, g.nxt)
}

// Population counts live cells in the current generation.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		n += int(c.State)
	}
	return n
}
