// Package patterns holds the stamp library: named live-cell offset tables
// that can be drawn onto a grid around an anchor, optionally mirrored.
package patterns

import (
	"errors"
	"fmt"
)

// ErrUnknownPattern is returned when stamping an unregistered pattern.
var ErrUnknownPattern = errors.New("unknown pattern")

// ID names a registered pattern.
type ID string

// Kind decides which mirror axes a pattern honors.
type Kind uint8

const (
	// Glider patterns mirror on both axes, giving four headings.
	Glider Kind = iota
	// Spaceship patterns mirror horizontally only (left or right travel).
	Spaceship
	// Oscillator patterns never mirror and clear their anchor cell.
	Oscillator
)

func (k Kind) String() string {
	switch k {
	case Glider:
		return "glider"
	case Spaceship:
		return "spaceship"
	case Oscillator:
		return "oscillator"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Offset is a cell position relative to the anchor.
type Offset struct {
	DX, DY int
}

// Pattern is an immutable offset table.
type Pattern struct {
	ID      ID
	Name    string
	Kind    Kind
	Offsets []Offset
}

// Canvas is what a pattern can be stamped onto.
type Canvas interface {
	InBounds(x, y int) bool
	SetAlive(x, y int, alive bool) error
}

var (
	registry = map[ID]Pattern{}
	order    []ID
)

// Register adds p to the library. Patterns are expected to be registered from
// init functions; re-registering an ID replaces the table but keeps its slot.
func Register(p Pattern) {
	if p.ID == "" {
		return
	}
	if _, ok := registry[p.ID]; !ok {
		order = append(order, p.ID)
	}
	p.Offsets = append([]Offset(nil), p.Offsets...)
	registry[p.ID] = p
}

// Lookup returns the pattern registered under id.
func Lookup(id ID) (Pattern, bool) {
	p, ok := registry[id]
	return p, ok
}

// All lists registered patterns in registration order.
func All() []Pattern {
	out := make([]Pattern, 0, len(order))
	for _, id := range order {
		out = append(out, registry[id])
	}
	return out
}

// Cells returns the absolute cells p covers at (x, y) with the given mirror
// signs, after the pattern's kind has masked unsupported axes.
func (p Pattern) Cells(x, y, mirrorX, mirrorY int) [][2]int {
	mx, my := p.mirrors(mirrorX, mirrorY)
	out := make([][2]int, 0, len(p.Offsets))
	for _, o := range p.Offsets {
		out = append(out, [2]int{x + o.DX*mx, y + o.DY*my})
	}
	return out
}

func (p Pattern) mirrors(mirrorX, mirrorY int) (int, int) {
	mx, my := sign(mirrorX), sign(mirrorY)
	switch p.Kind {
	case Spaceship:
		my = 1
	case Oscillator:
		mx, my = 1, 1
	}
	return mx, my
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}

// Stamp draws pattern id onto c anchored at (x, y). Cells that fall outside
// the canvas are skipped, so stamps near an edge are clipped.
func Stamp(c Canvas, x, y int, id ID, mirrorX, mirrorY int) error {
	p, ok := registry[id]
	if !ok {
		return fmt.Errorf("stamp %q: %w", id, ErrUnknownPattern)
	}
	if p.Kind == Oscillator && c.InBounds(x, y) {
		if err := c.SetAlive(x, y, false); err != nil {
			return err
		}
	}
	for _, pt := range p.Cells(x, y, mirrorX, mirrorY) {
		if !c.InBounds(pt[0], pt[1]) {
			continue
		}
		if err := c.SetAlive(pt[0], pt[1], true); err != nil {
			return err
		}
	}
	return nil
}
