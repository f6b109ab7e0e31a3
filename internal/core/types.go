package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the part of an automaton a host drives without knowing its rules.
type Sim interface {
	Name() string
	Size() Size
	// Reset clears the board and reseeds it with a random soup.
	Reset(seed int64)
	// Step computes and publishes one generation immediately.
	Step()
	// Cells returns the live/dead state of the displayed generation, row-major.
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name. Later
// registrations under the same name replace earlier ones.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists the registered names in lexical order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
