package patterns

// Built-in pattern IDs.
const (
	GliderID       ID = "glider"
	LWSS           ID = "lwss"
	MWSS           ID = "mwss"
	HWSS           ID = "hwss"
	Pulsar         ID = "pulsar"
	Pentadecathlon ID = "pentadecathlon"
	Tumbler        ID = "tumbler"
	FigureEight    ID = "figure-eight"
	Phoenix        ID = "phoenix"
)

func init() {
	// Heads up-left unmirrored.
	Register(Pattern{ID: GliderID, Name: "Glider", Kind: Glider, Offsets: []Offset{
		{0, 0}, {1, 0}, {2, 1}, {0, 1}, {0, 2},
	}})

	// Spaceships travel left to right unmirrored; the anchor sits on the bottom row.
	Register(Pattern{ID: LWSS, Name: "Lightweight spaceship", Kind: Spaceship, Offsets: []Offset{
		{-2, -3}, {1, -3},
		{2, -2},
		{-2, -1}, {2, -1},
		{-1, 0}, {0, 0}, {1, 0}, {2, 0},
	}})
	Register(Pattern{ID: MWSS, Name: "Middleweight spaceship", Kind: Spaceship, Offsets: []Offset{
		{-1, -4},
		{-3, -3}, {1, -3},
		{2, -2},
		{-3, -1}, {2, -1},
		{-2, 0}, {-1, 0}, {0, 0}, {1, 0}, {2, 0},
	}})
	Register(Pattern{ID: HWSS, Name: "Heavyweight spaceship", Kind: Spaceship, Offsets: []Offset{
		{-2, -4}, {-1, -4},
		{-4, -3}, {1, -3},
		{2, -2},
		{-4, -1}, {2, -1},
		{-3, 0}, {-2, 0}, {-1, 0}, {0, 0}, {1, 0}, {2, 0},
	}})

	// Period 3.
	Register(Pattern{ID: Pulsar, Name: "Pulsar", Kind: Oscillator, Offsets: pulsarOffsets()})

	// Period 15. The anchor is part of the middle row.
	Register(Pattern{ID: Pentadecathlon, Name: "Pentadecathlon", Kind: Oscillator, Offsets: []Offset{
		{-2, -1}, {3, -1},
		{-4, 0}, {-3, 0}, {-1, 0}, {0, 0}, {1, 0}, {2, 0}, {4, 0}, {5, 0},
		{-2, 1}, {3, 1},
	}})

	// Period 14.
	Register(Pattern{ID: Tumbler, Name: "Tumbler", Kind: Oscillator, Offsets: []Offset{
		{-3, -3}, {3, -3},
		{-4, -2}, {-2, -2}, {2, -2}, {4, -2},
		{-4, -1}, {-1, -1}, {1, -1}, {4, -1},
		{-2, 0}, {2, 0},
		{-2, 1}, {-1, 1}, {1, 1}, {2, 1},
	}})

	// Period 8.
	Register(Pattern{ID: FigureEight, Name: "Figure eight", Kind: Oscillator, Offsets: []Offset{
		{-3, -3}, {-2, -3},
		{-3, -2}, {-2, -2}, {0, -2},
		{1, -1},
		{-2, 0},
		{-1, 1}, {1, 1}, {2, 1},
		{1, 2}, {2, 2},
	}})

	// Period 2.
	Register(Pattern{ID: Phoenix, Name: "Phoenix", Kind: Oscillator, Offsets: []Offset{
		{1, -3},
		{-1, -2}, {1, -2},
		{3, -1},
		{-3, 0}, {-2, 0},
		{3, 1}, {4, 1},
		{-2, 2},
		{0, 3}, {2, 3},
		{0, 4},
	}})
}

// pulsarOffsets mirrors one quadrant into all four.
func pulsarOffsets() []Offset {
	quadrant := []Offset{
		{1, 2}, {1, 3}, {1, 4},
		{2, 1}, {3, 1}, {4, 1},
		{2, 6}, {3, 6}, {4, 6},
		{6, 2}, {6, 3}, {6, 4},
	}
	out := make([]Offset, 0, 4*len(quadrant))
	for _, s := range [][2]int{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
		for _, o := range quadrant {
			out = append(out, Offset{o.DX * s[0], o.DY * s[1]})
		}
	}
	return out
}
