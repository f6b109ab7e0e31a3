package core

import (
	"fmt"
	"strings"
)

// Boundary selects how neighborhoods behave at the grid edges.
type Boundary uint8

const (
	// Wrap joins opposite edges so the grid is a torus.
	Wrap Boundary = iota
	// Clamp treats every cell beyond the edge as dead.
	Clamp
)

func (b Boundary) String() string {
	switch b {
	case Wrap:
		return "wrap"
	case Clamp:
		return "clamp"
	default:
		return fmt.Sprintf("boundary(%d)", uint8(b))
	}
}

// ParseBoundary accepts "wrap" or "clamp" (case-insensitive).
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap", "torus":
		return Wrap, nil
	case "clamp", "bounded", "nowrap":
		return Clamp, nil
	}
	return Wrap, fmt.Errorf("unknown boundary %q", s)
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// CountNeighbors returns the number of live cells among the eight Moore
// neighbors of (x, y) in the current generation.
func CountNeighbors(g *Grid, x, y int, b Boundary) int {
	w, h := g.W, g.H
	cells := g.cur
	n := 0
	if b == Wrap {
		xl := (x - 1 + w) % w
		xr := (x + 1) % w
		yu := (y - 1 + h) % h
		yd := (y + 1) % h
		up, mid, down := yu*w, y*w, yd*w
		n += int(cells[up+xl].State) + int(cells[up+x].State) + int(cells[up+xr].State)
		n += int(cells[mid+xl].State) + int(cells[mid+xr].State)
		n += int(cells[down+xl].State) + int(cells[down+x].State) + int(cells[down+xr].State)
		return n
	}
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		row := ny * w
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if nx < 0 || nx >= w {
				continue
			}
			if dx == 0 && dy == 0 {
				continue
			}
			n += int(cells[row+nx].State)
		}
	}
	return n
}
