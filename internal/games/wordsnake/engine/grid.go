// Package engine implements the Word Snake rules: the grid, input
// normalisation, letter spawning, word validation, movement and the round
// state machine. It has no terminal, audio or storage dependencies; hosts
// drive it by calling Handle for player intents and Advance for elapsed time.
package engine

import "math/rand"

// Cell is a grid coordinate. (0, 0) is the top-left corner.
type Cell struct {
	X, Y int
}

// Add returns the cell one step away from c in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Grid is the square playfield the snake moves on.
type Grid struct {
	Size             int
	FreeCellAttempts int // Random draws before FindFreeCell reports the grid as full
}

// NewGrid creates a grid of size×size cells.
func NewGrid(size, attempts int) Grid {
	if attempts <= 0 {
		attempts = 100
	}
	return Grid{Size: size, FreeCellAttempts: attempts}
}

// InBounds reports whether c lies on the grid.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Size && c.Y >= 0 && c.Y < g.Size
}

// Center returns the cell new snakes start on.
func (g Grid) Center() Cell {
	return Cell{X: g.Size / 2, Y: g.Size / 2}
}

// OccupiedBy reports whether any snake segment sits on c.
func OccupiedBy(c Cell, snake []Cell) bool {
	for _, seg := range snake {
		if seg == c {
			return true
		}
	}
	return false
}

// FindFreeCell draws uniformly random cells until one is not in exclude.
// After FreeCellAttempts misses it gives up and returns ok=false; callers
// treat that as a full grid and skip the spawn.
func (g Grid) FindFreeCell(rng *rand.Rand, exclude []Cell) (Cell, bool) {
	if g.Size <= 0 {
		return Cell{}, false
	}

	taken := make(map[Cell]struct{}, len(exclude))
	for _, c := range exclude {
		taken[c] = struct{}{}
	}

	for range g.FreeCellAttempts {
		c := Cell{X: rng.Intn(g.Size), Y: rng.Intn(g.Size)}
		if _, ok := taken[c]; !ok {
			return c, true
		}
	}
	return Cell{}, false
}
