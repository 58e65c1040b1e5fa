package engine

import (
	"math/rand"
	"strings"
)

// Difficulty selects the spawn and validation policy.
type Difficulty string

const (
	Easy Difficulty = "easy"
	Hard Difficulty = "hard"
)

// TileRole tags what a tile does when eaten.
type TileRole int

const (
	RoleCorrect TileRole = iota
	RoleDistractor
	RoleEraser
)

func (r TileRole) String() string {
	switch r {
	case RoleCorrect:
		return "correct"
	case RoleDistractor:
		return "distractor"
	case RoleEraser:
		return "eraser"
	default:
		return "unknown"
	}
}

// EraserGlyph is drawn for eraser tiles.
const EraserGlyph = '⌫'

// Tile is a collectible on the grid.
type Tile struct {
	Cell  Cell
	Glyph rune
	Role  TileRole
}

// SpawnPolicy controls how many tiles appear and what they are.
type SpawnPolicy struct {
	MaxTiles         int
	EraserChance     float64 // Hard mode: r < EraserChance spawns an eraser
	DistractorChance float64 // Hard mode: the next DistractorChance of [0,1) spawns a random letter
}

// DefaultSpawnPolicy returns a 12 tile cap, 10% erasers and 20% distractors.
func DefaultSpawnPolicy() SpawnPolicy {
	return SpawnPolicy{
		MaxTiles:         12,
		EraserChance:     0.10,
		DistractorChance: 0.20,
	}
}

// LetterSpawner picks and places new tiles.
type LetterSpawner struct {
	Grid       Grid
	Policy     SpawnPolicy
	Difficulty Difficulty
}

// Spawn returns a new tile for the current word, or ok=false when nothing
// should spawn: the cap is reached, the word needs no letter, or the grid
// is full. In easy mode the cap never keeps the next letter off the grid
// when no tile carries it, so stale tiles left by a backspace cannot stall
// the word.
func (s LetterSpawner) Spawn(rng *rand.Rand, snake []Cell, tiles []Tile, target, collected string) (Tile, bool) {
	if len(tiles) >= s.Policy.MaxTiles && !s.nextLetterMissing(tiles, target, collected) {
		return Tile{}, false
	}

	glyph, role, ok := s.choose(rng, target, collected)
	if !ok {
		return Tile{}, false
	}

	exclude := make([]Cell, 0, len(snake)+len(tiles))
	exclude = append(exclude, snake...)
	for _, t := range tiles {
		exclude = append(exclude, t.Cell)
	}

	cell, ok := s.Grid.FindFreeCell(rng, exclude)
	if !ok {
		return Tile{}, false
	}
	return Tile{Cell: cell, Glyph: glyph, Role: role}, true
}

func (s LetterSpawner) nextLetterMissing(tiles []Tile, target, collected string) bool {
	if s.Difficulty == Hard {
		return false
	}
	next, ok := NextLetter(target, collected)
	if !ok {
		return false
	}
	for _, t := range tiles {
		if t.Glyph == next {
			return false
		}
	}
	return true
}

func (s LetterSpawner) choose(rng *rand.Rand, target, collected string) (rune, TileRole, bool) {
	next, hasNext := NextLetter(target, collected)
	hasCollected := strings.TrimSpace(collected) != ""

	if s.Difficulty != Hard {
		if !hasNext {
			return 0, 0, false
		}
		return next, RoleCorrect, true
	}

	// Hard mode can overshoot the target with wrong letters. Only an eraser
	// helps then.
	if !hasNext {
		if hasCollected && !IsComplete(target, collected) {
			return EraserGlyph, RoleEraser, true
		}
		return 0, 0, false
	}

	r := rng.Float64()
	switch {
	case r < s.Policy.EraserChance && hasCollected:
		return EraserGlyph, RoleEraser, true
	case r >= s.Policy.EraserChance && r < s.Policy.EraserChance+s.Policy.DistractorChance:
		return rune('A' + rng.Intn(26)), RoleDistractor, true
	default:
		return next, RoleCorrect, true
	}
}
