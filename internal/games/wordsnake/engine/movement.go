package engine

// Collision is the reason a movement tick ended the round.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "none"
	}
}

// Board is the part of the round that moves: the snake and the tiles.
type Board struct {
	Snake []Cell
	Tiles []Tile
}

// WordContext is what the validator needs to judge a tile.
type WordContext struct {
	Target     string
	Collected  string
	Difficulty Difficulty
	Scoring    Scoring
}

// TickOutcome is the result of one movement tick.
type TickOutcome struct {
	Board     Board
	Collision Collision
	Hit       *Tile   // Tile under the new head, if any
	Verdict   Verdict // Zero unless Hit is set
}

// Step advances the snake one cell in dir and resolves what the new head
// touches. On a collision the input board is returned unchanged. The input
// slices are never modified.
func Step(grid Grid, b Board, dir Direction, word WordContext) TickOutcome {
	head := b.Snake[0].Add(dir)

	if !grid.InBounds(head) {
		return TickOutcome{Board: b, Collision: CollisionWall}
	}

	out := TickOutcome{}
	tileIdx := -1
	for i, t := range b.Tiles {
		if t.Cell == head {
			tileIdx = i
			hit := t
			out.Hit = &hit
			out.Verdict = Validate(t, word.Target, word.Collected, word.Difficulty, word.Scoring)
			break
		}
	}
	grow := out.Verdict.Grow

	// The tail moves out of the way this tick unless the snake grows
	body := b.Snake
	if !grow {
		body = b.Snake[:len(b.Snake)-1]
	}
	if OccupiedBy(head, body) {
		return TickOutcome{Board: b, Collision: CollisionSelf}
	}

	snake := make([]Cell, 0, len(b.Snake)+1)
	snake = append(snake, head)
	if grow {
		snake = append(snake, b.Snake...)
	} else {
		snake = append(snake, b.Snake[:len(b.Snake)-1]...)
	}

	tiles := b.Tiles
	if tileIdx >= 0 && out.Verdict.RemoveTile {
		tiles = make([]Tile, 0, len(b.Tiles)-1)
		tiles = append(tiles, b.Tiles[:tileIdx]...)
		tiles = append(tiles, b.Tiles[tileIdx+1:]...)
	}

	out.Board = Board{Snake: snake, Tiles: tiles}
	return out
}
