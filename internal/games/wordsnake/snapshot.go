package wordsnake

import "github.com/vovakirdan/wordsnake/internal/games/wordsnake/engine"

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick           uint64
	State          string
	Score          int
	ClueIndex      int
	WordsCompleted int
	Collected      string
	SnakeLen       int
	HeadX          int
	HeadY          int
	Dir            engine.Direction
	Tiles          int
	Moves          uint64
	SpeedMs        int64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.eng == nil {
		return Snapshot{Tick: g.tick}
	}
	v := g.eng.View()

	snap := Snapshot{
		Tick:           g.tick,
		State:          v.State.String(),
		Score:          v.Score,
		ClueIndex:      v.ClueIndex,
		WordsCompleted: v.WordsCompleted,
		Collected:      v.Collected,
		SnakeLen:       len(v.Snake),
		Dir:            v.Direction,
		Tiles:          len(v.Tiles),
		Moves:          v.Moves,
		SpeedMs:        v.Speed.Milliseconds(),
	}
	if len(v.Snake) > 0 {
		snap.HeadX = v.Snake[0].X
		snap.HeadY = v.Snake[0].Y
	}
	return snap
}
