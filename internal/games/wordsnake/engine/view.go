package engine

import "time"

// BlankGlyph stands in for letters not yet collected in View.Display.
const BlankGlyph = '_'

// View is a read-only projection of the engine for rendering. Slices are
// copies; hosts may keep them.
type View struct {
	State      GameState
	Difficulty Difficulty
	GridSize   int

	Score          int
	ClueIndex      int
	ClueCount      int
	WordsCompleted int

	Prompt      string
	Target      string
	Hint        string
	HintVisible bool
	Image       string
	Collected   string
	Display     string
	Elapsed     int // Seconds spent on the current word

	Speed     time.Duration
	Direction Direction
	Snake     []Cell
	Tiles     []Tile
	Moves     uint64
}

// Celebration returns the word-complete payload while it is showing.
func (v View) Celebration() (WordComplete, bool) {
	wc, ok := v.State.(WordComplete)
	return wc, ok
}

// View returns the current projection.
func (e *Engine) View() View {
	clue, _ := e.currentClue()

	v := View{
		State:          e.state,
		Difficulty:     e.cfg.Difficulty,
		GridSize:       e.grid.Size,
		Score:          e.score,
		ClueIndex:      e.clueIndex,
		ClueCount:      len(e.clues),
		WordsCompleted: e.wordsCompleted,
		Prompt:         clue.Prompt,
		Target:         clue.Target,
		HintVisible:    e.hintVisible,
		Image:          clue.Image,
		Collected:      e.collected,
		Display:        DisplayWord(clue.Target, e.collected, BlankGlyph),
		Elapsed:        e.elapsed,
		Speed:          e.speed,
		Direction:      e.committed,
		Snake:          append([]Cell(nil), e.snake...),
		Tiles:          append([]Tile(nil), e.tiles...),
		Moves:          e.moves,
	}
	if e.hintVisible {
		v.Hint = clue.Hint
	}
	return v
}
