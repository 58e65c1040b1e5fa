package engine

import "fmt"

// GameState is the round's phase. Exactly one variant is current at a time.
type GameState interface {
	gameState()
	String() string
}

// Idle waits for the player to start.
type Idle struct{}

// Countdown counts down to Playing, one per second.
type Countdown struct {
	Remaining int
}

// Playing runs the movement, spawn and hint timers.
type Playing struct{}

// Paused keeps everything frozen until resumed.
type Paused struct{}

// WordComplete is the celebration window after a finished word.
type WordComplete struct {
	ClueIndex int
	Word      string
	Fact      string
	Bonus     int
}

// GameOver ends the round after a collision.
type GameOver struct {
	Cause Collision
}

// AllWordsComplete ends the round after the last clue.
type AllWordsComplete struct {
	Result Result
}

// NoContent means the clue list was unusable. The round never starts.
type NoContent struct {
	Err error
}

func (Idle) gameState()             {}
func (Countdown) gameState()        {}
func (Playing) gameState()          {}
func (Paused) gameState()           {}
func (WordComplete) gameState()     {}
func (GameOver) gameState()         {}
func (AllWordsComplete) gameState() {}
func (NoContent) gameState()        {}

func (Idle) String() string             { return "idle" }
func (s Countdown) String() string      { return fmt.Sprintf("countdown(%d)", s.Remaining) }
func (Playing) String() string          { return "playing" }
func (Paused) String() string           { return "paused" }
func (s WordComplete) String() string   { return fmt.Sprintf("word_complete(%s)", s.Word) }
func (s GameOver) String() string       { return fmt.Sprintf("game_over(%s)", s.Cause) }
func (AllWordsComplete) String() string { return "all_words_complete" }
func (NoContent) String() string        { return "no_content" }

// IsTerminal reports whether s only leaves via an explicit reset.
func IsTerminal(s GameState) bool {
	switch s.(type) {
	case GameOver, AllWordsComplete, NoContent:
		return true
	}
	return false
}

// Result is handed to the completion callback once per round.
type Result struct {
	Score          int
	WordsCompleted int
	TotalWords     int
}

// Event is a notable thing that happened during Handle or Advance. Hosts
// turn events into sound and logging.
type Event int

const (
	EventCountdownTick Event = iota
	EventRoundStarted
	EventLetterAccepted
	EventLetterRejected
	EventLetterPenalized
	EventLetterErased
	EventTileSpawned
	EventHintShown
	EventWordComplete
	EventNextWord
	EventGameOver
	EventAllWordsComplete
	EventPaused
	EventResumed
	EventReset
)

var eventNames = [...]string{
	EventCountdownTick:    "countdown_tick",
	EventRoundStarted:     "round_started",
	EventLetterAccepted:   "letter_accepted",
	EventLetterRejected:   "letter_rejected",
	EventLetterPenalized:  "letter_penalized",
	EventLetterErased:     "letter_erased",
	EventTileSpawned:      "tile_spawned",
	EventHintShown:        "hint_shown",
	EventWordComplete:     "word_complete",
	EventNextWord:         "next_word",
	EventGameOver:         "game_over",
	EventAllWordsComplete: "all_words_complete",
	EventPaused:           "paused",
	EventResumed:          "resumed",
	EventReset:            "reset",
}

func (e Event) String() string {
	if int(e) >= 0 && int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}
