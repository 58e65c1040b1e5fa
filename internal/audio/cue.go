// Package audio plays short synthesized sound cues for game events. Cues are
// fire-and-forget; a failing or disabled audio device never affects play.
package audio

// Cue identifies a sound.
type Cue int

const (
	CueCountdown    Cue = iota // One countdown step
	CueGo                      // Countdown finished, snake moves
	CueAccept                  // Letter collected
	CueReject                  // Wrong letter in easy mode
	CuePenalty                 // Distractor eaten in hard mode
	CueErase                   // Eraser or manual backspace
	CueHint                    // Hint revealed
	CueWordComplete            // Word spelled
	CueGameOver                // Collision
	CueVictory                 // Last word spelled
)

var cueNames = [...]string{
	CueCountdown:    "countdown",
	CueGo:           "go",
	CueAccept:       "accept",
	CueReject:       "reject",
	CuePenalty:      "penalty",
	CueErase:        "erase",
	CueHint:         "hint",
	CueWordComplete: "word_complete",
	CueGameOver:     "game_over",
	CueVictory:      "victory",
}

func (c Cue) String() string {
	if c >= 0 && int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

// Cues lists every cue.
func Cues() []Cue {
	out := make([]Cue, len(cueNames))
	for i := range out {
		out[i] = Cue(i)
	}
	return out
}

// Player plays cues. Implementations are safe for concurrent use.
type Player interface {
	// Play queues c and returns immediately.
	Play(c Cue)
	// Stop silences everything currently playing.
	Stop()
	// Close releases the audio device. Further Play calls do nothing.
	Close() error
}

// Nop is a Player that makes no sound. SSH sessions and tests use it.
type Nop struct{}

func (Nop) Play(Cue)     {}
func (Nop) Stop()        {}
func (Nop) Close() error { return nil }

// Recorder is a Player that remembers what it was asked to play.
type Recorder struct {
	Played []Cue
	Stops  int
	Closed bool
}

func (r *Recorder) Play(c Cue) { r.Played = append(r.Played, c) }
func (r *Recorder) Stop()      { r.Stops++ }
func (r *Recorder) Close() error {
	r.Closed = true
	return nil
}
