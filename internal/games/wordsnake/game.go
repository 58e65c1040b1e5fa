// Package wordsnake adapts the Word Snake engine to the platform's frame
// loop: it turns per-frame input into engine intents, advances the engine's
// virtual clock by one frame, plays sound cues for engine events, and draws
// the board into a core.Screen.
package wordsnake

import (
	"time"

	"github.com/vovakirdan/wordsnake/internal/audio"
	"github.com/vovakirdan/wordsnake/internal/clues"
	"github.com/vovakirdan/wordsnake/internal/config"
	"github.com/vovakirdan/wordsnake/internal/core"
	"github.com/vovakirdan/wordsnake/internal/games/wordsnake/engine"
	"github.com/vovakirdan/wordsnake/internal/registry"
)

// Registered game IDs, one per difficulty.
const (
	IDEasy = "wordsnake"
	IDHard = "wordsnake_hard"
)

func init() {
	registry.Register(registry.GameInfo{
		ID:          IDEasy,
		Title:       "Word Snake",
		Description: config.DifficultyEasy.Description(),
	}, func(s registry.Setup) registry.Game {
		return New(s, config.DifficultyEasy)
	})
	registry.Register(registry.GameInfo{
		ID:          IDHard,
		Title:       "Word Snake (Hard)",
		Description: config.DifficultyHard.Description(),
	}, func(s registry.Setup) registry.Game {
		return New(s, config.DifficultyHard)
	})
}

// IDFor returns the registered game ID for a difficulty.
func IDFor(p config.DifficultyPreset) string {
	if p == config.DifficultyHard {
		return IDHard
	}
	return IDEasy
}

// Game implements registry.Game on top of engine.Engine.
type Game struct {
	preset config.DifficultyPreset
	pack   clues.Pack
	cfg    config.WordSnakeConfig
	cues   audio.Player

	eng   *engine.Engine
	frame time.Duration
	tick  uint64

	screenW int
	screenH int

	lastEvents []engine.Event
	completed  *core.RoundResult // Set by the engine callback, taken by Step
	closed     bool
}

// New creates a game for one pack and difficulty. Reset must be called
// before the first Step.
func New(s registry.Setup, preset config.DifficultyPreset) *Game {
	cues := s.Cues
	if cues == nil {
		cues = audio.Nop{}
	}
	return &Game{
		preset: preset,
		pack:   s.Pack,
		cfg:    s.Config,
		cues:   cues,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return IDFor(g.preset)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.preset == config.DifficultyHard {
		return "Word Snake (Hard)"
	}
	return "Word Snake"
}

// Pack returns the clue pack being played.
func (g *Game) Pack() clues.Pack {
	return g.pack
}

// Reset builds a fresh engine for the pack. Any previous engine is disposed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.eng != nil {
		g.eng.Dispose()
	}
	g.cues.Stop()

	g.frame = cfg.FrameDuration()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.completed = nil
	g.lastEvents = nil
	g.closed = false

	g.eng = engine.New(g.cfg.Engine(g.preset), g.pack.EngineClues(), cfg.Seed)
	g.eng.OnComplete(func(r engine.Result) {
		g.completed = &core.RoundResult{
			Pack:           g.pack.ID,
			Difficulty:     string(g.preset),
			Score:          r.Score,
			WordsCompleted: r.WordsCompleted,
			TotalWords:     r.TotalWords,
		}
	})
}

// Resize follows a terminal resize without touching the round.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step applies this frame's input and advances the engine by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.closed || g.eng == nil {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	var events []engine.Event
	for _, intent := range intents(in) {
		events = append(events, g.eng.Handle(intent)...)
	}
	if !g.tooSmall() {
		events = append(events, g.eng.Advance(g.frame)...)
	}
	g.lastEvents = events
	g.playCues(events)

	result := core.StepResult{State: g.State()}
	if g.completed != nil {
		result.Completed = g.completed
		g.completed = nil
	}
	return result
}

// intents maps a frame's actions and gestures to engine inputs, in the
// order the engine should see them.
func intents(in core.InputFrame) []engine.Input {
	var out []engine.Input

	if in.Has(core.ActionRestart) {
		out = append(out, engine.Reset{})
	}
	if in.Has(core.ActionStart) {
		out = append(out, engine.Start{})
	}
	if in.Has(core.ActionPause) {
		out = append(out, engine.TogglePause{})
	}
	if in.Has(core.ActionBackspace) {
		out = append(out, engine.Backspace{})
	}

	dirs := []struct {
		action core.Action
		dir    engine.Direction
	}{
		{core.ActionUp, engine.Up},
		{core.ActionDown, engine.Down},
		{core.ActionLeft, engine.Left},
		{core.ActionRight, engine.Right},
	}
	for _, d := range dirs {
		if in.Has(d.action) {
			out = append(out, engine.Move{Dir: d.dir})
		}
	}

	for _, gst := range in.Gestures {
		out = append(out, engine.Swipe{Gesture: engine.Gesture{
			DX:       gst.DX,
			DY:       gst.DY,
			Duration: gst.Duration,
		}})
	}
	return out
}

var eventCues = map[engine.Event]audio.Cue{
	engine.EventCountdownTick:    audio.CueCountdown,
	engine.EventRoundStarted:     audio.CueGo,
	engine.EventLetterAccepted:   audio.CueAccept,
	engine.EventLetterRejected:   audio.CueReject,
	engine.EventLetterPenalized:  audio.CuePenalty,
	engine.EventLetterErased:     audio.CueErase,
	engine.EventHintShown:        audio.CueHint,
	engine.EventWordComplete:     audio.CueWordComplete,
	engine.EventGameOver:         audio.CueGameOver,
	engine.EventAllWordsComplete: audio.CueVictory,
}

func (g *Game) playCues(events []engine.Event) {
	for _, ev := range events {
		if ev == engine.EventReset {
			g.cues.Stop()
			continue
		}
		if cue, ok := eventCues[ev]; ok {
			g.cues.Play(cue)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	st := g.eng.State()
	_, won := st.(engine.AllWordsComplete)
	_, paused := st.(engine.Paused)
	return core.GameState{
		Score:    g.eng.Result().Score,
		GameOver: engine.IsTerminal(st),
		Won:      won,
		Paused:   paused,
	}
}

// Events returns the engine events of the last Step.
func (g *Game) Events() []engine.Event {
	return g.lastEvents
}

// Close disposes the engine and silences pending cues. The audio player
// itself belongs to the caller.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	if g.eng != nil {
		g.eng.Dispose()
	}
	g.cues.Stop()
}
