package wordsnake

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/wordsnake/internal/audio"
	"github.com/vovakirdan/wordsnake/internal/clues"
	"github.com/vovakirdan/wordsnake/internal/config"
	"github.com/vovakirdan/wordsnake/internal/core"
	"github.com/vovakirdan/wordsnake/internal/games/wordsnake/engine"
	"github.com/vovakirdan/wordsnake/internal/registry"
)

// testConfig starts immediately and places exactly one tile per word.
func testConfig() config.WordSnakeConfig {
	cfg := config.DefaultWordSnakeConfig()
	cfg.Timing.Countdown = 0
	cfg.Timing.SpawnInterval = time.Hour
	cfg.Spawn.InitialTiles = 1
	return cfg
}

func testPack(targets ...string) clues.Pack {
	p := clues.Pack{ID: "test", Name: "Test"}
	for _, t := range targets {
		p.Clues = append(p.Clues, clues.Clue{Prompt: "spell " + t, Target: t, Fact: "A fact about " + t})
	}
	return p
}

func newTestGame(t *testing.T, preset config.DifficultyPreset, cfg config.WordSnakeConfig, pack clues.Pack) (*Game, *audio.Recorder) {
	t.Helper()
	rec := &audio.Recorder{}
	g := New(registry.Setup{Pack: pack, Config: cfg, Cues: rec}, preset)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g, rec
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func countCue(played []audio.Cue, c audio.Cue) int {
	n := 0
	for _, p := range played {
		if p == c {
			n++
		}
	}
	return n
}

// steer turns the snake toward the first tile, side-stepping when the tile
// lies behind on the current axis.
func steer(v engine.View) core.Action {
	if _, ok := v.State.(engine.Playing); !ok || len(v.Tiles) == 0 || len(v.Snake) == 0 {
		return core.ActionNone
	}
	head, tile := v.Snake[0], v.Tiles[0].Cell

	if v.Direction.Axis() == engine.AxisHorizontal {
		switch {
		case tile.Y > head.Y:
			return core.ActionDown
		case tile.Y < head.Y:
			return core.ActionUp
		case (tile.X < head.X) == (v.Direction == engine.Right):
			if head.Y > 0 {
				return core.ActionUp
			}
			return core.ActionDown
		}
		return core.ActionNone
	}

	switch {
	case tile.X > head.X:
		return core.ActionRight
	case tile.X < head.X:
		return core.ActionLeft
	case (tile.Y < head.Y) == (v.Direction == engine.Down):
		if head.X > 0 {
			return core.ActionLeft
		}
		return core.ActionRight
	}
	return core.ActionNone
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDEasy, IDHard} {
		if !registry.Exists(id) {
			t.Fatalf("%s not registered", id)
		}
		g, err := registry.Create(id, registry.Setup{Pack: testPack("A"), Config: testConfig()})
		if err != nil {
			t.Fatalf("Create(%s): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%s) built %s", id, g.ID())
		}
	}
	if IDFor(config.DifficultyHard) != IDHard || IDFor(config.DifficultyEasy) != IDEasy {
		t.Error("IDFor mismatch")
	}
}

func TestLessonCompletes(t *testing.T) {
	g, rec := newTestGame(t, config.DifficultyEasy, testConfig(), testPack("A", "B"))

	res := g.Step(frame(core.ActionStart))
	if res.State.GameOver {
		t.Fatal("round ended on start")
	}
	if countCue(rec.Played, audio.CueGo) != 1 {
		t.Errorf("expected the go cue, got %v", rec.Played)
	}

	var completed []*core.RoundResult
	for i := 0; i < 5000 && !res.State.GameOver; i++ {
		res = g.Step(frame(steer(g.eng.View())))
		if res.Completed != nil {
			completed = append(completed, res.Completed)
		}
	}

	if !res.State.GameOver || !res.State.Won {
		t.Fatalf("expected a won lesson, got %+v (%s)", res.State, g.eng.State())
	}
	if len(completed) != 1 {
		t.Fatalf("expected exactly one completion, got %d", len(completed))
	}
	r := completed[0]
	if r.Pack != "test" || r.Difficulty != "easy" || r.WordsCompleted != 2 || r.TotalWords != 2 {
		t.Errorf("unexpected result: %+v", r)
	}
	if r.Score != res.State.Score || r.Score <= 0 {
		t.Errorf("result score %d, state score %d", r.Score, res.State.Score)
	}

	if n := countCue(rec.Played, audio.CueAccept); n != 2 {
		t.Errorf("expected 2 accept cues, got %d", n)
	}
	if n := countCue(rec.Played, audio.CueWordComplete); n != 2 {
		t.Errorf("expected 2 word-complete cues, got %d", n)
	}
	if n := countCue(rec.Played, audio.CueVictory); n != 1 {
		t.Errorf("expected 1 victory cue, got %d", n)
	}

	// Idle frames after the end must not report the lesson again
	for range 10 {
		if g.Step(core.NewInputFrame()).Completed != nil {
			t.Fatal("completion reported twice")
		}
	}
}

func TestWallEndsRound(t *testing.T) {
	cfg := testConfig()
	cfg.Spawn.InitialTiles = 0
	g, rec := newTestGame(t, config.DifficultyEasy, cfg, testPack("CAT"))

	g.Step(frame(core.ActionStart))
	var res core.StepResult
	for i := 0; i < 600 && !res.State.GameOver; i++ {
		res = g.Step(core.NewInputFrame())
	}

	if !res.State.GameOver || res.State.Won {
		t.Fatalf("expected a lost round, got %+v", res.State)
	}
	if res.Completed != nil {
		t.Error("a lost round must not report completion")
	}
	if _, ok := g.eng.State().(engine.GameOver); !ok {
		t.Errorf("engine state %s", g.eng.State())
	}
	if countCue(rec.Played, audio.CueGameOver) != 1 {
		t.Errorf("expected game over cue, got %v", rec.Played)
	}

	// Restart returns to Idle and silences the player
	stops := rec.Stops
	res = g.Step(frame(core.ActionRestart))
	if res.State.GameOver {
		t.Error("restart should leave the terminal state")
	}
	if _, ok := g.eng.State().(engine.Idle); !ok {
		t.Errorf("expected idle after restart, got %s", g.eng.State())
	}
	if rec.Stops != stops+1 {
		t.Errorf("expected Stop on reset, stops %d -> %d", stops, rec.Stops)
	}
}

func TestPauseFreezesClock(t *testing.T) {
	cfg := testConfig()
	cfg.Spawn.InitialTiles = 0
	g, _ := newTestGame(t, config.DifficultyEasy, cfg, testPack("CAT"))

	g.Step(frame(core.ActionStart))
	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused")
	}
	before := g.Snapshot()
	for range 120 {
		g.Step(core.NewInputFrame())
	}
	if after := g.Snapshot(); after.Moves != before.Moves || after.HeadX != before.HeadX {
		t.Errorf("snake moved while paused: %+v -> %+v", before, after)
	}

	g.Step(frame(core.ActionPause))
	for range 60 {
		g.Step(core.NewInputFrame())
	}
	if g.Snapshot().Moves == before.Moves {
		t.Error("snake should move after resume")
	}
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultWordSnakeConfig()
	pack := testPack("SEA TURTLE", "OWL")

	g1, _ := newTestGame(t, config.DifficultyHard, cfg, pack)
	g2, _ := newTestGame(t, config.DifficultyHard, cfg, pack)

	script := map[int]core.Action{
		0:   core.ActionStart,
		200: core.ActionUp,
		230: core.ActionLeft,
		260: core.ActionDown,
	}
	for i := range 400 {
		in := core.NewInputFrame()
		if a, ok := script[i]; ok {
			in.Set(a)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestTooSmallWindow(t *testing.T) {
	cfg := testConfig()
	cfg.Spawn.InitialTiles = 0
	g, _ := newTestGame(t, config.DifficultyEasy, cfg, testPack("CAT"))
	g.Step(frame(core.ActionStart))

	g.Resize(20, 10)
	moves := g.Snapshot().Moves
	for range 60 {
		g.Step(core.NewInputFrame())
	}
	if g.Snapshot().Moves != moves {
		t.Error("clock should not run while the window is too small")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected too-small notice:\n%s", screen.String())
	}
}

func TestRender(t *testing.T) {
	g, _ := newTestGame(t, config.DifficultyEasy, testConfig(), testPack("CAT"))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Score: 0", "Word 1/1", "Press Space", "spell CAT"} {
		if !strings.Contains(out, want) {
			t.Errorf("idle render missing %q:\n%s", want, out)
		}
	}

	g.Step(frame(core.ActionStart))
	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, "_ _ _") {
		t.Errorf("expected blanks for CAT:\n%s", out)
	}
	if !strings.Contains(out, "O") {
		t.Error("snake head not drawn")
	}
	if !strings.Contains(screen.Row(0), "Word Snake") {
		t.Errorf("HUD row: %q", screen.Row(0))
	}
}

func TestNoContent(t *testing.T) {
	g, _ := newTestGame(t, config.DifficultyEasy, testConfig(), clues.Pack{ID: "empty"})

	res := g.Step(frame(core.ActionStart))
	if !res.State.GameOver || res.State.Won {
		t.Errorf("an empty pack should be terminal, got %+v", res.State)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Nothing to play") {
		t.Errorf("expected no-content notice:\n%s", screen.String())
	}
}

func TestClose(t *testing.T) {
	g, rec := newTestGame(t, config.DifficultyEasy, testConfig(), testPack("CAT"))
	g.Step(frame(core.ActionStart))
	moves := g.Snapshot().Moves

	stops := rec.Stops
	g.Close()
	g.Close()
	if rec.Stops != stops+1 {
		t.Errorf("expected one Stop, got %d", rec.Stops-stops)
	}
	if rec.Closed {
		t.Error("the game must not close a player it does not own")
	}
	if !g.eng.Disposed() {
		t.Error("engine not disposed")
	}
	for range 60 {
		g.Step(core.NewInputFrame())
	}
	if g.Snapshot().Moves != moves {
		t.Error("closed game kept running")
	}
}

func TestIntents(t *testing.T) {
	in := frame(core.ActionRestart, core.ActionStart, core.ActionLeft)
	in.AddGesture(core.Gesture{DX: 50, Duration: 100 * time.Millisecond})

	got := intents(in)
	if len(got) != 4 {
		t.Fatalf("expected 4 intents, got %#v", got)
	}
	if _, ok := got[0].(engine.Reset); !ok {
		t.Errorf("reset must come first, got %#v", got[0])
	}
	if _, ok := got[1].(engine.Start); !ok {
		t.Errorf("expected start, got %#v", got[1])
	}
	if m, ok := got[2].(engine.Move); !ok || m.Dir != engine.Left {
		t.Errorf("expected move left, got %#v", got[2])
	}
	if s, ok := got[3].(engine.Swipe); !ok || s.Gesture.DX != 50 {
		t.Errorf("expected swipe, got %#v", got[3])
	}
}

func TestTextHelpers(t *testing.T) {
	if got := spaced("C_T"); got != "C _ T" {
		t.Errorf("spaced = %q", got)
	}
	if got := truncate("turtle", 4); got != "tur…" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("owl", 4); got != "owl" {
		t.Errorf("truncate = %q", got)
	}
	got := wrap("sea turtles can hold their breath for hours", 16)
	want := []string{"sea turtles can", "hold their", "breath for hours"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("wrap = %q", got)
	}
}
