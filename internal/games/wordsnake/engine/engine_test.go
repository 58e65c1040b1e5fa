package engine

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"
)

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// quietConfig disables spawning so tests can place tiles by hand.
func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.InitialTiles = 0
	cfg.SpawnInterval = time.Hour
	return cfg
}

func startPlaying(t *testing.T, e *Engine) {
	t.Helper()
	e.Handle(Start{})
	e.Advance(3 * time.Second)
	if _, ok := e.State().(Playing); !ok {
		t.Fatalf("Expected Playing after countdown, got %v", e.State())
	}
}

func hasEvent(evs []Event, want Event) bool {
	for _, ev := range evs {
		if ev == want {
			return true
		}
	}
	return false
}

func TestCatScenario(t *testing.T) {
	clues := []Clue{{Prompt: "cat", Target: "CAT", Fact: "Cats sleep most of the day."}}
	e := New(quietConfig(), clues, 1)

	calls := 0
	var got Result
	e.OnComplete(func(r Result) {
		calls++
		got = r
	})

	startPlaying(t, e)

	head := e.View().Snake[0]
	e.tiles = []Tile{
		{Cell: Cell{X: head.X + 1, Y: head.Y}, Glyph: 'C', Role: RoleCorrect},
		{Cell: Cell{X: head.X + 2, Y: head.Y}, Glyph: 'A', Role: RoleCorrect},
		{Cell: Cell{X: head.X + 3, Y: head.Y}, Glyph: 'T', Role: RoleCorrect},
	}

	evs := e.Advance(3 * 200 * time.Millisecond)
	if !hasEvent(evs, EventLetterAccepted) || !hasEvent(evs, EventWordComplete) {
		t.Errorf("Missing events: %v", evs)
	}

	wc, ok := e.View().Celebration()
	if !ok {
		t.Fatalf("Expected WordComplete, got %v", e.State())
	}
	if wc.Word != "CAT" || wc.Bonus != 150 {
		t.Errorf("Unexpected celebration: %+v", wc)
	}
	if wc.Fact != clues[0].Fact {
		t.Errorf("Expected fact %q, got %q", clues[0].Fact, wc.Fact)
	}
	if score := e.View().Score; score != 30+150 {
		t.Errorf("Expected score 180, got %d", score)
	}

	e.Advance(3 * time.Second)
	if _, ok := e.State().(AllWordsComplete); !ok {
		t.Fatalf("Expected AllWordsComplete, got %v", e.State())
	}
	if calls != 1 {
		t.Fatalf("Expected one completion callback, got %d", calls)
	}
	if got.Score != 180 || got.WordsCompleted != 1 || got.TotalWords != 1 {
		t.Errorf("Unexpected result: %+v", got)
	}

	e.Advance(10 * time.Second)
	e.Handle(Start{})
	e.Advance(10 * time.Second)
	if calls != 1 {
		t.Errorf("Completion callback fired again: %d", calls)
	}
}

func TestOnCompleteOncePerRound(t *testing.T) {
	clues := []Clue{{Target: "A"}}
	e := New(quietConfig(), clues, 1)

	calls := 0
	e.OnComplete(func(Result) { calls++ })

	for round := 1; round <= 2; round++ {
		startPlaying(t, e)
		head := e.View().Snake[0]
		e.tiles = []Tile{{Cell: Cell{X: head.X + 1, Y: head.Y}, Glyph: 'A', Role: RoleCorrect}}
		e.Advance(200 * time.Millisecond)
		e.Advance(3 * time.Second)
		if calls != round {
			t.Fatalf("Round %d: expected %d callbacks, got %d", round, round, calls)
		}
		e.Handle(Reset{})
	}
}

func TestHardDistractorScenario(t *testing.T) {
	cfg := quietConfig()
	cfg.Difficulty = Hard
	e := New(cfg, []Clue{{Target: "CAT"}}, 1)
	startPlaying(t, e)

	head := e.View().Snake[0]
	e.tiles = []Tile{
		{Cell: Cell{X: head.X + 1, Y: head.Y}, Glyph: 'C', Role: RoleCorrect},
		{Cell: Cell{X: head.X + 2, Y: head.Y}, Glyph: 'Q', Role: RoleDistractor},
	}
	evs := e.Advance(400 * time.Millisecond)

	v := e.View()
	if v.Collected != "CQ" {
		t.Errorf("Expected CQ, got %q", v.Collected)
	}
	if v.Score != 5 {
		t.Errorf("Expected score 5, got %d", v.Score)
	}
	if len(v.Snake) != 3 {
		t.Errorf("Expected snake length 3, got %d", len(v.Snake))
	}
	if !hasEvent(evs, EventLetterPenalized) {
		t.Errorf("Expected penalty event, got %v", evs)
	}
	if _, ok := v.State.(Playing); !ok {
		t.Errorf("Expected still Playing, got %v", v.State)
	}
}

func TestHardPenaltyFloor(t *testing.T) {
	cfg := quietConfig()
	cfg.Difficulty = Hard
	e := New(cfg, []Clue{{Target: "CAT"}}, 1)
	startPlaying(t, e)

	head := e.View().Snake[0]
	e.tiles = []Tile{{Cell: Cell{X: head.X + 1, Y: head.Y}, Glyph: 'Q', Role: RoleDistractor}}
	e.Advance(200 * time.Millisecond)

	if score := e.View().Score; score != 0 {
		t.Errorf("Expected score floored at 0, got %d", score)
	}
}

func TestStaleTileEasy(t *testing.T) {
	e := New(quietConfig(), []Clue{{Target: "CAT"}}, 1)
	startPlaying(t, e)

	e.collected = "CA"
	head := e.View().Snake[0]
	e.tiles = []Tile{{Cell: Cell{X: head.X + 1, Y: head.Y}, Glyph: 'A', Role: RoleCorrect}}
	evs := e.Advance(200 * time.Millisecond)

	v := e.View()
	if v.Collected != "CA" {
		t.Errorf("Expected CA, got %q", v.Collected)
	}
	if len(v.Tiles) != 1 || len(v.Snake) != 1 {
		t.Errorf("Stale tile must stay and not grow the snake: tiles=%d snake=%d", len(v.Tiles), len(v.Snake))
	}
	if !hasEvent(evs, EventLetterRejected) {
		t.Errorf("Expected rejection event, got %v", evs)
	}
}

func TestWallCollisionEndsRound(t *testing.T) {
	e := New(quietConfig(), []Clue{{Target: "CAT"}}, 1)
	startPlaying(t, e)

	// Center of a 15 grid is x=7; eight moves right leave the grid
	evs := e.Advance(8 * 200 * time.Millisecond)
	over, ok := e.State().(GameOver)
	if !ok {
		t.Fatalf("Expected GameOver, got %v", e.State())
	}
	if over.Cause != CollisionWall {
		t.Errorf("Expected wall, got %v", over.Cause)
	}
	if !hasEvent(evs, EventGameOver) {
		t.Error("Expected game over event")
	}

	moves := e.View().Moves
	e.Advance(5 * time.Second)
	e.Handle(Move{Dir: Up})
	if e.View().Moves != moves {
		t.Error("Snake moved after game over")
	}

	e.Handle(Reset{})
	if _, ok := e.State().(Idle); !ok {
		t.Errorf("Expected Idle after reset, got %v", e.State())
	}
}

func TestSelfCollisionEndsRound(t *testing.T) {
	e := New(quietConfig(), []Clue{{Target: "CAT"}}, 1)
	startPlaying(t, e)

	e.snake = []Cell{
		{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 5},
		{X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6},
	}
	e.Advance(200 * time.Millisecond)

	over, ok := e.State().(GameOver)
	if !ok || over.Cause != CollisionSelf {
		t.Errorf("Expected self collision game over, got %v", e.State())
	}
}

func TestDirectionLatchedUntilTick(t *testing.T) {
	e := New(quietConfig(), []Clue{{Target: "CAT"}}, 1)
	startPlaying(t, e)
	start := e.View().Snake[0]

	e.Handle(Move{Dir: Up})
	if e.View().Direction != Right {
		t.Fatal("Direction changed before the tick")
	}
	e.Advance(200 * time.Millisecond)
	if head := e.View().Snake[0]; head != (Cell{X: start.X, Y: start.Y - 1}) {
		t.Fatalf("Expected head to move up, got %v", head)
	}

	// Same axis as committed: ignored
	e.Handle(Move{Dir: Down})
	// Both horizontal: last one wins
	e.Handle(Move{Dir: Left})
	e.Handle(Move{Dir: Right})
	e.Advance(200 * time.Millisecond)

	if head := e.View().Snake[0]; head != (Cell{X: start.X + 1, Y: start.Y - 1}) {
		t.Errorf("Expected head to move right, got %v", head)
	}
}

func TestReversalRejected(t *testing.T) {
	e := New(quietConfig(), []Clue{{Target: "CAT"}}, 1)
	startPlaying(t, e)
	start := e.View().Snake[0]

	e.Handle(Move{Dir: Left})
	e.Advance(200 * time.Millisecond)
	if head := e.View().Snake[0]; head != (Cell{X: start.X + 1, Y: start.Y}) {
		t.Errorf("Reversal was accepted, head at %v", head)
	}
}

func TestDirectionIgnoredWhenNotPlaying(t *testing.T) {
	e := New(quietConfig(), []Clue{{Target: "CAT"}}, 1)
	e.Handle(Move{Dir: Up})
	if !e.pending.IsNone() {
		t.Error("Direction latched while Idle")
	}
}

func TestCountdown(t *testing.T) {
	e := New(quietConfig(), []Clue{{Target: "CAT"}}, 1)

	e.Handle(Start{})
	if cd, ok := e.State().(Countdown); !ok || cd.Remaining != 3 {
		t.Fatalf("Expected Countdown(3), got %v", e.State())
	}
	e.Advance(time.Second)
	if cd, _ := e.State().(Countdown); cd.Remaining != 2 {
		t.Fatalf("Expected Countdown(2), got %v", e.State())
	}
	e.Advance(999 * time.Millisecond)
	if cd, _ := e.State().(Countdown); cd.Remaining != 2 {
		t.Fatalf("Expected still Countdown(2), got %v", e.State())
	}
	e.Advance(time.Millisecond)
	if cd, _ := e.State().(Countdown); cd.Remaining != 1 {
		t.Fatalf("Expected Countdown(1), got %v", e.State())
	}
	if e.View().Moves != 0 {
		t.Error("Snake moved during countdown")
	}

	evs := e.Advance(time.Second)
	if _, ok := e.State().(Playing); !ok {
		t.Fatalf("Expected Playing, got %v", e.State())
	}
	if !hasEvent(evs, EventRoundStarted) {
		t.Error("Expected round started event")
	}
	if e.View().Direction != Right {
		t.Errorf("Expected default direction Right, got %v", e.View().Direction)
	}
}

func TestTapStartsFromIdle(t *testing.T) {
	e := New(quietConfig(), []Clue{{Target: "CAT"}}, 1)
	e.Handle(Tap{})
	if _, ok := e.State().(Countdown); !ok {
		t.Errorf("Expected tap to start countdown, got %v", e.State())
	}

	e = New(quietConfig(), []Clue{{Target: "CAT"}}, 1)
	e.Handle(Swipe{Gesture: Gesture{DX: 3, DY: 2, Duration: 50 * time.Millisecond}})
	if _, ok := e.State().(Countdown); !ok {
		t.Errorf("Expected short gesture to act as a tap, got %v", e.State())
	}
}

func TestSwipeTurns(t *testing.T) {
	e := New(quietConfig(), []Clue{{Target: "CAT"}}, 1)
	startPlaying(t, e)
	start := e.View().Snake[0]

	e.Handle(Swipe{Gesture: Gesture{DX: 4, DY: -60, Duration: 120 * time.Millisecond}})
	e.Advance(200 * time.Millisecond)
	if head := e.View().Snake[0]; head != (Cell{X: start.X, Y: start.Y - 1}) {
		t.Errorf("Expected swipe up to turn the snake, head at %v", head)
	}
}

func TestPauseFreezesTimers(t *testing.T) {
	e := New(quietConfig(), []Clue{{Target: "CAT"}}, 1)
	startPlaying(t, e)

	e.Advance(100 * time.Millisecond)
	e.Handle(TogglePause{})
	if _, ok := e.State().(Paused); !ok {
		t.Fatalf("Expected Paused, got %v", e.State())
	}

	e.Advance(10 * time.Second)
	if v := e.View(); v.Moves != 0 || v.Elapsed != 0 {
		t.Fatalf("Time passed while paused: moves=%d elapsed=%d", v.Moves, v.Elapsed)
	}

	e.Handle(TogglePause{})
	e.Advance(100 * time.Millisecond)
	if moves := e.View().Moves; moves != 1 {
		t.Errorf("Expected one move after resume, got %d", moves)
	}
}

func TestResetRebuildsSchedule(t *testing.T) {
	e := New(quietConfig(), []Clue{{Target: "CAT"}}, 1)
	startPlaying(t, e)
	e.Advance(150 * time.Millisecond)

	e.Handle(Reset{})
	if _, ok := e.State().(Idle); !ok {
		t.Fatalf("Expected Idle, got %v", e.State())
	}
	// A stale timer would fire here
	e.Advance(time.Second)
	if e.View().Moves != 0 {
		t.Fatal("Timer fired after reset")
	}

	startPlaying(t, e)
	e.Advance(150 * time.Millisecond)
	if e.View().Moves != 0 {
		t.Error("Movement timer carried elapsed time across reset")
	}
	e.Advance(50 * time.Millisecond)
	if e.View().Moves != 1 {
		t.Errorf("Expected one move, got %d", e.View().Moves)
	}
}

func TestNextWordResetsBoardAndSpeedsUp(t *testing.T) {
	e := New(quietConfig(), []Clue{{Target: "A"}, {Target: "B"}}, 1)
	startPlaying(t, e)

	head := e.View().Snake[0]
	e.tiles = []Tile{{Cell: Cell{X: head.X + 1, Y: head.Y}, Glyph: 'A', Role: RoleCorrect}}
	e.Advance(200 * time.Millisecond)
	if _, ok := e.State().(WordComplete); !ok {
		t.Fatalf("Expected WordComplete, got %v", e.State())
	}

	// No movement during the celebration
	moves := e.View().Moves
	evs := e.Advance(3 * time.Second)
	if !hasEvent(evs, EventNextWord) {
		t.Errorf("Expected next word event, got %v", evs)
	}

	v := e.View()
	if v.Moves != moves {
		t.Error("Snake moved during celebration")
	}
	if _, ok := v.State.(Playing); !ok {
		t.Fatalf("Expected Playing, got %v", v.State)
	}
	if v.ClueIndex != 1 || v.Target != "B" {
		t.Errorf("Expected second clue, got index %d target %q", v.ClueIndex, v.Target)
	}
	if v.Speed != 185*time.Millisecond {
		t.Errorf("Expected 185ms, got %v", v.Speed)
	}
	if len(v.Snake) != 1 || v.Snake[0] != e.grid.Center() {
		t.Errorf("Expected single-cell snake at center, got %v", v.Snake)
	}
	if len(v.Tiles) != 0 || v.Collected != "" {
		t.Errorf("Expected empty board, tiles=%d collected=%q", len(v.Tiles), v.Collected)
	}
}

func TestSpeedScaling(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.SpeedFor(0); got != 200*time.Millisecond {
		t.Errorf("SpeedFor(0) = %v, want 200ms", got)
	}
	if got := cfg.SpeedFor(8); got != 80*time.Millisecond {
		t.Errorf("SpeedFor(8) = %v, want 80ms", got)
	}
	if got := cfg.SpeedFor(20); got != 80*time.Millisecond {
		t.Errorf("SpeedFor(20) = %v, want 80ms", got)
	}

	prev := cfg.SpeedFor(0)
	for n := 1; n < 20; n++ {
		cur := cfg.SpeedFor(n)
		if cur > prev {
			t.Fatalf("Speed increased at %d words: %v > %v", n, cur, prev)
		}
		prev = cur
	}
}

func TestHintAfterThirtySeconds(t *testing.T) {
	cfg := quietConfig()
	cfg.BaseSpeed = time.Hour
	cfg.MinSpeed = time.Hour
	e := New(cfg, []Clue{{Target: "CAT", Hint: "It says meow"}}, 1)
	startPlaying(t, e)

	e.Advance(29 * time.Second)
	if v := e.View(); v.HintVisible || v.Hint != "" {
		t.Fatal("Hint shown too early")
	}

	evs := e.Advance(time.Second)
	v := e.View()
	if !v.HintVisible || v.Hint != "It says meow" {
		t.Errorf("Expected hint after 30s, got visible=%v hint=%q", v.HintVisible, v.Hint)
	}
	if !hasEvent(evs, EventHintShown) {
		t.Error("Expected hint event")
	}
}

func TestNoHintWithoutText(t *testing.T) {
	cfg := quietConfig()
	cfg.BaseSpeed = time.Hour
	cfg.MinSpeed = time.Hour
	e := New(cfg, []Clue{{Target: "CAT"}}, 1)
	startPlaying(t, e)

	e.Advance(time.Minute)
	if e.View().HintVisible {
		t.Error("Hint visible for a clue without one")
	}
}

func TestBackspaceAction(t *testing.T) {
	e := New(quietConfig(), []Clue{{Target: "SEA TURTLE"}}, 1)

	e.collected = "SEA "
	e.Handle(Backspace{})
	if e.collected != "SEA " {
		t.Error("Backspace applied while Idle")
	}

	startPlaying(t, e)
	e.collected = "SEA "
	evs := e.Handle(Backspace{})
	if e.View().Collected != "SE" {
		t.Errorf("Expected SE, got %q", e.View().Collected)
	}
	if !hasEvent(evs, EventLetterErased) {
		t.Error("Expected erase event")
	}
}

func TestNoContent(t *testing.T) {
	e := New(quietConfig(), nil, 1)
	nc, ok := e.State().(NoContent)
	if !ok {
		t.Fatalf("Expected NoContent, got %v", e.State())
	}
	if !errors.Is(nc.Err, ErrNoClues) {
		t.Errorf("Expected ErrNoClues, got %v", nc.Err)
	}

	e.Handle(Start{})
	e.Advance(5 * time.Second)
	if _, ok := e.State().(NoContent); !ok {
		t.Error("Engine left NoContent")
	}

	e = New(quietConfig(), []Clue{{Target: "CAT"}, {Target: "   "}}, 1)
	nc, ok = e.State().(NoContent)
	if !ok || !errors.Is(nc.Err, ErrEmptyTarget) {
		t.Errorf("Expected ErrEmptyTarget, got %v", e.State())
	}

	e.Handle(Reset{})
	if _, ok := e.State().(NoContent); !ok {
		t.Error("Reset left NoContent")
	}
}

func TestDisposeIdempotent(t *testing.T) {
	e := New(quietConfig(), []Clue{{Target: "CAT"}}, 1)
	startPlaying(t, e)

	e.Dispose()
	e.Dispose()
	if !e.Disposed() {
		t.Fatal("Expected disposed")
	}

	if evs := e.Advance(time.Second); evs != nil {
		t.Errorf("Expected no events after dispose, got %v", evs)
	}
	if e.View().Moves != 0 {
		t.Error("Engine moved after dispose")
	}
	e.Handle(Reset{})
	if _, ok := e.State().(Playing); !ok {
		t.Error("Engine accepted input after dispose")
	}
}

func TestEasySpawnsOnlyNextLetter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseSpeed = time.Hour
	cfg.MinSpeed = time.Hour
	e := New(cfg, []Clue{{Target: "CAT"}}, 9)
	startPlaying(t, e)
	e.Advance(20 * time.Second)

	v := e.View()
	if len(v.Tiles) == 0 {
		t.Fatal("Expected tiles to spawn")
	}
	for _, tl := range v.Tiles {
		if tl.Glyph != 'C' || tl.Role != RoleCorrect {
			t.Errorf("Unexpected tile %c (%v)", tl.Glyph, tl.Role)
		}
	}
}

func TestTileCapAndPlacement(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Difficulty = Hard
	cfg.BaseSpeed = time.Hour
	cfg.MinSpeed = time.Hour
	e := New(cfg, []Clue{{Target: "CAT"}}, 5)
	startPlaying(t, e)
	e.Advance(40 * time.Second)

	v := e.View()
	if len(v.Tiles) != cfg.Spawn.MaxTiles {
		t.Errorf("Expected %d tiles, got %d", cfg.Spawn.MaxTiles, len(v.Tiles))
	}
	seen := map[Cell]bool{}
	for _, tl := range v.Tiles {
		if seen[tl.Cell] {
			t.Errorf("Two tiles on %v", tl.Cell)
		}
		seen[tl.Cell] = true
		if OccupiedBy(tl.Cell, v.Snake) {
			t.Errorf("Tile on the snake at %v", tl.Cell)
		}
	}
}

func TestDeterminism(t *testing.T) {
	// Two engines with the same seed and inputs stay identical
	cfg := DefaultConfig()
	cfg.Difficulty = Hard
	clues := []Clue{{Target: "SEA TURTLE"}}

	e1 := New(cfg, clues, 12345)
	e2 := New(cfg, clues, 12345)

	step := 16 * time.Millisecond
	for i := 0; i < 400; i++ {
		var in Input
		switch i {
		case 0:
			in = Start{}
		case 220:
			in = Move{Dir: Down}
		case 240:
			in = Move{Dir: Left}
		}
		if in != nil {
			e1.Handle(in)
			e2.Handle(in)
		}
		e1.Advance(step)
		e2.Advance(step)
	}

	if !reflect.DeepEqual(e1.View(), e2.View()) {
		t.Errorf("Views diverged:\n%+v\n%+v", e1.View(), e2.View())
	}
}

func TestBackspaceAfterFullCapKeepsWordReachable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialTiles = 0
	cfg.BaseSpeed = time.Minute // keep the snake in place
	e := New(cfg, []Clue{{Prompt: "p", Target: "CAT"}}, 1)
	startPlaying(t, e)

	e.collected = "CA"
	e.tiles = nil
	for i := 0; i < cfg.Spawn.MaxTiles; i++ {
		e.tiles = append(e.tiles, Tile{Cell: Cell{X: i, Y: 0}, Glyph: 'T', Role: RoleCorrect})
	}

	e.Handle(Backspace{})
	if e.collected != "C" {
		t.Fatalf("Expected C after backspace, got %q", e.collected)
	}
	e.Advance(2 * cfg.SpawnInterval)

	found := false
	for _, tl := range e.View().Tiles {
		if tl.Glyph == 'A' {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected an A tile after the erase, tiles=%d", len(e.View().Tiles))
	}
	if _, ok := e.State().(Playing); !ok {
		t.Errorf("Expected Playing, got %v", e.State())
	}
}

func TestZeroConfigDefaults(t *testing.T) {
	e := New(Config{}, []Clue{{Prompt: "p", Target: "CAT"}}, 1)
	cfg := e.Config()
	if cfg.GridSize != DefaultConfig().GridSize || cfg.BaseSpeed != DefaultConfig().BaseSpeed {
		t.Errorf("Expected default grid and speed, got %d and %v", cfg.GridSize, cfg.BaseSpeed)
	}
	if cfg.Countdown != 0 || cfg.HintAfter != 0 || cfg.SpeedStep != 0 || cfg.InitialTiles != 0 {
		t.Errorf("Expected zero countdown, hint, speed step and initial tiles to stay zero: %+v", cfg)
	}

	e.Handle(Start{})
	if _, ok := e.State().(Playing); !ok {
		t.Errorf("Expected Start to skip the countdown, got %v", e.State())
	}
}
