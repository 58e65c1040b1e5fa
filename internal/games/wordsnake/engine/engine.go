package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Errors reported through the NoContent state.
var (
	ErrNoClues     = errors.New("engine: no clues")
	ErrEmptyTarget = errors.New("engine: empty target word")
)

// Clue is one word to spell.
type Clue struct {
	Prompt string
	Target string
	Hint   string
	Fact   string
	Image  string
}

// Config holds every tunable of a round.
type Config struct {
	GridSize         int
	FreeCellAttempts int
	Difficulty       Difficulty

	BaseSpeed     time.Duration // Movement period for the first word
	SpeedStep     time.Duration // Subtracted per completed word
	MinSpeed      time.Duration
	SpawnInterval time.Duration
	Countdown     int           // Seconds before the snake moves
	Celebration   time.Duration // Word-complete window
	HintAfter     int           // Seconds on a word before its hint shows

	Spawn        SpawnPolicy
	InitialTiles int // Tiles placed immediately when a word starts
	Scoring      Scoring
	Swipe        SwipeThresholds
}

// DefaultConfig returns the standard easy-mode configuration.
func DefaultConfig() Config {
	return Config{
		GridSize:         15,
		FreeCellAttempts: 100,
		Difficulty:       Easy,
		BaseSpeed:        200 * time.Millisecond,
		SpeedStep:        15 * time.Millisecond,
		MinSpeed:         80 * time.Millisecond,
		SpawnInterval:    2500 * time.Millisecond,
		Countdown:        3,
		Celebration:      3 * time.Second,
		HintAfter:        30,
		Spawn:            DefaultSpawnPolicy(),
		InitialTiles:     1,
		Scoring:          DefaultScoring(),
		Swipe:            DefaultSwipeThresholds(),
	}
}

// withDefaults fills zero sizes, periods, caps, scoring and swipe thresholds
// from DefaultConfig. Countdown, HintAfter, SpeedStep and InitialTiles are
// left alone: zero means no countdown, no hint, constant speed and an empty
// board at the start of each word.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.GridSize <= 0 {
		c.GridSize = d.GridSize
	}
	if c.FreeCellAttempts <= 0 {
		c.FreeCellAttempts = d.FreeCellAttempts
	}
	if c.Difficulty != Hard {
		c.Difficulty = Easy
	}
	if c.BaseSpeed <= 0 {
		c.BaseSpeed = d.BaseSpeed
	}
	if c.MinSpeed <= 0 {
		c.MinSpeed = d.MinSpeed
	}
	if c.SpawnInterval <= 0 {
		c.SpawnInterval = d.SpawnInterval
	}
	if c.Celebration <= 0 {
		c.Celebration = d.Celebration
	}
	if c.Spawn.MaxTiles <= 0 {
		c.Spawn.MaxTiles = d.Spawn.MaxTiles
	}
	if c.Scoring == (Scoring{}) {
		c.Scoring = d.Scoring
	}
	if c.Swipe == (SwipeThresholds{}) {
		c.Swipe = d.Swipe
	}
	return c
}

// SpeedFor returns the movement period after wordsCompleted words.
func (c Config) SpeedFor(wordsCompleted int) time.Duration {
	return max(c.MinSpeed, c.BaseSpeed-time.Duration(wordsCompleted)*c.SpeedStep)
}

// ValidateClues normalises targets and rejects unusable clue lists.
func ValidateClues(clues []Clue) ([]Clue, error) {
	if len(clues) == 0 {
		return nil, ErrNoClues
	}
	out := make([]Clue, len(clues))
	for i, c := range clues {
		c.Target = NormalizeTarget(c.Target)
		if c.Target == "" {
			return nil, fmt.Errorf("clue %d: %w", i+1, ErrEmptyTarget)
		}
		out[i] = c
	}
	return out, nil
}

// Engine runs one lesson: an ordered list of clues played as consecutive
// words. It is not safe for concurrent use; the host serialises Handle and
// Advance calls.
type Engine struct {
	cfg        Config
	grid       Grid
	spawner    LetterSpawner
	seed       int64
	rng        *rand.Rand
	clues      []Clue
	contentErr error
	onComplete func(Result)

	state          GameState
	score          int
	clueIndex      int
	wordsCompleted int
	collected      string
	snake          []Cell
	tiles          []Tile
	committed      Direction
	pending        Direction
	elapsed        int
	hintVisible    bool
	speed          time.Duration
	moves          uint64

	sched         schedule
	completeFired bool
	disposed      bool
	events        []Event
}

// New creates an engine in Idle, or in NoContent when clues is unusable.
func New(cfg Config, clues []Clue, seed int64) *Engine {
	cfg = cfg.withDefaults()
	grid := NewGrid(cfg.GridSize, cfg.FreeCellAttempts)

	e := &Engine{
		cfg:  cfg,
		grid: grid,
		spawner: LetterSpawner{
			Grid:       grid,
			Policy:     cfg.Spawn,
			Difficulty: cfg.Difficulty,
		},
		seed: seed,
	}
	e.clues, e.contentErr = ValidateClues(clues)
	e.reset()
	e.events = nil
	return e
}

// OnComplete registers fn to run once per round, when the last word's
// celebration ends. fn runs inside Advance and must not call back into
// the engine.
func (e *Engine) OnComplete(fn func(Result)) {
	e.onComplete = fn
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// State returns the current phase.
func (e *Engine) State() GameState {
	return e.state
}

// Handle applies one player intent and returns the events it caused.
func (e *Engine) Handle(in Input) []Event {
	if e.disposed {
		return nil
	}

	switch in := in.(type) {
	case Start:
		e.start()
	case Tap:
		e.start()
	case Swipe:
		if dir, ok := ClassifyGesture(in.Gesture, e.cfg.Swipe); ok {
			e.turn(dir)
		} else {
			e.start()
		}
	case Move:
		e.turn(in.Dir)
	case TogglePause:
		e.togglePause()
	case Backspace:
		e.backspace()
	case Reset:
		e.reset()
	}
	return e.drain()
}

// Advance moves the virtual clock forward by dt, firing every timer that
// falls due in time order. Time only passes in Countdown, Playing and
// WordComplete.
func (e *Engine) Advance(dt time.Duration) []Event {
	if e.disposed {
		return nil
	}

	for dt > 0 && e.clockRunning() {
		id, wait, ok := e.sched.next()
		if !ok || wait > dt {
			e.sched.advance(dt)
			break
		}
		e.sched.advance(wait)
		dt -= wait
		e.sched.rearm(id)
		e.fire(id)
	}
	return e.drain()
}

// Dispose stops all timers. Later calls to Handle and Advance do nothing.
// Calling it more than once is safe.
func (e *Engine) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.sched.stopAll()
	e.events = nil
}

// Disposed reports whether Dispose has been called.
func (e *Engine) Disposed() bool {
	return e.disposed
}

func (e *Engine) clockRunning() bool {
	switch e.state.(type) {
	case Countdown, Playing, WordComplete:
		return true
	}
	return false
}

func (e *Engine) fire(id timerID) {
	switch id {
	case timerCountdown:
		e.countdownTick()
	case timerMove:
		e.tick()
	case timerSpawn:
		e.spawn()
	case timerSecond:
		e.secondTick()
	case timerCelebration:
		e.finishCelebration()
	}
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

func (e *Engine) drain() []Event {
	out := e.events
	e.events = nil
	return out
}

func (e *Engine) currentClue() (Clue, bool) {
	if e.clueIndex < 0 || e.clueIndex >= len(e.clues) {
		return Clue{}, false
	}
	return e.clues[e.clueIndex], true
}

func (e *Engine) start() {
	if _, ok := e.state.(Idle); !ok {
		return
	}
	if e.cfg.Countdown <= 0 {
		e.beginWord()
		e.emit(EventRoundStarted)
		return
	}
	e.state = Countdown{Remaining: e.cfg.Countdown}
	e.sched.stopAll()
	e.sched.start(timerCountdown, time.Second)
	e.emit(EventCountdownTick)
}

func (e *Engine) countdownTick() {
	cd, ok := e.state.(Countdown)
	if !ok {
		e.sched.stop(timerCountdown)
		return
	}
	if cd.Remaining-1 <= 0 {
		e.beginWord()
		e.emit(EventRoundStarted)
		return
	}
	e.state = Countdown{Remaining: cd.Remaining - 1}
	e.emit(EventCountdownTick)
}

func (e *Engine) turn(dir Direction) {
	if _, ok := e.state.(Playing); !ok {
		return
	}
	if AcceptDirection(dir, e.committed) {
		e.pending = dir
	}
}

func (e *Engine) togglePause() {
	switch e.state.(type) {
	case Playing:
		e.state = Paused{}
		e.emit(EventPaused)
	case Paused:
		e.state = Playing{}
		e.emit(EventResumed)
	}
}

func (e *Engine) backspace() {
	if _, ok := e.state.(Playing); !ok {
		return
	}
	clue, _ := e.currentClue()
	before := e.collected
	e.collected = TrimLastLetter(e.collected)
	if e.collected == before {
		return
	}
	e.emit(EventLetterErased)
	if IsComplete(clue.Target, e.collected) {
		e.completeWord()
	}
}

// beginWord resets the board for the current clue and starts the playing timers.
func (e *Engine) beginWord() {
	e.resetBoard()
	e.state = Playing{}
	e.committed = Right
	e.pending = None
	e.speed = e.cfg.SpeedFor(e.wordsCompleted)

	e.sched.stopAll()
	e.sched.start(timerMove, e.speed)
	e.sched.start(timerSpawn, e.cfg.SpawnInterval)
	e.sched.start(timerSecond, time.Second)

	for range e.cfg.InitialTiles {
		e.spawn()
	}
}

func (e *Engine) resetBoard() {
	e.snake = []Cell{e.grid.Center()}
	e.tiles = nil
	e.collected = ""
	e.elapsed = 0
	e.hintVisible = false
}

// tick is one movement step.
func (e *Engine) tick() {
	if _, ok := e.state.(Playing); !ok {
		return
	}
	if !e.pending.IsNone() {
		e.committed = e.pending
		e.pending = None
	}

	clue, _ := e.currentClue()
	out := Step(e.grid, Board{Snake: e.snake, Tiles: e.tiles}, e.committed, WordContext{
		Target:     clue.Target,
		Collected:  e.collected,
		Difficulty: e.cfg.Difficulty,
		Scoring:    e.cfg.Scoring,
	})
	if out.Collision != CollisionNone {
		e.gameOver(out.Collision)
		return
	}

	e.moves++
	e.snake = out.Board.Snake
	e.tiles = out.Board.Tiles
	if out.Hit == nil {
		return
	}

	v := out.Verdict
	e.collected = v.Collected
	e.score = max(0, e.score+v.ScoreDelta)

	switch v.Outcome {
	case OutcomeAccepted:
		e.emit(EventLetterAccepted)
	case OutcomeRejected:
		e.emit(EventLetterRejected)
	case OutcomePenalized:
		e.emit(EventLetterPenalized)
	case OutcomeErased:
		e.emit(EventLetterErased)
	}

	if v.Complete {
		e.completeWord()
	}
}

func (e *Engine) spawn() {
	clue, ok := e.currentClue()
	if !ok {
		return
	}
	t, ok := e.spawner.Spawn(e.rng, e.snake, e.tiles, clue.Target, e.collected)
	if !ok {
		return
	}
	e.tiles = append(e.tiles[:len(e.tiles):len(e.tiles)], t)
	e.emit(EventTileSpawned)
}

func (e *Engine) secondTick() {
	e.elapsed++
	if e.hintVisible || e.cfg.HintAfter <= 0 || e.elapsed < e.cfg.HintAfter {
		return
	}
	if clue, ok := e.currentClue(); ok && clue.Hint != "" {
		e.hintVisible = true
		e.emit(EventHintShown)
	}
}

func (e *Engine) completeWord() {
	clue, _ := e.currentClue()
	bonus := e.cfg.Scoring.WordBonus(e.elapsed)
	e.score += bonus
	e.wordsCompleted++

	e.state = WordComplete{
		ClueIndex: e.clueIndex,
		Word:      clue.Target,
		Fact:      clue.Fact,
		Bonus:     bonus,
	}
	e.sched.stopAll()
	e.sched.start(timerCelebration, e.cfg.Celebration)
	e.emit(EventWordComplete)
}

func (e *Engine) finishCelebration() {
	e.sched.stop(timerCelebration)
	e.resetBoard()

	if e.clueIndex+1 >= len(e.clues) {
		res := e.result()
		e.state = AllWordsComplete{Result: res}
		e.emit(EventAllWordsComplete)
		if !e.completeFired {
			e.completeFired = true
			if e.onComplete != nil {
				e.onComplete(res)
			}
		}
		return
	}

	e.clueIndex++
	e.emit(EventNextWord)
	e.beginWord()
}

func (e *Engine) gameOver(c Collision) {
	e.sched.stopAll()
	e.state = GameOver{Cause: c}
	e.emit(EventGameOver)
}

// reset returns to the initial state with a fresh schedule and random source.
func (e *Engine) reset() {
	e.sched = schedule{}
	e.rng = rand.New(rand.NewSource(e.seed))

	e.score = 0
	e.clueIndex = 0
	e.wordsCompleted = 0
	e.completeFired = false
	e.moves = 0
	e.committed = None
	e.pending = None
	e.speed = e.cfg.SpeedFor(0)
	e.resetBoard()

	if e.contentErr != nil {
		e.state = NoContent{Err: e.contentErr}
	} else {
		e.state = Idle{}
	}
	e.emit(EventReset)
}

func (e *Engine) result() Result {
	return Result{
		Score:          e.score,
		WordsCompleted: e.wordsCompleted,
		TotalWords:     len(e.clues),
	}
}

// Result returns the score and progress so far.
func (e *Engine) Result() Result {
	return e.result()
}
