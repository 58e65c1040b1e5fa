package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordsnake/internal/config"
	"github.com/vovakirdan/wordsnake/internal/core"
	"github.com/vovakirdan/wordsnake/internal/registry"
	"github.com/vovakirdan/wordsnake/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameOptions are the collaborators of a GameModel. All are optional.
type GameOptions struct {
	Store  *storage.Store
	Logger *log.Logger
	Input  config.InputConfig
}

// GameModel is the Bubble Tea model that drives one game: it feeds key and
// mouse input into frames, steps the game on every tick and persists
// results when a round ends.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       GameKeyMap
	help       help.Model
	pointer    pointerTracker
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	input := opts.Input
	if input.CellWidth == 0 || input.CellHeight == 0 {
		input = config.DefaultWordSnakeConfig().Input
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		game:       game,
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultGameKeyMap(),
		help:       h,
		pointer:    newPointerTracker(input.CellWidth, input.CellHeight),
	}
	gc := m.gameConfig()
	m.screen = core.NewScreen(gc.ScreenW, gc.ScreenH)
	return m
}

// gameConfig is the runtime config the game sees: the terminal minus the
// help footer line.
func (m GameModel) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(0, cfg.ScreenH-1)
	return cfg
}

// Init starts the round and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if g, ok := m.pointer.handle(msg); ok {
			m.inputFrame.AddGesture(g)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.game.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Back) && (m.gameState.GameOver || m.gameState.Paused):
		m.backToMenu = true
		m.game.Close()
		return m, tea.Quit // The session model swallows this and shows the menu
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize follows the terminal size. Games that cannot resize in
// place are restarted.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	gc := m.gameConfig()
	m.screen.Resize(gc.ScreenW, gc.ScreenH)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(gc.ScreenW, gc.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(gc)
	}
	return m, nil
}

// handleTick runs one frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Completed != nil {
		m.saveLesson(*result.Completed)
	}

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.saveScore()
		m.scoreSaved = true
	case !m.gameState.GameOver:
		m.scoreSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the final score of a round. Best-effort: a failing
// store is logged and play continues.
func (m GameModel) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read high score", "game", m.game.ID(), "error", err)
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		return
	}
	if m.gameState.Score > best {
		m.logger.Info("new high score", "game", m.game.ID(), "score", m.gameState.Score, "previous", best)
	}
}

func (m GameModel) saveLesson(r core.RoundResult) {
	m.logger.Info("lesson complete",
		"pack", r.Pack,
		"difficulty", r.Difficulty,
		"score", r.Score,
		"words", fmt.Sprintf("%d/%d", r.WordsCompleted, r.TotalWords),
	)
	if m.store == nil {
		return
	}
	_, err := m.store.SaveLessonResult(storage.LessonResult{
		PackID:         r.Pack,
		Difficulty:     r.Difficulty,
		Score:          r.Score,
		WordsCompleted: r.WordsCompleted,
		TotalWords:     r.TotalWords,
	})
	if err != nil {
		m.logger.Warn("could not save lesson result", "pack", r.Pack, "error", err)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".wordsnake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the game followed by the key help line.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// GameState returns the state after the last frame.
func (m GameModel) GameState() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a game in the local terminal until the player quits or goes
// back. It reports whether the player asked for the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) (backToMenu bool, err error) {
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	game.Close()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
