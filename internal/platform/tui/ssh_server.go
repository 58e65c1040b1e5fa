package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/wordsnake/internal/audio"
	"github.com/vovakirdan/wordsnake/internal/clues"
	"github.com/vovakirdan/wordsnake/internal/config"
	"github.com/vovakirdan/wordsnake/internal/core"
	"github.com/vovakirdan/wordsnake/internal/games/wordsnake"
	"github.com/vovakirdan/wordsnake/internal/registry"
	"github.com/vovakirdan/wordsnake/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.wordsnake/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// PackDir holds user clue packs served next to the built-in ones.
	PackDir string

	// Game is the Word Snake configuration every session plays with.
	Game config.WordSnakeConfig

	// TickRate is the frame rate of each session.
	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.wordsnake/scores.db",
		IdleTimeout: 30 * time.Minute,
		Game:        config.DefaultWordSnakeConfig(),
		TickRate:    60,
	}
}

// SSHServer serves Word Snake over SSH with Wish. Every session gets its
// own menu and game; scores go to one shared store.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	packs  []clues.Pack
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "wordsnake-ssh",
		})
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	packs, skipped := clues.LoadAll(cfg.PackDir)
	for _, err := range skipped {
		logger.Warn("skipping clue pack", "error", err)
	}
	if len(packs) == 0 {
		return nil, errors.New("no clue packs available")
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		packs:  packs,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		hostKeyPath = "~/.wordsnake/host_key"
	}
	hostKeyPath, err = storage.ExpandHome(hostKeyPath)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot resolve host key path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("could not close scores database", "error", err)
	}
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(SessionOptions{
		Packs:  s.packs,
		Store:  s.store,
		Game:   s.config.Game,
		Logger: s.logger.With("user", sshSession.User()),
	}, cfg)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "packs", len(s.packs))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		s.closeStore()
		return err
	}
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

type sessionStage int

const (
	sessionMenu sessionStage = iota
	sessionGame
	sessionScores
)

// SessionOptions are shared by every screen of a session.
type SessionOptions struct {
	Packs  []clues.Pack
	Store  *storage.Store
	Game   config.WordSnakeConfig
	Cues   audio.Player // nil means silent
	Logger *log.Logger
}

// SessionModel manages the full session flow: menu -> game or scoreboard
// -> menu. Each screen ends itself with tea.Quit; the session swallows
// that and switches screens instead.
type SessionModel struct {
	opts       SessionOptions
	config     core.RuntimeConfig
	stage      sessionStage
	menu       MenuModel
	gameModel  *GameModel
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions, cfg core.RuntimeConfig) SessionModel {
	if opts.Cues == nil {
		opts.Cues = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return SessionModel{
		opts:   opts,
		config: cfg,
		menu:   NewMenuModel(opts.Packs, opts.Store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.stage {
	case sessionGame:
		return m.updateGame(msg)
	case sessionScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.stage = sessionScores
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		return m.startGame(*m.menu.Selected())
	}

	return m, cmd
}

func (m SessionModel) startGame(sel Selection) (tea.Model, tea.Cmd) {
	game, err := registry.Create(wordsnake.IDFor(sel.Difficulty), registry.Setup{
		Pack:   sel.Pack,
		Config: m.opts.Game,
		Cues:   m.opts.Cues,
	})
	if err != nil {
		m.opts.Logger.Error("cannot start game", "error", err)
		m.menu = NewMenuModel(m.opts.Packs, m.opts.Store, m.config)
		return m, nil
	}

	m.config.Seed = time.Now().UnixNano()
	gameModel := NewGameModel(game, m.config, GameOptions{
		Store:  m.opts.Store,
		Logger: m.opts.Logger,
		Input:  m.opts.Game.Input,
	})
	m.gameModel = &gameModel
	m.stage = sessionGame
	return m, m.gameModel.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		return m.backToMenu()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

// backToMenu rebuilds the menu so best results include the last round.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.stage = sessionMenu
	m.menu = NewMenuModel(m.opts.Packs, m.opts.Store, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.stage {
	case sessionGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case sessionScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}
