// wordsnake is a spelling game for the terminal: steer a snake over letter
// tiles to spell the answer to each clue.
//
// Usage:
//
//	wordsnake menu               - Pick a clue pack and difficulty interactively
//	wordsnake play [pack]        - Play a pack directly
//	wordsnake packs              - List available clue packs
//	wordsnake packs validate f   - Check pack files for errors
//	wordsnake scores [game]      - Show high scores and lesson results
//	wordsnake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: from config)
//	--config <path>   - Use a specific config YAML
//	--packs <dir>     - Directory with user clue packs
//	--log-level <lvl> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wordsnake/internal/audio"
	"github.com/vovakirdan/wordsnake/internal/clues"
	"github.com/vovakirdan/wordsnake/internal/config"
	"github.com/vovakirdan/wordsnake/internal/core"
	"github.com/vovakirdan/wordsnake/internal/storage"

	// Import the game to register it
	_ "github.com/vovakirdan/wordsnake/internal/games/wordsnake"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPackDir  string
	flagLogLevel string
)

var (
	logger   = log.NewWithOptions(os.Stderr, log.Options{Prefix: "wordsnake"})
	settings config.WordSnakeConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordsnake",
	Short: "Word Snake - spell words by steering a snake",
	Long: `Word Snake is a spelling game for the terminal. Each clue hides a
word; steer the snake over the letter tiles to spell it.

Available commands:
  menu     - Interactive pack and difficulty picker
  play     - Play a clue pack directly
  packs    - List or validate clue packs
  scores   - View high scores and lesson results
  serve    - Start SSH server for remote play

Examples:
  wordsnake menu
  wordsnake play animals --difficulty hard
  wordsnake packs validate ./my-pack.yaml
  wordsnake serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPackDir, "packs", "", "Directory with user clue packs (default ~/.wordsnake/packs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(packsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup runs before every command: it reads .env, configures the logger
// and resolves the game configuration.
func setup(cmd *cobra.Command, _ []string) error {
	// A missing .env file is normal
	_ = godotenv.Load()

	levelName := flagLogLevel
	if !cmd.Flags().Changed("log-level") {
		levelName = config.LogLevel(flagLogLevel)
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}
	logger.SetLevel(level)

	settings, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(&settings); err != nil {
		return err
	}
	if flagDBPath != "" {
		settings.Storage.DBPath = flagDBPath
	}
	if flagPackDir == "" {
		flagPackDir = clues.UserDir()
	}

	logger.Debug("configuration loaded",
		"config", flagConfig,
		"db", settings.Storage.DBPath,
		"packs", flagPackDir,
		"audio", settings.Audio.Enabled,
	)
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// openStore opens the scores database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(settings.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close scores database", "error", err)
	}
}

// openAudio opens the speaker. Play continues silently without it.
func openAudio() audio.Player {
	player, err := audio.New(audio.Settings{
		Enabled:      settings.Audio.Enabled,
		MasterVolume: settings.Audio.MasterVolume,
		SampleRate:   settings.Audio.SampleRate,
	})
	if err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	return player
}

// loadPacks returns every available pack, logging files that were skipped.
func loadPacks() []clues.Pack {
	packs, skipped := clues.LoadAll(flagPackDir)
	for _, err := range skipped {
		logger.Warn("skipping clue pack", "error", err)
	}
	return packs
}

// logToFile sends log output to ~/.wordsnake/wordsnake.log while the
// terminal belongs to the UI. The returned func restores stderr.
func logToFile() func() {
	home, err := os.UserHomeDir()
	if err != nil {
		return func() {}
	}
	path := filepath.Join(home, ".wordsnake", "wordsnake.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return func() {}
	}

	logger.SetOutput(f)
	logger.SetReportTimestamp(true)
	return func() {
		logger.SetOutput(os.Stderr)
		logger.SetReportTimestamp(false)
		f.Close()
	}
}
