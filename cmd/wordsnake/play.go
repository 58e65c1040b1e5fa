package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsnake/internal/audio"
	"github.com/vovakirdan/wordsnake/internal/clues"
	"github.com/vovakirdan/wordsnake/internal/config"
	"github.com/vovakirdan/wordsnake/internal/core"
	"github.com/vovakirdan/wordsnake/internal/games/wordsnake"
	"github.com/vovakirdan/wordsnake/internal/platform/tui"
	"github.com/vovakirdan/wordsnake/internal/registry"
	"github.com/vovakirdan/wordsnake/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [pack]",
	Short: "Play a clue pack",
	Long: `Start a lesson with the given clue pack. Without a pack the first
available one is played.

Controls:
  Arrows/WASD  - Steer
  Mouse drag   - Swipe to steer, click to start
  Space        - Start
  Backspace    - Erase the last letter
  P/Esc        - Pause
  R            - Restart
  Esc/B        - Back (when paused or over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Only the next letter spawns; wrong letters bounce off
  hard   - Decoys and erasers; misses cost points

Examples:
  wordsnake play
  wordsnake play fruits
  wordsnake play animals --difficulty hard
  wordsnake play ocean --packs ./packs --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, hard")
}

func runPlay(_ *cobra.Command, args []string) error {
	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}

	pack, err := choosePack(args)
	if err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	cues := openAudio()
	defer cues.Close()

	restore := logToFile()
	defer restore()

	_, err = playLesson(pack, difficulty, runtimeConfig(), store, cues)
	return err
}

// choosePack resolves the pack named on the command line, or the first
// available pack.
func choosePack(args []string) (clues.Pack, error) {
	if len(args) == 1 {
		return clues.LoadByID(flagPackDir, args[0])
	}
	packs := loadPacks()
	if len(packs) == 0 {
		return clues.Pack{}, errors.New("no clue packs available")
	}
	return packs[0], nil
}

// playLesson runs one game in the terminal and reports whether the player
// asked to go back to the menu.
func playLesson(pack clues.Pack, difficulty config.DifficultyPreset, cfg core.RuntimeConfig, store *storage.Store, cues audio.Player) (bool, error) {
	game, err := registry.Create(wordsnake.IDFor(difficulty), registry.Setup{
		Pack:   pack,
		Config: settings,
		Cues:   cues,
	})
	if err != nil {
		return false, err
	}

	logger.Info("lesson started", "pack", pack.ID, "difficulty", difficulty, "seed", cfg.Seed)
	return tui.Run(game, cfg, tui.GameOptions{
		Store:  store,
		Logger: logger,
		Input:  settings.Input,
	})
}
