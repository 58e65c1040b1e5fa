package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsnake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a clue pack and difficulty from a menu",
	Long: `Start Word Snake in interactive menu mode.

Choose a clue pack, then a difficulty. After a lesson you return to the
menu to play again. Tab opens the scoreboard.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc          - Back
  Tab          - Scoreboard
  Q            - Quit

Examples:
  wordsnake menu
  wordsnake menu --fps 30
  wordsnake menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	packs := loadPacks()
	if len(packs) == 0 {
		return errors.New("no clue packs available")
	}

	store := openStore()
	defer closeStore(store)

	cues := openAudio()
	defer cues.Close()

	restore := logToFile()
	defer restore()

	cfg := runtimeConfig()

	// Menu loop
	for {
		result, err := tui.RunMenu(packs, store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		if result.Selection == nil {
			return nil
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		back, err := playLesson(result.Selection.Pack, result.Selection.Difficulty, cfg, store, cues)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}
