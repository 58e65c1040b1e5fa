package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsnake/internal/registry"
	"github.com/vovakirdan/wordsnake/internal/storage"
)

var (
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and lesson results",
	Long: `Without arguments, shows a summary per game and the best result for
every clue pack. With a game ID, shows its top 10 scores.

Examples:
  wordsnake scores
  wordsnake scores wordsnake_hard
  wordsnake scores --recent
  wordsnake scores wordsnake --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent lessons")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the scores of the game (all games when none is given)")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown game %q (run 'wordsnake scores' to see all)", gameID)
		}
	}

	store, err := storage.Open(settings.Storage.DBPath)
	if err != nil {
		return err
	}
	defer closeStore(store)

	switch {
	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "game", gameID)
		return nil
	case flagScoresRecent:
		return printRecentLessons(store)
	case gameID != "":
		return printTopScores(store, gameID)
	default:
		return printSummary(store)
	}
}

func printTopScores(store *storage.Store, gameID string) error {
	info, _ := registry.Info(gameID)

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'wordsnake menu' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.HighScore(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d\n", best)
	return nil
}

func printSummary(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Println("Games")
	fmt.Println()
	fmt.Printf("  %-16s  %6s  %6s  %8s  %s\n", "Game", "Rounds", "Best", "Average", "Last played")
	for _, g := range registry.List() {
		s, ok := stats[g.ID]
		if !ok {
			fmt.Printf("  %-16s  %6d  %6s  %8s  %s\n", g.ID, 0, "-", "-", "-")
			continue
		}
		fmt.Printf("  %-16s  %6d  %6d  %8.1f  %s\n",
			g.ID, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}

	best, err := store.BestPerPack()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Best lesson per pack")
	fmt.Println()
	if len(best) == 0 {
		fmt.Println("  No lessons finished yet.")
		return nil
	}
	printLessons(best)
	return nil
}

func printRecentLessons(store *storage.Store) error {
	lessons, err := store.RecentLessons(20)
	if err != nil {
		return err
	}
	if len(lessons) == 0 {
		return errors.New("no lessons recorded yet")
	}
	printLessons(lessons)
	return nil
}

func printLessons(lessons []storage.LessonResult) {
	fmt.Printf("  %-16s  %-6s  %6s  %7s  %s\n", "Pack", "Level", "Score", "Words", "Date")
	fmt.Printf("  %-16s  %-6s  %6s  %7s  %s\n", "----", "-----", "-----", "-----", "----")
	for _, l := range lessons {
		words := fmt.Sprintf("%d/%d", l.WordsCompleted, l.TotalWords)
		fmt.Printf("  %-16s  %-6s  %6d  %7s  %s\n",
			l.PackID, l.Difficulty, l.Score, words, l.CreatedAt.Format("2006-01-02 15:04"))
	}
}
