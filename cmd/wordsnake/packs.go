package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsnake/internal/clues"
)

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List available clue packs",
	Long: `Shows the built-in clue packs and the packs found in the user pack
directory (~/.wordsnake/packs, or --packs). A user pack with the same ID
as a built-in one replaces it.

Examples:
  wordsnake packs
  wordsnake packs --packs ./packs
  wordsnake packs validate ./packs/space.yaml`,
	Args: cobra.NoArgs,
	Run:  runPacks,
}

var packsValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check clue pack files for errors",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPacksValidate,
}

func init() {
	packsCmd.AddCommand(packsValidateCmd)
}

func runPacks(_ *cobra.Command, _ []string) {
	packs := loadPacks()

	if len(packs) == 0 {
		fmt.Println("No clue packs available.")
		return
	}

	fmt.Println("Available clue packs:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxNameLen := 4
	for _, p := range packs {
		maxIDLen = max(maxIDLen, len(p.ID))
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	fmt.Printf("  %-*s  %-*s  %5s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Words", "Source")
	fmt.Printf("  %-*s  %-*s  %5s  %s\n", maxIDLen, "--", maxNameLen, "----", "-----", "------")

	for _, p := range packs {
		fmt.Printf("  %-*s  %-*s  %5d  %s\n", maxIDLen, p.ID, maxNameLen, p.Name, len(p.Clues), p.Source)
	}

	fmt.Println()
	fmt.Println("Run 'wordsnake play <id>' to play a pack.")
}

func runPacksValidate(_ *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		p, err := clues.LoadFile(path)
		if err != nil {
			failed++
			fmt.Printf("FAIL  %s: %v\n", path, err)
			continue
		}
		fmt.Printf("ok    %s: %s (%d words)\n", path, p.ID, len(p.Clues))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d packs invalid", failed, len(args))
	}
	return nil
}
