package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagPlain bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the best score of a profile",
	Long: `Print the best score stored for --profile.

Examples:
  flappy best
  flappy best --profile alice`,
	Args: cobra.NoArgs,
	RunE: runBest,
}

var resetBestCmd = &cobra.Command{
	Use:   "reset-best",
	Short: "Forget the best score of a profile",
	Long: `Delete the best score stored for --profile.

Examples:
  flappy reset-best --profile alice`,
	Args: cobra.NoArgs,
	RunE: runResetBest,
}

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score of every profile",
	Long: `Show the best score of every profile, highest first.

Examples:
  flappy scores
  flappy scores --plain`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive view")
}

func runBest(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	best, err := store.BestScore(flagProfile)
	if err != nil {
		return fmt.Errorf("error retrieving best score: %w", err)
	}

	fmt.Printf("Best (%s): %d\n", flagProfile, best)
	return nil
}

func runResetBest(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if err := store.ResetBestScore(flagProfile); err != nil {
		return fmt.Errorf("error resetting best score: %w", err)
	}

	logger.Info("best score reset", "profile", flagProfile)
	return nil
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}

	entries, err := store.BestScores()
	store.Close()
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		printScores(entries)
		return nil
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return tui.RunScoreboard(entries, width, height)
}

func printScores(entries []storage.BestScoreEntry) {
	fmt.Println("Best Scores")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to set the first best score!")
		return
	}

	// Calculate column widths
	maxNameLen := len("Profile")
	for _, e := range entries {
		if len(e.Profile) > maxNameLen {
			maxNameLen = len(e.Profile)
		}
	}

	// Print header
	fmt.Printf("  %-4s  %-*s  %-6s  %s\n", "Rank", maxNameLen, "Profile", "Best", "Date")
	fmt.Printf("  %-4s  %-*s  %-6s  %s\n", "----", maxNameLen, "-------", "----", "----")

	for i, e := range entries {
		fmt.Printf("  %-4d  %-*s  %-6d  %s\n", i+1, maxNameLen, e.Profile, e.Score, e.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
