package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ninja-runner/internal/games/runner"
	"github.com/vovakirdan/ninja-runner/internal/platform/tui"
	"github.com/vovakirdan/ninja-runner/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

In a terminal the scores open in an interactive table; otherwise they are
printed as plain text.

Examples:
  runner scores
  runner scores --limit 25
  runner scores --clear
  runner scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) {
	game := runner.New(runner.Options{})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(game.ID()); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Printf("Cleared all %s scores.\n", game.Title())
		return
	}

	if width, height, surfErr := tui.Surface(int(os.Stdout.Fd())); surfErr == nil {
		if err := tui.RunScoreboard(store, game.ID(), game.Title(), flagLimit, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	if err := printScores(store, game.ID(), game.Title(), flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

// printScores writes a plain text score table to stdout.
func printScores(store *storage.Store, gameID, title string, limit int) error {
	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return err
	}
	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-14s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-14s  %-8s  %s\n", "----", "------", "-----", "----")
	for _, row := range tui.ScoreRows(scores) {
		fmt.Printf("  %-4s  %-14s  %-8s  %s\n", row[0], row[1], row[2], row[3])
	}

	fmt.Println()
	fmt.Println(tui.StatsLine(stats))
	return nil
}
