package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-capy/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print best values and the top runs",
	Long: `Display the best score, the most hearts collected in one run and
the top 10 runs by score.

Examples:
  capy scores
  capy scores --db ./capy.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	bestScore, err := store.Best(storage.KeyBestScore)
	if err != nil {
		return fmt.Errorf("reading best score: %w", err)
	}
	bestHearts, err := store.Best(storage.KeyBestHearts)
	if err != nil {
		return fmt.Errorf("reading best hearts: %w", err)
	}

	runs, err := store.TopRuns(storage.ByScore, 10)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Flappy Capy - High Scores")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best score:  %d\n", bestScore)
	fmt.Fprintf(out, "Most hearts: %d\n", bestHearts)
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'capy play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-8s  %s\n", "Rank", "Score", "Hearts", "Cause", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "------", "-----", "----")
	for i, run := range runs {
		fmt.Fprintf(out, "  %-4d  %-6d  %-6d  %-8s  %s\n",
			i+1, run.Score, run.Hearts, run.Cause, run.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil && stats.Runs > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Runs: %d  Average score: %.1f  Hearts collected: %d\n",
			stats.Runs, stats.AvgScore, stats.TotalHearts)
	}
	return nil
}
