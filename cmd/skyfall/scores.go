package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyfall/internal/platform/tui"
	"github.com/vovakirdan/skyfall/internal/registry"
	"github.com/vovakirdan/skyfall/internal/storage"
)

var (
	flagBrowse bool
	flagLimit  int
	flagClear  bool
	flagRunID  string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores for a variant",
	Long: `Display the top high scores for the specified variant.

The ID printed on the game over panel looks up a single run with --run.

Examples:
  skyfall scores hallway
  skyfall scores dodge --limit 20
  skyfall scores classic --browse
  skyfall scores hallway --clear
  skyfall scores --run 0f8fad5b-d9cb-469f-a165-70867728950e`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores for the variant")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by its ID")
}

func runScores(_ *cobra.Command, args []string) error {
	if flagRunID == "" && len(args) == 0 {
		return errors.New("a variant is required unless --run is given")
	}

	var variant string
	if len(args) == 1 {
		variant = args[0]
		if !registry.Exists(variant) {
			return fmt.Errorf("unknown variant %q (run 'skyfall list' to see available variants)", variant)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagRunID != "":
		return showRun(os.Stdout, store, flagRunID)
	case flagClear:
		if err := store.ClearScores(variant); err != nil {
			return err
		}
		logger.Info("cleared scores", "variant", variant)
		return nil
	}

	if flagBrowse {
		width, height := terminalSize()
		return tui.RunScoreboard(store, width, height, variant)
	}

	runs, err := store.TopScores(variant, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", registry.Title(variant))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'skyfall play %s' to set the first high score!\n", variant)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "Time", "Dodged", "Hits", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "----", "------", "----", "----")
	for i, run := range runs {
		fmt.Printf("  %-4d  %-8d  %-8s  %-6d  %-6d  %s\n",
			i+1,
			run.Score,
			fmt.Sprintf("%.1fs", run.Duration),
			run.Dodged,
			run.Hits,
			run.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.Stats(variant)
	if err != nil {
		logger.Warn("could not compute stats", "variant", variant, "error", err)
		return nil
	}
	fmt.Println()
	fmt.Printf("Best: %d   Runs: %d   Average: %.1f   Longest: %.1fs\n",
		stats.HighScore, stats.Runs, stats.AvgScore, stats.Longest)
	return nil
}

// showRun prints one stored run.
func showRun(w io.Writer, store *storage.Store, runID string) error {
	run, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("no run with ID %q", runID)
	}

	fmt.Fprintf(w, "Run %s\n", run.RunID)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  variant:  %s\n", registry.Title(run.Variant))
	fmt.Fprintf(w, "  score:    %d\n", run.Score)
	fmt.Fprintf(w, "  seed:     %d\n", run.Seed)
	fmt.Fprintf(w, "  survived: %.1fs\n", run.Duration)
	fmt.Fprintf(w, "  dodged:   %d\n", run.Dodged)
	fmt.Fprintf(w, "  hits:     %d\n", run.Hits)
	fmt.Fprintf(w, "  played:   %s\n", run.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}
