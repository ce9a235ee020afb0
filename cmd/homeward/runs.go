package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/homeward/internal/registry"
	"github.com/vovakirdan/homeward/internal/storage"
	"github.com/vovakirdan/homeward/internal/worlds/journey"
)

var (
	flagRunsBest  bool
	flagRunsLimit int
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [world]",
	Short: "Show recorded runs for a world",
	Long: `Display the most recent runs, or the fastest completed journeys
with --best, followed by a summary.

Examples:
  homeward runs
  homeward runs --best
  homeward runs --limit 50
  homeward runs --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsBest, "best", false, "Show the fastest completed runs")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all runs of the world")
}

func runRuns(_ *cobra.Command, args []string) error {
	worldID := journey.ID
	if len(args) == 1 {
		worldID = args[0]
	}
	if !registry.Exists(worldID) {
		return fmt.Errorf("unknown world %q, run 'homeward list' to see available worlds", worldID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open run history: %w", err)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(worldID); err != nil {
			return err
		}
		fmt.Printf("Cleared runs for %s.\n", worldID)
		return nil
	}

	var runs []storage.Run
	title := "Recent runs"
	if flagRunsBest {
		title = "Fastest journeys"
		runs, err = store.BestRuns(worldID, flagRunsLimit)
	} else {
		runs, err = store.RecentRuns(worldID, flagRunsLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieve runs: %w", err)
	}

	fmt.Printf("%s - %s\n", title, worldID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'homeward play %s' to record the first one!\n", worldID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %s\n", "#", "Outcome", "Steps", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-8s  %s\n", "-", "-------", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-10s  %-5d  %-8s  %s\n",
			i+1, r.Outcome, r.Steps, fmt.Sprintf("%.1fs", r.ElapsedSecs), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(worldID)
	if err != nil {
		return fmt.Errorf("retrieve stats: %w", err)
	}
	fmt.Println()
	fmt.Printf("%d runs: %d home, %d too late, %d caught\n", stats.Runs, stats.Completed, stats.Timeouts, stats.Caught)
	if stats.Completed > 0 {
		fmt.Printf("Best: %.1fs\n", stats.Best)
	}
	return nil
}
