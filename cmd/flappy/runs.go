package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs",
	Long: `Display the most recent recorded runs.

Examples:
  flappy runs
  flappy runs --limit 50
  flappy runs rm 3`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

var runsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a recorded run",
	Args:  cobra.ExactArgs(1),
	Run:   runRunsRm,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to show")
	runsCmd.AddCommand(runsRmCmd)
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening runs database: %v", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-6s  %-6s  %-8s  %-7s  %-20s  %s\n", "ID", "Score", "Ticks", "Events", "Seed", "Date")
	fmt.Printf("  %-6s  %-6s  %-8s  %-7s  %-20s  %s\n", "--", "-----", "-----", "------", "----", "----")

	for _, r := range runs {
		date := "-"
		if !r.CreatedAt.IsZero() {
			date = r.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-6d  %-6d  %-8d  %-7d  %-20d  %s\n", r.ID, r.Score, r.Ticks, r.Events, r.Seed, date)
	}

	fmt.Println()
	fmt.Println("Run 'flappy replay <id>' to verify a run.")
}

func runRunsRm(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fail("invalid run id %q", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening runs database: %v", err)
	}
	defer store.Close()

	if err := store.DeleteRun(id); err != nil {
		fail("%v", err)
	}
	fmt.Printf("Deleted run %d.\n", id)
}
