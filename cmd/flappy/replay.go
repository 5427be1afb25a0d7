package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded run",
	Long: `Re-simulate a recorded run from its seed, config and inputs, and
check that it ends with the recorded score after the recorded number of ticks.

Examples:
  flappy replay 3`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fail("invalid run id %q", args[0])
	}

	logger, logCloser, err := newLogger(false)
	if err != nil {
		fail("%v", err)
	}
	defer logCloser.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening runs database: %v", err)
	}
	defer store.Close()

	run, err := store.LoadRun(id)
	if err != nil {
		fail("%v", err)
	}
	j := run.Journal

	fmt.Printf("Run %d - seed %d, %d events\n", run.ID, j.Seed, len(j.Events))
	fmt.Printf("  recorded: score %d after %d ticks\n", j.Score(), j.Ticks)

	snap, err := replay.Run(j)
	switch {
	case errors.Is(err, replay.ErrDiverged):
		fmt.Printf("  replayed: score %d after %d ticks\n", snap.Score, snap.Tick)
		logger.Warn("replay diverged", "run", run.ID, "error", err)
		fail("run %d does not reproduce", run.ID)
	case err != nil:
		fail("%v", err)
	}

	fmt.Printf("  replayed: score %d after %d ticks\n", snap.Score, snap.Tick)
	fmt.Println("  verified")
}
