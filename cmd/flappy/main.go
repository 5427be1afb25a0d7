// flappy is a Flappy Bird clone for the terminal and the desktop.
//
// Usage:
//
//	flappy play           - Play in the terminal
//	flappy window         - Play in a desktop window
//	flappy runs           - List recorded runs
//	flappy runs rm <id>   - Delete a recorded run
//	flappy replay <id>    - Re-simulate a recorded run and verify its score
//	flappy config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - RNG seed for reproducible gameplay
//	--db <path>         - Run database path (default: ~/.flappy/runs.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Log destination
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - fly through the pipes in your terminal",
	Long: `Flappy is a Flappy Bird clone. Every run is recorded and can be
replayed deterministically from its seed and inputs.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  runs     - List or delete recorded runs
  replay   - Verify a recorded run
  config   - Print the effective configuration

Examples:
  flappy play
  flappy play --seed 42
  flappy window --scale 1.5
  flappy runs
  flappy replay 3`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default: stderr, or ~/.flappy/flappy.log while playing)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}
