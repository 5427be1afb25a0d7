package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window.

Controls:
  Space/Up/W/Click - Flap (restarts after game over)
  P                - Pause
  Esc/Q            - Quit`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the board")
}

func runWindow(cmd *cobra.Command, args []string) {
	logger, logCloser, err := newLogger(true)
	if err != nil {
		fail("%v", err)
	}
	defer logCloser.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		fail("%v", err)
	}
	rt := runtimeConfig(0, 0)

	s, closer, err := newSession(cfg, rt.Seed, logger)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	if err := window.Run(s, window.Options{Scale: flagScale, Logger: logger}); err != nil {
		logger.Error("window failed", "error", err)
		fail("%v", err)
	}
}
