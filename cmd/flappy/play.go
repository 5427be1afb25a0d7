package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/W - Flap (restarts after game over)
  P/Esc      - Pause
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, logCloser, err := newLogger(true)
	if err != nil {
		fail("%v", err)
	}
	defer logCloser.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		fail("%v", err)
	}

	// Get terminal size
	width, height := 0, 0
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rt := runtimeConfig(width, height)

	s, closer, err := newSession(cfg, rt.Seed, logger)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	if err := tui.Run(s, tui.Options{Width: rt.ScreenW, Height: rt.ScreenH, Logger: logger}); err != nil {
		logger.Error("terminal UI failed", "error", err)
		fail("%v", err)
	}
}
