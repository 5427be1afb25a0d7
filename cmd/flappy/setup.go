package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/session"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger builds the logger from the global flags. Full-screen commands log
// to a file by default because they own the terminal.
func newLogger(fullscreen bool) (*log.Logger, io.Closer, error) {
	path := flagLogFile
	if path == "" && fullscreen {
		path = logging.DefaultFile
	}

	var (
		out    io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if path != "" {
		f, err := logging.OpenFile(path)
		if err != nil {
			return nil, nil, err
		}
		out, closer = f, f
	}

	logger, err := logging.New(logging.Options{Level: flagLogLevel, Output: out, Prefix: "flappy"})
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return logger, closer, nil
}

// loadConfig loads the game config following the search order.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	logger.Debug("config loaded", "source", src)
	return cfg, nil
}

// runtimeConfig resolves the seed and terminal size for a play command.
func runtimeConfig(width, height int) core.RuntimeConfig {
	rt := core.DefaultConfig()
	if width > 0 && height > 0 {
		rt.ScreenW, rt.ScreenH = width, height
	}
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	return rt
}

// newSession creates a session that records runs to the database. When the
// database cannot be opened the game is still playable without recording.
func newSession(cfg config.Config, seed int64, logger *log.Logger) (*session.Session, io.Closer, error) {
	opts := []session.Option{session.WithLogger(logger)}

	var closer io.Closer = nopCloser{}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("runs will not be recorded", "error", err)
	} else {
		opts = append(opts, session.WithSaver(store))
		closer = store
	}

	s, err := session.New(cfg, seed, opts...)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	logger.Info("session started", "seed", seed, "db", flagDBPath)
	return s, closer, nil
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
