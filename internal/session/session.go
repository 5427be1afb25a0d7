// Package session binds one engine to its clock, its replay recorder and the
// run store. Every driver (terminal, window) plays through a Session.
package session

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/loop"
	"github.com/vovakirdan/tui-flappy/internal/replay"
)

// RunSaver persists the journal of a finished run and returns its ID.
type RunSaver interface {
	SaveRun(j replay.Journal) (int64, error)
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. Sessions log nothing by default.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSaver stores every finished run through saver.
func WithSaver(saver RunSaver) Option {
	return func(s *Session) {
		s.saver = saver
	}
}

// Session is a sequence of runs sharing one configuration. Run n uses the
// seed baseSeed+n so each run can be replayed on its own.
// Not safe for concurrent use.
type Session struct {
	cfg    config.Config
	engine *flappy.Engine
	clock  *loop.Scheduler
	rec    *replay.Recorder
	logger *log.Logger
	saver  RunSaver

	baseSeed  int64
	runs      int
	paused    bool
	finished  bool // Current run's game over has been handled
	lastRunID int64
}

// New starts the first run. cfg is validated.
func New(cfg config.Config, seed int64, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s := &Session{
		cfg:      cfg,
		engine:   flappy.NewSeeded(cfg, seed),
		clock:    loop.FromConfig(cfg),
		rec:      replay.NewRecorder(cfg, seed),
		logger:   logging.Discard(),
		baseSeed: seed,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.logger.Debug("run started", "run", s.runs, "seed", s.Seed())
	return s, nil
}

// Config returns the session configuration.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Seed returns the seed of the current run.
func (s *Session) Seed() int64 {
	return s.baseSeed + int64(s.runs)
}

// Runs returns how many runs were restarted since the session began.
func (s *Session) Runs() int {
	return s.runs
}

// Paused reports whether the clock is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// LastRunID returns the ID of the most recently saved run, or 0.
func (s *Session) LastRunID() int64 {
	return s.lastRunID
}

// Snapshot returns the engine's current snapshot.
func (s *Session) Snapshot() flappy.Snapshot {
	return s.engine.Snapshot()
}

// Interval returns the tick interval drivers should call Advance at.
func (s *Session) Interval() time.Duration {
	return s.clock.Interval()
}

// TogglePause pauses or resumes the clock. A finished run cannot be paused.
// Returns the new paused state.
func (s *Session) TogglePause() bool {
	if s.engine.Over() {
		s.paused = false
		return false
	}
	s.paused = !s.paused
	return s.paused
}

// Jump delivers a jump. After a game over it starts a new run first.
// Ignored while paused. Reports whether a new run was started.
func (s *Session) Jump() bool {
	if s.paused {
		return false
	}

	restarted := false
	if s.engine.Over() {
		s.nextRun()
		restarted = true
	}

	s.rec.Record(s.engine.Ticks(), replay.EventJump)
	s.engine.Jump()
	return restarted
}

func (s *Session) nextRun() {
	s.runs++
	seed := s.Seed()

	s.engine.Reseed(rand.New(rand.NewSource(seed)))
	s.engine.Restart()
	s.rec.Reset(seed)
	s.clock.Resume()
	s.finished = false

	s.logger.Debug("run started", "run", s.runs, "seed", seed)
}

// Advance feeds elapsed wall time to the clock. When the run ends the result
// is logged and the journal saved once.
func (s *Session) Advance(elapsed time.Duration) loop.Result {
	if s.paused {
		return loop.Result{}
	}

	res := s.clock.Advance(elapsed, recordingTarget{s})
	if s.engine.Over() && !s.finished {
		s.finish()
	}
	return res
}

// Journal returns the journal of the current run so far.
func (s *Session) Journal() replay.Journal {
	snap := s.engine.Snapshot()
	return s.rec.Finish(snap.Points, snap.Tick)
}

func (s *Session) finish() {
	s.finished = true
	j := s.Journal()

	s.logger.Info("game over",
		"run", s.runs,
		"seed", j.Seed,
		"score", j.Score(),
		"ticks", j.Ticks,
		"jumps", j.Jumps(),
	)

	if s.saver == nil {
		return
	}
	id, err := s.saver.SaveRun(j)
	if err != nil {
		s.logger.Warn("cannot save run", "error", err)
		return
	}
	s.lastRunID = id
	s.logger.Debug("run saved", "id", id)
}

// recordingTarget journals spawns at the tick they are delivered on.
type recordingTarget struct {
	s *Session
}

func (t recordingTarget) Tick() {
	t.s.engine.Tick()
}

func (t recordingTarget) SpawnPipePair() {
	t.s.rec.Record(t.s.engine.Ticks(), replay.EventSpawn)
	t.s.engine.SpawnPipePair()
}

func (t recordingTarget) Over() bool {
	return t.s.engine.Over()
}
