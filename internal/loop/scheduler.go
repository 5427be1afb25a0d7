// Package loop converts wall-clock time into the simulation's two fixed-rate
// timers: the tick timer and the pipe spawn timer.
package loop

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// MaxCatchUp bounds how many ticks a single Advance may run. Backlog beyond
// that is dropped so a stalled driver does not fast-forward the game.
const MaxCatchUp = 5

// Target is what the scheduler drives. *flappy.Engine satisfies it.
type Target interface {
	Tick()
	SpawnPipePair()
	Over() bool
}

// Result reports what one Advance call did.
type Result struct {
	Ticks   int
	Spawns  int
	Stopped bool // The target reached game over during this call
}

// Scheduler accumulates elapsed time and fires ticks and spawns at their
// configured cadence. Spawns are counted in ticks so both timers share one
// clock; a spawn that falls due on the same tick runs before it.
type Scheduler struct {
	tick       time.Duration
	spawnEvery int
	acc        time.Duration // Elapsed time not yet simulated
	ticks      int           // Ticks since start or last resume
	running    bool
}

// New creates a running scheduler.
func New(tick time.Duration, spawnEveryTicks int) *Scheduler {
	if spawnEveryTicks < 1 {
		spawnEveryTicks = 1
	}
	return &Scheduler{
		tick:       tick,
		spawnEvery: spawnEveryTicks,
		running:    true,
	}
}

// FromConfig creates a scheduler for the configured tick rate and spawn interval.
func FromConfig(cfg config.Config) *Scheduler {
	return New(cfg.TickInterval(), cfg.SpawnEveryTicks())
}

// Interval returns the tick interval.
func (s *Scheduler) Interval() time.Duration {
	return s.tick
}

// Running reports whether the timers are active.
func (s *Scheduler) Running() bool {
	return s.running
}

// Ticks returns the ticks fired since start or last resume.
func (s *Scheduler) Ticks() int {
	return s.ticks
}

// Stop halts both timers. Elapsed time passed to Advance is discarded until Resume.
func (s *Scheduler) Stop() {
	s.running = false
	s.acc = 0
}

// Resume restarts both timers from zero, as after a restart.
func (s *Scheduler) Resume() {
	s.running = true
	s.acc = 0
	s.ticks = 0
}

// Advance feeds elapsed wall time and fires every tick and spawn that became
// due. The scheduler stops itself once the target reports game over.
func (s *Scheduler) Advance(elapsed time.Duration, t Target) Result {
	var res Result
	if !s.running || s.tick <= 0 {
		return res
	}
	if t.Over() {
		s.Stop()
		res.Stopped = true
		return res
	}

	s.acc += elapsed
	for s.acc >= s.tick && res.Ticks < MaxCatchUp {
		s.acc -= s.tick
		s.ticks++

		if s.ticks%s.spawnEvery == 0 {
			t.SpawnPipePair()
			res.Spawns++
		}
		t.Tick()
		res.Ticks++

		if t.Over() {
			s.Stop()
			res.Stopped = true
			return res
		}
	}

	if s.acc >= s.tick {
		s.acc %= s.tick
	}
	return res
}
