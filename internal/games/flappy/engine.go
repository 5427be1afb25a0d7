// Package flappy implements the Flappy Bird simulation: a bird falls under
// gravity and must fly through the openings of pipe pairs scrolling in from
// the right.
//
// The engine is a plain synchronous state machine. It owns no timers and does
// no rendering: an external driver calls Tick at the tick rate, SpawnPipePair
// at the spawn interval and Jump on input, and reads Snapshot to draw.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Engine owns the bird, the live pipe pairs, the score and the game state.
// It is not safe for concurrent use; the driver serializes all calls.
type Engine struct {
	cfg     config.Config
	bird    Bird
	pipes   []PipePair
	spawner *Spawner
	points  float64
	state   State
	tick    uint64 // Ticks simulated since start or last restart
}

// NewEngine creates an engine in the Playing state. cfg must be valid.
func NewEngine(cfg config.Config, rng RandSource) *Engine {
	e := &Engine{
		cfg:     cfg,
		spawner: NewSpawner(cfg, rng),
		pipes:   make([]PipePair, 0, 8),
	}
	e.Restart()
	return e
}

// NewSeeded creates an engine whose pipe placement is driven by a math/rand
// source seeded with seed.
func NewSeeded(cfg config.Config, seed int64) *Engine {
	return NewEngine(cfg, rand.New(rand.NewSource(seed)))
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// Restart returns to Playing with the bird at its start position and at rest,
// no pipes and a zero score.
func (e *Engine) Restart() {
	e.bird = NewBird(e.cfg)
	e.pipes = e.pipes[:0]
	e.points = 0
	e.state = StatePlaying
	e.tick = 0
}

// Reseed replaces the spawner's random source. Used by drivers that give
// every run its own seed.
func (e *Engine) Reseed(rng RandSource) {
	e.spawner.SetRand(rng)
}

// Jump gives the bird the jump impulse. After a game over the same input
// first restarts the game, so the new run starts with an impulse.
// Reports whether a restart happened.
func (e *Engine) Jump() bool {
	restarted := false
	if e.state == StateGameOver {
		e.Restart()
		restarted = true
	}
	e.bird.Jump()
	return restarted
}

// SpawnPipePair appends a new pipe pair at the right edge of the board.
// Ignored after a game over: the world stays frozen until restart.
func (e *Engine) SpawnPipePair() {
	if e.state == StateGameOver {
		return
	}
	e.pipes = append(e.pipes, e.spawner.Spawn())
}

// Tick advances the simulation by one fixed step. Does nothing after a game over.
func (e *Engine) Tick() {
	if e.state == StateGameOver {
		return
	}
	e.tick++

	e.bird.Advance()
	birdBox := e.bird.Box()

	// Collisions are latched and applied after every pair has moved.
	over := false
	for i := range e.pipes {
		p := &e.pipes[i]
		p.Advance(e.cfg.Physics.PipeVelocity)

		if !p.Passed && birdBox.X > p.Right() {
			p.MarkPassed()
			e.points += e.cfg.Scoring.PerPair
		}

		if p.Collides(birdBox) {
			over = true
		}
	}

	live := e.pipes[:0]
	for _, p := range e.pipes {
		if !p.Offscreen() {
			live = append(live, p)
		}
	}
	e.pipes = live

	if birdBox.Y > e.cfg.Board.Height {
		over = true
	}

	if over {
		e.state = StateGameOver
	}
}

// State returns the current game state.
func (e *Engine) State() State {
	return e.state
}

// Over reports whether the game has ended.
func (e *Engine) Over() bool {
	return e.state == StateGameOver
}

// Ticks returns the number of ticks simulated in the current run.
func (e *Engine) Ticks() uint64 {
	return e.tick
}

// Snapshot returns a read-only copy of everything a presenter needs.
func (e *Engine) Snapshot() Snapshot {
	pipes := make([]PipePair, len(e.pipes))
	copy(pipes, e.pipes)

	return Snapshot{
		Tick:     e.tick,
		State:    e.state,
		Score:    int(e.points),
		Points:   e.points,
		Bird:     e.bird.Box(),
		Velocity: e.bird.Velocity(),
		Pipes:    pipes,
	}
}
