package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// PipePair is one obstacle: a top and a bottom pipe sharing an x coordinate,
// separated by a vertical opening the bird must fly through.
type PipePair struct {
	Top    core.Box
	Bottom core.Box
	Passed bool // Set once when the bird clears the pair (for scoring)
}

// Advance moves both pipes horizontally by dx.
func (p *PipePair) Advance(dx int) {
	p.Top.X += dx
	p.Bottom.X += dx
}

// X returns the shared left edge.
func (p PipePair) X() int {
	return p.Top.X
}

// Right returns the shared right edge (exclusive).
func (p PipePair) Right() int {
	return p.Top.Right()
}

// Gap returns the height of the opening between the two pipes.
func (p PipePair) Gap() int {
	return p.Bottom.Y - p.Top.Bottom()
}

// MarkPassed sets the passed flag. It reports whether the flag changed.
func (p *PipePair) MarkPassed() bool {
	if p.Passed {
		return false
	}
	p.Passed = true
	return true
}

// Offscreen reports whether the pair has fully left the board on the left.
func (p PipePair) Offscreen() bool {
	return p.Right() < 0
}

// Collides reports whether the box hits either pipe.
func (p PipePair) Collides(b core.Box) bool {
	return b.Intersects(p.Top) || b.Intersects(p.Bottom)
}

// RandSource is the randomness the spawner needs. *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// Spawner creates pipe pairs at the right edge of the board with a
// randomized vertical position of the opening.
type Spawner struct {
	rng     RandSource
	boardW  int
	width   int
	height  int
	opening int
}

// NewSpawner creates a spawner for the configured board and pipe geometry.
func NewSpawner(cfg config.Config, rng RandSource) *Spawner {
	return &Spawner{
		rng:     rng,
		boardW:  cfg.Board.Width,
		width:   cfg.Pipes.Width,
		height:  cfg.Pipes.Height,
		opening: cfg.Pipes.Opening,
	}
}

// SetRand replaces the random source.
func (s *Spawner) SetRand(rng RandSource) {
	s.rng = rng
}

// Spawn returns a new pair at x = board width. The top pipe's y is
// -height/4 minus a uniform value in [0, height/2), so the top pipe always
// hangs off the top of the board; the bottom pipe starts exactly one opening
// below the top pipe's bottom edge.
func (s *Spawner) Spawn() PipePair {
	y := -s.height/4 - s.rng.Intn(s.height/2)
	return PipePair{
		Top:    core.NewBox(s.boardW, y, s.width, s.height),
		Bottom: core.NewBox(s.boardW, y+s.height+s.opening, s.width, s.height),
	}
}
