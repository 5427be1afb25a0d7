package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player avatar: a fixed-size hitbox moved by integer
// vertical velocity under constant gravity.
type Bird struct {
	box      core.Box
	velocity int // Pixels per tick, negative = up
	gravity  int
	impulse  int
}

// NewBird places a bird at the configured start position at rest.
func NewBird(cfg config.Config) Bird {
	x, y := cfg.BirdStart()
	return Bird{
		box:     core.NewBox(x, y, cfg.Bird.Width, cfg.Bird.Height),
		gravity: cfg.Physics.Gravity,
		impulse: cfg.Physics.JumpImpulse,
	}
}

// Advance integrates one tick of motion. The bird never rises above y = 0.
func (b *Bird) Advance() {
	b.velocity += b.gravity
	b.box.Y += b.velocity
	b.box.Y = core.Max(b.box.Y, 0)
}

// Jump replaces the current velocity with the jump impulse.
func (b *Bird) Jump() {
	b.velocity = b.impulse
}

// Box returns the bird's hitbox.
func (b Bird) Box() core.Box {
	return b.box
}

// Velocity returns the current vertical velocity.
func (b Bird) Velocity() int {
	return b.velocity
}
