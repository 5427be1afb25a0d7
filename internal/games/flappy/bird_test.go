package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestBirdStart(t *testing.T) {
	b := NewBird(config.Default())
	box := b.Box()

	if box.X != 45 || box.Y != 320 || box.W != 34 || box.H != 24 {
		t.Errorf("bird box = %+v, expected (45, 320, 34, 24)", box)
	}
	if b.Velocity() != 0 {
		t.Errorf("velocity = %d, expected 0", b.Velocity())
	}
}

func TestBirdAdvance(t *testing.T) {
	b := NewBird(config.Default())

	b.Advance()
	if b.Velocity() != 1 || b.Box().Y != 321 {
		t.Errorf("after one tick v=%d y=%d, expected 1 and 321", b.Velocity(), b.Box().Y)
	}

	b.Jump()
	b.Advance()
	if b.Velocity() != -8 || b.Box().Y != 313 {
		t.Errorf("after jump v=%d y=%d, expected -8 and 313", b.Velocity(), b.Box().Y)
	}
	if b.Box().X != 45 {
		t.Error("the bird never moves horizontally")
	}
}

func TestBirdClamp(t *testing.T) {
	b := NewBird(config.Default())
	b.box.Y = 3

	b.Jump()
	b.Advance()
	if b.Box().Y != 0 {
		t.Errorf("y = %d, expected clamp to 0", b.Box().Y)
	}
	if b.Velocity() != -8 {
		t.Errorf("clamping keeps velocity, got %d", b.Velocity())
	}
}
