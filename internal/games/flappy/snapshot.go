package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// State is the game state machine's current state.
type State string

const (
	StatePlaying  State = "playing"
	StateGameOver State = "game_over"
)

// SpriteKind identifies what a sprite depicts.
type SpriteKind int

const (
	SpriteBird SpriteKind = iota
	SpritePipeTop
	SpritePipeBottom
)

// Sprite is a drawable element: a kind and its box in board pixels.
type Sprite struct {
	Kind SpriteKind
	Box  core.Box
}

// Snapshot captures the complete visible game state.
// It shares no memory with the engine.
type Snapshot struct {
	Tick     uint64
	State    State
	Score    int     // Points truncated for display
	Points   float64 // Exact accumulated points
	Bird     core.Box
	Velocity int
	Pipes    []PipePair // Insertion order, oldest first
}

// Over reports whether the snapshot was taken after a game over.
func (s Snapshot) Over() bool {
	return s.State == StateGameOver
}

// Obstacles returns every pipe box in order: top then bottom of each pair.
func (s Snapshot) Obstacles() []core.Box {
	boxes := make([]core.Box, 0, len(s.Pipes)*2)
	for _, p := range s.Pipes {
		boxes = append(boxes, p.Top, p.Bottom)
	}
	return boxes
}

// Sprites returns pipes first and the bird last, so painting in order
// draws the bird on top.
func (s Snapshot) Sprites() []Sprite {
	sprites := make([]Sprite, 0, len(s.Pipes)*2+1)
	for _, p := range s.Pipes {
		sprites = append(sprites,
			Sprite{Kind: SpritePipeTop, Box: p.Top},
			Sprite{Kind: SpritePipeBottom, Box: p.Bottom},
		)
	}
	return append(sprites, Sprite{Kind: SpriteBird, Box: s.Bird})
}
