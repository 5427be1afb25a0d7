// Package window runs a flappy session in a desktop window with Ebitengine.
package window

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/session"
)

var (
	skyColor    = color.RGBA{R: 112, G: 197, B: 206, A: 255}
	pipeColor   = color.RGBA{R: 83, G: 160, B: 46, A: 255}
	capColor    = color.RGBA{R: 115, G: 191, B: 46, A: 255}
	birdColor   = color.RGBA{R: 245, G: 200, B: 66, A: 255}
	groundColor = color.RGBA{R: 222, G: 216, B: 149, A: 255}
	shadeColor  = color.RGBA{A: 140}
)

const capHeight = 12

// Options configures the window driver.
type Options struct {
	Scale  float64 // Window size relative to the board; 1 when zero
	Title  string
	Logger *log.Logger
}

// Game implements ebiten.Game over a session. Ebitengine calls Update at the
// configured tick rate, so each Update advances exactly one tick interval.
type Game struct {
	session *session.Session
	logger  *log.Logger
}

// NewGame creates the window driver for s.
func NewGame(s *session.Session, logger *log.Logger) *Game {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Game{session: s, logger: logger}
}

func jumpPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Update handles input and advances the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.session.TogglePause()
	}
	if jumpPressed() && g.session.Jump() {
		g.logger.Debug("restarted", "seed", g.session.Seed())
	}

	g.session.Advance(g.session.Interval())
	return nil
}

// Draw paints the current snapshot in board pixels.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	board := g.session.Config().Board

	screen.Fill(skyColor)

	for _, sp := range snap.Sprites() {
		b := sp.Box
		switch sp.Kind {
		case flappy.SpritePipeTop:
			fillRect(screen, b.X, b.Y, b.W, b.H, pipeColor)
			fillRect(screen, b.X-2, b.Bottom()-capHeight, b.W+4, capHeight, capColor)
		case flappy.SpritePipeBottom:
			fillRect(screen, b.X, b.Y, b.W, b.H, pipeColor)
			fillRect(screen, b.X-2, b.Y, b.W+4, capHeight, capColor)
		case flappy.SpriteBird:
			fillRect(screen, b.X, b.Y, b.W, b.H, birdColor)
		}
	}
	fillRect(screen, 0, board.Height-4, board.Width, 4, groundColor)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Score: %d", snap.Score))

	switch {
	case snap.Over():
		g.banner(screen, "GAME OVER", fmt.Sprintf("Score: %d - space to restart", snap.Score))
	case g.session.Paused():
		g.banner(screen, "PAUSED", "P to resume")
	}
}

func (g *Game) banner(screen *ebiten.Image, title, subtitle string) {
	board := g.session.Config().Board
	y := board.Height/2 - 24
	fillRect(screen, 0, y, board.Width, 48, shadeColor)
	ebitenutil.DebugPrintAt(screen, title, (board.Width-len(title)*6)/2, y+8)
	ebitenutil.DebugPrintAt(screen, subtitle, (board.Width-len(subtitle)*6)/2, y+26)
}

func fillRect(dst *ebiten.Image, x, y, w, h int, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// Layout keeps the logical screen at board size and lets Ebitengine scale it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	board := g.session.Config().Board
	return board.Width, board.Height
}

// Run opens the window and blocks until it is closed.
func Run(s *session.Session, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Title == "" {
		opts.Title = "Flappy"
	}

	cfg := s.Config()
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(int(float64(cfg.Board.Width)*opts.Scale), int(float64(cfg.Board.Height)*opts.Scale))
	ebiten.SetTPS(cfg.Timing.TickRate)

	return ebiten.RunGame(NewGame(s, opts.Logger))
}
