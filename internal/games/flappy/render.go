package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for terminal rendering
const (
	BirdChar      = '●'
	BirdBeakChar  = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	GroundChar    = '═'
)

// Viewport projects board pixels onto a grid of terminal cells.
type Viewport struct {
	boardW, boardH int
	cols, rows     int
}

// NewViewport maps a board onto cols x rows cells.
func NewViewport(board config.Board, cols, rows int) Viewport {
	return Viewport{boardW: board.Width, boardH: board.Height, cols: cols, rows: rows}
}

// Project converts a pixel box to the smallest cell box covering it.
// Any box with nonzero area covers at least one cell.
func (v Viewport) Project(b core.Box) core.Box {
	if v.boardW <= 0 || v.boardH <= 0 {
		return core.Box{}
	}
	x0 := core.FloorDiv(b.X*v.cols, v.boardW)
	y0 := core.FloorDiv(b.Y*v.rows, v.boardH)
	x1 := ceilDiv(b.Right()*v.cols, v.boardW)
	y1 := ceilDiv(b.Bottom()*v.rows, v.boardH)
	return core.NewBox(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

func ceilDiv(a, b int) int {
	return -core.FloorDiv(-a, b)
}

// Render draws the snapshot into dst, scaling the board to fill it.
// The bottom row is the ground line and row 0 carries the score.
func Render(dst *core.Screen, snap Snapshot, board config.Board) {
	dst.Clear()

	rows := dst.Height() - 1
	if rows <= 0 || dst.Width() <= 0 {
		return
	}
	vp := NewViewport(board, dst.Width(), rows)

	for _, sp := range snap.Sprites() {
		cells := vp.Project(sp.Box)
		switch sp.Kind {
		case SpritePipeTop:
			drawPipe(dst, cells, rows, true)
		case SpritePipeBottom:
			drawPipe(dst, cells, rows, false)
		case SpriteBird:
			drawBird(dst, cells, rows)
		}
	}

	dst.DrawHLine(0, rows, dst.Width(), GroundChar, core.ColorGray)
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorWhite)

	if snap.Over() {
		DrawMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Space to restart", snap.Score))
	}
}

// drawPipe fills the visible part of a pipe and caps the end facing the opening.
func drawPipe(dst *core.Screen, cells core.Box, rows int, top bool) {
	visible := core.NewBox(cells.X, core.Max(cells.Y, 0), cells.W, core.Min(cells.Bottom(), rows)-core.Max(cells.Y, 0))
	if visible.H <= 0 {
		return
	}
	dst.FillBox(visible, PipeChar, core.ColorGreen)

	if top {
		dst.DrawHLine(visible.X, visible.Bottom()-1, visible.W, PipeCapTop, core.ColorBrightGreen)
	} else {
		dst.DrawHLine(visible.X, visible.Y, visible.W, PipeCapBottom, core.ColorBrightGreen)
	}
}

func drawBird(dst *core.Screen, cells core.Box, rows int) {
	y := core.Clamp(cells.Y, 0, rows-1)
	for dx := 0; dx < cells.W; dx++ {
		ch := BirdChar
		if dx == cells.W-1 {
			ch = BirdBeakChar
		}
		dst.SetColored(cells.X+dx, y, ch, core.ColorBrightYellow)
	}
}

// DrawMessage draws a framed two-line message in the center of the screen.
func DrawMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewBox((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillBox(box, ' ', core.ColorDefault)
	dst.DrawFrame(box, core.ColorWhite)
	dst.DrawText(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, core.ColorRed)
	dst.DrawText(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle, core.ColorDefault)
}
