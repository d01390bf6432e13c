package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetris"
)

const (
	CellSize   = 28
	CellGap    = 1
	BoardLeft  = 24
	BoardTop   = 24
	PanelWidth = 160
)

var (
	emptyColor      = color.RGBA{245, 245, 245, 255}
	backgroundColor = color.RGBA{40, 40, 48, 255}
	ghostColor      = color.RGBA{200, 200, 200, 255}
)

var pieceColors = [tetris.KindCount]color.RGBA{
	tetris.KindI: {0, 255, 255, 255},
	tetris.KindO: {255, 255, 0, 255},
	tetris.KindL: {0, 0, 255, 255},
	tetris.KindJ: {255, 165, 0, 255},
	tetris.KindS: {0, 128, 0, 255},
	tetris.KindZ: {255, 0, 0, 255},
	tetris.KindT: {128, 0, 128, 255},
}

func cellColor(c tetris.CellType) color.RGBA {
	kind, ok := c.Kind()
	if !ok {
		return emptyColor
	}
	return pieceColors[kind]
}

// screenRow maps a board row (0 at the floor) to a display row (0 at the top).
func screenRow(height, y int) int {
	return height - y - 1
}

// BoardRenderer draws the board into a cached image that is rebuilt only
// after the engine reports a change.
type BoardRenderer struct {
	cache  *ebiten.Image
	dirty  bool
	cancel func()
}

func NewBoardRenderer(engine *tetris.Engine) *BoardRenderer {
	r := &BoardRenderer{dirty: true}
	r.cancel = engine.OnChange(func() { r.dirty = true })
	return r
}

func (r *BoardRenderer) Close() {
	r.cancel()
}

func (r *BoardRenderer) boardSize(engine *tetris.Engine) (int, int) {
	return engine.Width() * CellSize, engine.Height() * CellSize
}

func (r *BoardRenderer) rebuild(engine *tetris.Engine) {
	w, h := r.boardSize(engine)
	if r.cache == nil || r.cache.Bounds().Dx() != w || r.cache.Bounds().Dy() != h {
		r.cache = ebiten.NewImage(w, h)
	}
	r.cache.Clear()

	rows := engine.Overlay()
	height := engine.Height()

	for y, row := range rows {
		for x, c := range row {
			r.fillCell(x, screenRow(height, y), cellColor(c))
		}
	}

	if engine.State() == tetris.Active {
		piece := engine.Active()
		ghostY := engine.GhostY()
		for _, off := range piece.Shape().Cells() {
			x, y := piece.X+off.DX, ghostY+off.DY
			if y < height && rows[y][x] == tetris.Empty {
				r.fillCell(x, screenRow(height, y), ghostColor)
			}
		}
	}

	r.dirty = false
}

func (r *BoardRenderer) fillCell(x, row int, c color.Color) {
	vector.DrawFilledRect(r.cache,
		float32(x*CellSize+CellGap), float32(row*CellSize+CellGap),
		CellSize-2*CellGap, CellSize-2*CellGap, c, false)
}

// Draw renders the board at (left, top) and the side panel next to it.
func (r *BoardRenderer) Draw(screen *ebiten.Image, engine *tetris.Engine, left, top int, autoReset bool) {
	if r.dirty || r.cache == nil {
		r.rebuild(engine)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(left), float64(top))
	screen.DrawImage(r.cache, op)

	w, _ := r.boardSize(engine)
	panelX := left + w + 16
	r.drawPanel(screen, engine, panelX, top, autoReset)
}

func (r *BoardRenderer) drawPanel(screen *ebiten.Image, engine *tetris.Engine, x, y int, autoReset bool) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", engine.Score()), x, y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lines: %d", engine.LinesCleared()), x, y+16)
	ebitenutil.DebugPrintAt(screen, "Next:", x, y+40)

	next := engine.NextKind()
	shape := tetris.ShapeOf(next, 0)
	preview := CellSize / 2
	for _, off := range shape.Cells() {
		vector.DrawFilledRect(screen,
			float32(x+off.DX*preview), float32(y+60+(3-off.DY)*preview),
			float32(preview-CellGap), float32(preview-CellGap), pieceColors[next], false)
	}

	if engine.State() == tetris.Lost {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", x, y+140)
		ebitenutil.DebugPrintAt(screen, "R to restart", x, y+156)
	}

	mode := "off"
	if autoReset {
		mode = "on"
	}
	ebitenutil.DebugPrintAt(screen, "Auto reset: "+mode, x, y+196)
	ebitenutil.DebugPrintAt(screen, "F1 debug  Esc quit", x, y+212)
}
