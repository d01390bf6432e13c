package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLinesScoring(t *testing.T) {
	tests := []struct {
		name  string
		full  int
		score int
	}{
		{"no rows", 0, 0},
		{"single", 1, 40},
		{"double", 2, 100},
		{"triple", 3, 300},
		{"tetris", 4, 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, 1)
			for y := 0; y < tt.full; y++ {
				fillRow(e.grid, y)
			}
			fillRow(e.grid, tt.full, 0)

			rows := e.resolveLines()

			assert.Equal(t, tt.full, rows)
			assert.Equal(t, tt.score, e.Score())
			assert.Equal(t, tt.full, e.LinesCleared())
			assert.Equal(t, []CellType{Empty, CellT, CellT, CellT, CellT, CellT, CellT, CellT, CellT, CellT}, e.grid.Row(0))
		})
	}
}

func TestResolveLinesSingleRowCompaction(t *testing.T) {
	e := newTestEngine(t, 1)
	top := e.Height() - 1

	fillRow(e.grid, 0, 5)
	fillRow(e.grid, 3)
	e.grid.Set(2, 4, CellL)
	e.grid.Set(7, 4, CellS)
	e.grid.Set(0, top, CellI)

	before := e.Grid()
	e.resolveLines()
	after := e.Grid()

	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[4], after[3])
	for y := 4; y < top; y++ {
		assert.Equal(t, before[y+1], after[y], "row %d", y)
	}
	assert.Equal(t, make([]CellType, e.Width()), after[top])
	assert.Equal(t, 40, e.Score())
}

func TestResolveLinesCapsAtFour(t *testing.T) {
	e := newTestEngine(t, 1)
	for y := 0; y < 5; y++ {
		fillRow(e.grid, y)
	}

	assert.Equal(t, 4, e.resolveLines())
	assert.Equal(t, 1200, e.Score())
	assert.Equal(t, []int{0}, e.grid.fullRows(maxClearRows), "fifth row is left for the next lock")
}

func TestLockWritesCells(t *testing.T) {
	e := newTestEngine(t, 1)
	e.active = ActivePiece{Kind: KindT, Rotation: 0, X: 2, Y: 0}

	e.lock()

	for _, off := range ShapeOf(KindT, 0).Cells() {
		assert.Equal(t, CellT, e.Cell(2+off.DX, off.DY))
	}
	assert.Equal(t, 4, filledCount(e.Grid()))
	assert.Equal(t, Active, e.State())
}

func TestLockAboveTopLoses(t *testing.T) {
	e := newTestEngine(t, 1)
	h := e.Height()

	// Vertical I in column 1, straddling the top edge.
	e.active = ActivePiece{Kind: KindI, Rotation: 1, X: 0, Y: h - 2}
	e.lock()

	assert.Equal(t, Lost, e.State())
	assert.Equal(t, CellI, e.Cell(1, h-2))
	assert.Equal(t, CellI, e.Cell(1, h-1))
	assert.Equal(t, 2, filledCount(e.Grid()))
	assert.True(t, e.gravity.paused.Load())
}

func TestSpawn(t *testing.T) {
	e := newTestEngine(t, 99)
	next := e.NextKind()

	e.active = ActivePiece{Kind: KindZ, Rotation: 1, X: 0, Y: 0}
	e.gravity.sinceDrop.Store(17)
	e.spawn()

	assert.Equal(t, ActivePiece{Kind: next, Rotation: 0, X: 3, Y: 20}, e.Active())
	assert.Equal(t, int64(0), e.gravity.sinceDrop.Load())
	require.True(t, e.NextKind().Valid())
}

func TestPieceSequenceIsSeeded(t *testing.T) {
	sequence := func(seed uint64) []Kind {
		e := newTestEngine(t, seed)
		kinds := make([]Kind, 0, 20)
		for range 20 {
			kinds = append(kinds, e.Active().Kind)
			e.spawn()
		}
		return kinds
	}

	assert.Equal(t, sequence(42), sequence(42))
	assert.NotEqual(t, sequence(42), sequence(43))
}

func TestPieceDistributionCoversEveryKind(t *testing.T) {
	e := newTestEngine(t, 5)
	seen := make(map[Kind]int)
	for range 700 {
		seen[e.drawKind()]++
	}

	assert.Len(t, seen, KindCount)
	for kind, n := range seen {
		assert.Greater(t, n, 50, "kind %s", kind)
	}
}
