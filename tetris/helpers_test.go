package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newTestEngine returns an engine whose gravity ticker never fires during a
// test. Gravity is driven by calling e.gravity.tick directly.
func newTestEngine(t testing.TB, seed uint64) *Engine {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Seed = seed
	cfg.TickInterval = time.Hour

	e, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { e.Close() })
	return e
}

// fillRow fills row y with CellT except for the listed columns.
func fillRow(g *Grid, y int, holes ...int) {
	for x := 0; x < g.Width(); x++ {
		g.Set(x, y, CellT)
	}
	for _, x := range holes {
		g.Set(x, y, Empty)
	}
}

func filledCount(rows [][]CellType) int {
	n := 0
	for _, row := range rows {
		for _, c := range row {
			if c != Empty {
				n++
			}
		}
	}
	return n
}

// bounds returns the extent of the filled cells of a shape within its box.
func bounds(s Shape) (minX, maxX, minY, maxY int) {
	minX, minY = 4, 4
	maxX, maxY = -1, -1
	for _, off := range s.Cells() {
		minX = min(minX, off.DX)
		maxX = max(maxX, off.DX)
		minY = min(minY, off.DY)
		maxY = max(maxY, off.DY)
	}
	return
}
