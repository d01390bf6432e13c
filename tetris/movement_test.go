package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHardDropOnEmptyBoard(t *testing.T) {
	e := newTestEngine(t, 3)
	e.active = ActivePiece{Kind: KindO, X: 3, Y: e.Height()}
	next := e.NextKind()

	e.Submit(HardDrop)
	e.Update()

	assert.Equal(t, CellO, e.Cell(4, 0))
	assert.Equal(t, CellO, e.Cell(5, 0))
	assert.Equal(t, CellO, e.Cell(4, 1))
	assert.Equal(t, CellO, e.Cell(5, 1))
	assert.Equal(t, 4, filledCount(e.Grid()))

	assert.Equal(t, ActivePiece{Kind: next, X: 3, Y: e.Height()}, e.Active())
	assert.Equal(t, Active, e.State())
}

func TestHardDropRestsOnStack(t *testing.T) {
	e := newTestEngine(t, 3)
	e.grid.Set(4, 5, CellJ)
	e.grid.Set(3, 9, CellJ)

	// Horizontal I spans columns 3-6 on box row 1.
	e.active = ActivePiece{Kind: KindI, Rotation: 0, X: 3, Y: e.Height()}
	require.Equal(t, 9, e.GhostY())

	e.Submit(HardDrop)
	e.Update()

	for x := 3; x <= 6; x++ {
		assert.Equal(t, CellI, e.Cell(x, 10), "column %d", x)
	}
}

func TestHardDropFromEveryKind(t *testing.T) {
	for kind := KindI; kind < KindCount; kind++ {
		for r := 0; r < Rotations(kind); r++ {
			e := newTestEngine(t, 11)
			e.active = ActivePiece{Kind: kind, Rotation: r, X: 3, Y: e.Height()}
			_, _, minY, _ := bounds(ShapeOf(kind, r))

			e.Submit(HardDrop)
			e.Update()

			assert.Equal(t, 4, filledCount(e.Grid()), "%s/%d", kind, r)
			for _, off := range ShapeOf(kind, r).Cells() {
				assert.Equal(t, kind.Cell(), e.Cell(3+off.DX, off.DY-minY), "%s/%d", kind, r)
			}
		}
	}
}

func TestMoveDownLocksOnFloor(t *testing.T) {
	e := newTestEngine(t, 3)
	e.active = ActivePiece{Kind: KindO, X: 0, Y: 1}

	assert.False(t, e.move(-1, false))
	assert.Equal(t, 0, e.Active().Y)

	assert.True(t, e.move(-1, false))
	assert.Equal(t, CellO, e.Cell(1, 0))
	assert.Equal(t, e.Height(), e.Active().Y)
}

func TestHorizontalMoveStopsAtWall(t *testing.T) {
	e := newTestEngine(t, 3)
	e.active = ActivePiece{Kind: KindO, X: 3, Y: 10}

	assert.False(t, e.move(-20, true))
	assert.Equal(t, -1, e.Active().X, "O box column 0 is empty")
	assert.Equal(t, 10, e.Active().Y)
	assert.Equal(t, 0, filledCount(e.Grid()))

	assert.False(t, e.move(20, true))
	assert.Equal(t, 7, e.Active().X)
}

func TestHorizontalMoveBlockedByCell(t *testing.T) {
	e := newTestEngine(t, 3)
	e.grid.Set(1, 10, CellS)
	e.active = ActivePiece{Kind: KindO, X: 3, Y: 10}

	e.Submit(MoveLeft)
	e.Submit(MoveLeft)
	e.Submit(MoveLeft)
	e.Update()

	assert.Equal(t, 1, e.Active().X)
	assert.Equal(t, 1, filledCount(e.Grid()))
}

func TestRotateWraps(t *testing.T) {
	e := newTestEngine(t, 3)
	e.active = ActivePiece{Kind: KindT, Rotation: 0, X: 3, Y: 10}

	assert.True(t, e.rotate())
	assert.Equal(t, 3, e.Active().Rotation)
	assert.True(t, e.rotate())
	assert.Equal(t, 2, e.Active().Rotation)

	e.active = ActivePiece{Kind: KindO, Rotation: 0, X: 3, Y: 10}
	assert.True(t, e.rotate())
	assert.Equal(t, 0, e.Active().Rotation)
}

func TestRotateBlocked(t *testing.T) {
	t.Run("against the wall", func(t *testing.T) {
		e := newTestEngine(t, 3)
		// Vertical I in column 0; the horizontal state would need column -1.
		e.active = ActivePiece{Kind: KindI, Rotation: 1, X: -1, Y: 5}
		before := e.Active()

		assert.False(t, e.rotate())
		assert.Equal(t, before, e.Active())
	})

	t.Run("against a cell", func(t *testing.T) {
		e := newTestEngine(t, 3)
		e.grid.Set(4, 14, CellZ)
		// Horizontal I on row 13; the vertical state would cover column 4 rows 12-15.
		e.active = ActivePiece{Kind: KindI, Rotation: 0, X: 3, Y: 12}
		before := e.Active()

		e.Submit(Rotate)
		e.Update()

		assert.Equal(t, before, e.Active())
	})
}

func TestBatchMatchesSequentialDispatch(t *testing.T) {
	batched := newTestEngine(t, 77)
	single := newTestEngine(t, 77)

	notified := 0
	batched.OnChange(func() { notified++ })

	for _, cmd := range []Command{MoveLeft, MoveLeft, Rotate} {
		batched.Submit(cmd)
	}
	batched.Update()

	for _, cmd := range []Command{MoveLeft, MoveLeft, Rotate} {
		single.Submit(cmd)
		single.Update()
	}

	assert.Equal(t, 1, notified)
	assert.Equal(t, single.Active(), batched.Active())
	assert.Equal(t, single.Grid(), batched.Grid())
	assert.Equal(t, single.NextKind(), batched.NextKind())
	assert.Equal(t, uint64(1), batched.Version())
	assert.Equal(t, uint64(3), single.Version())
}

func TestLockDiscardsRestOfBatch(t *testing.T) {
	e := newTestEngine(t, 3)

	e.Submit(HardDrop)
	e.Submit(MoveLeft)
	e.Submit(MoveLeft)
	e.Update()

	assert.Equal(t, 3, e.Active().X)
	assert.Equal(t, e.Height(), e.Active().Y)
	assert.Equal(t, 0, e.Pending())
	assert.Equal(t, int64(2), e.Stats().CommandsDiscarded)
}

func TestNoneCommandIsNoop(t *testing.T) {
	e := newTestEngine(t, 3)
	before := e.Active()

	e.Submit(None)
	e.Submit(Command(250))
	e.Update()

	assert.Equal(t, before, e.Active())
	assert.Equal(t, uint64(1), e.Version())
}
