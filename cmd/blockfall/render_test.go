package main

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestCellColor(t *testing.T) {
	assert.Equal(t, emptyColor, cellColor(tetris.Empty))
	assert.Equal(t, pieceColors[tetris.KindI], cellColor(tetris.CellI))
	assert.Equal(t, pieceColors[tetris.KindT], cellColor(tetris.CellT))
	assert.NotEqual(t, cellColor(tetris.CellS), cellColor(tetris.CellZ))
}

func TestScreenRow(t *testing.T) {
	assert.Equal(t, 19, screenRow(20, 0), "floor is drawn at the bottom")
	assert.Equal(t, 0, screenRow(20, 19))
}
