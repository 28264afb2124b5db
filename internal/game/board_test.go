package game_test

import (
	"fmt"
	"testing"

	"github.com/kaleaditya28897-linux/picotris/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRow fills an entire row by merging 1x1 shapes.
func fillRow(b *game.Board, row int, t game.PieceType) {
	dot := game.NewShape([][]bool{{true}})
	for col := 0; col < b.Width(); col++ {
		b.Merge(dot, col, row, t)
	}
}

func TestNewBoardEmpty(t *testing.T) {
	b := game.NewBoard(10, 20)
	assert.Equal(t, 10, b.Width())
	assert.Equal(t, 20, b.Height())
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			assert.False(t, b.Occupied(col, row))
		}
	}
}

func TestIsRowFull(t *testing.T) {
	b := game.NewBoard(4, 4)
	fillRow(b, 3, game.PieceT)
	assert.True(t, b.IsRowFull(3))

	b2 := game.NewBoard(4, 4)
	dot := game.NewShape([][]bool{{true}})
	for col := 0; col < 3; col++ {
		b2.Merge(dot, col, 3, game.PieceT)
	}
	assert.False(t, b2.IsRowFull(3), "row with one gap is not full")
}

func TestMergeWritesPieceType(t *testing.T) {
	b := game.NewBoard(10, 20)
	b.Merge(game.ShapeOf(game.PieceO), 4, 18, game.PieceO)

	for _, c := range [][2]int{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		typ, filled := b.Cell(c[0], c[1])
		require.True(t, filled, "cell (%d,%d)", c[0], c[1])
		assert.Equal(t, game.PieceO, typ)
	}
	_, filled := b.Cell(3, 18)
	assert.False(t, filled)
}

func TestMergeDiscardsRowsAboveBoard(t *testing.T) {
	b := game.NewBoard(10, 20)
	// Vertical I anchored at row -3: only its bottom row is on the board.
	tall := game.ShapeOf(game.PieceI).Rotated()
	require.Equal(t, 4, tall.Height())
	b.Merge(tall, 0, -3, game.PieceI)

	assert.True(t, b.Occupied(0, 0))
	count := 0
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			if b.Occupied(col, row) {
				count++
			}
		}
	}
	assert.Equal(t, 1, count, "cells above the top row are discarded")
}

func TestClearFullRows(t *testing.T) {
	tests := []struct {
		name     string
		fullRows []int
	}{
		{"none", nil},
		{"single bottom", []int{19}},
		{"double adjacent", []int{18, 19}},
		{"split", []int{16, 19}},
		{"quad", []int{16, 17, 18, 19}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := game.NewBoard(10, 20)
			full := make(map[int]bool)
			for _, row := range tt.fullRows {
				fillRow(b, row, game.PieceI)
				full[row] = true
			}
			// A marker cell on a non-full row to track shifting.
			markerRow := 15
			require.False(t, full[markerRow])
			b.Merge(game.NewShape([][]bool{{true}}), 3, markerRow, game.PieceT)

			n := b.ClearFullRows()
			assert.Equal(t, len(tt.fullRows), n)
			assert.Equal(t, 20, b.Height())

			// The marker shifts down by the number of full rows below it.
			below := 0
			for _, row := range tt.fullRows {
				if row > markerRow {
					below++
				}
			}
			typ, filled := b.Cell(3, markerRow+below)
			require.True(t, filled)
			assert.Equal(t, game.PieceT, typ)

			// Top rows are freshly empty.
			for row := 0; row < n; row++ {
				for col := 0; col < b.Width(); col++ {
					assert.False(t, b.Occupied(col, row),
						fmt.Sprintf("row %d should be empty after clearing", row))
				}
			}
		})
	}
}

func TestClearFullRowsPreservesOrder(t *testing.T) {
	b := game.NewBoard(3, 5)
	dot := game.NewShape([][]bool{{true}})
	// Row 1: partial (marker A at col 0), row 2: full, row 3: partial (marker B at col 2).
	b.Merge(dot, 0, 1, game.PieceS)
	fillRow(b, 2, game.PieceI)
	b.Merge(dot, 2, 3, game.PieceZ)

	assert.Equal(t, 1, b.ClearFullRows())

	// A shifted down by one (the cleared row was below it), B stayed put.
	typ, filled := b.Cell(0, 2)
	require.True(t, filled)
	assert.Equal(t, game.PieceS, typ)
	typ, filled = b.Cell(2, 3)
	require.True(t, filled)
	assert.Equal(t, game.PieceZ, typ)
	assert.False(t, b.Occupied(0, 1))
}

func TestReset(t *testing.T) {
	b := game.NewBoard(5, 5)
	fillRow(b, 4, game.PieceJ)
	b.Reset()
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			assert.False(t, b.Occupied(col, row))
		}
	}
}
