package game_test

import (
	"testing"

	"github.com/kaleaditya28897-linux/picotris/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countCells(s game.Shape) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Filled(x, y) {
				n++
			}
		}
	}
	return n
}

func TestCatalog(t *testing.T) {
	seenColors := make(map[uint32]bool)
	for typ := game.PieceType(0); typ < game.NumPieceTypes; typ++ {
		s := game.ShapeOf(typ)
		assert.Equal(t, 4, countCells(s), "tetromino %s has four cells", typ)
		assert.False(t, seenColors[typ.Color()], "color of %s is distinct", typ)
		seenColors[typ.Color()] = true
	}

	i := game.ShapeOf(game.PieceI)
	assert.Equal(t, 4, i.Width())
	assert.Equal(t, 1, i.Height())
	o := game.ShapeOf(game.PieceO)
	assert.Equal(t, 2, o.Width())
	assert.Equal(t, 2, o.Height())
}

func TestRotatedTransform(t *testing.T) {
	// J:        rotated CW:
	// X . .     X X
	// X X X     X .
	//           X .
	j := game.ShapeOf(game.PieceJ)
	r := j.Rotated()
	require.Equal(t, 2, r.Width())
	require.Equal(t, 3, r.Height())
	want := game.NewShape([][]bool{
		{true, true},
		{true, false},
		{true, false},
	})
	assert.True(t, r.Equal(want))
}

func TestRotatedDimensionsSwap(t *testing.T) {
	i := game.ShapeOf(game.PieceI)
	r := i.Rotated()
	assert.Equal(t, 1, r.Width())
	assert.Equal(t, 4, r.Height())
	assert.Equal(t, 4, countCells(r))
}

func TestRotatedFourTimesIsIdentity(t *testing.T) {
	for typ := game.PieceType(0); typ < game.NumPieceTypes; typ++ {
		s := game.ShapeOf(typ)
		r := s.Rotated().Rotated().Rotated().Rotated()
		assert.True(t, r.Equal(s), "four CW rotations of %s", typ)
	}
}

func TestRotatedDoesNotMutateTemplate(t *testing.T) {
	before := game.ShapeOf(game.PieceT)
	s := game.ShapeOf(game.PieceT)
	_ = s.Rotated()
	assert.True(t, game.ShapeOf(game.PieceT).Equal(before))
}

func TestRandomPickRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		typ := game.RandomPick()
		assert.GreaterOrEqual(t, int(typ), 0)
		assert.Less(t, int(typ), game.NumPieceTypes)
	}
}
