package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionGetSet(t *testing.T) {
	var pos Position
	assert.Equal(t, CellEmpty, pos.Get(3, 4))

	pos.Set(3, 4, CellPlayer0)
	assert.Equal(t, CellPlayer0, pos.Get(3, 4))
	assert.False(t, pos.Occupied[Player1].IsBitSet(SquareIndex(3, 4)))

	pos.Set(3, 4, CellPlayer1)
	assert.Equal(t, CellPlayer1, pos.Get(3, 4))
	assert.False(t, pos.Occupied[Player0].IsBitSet(SquareIndex(3, 4)))

	pos.Set(3, 4, CellEmpty)
	assert.Equal(t, CellEmpty, pos.Get(3, 4))
}

func TestPositionDeepCopyIsIndependent(t *testing.T) {
	var pos Position
	pos.Set(0, 0, CellPlayer0)

	copyPos := pos.DeepCopy()
	copyPos.Set(0, 0, CellPlayer1)

	assert.Equal(t, CellPlayer0, pos.Get(0, 0), "mutating the copy must not affect the original")
	assert.Equal(t, CellPlayer1, copyPos.Get(0, 0))
}

func TestInBounds(t *testing.T) {
	assert.True(t, InBounds(0, 0))
	assert.True(t, InBounds(7, 7))
	assert.False(t, InBounds(-1, 0))
	assert.False(t, InBounds(0, 8))
	assert.False(t, InBounds(8, 0))
}

func TestIsEmptyLegal(t *testing.T) {
	var pos Position
	pos.Set(2, 2, CellPlayer0)
	var holes Bitboard
	holes.SetBit(SquareIndex(1, 1))

	assert.True(t, pos.IsEmptyLegal(0, 0, holes))
	assert.False(t, pos.IsEmptyLegal(2, 2, holes), "occupied cell is not empty-legal")
	assert.False(t, pos.IsEmptyLegal(1, 1, holes), "a hole is never legal")
	assert.False(t, pos.IsEmptyLegal(-1, 0, holes), "out of bounds is never legal")
}

func TestOpponent(t *testing.T) {
	assert.Equal(t, Player1, Player0.Opponent())
	assert.Equal(t, Player0, Player1.Opponent())
}

func TestCountScores(t *testing.T) {
	var pos Position
	pos.Set(0, 0, CellPlayer0)
	pos.Set(1, 0, CellPlayer0)
	pos.Set(2, 0, CellPlayer1)

	scores := pos.CountScores()
	assert.Equal(t, ScoreVector{2, 1}, scores)
}
