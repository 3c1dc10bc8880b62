package generator

import (
	"testing"

	"ataxxsearch/board"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOnlyLegalMoves(t *testing.T) {
	var pos board.Position
	pos.Set(3, 3, board.CellPlayer0)
	pos.Set(4, 4, board.CellPlayer1)
	var holes board.Bitboard
	holes.SetBit(board.SquareIndex(3, 4))

	moves := Generate(&pos, holes, board.Player0)
	assert.NotEmpty(t, moves)
	for _, mv := range moves {
		assert.Equal(t, board.CellPlayer0, pos.Get(mv.OX, mv.OY))
		assert.True(t, pos.IsEmptyLegal(mv.NX, mv.NY, holes))
		assert.Contains(t, []int{1, 2}, mv.Distance())
	}
}

func TestGenerateOrderingDescendingAndStable(t *testing.T) {
	var pos board.Position
	pos.Set(3, 3, board.CellPlayer0)
	pos.Set(2, 2, board.CellPlayer1)
	pos.Set(4, 4, board.CellPlayer1)
	pos.Set(2, 4, board.CellPlayer1)

	moves := Generate(&pos, board.Bitboard(0), board.Player0)
	assert.NotEmpty(t, moves)
	for i := 1; i < len(moves); i++ {
		assert.GreaterOrEqual(t, moves[i-1].Score, moves[i].Score, "moves must be sorted by descending score")
		if moves[i-1].Score == moves[i].Score {
			// One origin, so generation order is ascending destination index.
			prev := board.SquareIndex(moves[i-1].NX, moves[i-1].NY)
			cur := board.SquareIndex(moves[i].NX, moves[i].NY)
			assert.Less(t, prev, cur, "equal-score moves must keep generation order")
		}
	}
}

func TestGenerateScoresCloneAndAdjacentEnemies(t *testing.T) {
	var pos board.Position
	pos.Set(3, 3, board.CellPlayer0)
	pos.Set(2, 3, board.CellPlayer1)
	pos.Set(4, 3, board.CellPlayer1)

	moves := Generate(&pos, board.Bitboard(0), board.Player0)
	var found bool
	for _, mv := range moves {
		if mv.OX == 3 && mv.OY == 3 && mv.NX == 3 && mv.NY == 4 {
			found = true
			// clone (+1) adjacent to two enemies (+2 each) = 5
			assert.Equal(t, uint8(5), mv.Score)
		}
	}
	assert.True(t, found, "expected clone move (3,3)->(3,4) to be generated")
}

func TestGenerateEmptyWhenNoPieces(t *testing.T) {
	var pos board.Position
	moves := Generate(&pos, board.Bitboard(0), board.Player0)
	assert.Empty(t, moves)
}

func TestGenerateEmptyWhenFullyBlocked(t *testing.T) {
	var pos board.Position
	pos.Set(0, 0, board.CellPlayer0)
	var holes board.Bitboard
	for y := 0; y <= 2; y++ {
		for x := 0; x <= 2; x++ {
			if x == 0 && y == 0 {
				continue
			}
			holes.SetBit(board.SquareIndex(x, y))
		}
	}
	moves := Generate(&pos, holes, board.Player0)
	assert.Empty(t, moves)
}

func TestNumberOfMoves(t *testing.T) {
	var pos board.Position
	pos.Set(0, 0, board.CellPlayer0)
	pos.Set(7, 7, board.CellPlayer1)
	pos.Set(7, 6, board.CellPlayer1)

	n0, n1 := NumberOfMoves(&pos, board.Bitboard(0))
	assert.Greater(t, n0, 0)
	assert.Greater(t, n1, 0)
}

func TestNumberOfMovesEndgameShortcut(t *testing.T) {
	var pos board.Position
	n0, n1 := NumberOfMoves(&pos, board.Bitboard(0))
	assert.Equal(t, 0, n0)
	assert.Equal(t, 0, n1)
}
