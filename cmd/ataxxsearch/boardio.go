package main

import (
	"fmt"
	"strconv"
	"strings"

	"ataxxsearch/board"
)

// parseBoard reads 64 whitespace-separated cell values in {-1, 0, 1}
// (-1 = Empty) in row-major order starting at (0,0), matching the
// spec's serialized-board argument. Deserialization detail itself is out
// of scope; this is a direct, uncommented translation of the argument
// string into the board's two player bitboards.
func parseBoard(s string) (board.Position, error) {
	var pos board.Position
	fields := strings.Fields(s)
	if len(fields) != 64 {
		return pos, fmt.Errorf("board argument: want 64 cell values, got %d", len(fields))
	}
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return pos, fmt.Errorf("board argument: cell %d: %w", i, err)
		}
		x, y := i%8, i/8
		switch v {
		case -1:
			pos.Set(x, y, board.CellEmpty)
		case 0:
			pos.Set(x, y, board.CellPlayer0)
		case 1:
			pos.Set(x, y, board.CellPlayer1)
		default:
			return pos, fmt.Errorf("board argument: cell %d: want -1, 0, or 1, got %d", i, v)
		}
	}
	return pos, nil
}

// parseHoles reads 64 whitespace-separated booleans (0 or 1) in the same
// row-major order as parseBoard.
func parseHoles(s string) (board.Bitboard, error) {
	var holes board.Bitboard
	fields := strings.Fields(s)
	if len(fields) != 64 {
		return holes, fmt.Errorf("holes argument: want 64 values, got %d", len(fields))
	}
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return holes, fmt.Errorf("holes argument: cell %d: %w", i, err)
		}
		if v != 0 {
			holes.SetBit(board.SquareIndex(i%8, i/8))
		}
	}
	return holes, nil
}

// parsePlayer reads the current-player argument, a single index in {0, 1}.
func parsePlayer(s string) (board.Player, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("player argument: %w", err)
	}
	switch v {
	case 0:
		return board.Player0, nil
	case 1:
		return board.Player1, nil
	default:
		return 0, fmt.Errorf("player argument: want 0 or 1, got %d", v)
	}
}
