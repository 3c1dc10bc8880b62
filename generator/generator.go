// Package generator enumerates legal moves for a side to move and orders
// them by the heuristic score h(mv) computed by score below. It mirrors the
// teacher's generic per-square move table builder (generateGenericMoves)
// but walks the precomputed offsets package tables instead of a literal
// step list, since the candidate set here is radius-2, not a fixed knight
// or king pattern.
package generator

import (
	"sort"

	"ataxxsearch/board"
	"ataxxsearch/offsets"
)

// Generate returns every legal move for player, ordered by descending
// heuristic score (stable on ties). It does not mutate pos or holes.
func Generate(pos *board.Position, holes board.Bitboard, player board.Player) []board.Move {
	var moves []board.Move
	opponent := player.Opponent()

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if pos.Get(x, y) != cellForPlayer(player) {
				continue
			}
			for _, d := range offsets.Reach(x, y) {
				if !pos.IsEmptyLegal(d.X, d.Y, holes) {
					continue
				}
				mv := board.Move{OX: x, OY: y, NX: d.X, NY: d.Y}
				mv.Score = score(pos, mv, opponent)
				moves = append(moves, mv)
			}
		}
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Score > moves[j].Score
	})
	return moves
}

// score computes h(mv): +1 if the move is a clone, +2 per opponent piece
// adjacent to the destination. The (0,0) offset is included in the scan
// for fidelity with the reference heuristic; it never matches because the
// destination is empty at generation time.
func score(pos *board.Position, mv board.Move, opponent board.Player) uint8 {
	var h uint8
	if mv.IsClone() {
		h++
	}
	for _, n := range offsets.Neighbors(mv.NX, mv.NY) {
		if pos.Get(n.X, n.Y) == cellForPlayer(opponent) {
			h += 2
		}
	}
	return h
}

// NumberOfMoves counts the legal moves each colour would have if it were
// to move right now, for the adaptive depth estimator. Holes are
// consulted exactly as in Generate.
func NumberOfMoves(pos *board.Position, holes board.Bitboard) (n0, n1 int) {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			switch pos.Get(x, y) {
			case board.CellPlayer0:
				n0 += countReachable(pos, holes, x, y)
			case board.CellPlayer1:
				n1 += countReachable(pos, holes, x, y)
			}
		}
	}
	return n0, n1
}

func countReachable(pos *board.Position, holes board.Bitboard, x, y int) int {
	n := 0
	for _, d := range offsets.Reach(x, y) {
		if pos.IsEmptyLegal(d.X, d.Y, holes) {
			n++
		}
	}
	return n
}

func cellForPlayer(p board.Player) board.Cell {
	if p == board.Player0 {
		return board.CellPlayer0
	}
	return board.CellPlayer1
}
