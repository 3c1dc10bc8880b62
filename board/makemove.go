package board

import "ataxxsearch/offsets"

// UndoInfo snapshots everything Apply can change, so Unmake can restore it
// exactly. A full-board snapshot is two uint64s plus the score vector; at
// this size there is no benefit to recording only the touched cells (see the design note on
// snapshot-on-entry vs. an explicit touched-cell undo record).
type UndoInfo struct {
	Position Position
	Scores   ScoreVector
}

// Apply plays mv for player in place, updating scores incrementally, and
// returns an UndoInfo that restores the pre-move state.
//
// Distance-1 (clone): the origin keeps its piece, the destination gains a
// new one, so the mover's score increases by one.
// Distance-2 (jump): the origin empties and the piece relocates, so the
// mover's score is unchanged by the move itself.
// Either way every opponent piece orthogonally or diagonally adjacent to
// the destination converts to the mover's colour.
func Apply(pos *Position, scores *ScoreVector, player Player, mv Move) UndoInfo {
	undo := UndoInfo{Position: pos.DeepCopy(), Scores: *scores}

	if mv.IsClone() {
		scores[player]++
	} else {
		pos.Set(mv.OX, mv.OY, CellEmpty)
	}
	pos.Set(mv.NX, mv.NY, cellForPlayer(player))

	opponent := player.Opponent()
	for _, c := range offsets.Neighbors(mv.NX, mv.NY) {
		// (c.X, c.Y) == (mv.NX, mv.NY) is included for fidelity with the
		// reference heuristic: the destination just became the mover's
		// own piece, so the opponent check below is always false there.
		if pos.Get(c.X, c.Y) == cellForPlayer(opponent) {
			pos.Set(c.X, c.Y, cellForPlayer(player))
			scores[opponent]--
			scores[player]++
		}
	}

	return undo
}

// Unmake restores the position and score vector captured by a prior Apply.
func Unmake(pos *Position, scores *ScoreVector, undo UndoInfo) {
	*pos = undo.Position
	*scores = undo.Scores
}
