// Package engine implements the search driver (C5): greedy, negamax,
// alpha-beta negamax, and root-split parallel alpha-beta, plus the
// adaptive depth estimator and the top-level computeBestMove entry point.
// Make/unmake and leaf evaluation (C4) live in the board package, since on
// this board a full snapshot is two uint64s and there is no benefit to
// separating them from the cell model itself.
package engine

import (
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"ataxxsearch/board"
	"ataxxsearch/generator"
	"ataxxsearch/publish"
)

const (
	negamaxLimit   = 4_000_000
	alphaBetaLimit = 8_000_000_000
)

// greedyScore is the depth-0 leaf policy used by negamax and alpha-beta: the
// best one-ply score reachable from this position, without publishing.
func greedyScore(pos *board.Position, scores *board.ScoreVector, holes board.Bitboard, player board.Player) int32 {
	moves := generator.Generate(pos, holes, player)
	if len(moves) == 0 {
		return scores.Estimate(player)
	}
	best := int32(math.MinInt32)
	for _, mv := range moves {
		undo := board.Apply(pos, scores, player, mv)
		s := scores.Estimate(player)
		board.Unmake(pos, scores, undo)
		if s > best {
			best = s
		}
	}
	return best
}

// greedyMove is the top-level greedy strategy: it picks the move with
// maximal one-ply score. ok is false if no legal move exists.
func greedyMove(pos *board.Position, scores *board.ScoreVector, holes board.Bitboard, player board.Player) (mv board.Move, ok bool) {
	moves := generator.Generate(pos, holes, player)
	if len(moves) == 0 {
		return board.Move{}, false
	}
	best := moves[0]
	bestScore := int32(math.MinInt32)
	for _, cand := range moves {
		undo := board.Apply(pos, scores, player, cand)
		s := scores.Estimate(player)
		board.Unmake(pos, scores, undo)
		if s > bestScore {
			bestScore = s
			best = cand
		}
	}
	return best, true
}

// negamax implements the plain negamax search. publishFromRoot is true
// only at the true search root: the spec's "root depth" sentinel is
// replaced by this explicit argument (see the design notes on mutable
// root-depth sentinels).
func negamax(pos *board.Position, scores *board.ScoreVector, holes board.Bitboard, player board.Player, depth int, publishFromRoot bool, sink publish.Sink, stats *Stats) int32 {
	stats.bump()
	if depth == 0 {
		return greedyScore(pos, scores, holes, player)
	}

	moves := generator.Generate(pos, holes, player)
	bestScore := int32(math.MinInt32)

	if len(moves) == 0 {
		// Pass: recurse once for the opponent and negate. This is the sole
		// candidate when no legal move exists.
		bestScore = -negamax(pos, scores, holes, player.Opponent(), depth-1, false, sink, stats)
	}

	for _, mv := range moves {
		undo := board.Apply(pos, scores, player, mv)
		score := -negamax(pos, scores, holes, player.Opponent(), depth-1, false, sink, stats)
		board.Unmake(pos, scores, undo)

		if score > bestScore {
			bestScore = score
			if publishFromRoot {
				sink.Publish(mv)
			}
		}
	}

	return bestScore
}

// alphaBeta implements negamax with fail-hard alpha-beta pruning. The pass
// branch (no legal moves) updates alpha from its recursive score but,
// matching the reference behaviour, never returns beta early from that
// branch: it falls through to the (empty) move loop and the final return
// alpha, even when the pass score would otherwise trigger a cutoff.
func alphaBeta(pos *board.Position, scores *board.ScoreVector, holes board.Bitboard, player board.Player, depth int, alpha, beta int32, publishFromRoot bool, sink publish.Sink, stats *Stats) int32 {
	stats.bump()
	if depth == 0 {
		return greedyScore(pos, scores, holes, player)
	}

	moves := generator.Generate(pos, holes, player)

	if len(moves) == 0 {
		score := -alphaBeta(pos, scores, holes, player.Opponent(), depth-1, -beta, -alpha, false, sink, stats)
		if score > alpha {
			alpha = score
		}
	}

	for _, mv := range moves {
		undo := board.Apply(pos, scores, player, mv)
		score := -alphaBeta(pos, scores, holes, player.Opponent(), depth-1, -beta, -alpha, false, sink, stats)
		board.Unmake(pos, scores, undo)

		if score > alpha {
			alpha = score
			if publishFromRoot {
				sink.Publish(mv)
			}
		}
		if score >= beta {
			return beta
		}
	}

	return alpha
}

// parallelAlphaBeta is the root-split strategy: a sequential pre-pass over
// the first quarter of the ordered root moves tightens alpha, then the
// remaining moves run concurrently via errgroup.Group, each on its own
// board/score copy, joined in spawn order (== sort order) into a
// pre-sized slice so "last publisher wins" matches the sequential
// ordering guarantee without extra synchronization.
func parallelAlphaBeta(pos *board.Position, scores *board.ScoreVector, holes board.Bitboard, player board.Player, depth int, threads int, sink publish.Sink, stats *Stats) int32 {
	moves := generator.Generate(pos, holes, player)
	if len(moves) == 0 {
		return scores.Estimate(player)
	}

	// -math.MaxInt32, not math.MinInt32: negating MinInt32 overflows an
	// int32 and wraps, which would corrupt the alpha/beta window on the
	// first recursive flip.
	alpha := int32(-math.MaxInt32)
	beta := int32(math.MaxInt32)
	opponent := player.Opponent()

	// A valid move is always published before any deeper search runs, so
	// the sink is never empty if everything past this point were somehow
	// skipped.
	sink.Publish(moves[0])

	k := len(moves) / 4
	for _, mv := range moves[:k] {
		undo := board.Apply(pos, scores, player, mv)
		// publishFromRoot is false here: the sequential pre-pass runs at
		// depth-1 as an inner call, never as the outer search root, so it
		// must not publish on its own account (see the design note on
		// suppressing publication from the inner sequential call).
		score := -alphaBeta(pos, scores, holes, opponent, depth-1, -beta, -alpha, false, sink, stats)
		board.Unmake(pos, scores, undo)

		if score > alpha {
			alpha = score
			sink.Publish(mv)
		}
	}

	tail := moves[k:]
	results := make([]int32, len(tail))
	windowAlpha := alpha

	g := new(errgroup.Group)
	if threads > 0 {
		g.SetLimit(threads)
	}
	for i, mv := range tail {
		i, mv := i, mv
		taskPos := pos.DeepCopy()
		taskScores := *scores
		g.Go(func() error {
			undo := board.Apply(&taskPos, &taskScores, player, mv)
			score := -alphaBeta(&taskPos, &taskScores, holes, opponent, depth-1, -beta, -windowAlpha, false, sink, stats)
			board.Unmake(&taskPos, &taskScores, undo)
			results[i] = score
			return nil
		})
	}
	_ = g.Wait()

	for i, mv := range tail {
		if results[i] > alpha {
			alpha = results[i]
			sink.Publish(mv)
		}
	}

	return alpha
}

// estimateMaxDepth grows d from 0 while the projected board count
// n0*n1^(d+1) stays within limit, capped at 6. The endgame shortcut
// (n0*n1 < 2) returns 4 directly: branching is small enough that a deep
// search is cheap regardless of the projection.
func estimateMaxDepth(n0, n1 int, limit int64) int {
	if n0*n1 < 2 {
		return 4
	}
	depth := 0
	for depth < 6 {
		projected := int64(n0)
		for i := 0; i < depth+1; i++ {
			projected *= int64(n1)
		}
		if projected > limit {
			break
		}
		depth++
	}
	return depth
}

// ComputeBestMove runs sess.Strategy to completion, publishing through
// sink every time a new best move is found at the root. It returns the
// final score at the root window and the depth searched; callers only
// need the sink's last published value, but the return is useful for
// logging and tests.
func ComputeBestMove(sess *Session, pos *board.Position, holes board.Bitboard, player board.Player, sink publish.Sink) (score int32, depth int) {
	if sess.Stats == nil {
		sess.Stats = &Stats{}
	}
	start := time.Now()
	scores := pos.CountScores()
	n0, n1 := generator.NumberOfMoves(pos, holes)

	switch sess.Strategy {
	case Greedy:
		mv, ok := greedyMove(pos, &scores, holes, player)
		if !ok {
			sess.Stats.Elapsed = time.Since(start)
			sess.Logger.Pass(sess.Strategy)
			return scores.Estimate(player), 0
		}
		sink.Publish(mv)
		undo := board.Apply(pos, &scores, player, mv)
		score = scores.Estimate(player)
		board.Unmake(pos, &scores, undo) // restore: computeBestMove never mutates the caller's board permanently
		sess.Stats.Elapsed = time.Since(start)
		sess.Logger.Result(sess.Strategy, sess.Stats)
		return score, 0

	case Minmax:
		depth = estimateMaxDepth(n0, n1, negamaxLimit)
		score = negamax(pos, &scores, holes, player, depth, true, sink, sess.Stats)

	case MinmaxAlphaBeta:
		depth = estimateMaxDepth(n0, n1, alphaBetaLimit)
		score = alphaBeta(pos, &scores, holes, player, depth, -math.MaxInt32, math.MaxInt32, true, sink, sess.Stats)

	case MinmaxAlphaBetaParallel:
		depth = estimateMaxDepth(n0, n1, alphaBetaLimit)
		score = parallelAlphaBeta(pos, &scores, holes, player, depth, sess.Threads, sink, sess.Stats)
	}

	sess.Stats.Depth = depth
	sess.Stats.Elapsed = time.Since(start)
	sess.Logger.Result(sess.Strategy, sess.Stats)
	return score, depth
}
