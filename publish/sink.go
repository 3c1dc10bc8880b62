// Package publish implements the move publication sink: the external
// boundary through which the search core announces the move it currently
// believes is best. Only the last call per process lifetime is
// authoritative (see Sink).
package publish

import "ataxxsearch/board"

// Sink accepts a candidate best move. The core calls Publish zero or more
// times per computeBestMove call; callers must only trust the last value
// observed once the search has returned.
type Sink interface {
	Publish(mv board.Move)
}
