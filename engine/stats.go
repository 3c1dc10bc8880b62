package engine

import (
	"sync/atomic"
	"time"
)

// Stats is the optional observer for a single computeBestMove call: node
// counts, depth chosen, and elapsed wall time. Safe for concurrent use by
// the parallel strategy's root-split tasks.
type Stats struct {
	Nodes   atomic.Int64
	Depth   int
	Elapsed time.Duration
}

func (s *Stats) bump() {
	if s == nil {
		return
	}
	s.Nodes.Add(1)
}
