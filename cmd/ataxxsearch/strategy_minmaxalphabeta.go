//go:build minmaxalphabeta || (!greedy && !minmax && !minmaxalphabetaparallel)

package main

import "ataxxsearch/engine"

// The default build (no strategy tag given) lands here: fail-hard
// alpha-beta negamax, matching the spec's sequential baseline.
var ActiveStrategy = engine.MinmaxAlphaBeta
