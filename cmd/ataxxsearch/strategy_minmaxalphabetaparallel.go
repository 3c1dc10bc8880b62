//go:build minmaxalphabetaparallel

package main

import "ataxxsearch/engine"

var ActiveStrategy = engine.MinmaxAlphaBetaParallel
