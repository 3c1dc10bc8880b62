//go:build greedy

package main

import "ataxxsearch/engine"

// ActiveStrategy is fixed at build time by exactly one of the
// strategy_*.go files in this package, selected via its build tag.
var ActiveStrategy = engine.Greedy
