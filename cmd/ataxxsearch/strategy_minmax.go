//go:build minmax

package main

import "ataxxsearch/engine"

var ActiveStrategy = engine.Minmax
