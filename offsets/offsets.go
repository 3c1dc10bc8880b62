// Package offsets precomputes, per origin square, the candidate
// destination and neighbour coordinates the generator and make/unmake
// code need every call. It replaces the teacher's magic-bitboard
// precomputation: Ataxx has no sliding pieces or blockers to find magic
// numbers for, so there is nothing to hash — but the same "precompute a
// per-square table once, index into it forever" shape from the teacher's
// magic bitboard generator and from its plain (non-sliding) knight/king
// move tables carries over directly.
package offsets

import "sync"

// Coord is a single (x, y) grid coordinate.
type Coord struct {
	X, Y int
}

var (
	once sync.Once

	// reach holds, for each of the 64 origin squares, every in-bounds
	// destination with dx, dy in {-2,...,2} (distance 1 or 2). The
	// (0,0) offset is included for fidelity with the reference
	// heuristic, which sums over it even though it never yields a
	// legal destination (the origin itself is never empty).
	reach [64][]Coord

	// neighbors holds, for each of the 64 squares, every in-bounds
	// cell with dx, dy in {-1,0,1} — the 8-neighbourhood used both by
	// conversion on apply and by the generator's ordering heuristic.
	// (0,0) is included for the same fidelity reason as above.
	neighbors [64][]Coord
)

func index(x, y int) int {
	return y*8 + x
}

func inBounds(x, y int) bool {
	return x >= 0 && x < 8 && y >= 0 && y < 8
}

func build() {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			idx := index(x, y)

			var r []Coord
			for dy := -2; dy <= 2; dy++ {
				for dx := -2; dx <= 2; dx++ {
					nx, ny := x+dx, y+dy
					if inBounds(nx, ny) {
						r = append(r, Coord{nx, ny})
					}
				}
			}
			reach[idx] = r

			var n []Coord
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if inBounds(nx, ny) {
						n = append(n, Coord{nx, ny})
					}
				}
			}
			neighbors[idx] = n
		}
	}
}

func ensureBuilt() {
	once.Do(build)
}

// Reach returns every in-bounds candidate destination (distance 1 or 2,
// including the (0,0) no-op) reachable from (x, y).
func Reach(x, y int) []Coord {
	ensureBuilt()
	return reach[index(x, y)]
}

// Neighbors returns the (up to) 9 in-bounds cells in the 8-neighbourhood
// of (x, y), including (x, y) itself.
func Neighbors(x, y int) []Coord {
	ensureBuilt()
	return neighbors[index(x, y)]
}
