// Package board implements the Ataxx grid model: cell occupancy, move
// records, and in-place apply/unmake. Squares are numbered 0-63 the same
// way a chess board's squares are, since an 8x8 grid of either game fits
// one uint64 exactly:
//
//	56	57	58	59	60	61	62	63
//	48	49	50	51	52	53	54	55
//	40	41	42	43	44	45	46	47
//	32	33	34	35	36	37	38	39
//	24	25	26	27	28	29	30	31
//	16	17	18	19	20	21	22	23
//	08	09	10	11	12	13	14	15
//	00	01	02	03	04	05	06	07
package board

import (
	"fmt"
	"strings"
)

// Bitboard is a 64-bit set, one bit per cell, index = y*8+x.
type Bitboard uint64

func (b *Bitboard) bit(index int) uint64 {
	mask := uint64(1) << index
	return (uint64(*b) & mask) >> index
}

func (b *Bitboard) IsBitSet(index int) bool {
	return b.bit(index) == 1
}

func (b *Bitboard) SetBit(index int) {
	*b |= 1 << index
}

func (b *Bitboard) ClearBit(index int) {
	*b &^= 1 << index
}

// PopCount returns the number of set bits (Kernighan's trick, matches the
// teacher's chess evaluator's popCount).
func (b Bitboard) PopCount() int {
	count := 0
	for b != 0 {
		b &= b - 1
		count++
	}
	return count
}

func SquareIndex(x, y int) int {
	return (y << 3) + x
}

func IndexToBitBoard(i int) Bitboard {
	var b Bitboard
	b.SetBit(i)
	return b
}

// Pretty renders the bitboard as an 8x8 grid, top row (y = 7) first, as in
// the layout above.
func (b *Bitboard) Pretty() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for y := 7; y >= 0; y-- {
		for x := 0; x < 8; x++ {
			if b.IsBitSet(SquareIndex(x, y)) {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}
		fmt.Fprintf(&sb, "| %d\n+---+---+---+---+---+---+---+---+\n", y)
	}
	sb.WriteString("  0   1   2   3   4   5   6   7\n")
	return sb.String()
}

// ToSlice returns a slice of single-bit bitboards, one per set bit.
func (b *Bitboard) ToSlice() []Bitboard {
	slice := []Bitboard{}
	for i := range 64 {
		mask := Bitboard(1 << i)
		if *b&mask != 0 {
			slice = append(slice, mask)
		}
	}
	return slice
}

func (b *Bitboard) Hex() string {
	return fmt.Sprintf("0x%x", *b)
}
