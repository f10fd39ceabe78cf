package warnings

import (
	"sort"

	"github.com/eftil/sudoku-variant-core/lib"
)

// evalRenban only evaluates once every cell on the line is filled. It
// sorts the digits and flags the whole line if any adjacent pair in the
// sorted sequence isn't consecutive.
func evalRenban(line []int, digits *lib.DigitMap, b *Bitset) {
	vals := make([]int, len(line))
	for i, cell := range line {
		d := digits.GetIndex(cell)
		if d == 0 {
			return
		}
		vals[i] = d
	}
	sorted := append([]int(nil), vals...)
	sort.Ints(sorted)
	for i := 0; i+1 < len(sorted); i++ {
		if sorted[i+1]-sorted[i] != 1 {
			for _, cell := range line {
				b.flag(cell)
			}
			return
		}
	}
}
