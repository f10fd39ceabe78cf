package warnings

import "github.com/eftil/sudoku-variant-core/lib"

// evalDoubleArrow requires head and tail both filled. It compares their
// sum to the sum of interior digits, flagging the whole line if the
// partial interior sum already exceeds the target, or — once every
// interior cell is filled — if the sums differ.
func evalDoubleArrow(line []int, digits *lib.DigitMap, b *Bitset) {
	if len(line) < 2 {
		return
	}
	head, tail := line[0], line[len(line)-1]
	hv, tv := digits.GetIndex(head), digits.GetIndex(tail)
	if hv == 0 || tv == 0 {
		return
	}
	target := hv + tv
	interior := line[1 : len(line)-1]
	sum := 0
	allFilled := true
	for _, cell := range interior {
		d := digits.GetIndex(cell)
		if d == 0 {
			allFilled = false
			continue
		}
		sum += d
	}
	if sum > target || (allFilled && sum != target) {
		for _, cell := range line {
			b.flag(cell)
		}
	}
}
