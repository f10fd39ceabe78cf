package warnings

import "github.com/eftil/sudoku-variant-core/lib"

// evalBetween requires head and tail both filled. It computes (min, max)
// from them and flags any interior digit at or outside that range; if
// any interior violation is found, the head and tail are flagged too.
func evalBetween(line []int, digits *lib.DigitMap, b *Bitset) {
	if len(line) < 2 {
		return
	}
	head, tail := line[0], line[len(line)-1]
	hv, tv := digits.GetIndex(head), digits.GetIndex(tail)
	if hv == 0 || tv == 0 {
		return
	}
	lo, hi := hv, tv
	if lo > hi {
		lo, hi = hi, lo
	}
	violated := false
	for _, cell := range line[1 : len(line)-1] {
		d := digits.GetIndex(cell)
		if d == 0 {
			continue
		}
		if d <= lo || d >= hi {
			b.flag(cell)
			violated = true
		}
	}
	if violated {
		b.flag(head)
		b.flag(tail)
	}
}
