package warnings

import "github.com/eftil/sudoku-variant-core/lib"

// evalLockout requires the line's two circles (head/tail) to differ by
// at least LockoutDelta(n); if they don't, both are flagged. Any interior
// digit inside [min(head,tail), max(head,tail)] is forbidden and flagged,
// and the circles are flagged too whenever any interior cell violates.
func evalLockout(line []int, digits *lib.DigitMap, n int, b *Bitset) {
	if len(line) < 2 {
		return
	}
	head, tail := line[0], line[len(line)-1]
	hv, tv := digits.GetIndex(head), digits.GetIndex(tail)
	if hv == 0 || tv == 0 {
		return
	}
	delta := LockoutDelta(n)
	diff := hv - tv
	if diff < 0 {
		diff = -diff
	}
	lo, hi := hv, tv
	if lo > hi {
		lo, hi = hi, lo
	}
	violated := diff < delta

	for _, cell := range line[1 : len(line)-1] {
		d := digits.GetIndex(cell)
		if d == 0 {
			continue
		}
		if d >= lo && d <= hi {
			b.flag(cell)
			violated = true
		}
	}
	if violated {
		b.flag(head)
		b.flag(tail)
	}
}
