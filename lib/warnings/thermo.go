package warnings

import "github.com/eftil/sudoku-variant-core/lib"

// evalThermo walks the line bulb to tip tracking a running max (flagging
// any digit that doesn't exceed it), then tip to bulb tracking a running
// min (flagging any digit that doesn't fall below it). allowEqual widens
// both checks to accept equal neighbors, giving slow thermo from the same
// pass.
func evalThermo(line []int, digits *lib.DigitMap, allowEqual bool, b *Bitset) {
	runningMax := 0
	for _, cell := range line {
		d := digits.GetIndex(cell)
		if d == 0 {
			continue
		}
		violated := d <= runningMax
		if allowEqual {
			violated = d < runningMax
		}
		if violated {
			b.flag(cell)
		}
		if d > runningMax {
			runningMax = d
		}
	}

	runningMin := 1<<31 - 1
	for i := len(line) - 1; i >= 0; i-- {
		cell := line[i]
		d := digits.GetIndex(cell)
		if d == 0 {
			continue
		}
		violated := d >= runningMin
		if allowEqual {
			violated = d > runningMin
		}
		if violated {
			b.flag(cell)
		}
		if d < runningMin {
			runningMin = d
		}
	}
}
