package constraints

import (
	"github.com/eftil/sudoku-variant-core/lib"
	"github.com/eftil/sudoku-variant-core/lib/pbencode"
)

// encodeRenban enforces, for each line, that its cells hold some window
// of len(line) consecutive digits, all distinct. A fresh selector
// literal per candidate window is introduced; exactly one selector is
// true (a PB equality over the selectors), and a true selector forbids
// every line cell from holding a digit outside its window. All-different
// among the line's cells is added on top via the same pairwise gadget
// killer cages use, since a chosen window alone doesn't rule out repeats.
func encodeRenban(nextVar int, e lib.Element, ctx *Context) int {
	n := ctx.N
	for _, line := range e.Lines {
		k := len(line)
		if k == 0 || k > n {
			continue
		}
		windowCount := n - k + 1
		if windowCount < 1 {
			continue
		}
		selectors := make([]int, windowCount)
		for j := 0; j < windowCount; j++ {
			selectors[j] = nextVar
			nextVar++
		}
		nextVar = pbencode.EncodeBoth(onesOf(windowCount), selectors, 1, 1, ctx.Clauses, nextVar)

		for j := 0; j < windowCount; j++ {
			sel := selectors[j]
			lo, hi := j, j+k-1
			for _, cell := range line {
				for v := 0; v < n; v++ {
					if v < lo || v > hi {
						ctx.Clauses.Add(-sel, -litAt(ctx, cell, v))
					}
				}
			}
		}

		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				forbidSameDigit(ctx, line[i], line[j])
			}
		}
	}
	return nextVar
}
