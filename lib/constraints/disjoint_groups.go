package constraints

import (
	"github.com/eftil/sudoku-variant-core/lib"
	"github.com/eftil/sudoku-variant-core/lib/pbencode"
)

// encodeDisjointGroups is active only when the element's Bool payload is
// set. For each digit and each in-box position, the N cells sharing that
// position across the N boxes must contain the digit exactly once — the
// same box/position arithmetic encodeBox uses, read across boxes instead
// of within one.
func encodeDisjointGroups(nextVar int, e lib.Element, ctx *Context) int {
	if !e.Bool {
		return nextVar
	}
	n := ctx.N
	bw, bh, ok := lib.BoxDims(n)
	if !ok {
		return nextVar
	}
	ones := onesOf(n)
	for val := 0; val < n; val++ {
		for pos := 0; pos < n; pos++ {
			lits := make([]int, n)
			for bx := 0; bx < n; bx++ {
				row, col := lib.BoxCell(bx, pos, bw, bh, n)
				lits[bx] = lib.Lit(row, col, val, n)
			}
			nextVar = pbencode.EncodeBoth(ones, lits, 1, 1, ctx.Clauses, nextVar)
		}
	}
	return nextVar
}
