package constraints

import (
	"github.com/eftil/sudoku-variant-core/lib"
	"github.com/eftil/sudoku-variant-core/lib/pbencode"
)

// encodeBox enforces box-uniqueness: for each digit and each box, the
// box's N cells contain that digit exactly once. Box geometry comes from
// lib.BoxDims/lib.BoxCell, the parameterized replacement for the
// teacher's hard-coded 3x3 arithmetic (see the box-arithmetic REDESIGN
// FLAG). A grid with no factorable box dimensions has already been
// rejected by the feasibility gate; the ok guard here is defense in
// depth for callers that skip it.
func encodeBox(nextVar int, _ lib.Element, ctx *Context) int {
	n := ctx.N
	bw, bh, ok := lib.BoxDims(n)
	if !ok {
		return nextVar
	}
	ones := onesOf(n)
	for val := 0; val < n; val++ {
		for bx := 0; bx < n; bx++ {
			lits := make([]int, n)
			for pos := 0; pos < n; pos++ {
				row, col := lib.BoxCell(bx, pos, bw, bh, n)
				lits[pos] = lib.Lit(row, col, val, n)
			}
			nextVar = pbencode.EncodeBoth(ones, lits, 1, 1, ctx.Clauses, nextVar)
		}
	}
	return nextVar
}
