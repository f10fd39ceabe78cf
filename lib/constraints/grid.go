package constraints

import (
	"github.com/eftil/sudoku-variant-core/lib"
	"github.com/eftil/sudoku-variant-core/lib/pbencode"
)

// encodeGrid enforces the three exactly-one families that make a board a
// sudoku at all: each cell holds exactly one digit, each digit appears
// exactly once per row, and exactly once per column. The row/column
// families are read off the same base literal array by rotating which
// index plays which role, per the distilled spec's §4.3 `grid` contract.
func encodeGrid(nextVar int, _ lib.Element, ctx *Context) int {
	n := ctx.N
	ones := onesOf(n)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			cellLits := make([]int, n)
			rowLits := make([]int, n)
			colLits := make([]int, n)
			for v := 0; v < n; v++ {
				cellLits[v] = lib.Lit(a, b, v, n)
				rowLits[v] = lib.Lit(a, v, b, n)
				colLits[v] = lib.Lit(v, a, b, n)
			}
			nextVar = pbencode.EncodeBoth(ones, cellLits, 1, 1, ctx.Clauses, nextVar)
			nextVar = pbencode.EncodeBoth(ones, rowLits, 1, 1, ctx.Clauses, nextVar)
			nextVar = pbencode.EncodeBoth(ones, colLits, 1, 1, ctx.Clauses, nextVar)
		}
	}
	return nextVar
}
