package constraints

import (
	"strconv"

	"github.com/eftil/sudoku-variant-core/lib"
	"github.com/eftil/sudoku-variant-core/lib/pbencode"
)

// encodeLittleKiller enforces, for each (diagonalIdx -> sum) entry, that
// the weighted sum of digits along that diagonal equals sum exactly.
// Weight per literal is v+1 (the digit the literal represents), matching
// the distilled spec's §4.3 `littleKiller` contract. Keys that don't
// parse as a diagonal index are ignored, matching the "non-numeric
// payloads are ignored" clause.
func encodeLittleKiller(nextVar int, e lib.Element, ctx *Context) int {
	n := ctx.N
	for key, sum := range e.Sums {
		diagIdx, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		cells := lib.LittleKillerDiagonal(diagIdx, n)
		var weights, lits []int
		for _, rc := range cells {
			row, col := rc[0], rc[1]
			for v := 0; v < n; v++ {
				weights = append(weights, v+1)
				lits = append(lits, lib.Lit(row, col, v, n))
			}
		}
		nextVar = pbencode.EncodeBoth(weights, lits, sum, sum, ctx.Clauses, nextVar)
	}
	return nextVar
}
