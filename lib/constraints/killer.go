package constraints

import (
	"github.com/eftil/sudoku-variant-core/lib/pbencode"

	"github.com/eftil/sudoku-variant-core/lib"
)

// encodeKiller enforces, for each killer cage (a Lines entry with a
// matching Sums entry under the same id), that its cells are pairwise
// distinct and sum exactly to the cage's target — the same sum+
// uniqueness shape the teacher's killer_cage_constraint.go already
// carries in the candidate-elimination idiom, re-expressed as CNF here.
// A cage with no matching sum entry is skipped.
func encodeKiller(nextVar int, e lib.Element, ctx *Context) int {
	n := ctx.N
	for id, cells := range e.Lines {
		sum, ok := e.Sums[id]
		if !ok {
			continue
		}
		var weights, lits []int
		for _, cell := range cells {
			for v := 0; v < n; v++ {
				weights = append(weights, v+1)
				lits = append(lits, litAt(ctx, cell, v))
			}
		}
		nextVar = pbencode.EncodeBoth(weights, lits, sum, sum, ctx.Clauses, nextVar)

		for i := 0; i < len(cells); i++ {
			for j := i + 1; j < len(cells); j++ {
				forbidSameDigit(ctx, cells[i], cells[j])
			}
		}
	}
	return nextVar
}
