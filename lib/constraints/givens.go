package constraints

import (
	"github.com/eftil/sudoku-variant-core/lib"
	"github.com/eftil/sudoku-variant-core/lib/utils"
)

// encodeGivens adds a unit clause per (cellIdx -> digit) pair, pinning
// that cell to that digit. `filled` elements use this same encoder: the
// distinction between given and user-filled is editor-level only, per
// the distilled spec's §4.3 `givens`/`filled` contract.
func encodeGivens(nextVar int, e lib.Element, ctx *Context) int {
	n := ctx.N
	for cellIdx, digit := range e.Digits {
		row, col := utils.IndexToRowCol(cellIdx, n)
		ctx.Clauses.Add(lib.Lit(row, col, digit-1, n))
	}
	return nextVar
}
