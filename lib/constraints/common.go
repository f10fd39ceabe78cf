// Package constraints holds one encoder per board element kind, each
// translating a constraint's parameters into CNF clauses over the base
// literal scheme from lib. The dispatch table in registry.go realizes the
// distilled spec's REDESIGN FLAG: a tagged ElementKind plus a lookup
// table in place of the teacher's dynamic string-keyed dispatch.
package constraints

import (
	"github.com/eftil/sudoku-variant-core/lib"
	"github.com/eftil/sudoku-variant-core/lib/utils"
)

// Context carries the per-board state every encoder needs beyond its own
// element: the side length and the clause buffer to append to.
type Context struct {
	N       int
	Clauses *lib.ClauseBuffer
}

// onesOf returns a weight slice of n ones, the shape the PB encoder wants
// for plain cardinality (unweighted) constraints.
func onesOf(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// litAt returns the base literal for cellIdx holding digit v (0-indexed).
func litAt(ctx *Context, cellIdx, v int) int {
	row, col := utils.IndexToRowCol(cellIdx, ctx.N)
	return lib.Lit(row, col, v, ctx.N)
}

// forbidSameDigit adds, for every digit v, the clause forbidding cells a
// and b from both holding v — the pairwise all-different gadget shared by
// renban and killer.
func forbidSameDigit(ctx *Context, a, b int) {
	for v := 0; v < ctx.N; v++ {
		ctx.Clauses.Add(-litAt(ctx, a, v), -litAt(ctx, b, v))
	}
}
