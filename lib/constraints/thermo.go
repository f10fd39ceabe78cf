package constraints

import "github.com/eftil/sudoku-variant-core/lib"

// encodeThermo enforces a strictly increasing walk bulb to tip along
// every line.
func encodeThermo(nextVar int, e lib.Element, ctx *Context) int {
	return encodeMonotone(nextVar, e, ctx, false)
}

// encodeSlowThermo is the same as thermo but allows equal neighbors.
func encodeSlowThermo(nextVar int, e lib.Element, ctx *Context) int {
	return encodeMonotone(nextVar, e, ctx, true)
}

// encodeMonotone forbids, for each adjacent pair (a, b) along every line,
// every (va, vb) combination that would violate a strictly increasing
// (allowEqual = false) or non-decreasing (allowEqual = true) walk. This
// is a direct per-pair enumeration rather than a PB inequality: with only
// N^2 candidate pairs per adjacency and N capped at a handful of tens,
// it stays far smaller than going through an arithmetic PB transform, and
// it generalizes to any of the ordering/distance constraints below
// without a second encoding technique.
func encodeMonotone(nextVar int, e lib.Element, ctx *Context, allowEqual bool) int {
	n := ctx.N
	for _, line := range e.Lines {
		for i := 0; i+1 < len(line); i++ {
			a, b := line[i], line[i+1]
			for va := 0; va < n; va++ {
				for vb := 0; vb < n; vb++ {
					violates := va > vb
					if !allowEqual {
						violates = va >= vb
					}
					if violates {
						ctx.Clauses.Add(-litAt(ctx, a, va), -litAt(ctx, b, vb))
					}
				}
			}
		}
	}
	return nextVar
}
