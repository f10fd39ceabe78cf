package constraints

import "github.com/eftil/sudoku-variant-core/lib"

// encodePalindrome forces each line to read the same forwards and
// backwards: for a symmetric pair (a, b), a holds digit v iff b does,
// for every v. This is the simplest possible equality gadget — two
// clauses per digit per pair, no auxiliary variables.
func encodePalindrome(nextVar int, e lib.Element, ctx *Context) int {
	n := ctx.N
	for _, line := range e.Lines {
		m := len(line)
		for i := 0; i < m/2; i++ {
			a, b := line[i], line[m-1-i]
			for v := 0; v < n; v++ {
				la, lb := litAt(ctx, a, v), litAt(ctx, b, v)
				ctx.Clauses.Add(-la, lb)
				ctx.Clauses.Add(la, -lb)
			}
		}
	}
	return nextVar
}
