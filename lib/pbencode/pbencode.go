// Package pbencode implements the pseudo-Boolean-to-CNF encoder every
// constraint encoder in lib/constraints builds on (the distilled spec's
// §4.1 PB Encoder contract). It is the one piece of machinery none of
// the retrieved example repos offer off the shelf, so it is written from
// scratch here, grounded directly on the contract text rather than on a
// borrowed implementation.
package pbencode

import "github.com/eftil/sudoku-variant-core/lib"

// ref is either a real CNF literal or a compile-time-known boolean
// constant. Keeping the two cases in one type lets the sequential
// counter recurrence below stay branch-free at the call sites: a
// register position before the first item, or past the registered
// width, collapses to a constant instead of a variable.
type ref struct {
	lit      int
	isConst  bool
	constVal bool
}

func litRef(l int) ref     { return ref{lit: l} }
func constRef(v bool) ref  { return ref{isConst: true, constVal: v} }
func (r ref) isTrue() bool { return r.isConst && r.constVal }

// orClause builds the clause "-anchor \/ terms..." (anchor implies the
// disjunction of terms), dropping constant-false terms and reporting
// skip=true when any term is constant-true (the clause is then
// trivially satisfied and must not be added).
func orClause(anchor int, terms ...ref) (clause lib.Clause, skip bool) {
	clause = lib.Clause{-anchor}
	for _, t := range terms {
		if t.isConst {
			if t.constVal {
				return nil, true
			}
			continue
		}
		clause = append(clause, t.lit)
	}
	return clause, false
}

// addImplies adds the clause(s) for "source -> target", where source may
// itself be a constant.
func addImplies(clauses *lib.ClauseBuffer, source ref, target int) {
	if source.isConst {
		if source.constVal {
			clauses.Add(target)
		}
		return
	}
	clauses.Add(-source.lit, target)
}

// addConjImplies adds the clause(s) for "x /\ c -> target".
func addConjImplies(clauses *lib.ClauseBuffer, x int, c ref, target int) {
	if c.isConst {
		if c.constVal {
			clauses.Add(-x, target)
		}
		return
	}
	clauses.Add(-x, -c.lit, target)
}

// EncodeBoth appends clauses enforcing lo <= sum(weights[i]*lits[i]) <= hi
// to clauses, where each lits[i] is treated as a 0/1 value (1 iff the
// literal is true). It returns the updated next-free-variable counter.
//
// weights must all be positive. If lo == hi this encodes an equality
// (the grid/box/disjointGroups encoders use this for exactly-one
// cardinality with every weight equal to 1). lo > hi, and hi < 0 (the
// sum is never negative), have no satisfying assignment regardless of
// the literals, so they are encoded directly as unsat via forceUnsat
// rather than left to fall through the hi <= 0 early-out below, which
// would otherwise silently drop the lo bound or admit a sum of 0.
//
// The construction is a sequential weighted counter: processing item i
// in turn, a block of fresh auxiliary variables reg[i][s] means "the sum
// of the first i weighted literals is >= s", defined recursively from
// reg[i-1] and item i. Register width is capped at hi+1 (values beyond
// that never matter for this constraint), which keeps the total clause
// count within the O(n * min(hi+1, sum(weights))) bound the distilled
// spec allows for arbitrary-weight PB constraints.
func EncodeBoth(weights, lits []int, lo, hi int, clauses *lib.ClauseBuffer, nextVar int) int {
	n := len(lits)
	if n == 0 {
		if lo > 0 || hi < 0 {
			return forceUnsat(clauses, nextVar)
		}
		return nextVar
	}

	if lo > hi || hi < 0 {
		return forceUnsat(clauses, nextVar)
	}

	if hi <= 0 {
		for i, w := range weights {
			if w > 0 {
				clauses.Add(-lits[i])
			}
		}
		return nextVar
	}

	cap := hi + 1

	running := make([]int, n+1)
	for i := 0; i < n; i++ {
		running[i+1] = running[i] + weights[i]
		if running[i+1] > cap {
			running[i+1] = cap
		}
	}

	reg := make([][]int, n+1)
	for i := 1; i <= n; i++ {
		width := running[i]
		if width <= 0 {
			continue
		}
		reg[i] = make([]int, width)
		for s := 0; s < width; s++ {
			reg[i][s] = nextVar
			nextVar++
		}
	}

	at := func(i, s int) ref {
		if s <= 0 {
			return constRef(true)
		}
		if i <= 0 || s > running[i] {
			return constRef(false)
		}
		return litRef(reg[i][s-1])
	}

	for i := 1; i <= n; i++ {
		w := weights[i-1]
		x := lits[i-1]
		width := running[i]
		for s := 1; s <= width; s++ {
			cur := reg[i][s-1]
			a := at(i-1, s)
			c := at(i-1, s-w)

			if cl, skip := orClause(cur, a, litRef(x)); !skip {
				clauses.AddClause(cl)
			}
			if cl, skip := orClause(cur, a, c); !skip {
				clauses.AddClause(cl)
			}

			addImplies(clauses, a, cur)
			addConjImplies(clauses, x, c, cur)
		}
	}

	if lo > 0 {
		r := at(n, lo)
		if r.isConst {
			if !r.constVal {
				return forceUnsat(clauses, nextVar)
			}
		} else {
			clauses.Add(r.lit)
		}
	}

	r := at(n, hi+1)
	if r.isConst {
		if r.constVal {
			return forceUnsat(clauses, nextVar)
		}
	} else {
		clauses.Add(-r.lit)
	}

	return nextVar
}

// forceUnsat allocates a fresh variable and asserts both its polarities,
// making the surrounding formula unsatisfiable. Used only for the
// degenerate cases where the bounds are unsatisfiable independent of any
// literal's value (e.g. lo exceeds the maximum possible weighted sum).
func forceUnsat(clauses *lib.ClauseBuffer, nextVar int) int {
	v := nextVar
	nextVar++
	clauses.Add(v)
	clauses.Add(-v)
	return nextVar
}
