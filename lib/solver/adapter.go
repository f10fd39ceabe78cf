// Package solver owns the SAT solver handle's lifetime: the adapter
// wrapping the real solver library, and the driver loop that runs
// time-sliced solve calls, decodes models, and emits blocking clauses for
// solution enumeration (§4.5).
package solver

import (
	"time"

	gophersat "github.com/crillab/gophersat/solver"

	"github.com/eftil/sudoku-variant-core/lib"
)

// Status mirrors the solver's own three-valued result.
type Status int

const (
	StatusUnsat Status = iota
	StatusSat
	StatusUndef
)

// CNFSolver is the narrow interface the driver depends on, realizing the
// distilled spec's §6.1 external solver adapter (new/declareVars/
// addClause/setMaxTime/solve/getModel/free collapsed into Load/Solve/
// Model/Free, since the Go binding to the real library ingests a whole
// clause set at once rather than one addClause call per clause). A mock
// implementation stands in for this in the driver's tests, including the
// release-on-cancel property (§8 scenario 6).
type CNFSolver interface {
	// Load declares numVars variables and ingests clauses.
	Load(numVars int, clauses []lib.Clause)
	// Solve runs one attempt, returning Undef if budget elapses first.
	Solve(budget time.Duration) Status
	// Model returns the current variable assignment; valid only after a
	// Sat result. Index i holds variable i+1's truth value.
	Model() []bool
	// Free releases the solver handle. Safe to call more than once.
	Free()
}

// gophersatSolver backs CNFSolver with github.com/crillab/gophersat's
// solver subpackage.
type gophersatSolver struct {
	inner *gophersat.Solver
}

// New constructs an unloaded adapter backed by gophersat. Load must be
// called before Solve or Model.
func New() CNFSolver {
	return &gophersatSolver{}
}

// Load ingests clauses as plain signed-int DIMACS literals.
// gophersat.ParseSlice(cnf [][]int) (*Problem, error) performs the
// 2*(|L|-1)+negbit translation to its own internal Lit representation
// itself, so Load passes the literals through unchanged rather than
// pre-translating them (pre-translating would double-encode them).
// numVars is implied by the clause literals themselves and is not passed
// to ParseSlice separately; it is accepted here to keep CNFSolver's
// signature self-describing for callers and mocks.
func (g *gophersatSolver) Load(numVars int, clauses []lib.Clause) {
	raw := make([][]int, len(clauses))
	for i, c := range clauses {
		raw[i] = []int(c)
	}
	pb, err := gophersat.ParseSlice(raw)
	if err != nil {
		pb = &gophersat.Problem{Status: gophersat.Unsat}
	}
	g.inner = gophersat.New(pb)
}

func (g *gophersatSolver) Solve(budget time.Duration) Status {
	if g.inner == nil {
		return StatusUndef
	}
	done := make(chan gophersat.Status, 1)
	go func() {
		done <- g.inner.Solve()
	}()
	select {
	case st := <-done:
		return fromGopherStatus(st)
	case <-time.After(budget):
		return StatusUndef
	}
}

func (g *gophersatSolver) Model() []bool {
	if g.inner == nil {
		return nil
	}
	return g.inner.Model()
}

func (g *gophersatSolver) Free() {
	g.inner = nil
}

func fromGopherStatus(st gophersat.Status) Status {
	switch st {
	case gophersat.Sat:
		return StatusSat
	case gophersat.Unsat:
		return StatusUnsat
	default:
		return StatusUndef
	}
}
