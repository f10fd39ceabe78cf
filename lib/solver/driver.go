package solver

import (
	"context"
	"errors"
	"time"

	"github.com/eftil/sudoku-variant-core/lib"
	"github.com/eftil/sudoku-variant-core/lib/logger"
	"github.com/eftil/sudoku-variant-core/lib/utils"
)

// ErrInvalidModel is returned when the solver reports two true digits in
// the same cell — an internal invariant violation, never a user-facing
// condition (§7, error kind 3).
var ErrInvalidModel = errors.New("solver: invalid model, two digits true in one cell")

// defaultSliceBudget is the soft per-call time budget §4.5 asks for. The
// real solve call below isn't actually preemptible mid-Solve() — see
// DESIGN.md — so this mostly bounds how long a single Undef retry takes
// to surface, not how long Solve() itself may run.
const defaultSliceBudget = 100 * time.Millisecond

// Solution is a decoded model: cellIdx -> digit (1..N).
type Solution map[int]int

// OnSolution is called once per decoded solution, then once more with a
// nil map on normal completion, matching §6.3's onSolutionOrComplete.
type OnSolution func(Solution)

// Factory builds a fresh CNFSolver instance. Production callers pass New;
// tests pass a factory returning a mock so they can assert on Free call
// counts.
type Factory func() CNFSolver

// Drive runs the solver driver state machine from §4.5: load, time-sliced
// solve loop emitting a blocking clause after each solution, up to
// maxSolutions, then a completion sentinel — unless ctx is cancelled
// first, in which case no sentinel is sent and completed is false. The
// solver handle is released on every exit path, including cancellation
// and a decode error.
//
// gophersat has no incremental "add one more clause" API once a Problem
// is built, so each new blocking clause triggers a fresh Load over the
// full clause set rather than true incremental solving — a documented
// simplification, not the spec's literal state machine (see DESIGN.md).
func Drive(ctx context.Context, factory Factory, n, nextVar int, clauses []lib.Clause, maxSolutions int, onSolution OnSolution) (completed bool, err error) {
	if ctx.Err() != nil {
		return false, nil
	}

	sv := factory()
	defer func() { sv.Free() }()

	numVars := nextVar - 1
	sv.Load(numVars, clauses)
	logger.Debug("solver: loaded %d clauses over %d variables", len(clauses), numVars)

	found := 0
	for found < maxSolutions {
		if ctx.Err() != nil {
			return false, nil
		}

		status := sv.Solve(defaultSliceBudget)
		for status == StatusUndef {
			if ctx.Err() != nil {
				return false, nil
			}
			status = sv.Solve(defaultSliceBudget)
		}

		if status == StatusUnsat {
			break
		}

		model := sv.Model()
		solution, trueLits, decodeErr := decodeModel(model, n)
		if decodeErr != nil {
			return false, decodeErr
		}

		onSolution(solution)
		found++
		if found >= maxSolutions {
			break
		}

		blocking := make(lib.Clause, 0, len(trueLits))
		for _, l := range trueLits {
			blocking = append(blocking, -l)
		}
		clauses = append(clauses, blocking)

		sv.Free()
		sv = factory()
		sv.Load(numVars, clauses)
	}

	if ctx.Err() != nil {
		return false, nil
	}
	onSolution(nil)
	return true, nil
}

// decodeModel reads every (r, c, v) with lit(r,c,v) true out of model and
// builds a cellIdx -> digit solution, along with the list of true base
// literals (for the caller to turn into a blocking clause). It is an
// internal error if two digits come up true for the same cell.
func decodeModel(model []bool, n int) (Solution, []int, error) {
	solution := make(Solution)
	var trueLits []int
	maxBase := lib.BaseVarCount(n)
	for i, set := range model {
		if !set {
			continue
		}
		l := i + 1
		if l > maxBase {
			continue
		}
		r, c, v := lib.InverseLit(l, n)
		cellIdx := utils.RowColToIndex(r, c, n)
		if _, already := solution[cellIdx]; already {
			return nil, nil, ErrInvalidModel
		}
		solution[cellIdx] = v + 1
		trueLits = append(trueLits, l)
	}
	return solution, trueLits, nil
}
