// Package core is the public facade over the board-to-CNF compiler and
// solution enumerator: the feasibility gate, the solver driver, and the
// warning evaluator, wired together the way §6.3's Core API describes.
package core

import (
	"context"

	"github.com/eftil/sudoku-variant-core/lib"
	"github.com/eftil/sudoku-variant-core/lib/constraints"
	"github.com/eftil/sudoku-variant-core/lib/solver"
	"github.com/eftil/sudoku-variant-core/lib/warnings"
)

// CantAttempt is the feasibility gate's public entry point: a non-empty
// string rejects the board before any encoding work starts (§4.4).
func CantAttempt(board *lib.Board) string {
	return lib.CantAttempt(board)
}

// Solve compiles board to CNF and drives up to maxSolutions solutions
// through onSolutionOrComplete, which is called once per solution and
// once more with a nil map on normal completion. The returned bool is
// true only on a complete run (including UNSAT with zero solutions);
// false on cancellation. ctx is checked before encoding starts and at
// every solver time-slice boundary (§5).
func Solve(ctx context.Context, board *lib.Board, maxSolutions int, onSolutionOrComplete func(solver.Solution)) (bool, error) {
	if msg := lib.CantAttempt(board); msg != "" {
		return false, &lib.BoardError{Message: msg}
	}
	if ctx.Err() != nil {
		return false, nil
	}

	n := board.Size()
	clauses := &lib.ClauseBuffer{}
	nextVar := constraints.EncodeBoard(board, clauses, lib.BaseVarCount(n)+1)

	return solver.Drive(ctx, solver.New, n, nextVar, clauses.Clauses(), maxSolutions, onSolutionOrComplete)
}

// EvaluateWarnings re-examines digits against every local rule known to
// board's elements and returns the resulting cell-warning set (§4.6).
func EvaluateWarnings(board *lib.Board, digits *lib.DigitMap) *warnings.Bitset {
	return warnings.Evaluate(board, digits)
}
