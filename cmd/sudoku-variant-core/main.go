package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	core "github.com/eftil/sudoku-variant-core"
	"github.com/eftil/sudoku-variant-core/lib"
	"github.com/eftil/sudoku-variant-core/lib/logger"
	"github.com/eftil/sudoku-variant-core/lib/solver"
)

func main() {
	maxSolutions := flag.Int("max-solutions", 2, "stop after this many solutions")
	timeBudget := flag.Duration("time-budget", 5*time.Second, "overall wall-clock budget for the solve")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		logger.SetLevel(logger.DEBUG)
	} else {
		logger.SetLevel(logger.INFO)
	}
	logger.SetOutput(os.Stdout)

	fmt.Println("=== Sudoku Variant Core - Board-to-CNF Demo ===")

	board := lib.NewBoard(9)
	board.AddElement(lib.Element{ID: "grid", Kind: lib.KindGrid})
	board.AddElement(lib.Element{ID: "box", Kind: lib.KindBox})
	board.AddElement(lib.Element{ID: "thermo-1", Kind: lib.KindThermo, Lines: map[string][]int{"t": {0, 1, 2}}})
	board.AddElement(lib.Element{
		// diagIdx 0 on a 9x9 board is the single-cell falling diagonal
		// (0,8); a target sum of 6 is within that cell's 1..9 range,
		// unlike an 8-cell diagonal (whose minimum possible sum is at
		// least 8).
		ID:   "little-killer-1",
		Kind: lib.KindLittleKiller,
		Sums: map[string]int{"0": 6},
	})

	if msg := core.CantAttempt(board); msg != "" {
		logger.Fatal("board rejected at feasibility gate: %s", msg)
	}
	fmt.Println("✓ Board accepted by the feasibility gate")

	runWarningDemo(board)

	ctx, cancel := context.WithTimeout(context.Background(), *timeBudget)
	defer cancel()

	count := 0
	completed, err := core.Solve(ctx, board, *maxSolutions, func(sol solver.Solution) {
		if sol == nil {
			fmt.Println("-- completion sentinel --")
			return
		}
		count++
		fmt.Printf("solution %d: %s\n", count, formatSolution(sol, board.Size()))
	})
	if err != nil {
		logger.Fatal("solve failed: %v", err)
	}

	if completed {
		fmt.Printf("\n✓ Solve completed, %d solution(s) reported\n", count)
	} else {
		fmt.Println("\n✗ Solve was cancelled before completion")
	}
}

// warningObserver recomputes the board's warning set after every edit,
// realizing §4.6's "the warning evaluator is called after every board
// mutation" contract over an ObservedDigitMap edit loop.
type warningObserver struct {
	board  *lib.Board
	digits *lib.ObservedDigitMap
}

func (w *warningObserver) OnDigitChanged(row, col, value int) {
	bitset := core.EvaluateWarnings(w.board, w.digits.DigitMap)
	if bitset.Len() == 0 {
		logger.Info("edit (%d,%d)=%d: no warnings", row+1, col+1, value)
		return
	}
	logger.Warn("edit (%d,%d)=%d: %d cell(s) flagged: %v", row+1, col+1, value, bitset.Len(), bitset.Cells())
}

// runWarningDemo drives a short edit sequence over the board's thermo
// line through an ObservedDigitMap, showing the warning evaluator
// recomputing on each mutation rather than just once at the end.
func runWarningDemo(board *lib.Board) {
	fmt.Println("\n-- live-edit warning demo (thermo line r1c1-r1c2-r1c3) --")
	digits := lib.NewObservedDigitMap(board.Size())
	digits.AddObserver(&warningObserver{board: board, digits: digits})

	digits.SetAndNotify(0, 0, 3)
	digits.SetAndNotify(0, 1, 5)
	digits.SetAndNotify(0, 2, 5) // violates strict increase: 5 is not > 5
}

func formatSolution(sol solver.Solution, n int) string {
	out := ""
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			out += fmt.Sprintf("%d", sol[row*n+col])
		}
		if row+1 < n {
			out += "/"
		}
	}
	return out
}
