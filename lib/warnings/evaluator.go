// Package warnings implements the online, non-SAT invariant checker: for
// each known constraint kind, a local rule re-examines the current digit
// map and flags cells that violate it. It is an independent code path
// from lib/constraints — a different realization of the same constraint
// semantics, used by the editor rather than the solver (§4.6).
package warnings

import "github.com/eftil/sudoku-variant-core/lib"

// Bitset is the cell-warning set the evaluator produces. A fresh Bitset
// is built on every Evaluate call; nothing accumulates across calls, per
// §5's resource policy ("the warning bitset is owned by the caller and
// replaced wholesale each evaluation").
type Bitset struct {
	flagged map[int]bool
}

func newBitset() *Bitset { return &Bitset{flagged: make(map[int]bool)} }

func (b *Bitset) flag(cellIdx int) { b.flagged[cellIdx] = true }

// IsFlagged reports whether cellIdx currently violates some constraint.
func (b *Bitset) IsFlagged(cellIdx int) bool { return b.flagged[cellIdx] }

// Cells returns the flagged cell indices. Order is not meaningful.
func (b *Bitset) Cells() []int {
	out := make([]int, 0, len(b.flagged))
	for c := range b.flagged {
		out = append(out, c)
	}
	return out
}

// Len reports how many cells are currently flagged.
func (b *Bitset) Len() int { return len(b.flagged) }

// LockoutDelta is the minimum required difference between a lockout
// line's two circles, exposed as a function of N rather than a
// hard-coded literal 4, per the lockout-delta REDESIGN FLAG.
func LockoutDelta(n int) int { return ((n + 1) >> 1) - 1 }

// Evaluate recomputes every local rule against the current digit map and
// returns the resulting cell-warning set.
func Evaluate(board *lib.Board, digits *lib.DigitMap) *Bitset {
	b := newBitset()
	n := board.Size()
	for _, e := range board.Elements {
		switch e.Kind {
		case lib.KindThermo:
			for _, line := range e.Lines {
				evalThermo(line, digits, false, b)
			}
		case lib.KindSlowThermo:
			for _, line := range e.Lines {
				evalThermo(line, digits, true, b)
			}
		case lib.KindBetween:
			for _, line := range e.Lines {
				evalBetween(line, digits, b)
			}
		case lib.KindDoubleArrow:
			for _, line := range e.Lines {
				evalDoubleArrow(line, digits, b)
			}
		case lib.KindLockout:
			for _, line := range e.Lines {
				evalLockout(line, digits, n, b)
			}
		case lib.KindPalindrome:
			for _, line := range e.Lines {
				evalPalindrome(line, digits, b)
			}
		case lib.KindWhisper:
			for _, line := range e.Lines {
				evalWhisper(line, digits, whisperDeltaN(n), b)
			}
		case lib.KindDutchWhisper:
			for _, line := range e.Lines {
				evalWhisper(line, digits, dutchWhisperDeltaN(n), b)
			}
		case lib.KindRenban:
			for _, line := range e.Lines {
				evalRenban(line, digits, b)
			}
		}
	}
	return b
}
