package lib

import "github.com/eftil/sudoku-variant-core/lib/observer"

// ObservedDigitMap wraps a DigitMap with the observer.Notifier so callers
// editing a board's digits (the demo CLI, or a test driving the warning
// evaluator across an edit sequence) get a hook to recompute warnings
// after every mutation, per the distilled spec's §4.6: "called after
// every board mutation." The SAT solve path never uses this type — board
// snapshots are immutable for the duration of a solve.
type ObservedDigitMap struct {
	*DigitMap
	notifier *observer.Notifier
}

// NewObservedDigitMap creates an empty observed digit map for a board of
// side n.
func NewObservedDigitMap(n int) *ObservedDigitMap {
	return &ObservedDigitMap{
		DigitMap: NewDigitMap(n),
		notifier: observer.NewNotifier(),
	}
}

// AddObserver registers a BoardObserver to be notified on every future
// SetAndNotify call.
func (o *ObservedDigitMap) AddObserver(obs observer.BoardObserver) {
	o.notifier.AddObserver(obs)
}

// SetAndNotify sets (row, col) to value and notifies observers. Use 0 to
// clear a cell.
func (o *ObservedDigitMap) SetAndNotify(row, col, value int) {
	o.Set(row, col, value)
	o.notifier.NotifyDigitChanged(row, col, value)
}
