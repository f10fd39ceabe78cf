// Package observer provides a small publish/subscribe mechanism used to
// wire board mutations to warning recomputation. It is adapted from the
// teacher's cell-event observer (which propagated candidate eliminations
// through the interactive solving engine): the event vocabulary here is
// just "a cell's digit changed", because the CNF core has no candidate
// state to propagate — only the warning evaluator cares about mutation
// events, and it always reruns its rules from scratch (see
// lib/warnings.Evaluate).
package observer

// BoardObserver is notified whenever a cell's digit is set or cleared on
// an ObservedDigitMap.
type BoardObserver interface {
	OnDigitChanged(row, col, value int)
}

// Notifier manages a list of BoardObservers and fans a digit change out
// to all of them.
type Notifier struct {
	observers []BoardObserver
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// AddObserver registers an observer. A nil observer is ignored.
func (n *Notifier) AddObserver(obs BoardObserver) {
	if obs == nil {
		return
	}
	n.observers = append(n.observers, obs)
}

// RemoveObserver unregisters a previously added observer.
func (n *Notifier) RemoveObserver(obs BoardObserver) {
	for i, o := range n.observers {
		if o == obs {
			n.observers = append(n.observers[:i], n.observers[i+1:]...)
			return
		}
	}
}

// NotifyDigitChanged fans a digit change out to every registered observer.
func (n *Notifier) NotifyDigitChanged(row, col, value int) {
	for _, obs := range n.observers {
		obs.OnDigitChanged(row, col, value)
	}
}

// HasObservers reports whether any observer is currently registered.
func (n *Notifier) HasObservers() bool {
	return len(n.observers) > 0
}
