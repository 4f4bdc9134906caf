package store

// Contract is the external-synchronization contract a host rendering
// layer consumes to stay consistent with a store: subscribe to learn
// that something changed, snapshot to read the current selection, and
// a server snapshot for the host's initial synchronous read.
//
// GetSnapshot and GetServerSnapshot are the same function value when
// produced by [Watcher.Contract]; hosts that compare hook identity to
// detect hydration mismatches see a single stable reference.
type Contract[S any] struct {
	// Subscribe registers a change callback and returns its
	// unsubscribe function.
	Subscribe func(listener func()) (unsubscribe func())

	// GetSnapshot returns the current selection.
	GetSnapshot func() S

	// GetServerSnapshot returns the selection for the initial
	// synchronous read.
	GetServerSnapshot func() S
}

// Contract returns the three hooks for this watcher's site. The
// subscribe hook is the store's Subscribe method, and both snapshot
// hooks are one stable function value, so repeated Contract calls on
// an unchanged pairing hand the host identical hooks and never reset
// its subscription.
func (w *Watcher[T, S]) Contract() Contract[S] {
	return Contract[S]{
		Subscribe:         w.subscribe,
		GetSnapshot:       w.snapshot,
		GetServerSnapshot: w.snapshot,
	}
}
