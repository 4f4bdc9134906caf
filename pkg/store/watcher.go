package store

import (
	"reflect"

	"github.com/go-drift/tide/pkg/equality"
	"github.com/go-drift/tide/pkg/errors"
)

// Watcher binds one selector to one consumption site and caches the
// last computed selection. Re-reading an unchanged slice of state
// returns the previous reference, so a host that skips re-renders on
// reference equality stays idle.
//
// Create one Watcher per call site with [Watch] and keep it for the
// site's lifetime, the way a controller lives in a widget state. The
// selector reference is part of the cache key: keep it stable across
// reads, and go through [Watcher.Rebind] when the site legitimately
// switches stores or selectors.
//
// Watcher is NOT thread-safe; it lives on the UI thread with its
// store.
type Watcher[T, S any] struct {
	store       *Store[T]
	selector    func(T) S
	selectorKey uintptr
	cached      S
	primed      bool
	subscribe   func(func()) func()
	snapshot    func() S

	// Debug, when set, receives the selection after every successful
	// snapshot read. Intended for inspection tooling; leave nil in
	// production paths.
	Debug func(S)
}

// Watch creates a watcher for the (store, selector) pairing. A nil
// selector is the documented "no selection" mode: the watcher never
// invokes a selector and every snapshot yields the zero value of S.
func Watch[T, S any](store *Store[T], selector func(T) S) *Watcher[T, S] {
	w := &Watcher[T, S]{}
	w.bind(store, selector)
	return w
}

func (w *Watcher[T, S]) bind(store *Store[T], selector func(T) S) {
	w.store = store
	w.selector = selector
	w.selectorKey = selectorKey(selector)
	var zero S
	w.cached = zero
	w.primed = false
	w.subscribe = store.Subscribe
	if selector == nil {
		w.snapshot = w.sentinel
	} else {
		w.snapshot = w.read
	}
}

// Rebind points the watcher at a new (store, selector) pairing. When
// the pairing is unchanged this is a no-op and the cached selection
// survives; a changed pairing discards the cache entirely rather than
// patching it. Rebind never recreates the cache on an unchanged
// pairing, which is what keeps repeated reads cheap.
//
// Selector identity is the function's code pointer. Closures built
// from the same literal share one, so a call site that varies only
// captured values must Rebind through a distinct function value or
// recreate the watcher.
func (w *Watcher[T, S]) Rebind(store *Store[T], selector func(T) S) {
	if w.store == store && w.selectorKey == selectorKey(selector) {
		return
	}
	w.bind(store, selector)
}

// Use returns the current selection together with the store handle, so
// one call both reads derived data and keeps write access.
func (w *Watcher[T, S]) Use() (S, *Store[T]) {
	return w.snapshot(), w.store
}

// read evaluates the selector and collapses a shallow-equal
// recomputation back to the cached reference. The cache is written
// only after the selector returns, so a panicking selector leaves the
// last good selection in place.
func (w *Watcher[T, S]) read() S {
	next := w.selector(w.store.Get())
	if w.primed && equality.ShallowEqual(w.cached, next) {
		next = w.cached
	} else {
		w.cached = next
		w.primed = true
	}
	if w.Debug != nil {
		w.debugNotify(next)
	}
	return next
}

// sentinel is the snapshot function for the nil-selector mode.
func (w *Watcher[T, S]) sentinel() S {
	var zero S
	if w.Debug != nil {
		w.debugNotify(zero)
	}
	return zero
}

// debugNotify isolates panics in the Debug hook. A broken inspection
// hook is reported, never allowed to fail a snapshot read.
func (w *Watcher[T, S]) debugNotify(sel S) {
	defer errors.Recover("store.Watcher.Debug")
	w.Debug(sel)
}

func selectorKey[T, S any](selector func(T) S) uintptr {
	if selector == nil {
		return 0
	}
	return reflect.ValueOf(selector).Pointer()
}
