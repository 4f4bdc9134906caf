package store

import "github.com/go-drift/tide/pkg/equality"

// React runs fn after every write whose selected slice actually
// changed, passing the previous and the new selection. The selector
// is evaluated once immediately to seed the comparison; fn first runs
// on the next effective change.
//
// The returned stop function removes the reaction and is idempotent.
func React[T, S any](store *Store[T], selector func(T) S, fn func(prev, next S)) (stop func()) {
	if selector == nil || fn == nil {
		return func() {}
	}
	prev := selector(store.Get())
	return store.Subscribe(func() {
		next := selector(store.Get())
		if equality.ShallowEqual(prev, next) {
			return
		}
		old := prev
		prev = next
		fn(old, next)
	})
}
