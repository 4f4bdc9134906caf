package store

import "github.com/go-drift/tide/pkg/equality"

// Derived is a read-only store computed from a source store through a
// transform. It re-notifies its own subscribers only when the
// transform's output shallow-changes, so chains of derived values stop
// propagating as soon as a write turns out not to matter.
//
// Derived lives on the UI thread with its source.
type Derived[S any] struct {
	value     S
	listeners map[int]func()
	nextID    int
	stop      func()
}

// Source is the read/subscribe surface Derive consumes. *Store[T] and
// *Derived[T] both provide it, so derived stores chain.
type Source[T any] interface {
	Get() T
	Subscribe(listener func()) (unsubscribe func())
}

// Derive creates a derived store over source. The transform runs once
// immediately and then after every source notification.
func Derive[T, S any](source Source[T], transform func(T) S) *Derived[S] {
	d := &Derived[S]{
		value:     transform(source.Get()),
		listeners: make(map[int]func()),
	}
	d.stop = source.Subscribe(func() {
		next := transform(source.Get())
		if equality.ShallowEqual(d.value, next) {
			return
		}
		d.value = next
		d.notify()
	})
	return d
}

// Get returns the current derived value.
func (d *Derived[S]) Get() S {
	return d.value
}

// Subscribe registers a listener invoked when the derived value
// changes. The returned unsubscribe function is idempotent.
func (d *Derived[S]) Subscribe(listener func()) (unsubscribe func()) {
	if listener == nil {
		return func() {}
	}
	id := d.nextID
	d.nextID++
	d.listeners[id] = listener
	return func() {
		delete(d.listeners, id)
	}
}

// Dispose detaches the derived store from its source. The last value
// stays readable; it just stops updating.
func (d *Derived[S]) Dispose() {
	if d.stop != nil {
		d.stop()
		d.stop = nil
	}
}

func (d *Derived[S]) notify() {
	snapshot := make([]func(), 0, len(d.listeners))
	for _, listener := range d.listeners {
		snapshot = append(snapshot, listener)
	}
	for _, listener := range snapshot {
		listener()
	}
}
