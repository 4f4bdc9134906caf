package store

import "sync"

// Observable holds a value and notifies listeners when it changes.
// It is safe for concurrent use and can be shared across goroutines,
// unlike [Store], which belongs to the UI thread.
type Observable[T any] struct {
	mu        sync.Mutex
	value     T
	equals    func(a, b T) bool
	listeners map[int]func(T)
	nextID    int
}

// NewObservable creates an observable with an initial value. Every Set
// notifies listeners.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{
		value:     initial,
		listeners: make(map[int]func(T)),
	}
}

// NewObservableWithEquality creates an observable that skips
// notification when equals reports the new value equal to the current
// one. Useful to gate updates on the part of a value that matters:
//
//	user := store.NewObservableWithEquality(User{ID: 1}, func(a, b User) bool {
//	    return a.ID == b.ID
//	})
func NewObservableWithEquality[T any](initial T, equals func(a, b T) bool) *Observable[T] {
	return &Observable[T]{
		value:     initial,
		equals:    equals,
		listeners: make(map[int]func(T)),
	}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set stores a new value and notifies listeners. With an equality
// function installed, a value equal to the current one is dropped
// without notification.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	if o.equals != nil && o.equals(o.value, value) {
		o.mu.Unlock()
		return
	}
	o.value = value
	snapshot := make([]func(T), 0, len(o.listeners))
	for _, fn := range o.listeners {
		snapshot = append(snapshot, fn)
	}
	o.mu.Unlock()

	for _, fn := range snapshot {
		fn(value)
	}
}

// AddListener registers a callback that receives each new value. It
// returns an idempotent unsubscribe function.
func (o *Observable[T]) AddListener(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}
	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.listeners[id] = fn
	o.mu.Unlock()
	return func() {
		o.mu.Lock()
		delete(o.listeners, id)
		o.mu.Unlock()
	}
}

// ListenerCount returns the number of active registrations.
func (o *Observable[T]) ListenerCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.listeners)
}
