package store

import "sync"

// Notifier broadcasts value-less events to its listeners. Unlike
// [Observable], it holds no value; unlike [Store], it carries no
// state at all. Notifier is safe for concurrent use.
type Notifier struct {
	mu        sync.Mutex
	listeners map[int]func()
	nextID    int
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{listeners: make(map[int]func())}
}

// AddListener registers a callback fired on every Notify. It returns
// an idempotent unsubscribe function.
func (n *Notifier) AddListener(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	n.mu.Unlock()
	return func() {
		n.mu.Lock()
		delete(n.listeners, id)
		n.mu.Unlock()
	}
}

// Notify invokes every registered listener. Listeners run outside the
// notifier's lock, so they may add or remove registrations freely.
func (n *Notifier) Notify() {
	n.mu.Lock()
	snapshot := make([]func(), 0, len(n.listeners))
	for _, fn := range n.listeners {
		snapshot = append(snapshot, fn)
	}
	n.mu.Unlock()
	for _, fn := range snapshot {
		fn()
	}
}

// ListenerCount returns the number of active registrations.
func (n *Notifier) ListenerCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners)
}
