package store

// Store owns one state value and fans out change notifications to its
// subscribers. The zero value is not usable; construct stores with
// [New]. Variants share this machinery by embedding *Store[T] and
// supplying only their state type and initial value:
//
//	type UIStore struct {
//	    *store.Store[UIState]
//	}
//
//	func NewUIStore() *UIStore {
//	    return &UIStore{store.New(UIState{Theme: "light"})}
//	}
//
// Store is NOT thread-safe. Reads and writes belong to the UI thread;
// dispatch onto it from background goroutines.
type Store[T any] struct {
	state     T
	producer  Producer[T]
	listeners map[int]func()
	nextID    int
}

// Option configures a Store at construction time.
type Option[T any] func(*Store[T])

// WithProducer installs the immutable-update engine used by Update and
// TryUpdate. The producer must be pure: it receives the current state
// and the mutator, and returns the next state without touching the
// current one.
func WithProducer[T any](p Producer[T]) Option[T] {
	return func(s *Store[T]) {
		if p != nil {
			s.producer = p
		}
	}
}

// New creates a store holding initial. The store is live until process
// teardown; there is no close operation.
func New[T any](initial T, opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		state:     initial,
		producer:  produceValue[T],
		listeners: make(map[int]func()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the most recently committed state.
func (s *Store[T]) Get() T {
	return s.state
}

// Set replaces the state wholesale and notifies every listener, even
// when the new state equals the old one. Suppressing no-op updates is
// the watcher's job, not the store's.
func (s *Store[T]) Set(state T) {
	s.state = state
	s.notify()
}

// Update computes the next state by running mutator against a draft of
// the current one, commits it, and notifies every listener. The new
// state is visible to Get before any listener runs.
func (s *Store[T]) Update(mutator func(draft *T)) {
	if mutator == nil {
		return
	}
	s.state = s.producer(s.state, mutator)
	s.notify()
}

// TryUpdate is Update for mutators that can fail. A non-nil error
// aborts the write: the state keeps its pre-call value, no listener
// fires, and the error is returned to the caller untouched.
func (s *Store[T]) TryUpdate(mutator func(draft *T) error) error {
	if mutator == nil {
		return nil
	}
	var err error
	next := s.producer(s.state, func(draft *T) {
		err = mutator(draft)
	})
	if err != nil {
		return err
	}
	s.state = next
	s.notify()
	return nil
}

// Subscribe registers a listener invoked after every write. It returns
// an unsubscribe function that is safe to call more than once; the
// second and later calls are no-ops.
//
// Each Subscribe call is its own registration: Go function values have
// no usable identity, so subscribing the same function twice yields
// two registrations with two independent unsubscribe functions.
func (s *Store[T]) Subscribe(listener func()) (unsubscribe func()) {
	if listener == nil {
		return func() {}
	}
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	return func() {
		delete(s.listeners, id)
	}
}

// ListenerCount returns the number of active registrations.
func (s *Store[T]) ListenerCount() int {
	return len(s.listeners)
}

// State returns the current state as a type-erased value, for
// registries and diagnostics.
func (s *Store[T]) State() any {
	return s.state
}

// notify invokes the listeners registered at the moment the write
// committed. Iterating a snapshot pins the fan-out set for this call:
// a listener that subscribes, unsubscribes, or writes reentrantly
// cannot skip or double-invoke its peers, and a nested write completes
// its own fan-out before the outer loop resumes. An unsubscribe during
// fan-out does not suppress a notification already in flight for that
// listener.
//
// Listener panics are not isolated: a panicking listener aborts the
// remaining notifications and propagates to the writer.
func (s *Store[T]) notify() {
	snapshot := make([]func(), 0, len(s.listeners))
	for _, listener := range s.listeners {
		snapshot = append(snapshot, listener)
	}
	for _, listener := range snapshot {
		listener()
	}
}
