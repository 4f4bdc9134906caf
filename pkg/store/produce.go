package store

// Producer turns a draft-mutation function into the next state value.
// It must leave current untouched and return the state to commit.
type Producer[T any] func(current T, mutator func(draft *T)) T

// produceValue is the default producer: copy the state, let the
// mutator work on the copy, commit the copy. Reference-typed fields
// the mutator does not reassign keep pointing at the previous state's
// cells, which is exactly the structural sharing the watcher's
// identity comparison relies on. Mutators must therefore replace
// shared maps and slices rather than writing into them; installing a
// deep-cloning producer lifts that restriction.
func produceValue[T any](current T, mutator func(draft *T)) T {
	draft := current
	mutator(&draft)
	return draft
}
