// Package store provides shared application state for declarative UIs.
//
// A [Store] owns one immutable state value and a set of listeners.
// Writes replace the value wholesale and fan out a notification;
// readers are never exposed to a half-written value because nothing is
// mutated in place.
//
// # Stores
//
// Create a store with an initial value and read or write it from the
// UI thread:
//
//	type AppState struct {
//	    Count int
//	    Items []string
//	}
//
//	app := store.New(AppState{})
//
//	app.Update(func(draft *AppState) {
//	    draft.Count++
//	})
//
// Update hands the mutator a draft of the current state through the
// store's producer. The default producer copies the value, so fields
// the mutator leaves untouched keep referring to the previous state's
// cells. Install a custom producer with [WithProducer] to plug in a
// different immutable-update engine.
//
// # Watching a slice of state
//
// A [Watcher] binds one selector to one consumption site and memoizes
// the last selection, so a recomputation that is shallow-equal to the
// previous one returns the previous reference and the host rendering
// layer skips the re-render:
//
//	w := store.Watch(app, func(s AppState) []string { return s.Items })
//	items, app := w.Use()
//
// [Watcher.Contract] exposes the subscribe/snapshot hooks a host
// rendering layer polls to stay consistent with the store.
//
// # Reactive primitives
//
// [Notifier] broadcasts value-less events, [Observable] holds a
// thread-safe value with an optional equality gate, [Derived] computes
// a read-only slice from another store, and [React] runs a callback
// whenever a selected slice changes.
//
// # Threading
//
// Store, Watcher, Derived, and React are NOT thread-safe: they belong
// to the UI thread, matching the host's single-threaded build loop.
// Use the host's dispatch mechanism to write from a background
// goroutine. Notifier and Observable are safe for concurrent use.
package store
