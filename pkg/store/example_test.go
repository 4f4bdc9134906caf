package store_test

import (
	"fmt"

	"github.com/go-drift/tide/pkg/store"
)

// This example shows the basic write/notify cycle of a Store.
func ExampleNew() {
	type CounterState struct {
		Count int
	}

	counter := store.New(CounterState{})

	unsub := counter.Subscribe(func() {
		fmt.Printf("count is now %d\n", counter.Get().Count)
	})
	defer unsub()

	counter.Update(func(draft *CounterState) {
		draft.Count++
	})

	// Output:
	// count is now 1
}

// This example shows how a watcher keeps a selection reference-stable
// while unrelated parts of the state change.
func ExampleWatch() {
	type AppState struct {
		Theme string
		Items []string
	}

	app := store.New(AppState{Items: []string{"inbox", "sent"}})
	w := store.Watch(app, func(s AppState) []string { return s.Items })

	before, _ := w.Use()

	// Only the theme changes; the items slice keeps its identity.
	app.Update(func(draft *AppState) { draft.Theme = "dark" })

	after, handle := w.Use()
	fmt.Println("same reference:", &before[0] == &after[0])
	fmt.Println("store handle still writable:", handle == app)

	// Output:
	// same reference: true
	// store handle still writable: true
}

// This example shows a reaction running only when the selected slice
// of state changes.
func ExampleReact() {
	type SessionState struct {
		UserID int
		Pings  int
	}

	session := store.New(SessionState{UserID: 1})

	stop := store.React(session, func(s SessionState) int { return s.UserID }, func(prev, next int) {
		fmt.Printf("user changed: %d -> %d\n", prev, next)
	})
	defer stop()

	// Pings are not selected; nothing fires.
	session.Update(func(draft *SessionState) { draft.Pings++ })
	session.Update(func(draft *SessionState) { draft.UserID = 2 })

	// Output:
	// user changed: 1 -> 2
}

// This example shows an Observable with a custom equality function
// gating notifications.
func ExampleNewObservableWithEquality() {
	type User struct {
		ID   int
		Name string
	}

	user := store.NewObservableWithEquality(User{ID: 1, Name: "Alice"}, func(a, b User) bool {
		return a.ID == b.ID
	})

	user.AddListener(func(u User) {
		fmt.Printf("user changed: %s\n", u.Name)
	})

	// Same ID: dropped.
	user.Set(User{ID: 1, Name: "Alice Updated"})
	// New ID: notified.
	user.Set(User{ID: 2, Name: "Bob"})

	// Output:
	// user changed: Bob
}

// This example shows the Notifier type for value-less events.
func ExampleNotifier() {
	refresh := store.NewNotifier()

	unsub := refresh.AddListener(func() {
		fmt.Println("refresh triggered")
	})
	defer unsub()

	refresh.Notify()

	// Output:
	// refresh triggered
}

// This example shows a derived store that stays quiet while its
// computed value is unchanged.
func ExampleDerive() {
	type CartState struct {
		Items []string
		Tax   int
	}

	cart := store.New(CartState{Items: []string{"apple"}})
	count := store.Derive(cart, func(s CartState) int { return len(s.Items) })
	defer count.Dispose()

	count.Subscribe(func() {
		fmt.Printf("item count: %d\n", count.Get())
	})

	// Tax does not affect the count; no notification.
	cart.Update(func(draft *CartState) { draft.Tax = 20 })
	cart.Update(func(draft *CartState) {
		draft.Items = append(draft.Items, "pear")
	})

	// Output:
	// item count: 2
}
