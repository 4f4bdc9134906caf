package store

import "testing"

type cartState struct {
	Items []string
	Tax   int
}

func TestDeriveComputesImmediately(t *testing.T) {
	s := New(cartState{Items: []string{"a", "b"}})
	count := Derive(s, func(st cartState) int { return len(st.Items) })
	defer count.Dispose()

	if got := count.Get(); got != 2 {
		t.Errorf("Get() = %d, want 2", got)
	}
}

func TestDeriveTracksSource(t *testing.T) {
	s := New(cartState{})
	count := Derive(s, func(st cartState) int { return len(st.Items) })
	defer count.Dispose()

	s.Update(func(draft *cartState) {
		draft.Items = append(draft.Items, "a")
	})

	if got := count.Get(); got != 1 {
		t.Errorf("Get() after source write = %d, want 1", got)
	}
}

func TestDeriveNotifiesOnlyOnChange(t *testing.T) {
	s := New(cartState{Items: []string{"a"}})
	count := Derive(s, func(st cartState) int { return len(st.Items) })
	defer count.Dispose()

	notified := 0
	unsub := count.Subscribe(func() { notified++ })
	defer unsub()

	// Tax changes do not affect the item count: the source notifies,
	// the derived store stays quiet.
	s.Update(func(draft *cartState) { draft.Tax = 7 })
	if notified != 0 {
		t.Errorf("derived store notified %d times on an irrelevant write, want 0", notified)
	}

	s.Update(func(draft *cartState) {
		draft.Items = append(draft.Items, "b")
	})
	if notified != 1 {
		t.Errorf("derived store notified %d times on a relevant write, want 1", notified)
	}
}

func TestDeriveChains(t *testing.T) {
	s := New(cartState{Items: []string{"a", "b", "c"}})
	count := Derive(s, func(st cartState) int { return len(st.Items) })
	defer count.Dispose()

	even := Derive(count, func(n int) bool { return n%2 == 0 })
	defer even.Dispose()

	if even.Get() {
		t.Error("3 items should not be even")
	}

	s.Update(func(draft *cartState) {
		draft.Items = append(draft.Items, "d")
	})

	if !even.Get() {
		t.Error("4 items should be even")
	}
}

func TestDeriveDispose(t *testing.T) {
	s := New(cartState{Items: []string{"a"}})
	count := Derive(s, func(st cartState) int { return len(st.Items) })

	count.Dispose()
	count.Dispose()

	s.Update(func(draft *cartState) {
		draft.Items = append(draft.Items, "b")
	})

	if got := count.Get(); got != 1 {
		t.Errorf("disposed derived store updated to %d, want the last value 1", got)
	}
	if s.ListenerCount() != 0 {
		t.Errorf("source still has %d listeners after Dispose, want 0", s.ListenerCount())
	}
}
