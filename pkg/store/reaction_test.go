package store

import "testing"

type sessionState struct {
	UserID int
	Pings  int
}

func TestReactFiresOnSelectedChange(t *testing.T) {
	s := New(sessionState{UserID: 1})

	var transitions [][2]int
	stop := React(s, func(st sessionState) int { return st.UserID }, func(prev, next int) {
		transitions = append(transitions, [2]int{prev, next})
	})
	defer stop()

	s.Update(func(draft *sessionState) { draft.UserID = 2 })

	if len(transitions) != 1 || transitions[0] != [2]int{1, 2} {
		t.Errorf("reaction saw %v, want [[1 2]]", transitions)
	}
}

func TestReactIgnoresUnrelatedWrites(t *testing.T) {
	s := New(sessionState{UserID: 1})

	fired := 0
	stop := React(s, func(st sessionState) int { return st.UserID }, func(int, int) { fired++ })
	defer stop()

	s.Update(func(draft *sessionState) { draft.Pings++ })
	s.Update(func(draft *sessionState) { draft.Pings++ })

	if fired != 0 {
		t.Errorf("reaction fired %d times on unrelated writes, want 0", fired)
	}
}

func TestReactStop(t *testing.T) {
	s := New(sessionState{UserID: 1})

	fired := 0
	stop := React(s, func(st sessionState) int { return st.UserID }, func(int, int) { fired++ })

	s.Update(func(draft *sessionState) { draft.UserID = 2 })
	stop()
	stop()
	s.Update(func(draft *sessionState) { draft.UserID = 3 })

	if fired != 1 {
		t.Errorf("reaction fired %d times after stop, want 1", fired)
	}
}

func TestReactNilArguments(t *testing.T) {
	s := New(sessionState{})

	stop := React[sessionState, int](s, nil, nil)
	stop()

	s.Update(func(draft *sessionState) { draft.UserID = 1 })
}
