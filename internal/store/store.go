// Package store holds the game session behind a single mutex boundary.
// Every mutation replaces the whole Session value; observers are notified
// through the event dispatcher after the lock is released.
package store

import (
	"log"
	"sync"

	"go-keyhunt/internal/component"
	"go-keyhunt/internal/event"
)

type Store struct {
	mu         sync.Mutex
	session    component.Session
	dispatcher *event.Dispatcher
}

func New(initial component.Session, dispatcher *event.Dispatcher) *Store {
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	return &Store{session: initial, dispatcher: dispatcher}
}

func (st *Store) Dispatcher() *event.Dispatcher {
	return st.dispatcher
}

// Snapshot returns the current session. Slices inside are never mutated in
// place, so the value is safe to read after the call.
func (st *Store) Snapshot() component.Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.session
}

func (st *Store) Phase() component.GamePhase {
	return st.Snapshot().Phase
}

// Update applies fn atomically and dispatches the events derived from the
// difference between the old and new session.
func (st *Store) Update(fn func(s component.Session) component.Session) component.Session {
	next, _ := st.apply(func(s component.Session) (component.Session, []event.Event) {
		return fn(s), nil
	})
	return next
}

// apply — общая точка мутации: fn под блокировкой, события после неё.
func (st *Store) apply(fn func(s component.Session) (component.Session, []event.Event)) (component.Session, []event.Event) {
	st.mu.Lock()
	prev := st.session
	next, extra := fn(prev)
	st.session = next
	st.mu.Unlock()

	events := append(extra, diff(prev, next)...)
	for _, e := range events {
		st.dispatcher.Dispatch(e)
	}
	return next, events
}

func diff(prev, next component.Session) []event.Event {
	var out []event.Event
	if prev.StageID != next.StageID {
		out = append(out, event.Event{Type: event.StageChanged, Data: next.StageID})
	}
	if prev.Phase != next.Phase {
		log.Printf("store: phase %s -> %s", prev.Phase, next.Phase)
		out = append(out, event.Event{
			Type: event.PhaseChanged,
			Data: event.PhaseChange{From: prev.Phase, To: next.Phase},
		})
	}
	if prev.Death == nil && next.Death != nil {
		if next.IsClear {
			out = append(out, event.Event{Type: event.GameCleared, Data: *next.Death})
		} else {
			out = append(out, event.Event{Type: event.PlayerDied, Data: *next.Death})
		}
	}
	if next.KeysCollected > prev.KeysCollected {
		out = append(out, event.Event{
			Type: event.KeyCollected,
			Data: event.KeyProgress{Collected: next.KeysCollected, Total: next.TotalKeys},
		})
	}
	if next.ItemResetTrigger > prev.ItemResetTrigger {
		out = append(out, event.Event{Type: event.ItemReset, Data: next.ItemResetTrigger})
	}
	if next.RespawnToken > prev.RespawnToken {
		out = append(out, event.Event{Type: event.RespawnRequested, Data: next.RespawnToken})
	}
	if next.PlayerHP > prev.PlayerHP && next.RespawnToken == prev.RespawnToken && next.Phase == prev.Phase {
		out = append(out, event.Event{Type: event.PlayerHealed, Data: next.PlayerHP})
	}
	return out
}
