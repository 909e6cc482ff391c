package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchOnlyToSubscribedType(t *testing.T) {
	d := NewDispatcher()
	deaths := &recorder{}
	spawns := &recorder{}
	d.Subscribe(PlayerDied, deaths)
	d.Subscribe(EnemySpawned, spawns)

	d.Dispatch(Event{Type: PlayerDied, Data: "x"})

	if len(deaths.got) != 1 {
		t.Fatalf("deaths got %d events, want 1", len(deaths.got))
	}
	if len(spawns.got) != 0 {
		t.Fatalf("spawns got %d events, want 0", len(spawns.got))
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &recorder{}
	b := &recorder{}
	d.Subscribe(KeyCollected, a)
	d.Subscribe(KeyCollected, b)
	d.Unsubscribe(KeyCollected, a)

	d.Dispatch(Event{Type: KeyCollected})

	if len(a.got) != 0 || len(b.got) != 1 {
		t.Fatalf("a=%d b=%d, want 0 and 1", len(a.got), len(b.got))
	}
}

func TestFuncListenerCanUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	var self Listener
	self = Func(func(Event) {
		calls++
		d.Unsubscribe(ItemReset, self)
	})
	d.Subscribe(ItemReset, self)

	d.Dispatch(Event{Type: ItemReset})
	d.Dispatch(Event{Type: ItemReset})

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}
