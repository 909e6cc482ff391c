package store

import (
	"errors"
	"sync"
	"testing"

	"go-keyhunt/internal/component"
	"go-keyhunt/internal/event"
	"go-keyhunt/internal/rules"
)

type recorder struct {
	mu  sync.Mutex
	got []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.mu.Lock()
	r.got = append(r.got, e)
	r.mu.Unlock()
}

func (r *recorder) count(t event.EventType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.got {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newPlaying(t *testing.T) (*Store, *recorder) {
	t.Helper()
	d := event.NewDispatcher()
	rec := &recorder{}
	for _, et := range []event.EventType{
		event.PhaseChanged, event.TransitionRejected, event.PlayerDamaged, event.PlayerDied,
		event.GameCleared, event.EnemySpawned, event.EnemyKilled, event.KeyCollected,
		event.ItemReset, event.RespawnRequested, event.SessionReset, event.PlayerHealed,
	} {
		d.Subscribe(et, rec)
	}
	st := New(rules.NewSession("stage0", 1), d)
	st.ResetGame(false)
	if err := st.SetPhase(component.PhasePlaying); err != nil {
		t.Fatalf("SetPhase(playing): %v", err)
	}
	return st, rec
}

func TestStoreDamageScenario(t *testing.T) {
	st, rec := newPlaying(t)

	st.TakeDamage(40, "x", 1.0)
	s := st.Snapshot()
	if s.PlayerHP != 60 || s.Phase != component.PhasePlaying {
		t.Fatalf("hp=%d phase=%s", s.PlayerHP, s.Phase)
	}

	st.TakeDamage(70, "y", 2.0)
	st.TakeDamage(5, "z", 2.5)
	s = st.Snapshot()
	if s.Phase != component.PhaseGameOver || s.Death.Reason != "y" || s.Death.Time != 2.0 {
		t.Fatalf("phase=%s death=%+v", s.Phase, s.Death)
	}
	if n := rec.count(event.PlayerDied); n != 1 {
		t.Fatalf("PlayerDied dispatched %d times, want 1", n)
	}
	if n := rec.count(event.PlayerDamaged); n != 2 {
		t.Fatalf("PlayerDamaged dispatched %d times, want 2", n)
	}
}

func TestStoreRejectsIllegalTransition(t *testing.T) {
	st, rec := newPlaying(t)
	err := st.SetPhase(component.PhaseMenu)
	if !errors.Is(err, rules.ErrIllegalTransition) {
		t.Fatalf("err = %v, want ErrIllegalTransition", err)
	}
	if st.Phase() != component.PhasePlaying {
		t.Fatalf("phase = %s after rejected transition", st.Phase())
	}
	if rec.count(event.TransitionRejected) != 1 {
		t.Fatalf("TransitionRejected not dispatched")
	}
}

func TestStoreRosterAndKill(t *testing.T) {
	st, rec := newPlaying(t)
	if !st.AddEnemy(component.Enemy{ID: "e1", Type: component.EnemyTank, Health: 300}) {
		t.Fatalf("AddEnemy rejected")
	}
	if st.AddEnemy(component.Enemy{ID: "e1", Type: component.EnemyTank, Health: 300}) {
		t.Fatalf("duplicate accepted")
	}
	if rec.count(event.EnemySpawned) != 1 {
		t.Fatalf("EnemySpawned = %d, want 1", rec.count(event.EnemySpawned))
	}

	st.UpdateEnemyHealth("e1", 0)
	dead := st.SweepDead()
	if len(dead) != 1 {
		t.Fatalf("SweepDead = %v", dead)
	}
	st.RecordKill(dead[0], 300)
	s := st.Snapshot()
	if s.Score != 300 || s.KillCount != 1 || len(s.Enemies) != 0 {
		t.Fatalf("score=%d kills=%d enemies=%d", s.Score, s.KillCount, len(s.Enemies))
	}
	if rec.count(event.EnemyKilled) != 1 {
		t.Fatalf("EnemyKilled not dispatched")
	}
}

func TestStoreKeysAndGoal(t *testing.T) {
	st, rec := newPlaying(t)
	st.SetTotalKeys(3)
	for i := 0; i < 4; i++ {
		st.CollectKey()
	}
	if got := st.Snapshot().KeysCollected; got != 3 {
		t.Fatalf("keys = %d, want 3", got)
	}
	if rec.count(event.KeyCollected) != 3 {
		t.Fatalf("KeyCollected = %d, want 3", rec.count(event.KeyCollected))
	}
	if !st.ReachGoal(10) {
		t.Fatalf("ReachGoal failed")
	}
	if rec.count(event.GameCleared) != 1 {
		t.Fatalf("GameCleared not dispatched")
	}
}

func TestStoreItemResetAndRespawn(t *testing.T) {
	st, rec := newPlaying(t)
	st.SetTotalKeys(3)
	st.CollectKey()
	st.TriggerItemReset()
	st.TakeDamage(30, "x", 1)
	st.RequestRespawn()
	s := st.Snapshot()
	if s.KeysCollected != 0 || s.ItemResetTrigger != 1 || s.PlayerHP != s.MaxHP || s.RespawnToken != 1 {
		t.Fatalf("state = %+v", s)
	}
	if rec.count(event.ItemReset) != 1 || rec.count(event.RespawnRequested) != 1 {
		t.Fatalf("missing reset/respawn events")
	}
	if rec.count(event.PlayerHealed) != 0 {
		t.Fatalf("respawn should not be reported as a heal")
	}
	st.TakeDamage(30, "x", 2)
	st.Heal(25)
	if rec.count(event.PlayerHealed) != 1 {
		t.Fatalf("PlayerHealed = %d, want 1", rec.count(event.PlayerHealed))
	}
}

func TestStoreResetKeysKeepsTotal(t *testing.T) {
	st, rec := newPlaying(t)
	st.SetTotalKeys(3)
	st.CollectKey()
	st.CollectKey()
	st.ResetKeys()
	s := st.Snapshot()
	if s.KeysCollected != 0 || s.TotalKeys != 3 {
		t.Fatalf("keys = %d/%d, want 0/3", s.KeysCollected, s.TotalKeys)
	}
	if rec.count(event.ItemReset) != 0 {
		t.Fatalf("ResetKeys should not trigger an item reset")
	}
}

func TestStoreAmmo(t *testing.T) {
	st, _ := newPlaying(t)
	for i := 0; i < 15; i++ {
		if !st.Shoot() {
			t.Fatalf("shot %d failed", i)
		}
	}
	if st.Shoot() {
		t.Fatalf("shot with empty magazine")
	}
	st.Reload()
	s := st.Snapshot()
	if s.AmmoCurrent != 15 || s.AmmoReserve != 0 {
		t.Fatalf("ammo = %d/%d", s.AmmoCurrent, s.AmmoReserve)
	}
	if !st.PickupAmmo(15) {
		t.Fatalf("pickup rejected with empty reserve")
	}
}

func TestStoreConcurrentMutations(t *testing.T) {
	st, _ := newPlaying(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				st.AddScore(1)
				_ = st.Snapshot()
			}
		}()
	}
	wg.Wait()
	if got := st.Snapshot().Score; got != 800 {
		t.Fatalf("score = %d, want 800", got)
	}
}

func TestListenerCanReadStore(t *testing.T) {
	d := event.NewDispatcher()
	st := New(rules.NewSession("stage0", 1), d)
	var seen component.GamePhase = -1
	d.Subscribe(event.PhaseChanged, event.Func(func(event.Event) {
		seen = st.Phase()
	}))
	if err := st.SetPhase(component.PhasePlaying); err != nil {
		t.Fatal(err)
	}
	if seen != component.PhasePlaying {
		t.Fatalf("listener saw %s", seen)
	}
}
