package rules

import (
	"testing"

	"go-keyhunt/internal/component"
)

func playing() component.Session {
	s := ResetGame(NewSession("stage0", 1), false)
	s, _ = Transition(s, component.PhasePlaying)
	return s
}

func TestHealthClamping(t *testing.T) {
	for hp := 0; hp <= 100; hp += 10 {
		for _, amount := range []int{0, 1, 5, 25, 99, 100, 250} {
			s := playing()
			s.PlayerHP = hp

			got := TakeDamage(s, amount, "x", 0).PlayerHP
			want := hp - amount
			if want < 0 {
				want = 0
			}
			if got != want {
				t.Fatalf("TakeDamage(hp=%d, %d) = %d, want %d", hp, amount, got, want)
			}

			s.PlayerHP = hp
			got = Heal(s, amount).PlayerHP
			want = hp + amount
			if want > s.MaxHP {
				want = s.MaxHP
			}
			if got != want {
				t.Fatalf("Heal(hp=%d, %d) = %d, want %d", hp, amount, got, want)
			}
		}
	}
}

func TestDamageScenario(t *testing.T) {
	s := NewSession("stage0", 1)
	s = ResetGame(s, false)
	s = SetPhase(s, component.PhasePlaying)

	s = TakeDamage(s, 40, "x", 1.0)
	if s.PlayerHP != 60 || s.Phase != component.PhasePlaying {
		t.Fatalf("after 40: hp=%d phase=%s, want 60 playing", s.PlayerHP, s.Phase)
	}
	if s.Death != nil {
		t.Fatalf("death recorded while alive: %+v", s.Death)
	}

	s = TakeDamage(s, 70, "y", 2.0)
	if s.PlayerHP != 0 || s.Phase != component.PhaseGameOver {
		t.Fatalf("after 70: hp=%d phase=%s, want 0 gameover", s.PlayerHP, s.Phase)
	}
	if s.Death == nil || s.Death.Reason != "y" || s.Death.Time != 2.0 {
		t.Fatalf("death = %+v, want reason y at 2.0", s.Death)
	}
	if !Dead(s) {
		t.Fatalf("Dead() = false after death")
	}
}

func TestDeathIsFirstWriterWins(t *testing.T) {
	s := playing()
	s.KeysCollected = 0
	s = SetTotalKeys(s, 3)
	s = CollectKey(s)

	s = TakeDamage(s, 200, "Enemy:tank", 3.5)
	s = TakeDamage(s, 30, "Enemy:sniper:bullet", 3.5)
	s = TakeDamage(s, 10, "Enemy:basic", 4.0)

	if s.Death.Reason != "Enemy:tank" || s.Death.Time != 3.5 || s.Death.Keys != 1 {
		t.Fatalf("death = %+v, want first report with 1 key", s.Death)
	}
}

func TestDamageOutsidePlayKeepsPhase(t *testing.T) {
	cases := []struct {
		phase  component.GamePhase
		amount int
		wantHP int
	}{
		{component.PhasePaused, 10, 90},
		{component.PhaseMenu, 40, 60},
		{component.PhasePaused, 500, 0},
		{component.PhaseMenu, 100, 0},
	}
	for _, tc := range cases {
		s := NewSession("stage0", 1)
		s.Phase = tc.phase
		s = TakeDamage(s, tc.amount, "x", 1)
		if s.PlayerHP != tc.wantHP || s.Phase != tc.phase {
			t.Errorf("%s -%d: hp=%d phase=%s, want %d %s", tc.phase, tc.amount, s.PlayerHP, s.Phase, tc.wantHP, tc.phase)
		}
		if s.Death != nil || Dead(s) {
			t.Errorf("%s -%d: death captured outside play: %+v", tc.phase, tc.amount, s.Death)
		}
	}
}

func TestDeathClearsRoster(t *testing.T) {
	s := playing()
	s, _ = AddEnemy(s, component.Enemy{ID: "a", Type: component.EnemyBasic, Health: 100})
	s = TakeDamage(s, 100, "Enemy:basic", 1)
	if len(s.Enemies) != 0 {
		t.Fatalf("roster has %d enemies after death, want 0", len(s.Enemies))
	}
}

func TestHealDoesNotReviveOrChangePhase(t *testing.T) {
	s := playing()
	s = TakeDamage(s, 100, "x", 1)
	death := *s.Death
	s = Heal(s, 25)
	if s.PlayerHP != 25 || s.Phase != component.PhaseGameOver {
		t.Fatalf("heal after death: hp=%d phase=%s, want 25 gameover", s.PlayerHP, s.Phase)
	}
	if s.Death == nil || *s.Death != death || !Dead(s) {
		t.Fatalf("heal rewrote death: %+v", s.Death)
	}

	s = NewSession("stage0", 1)
	s.Phase = component.PhasePaused
	s = TakeDamage(s, 50, "x", 1)
	s = Heal(s, 25)
	if s.PlayerHP != 75 || s.Phase != component.PhasePaused {
		t.Fatalf("paused: hp=%d phase=%s, want 75 paused", s.PlayerHP, s.Phase)
	}

	s = playing()
	s = TakeDamage(s, 50, "x", 1)
	s = Heal(s, 25)
	if s.PlayerHP != 75 || s.Phase != component.PhasePlaying {
		t.Fatalf("hp=%d phase=%s, want 75 playing", s.PlayerHP, s.Phase)
	}
}

func TestRequestRespawn(t *testing.T) {
	s := playing()
	s = TakeDamage(s, 60, "x", 1)
	before := s.RespawnToken
	s = RequestRespawn(s)
	if s.PlayerHP != s.MaxHP || s.RespawnToken != before+1 {
		t.Fatalf("hp=%d token=%d, want %d and %d", s.PlayerHP, s.RespawnToken, s.MaxHP, before+1)
	}
}
