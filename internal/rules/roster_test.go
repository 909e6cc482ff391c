package rules

import (
	"testing"

	"go-keyhunt/internal/component"
)

func TestRosterOperations(t *testing.T) {
	s := playing()
	s, ok := AddEnemy(s, component.Enemy{ID: "a", Type: component.EnemyBasic, Health: 100})
	if !ok {
		t.Fatalf("AddEnemy(a) rejected")
	}
	s, _ = AddEnemy(s, component.Enemy{ID: "b", Type: component.EnemyFast, Health: 50})

	if _, ok := AddEnemy(s, component.Enemy{ID: "a", Health: 1}); ok {
		t.Fatalf("duplicate id accepted")
	}

	before := s
	s = UpdateEnemyHealth(s, "a", 40)
	s = UpdateEnemyPosition(s, "b", component.Vec3{X: 3, Z: 4})
	if e, _ := before.FindEnemy("a"); e.Health != 100 {
		t.Fatalf("update mutated previous session value")
	}
	if e, _ := s.FindEnemy("a"); e.Health != 40 {
		t.Fatalf("health = %d, want 40", e.Health)
	}
	if e, _ := s.FindEnemy("b"); e.Position.X != 3 || e.Health != 50 {
		t.Fatalf("b = %+v", e)
	}

	s = UpdateEnemyHealth(s, "a", -20)
	if e, ok := s.FindEnemy("a"); !ok || e.Health != 0 {
		t.Fatalf("zero-health enemy must stay until removed, got %+v %v", e, ok)
	}

	s = RemoveEnemy(s, "missing")
	s = RemoveEnemy(s, "a")
	if len(s.Enemies) != 1 || s.Enemies[0].ID != "b" {
		t.Fatalf("roster = %+v", s.Enemies)
	}

	s = ClearEnemies(s)
	if len(s.Enemies) != 0 {
		t.Fatalf("ClearEnemies left %d", len(s.Enemies))
	}
}

func TestTankKilledIsSwept(t *testing.T) {
	s := playing()
	s, _ = AddEnemy(s, component.Enemy{ID: "tank", Type: component.EnemyTank, Health: 300})
	s = UpdateEnemyHealth(s, "tank", 275)
	s = UpdateEnemyHealth(s, "tank", 250)
	s = UpdateEnemyHealth(s, "tank", 0)

	s, dead := SweepDead(s)
	if len(dead) != 1 || dead[0].ID != "tank" {
		t.Fatalf("swept = %+v", dead)
	}
	if _, ok := s.FindEnemy("tank"); ok {
		t.Fatalf("dead tank still in roster")
	}
}
