package system

import (
	"testing"

	"go-keyhunt/internal/component"
	"go-keyhunt/internal/config"
	"go-keyhunt/internal/event"
)

func playerBullet(pos, dir component.Vec3) component.Projectile {
	return component.Projectile{
		Owner:    component.OwnerPlayer,
		Position: pos,
		Velocity: dir.Scale(config.PlayerBulletSpeed),
		Damage:   config.PlayerBulletDamage,
		Radius:   config.PlayerBulletRadius,
		Lifetime: config.PlayerBulletLifetime,
	}
}

func TestProjectileHitsOnlyFirstEnemy(t *testing.T) {
	r := newRig(t, "stage0", 1)
	r.start(t)
	r.addEnemy("near", component.EnemyBasic, component.Vec3{Z: 5})
	r.addEnemy("far", component.EnemyBasic, component.Vec3{Z: 6})

	r.proj.Fire(playerBullet(component.Vec3{Y: 1}, component.Vec3{Z: 1}))
	r.proj.Update(0.1)

	s := r.store.Snapshot()
	near, _ := s.FindEnemy("near")
	far, _ := s.FindEnemy("far")
	if near.Health != 75 || far.Health != 100 {
		t.Fatalf("health near=%d far=%d, want 75 and 100", near.Health, far.Health)
	}
	if len(r.ecs.Projectiles) != 0 {
		t.Fatalf("spent projectile still alive")
	}
}

func TestProjectileKillAwardsScoreOnce(t *testing.T) {
	r := newRig(t, "stage0", 1)
	r.start(t)
	rec := listen(r.d, event.EnemyKilled)
	r.addEnemy("e", component.EnemyBasic, component.Vec3{Z: 5})
	r.store.UpdateEnemyHealth("e", 25)

	r.proj.Fire(playerBullet(component.Vec3{Y: 1}, component.Vec3{Z: 1}))
	r.proj.Update(0.1)
	// второй выстрел по трупу, который ещё не убран
	r.proj.Fire(playerBullet(component.Vec3{Y: 1}, component.Vec3{Z: 1}))
	r.proj.Update(0.1)

	s := r.store.Snapshot()
	if s.Score != 100 || s.KillCount != 1 {
		t.Fatalf("score=%d kills=%d, want 100 and 1", s.Score, s.KillCount)
	}
	if e, _ := s.FindEnemy("e"); e.Health != 0 {
		t.Fatalf("health = %d, want 0", e.Health)
	}
	kills := rec.of(event.EnemyKilled)
	if len(kills) != 1 {
		t.Fatalf("EnemyKilled dispatched %d times", len(kills))
	}
	if k := kills[0].Data.(event.EnemyKill); k.ID != "e" || k.Type != string(component.EnemyBasic) || k.Score != 100 {
		t.Fatalf("kill payload = %+v", k)
	}
}

func TestProjectilePassesThroughUnremovedCorpse(t *testing.T) {
	r := newRig(t, "stage0", 1)
	r.start(t)
	r.addEnemy("dead", component.EnemyBasic, component.Vec3{Z: 5})
	r.addEnemy("live", component.EnemyBasic, component.Vec3{Z: 6})
	r.store.UpdateEnemyHealth("dead", 0)

	r.proj.Fire(playerBullet(component.Vec3{Y: 1}, component.Vec3{Z: 1}))
	r.proj.Update(0.1)

	s := r.store.Snapshot()
	if live, _ := s.FindEnemy("live"); live.Health != 75 {
		t.Fatalf("live health = %d, want 75", live.Health)
	}
	if dead, _ := s.FindEnemy("dead"); dead.Health != 0 {
		t.Fatalf("corpse health = %d, want 0", dead.Health)
	}
	if len(r.ecs.Projectiles) != 0 {
		t.Fatalf("bullet that hit a live enemy is still flying")
	}
}

func TestEnemyProjectileDamagesPlayer(t *testing.T) {
	r := newRig(t, "stage0", 1)
	r.start(t)
	rec := listen(r.d, event.PlayerDamaged)
	r.placePlayer(component.Vec3{})

	r.proj.Fire(component.Projectile{
		Owner:    component.OwnerEnemy,
		Position: component.Vec3{Y: 1, Z: 3},
		Velocity: component.Vec3{Z: -config.EnemyBulletSpeed},
		Damage:   30,
		Radius:   config.EnemyBulletRadius,
		Lifetime: config.EnemyBulletLifetime,
		Reason:   enemyBulletReason(component.EnemySniper),
	})
	r.proj.Update(0.25)

	if hp := r.store.Snapshot().PlayerHP; hp != 70 {
		t.Fatalf("hp = %d, want 70", hp)
	}
	dmg := rec.of(event.PlayerDamaged)
	if len(dmg) != 1 || dmg[0].Data.(event.Damage).Reason != "Enemy:sniper:bullet" {
		t.Fatalf("damage events = %+v", dmg)
	}
	if len(r.ecs.Projectiles) != 0 {
		t.Fatalf("enemy bullet not removed after hit")
	}
}

func TestEnemyProjectileIgnoresEnemies(t *testing.T) {
	r := newRig(t, "stage0", 1)
	r.start(t)
	r.placePlayer(component.Vec3{Z: -50})
	r.addEnemy("e", component.EnemyBasic, component.Vec3{Z: 2})

	r.proj.Fire(component.Projectile{
		Owner:    component.OwnerEnemy,
		Position: component.Vec3{Y: 1, Z: 4},
		Velocity: component.Vec3{Z: -config.EnemyBulletSpeed},
		Damage:   30,
		Radius:   config.EnemyBulletRadius,
		Lifetime: config.EnemyBulletLifetime,
	})
	r.proj.Update(0.5)

	if e, _ := r.store.Snapshot().FindEnemy("e"); e.Health != 100 {
		t.Fatalf("enemy bullet hurt an enemy: health %d", e.Health)
	}
	if len(r.ecs.Projectiles) != 1 {
		t.Fatalf("bullet should still fly")
	}
}

func TestProjectileExpiresAndHitsGround(t *testing.T) {
	r := newRig(t, "stage0", 1)
	r.start(t)

	r.proj.Fire(playerBullet(component.Vec3{Y: 50}, component.Vec3{X: 1}))
	r.proj.Fire(playerBullet(component.Vec3{Y: 0.5}, component.Vec3{Y: -1}))
	r.proj.Update(0.016)
	if len(r.ecs.Projectiles) != 1 {
		t.Fatalf("ground hit: projectiles = %d, want 1", len(r.ecs.Projectiles))
	}

	r.ecs.GameTime += config.PlayerBulletLifetime
	r.proj.Update(0.016)
	if len(r.ecs.Projectiles) != 0 {
		t.Fatalf("expired projectile still alive")
	}
}

func TestProjectilesFrozenWhilePaused(t *testing.T) {
	r := newRig(t, "stage0", 1)
	r.start(t)
	id := r.proj.Fire(playerBullet(component.Vec3{Y: 50}, component.Vec3{X: 1}))
	if err := r.store.SetPhase(component.PhasePaused); err != nil {
		t.Fatal(err)
	}

	r.proj.Update(1)
	if p := r.ecs.Projectiles[id]; p == nil || p.Position.X != 0 {
		t.Fatalf("paused projectile moved: %+v", p)
	}
}
