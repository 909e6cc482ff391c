// internal/system/projectile.go
package system

import (
	"log"

	"go-keyhunt/internal/component"
	"go-keyhunt/internal/defs"
	"go-keyhunt/internal/entity"
	"go-keyhunt/internal/physics"
	"go-keyhunt/internal/store"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs   *entity.ECS
	world *physics.World
	store *store.Store
	lib   *defs.Library
}

func NewProjectileSystem(ecs *entity.ECS, world *physics.World, st *store.Store, lib *defs.Library) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, world: world, store: st, lib: lib}
}

// Fire регистрирует снаряд и возвращает его ID.
func (s *ProjectileSystem) Fire(p component.Projectile) int {
	id := s.ecs.NewEntity()
	p.ID = id
	p.Active = true
	p.SpawnedAt = s.ecs.GameTime
	s.ecs.Projectiles[id] = &p
	return id
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	if s.store.Phase() != component.PhasePlaying {
		return
	}
	now := s.ecs.GameTime
	for _, id := range s.ecs.ProjectileIDs() {
		proj, ok := s.ecs.Projectiles[id]
		if !ok {
			continue // снаряды очищены посреди тика
		}
		if !proj.Active || now-proj.SpawnedAt >= proj.Lifetime {
			s.removeProjectile(id)
			continue
		}

		next := proj.Position.Add(proj.Velocity.Scale(deltaTime))
		if s.collide(proj, next, now) {
			s.removeProjectile(id)
			continue
		}
		if s.world.HitsGround(next) {
			s.removeProjectile(id)
			continue
		}
		proj.Position = next
	}
}

// Clear удаляет все снаряды.
func (s *ProjectileSystem) Clear() {
	for id := range s.ecs.Projectiles {
		delete(s.ecs.Projectiles, id)
	}
}

// collide проверяет попадание на отрезке движения. true — снаряд израсходован.
func (s *ProjectileSystem) collide(proj *component.Projectile, next component.Vec3, now float64) bool {
	switch proj.Owner {
	case component.OwnerPlayer:
		roster := s.store.Snapshot()
		// убитые, но ещё не убранные враги пулю не останавливают
		alive := func(b *physics.Body) bool {
			e, ok := roster.FindEnemy(b.ID)
			return ok && e.Health > 0
		}
		body, hit := s.world.SweepWhere(proj.Position, next, proj.Radius, physics.TagEnemy, alive)
		if !hit {
			return false
		}
		return s.hitEnemy(proj, body.ID)
	case component.OwnerEnemy:
		if _, hit := s.world.Sweep(proj.Position, next, proj.Radius, physics.TagPlayer); !hit {
			return false
		}
		proj.Active = false
		s.store.TakeDamage(proj.Damage, proj.Reason, now)
		return true
	}
	return false
}

// hitEnemy наносит урон одному врагу. Снаряд деактивируется до изменения
// store, так что второй цели он уже не заденет.
func (s *ProjectileSystem) hitEnemy(proj *component.Projectile, enemyID string) bool {
	enemy, ok := s.store.Snapshot().FindEnemy(enemyID)
	if !ok || enemy.Health <= 0 {
		return false // уже убит, ждёт удаления
	}
	proj.Active = false

	health := enemy.Health - proj.Damage
	s.store.UpdateEnemyHealth(enemyID, health)
	if health > 0 {
		return true
	}

	stats, err := s.lib.Enemy(enemy.Type)
	if err != nil {
		log.Printf("projectile: %v", err)
		return true
	}
	s.store.RecordKill(enemy, stats.ScoreValue)
	return true
}

// Вспомогательная функция для удаления снаряда
func (s *ProjectileSystem) removeProjectile(id int) {
	delete(s.ecs.Projectiles, id)
}
