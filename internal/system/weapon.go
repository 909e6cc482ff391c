package system

import (
	"go-keyhunt/internal/component"
	"go-keyhunt/internal/config"
	"go-keyhunt/internal/entity"
	"go-keyhunt/internal/physics"
	"go-keyhunt/internal/store"
)

// WeaponSystem — оружие игрока: темп стрельбы, перезарядка, выпуск снарядов.
type WeaponSystem struct {
	ecs         *entity.ECS
	world       *physics.World
	store       *store.Store
	projectiles *ProjectileSystem
	lastShot    float64
	hasFired    bool
}

func NewWeaponSystem(ecs *entity.ECS, world *physics.World, st *store.Store, projectiles *ProjectileSystem) *WeaponSystem {
	return &WeaponSystem{ecs: ecs, world: world, store: st, projectiles: projectiles}
}

// Reset забывает время последнего выстрела.
func (s *WeaponSystem) Reset() {
	s.hasFired = false
	s.lastShot = 0
}

func (s *WeaponSystem) Update(deltaTime float64, in component.Intent) {
	if s.store.Phase() != component.PhasePlaying {
		return
	}
	if in.Reload {
		s.store.Reload()
	}
	if !in.Shoot {
		return
	}
	now := s.ecs.GameTime
	if s.hasFired && now-s.lastShot < config.PlayerFireInterval {
		return
	}
	body, ok := s.world.Body(PlayerBodyID)
	if !ok {
		return
	}
	if !s.store.Shoot() {
		return
	}
	s.lastShot = now
	s.hasFired = true

	dir := aimDirection(in.CameraYaw, in.CameraPitch)
	eye := body.Position.Add(component.Vec3{Y: body.Height})
	s.projectiles.Fire(component.Projectile{
		Owner:    component.OwnerPlayer,
		Position: eye.Add(dir.Scale(config.PlayerRadius)),
		Velocity: dir.Scale(config.PlayerBulletSpeed),
		Damage:   config.PlayerBulletDamage,
		Radius:   config.PlayerBulletRadius,
		Lifetime: config.PlayerBulletLifetime,
	})
}
