package system

import (
	"math"

	"go-keyhunt/internal/component"
	"go-keyhunt/internal/config"
	"go-keyhunt/internal/defs"
	"go-keyhunt/internal/entity"
	"go-keyhunt/internal/event"
	"go-keyhunt/internal/physics"
	"go-keyhunt/internal/rules"
	"go-keyhunt/internal/store"
	"go-keyhunt/internal/utils"
)

// AISystem — контроллер врагов: ожидание, преследование, атака.
// Частота решений зависит от дистанции до игрока, позиция публикуется
// в реестр отдельно, с частотой 10 Гц.
type AISystem struct {
	ecs             *entity.ECS
	world           *physics.World
	store           *store.Store
	lib             *defs.Library
	projectiles     *ProjectileSystem
	eventDispatcher *event.Dispatcher
}

func NewAISystem(ecs *entity.ECS, world *physics.World, st *store.Store, lib *defs.Library,
	projectiles *ProjectileSystem, eventDispatcher *event.Dispatcher) *AISystem {
	return &AISystem{
		ecs:             ecs,
		world:           world,
		store:           st,
		lib:             lib,
		projectiles:     projectiles,
		eventDispatcher: eventDispatcher,
	}
}

// ThrottleInterval возвращает минимальный интервал между решениями врага.
func ThrottleInterval(distance, detectionRange float64) float64 {
	if distance <= math.Min(config.NearTierMaxDistance, detectionRange) {
		return 0
	}
	if distance <= math.Max(config.MidTierMinDistance, config.MidTierRangeFactor*detectionRange) {
		return config.MidTierInterval
	}
	return config.FarTierInterval
}

func (s *AISystem) Update(deltaTime float64) {
	if s.store.Phase() != component.PhasePlaying {
		return
	}
	now := s.ecs.GameTime
	s.sweep()

	snap := s.store.Snapshot()
	player := snap.PlayerPosition
	target := player.Add(component.Vec3{Y: playerBodyHeight / 2})
	if body, ok := s.world.Body(PlayerBodyID); ok {
		player = body.Position
		target = body.Center()
	}

	positions := make(map[string]component.Vec3)
	for _, e := range snap.Enemies {
		if s.store.Phase() != component.PhasePlaying {
			break // атака завершила сессию
		}
		body, ok := s.world.Body(e.ID)
		if !ok {
			continue
		}
		stats, err := s.lib.Enemy(e.Type)
		if err != nil {
			continue
		}
		ai := s.state(e.ID, now)
		s.decide(e, body, stats, ai, player, target, now)

		if now-ai.LastSync >= config.PositionSyncInterval {
			positions[e.ID] = body.Position
			ai.LastSync = now
		}
	}

	if len(positions) > 0 {
		s.store.Update(func(sess component.Session) component.Session {
			for id, p := range positions {
				sess = rules.UpdateEnemyPosition(sess, id, p)
			}
			return sess
		})
	}
}

// Moving сообщает последнее известное состояние анимации врага.
func (s *AISystem) Moving(id string) bool {
	if ai, ok := s.ecs.AI[id]; ok {
		return ai.Moving
	}
	return false
}

// Yaw возвращает угол поворота врага.
func (s *AISystem) Yaw(id string) float64 {
	if ai, ok := s.ecs.AI[id]; ok {
		return ai.Yaw
	}
	return 0
}

// Clear забывает всех врагов: тела и таймеры.
func (s *AISystem) Clear() {
	s.world.RemoveTag(physics.TagEnemy)
	for id := range s.ecs.AI {
		delete(s.ecs.AI, id)
	}
}

// sweep убирает из реестра врагов с нулевым здоровьем и тела, которых
// в реестре больше нет.
func (s *AISystem) sweep() {
	for _, dead := range s.store.SweepDead() {
		s.forget(dead.ID)
	}
	snap := s.store.Snapshot()
	for _, body := range s.world.Bodies(physics.TagEnemy) {
		if _, ok := snap.FindEnemy(body.ID); !ok {
			s.forget(body.ID)
		}
	}
}

func (s *AISystem) forget(id string) {
	s.world.Remove(id)
	delete(s.ecs.AI, id)
}

func (s *AISystem) state(id string, now float64) *component.AIState {
	ai, ok := s.ecs.AI[id]
	if !ok {
		ai = &component.AIState{
			LastAttack: now - config.AttackCooldown,
			LastSync:   now,
		}
		s.ecs.AI[id] = ai
	}
	return ai
}

func (s *AISystem) decide(e component.Enemy, body *physics.Body, stats defs.EnemyStats,
	ai *component.AIState, player, target component.Vec3, now float64) {

	offset := player.Sub(body.Position).Horizontal()
	distance := offset.Len()

	if ai.Decided && now-ai.LastDecision < ThrottleInterval(distance, stats.DetectionRange) {
		return
	}
	ai.Decided = true
	ai.LastDecision = now

	moving := false
	switch {
	case distance >= stats.DetectionRange:
		s.world.SetHorizontalVelocity(e.ID, component.Vec3{})

	case distance < stats.AttackRange:
		s.world.SetHorizontalVelocity(e.ID, component.Vec3{})
		ai.Yaw = utils.Yaw(offset.X, offset.Z)
		if now-ai.LastAttack >= config.AttackCooldown {
			s.attack(e, body, stats, offset, target, now)
			ai.LastAttack = now
		}

	default:
		dir := offset.Normalize()
		s.world.SetHorizontalVelocity(e.ID, dir.Scale(stats.Speed))
		ai.Yaw = utils.Yaw(offset.X, offset.Z)
		moving = true
	}

	if moving != ai.Moving {
		ai.Moving = moving
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyMovementChanged,
			Data: event.EnemyMovement{ID: e.ID, Moving: moving},
		})
	}
}

func (s *AISystem) attack(e component.Enemy, body *physics.Body, stats defs.EnemyStats,
	offset, target component.Vec3, now float64) {

	if !stats.Ranged {
		s.store.TakeDamage(stats.Damage, enemyReason(e.Type), now)
		return
	}

	// выстрел из груди, смещённый к игроку, чтобы не задеть себя
	origin := body.Position.
		Add(component.Vec3{Y: config.EnemyChestHeight}).
		Add(offset.Normalize().Scale(config.EnemyMuzzleOffset))
	dir := target.Sub(origin).Normalize()
	if dir == (component.Vec3{}) {
		return
	}
	s.projectiles.Fire(component.Projectile{
		Owner:    component.OwnerEnemy,
		Position: origin,
		Velocity: dir.Scale(config.EnemyBulletSpeed),
		Damage:   stats.Damage,
		Radius:   config.EnemyBulletRadius,
		Lifetime: config.EnemyBulletLifetime,
		Reason:   enemyBulletReason(e.Type),
	})
}
