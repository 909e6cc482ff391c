// internal/system/player_system.go
package system

import (
	"go-keyhunt/internal/component"
	"go-keyhunt/internal/config"
	"go-keyhunt/internal/entity"
	"go-keyhunt/internal/physics"
	"go-keyhunt/internal/store"
	"go-keyhunt/internal/utils"
)

// PlayerSystem переводит намерение игрока в скорость тела и публикует позицию.
type PlayerSystem struct {
	ecs   *entity.ECS
	world *physics.World
	store *store.Store
	yaw   float64
}

func NewPlayerSystem(ecs *entity.ECS, world *physics.World, st *store.Store) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, world: world, store: st}
}

// Place ставит тело игрока в точку, создавая его при необходимости.
func (s *PlayerSystem) Place(p component.Vec3) {
	if _, ok := s.world.Body(PlayerBodyID); !ok {
		s.world.Add(&physics.Body{
			ID:      PlayerBodyID,
			Tag:     physics.TagPlayer,
			Radius:  config.PlayerRadius,
			Height:  playerBodyHeight,
			Gravity: true,
		})
	}
	s.world.Teleport(PlayerBodyID, p)
	s.store.SetPlayerPosition(p)
}

func (s *PlayerSystem) Update(deltaTime float64, in component.Intent) {
	if s.store.Phase() != component.PhasePlaying {
		return
	}
	body, ok := s.world.Body(PlayerBodyID)
	if !ok {
		return
	}
	s.yaw = utils.NormalizeAngle(in.CameraYaw)

	forward, right := moveBasis(s.yaw)
	var move component.Vec3
	if in.Forward {
		move = move.Add(forward)
	}
	if in.Backward {
		move = move.Sub(forward)
	}
	if in.Right {
		move = move.Add(right)
	}
	if in.Left {
		move = move.Sub(right)
	}
	s.world.SetHorizontalVelocity(PlayerBodyID, move.Normalize().Scale(config.MoveSpeed))

	if in.Jump && s.grounded(body) {
		s.world.ApplyImpulse(PlayerBodyID, config.JumpImpulse())
	}
}

// Sync публикует позицию тела в store. Вызывается после шага физики.
func (s *PlayerSystem) Sync() {
	if body, ok := s.world.Body(PlayerBodyID); ok {
		s.store.SetPlayerPosition(body.Position)
	}
}

// Yaw — последний угол камеры, для отрисовки.
func (s *PlayerSystem) Yaw() float64 {
	return s.yaw
}

func (s *PlayerSystem) grounded(b *physics.Body) bool {
	if b.Grounded {
		return true
	}
	return b.Position.Y-s.world.GroundY < config.GroundedEps && b.Velocity.Y <= 0
}
