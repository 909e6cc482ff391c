// internal/system/spawn.go
package system

import (
	"log"

	"go-keyhunt/internal/component"
	"go-keyhunt/internal/config"
	"go-keyhunt/internal/defs"
	"go-keyhunt/internal/entity"
	"go-keyhunt/internal/event"
	"go-keyhunt/internal/physics"
	"go-keyhunt/internal/store"
	"go-keyhunt/internal/utils"

	"github.com/google/uuid"
)

// SpawnSystem — начальное и периодическое появление врагов.
type SpawnSystem struct {
	ecs            *entity.ECS
	world          *physics.World
	store          *store.Store
	lib            *defs.Library
	prng           *utils.PRNGService
	maxEnemies     int
	lastSpawn      float64
	pendingInitial bool
}

func NewSpawnSystem(ecs *entity.ECS, world *physics.World, st *store.Store, lib *defs.Library,
	prng *utils.PRNGService, eventDispatcher *event.Dispatcher) *SpawnSystem {
	ss := &SpawnSystem{
		ecs:        ecs,
		world:      world,
		store:      st,
		lib:        lib,
		prng:       prng,
		maxEnemies: config.MaxEnemies,
	}
	eventDispatcher.Subscribe(event.PhaseChanged, ss)
	return ss
}

// SetMaxEnemies меняет лимит размера реестра.
func (s *SpawnSystem) SetMaxEnemies(n int) {
	if n < 0 {
		n = 0
	}
	s.maxEnemies = n
}

func (s *SpawnSystem) OnEvent(e event.Event) {
	if e.Type != event.PhaseChanged {
		return
	}
	change, ok := e.Data.(event.PhaseChange)
	if !ok {
		return
	}
	switch {
	case change.Fresh():
		s.pendingInitial = true
		s.lastSpawn = s.ecs.GameTime
	case change.Ended():
		s.pendingInitial = false
	}
}

func (s *SpawnSystem) Update(deltaTime float64) {
	if s.store.Phase() != component.PhasePlaying {
		return
	}
	now := s.ecs.GameTime

	if s.pendingInitial {
		s.pendingInitial = false
		s.lastSpawn = now
		s.initialSpawn(s.store.Snapshot())
		return
	}

	if now-s.lastSpawn >= config.EnemySpawnInterval {
		s.lastSpawn = now
		s.periodicSpawn(s.store.Snapshot())
	}
}

// SafeSpawnPoints отбрасывает точки ближе avoid к игроку. Если не осталось
// ни одной, возвращается исходный набор.
func SafeSpawnPoints(candidates []component.Vec3, player component.Vec3, avoid float64) []component.Vec3 {
	far := make([]component.Vec3, 0, len(candidates))
	for _, p := range candidates {
		if p.PlanarDistance(player) >= avoid {
			far = append(far, p)
		}
	}
	if len(far) > 0 {
		return far
	}
	return candidates
}

func (s *SpawnSystem) initialSpawn(snap component.Session) {
	stage := stageFor(s.lib, snap.StageID)
	count := len(snap.Enemies)

	if stage.IsFixed() {
		points := stage.SpawnCandidates()
		if len(points) > config.InitialFixedSpawnCount {
			points = points[:config.InitialFixedSpawnCount]
		}
		for _, p := range points {
			if count >= s.maxEnemies {
				break
			}
			if s.spawn(s.randomType(snap.Level), p) {
				count++
			}
		}
		return
	}

	points := SafeSpawnPoints(stage.SpawnCandidates(), snap.PlayerPosition, config.PlayerSpawnAvoidDistance)
	for _, idx := range s.prng.Pick(len(points), config.InitialRandomSpawnCount) {
		if count >= s.maxEnemies {
			break
		}
		if s.spawn(s.randomType(snap.Level), points[idx]) {
			count++
		}
	}
}

func (s *SpawnSystem) periodicSpawn(snap component.Session) {
	if len(snap.Enemies) >= s.maxEnemies {
		return
	}
	stage := stageFor(s.lib, snap.StageID)
	points := SafeSpawnPoints(stage.SpawnCandidates(), snap.PlayerPosition, config.PlayerSpawnAvoidDistance)
	if len(points) == 0 {
		return
	}
	s.spawn(s.randomType(snap.Level), points[s.prng.Intn(len(points))])
}

func (s *SpawnSystem) randomType(level int) component.EnemyType {
	types := defs.AllowedEnemyTypes(level)
	return types[s.prng.Intn(len(types))]
}

func (s *SpawnSystem) spawn(t component.EnemyType, pos component.Vec3) bool {
	stats, err := s.lib.Enemy(t)
	if err != nil {
		log.Printf("spawn: %v", err)
		return false
	}
	id, err := uuid.NewV7()
	if err != nil {
		log.Printf("spawn: failed to generate enemy id: %v", err)
		return false
	}

	e := component.Enemy{
		ID:       id.String(),
		Type:     t,
		Health:   stats.MaxHealth,
		Position: pos,
	}
	if !s.store.AddEnemy(e) {
		return false
	}
	s.world.Add(&physics.Body{
		ID:       e.ID,
		Tag:      physics.TagEnemy,
		Position: pos,
		Radius:   stats.Radius,
		Height:   stats.Height,
		Gravity:  true,
	})
	return true
}
