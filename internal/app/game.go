// internal/app/game.go
package app

import (
	"log"

	"go-keyhunt/internal/component"
	"go-keyhunt/internal/config"
	"go-keyhunt/internal/defs"
	"go-keyhunt/internal/entity"
	"go-keyhunt/internal/event"
	"go-keyhunt/internal/physics"
	"go-keyhunt/internal/rules"
	"go-keyhunt/internal/store"
	"go-keyhunt/internal/system"
	"go-keyhunt/internal/utils"
)

// Game holds the simulation: store, world, systems and the simulation clock.
// Не потокобезопасна: Update и команды вызываются из одного цикла.
type Game struct {
	ECS             *entity.ECS
	World           *physics.World
	Store           *store.Store
	Library         *defs.Library
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	PlayerSystem     *system.PlayerSystem
	WeaponSystem     *system.WeaponSystem
	ProjectileSystem *system.ProjectileSystem
	AISystem         *system.AISystem
	SpawnSystem      *system.SpawnSystem
	ItemSystem       *system.ItemSystem
	StateSystem      *system.StateSystem
}

// NewGame initializes a new game instance. seed == 0 picks a time-based seed.
func NewGame(lib *defs.Library, seed int64) *Game {
	if lib == nil {
		lib = defs.Default()
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	world := physics.NewWorld(config.Gravity)
	st := store.New(rules.NewSession(config.DefaultStageID, config.MinLevel), eventDispatcher)
	rng := utils.NewPRNGService(seed)

	g := &Game{
		ECS:             ecs,
		World:           world,
		Store:           st,
		Library:         lib,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
	}
	g.PlayerSystem = system.NewPlayerSystem(ecs, world, st)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, world, st, lib)
	g.WeaponSystem = system.NewWeaponSystem(ecs, world, st, g.ProjectileSystem)
	g.AISystem = system.NewAISystem(ecs, world, st, lib, g.ProjectileSystem, eventDispatcher)
	// StateSystem подписывается первым: игрок должен стоять на точке
	// появления до того, как спавнеры прочитают его позицию.
	g.StateSystem = system.NewStateSystem(g, eventDispatcher)
	g.SpawnSystem = system.NewSpawnSystem(ecs, world, st, lib, rng, eventDispatcher)
	g.ItemSystem = system.NewItemSystem(ecs, world, st, lib, rng, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.PlayerDied, listener)
	eventDispatcher.Subscribe(event.GameCleared, listener)
	eventDispatcher.Subscribe(event.ItemReset, event.Func(func(e event.Event) {
		s := st.Snapshot()
		log.Printf("game: items reset #%v on %s, keys 0/%d", e.Data, s.StageID, s.TotalKeys)
	}))

	g.RespawnPlayer()
	return g
}

// Update advances the simulation by deltaTime seconds. Outside the playing
// phase nothing moves and the simulation clock stands still.
func (g *Game) Update(deltaTime float64, in component.Intent) {
	if deltaTime < 0 {
		deltaTime = 0
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	if g.Store.Phase() != component.PhasePlaying {
		return
	}
	g.ECS.GameTime += deltaTime

	g.PlayerSystem.Update(deltaTime, in)
	g.WeaponSystem.Update(deltaTime, in)
	g.AISystem.Update(deltaTime)
	g.World.Step(deltaTime)
	g.PlayerSystem.Sync()
	g.ProjectileSystem.Update(deltaTime)
	g.ItemSystem.Update(deltaTime)
	g.SpawnSystem.Update(deltaTime)
}

// Time returns the simulation clock in seconds.
func (g *Game) Time() float64 {
	return g.ECS.GameTime
}

// ClearEnemies removes every enemy body and AI timer from the world.
func (g *Game) ClearEnemies() {
	g.AISystem.Clear()
}

func (g *Game) ClearProjectiles() {
	g.ProjectileSystem.Clear()
}

// RespawnPlayer ставит игрока на точку появления текущей стадии.
func (g *Game) RespawnPlayer() {
	stage, err := g.Library.Stage(g.Store.Snapshot().StageID)
	if err != nil {
		log.Printf("game: %v, respawning at origin", err)
		g.PlayerSystem.Place(component.Vec3{})
		return
	}
	g.PlayerSystem.Place(stage.PlayerSpawn.Vec())
	g.WeaponSystem.Reset()
}

// GameEventListener логирует итоги сессии.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerDied:
		if d, ok := e.Data.(component.DeathRecord); ok {
			log.Printf("game: player died (%s) at %.1fs with %d keys", d.Reason, d.Time, d.Keys)
		}
	case event.GameCleared:
		s := l.game.Store.Snapshot()
		log.Printf("game: %s cleared, score %d, kills %d", s.StageID, s.Score, s.KillCount)
	}
}
