package system

import (
	"fmt"
	"log"

	"go-keyhunt/internal/component"
	"go-keyhunt/internal/config"
	"go-keyhunt/internal/defs"
	"go-keyhunt/internal/entity"
	"go-keyhunt/internal/event"
	"go-keyhunt/internal/physics"
	"go-keyhunt/internal/store"
	"go-keyhunt/internal/utils"
)

// ItemSystem — ключи, сердца и патроны в мире, а также цель и точка сброса.
type ItemSystem struct {
	ecs             *entity.ECS
	world           *physics.World
	store           *store.Store
	lib             *defs.Library
	prng            *utils.PRNGService
	coordinator     *SpawnCoordinator
	eventDispatcher *event.Dispatcher

	nextID        int
	lastAmmoSpawn float64
	killsForAmmo  int

	lastReset   float64
	resetUsed   bool
	insideReset bool
}

// itemBodyHeight — вертикальный размах тела предмета вокруг его точки.
const itemBodyHeight = 2.0

func NewItemSystem(ecs *entity.ECS, world *physics.World, st *store.Store, lib *defs.Library,
	prng *utils.PRNGService, eventDispatcher *event.Dispatcher) *ItemSystem {
	is := &ItemSystem{
		ecs:             ecs,
		world:           world,
		store:           st,
		lib:             lib,
		prng:            prng,
		coordinator:     NewSpawnCoordinator(prng),
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.PhaseChanged, is)
	eventDispatcher.Subscribe(event.ItemReset, is)
	eventDispatcher.Subscribe(event.EnemyKilled, is)
	return is
}

func (s *ItemSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.PhaseChanged:
		change, ok := e.Data.(event.PhaseChange)
		if !ok {
			return
		}
		if change.Fresh() {
			s.startRun()
		} else if change.To == component.PhaseMenu {
			s.clear()
		}
	case event.ItemReset:
		s.Regenerate()
	case event.EnemyKilled:
		s.killsForAmmo++
		if s.killsForAmmo >= config.AmmoSpawnPerKills {
			s.killsForAmmo = 0
			s.SpawnAmmo()
		}
	}
}

// Regenerate выкладывает новые партии ключей и сердец и публикует число ключей.
func (s *ItemSystem) Regenerate() {
	stage := stageFor(s.lib, s.store.Snapshot().StageID)
	for _, kind := range []component.ItemKind{component.ItemKey, component.ItemHeart} {
		for _, it := range s.ecs.ItemsOfKind(kind) {
			s.world.Remove(it.ID)
		}
		s.ecs.RemoveItems(kind)
	}

	keys := s.coordinator.Keys(stage, config.DefaultKeyCount, config.ItemSampleMaxAttempts)
	hearts := s.coordinator.Hearts(stage, config.DefaultHeartCount, config.ItemSampleMaxAttempts)
	if len(keys) < config.DefaultKeyCount {
		log.Printf("items: placed %d of %d keys on %s", len(keys), config.DefaultKeyCount, stage.ID)
	}
	for _, p := range keys {
		s.place(component.ItemKey, p)
	}
	for _, p := range hearts {
		s.place(component.ItemHeart, p)
	}
	s.store.SetTotalKeys(len(keys))
}

// SpawnAmmo кладёт коробку патронов в случайную точку стадии.
func (s *ItemSystem) SpawnAmmo() {
	stage := stageFor(s.lib, s.store.Snapshot().StageID)
	if len(stage.AmmoSpawns) == 0 {
		return
	}
	s.place(component.ItemAmmo, stage.AmmoSpawns[s.prng.Intn(len(stage.AmmoSpawns))].Vec())
}

// ResetReady сообщает, остыла ли точка сброса.
func (s *ItemSystem) ResetReady() bool {
	return !s.resetUsed || s.ecs.GameTime-s.lastReset >= config.ResetSpotCooldown
}

func (s *ItemSystem) Update(deltaTime float64) {
	if s.store.Phase() != component.PhasePlaying {
		return
	}
	now := s.ecs.GameTime
	snap := s.store.Snapshot()
	player := snap.PlayerPosition
	stage := stageFor(s.lib, snap.StageID)

	center := player.Add(component.Vec3{Y: playerBodyHeight / 2})
	for _, body := range s.world.OverlapSphere(center, config.PlayerRadius, physics.TagItem) {
		it, ok := s.ecs.Items[body.ID]
		if !ok || it.Collected {
			continue
		}
		s.pickup(it)
	}

	if player.PlanarDistance(stage.ScaledGoal()) <= config.GoalRadius {
		if s.store.ReachGoal(now) {
			log.Printf("items: stage %s cleared at %.1fs", stage.ID, now)
			return
		}
	}

	if stage.ResetSpot != nil {
		inside := player.PlanarDistance(stage.ResetSpot.Vec()) <= config.ResetSpotRadius
		if inside && !s.insideReset && s.ResetReady() {
			s.resetUsed = true
			s.lastReset = now
			s.store.TriggerItemReset()
		}
		s.insideReset = inside
	}

	if now-s.lastAmmoSpawn >= config.AmmoSpawnInterval {
		s.lastAmmoSpawn = now
		s.SpawnAmmo()
	}
}

// pickup применяет предмет, тело которого задел игрок.
func (s *ItemSystem) pickup(it *component.ItemSpawn) {
	switch it.Kind {
	case component.ItemKey:
		it.Collected = true
		s.store.CollectKey()
	case component.ItemHeart:
		it.Collected = true
		s.store.Heal(config.HealAmount)
	case component.ItemAmmo:
		if !s.store.PickupAmmo(config.AmmoRestoreAmount) {
			return // запас полон, коробка остаётся
		}
		it.Collected = true
		delete(s.ecs.Items, it.ID)
	default:
		return
	}
	s.world.Remove(it.ID)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ItemCollected, Data: *it})
}

func (s *ItemSystem) startRun() {
	s.clear()
	s.lastAmmoSpawn = s.ecs.GameTime
	s.killsForAmmo = 0
	s.resetUsed = false
	s.insideReset = false
	s.Regenerate()
}

func (s *ItemSystem) clear() {
	for id := range s.ecs.Items {
		delete(s.ecs.Items, id)
	}
	s.world.RemoveTag(physics.TagItem)
	s.coordinator.Reset()
}

func (s *ItemSystem) place(kind component.ItemKind, p component.Vec3) {
	s.nextID++
	id := fmt.Sprintf("%s-%d", kind, s.nextID)
	s.ecs.Items[id] = &component.ItemSpawn{ID: id, Kind: kind, Position: p}

	// радиус тела вместе с радиусом игрока даёт дальность подбора
	radius := config.ItemPickupRadius
	if kind == component.ItemAmmo {
		radius = config.AmmoPickupRadius - config.PlayerRadius
	}
	s.world.Add(&physics.Body{
		ID:       id,
		Tag:      physics.TagItem,
		Position: p.Sub(component.Vec3{Y: itemBodyHeight / 2}),
		Radius:   radius,
		Height:   itemBodyHeight,
		Static:   true,
	})
}
