package system

import (
	"sync"
	"testing"

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

// rig собирает общие зависимости систем без app.Game.
type rig struct {
	ecs   *entity.ECS
	world *physics.World
	store *store.Store
	lib   *defs.Library
	d     *event.Dispatcher
	rng   *utils.PRNGService
	proj  *ProjectileSystem
	ai    *AISystem
}

func newRig(t *testing.T, stageID string, seed int64) *rig {
	t.Helper()
	d := event.NewDispatcher()
	r := &rig{
		ecs:   entity.NewECS(),
		world: physics.NewWorld(config.Gravity),
		store: store.New(rules.NewSession(stageID, 1), d),
		lib:   defs.Default(),
		d:     d,
		rng:   utils.NewPRNGService(seed),
	}
	r.proj = NewProjectileSystem(r.ecs, r.world, r.store, r.lib)
	r.ai = NewAISystem(r.ecs, r.world, r.store, r.lib, r.proj, d)
	return r
}

func (r *rig) start(t *testing.T) {
	t.Helper()
	if err := r.store.SetPhase(component.PhasePlaying); err != nil {
		t.Fatalf("SetPhase(playing): %v", err)
	}
}

func (r *rig) addEnemy(id string, et component.EnemyType, pos component.Vec3) {
	stats := r.lib.Enemies[et]
	r.store.AddEnemy(component.Enemy{ID: id, Type: et, Health: stats.MaxHealth, Position: pos})
	r.world.Add(&physics.Body{
		ID: id, Tag: physics.TagEnemy, Position: pos,
		Radius: stats.Radius, Height: stats.Height,
	})
}

func (r *rig) placePlayer(pos component.Vec3) {
	if b, ok := r.world.Body(PlayerBodyID); ok {
		b.Position = pos
	} else {
		r.world.Add(&physics.Body{
			ID: PlayerBodyID, Tag: physics.TagPlayer, Position: pos,
			Radius: config.PlayerRadius, Height: playerBodyHeight,
		})
	}
	r.store.SetPlayerPosition(pos)
}

// recorder собирает события для проверок.
type recorder struct {
	mu  sync.Mutex
	got []event.Event
}

func (rec *recorder) OnEvent(e event.Event) {
	rec.mu.Lock()
	rec.got = append(rec.got, e)
	rec.mu.Unlock()
}

func (rec *recorder) of(t event.EventType) []event.Event {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	var out []event.Event
	for _, e := range rec.got {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func listen(d *event.Dispatcher, types ...event.EventType) *recorder {
	rec := &recorder{}
	for _, t := range types {
		d.Subscribe(t, rec)
	}
	return rec
}
