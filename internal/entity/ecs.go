// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-keyhunt/internal/component"
)

// ECS хранит рантайм-данные симуляции, которые не входят в Session:
// таймеры ИИ, летящие снаряды и предметы в мире. Реестр врагов живёт в store.
type ECS struct {
	GameTime    float64 // время симуляции, идёт только в фазе playing
	NextID      int
	AI          map[string]*component.AIState
	Projectiles map[int]*component.Projectile
	Items       map[string]*component.ItemSpawn
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		AI:          make(map[string]*component.AIState),
		Projectiles: make(map[int]*component.Projectile),
		Items:       make(map[string]*component.ItemSpawn),
	}
}

func (ecs *ECS) NewEntity() int {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// ProjectileIDs возвращает ID снарядов по возрастанию.
func (ecs *ECS) ProjectileIDs() []int {
	ids := make([]int, 0, len(ecs.Projectiles))
	for id := range ecs.Projectiles {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// ItemIDs возвращает ID предметов по возрастанию.
func (ecs *ECS) ItemIDs() []string {
	ids := make([]string, 0, len(ecs.Items))
	for id := range ecs.Items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ItemsOfKind возвращает несобранные предметы одного вида.
func (ecs *ECS) ItemsOfKind(kind component.ItemKind) []component.ItemSpawn {
	var out []component.ItemSpawn
	for _, id := range ecs.ItemIDs() {
		it := ecs.Items[id]
		if it.Kind == kind && !it.Collected {
			out = append(out, *it)
		}
	}
	return out
}

// RemoveItems убирает все предметы вида kind.
func (ecs *ECS) RemoveItems(kind component.ItemKind) {
	for id, it := range ecs.Items {
		if it.Kind == kind {
			delete(ecs.Items, id)
		}
	}
}
