package system

import (
	"go-keyhunt/internal/component"
	"go-keyhunt/internal/config"
	"go-keyhunt/internal/defs"
	"go-keyhunt/internal/utils"

	pkgutils "go-keyhunt/pkg/utils"
)

// SampleRequest — параметры выборки точек предметов методом отбраковки.
type SampleRequest struct {
	Area        defs.ItemArea
	Count       int
	MinDistance float64          // между точками одной партии
	Avoid       []component.Vec3 // последняя партия другого вида предметов
	AvoidRadius float64
	MaxAttempts int
}

// SamplePoints выбирает до Count точек внутри области, вне запретного
// прямоугольника, не ближе MinDistance друг к другу и не ближе AvoidRadius
// к точкам Avoid. Координаты округляются до 0.1. Если попытки кончились,
// возвращается сколько набралось.
func SamplePoints(rng *utils.PRNGService, req SampleRequest) []component.Vec3 {
	b := req.Area.Bounds
	out := make([]component.Vec3, 0, req.Count)
	for attempt := 0; attempt < req.MaxAttempts && len(out) < req.Count; attempt++ {
		p := component.Vec3{
			X: pkgutils.Round1(rng.Range(b.XMin, b.XMax)),
			Y: pkgutils.Round1(rng.Range(b.YMin, b.YMax)),
			Z: pkgutils.Round1(rng.Range(b.ZMin, b.ZMax)),
		}
		if req.Area.Exclude.Contains(p.X, p.Z) {
			continue
		}
		if tooClose(p, out, req.MinDistance) || tooClose(p, req.Avoid, req.AvoidRadius) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func tooClose(p component.Vec3, others []component.Vec3, min float64) bool {
	for _, o := range others {
		if p.Distance(o) < min {
			return true
		}
	}
	return false
}

// SpawnCoordinator выдаёт партии ключей и сердец и помнит последние
// партии обоих видов, чтобы они не ложились друг на друга.
type SpawnCoordinator struct {
	prng       *utils.PRNGService
	LastKeys   []component.Vec3
	LastHearts []component.Vec3
}

func NewSpawnCoordinator(prng *utils.PRNGService) *SpawnCoordinator {
	return &SpawnCoordinator{prng: prng}
}

// Keys выдаёт новую партию ключей для стадии.
func (c *SpawnCoordinator) Keys(stage defs.StageDefinition, count int, maxAttempts int) []component.Vec3 {
	var points []component.Vec3
	if stage.Procedural() {
		points = SamplePoints(c.prng, SampleRequest{
			Area:        *stage.ItemArea,
			Count:       count,
			MinDistance: config.ItemBatchMinDistance,
			Avoid:       c.LastHearts,
			AvoidRadius: config.KeyCrossMinDistance,
			MaxAttempts: maxAttempts,
		})
	} else {
		points = c.pick(stage.KeySpawns, count)
	}
	c.LastKeys = points
	return points
}

// Hearts выдаёт новую партию сердец для стадии.
func (c *SpawnCoordinator) Hearts(stage defs.StageDefinition, count int, maxAttempts int) []component.Vec3 {
	var points []component.Vec3
	if stage.Procedural() {
		points = SamplePoints(c.prng, SampleRequest{
			Area:        *stage.ItemArea,
			Count:       count,
			MinDistance: config.ItemBatchMinDistance,
			Avoid:       c.LastKeys,
			AvoidRadius: config.HeartCrossMinDistance,
			MaxAttempts: maxAttempts,
		})
	} else {
		points = c.pick(stage.HeartSpawns, count)
	}
	c.LastHearts = points
	return points
}

// Reset забывает последние партии.
func (c *SpawnCoordinator) Reset() {
	c.LastKeys = nil
	c.LastHearts = nil
}

func (c *SpawnCoordinator) pick(from []defs.Point, count int) []component.Vec3 {
	idx := c.prng.Pick(len(from), count)
	out := make([]component.Vec3, len(idx))
	for i, j := range idx {
		out[i] = from[j].Vec()
	}
	return out
}
