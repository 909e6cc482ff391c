// Package physics is a small kinematic world: bodies with position and
// velocity, gravity, a flat ground plane and overlap queries by tag.
package physics

import (
	"math"
	"sort"

	"go-keyhunt/internal/component"
)

// Tag — категория тела, передаётся в результатах запросов пересечения
type Tag string

const (
	TagPlayer  Tag = "player"
	TagEnemy   Tag = "enemy"
	TagTerrain Tag = "terrain"
	TagItem    Tag = "item"
)

// Body — вертикальная капсула: Position — точка у ног, Height — рост.
type Body struct {
	ID       string
	Tag      Tag
	Position component.Vec3
	Velocity component.Vec3
	Radius   float64
	Height   float64
	Gravity  bool // подвержено ли тело гравитации
	Static   bool // Step не двигает тело и не ставит его на землю
	Grounded bool
}

// Center — середина капсулы.
func (b *Body) Center() component.Vec3 {
	return b.Position.Add(component.Vec3{Y: b.Height / 2})
}

// contains — лежит ли точка внутри капсулы, расширенной на pad.
func (b *Body) contains(p component.Vec3, pad float64) bool {
	r := b.Radius + pad
	if p.PlanarDistance(b.Position) > r {
		return false
	}
	return p.Y >= b.Position.Y-pad && p.Y <= b.Position.Y+b.Height+pad
}

type World struct {
	Gravity float64
	GroundY float64
	bodies  map[string]*Body
}

func NewWorld(gravity float64) *World {
	return &World{
		Gravity: gravity,
		bodies:  make(map[string]*Body),
	}
}

// Add регистрирует тело; тело с тем же ID заменяется.
func (w *World) Add(b *Body) {
	w.bodies[b.ID] = b
}

func (w *World) Remove(id string) {
	delete(w.bodies, id)
}

func (w *World) Body(id string) (*Body, bool) {
	b, ok := w.bodies[id]
	return b, ok
}

// Bodies возвращает тела с тегом в порядке ID.
func (w *World) Bodies(tag Tag) []*Body {
	out := make([]*Body, 0, len(w.bodies))
	for _, b := range w.bodies {
		if b.Tag == tag {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// RemoveTag убирает все тела с тегом.
func (w *World) RemoveTag(tag Tag) {
	for id, b := range w.bodies {
		if b.Tag == tag {
			delete(w.bodies, id)
		}
	}
}

// SetHorizontalVelocity задаёт скорость в плоскости XZ, вертикальная не меняется.
func (w *World) SetHorizontalVelocity(id string, v component.Vec3) {
	if b, ok := w.bodies[id]; ok {
		b.Velocity.X = v.X
		b.Velocity.Z = v.Z
	}
}

// ApplyImpulse добавляет вертикальную скорость (масса принята за 1).
func (w *World) ApplyImpulse(id string, vy float64) {
	if b, ok := w.bodies[id]; ok {
		b.Velocity.Y += vy
		b.Grounded = false
	}
}

// Teleport ставит тело в точку и гасит скорость.
func (w *World) Teleport(id string, p component.Vec3) {
	if b, ok := w.bodies[id]; ok {
		b.Position = p
		b.Velocity = component.Vec3{}
		b.Grounded = false
	}
}

// Step интегрирует все тела на dt секунд.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for _, b := range w.bodies {
		if b.Static {
			continue
		}
		if b.Gravity {
			b.Velocity.Y -= w.Gravity * dt
		}
		b.Position = b.Position.Add(b.Velocity.Scale(dt))
		if b.Position.Y <= w.GroundY {
			b.Position.Y = w.GroundY
			if b.Velocity.Y < 0 {
				b.Velocity.Y = 0
			}
			b.Grounded = true
		} else {
			b.Grounded = false
		}
	}
}

// OverlapSphere возвращает тела с тегом, пересекающие сферу.
func (w *World) OverlapSphere(center component.Vec3, radius float64, tag Tag) []*Body {
	var out []*Body
	for _, b := range w.Bodies(tag) {
		if b.contains(center, radius) {
			out = append(out, b)
		}
	}
	return out
}

// Sweep ведёт сферу радиуса radius от from к to и возвращает первое
// задетое тело с тегом. Шаг не больше радиуса капсулы, чтобы быстрые
// снаряды не пролетали насквозь.
func (w *World) Sweep(from, to component.Vec3, radius float64, tag Tag) (*Body, bool) {
	return w.SweepWhere(from, to, radius, tag, nil)
}

// SweepWhere — Sweep, пропускающий тела, для которых accept вернул false.
// nil accept принимает все тела.
func (w *World) SweepWhere(from, to component.Vec3, radius float64, tag Tag, accept func(*Body) bool) (*Body, bool) {
	var candidates []*Body
	for _, b := range w.Bodies(tag) {
		if accept == nil || accept(b) {
			candidates = append(candidates, b)
		}
	}
	if len(candidates) == 0 {
		return nil, false
	}
	delta := to.Sub(from)
	length := delta.Len()

	step := math.MaxFloat64
	for _, b := range candidates {
		if s := b.Radius + radius; s < step {
			step = s
		}
	}
	n := 1
	if step > 0 && length > step {
		n = int(math.Ceil(length / step))
	}

	for i := 0; i <= n; i++ {
		p := from.Add(delta.Scale(float64(i) / float64(n)))
		for _, b := range candidates {
			if b.contains(p, radius) {
				return b, true
			}
		}
	}
	return nil, false
}

// HitsGround reports whether a point is at or below the ground plane.
func (w *World) HitsGround(p component.Vec3) bool {
	return p.Y <= w.GroundY
}
