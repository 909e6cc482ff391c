// internal/defs/types.go
package defs

import (
	"go-keyhunt/internal/component"
	"go-keyhunt/pkg/utils"
)

// Point is a coordinate triple as written in definition files: [x, y, z].
type Point [3]float64

func (p Point) Vec() component.Vec3 {
	return component.Vec3{X: p[0], Y: p[1], Z: p[2]}
}

func toVecs(points []Point) []component.Vec3 {
	out := make([]component.Vec3, len(points))
	for i, p := range points {
		out[i] = p.Vec()
	}
	return out
}

// Rect is an axis-aligned rectangle on the XZ plane, bounds inclusive.
type Rect struct {
	XMin float64 `yaml:"x_min" json:"x_min"`
	XMax float64 `yaml:"x_max" json:"x_max"`
	ZMin float64 `yaml:"z_min" json:"z_min"`
	ZMax float64 `yaml:"z_max" json:"z_max"`
}

// Contains reports whether (x, z) lies inside the rectangle.
func (r Rect) Contains(x, z float64) bool {
	return x >= r.XMin && x <= r.XMax && z >= r.ZMin && z <= r.ZMax
}

// Bounds is the sampling volume for procedurally placed items.
type Bounds struct {
	Rect `yaml:",inline"`
	YMin float64 `yaml:"y_min" json:"y_min"`
	YMax float64 `yaml:"y_max" json:"y_max"`
}

func clampInt(v, minV, maxV int) int {
	return utils.ClampInt(v, minV, maxV)
}

func clampFloat(v, minV, maxV float64) float64 {
	return utils.ClampFloat(v, minV, maxV)
}
