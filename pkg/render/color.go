// pkg/render/color.go
package render

import (
	"image/color"

	"go-keyhunt/pkg/utils"
)

// ArenaColors holds the palette for the arena renderer.
type ArenaColors struct {
	Background   color.RGBA
	Grid         color.RGBA
	Player       color.RGBA
	Aim          color.RGBA
	Key          color.RGBA
	Heart        color.RGBA
	Ammo         color.RGBA
	GoalLocked   color.RGBA
	GoalOpen     color.RGBA
	ResetReady   color.RGBA
	ResetCool    color.RGBA
	PlayerBullet color.RGBA
	EnemyBullet  color.RGBA
	HealthFill   color.RGBA
	HealthBack   color.RGBA
	Text         color.RGBA
	StrokeWidth  float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// colorOr возвращает разобранный цвет или запасной.
func colorOr(s string, fallback color.RGBA) color.RGBA {
	c, err := utils.ParseHexColor(s)
	if err != nil {
		return fallback
	}
	return c
}
