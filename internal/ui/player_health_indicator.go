// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HealthCells         = 10
	HealthCircleRadius  = 8.0
	HealthCircleSpacing = 4.0
)

// PlayerHealthIndicator отображает здоровье игрока рядом кружков,
// по одному на десятую часть максимума.
type PlayerHealthIndicator struct {
	X, Y float32
	font font.Face
}

func NewPlayerHealthIndicator(x, y float32, face font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, font: face}
}

func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	if maxHealth <= 0 {
		return
	}
	filled := (health*HealthCells + maxHealth - 1) / maxHealth
	low := health*2 <= maxHealth

	for j := 0; j < HealthCells; j++ {
		cx := i.X + float32(j)*(HealthCircleRadius*2+HealthCircleSpacing) + HealthCircleRadius
		cy := i.Y + HealthCircleRadius

		var c color.RGBA
		switch {
		case j >= filled:
			c = color.RGBA{A: 255}
		case low:
			c = color.RGBA{R: 220, G: 40, B: 40, A: 255}
		default:
			c = color.RGBA{R: 40, G: 200, B: 80, A: 255}
		}
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, c, true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, color.White, true)
	}

	label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	text.Draw(screen, label, i.font, int(i.X), int(i.Y)-6, color.White)
}

// Height возвращает общую высоту индикатора вместе с подписью.
func (i *PlayerHealthIndicator) Height() float32 {
	return 25 + HealthCircleRadius*2
}
