package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// KeyIndicator — собранные ключи и состояние цели.
type KeyIndicator struct {
	X, Y   float32
	Radius float32
	font   font.Face
}

var (
	keyColor      = color.RGBA{255, 215, 0, 255}
	goalOpenColor = color.RGBA{0, 255, 255, 255}
)

func NewKeyIndicator(x, y, radius float32, face font.Face) *KeyIndicator {
	return &KeyIndicator{X: x, Y: y, Radius: radius, font: face}
}

func (i *KeyIndicator) Draw(screen *ebiten.Image, collected, total int) {
	for j := 0; j < total; j++ {
		cx := i.X + float32(j)*(i.Radius*2+6) + i.Radius
		cy := i.Y + i.Radius
		if j < collected {
			vector.DrawFilledCircle(screen, cx, cy, i.Radius, keyColor, true)
		}
		vector.StrokeCircle(screen, cx, cy, i.Radius, 1, keyColor, true)
	}
	if total > 0 && collected >= total {
		tx := int(i.X + float32(total)*(i.Radius*2+6) + 4)
		text.Draw(screen, "GOAL OPEN", i.font, tx, int(i.Y+i.Radius)+5, goalOpenColor)
	}
}
