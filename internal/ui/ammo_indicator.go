package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// AmmoIndicator рисует патроны магазина столбиками и запас числом.
type AmmoIndicator struct {
	X, Y float32
	font font.Face
}

const (
	roundWidth  = 5
	roundHeight = 16
	roundGap    = 3
)

var (
	roundColor      = color.RGBA{194, 178, 128, 255}
	emptyRoundColor = color.RGBA{60, 60, 60, 255}
)

func NewAmmoIndicator(x, y float32, face font.Face) *AmmoIndicator {
	return &AmmoIndicator{X: x, Y: y, font: face}
}

func (i *AmmoIndicator) Draw(screen *ebiten.Image, current, maxAmmo, reserve int) {
	for j := 0; j < maxAmmo; j++ {
		c := roundColor
		if j >= current {
			c = emptyRoundColor
		}
		x := i.X + float32(j)*(roundWidth+roundGap)
		vector.DrawFilledRect(screen, x, i.Y, roundWidth, roundHeight, c, false)
	}
	label := fmt.Sprintf("%d / %d", current, reserve)
	tx := int(i.X) + maxAmmo*(roundWidth+roundGap) + 8
	text.Draw(screen, label, i.font, tx, int(i.Y)+roundHeight-2, color.White)
	if current == 0 && reserve > 0 {
		text.Draw(screen, "R: reload", i.font, int(i.X), int(i.Y)+roundHeight+16, color.RGBA{255, 200, 0, 255})
	}
}
