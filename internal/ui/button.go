// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.Color
	BgColor    color.RGBA
	HoverColor color.RGBA
	Selected   bool
	font       font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string, face font.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  color.White,
		BgColor:    color.RGBA{R: 25, G: 35, B: 45, A: 230},
		HoverColor: color.RGBA{R: 70, G: 130, B: 180, A: 255},
		font:       face,
	}
}

// IsHovered — находится ли курсор над кнопкой.
func (b *Button) IsHovered() bool {
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked проверяет, был ли сделан клик по кнопке в этом кадре.
func (b *Button) IsClicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && b.IsHovered()
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	if b.IsHovered() || b.Selected {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	border := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	if b.Selected {
		border = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	}
	vector.StrokeRect(screen, x, y, w, h, 2, border, true)

	bounds := text.BoundString(b.font, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, b.font, textX, textY, b.TextColor)
}
