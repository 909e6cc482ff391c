// internal/ui/player_level_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// LevelIndicator показывает уровень сложности римской цифрой, клетки
// открытых уровней и полосу убийств до следующего ящика патронов.
type LevelIndicator struct {
	X, Y             float32
	MaxLevel         int
	KillsPerDrop     int
	OutlineThickness int
	font             font.Face
}

const (
	killBarWidth     = 118
	killBarHeight    = 12
	levelRectWidth   = 16
	levelRectHeight  = 12
	levelRectGap     = 9
	borderWidth      = 1
	levelLabelOffset = 28
)

var (
	killBarColorFill = color.RGBA{70, 100, 120, 220}
	borderColor      = color.White
	levelTextColor   = color.RGBA{70, 130, 180, 255}
	maxLevelColor    = color.RGBA{220, 40, 40, 255}
)

func NewLevelIndicator(x, y float32, maxLevel, killsPerDrop int, face font.Face) *LevelIndicator {
	return &LevelIndicator{
		X:                x,
		Y:                y,
		MaxLevel:         maxLevel,
		KillsPerDrop:     killsPerDrop,
		OutlineThickness: 1,
		font:             face,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

func (i *LevelIndicator) Draw(screen *ebiten.Image, level, kills int) {
	// римская цифра с обводкой
	label := toRoman(level)
	c := levelTextColor
	if level >= i.MaxLevel {
		c = maxLevelColor
	}
	tx, ty := int(i.X), int(i.Y)+14
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, i.font, tx+dx, ty+dy, color.White)
		}
	}
	text.Draw(screen, label, i.font, tx, ty, c)

	bx := i.X + levelLabelOffset
	for j := 0; j < i.MaxLevel; j++ {
		rx := bx + float32(j)*(levelRectWidth+levelRectGap)
		vector.StrokeRect(screen, rx, i.Y, levelRectWidth, levelRectHeight, borderWidth, borderColor, true)
		if j < level {
			vector.DrawFilledRect(screen, rx+borderWidth, i.Y+borderWidth, levelRectWidth-borderWidth*2, levelRectHeight-borderWidth*2, killBarColorFill, true)
		}
	}

	by := i.Y + levelRectHeight + 8
	vector.StrokeRect(screen, bx, by, killBarWidth, killBarHeight, borderWidth, borderColor, true)
	if i.KillsPerDrop <= 0 {
		return
	}
	ratio := float32(kills%i.KillsPerDrop) / float32(i.KillsPerDrop)
	if w := float32(killBarWidth-borderWidth*2) * ratio; w > 0 {
		vector.DrawFilledRect(screen, bx+borderWidth, by+borderWidth, w, killBarHeight-borderWidth*2, killBarColorFill, true)
	}
}
