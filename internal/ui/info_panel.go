// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"go-keyhunt/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 110
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 20
	columnSpacing  = 260
)

// InfoPanel — выезжающая снизу панель со статистикой забега.
type InfoPanel struct {
	IsVisible     bool
	fontFace      font.Face
	titleFontFace font.Face
	screenWidth   int
	screenHeight  int
	currentY      float64
	targetY       float64
}

func NewInfoPanel(face, titleFace font.Face, screenWidth, screenHeight int) *InfoPanel {
	return &InfoPanel{
		fontFace:      face,
		titleFontFace: titleFace,
		screenWidth:   screenWidth,
		screenHeight:  screenHeight,
		currentY:      float64(screenHeight),
		targetY:       float64(screenHeight),
	}
}

func (p *InfoPanel) Show() {
	p.IsVisible = true
	p.targetY = float64(p.screenHeight - panelHeight)
}

func (p *InfoPanel) Hide() {
	p.targetY = float64(p.screenHeight)
}

func (p *InfoPanel) Toggle() {
	if p.IsVisible && p.targetY < float64(p.screenHeight) {
		p.Hide()
		return
	}
	p.Show()
}

func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentY = p.targetY
	case diff > 0:
		p.currentY += animationSpeed
	default:
		p.currentY -= animationSpeed
	}
	if p.currentY >= float64(p.screenHeight) {
		p.IsVisible = false
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, v app.View) {
	if !p.IsVisible && p.currentY >= float64(p.screenHeight) {
		return
	}
	x := float32(panelMargin)
	y := float32(p.currentY) + panelMargin
	w := float32(p.screenWidth - panelMargin*2)
	h := float32(panelHeight - panelMargin*2)

	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{R: 25, G: 35, B: 45, A: 230}, true)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{R: 70, G: 130, B: 180, A: 255}, true)

	s := v.Session
	col1 := int(x) + 15
	col2 := col1 + columnSpacing
	col3 := col2 + columnSpacing
	row := int(y) + 28

	text.Draw(screen, fmt.Sprintf("Stage %s", s.StageID), p.titleFontFace, col1, row, color.White)
	row += lineHeight + 4
	text.Draw(screen, fmt.Sprintf("Score: %d", s.Score), p.fontFace, col1, row, color.White)
	text.Draw(screen, fmt.Sprintf("Kills: %d", s.KillCount), p.fontFace, col2, row, color.White)
	text.Draw(screen, fmt.Sprintf("Time: %.1fs", v.Time), p.fontFace, col3, row, color.White)
	row += lineHeight
	text.Draw(screen, fmt.Sprintf("Enemies: %d", len(v.Enemies)), p.fontFace, col1, row, color.White)
	text.Draw(screen, fmt.Sprintf("Keys: %d/%d", s.KeysCollected, s.TotalKeys), p.fontFace, col2, row, color.White)
	text.Draw(screen, fmt.Sprintf("Camera: %s", s.CameraMode), p.fontFace, col3, row, color.White)
}
