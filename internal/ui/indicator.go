// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-keyhunt/internal/component"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var phaseColors = map[component.GamePhase]color.RGBA{
	component.PhaseMenu:     {R: 120, G: 120, B: 120, A: 255},
	component.PhasePlaying:  {R: 0, G: 200, B: 80, A: 255},
	component.PhasePaused:   {R: 255, G: 200, B: 0, A: 255},
	component.PhaseGameOver: {R: 220, G: 40, B: 40, A: 255},
}

// StateIndicator — кружок цвета текущей фазы; пульсирует при смене фазы.
type StateIndicator struct {
	X, Y       float32
	Radius     float32
	lastChange time.Time
	phase      component.GamePhase
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

func (i *StateIndicator) Draw(screen *ebiten.Image, phase component.GamePhase) {
	if phase != i.phase {
		i.phase = phase
		i.lastChange = time.Now()
	}
	elapsed := time.Since(i.lastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, phaseColors[phase], true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}
