// internal/state/pause_state.go
package state

import (
	"image/color"
	"log"

	"go-keyhunt/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var _ State = (*PauseState)(nil)

// PauseState — мир заморожен и рисуется под затемнением.
type PauseState struct {
	sm  *StateMachine
	ctx *Context
}

func NewPauseState(sm *StateMachine, ctx *Context) *PauseState {
	return &PauseState{sm: sm, ctx: ctx}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	game := s.ctx.Game
	var err error
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyP):
		err = game.Resume()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		err = game.Respawn()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		err = game.ReturnToMenu()
	}
	if err != nil {
		log.Printf("pause: %v", err)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.ctx.Renderer.Draw(screen, s.ctx.Game.View())
	vector.DrawFilledRect(screen, 0, 0, float32(s.ctx.Width), float32(s.ctx.Height), config.OverlayColor, false)

	drawCentered(screen, s.ctx, "PAUSED", s.ctx.TitleFont, s.ctx.Height/2-20, color.White)
	drawCentered(screen, s.ctx, "Esc: resume   R: respawn   M: menu", s.ctx.Font, s.ctx.Height/2+20, config.TextLightColor)
}

func (s *PauseState) Exit() {}

func drawCentered(screen *ebiten.Image, ctx *Context, str string, face font.Face, y int, c color.Color) {
	b := text.BoundString(face, str)
	text.Draw(screen, str, face, (ctx.Width-b.Dx())/2, y, c)
}
