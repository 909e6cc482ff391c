package state

import (
	"fmt"
	"image/color"
	"log"

	"go-keyhunt/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*GameOverState)(nil)

var (
	clearColor = color.RGBA{0, 255, 255, 255}
	deathColor = color.RGBA{255, 68, 68, 255}
)

// GameOverState — итог забега: прохождение или смерть.
type GameOverState struct {
	sm  *StateMachine
	ctx *Context
}

func NewGameOverState(sm *StateMachine, ctx *Context) *GameOverState {
	return &GameOverState{sm: sm, ctx: ctx}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	game := s.ctx.Game
	var err error
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyR):
		err = game.Restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyM), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		err = game.ReturnToMenu()
	}
	if err != nil {
		log.Printf("gameover: %v", err)
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	v := s.ctx.Game.View()
	s.ctx.Renderer.Draw(screen, v)
	vector.DrawFilledRect(screen, 0, 0, float32(s.ctx.Width), float32(s.ctx.Height), config.OverlayColor, false)

	sess := v.Session
	y := s.ctx.Height/2 - 40
	if sess.IsClear {
		drawCentered(screen, s.ctx, "STAGE CLEAR", s.ctx.TitleFont, y, clearColor)
	} else {
		drawCentered(screen, s.ctx, "YOU DIED", s.ctx.TitleFont, y, deathColor)
		if sess.Death != nil {
			drawCentered(screen, s.ctx, "Killed by "+sess.Death.Reason, s.ctx.Font, y+30, config.TextLightColor)
		}
	}
	summary := fmt.Sprintf("Score %d   Kills %d   Keys %d/%d", sess.Score, sess.KillCount, sess.KeysCollected, sess.TotalKeys)
	if sess.Death != nil {
		summary += fmt.Sprintf("   Time %.1fs", sess.Death.Time)
	}
	drawCentered(screen, s.ctx, summary, s.ctx.Font, y+60, color.White)
	drawCentered(screen, s.ctx, "Enter: play again   M: menu", s.ctx.Font, y+100, config.TextLightColor)
}

func (s *GameOverState) Exit() {}
