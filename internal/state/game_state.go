// internal/state/game_state.go
package state

import (
	"image/color"
	"log"

	"go-keyhunt/internal/component"
	"go-keyhunt/internal/config"
	"go-keyhunt/internal/ui"
	"go-keyhunt/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*GameState)(nil)

// GameState — идёт игра: ввод превращается в Intent, мир рисуется сверху.
type GameState struct {
	sm          *StateMachine
	ctx         *Context
	indicator   *ui.StateIndicator
	pauseButton *ui.PauseButton
	health      *ui.PlayerHealthIndicator
	ammo        *ui.AmmoIndicator
	keys        *ui.KeyIndicator
	level       *ui.LevelIndicator
	infoPanel   *ui.InfoPanel
	yaw         float64
}

func NewGameState(sm *StateMachine, ctx *Context) *GameState {
	w := float32(ctx.Width)
	health := ui.NewPlayerHealthIndicator(20, 40, ctx.Font)
	keysY := 40 + health.Height() - 10
	return &GameState{
		sm:          sm,
		ctx:         ctx,
		indicator:   ui.NewStateIndicator(w-30, 30, 10),
		pauseButton: ui.NewPauseButton(w-70, 30, 10, color.RGBA{200, 200, 200, 255}, color.RGBA{0, 200, 80, 255}),
		health:      health,
		ammo:        ui.NewAmmoIndicator(20, float32(ctx.Height)-50, ctx.Font),
		keys:        ui.NewKeyIndicator(20, keysY, 8, ctx.Font),
		level:       ui.NewLevelIndicator(20, keysY+30, config.MaxLevel, config.AmmoSpawnPerKills, ctx.Font),
		infoPanel:   ui.NewInfoPanel(ctx.Font, ctx.TitleFont, ctx.Width, ctx.Height),
	}
}

func (g *GameState) Enter() {
	g.yaw = g.ctx.Game.PlayerSystem.Yaw()
}

func (g *GameState) Update(deltaTime float64) {
	game := g.ctx.Game
	g.infoPanel.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) || g.pauseClicked() {
		if err := game.Pause(); err != nil {
			log.Printf("game: pause: %v", err)
		}
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		game.ToggleCamera()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.infoPanel.Toggle()
	}

	game.Update(deltaTime, g.intent())
}

func (g *GameState) pauseClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return g.pauseButton.IsClicked(x, y)
}

// intent снимает состояние клавиатуры и мыши. Взгляд направлен на курсор.
func (g *GameState) intent() component.Intent {
	v := g.ctx.Game.View()
	vp := g.ctx.Renderer.Viewport()
	cx, cy := ebiten.CursorPosition()
	wx, wz := vp.ToWorld(float64(cx), float64(cy))
	if wx != v.Player.X || wz != v.Player.Z {
		g.yaw = utils.Yaw(wx-v.Player.X, wz-v.Player.Z)
	}

	return component.Intent{
		Forward:   ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Backward:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:      ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:     ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:      ebiten.IsKeyPressed(ebiten.KeySpace),
		Shoot:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Reload:    inpututil.IsKeyJustPressed(ebiten.KeyR),
		CameraYaw: g.yaw,
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	v := g.ctx.Game.View()
	g.ctx.Renderer.Draw(screen, v)

	s := v.Session
	g.health.Draw(screen, s.PlayerHP, s.MaxHP)
	g.keys.Draw(screen, s.KeysCollected, s.TotalKeys)
	g.level.Draw(screen, s.Level, s.KillCount)
	g.ammo.Draw(screen, s.AmmoCurrent, s.MaxAmmo, s.AmmoReserve)
	g.pauseButton.SetPaused(s.Phase == component.PhasePaused)
	g.pauseButton.Draw(screen)
	g.indicator.Draw(screen, s.Phase)
	g.infoPanel.Draw(screen, v)
}

func (g *GameState) Exit() {}
