// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"go-keyhunt/internal/config"
	"go-keyhunt/internal/interfaces"
	"go-keyhunt/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var _ State = (*MenuState)(nil)

const (
	menuButtonWidth  = 260
	menuButtonHeight = 44
	menuButtonGap    = 12
)

// MenuState — выбор стадии и уровня.
type MenuState struct {
	sm       *StateMachine
	ctx      *Context
	game     interfaces.Game
	stageIDs []string
	buttons  []*ui.Button
	start    *ui.Button
	level    *ui.LevelIndicator
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	m := &MenuState{
		sm:       sm,
		ctx:      ctx,
		game:     ctx.Game,
		stageIDs: ctx.Game.Library.StageIDs(),
	}
	x := (ctx.Width - menuButtonWidth) / 2
	y := 220
	for _, id := range m.stageIDs {
		name := id
		if stage, err := ctx.Game.Library.Stage(id); err == nil {
			name = stage.DisplayName
		}
		rect := image.Rect(x, y, x+menuButtonWidth, y+menuButtonHeight)
		m.buttons = append(m.buttons, ui.NewButton(rect, name, ctx.Font))
		y += menuButtonHeight + menuButtonGap
	}
	y += menuButtonGap * 2
	m.start = ui.NewButton(image.Rect(x, y, x+menuButtonWidth, y+menuButtonHeight), "START", ctx.TitleFont)
	m.level = ui.NewLevelIndicator(float32(x), float32(y+menuButtonHeight+30), config.MaxLevel, config.AmmoSpawnPerKills, ctx.Font)
	return m
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	s := m.game.Session()
	for i, b := range m.buttons {
		b.Selected = m.stageIDs[i] == s.StageID
		if b.IsClicked() {
			if err := m.game.SelectStage(m.stageIDs[i]); err != nil {
				log.Printf("menu: %v", err)
			}
		}
	}

	levelKeys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}
	for i, k := range levelKeys {
		if inpututil.IsKeyJustPressed(k) {
			m.game.SelectLevel(i + 1)
		}
	}

	if m.start.IsClicked() || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s = m.game.Session()
		if err := m.game.Start(s.StageID, s.Level); err != nil {
			log.Printf("menu: start: %v", err)
		}
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	title := "KEY HUNT"
	b := text.BoundString(m.ctx.TitleFont, title)
	text.Draw(screen, title, m.ctx.TitleFont, (m.ctx.Width-b.Dx())/2, 140, color.White)

	hint := "Select a stage, press 1-4 for level, Enter to start"
	hb := text.BoundString(m.ctx.Font, hint)
	text.Draw(screen, hint, m.ctx.Font, (m.ctx.Width-hb.Dx())/2, 180, config.TextLightColor)

	for _, btn := range m.buttons {
		btn.Draw(screen)
	}
	m.start.Draw(screen)

	s := m.game.Session()
	m.level.Draw(screen, s.Level, 0)
	text.Draw(screen, fmt.Sprintf("Level %d", s.Level), m.ctx.Font, int(m.level.X)+170, int(m.level.Y)+12, color.White)
}

func (m *MenuState) Exit() {}
