// internal/state/state.go
package state

import (
	"go-keyhunt/internal/app"
	"go-keyhunt/internal/component"
	"go-keyhunt/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// State — интерфейс для всех экранов
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — структура для управления экранами
type StateMachine struct {
	current State
	phase   component.GamePhase
	ctx     *Context
}

// Context — общее для всех экранов: симуляция, шрифты и рендерер мира.
type Context struct {
	Game      *app.Game
	Renderer  *render.ArenaRenderer
	Font      font.Face
	TitleFont font.Face
	Width     int
	Height    int
}

func NewStateMachine(ctx *Context) *StateMachine {
	return &StateMachine{ctx: ctx}
}

// SetState устанавливает новый экран
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Sync переключает экран, если фаза сессии изменилась.
func (sm *StateMachine) Sync() {
	phase := sm.ctx.Game.Store.Phase()
	if sm.current != nil && phase == sm.phase {
		return
	}
	sm.phase = phase
	sm.SetState(sm.screenFor(phase))
}

func (sm *StateMachine) screenFor(phase component.GamePhase) State {
	switch phase {
	case component.PhasePlaying:
		return NewGameState(sm, sm.ctx)
	case component.PhasePaused:
		return NewPauseState(sm, sm.ctx)
	case component.PhaseGameOver:
		return NewGameOverState(sm, sm.ctx)
	default:
		return NewMenuState(sm, sm.ctx)
	}
}

// Update обновляет текущий экран и следит за фазой
func (sm *StateMachine) Update(deltaTime float64) {
	sm.Sync()
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
	sm.Sync()
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
