// internal/system/state.go
package system

import (
	"go-keyhunt/internal/event"
	"go-keyhunt/internal/interfaces"
)

// StateSystem приводит мир в соответствие с фазой сессии: при выходе из
// игры убирает врагов и снаряды, при новом забеге и респавне ставит игрока
// на точку появления.
type StateSystem struct {
	gameContext     interfaces.GameContext // Используем интерфейс из interfaces
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.PhaseChanged, ss)
	eventDispatcher.Subscribe(event.RespawnRequested, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.PhaseChanged:
		change, ok := e.Data.(event.PhaseChange)
		if !ok {
			return
		}
		if change.Ended() {
			s.gameContext.ClearEnemies()
			s.gameContext.ClearProjectiles()
		}
		if change.Fresh() {
			s.gameContext.ClearProjectiles()
			s.gameContext.RespawnPlayer()
		}
	case event.RespawnRequested:
		s.gameContext.RespawnPlayer()
	}
}
