package rules

import (
	"errors"
	"fmt"

	"go-keyhunt/internal/component"
)

var ErrIllegalTransition = errors.New("illegal phase transition")

// transitions — допустимые рёбра машины состояний фаз.
var transitions = map[component.GamePhase][]component.GamePhase{
	component.PhaseMenu:     {component.PhasePlaying},
	component.PhasePlaying:  {component.PhasePaused, component.PhaseGameOver},
	component.PhasePaused:   {component.PhasePlaying, component.PhaseMenu},
	component.PhaseGameOver: {component.PhaseMenu, component.PhasePlaying},
}

// CanTransition reports whether from -> to is an edge of the phase machine.
func CanTransition(from, to component.GamePhase) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition проверяет ребро и переводит сессию в новую фазу.
func Transition(s component.Session, to component.GamePhase) (component.Session, error) {
	if !CanTransition(s.Phase, to) {
		return s, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s.Phase, to)
	}
	return SetPhase(s, to), nil
}

// SetPhase переводит фазу без проверки. Вход в menu или gameover
// очищает реестр врагов.
func SetPhase(s component.Session, to component.GamePhase) component.Session {
	s.Phase = to
	if to == component.PhaseMenu || to == component.PhaseGameOver {
		s = ClearEnemies(s)
	}
	return s
}

// ClearGame — успешное завершение. Срабатывает только из playing,
// иначе сессия не меняется и возвращается false.
func ClearGame(s component.Session, now float64) (component.Session, bool) {
	if s.Phase != component.PhasePlaying {
		return s, false
	}
	s = SetPhase(s, component.PhaseGameOver)
	s.IsClear = true
	s.Death = &component.DeathRecord{
		Reason: component.DeathReasonClear,
		Time:   now,
		Keys:   s.KeysCollected,
	}
	return s, true
}
