package store

import (
	"log"

	"go-keyhunt/internal/component"
	"go-keyhunt/internal/event"
	"go-keyhunt/internal/rules"
)

// SetPhase переводит фазу по таблице переходов. Недопустимый переход
// отклоняется с rules.ErrIllegalTransition и событием TransitionRejected.
func (st *Store) SetPhase(to component.GamePhase) error {
	var err error
	st.apply(func(s component.Session) (component.Session, []event.Event) {
		var next component.Session
		next, err = rules.Transition(s, to)
		if err != nil {
			return s, []event.Event{{
				Type: event.TransitionRejected,
				Data: event.PhaseChange{From: s.Phase, To: to},
			}}
		}
		return next, nil
	})
	if err != nil {
		log.Printf("store: %v", err)
	}
	return err
}

// ResetGame возвращает сессию к начальным значениям (фаза menu).
func (st *Store) ResetGame(preserveStage bool) {
	st.apply(func(s component.Session) (component.Session, []event.Event) {
		return rules.ResetGame(s, preserveStage), []event.Event{{Type: event.SessionReset}}
	})
}

// ClearGame — успешное завершение, только из playing.
func (st *Store) ClearGame(now float64) bool {
	var ok bool
	st.apply(func(s component.Session) (component.Session, []event.Event) {
		var next component.Session
		next, ok = rules.ClearGame(s, now)
		return next, nil
	})
	return ok
}

func (st *Store) SetStage(id string) {
	st.Update(func(s component.Session) component.Session { return rules.SetStage(s, id) })
}

func (st *Store) SetLevel(level int) {
	st.Update(func(s component.Session) component.Session { return rules.SetLevel(s, level) })
}

func (st *Store) AddScore(n int) {
	st.Update(func(s component.Session) component.Session { return rules.AddScore(s, n) })
}

// RecordKill начисляет очки за врага и сообщает EnemyKilled.
func (st *Store) RecordKill(e component.Enemy, scoreValue int) {
	st.apply(func(s component.Session) (component.Session, []event.Event) {
		return rules.RecordKill(s, scoreValue), []event.Event{{
			Type: event.EnemyKilled,
			Data: event.EnemyKill{ID: e.ID, Type: string(e.Type), Score: scoreValue},
		}}
	})
}

func (st *Store) RequestRespawn() {
	st.Update(rules.RequestRespawn)
}

func (st *Store) SetPlayerPosition(p component.Vec3) {
	st.Update(func(s component.Session) component.Session { return rules.SetPlayerPosition(s, p) })
}

func (st *Store) SetCamera(mode component.CameraMode) {
	st.Update(func(s component.Session) component.Session { return rules.SetCamera(s, mode) })
}

func (st *Store) ToggleCamera() {
	st.Update(rules.ToggleCamera)
}
