package store

import (
	"go-keyhunt/internal/component"
	"go-keyhunt/internal/event"
	"go-keyhunt/internal/rules"
)

// AddEnemy добавляет врага в реестр; false при повторном ID.
func (st *Store) AddEnemy(e component.Enemy) bool {
	var ok bool
	st.apply(func(s component.Session) (component.Session, []event.Event) {
		var next component.Session
		next, ok = rules.AddEnemy(s, e)
		if !ok {
			return s, nil
		}
		return next, []event.Event{{Type: event.EnemySpawned, Data: e}}
	})
	return ok
}

func (st *Store) RemoveEnemy(id string) {
	st.Update(func(s component.Session) component.Session { return rules.RemoveEnemy(s, id) })
}

func (st *Store) UpdateEnemyHealth(id string, health int) {
	st.Update(func(s component.Session) component.Session { return rules.UpdateEnemyHealth(s, id, health) })
}

func (st *Store) UpdateEnemyPosition(id string, p component.Vec3) {
	st.Update(func(s component.Session) component.Session { return rules.UpdateEnemyPosition(s, id, p) })
}

func (st *Store) ClearEnemies() {
	st.Update(rules.ClearEnemies)
}

// SweepDead удаляет врагов с нулевым здоровьем и возвращает их.
func (st *Store) SweepDead() []component.Enemy {
	var dead []component.Enemy
	st.Update(func(s component.Session) component.Session {
		var next component.Session
		next, dead = rules.SweepDead(s)
		return next
	})
	return dead
}
