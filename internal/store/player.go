package store

import (
	"go-keyhunt/internal/component"
	"go-keyhunt/internal/event"
	"go-keyhunt/internal/rules"
)

func (st *Store) TakeDamage(amount int, reason string, now float64) {
	st.apply(func(s component.Session) (component.Session, []event.Event) {
		next := rules.TakeDamage(s, amount, reason, now)
		if next.PlayerHP == s.PlayerHP {
			return next, nil
		}
		return next, []event.Event{{
			Type: event.PlayerDamaged,
			Data: event.Damage{Amount: s.PlayerHP - next.PlayerHP, Reason: reason, HP: next.PlayerHP},
		}}
	})
}

func (st *Store) Heal(amount int) {
	st.Update(func(s component.Session) component.Session { return rules.Heal(s, amount) })
}

// Shoot returns false when the magazine is empty; no projectile should be created.
func (st *Store) Shoot() bool {
	var fired bool
	st.Update(func(s component.Session) component.Session {
		var next component.Session
		next, fired = rules.Shoot(s)
		return next
	})
	return fired
}

func (st *Store) Reload() {
	st.Update(rules.Reload)
}

// PickupAmmo returns false when the reserve is full and the item must stay.
func (st *Store) PickupAmmo(amount int) bool {
	var ok bool
	st.Update(func(s component.Session) component.Session {
		var next component.Session
		next, ok = rules.PickupAmmo(s, amount)
		return next
	})
	return ok
}

func (st *Store) SetTotalKeys(total int) {
	st.Update(func(s component.Session) component.Session { return rules.SetTotalKeys(s, total) })
}

func (st *Store) CollectKey() {
	st.Update(rules.CollectKey)
}

func (st *Store) ResetKeys() {
	st.Update(rules.ResetKeys)
}

func (st *Store) TriggerItemReset() {
	st.Update(rules.TriggerItemReset)
}

// ReachGoal — касание цели; срабатывает только при открытой цели.
func (st *Store) ReachGoal(now float64) bool {
	var ok bool
	st.Update(func(s component.Session) component.Session {
		var next component.Session
		next, ok = rules.ReachGoal(s, now)
		return next
	})
	return ok
}
