package rules

import "go-keyhunt/internal/component"

// Shoot тратит патрон из магазина. false — стрелять нечем, снаряд не создаётся.
func Shoot(s component.Session) (component.Session, bool) {
	if s.AmmoCurrent <= 0 {
		return s, false
	}
	s.AmmoCurrent--
	return s, true
}

// Reload переносит из запаса столько, сколько влезет в магазин.
func Reload(s component.Session) component.Session {
	transferable := s.MaxAmmo - s.AmmoCurrent
	if s.AmmoReserve < transferable {
		transferable = s.AmmoReserve
	}
	if transferable <= 0 {
		return s
	}
	s.AmmoCurrent += transferable
	s.AmmoReserve -= transferable
	return s
}

// CanPickupAmmo — подбор возможен, пока запас не полон.
func CanPickupAmmo(s component.Session) bool {
	return s.AmmoReserve < s.MaxReserve
}

// PickupAmmo пополняет запас. При полном запасе предмет остаётся в мире (false).
func PickupAmmo(s component.Session, amount int) (component.Session, bool) {
	if !CanPickupAmmo(s) || amount <= 0 {
		return s, false
	}
	s.AmmoReserve += amount
	if s.AmmoReserve > s.MaxReserve {
		s.AmmoReserve = s.MaxReserve
	}
	return s, true
}
