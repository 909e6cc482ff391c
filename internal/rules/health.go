package rules

import "go-keyhunt/internal/component"

// TakeDamage снимает HP в любой фазе, не ниже нуля.
// Смерть фиксируется только при переходе через ноль в фазе playing,
// повторные сообщения о смерти метаданные не перезаписывают.
func TakeDamage(s component.Session, amount int, reason string, now float64) component.Session {
	if amount <= 0 {
		return s
	}
	s.PlayerHP -= amount
	if s.PlayerHP < 0 {
		s.PlayerHP = 0
	}
	if s.PlayerHP > 0 || s.Phase != component.PhasePlaying {
		return s
	}

	s = SetPhase(s, component.PhaseGameOver)
	s.IsClear = false
	s.Death = &component.DeathRecord{
		Reason: reason,
		Time:   now,
		Keys:   s.KeysCollected,
	}
	return s
}

// Heal добавляет HP, не выше MaxHP. Фазу не меняет: после смерти
// игра остаётся в gameover.
func Heal(s component.Session, amount int) component.Session {
	if amount <= 0 {
		return s
	}
	s.PlayerHP += amount
	if s.PlayerHP > s.MaxHP {
		s.PlayerHP = s.MaxHP
	}
	return s
}

// Dead reports whether the session ended with the player's death.
func Dead(s component.Session) bool {
	return s.Phase == component.PhaseGameOver && !s.IsClear && s.Death != nil
}
