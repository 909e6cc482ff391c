package rules

import "go-keyhunt/internal/component"

func SetTotalKeys(s component.Session, total int) component.Session {
	if total < 0 {
		total = 0
	}
	s.TotalKeys = total
	if s.KeysCollected > total {
		s.KeysCollected = total
	}
	return s
}

// CollectKey — сверх TotalKeys молча игнорируется.
func CollectKey(s component.Session) component.Session {
	if s.KeysCollected < s.TotalKeys {
		s.KeysCollected++
	}
	return s
}

func ResetKeys(s component.Session) component.Session {
	s.KeysCollected = 0
	return s
}

// TriggerItemReset сигнализирует спавнерам предметов перегенерировать
// точки и сбрасывает собранные ключи.
func TriggerItemReset(s component.Session) component.Session {
	s.ItemResetTrigger++
	s.KeysCollected = 0
	return s
}

// ReachGoal — игрок коснулся цели. При закрытой цели ничего не происходит.
func ReachGoal(s component.Session, now float64) (component.Session, bool) {
	if !s.GoalUnlocked() {
		return s, false
	}
	return ClearGame(s, now)
}
