package rules

import "go-keyhunt/internal/component"

// AddEnemy добавляет врага. Повторный ID отклоняется (false), реестр не меняется.
// Лимит размера реестра проверяет спавнер, не реестр.
func AddEnemy(s component.Session, e component.Enemy) (component.Session, bool) {
	if e.ID == "" {
		return s, false
	}
	if _, exists := s.FindEnemy(e.ID); exists {
		return s, false
	}
	if e.Health < 0 {
		e.Health = 0
	}
	enemies := make([]component.Enemy, len(s.Enemies), len(s.Enemies)+1)
	copy(enemies, s.Enemies)
	s.Enemies = append(enemies, e)
	return s, true
}

func RemoveEnemy(s component.Session, id string) component.Session {
	idx := enemyIndex(s, id)
	if idx < 0 {
		return s
	}
	enemies := make([]component.Enemy, 0, len(s.Enemies)-1)
	enemies = append(enemies, s.Enemies[:idx]...)
	s.Enemies = append(enemies, s.Enemies[idx+1:]...)
	return s
}

// UpdateEnemyHealth заменяет только здоровье. Враг с нулём не удаляется.
func UpdateEnemyHealth(s component.Session, id string, health int) component.Session {
	if health < 0 {
		health = 0
	}
	return updateEnemy(s, id, func(e *component.Enemy) { e.Health = health })
}

func UpdateEnemyPosition(s component.Session, id string, p component.Vec3) component.Session {
	return updateEnemy(s, id, func(e *component.Enemy) { e.Position = p })
}

func ClearEnemies(s component.Session) component.Session {
	if len(s.Enemies) == 0 && s.Enemies != nil {
		return s
	}
	s.Enemies = []component.Enemy{}
	return s
}

// SweepDead удаляет врагов с health <= 0 и возвращает их.
func SweepDead(s component.Session) (component.Session, []component.Enemy) {
	var dead []component.Enemy
	alive := make([]component.Enemy, 0, len(s.Enemies))
	for _, e := range s.Enemies {
		if e.Health <= 0 {
			dead = append(dead, e)
			continue
		}
		alive = append(alive, e)
	}
	if len(dead) == 0 {
		return s, nil
	}
	s.Enemies = alive
	return s, dead
}

func enemyIndex(s component.Session, id string) int {
	for i, e := range s.Enemies {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func updateEnemy(s component.Session, id string, mutate func(e *component.Enemy)) component.Session {
	idx := enemyIndex(s, id)
	if idx < 0 {
		return s
	}
	enemies := make([]component.Enemy, len(s.Enemies))
	copy(enemies, s.Enemies)
	mutate(&enemies[idx])
	s.Enemies = enemies
	return s
}
