package defs

import "go-keyhunt/internal/component"

// LevelEnemyTypes определяет, какие типы врагов открыты на каждом уровне.
// Ключ карты — номер уровня; каждый следующий уровень добавляет один тип.
var LevelEnemyTypes = map[int][]component.EnemyType{
	1: {component.EnemyBasic},
	2: {component.EnemyBasic, component.EnemyFast},
	3: {component.EnemyBasic, component.EnemyFast, component.EnemyTank},
	4: {component.EnemyBasic, component.EnemyFast, component.EnemyTank, component.EnemySniper},
}

// AllowedEnemyTypes возвращает типы для уровня. Уровни выше последнего
// получают полный набор, уровни ниже первого — набор первого уровня.
func AllowedEnemyTypes(level int) []component.EnemyType {
	if types, ok := LevelEnemyTypes[level]; ok {
		return types
	}
	if level < 1 {
		return LevelEnemyTypes[1]
	}
	return LevelEnemyTypes[len(LevelEnemyTypes)]
}
