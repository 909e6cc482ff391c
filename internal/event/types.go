// internal/event/types.go
package event

import "go-keyhunt/internal/component"

const (
	PhaseChanged         EventType = "PhaseChanged"         // Data: PhaseChange
	TransitionRejected   EventType = "TransitionRejected"   // Data: PhaseChange
	PlayerDamaged        EventType = "PlayerDamaged"        // Data: Damage
	PlayerHealed         EventType = "PlayerHealed"         // Data: int (новое HP)
	PlayerDied           EventType = "PlayerDied"           // Data: component.DeathRecord
	GameCleared          EventType = "GameCleared"          // Data: component.DeathRecord
	EnemySpawned         EventType = "EnemySpawned"         // Data: component.Enemy
	EnemyKilled          EventType = "EnemyKilled"          // Data: EnemyKill
	EnemyMovementChanged EventType = "EnemyMovementChanged" // Data: EnemyMovement
	KeyCollected         EventType = "KeyCollected"         // Data: KeyProgress
	ItemCollected        EventType = "ItemCollected"        // Data: component.ItemSpawn
	ItemReset            EventType = "ItemReset"            // Data: int (значение триггера)
	RespawnRequested     EventType = "RespawnRequested"     // Data: int (respawn token)
	SessionReset         EventType = "SessionReset"
	StageChanged         EventType = "StageChanged" // Data: string
)

// PhaseChange — данные перехода фазы
type PhaseChange struct {
	From component.GamePhase
	To   component.GamePhase
}

// Fresh — переход в playing из menu или gameover, то есть новый забег, а не снятие паузы.
func (c PhaseChange) Fresh() bool {
	return c.To == component.PhasePlaying && c.From != component.PhasePaused
}

// Ended — сессия покинула игру: вход в menu или gameover.
func (c PhaseChange) Ended() bool {
	return c.To == component.PhaseMenu || c.To == component.PhaseGameOver
}

// Damage — кто и сколько снял у игрока
type Damage struct {
	Amount int
	Reason string
	HP     int
}

type EnemyKill struct {
	ID    string
	Type  string
	Score int
}

// EnemyMovement — смена анимации idle/moving, отправляется только при изменении
type EnemyMovement struct {
	ID     string
	Moving bool
}

type KeyProgress struct {
	Collected int
	Total     int
}
