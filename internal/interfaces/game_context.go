// internal/interfaces/game_context.go
package interfaces

// GameContext — то, что StateSystem делает с миром при смене фазы.
type GameContext interface {
	ClearEnemies()
	ClearProjectiles()
	RespawnPlayer()
}
