package interfaces

import "go-keyhunt/internal/component"

// Game — команды сессии, которые вызывают экраны и сетевой хост.
type Game interface {
	Start(stageID string, level int) error
	Pause() error
	Resume() error
	Restart() error
	ReturnToMenu() error
	Respawn() error
	SelectStage(stageID string) error
	SelectLevel(level int)
	ToggleCamera()
	Session() component.Session
}
