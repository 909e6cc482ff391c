package component

import "fmt"

// GamePhase — фаза игровой сессии
type GamePhase int

const (
	PhaseMenu GamePhase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

var phaseNames = map[GamePhase]string{
	PhaseMenu:     "menu",
	PhasePlaying:  "playing",
	PhasePaused:   "paused",
	PhaseGameOver: "gameover",
}

func (p GamePhase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

func (p GamePhase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *GamePhase) UnmarshalText(b []byte) error {
	for phase, name := range phaseNames {
		if name == string(b) {
			*p = phase
			return nil
		}
	}
	return fmt.Errorf("unknown game phase %q", string(b))
}

// CameraMode — режим камеры, хранится только для визуального слоя
type CameraMode string

const (
	CameraThird CameraMode = "third"
	CameraFirst CameraMode = "first"
)
