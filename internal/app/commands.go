package app

import (
	"fmt"

	"go-keyhunt/internal/component"
	"go-keyhunt/internal/interfaces"
	"go-keyhunt/internal/rules"
)

var _ interfaces.Game = (*Game)(nil)

// Start begins a fresh run on a stage. Allowed from the menu and from game over.
func (g *Game) Start(stageID string, level int) error {
	if _, err := g.Library.Stage(stageID); err != nil {
		return err
	}
	phase := g.Store.Phase()
	if !rules.CanTransition(phase, component.PhasePlaying) || phase == component.PhasePaused {
		return fmt.Errorf("%w: cannot start from %s", rules.ErrIllegalTransition, phase)
	}
	g.Store.ResetGame(false)
	g.Store.SetStage(stageID)
	g.Store.SetLevel(level)
	return g.Store.SetPhase(component.PhasePlaying)
}

func (g *Game) Pause() error {
	return g.Store.SetPhase(component.PhasePaused)
}

func (g *Game) Resume() error {
	return g.Store.SetPhase(component.PhasePlaying)
}

// Restart начинает заново на той же стадии после окончания игры.
func (g *Game) Restart() error {
	if phase := g.Store.Phase(); phase != component.PhaseGameOver {
		return fmt.Errorf("%w: cannot restart from %s", rules.ErrIllegalTransition, phase)
	}
	g.Store.ResetGame(true)
	return g.Store.SetPhase(component.PhasePlaying)
}

// ReturnToMenu выходит в меню из паузы или после окончания игры.
func (g *Game) ReturnToMenu() error {
	if err := g.Store.SetPhase(component.PhaseMenu); err != nil {
		return err
	}
	g.Store.ResetGame(true)
	return nil
}

// Respawn восстанавливает игрока из паузы и продолжает игру.
func (g *Game) Respawn() error {
	if phase := g.Store.Phase(); phase != component.PhasePaused {
		return fmt.Errorf("%w: cannot respawn from %s", rules.ErrIllegalTransition, phase)
	}
	g.Store.RequestRespawn()
	return g.Store.SetPhase(component.PhasePlaying)
}

// SelectStage меняет стадию в меню.
func (g *Game) SelectStage(stageID string) error {
	if _, err := g.Library.Stage(stageID); err != nil {
		return err
	}
	if phase := g.Store.Phase(); phase != component.PhaseMenu {
		return fmt.Errorf("%w: stage can only change in menu, now %s", rules.ErrIllegalTransition, phase)
	}
	g.Store.SetStage(stageID)
	g.RespawnPlayer()
	return nil
}

func (g *Game) SelectLevel(level int) {
	g.Store.SetLevel(level)
}

func (g *Game) ToggleCamera() {
	g.Store.ToggleCamera()
}

func (g *Game) Session() component.Session {
	return g.Store.Snapshot()
}
