// Package rules содержит чистые функции переходов Session -> Session.
// Ни одна функция не меняет аргумент: срезы копируются перед изменением.
package rules

import (
	"go-keyhunt/internal/component"
	"go-keyhunt/internal/config"
	"go-keyhunt/pkg/utils"
)

// NewSession возвращает начальное состояние сессии.
func NewSession(stageID string, level int) component.Session {
	return component.Session{
		Phase:       component.PhaseMenu,
		StageID:     stageID,
		Level:       utils.ClampInt(level, config.MinLevel, config.MaxLevel),
		PlayerHP:    config.InitialMaxHP,
		MaxHP:       config.InitialMaxHP,
		AmmoCurrent: config.InitialAmmo,
		MaxAmmo:     config.MaxAmmo,
		AmmoReserve: config.InitialReserveAmmo,
		MaxReserve:  config.MaxReserveAmmo,
		TotalKeys:   config.InitialTotalKeys,
		CameraMode:  component.CameraThird,
		Enemies:     []component.Enemy{},
	}
}

// ResetGame возвращает сессию к начальным значениям. Уровень всегда
// сохраняется, стадия — только при preserveStage.
func ResetGame(s component.Session, preserveStage bool) component.Session {
	stage := config.DefaultStageID
	if preserveStage && s.StageID != "" {
		stage = s.StageID
	}
	return NewSession(stage, s.Level)
}

// SetStage меняет стадию и сбрасывает прогресс ключей.
func SetStage(s component.Session, id string) component.Session {
	s.StageID = id
	s.KeysCollected = 0
	s.TotalKeys = 0
	return s
}

func SetLevel(s component.Session, level int) component.Session {
	s.Level = utils.ClampInt(level, config.MinLevel, config.MaxLevel)
	return s
}

func AddScore(s component.Session, n int) component.Session {
	if n > 0 {
		s.Score += n
	}
	return s
}

// RecordKill начисляет очки за убитого врага и увеличивает счётчик убийств.
func RecordKill(s component.Session, scoreValue int) component.Session {
	s = AddScore(s, scoreValue)
	s.KillCount++
	return s
}

// RequestRespawn восстанавливает HP и сигнализирует внешнему слою
// вернуть тело игрока на точку появления.
func RequestRespawn(s component.Session) component.Session {
	s.RespawnToken++
	s.PlayerHP = s.MaxHP
	return s
}

func SetPlayerPosition(s component.Session, p component.Vec3) component.Session {
	s.PlayerPosition = p
	return s
}

func SetCamera(s component.Session, mode component.CameraMode) component.Session {
	if mode != component.CameraFirst {
		mode = component.CameraThird
	}
	s.CameraMode = mode
	return s
}

func ToggleCamera(s component.Session) component.Session {
	if s.CameraMode == component.CameraFirst {
		return SetCamera(s, component.CameraThird)
	}
	return SetCamera(s, component.CameraFirst)
}
