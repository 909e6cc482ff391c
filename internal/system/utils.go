// internal/system/utils.go
package system

import (
	"math"

	"go-keyhunt/internal/component"
	"go-keyhunt/internal/config"
	"go-keyhunt/internal/defs"
)

// PlayerBodyID — ID тела игрока в физическом мире.
const PlayerBodyID = "player"

const playerBodyHeight = 2*config.PlayerRadius + config.CameraHeight

// stageFor возвращает стадию по ID; неизвестная стадия заменяется стадией по умолчанию.
func stageFor(lib *defs.Library, id string) defs.StageDefinition {
	if stage, err := lib.Stage(id); err == nil {
		return stage
	}
	stage, _ := lib.Stage(config.DefaultStageID)
	return stage
}

// aimDirection — единичный вектор взгляда по углам камеры.
// yaw = 0 смотрит вдоль +Z, положительный pitch — вверх.
func aimDirection(yaw, pitch float64) component.Vec3 {
	cp := math.Cos(pitch)
	return component.Vec3{
		X: math.Sin(yaw) * cp,
		Y: math.Sin(pitch),
		Z: math.Cos(yaw) * cp,
	}
}

// moveBasis — горизонтальные векторы «вперёд» и «вправо» для yaw камеры.
func moveBasis(yaw float64) (forward, right component.Vec3) {
	forward = component.Vec3{X: math.Sin(yaw), Z: math.Cos(yaw)}
	right = component.Vec3{X: math.Cos(yaw), Z: -math.Sin(yaw)}
	return forward, right
}

func enemyReason(t component.EnemyType) string {
	return "Enemy:" + string(t)
}

func enemyBulletReason(t component.EnemyType) string {
	return enemyReason(t) + ":bullet"
}
