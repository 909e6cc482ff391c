// internal/config/config.go
package config

import (
	"image/color"
	"math"
)

const (
	ScreenWidth    = 1200
	ScreenHeight   = 900
	MaxDeltaTime   = 0.06 // длинные кадры режутся, чтобы таймеры не прыгали
	PixelsPerMeter = 12.0

	DefaultStageID = "stage0"
	MinLevel       = 1
	MaxLevel       = 4
)

// Игрок
const (
	InitialMaxHP = 100
	MoveSpeed    = 5.0
	Gravity      = 9.81
	JumpHeight   = 20.0
	PlayerRadius = 0.5
	CameraHeight = 0.5
	GroundedEps  = 0.1
	HealAmount   = 25
)

// Оружие и боеприпасы
const (
	InitialAmmo        = 15
	MaxAmmo            = 15
	InitialReserveAmmo = 15
	MaxReserveAmmo     = 45
	AmmoRestoreAmount  = 15

	PlayerFireInterval   = 0.2
	PlayerBulletSpeed    = 75.0
	PlayerBulletLifetime = 3.0
	PlayerBulletRadius   = 0.05
	PlayerBulletDamage   = 25

	EnemyBulletSpeed    = 10.0
	EnemyBulletLifetime = 10.0
	EnemyBulletRadius   = 0.25
	EnemyChestHeight    = 1.0
	EnemyMuzzleOffset   = 1.0
)

// Ключи, предметы и цель
const (
	InitialTotalKeys  = 1
	DefaultKeyCount   = 3
	DefaultHeartCount = 2
	ItemPickupRadius  = 0.8
	AmmoPickupRadius  = 2.0
	GoalRadius        = 1.5
	ResetSpotRadius   = 2.0
	ResetSpotCooldown = 10.0
)

// Враги: ИИ и появление
const (
	AttackCooldown = 1.0

	NearTierMaxDistance  = 8.0  // ближний уровень: min(8, detectionRange), решение каждый тик
	MidTierMinDistance   = 15.0 // средний уровень: max(15, 0.8*detectionRange)
	MidTierRangeFactor   = 0.8
	MidTierInterval      = 0.1
	FarTierInterval      = 0.5
	PositionSyncInterval = 0.1 // публикация позиции в реестр, 10 Гц

	EnemySpawnInterval       = 5.0
	MaxEnemies               = 10
	PlayerSpawnAvoidDistance = 10.0
	InitialFixedSpawnCount   = 3
	InitialRandomSpawnCount  = 2

	AmmoSpawnInterval = 15.0
	AmmoSpawnPerKills = 5

	ItemSampleMaxAttempts = 1000
	ItemBatchMinDistance  = 1.0
	KeyCrossMinDistance   = 1.5
	HeartCrossMinDistance = 1.8
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	GridColor         = color.RGBA{40, 45, 60, 255}
	PlayerColor       = color.RGBA{240, 240, 240, 255}
	AimColor          = color.RGBA{255, 255, 0, 160}
	KeyColor          = color.RGBA{255, 215, 0, 255}
	HeartColor        = color.RGBA{255, 80, 120, 255}
	AmmoColor         = color.RGBA{194, 178, 128, 255}
	GoalLockedColor   = color.RGBA{0, 68, 102, 255}
	GoalOpenColor     = color.RGBA{0, 255, 255, 255}
	ResetReadyColor   = color.RGBA{0, 255, 136, 255}
	ResetCoolColor    = color.RGBA{255, 68, 68, 255}
	PlayerBulletColor = color.RGBA{255, 255, 0, 255}
	EnemyBulletColor  = color.RGBA{255, 68, 255, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 128}
	HealthFillColor   = color.RGBA{0, 255, 0, 230}
	HealthBackColor   = color.RGBA{255, 0, 0, 180}
	AmmoBarColor      = color.RGBA{70, 130, 180, 220}
)

// JumpImpulse — начальная скорость прыжка v = sqrt(2*g*h), масса принята за 1.
func JumpImpulse() float64 {
	return math.Sqrt(2 * Gravity * JumpHeight)
}
