// internal/utils/math.go
package utils

import "math"

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0
	}
	angle = math.Mod(angle, 2*math.Pi)
	if angle > math.Pi {
		angle -= 2 * math.Pi
	} else if angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Yaw — поворот вокруг вертикали к точке со смещением (dx, dz).
func Yaw(dx, dz float64) float64 {
	return math.Atan2(dx, dz)
}
