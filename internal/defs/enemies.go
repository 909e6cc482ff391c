// internal/defs/enemies.go
package defs

import "go-keyhunt/internal/component"

// EnemyStats holds all the static data for a specific type of enemy.
type EnemyStats struct {
	Type           component.EnemyType `yaml:"type" json:"type"`
	MaxHealth      int                 `yaml:"max_health" json:"max_health"`
	Speed          float64             `yaml:"speed" json:"speed"`
	Damage         int                 `yaml:"damage" json:"damage"`
	AttackRange    float64             `yaml:"attack_range" json:"attack_range"`
	DetectionRange float64             `yaml:"detection_range" json:"detection_range"`
	ScoreValue     int                 `yaml:"score_value" json:"score_value"`
	Ranged         bool                `yaml:"ranged" json:"ranged"`
	Color          string              `yaml:"color" json:"color"`
	// Radius и Height задают капсулу попадания: полуширина и рост в метрах.
	Radius float64 `yaml:"radius" json:"radius"`
	Height float64 `yaml:"height" json:"height"`
}

const (
	defaultEnemyRadius = 0.5
	defaultEnemyHeight = 1.5
)

// DefaultEnemyStats is the built-in stat table, used when no definitions file is loaded.
func DefaultEnemyStats() map[component.EnemyType]EnemyStats {
	return map[component.EnemyType]EnemyStats{
		component.EnemyBasic: {
			Type: component.EnemyBasic, MaxHealth: 100, Speed: 3.0, Damage: 10,
			AttackRange: 1.5, DetectionRange: 20, ScoreValue: 100, Color: "#ff4444",
			Radius: 0.5, Height: 1.5,
		},
		component.EnemyFast: {
			Type: component.EnemyFast, MaxHealth: 50, Speed: 6.0, Damage: 5,
			AttackRange: 1.0, DetectionRange: 25, ScoreValue: 150, Color: "#44ff44",
			Radius: 0.35, Height: 1.2,
		},
		component.EnemyTank: {
			Type: component.EnemyTank, MaxHealth: 300, Speed: 1.5, Damage: 25,
			AttackRange: 2.0, DetectionRange: 15, ScoreValue: 300, Color: "#4444ff",
			Radius: 0.75, Height: 2.0,
		},
		component.EnemySniper: {
			Type: component.EnemySniper, MaxHealth: 75, Speed: 2.0, Damage: 30,
			AttackRange: 15, DetectionRange: 35, ScoreValue: 200, Ranged: true, Color: "#ff44ff",
			Radius: 0.4, Height: 1.8,
		},
	}
}

// clampEnemyStats enforces sane bounds on user-provided stats.
func clampEnemyStats(s *EnemyStats) {
	s.MaxHealth = clampInt(s.MaxHealth, 1, 100000)
	s.Speed = clampFloat(s.Speed, 0, 50)
	s.Damage = clampInt(s.Damage, 0, 10000)
	s.AttackRange = clampFloat(s.AttackRange, 0, 200)
	s.DetectionRange = clampFloat(s.DetectionRange, 0, 500)
	if s.AttackRange > s.DetectionRange {
		s.AttackRange = s.DetectionRange
	}
	s.ScoreValue = clampInt(s.ScoreValue, 0, 1000000)
	if s.Radius <= 0 {
		s.Radius = defaultEnemyRadius
	}
	if s.Height <= 0 {
		s.Height = defaultEnemyHeight
	}
	s.Radius = clampFloat(s.Radius, 0.1, 5)
	s.Height = clampFloat(s.Height, 0.2, 10)
}
