package defs

import "go-keyhunt/internal/component"

// ItemArea describes procedural item placement on a stage.
type ItemArea struct {
	Bounds  Bounds `yaml:"bounds" json:"bounds"`
	Exclude Rect   `yaml:"exclude" json:"exclude"`
}

// StageDefinition holds the static layout data for one stage.
type StageDefinition struct {
	ID          string  `yaml:"id" json:"id"`
	DisplayName string  `yaml:"display_name" json:"display_name"`
	Scale       float64 `yaml:"scale" json:"scale"`
	PlayerSpawn Point   `yaml:"player_spawn" json:"player_spawn"`

	// FixedSpawns, when present, replace EnemySpawns as the candidate set and
	// make the stage "fixed": one initial enemy per point (up to three).
	FixedSpawns []Point `yaml:"fixed_spawns" json:"fixed_spawns"`
	EnemySpawns []Point `yaml:"enemy_spawns" json:"enemy_spawns"`

	Goal      Point  `yaml:"goal" json:"goal"`
	ResetSpot *Point `yaml:"reset_spot,omitempty" json:"reset_spot,omitempty"`

	KeySpawns   []Point   `yaml:"key_spawns" json:"key_spawns"`
	HeartSpawns []Point   `yaml:"heart_spawns" json:"heart_spawns"`
	AmmoSpawns  []Point   `yaml:"ammo_spawns" json:"ammo_spawns"`
	ItemArea    *ItemArea `yaml:"item_area,omitempty" json:"item_area,omitempty"`
}

// IsFixed reports whether the stage places its initial enemies on fixed points.
func (s StageDefinition) IsFixed() bool {
	return len(s.FixedSpawns) > 0
}

// SpawnCandidates returns the enemy spawn candidate set for the stage.
func (s StageDefinition) SpawnCandidates() []component.Vec3 {
	if s.IsFixed() {
		return toVecs(s.FixedSpawns)
	}
	return toVecs(s.EnemySpawns)
}

// ScaledGoal returns the goal position multiplied by the stage scale.
func (s StageDefinition) ScaledGoal() component.Vec3 {
	scale := s.Scale
	if scale <= 0 {
		scale = 1
	}
	return s.Goal.Vec().Scale(scale)
}

// Procedural reports whether keys and hearts are sampled instead of picked from lists.
func (s StageDefinition) Procedural() bool {
	return s.ItemArea != nil
}

var defaultKeySpawns = []Point{
	{4, 1, -6}, {-8, 1, 12}, {10, 1, 20}, {-16, 1, 4},
	{6, 1, 32}, {-18, 1, -10}, {14, 1, -18}, {22, 1, 8},
}

var defaultAmmoSpawns = []Point{
	{10, 2, 10}, {-10, 2, 10}, {10, 2, -10}, {-10, 2, -10}, {0, 2, 15}, {0, 2, -15},
}

var stage0Hearts = []Point{{2, 1, 6}, {-12, 1, 14}, {8, 1, -14}, {-20, 1, 2}}

// DefaultStages is the built-in stage table.
func DefaultStages() map[string]StageDefinition {
	resetStage0 := Point{2.8, 0.1, -6}
	resetStage1 := Point{6, 0.1, 18}
	resetStageL := Point{31, 0.1, -31}

	stages := []StageDefinition{
		{
			ID: "stage0", DisplayName: "City", Scale: 1,
			PlayerSpawn: Point{0, 0.1, 0},
			FixedSpawns: []Point{{11, 0.3, 6}, {-9, 0.3, 14}, {-3, 0.3, -16}},
			EnemySpawns: []Point{
				{10, 2, 10}, {-10, 2, 10}, {10, 2, -10}, {-10, 2, -10},
				{15, 2, 0}, {-15, 2, 0}, {0, 2, 15}, {0, 2, -15},
			},
			Goal:        Point{0, 1.5, 0},
			ResetSpot:   &resetStage0,
			KeySpawns:   defaultKeySpawns,
			HeartSpawns: stage0Hearts,
			AmmoSpawns:  defaultAmmoSpawns,
		},
		{
			ID: "stage1", DisplayName: "Bug", Scale: 3,
			PlayerSpawn: Point{-8, 0.1, 13},
			FixedSpawns: []Point{{15, 0.3, 15}, {-15, 0.3, 15}, {15, 0.3, -15}},
			EnemySpawns: []Point{
				{15, 5, 15}, {-15, 5, 15}, {15, 5, -15}, {-15, 5, -15}, {20, 5, 0}, {-20, 5, 0},
			},
			Goal:        Point{0, 3, 28},
			ResetSpot:   &resetStage1,
			KeySpawns:   defaultKeySpawns,
			HeartSpawns: []Point{{18, 1, 24}, {-6, 1, 28}, {20, 1, -12}, {-22, 1, -16}},
			AmmoSpawns:  defaultAmmoSpawns,
			ItemArea: &ItemArea{
				Bounds:  Bounds{Rect: Rect{XMin: -28, XMax: 28, ZMin: -27, ZMax: 27}, YMin: -0.5, YMax: 1},
				Exclude: Rect{XMin: -12, XMax: -11, ZMin: 23, ZMax: 27},
			},
		},
		{
			ID: "stage2", DisplayName: "Maze", Scale: 1,
			PlayerSpawn: Point{-30, 0.1, -30},
			FixedSpawns: []Point{{0, 0.3, 0}, {20, 0.3, 20}, {-20, 0.3, -20}},
			EnemySpawns: []Point{{0, 2, 0}, {20, 2, 20}, {-20, 2, -20}, {30, 2, -30}},
			Goal:        Point{36.1, 1.5, 36.0},
			KeySpawns:   defaultKeySpawns,
			HeartSpawns: stage0Hearts,
			AmmoSpawns:  defaultAmmoSpawns,
		},
		{
			ID: "stageL", DisplayName: "Metropolis", Scale: 3,
			PlayerSpawn: Point{0, 0.1, 0},
			EnemySpawns: []Point{{10, 5, 10}, {-10, 5, 10}, {10, 5, -10}, {-10, 5, -10}},
			Goal:        Point{10, 3, 10},
			ResetSpot:   &resetStageL,
			KeySpawns:   defaultKeySpawns,
			HeartSpawns: stage0Hearts,
			AmmoSpawns:  defaultAmmoSpawns,
		},
	}

	out := make(map[string]StageDefinition, len(stages))
	for _, s := range stages {
		out[s.ID] = s
	}
	return out
}
