// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"go-keyhunt/internal/component"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownStage     = errors.New("unknown stage")
	ErrUnknownEnemyType = errors.New("unknown enemy type")
)

const (
	EnemiesFile = "enemies.yaml"
	StagesFile  = "stages.yaml"
)

// Library holds the enemy and stage tables used by a running game.
type Library struct {
	Enemies map[component.EnemyType]EnemyStats
	Stages  map[string]StageDefinition
}

// Default returns a library built from the compiled-in tables.
func Default() *Library {
	return &Library{
		Enemies: DefaultEnemyStats(),
		Stages:  DefaultStages(),
	}
}

// Enemy returns the stats for an enemy type.
func (l *Library) Enemy(t component.EnemyType) (EnemyStats, error) {
	stats, ok := l.Enemies[t]
	if !ok {
		return EnemyStats{}, fmt.Errorf("%w: %q", ErrUnknownEnemyType, t)
	}
	return stats, nil
}

// Stage returns the definition of a stage.
func (l *Library) Stage(id string) (StageDefinition, error) {
	stage, ok := l.Stages[id]
	if !ok {
		return StageDefinition{}, fmt.Errorf("%w: %q", ErrUnknownStage, id)
	}
	return stage, nil
}

// StageIDs returns all stage ids in a stable order.
func (l *Library) StageIDs() []string {
	ids := make([]string, 0, len(l.Stages))
	for id := range l.Stages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadLibrary reads enemies.yaml and stages.yaml from dir. A missing file keeps
// the built-in table for that part; a malformed one is an error.
func LoadLibrary(dir string) (*Library, error) {
	lib := Default()

	enemies, err := LoadEnemyDefinitions(filepath.Join(dir, EnemiesFile))
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Printf("defs: %s not found, using built-in enemy table", EnemiesFile)
	case err != nil:
		return nil, err
	default:
		for t, stats := range enemies {
			lib.Enemies[t] = stats
		}
	}

	stages, err := LoadStageDefinitions(filepath.Join(dir, StagesFile))
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Printf("defs: %s not found, using built-in stage table", StagesFile)
	case err != nil:
		return nil, err
	default:
		for id, stage := range stages {
			lib.Stages[id] = stage
		}
	}

	log.Printf("defs: loaded %d enemy types, %d stages", len(lib.Enemies), len(lib.Stages))
	return lib, nil
}

// LoadEnemyDefinitions reads a YAML list of enemy stats.
func LoadEnemyDefinitions(path string) (map[component.EnemyType]EnemyStats, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}
	return ParseEnemyDefinitions(file)
}

// ParseEnemyDefinitions decodes enemy stats and clamps them into sane ranges.
func ParseEnemyDefinitions(data []byte) (map[component.EnemyType]EnemyStats, error) {
	var list []EnemyStats
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	out := make(map[component.EnemyType]EnemyStats, len(list))
	for _, stats := range list {
		if !stats.Type.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEnemyType, stats.Type)
		}
		clampEnemyStats(&stats)
		out[stats.Type] = stats
	}
	return out, nil
}

// LoadStageDefinitions reads a YAML list of stages.
func LoadStageDefinitions(path string) (map[string]StageDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage definitions file: %w", err)
	}
	return ParseStageDefinitions(file)
}

// ParseStageDefinitions decodes stage definitions.
func ParseStageDefinitions(data []byte) (map[string]StageDefinition, error) {
	var list []StageDefinition
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stage definitions: %w", err)
	}

	out := make(map[string]StageDefinition, len(list))
	for _, stage := range list {
		if stage.ID == "" {
			return nil, errors.New("stage definition without id")
		}
		clampStage(&stage)
		out[stage.ID] = stage
	}
	return out, nil
}

func clampStage(s *StageDefinition) {
	if s.Scale <= 0 {
		s.Scale = 1
	}
	if s.DisplayName == "" {
		s.DisplayName = s.ID
	}
	if a := s.ItemArea; a != nil {
		if a.Bounds.XMin > a.Bounds.XMax {
			a.Bounds.XMin, a.Bounds.XMax = a.Bounds.XMax, a.Bounds.XMin
		}
		if a.Bounds.ZMin > a.Bounds.ZMax {
			a.Bounds.ZMin, a.Bounds.ZMax = a.Bounds.ZMax, a.Bounds.ZMin
		}
		if a.Bounds.YMin > a.Bounds.YMax {
			a.Bounds.YMin, a.Bounds.YMax = a.Bounds.YMax, a.Bounds.YMin
		}
	}
}
