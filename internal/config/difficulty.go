package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// maxSpawn4 keeps the 2 tile the more common spawn under any preset.
const maxSpawn4 = 0.5

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// Spawn4Scale returns the multiplier applied to 4-tile weights for a preset.
func Spawn4Scale(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 2.0
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
//
// easy/normal/hard rescale the weight of every non-2 spawn value and the
// spawn4 of each campaign level. fixed freezes campaign spawn rates at the
// first level's value so difficulty does not climb.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		if len(cfg.Campaign.Levels) > 0 {
			base := cfg.Campaign.Levels[0].Spawn4
			for i := range cfg.Campaign.Levels {
				cfg.Campaign.Levels[i].Spawn4 = base
			}
		}
		return
	}

	scale := Spawn4Scale(preset)
	if scale == 1.0 {
		return
	}

	weights := make([]SpawnWeight, len(cfg.Spawn.Weights))
	copy(weights, cfg.Spawn.Weights)
	for i := range weights {
		if weights[i].Value != 2 {
			weights[i].Weight *= scale
		}
	}
	cfg.Spawn.Weights = weights

	levels := make([]LevelConfig, len(cfg.Campaign.Levels))
	copy(levels, cfg.Campaign.Levels)
	for i := range levels {
		levels[i].Spawn4 = math.Min(levels[i].Spawn4*scale, maxSpawn4)
	}
	cfg.Campaign.Levels = levels
}
