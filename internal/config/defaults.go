package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration.
// It mirrors defaults/t2048.yaml and is used if the embedded file fails to parse.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Board: BoardConfig{Size: 4},
		Spawn: SpawnConfig{
			Weights: []SpawnWeight{
				{Value: 2, Weight: 0.9},
				{Value: 4, Weight: 0.1},
			},
		},
		Animation: AnimationConfig{
			SlideTicks:  8, // ~133ms at 60fps
			PopTicks:    6, // ~100ms at 60fps
			BannerTicks: 120,
		},
		Campaign: CampaignConfig{
			// Targets are realistic for a 4x4 grid; 8192 is very hard but achievable.
			Levels: []LevelConfig{
				{Name: "Warm-up", Target: 128, Spawn4: 0.10},
				{Name: "Getting Started", Target: 256, Spawn4: 0.10},
				{Name: "Building Momentum", Target: 512, Spawn4: 0.10},
				{Name: "The Climb", Target: 1024, Spawn4: 0.10},
				{Name: "Classic 2048", Target: 2048, Spawn4: 0.10},
				{Name: "Beyond Limits", Target: 4096, Spawn4: 0.12},
				{Name: "Master Class", Target: 8192, Spawn4: 0.15},
				{Name: "Expert Challenge", Target: 8192, Spawn4: 0.18},
				{Name: "Grandmaster", Target: 8192, Spawn4: 0.20},
				{Name: "Ultimate Champion", Target: 8192, Spawn4: 0.25},
			},
		},
		Endless: EndlessConfig{WinTile: 2048},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
