// Package config provides YAML-based configuration loading and difficulty
// presets for the 2048 game.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

// GameConfig contains all tunables for a 2048 session.
type GameConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Animation AnimationConfig `yaml:"animation"`
	Campaign  CampaignConfig  `yaml:"campaign"`
	Endless   EndlessConfig   `yaml:"endless"`
}

// BoardConfig defines the grid.
type BoardConfig struct {
	Size int `yaml:"size"`
}

// SpawnConfig defines the weighted spawn distribution. Order matters: the
// first entry wins ties and is the fallback value.
type SpawnConfig struct {
	Weights []SpawnWeight `yaml:"weights"`
}

// SpawnWeight is one value/weight pair.
type SpawnWeight struct {
	Value  int     `yaml:"value"`
	Weight float64 `yaml:"weight"`
}

// AnimationConfig defines animation lengths in ticks.
type AnimationConfig struct {
	SlideTicks  int `yaml:"slide_ticks"`
	PopTicks    int `yaml:"pop_ticks"`
	BannerTicks int `yaml:"banner_ticks"` // level-clear and win banners
}

// CampaignConfig lists the campaign levels in play order.
type CampaignConfig struct {
	Levels []LevelConfig `yaml:"levels"`
}

// LevelConfig defines a campaign level with a target tile.
type LevelConfig struct {
	Name   string  `yaml:"name"`
	Target int     `yaml:"target"`
	Spawn4 float64 `yaml:"spawn4"` // probability of spawning 4 instead of 2
}

// EndlessConfig defines endless mode.
type EndlessConfig struct {
	WinTile int `yaml:"win_tile"` // 0 disables the win banner
}

// Distribution converts the spawn weights to an engine distribution.
func (c GameConfig) Distribution() engine.Distribution {
	d := make(engine.Distribution, len(c.Spawn.Weights))
	for i, w := range c.Spawn.Weights {
		d[i] = engine.Weight{Value: w.Value, Weight: w.Weight}
	}
	return d
}

// LevelDistribution returns the spawn distribution for a campaign level.
func (l LevelConfig) Distribution() engine.Distribution {
	if l.Spawn4 <= 0 {
		return engine.Distribution{{Value: 2, Weight: 1}}
	}
	return engine.Distribution{
		{Value: 2, Weight: 1 - l.Spawn4},
		{Value: 4, Weight: l.Spawn4},
	}
}

// Validate reports the first problem with the configuration.
func (c GameConfig) Validate() error {
	if c.Board.Size < 1 {
		return fmt.Errorf("config: board size %d must be at least 1", c.Board.Size)
	}
	if err := c.Distribution().Validate(); err != nil {
		return fmt.Errorf("config: spawn weights: %w", err)
	}
	if c.Animation.SlideTicks < 0 || c.Animation.PopTicks < 0 || c.Animation.BannerTicks < 0 {
		return fmt.Errorf("config: animation ticks must not be negative")
	}
	for i, lvl := range c.Campaign.Levels {
		if !engine.IsPowerOfTwo(lvl.Target) {
			return fmt.Errorf("config: level %d target %d is not a power of two", i+1, lvl.Target)
		}
		if lvl.Spawn4 < 0 || lvl.Spawn4 >= 1 {
			return fmt.Errorf("config: level %d spawn4 %v must be in [0, 1)", i+1, lvl.Spawn4)
		}
	}
	if c.Endless.WinTile != 0 && !engine.IsPowerOfTwo(c.Endless.WinTile) {
		return fmt.Errorf("config: endless win tile %d is not a power of two", c.Endless.WinTile)
	}
	return nil
}
