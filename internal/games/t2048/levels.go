// Package t2048 implements the 2048 puzzle game with campaign and endless
// modes on top of the grid engine.
package t2048

import "github.com/vovakirdan/tui-2048/internal/config"

// Level is a campaign level as shown to the player.
type Level struct {
	ID     int // 1-based
	Name   string
	Target int     // Target tile value to reach
	Spawn4 float64 // Probability of spawning 4 instead of 2
}

// Levels returns the campaign levels of a configuration in play order.
func Levels(cfg config.GameConfig) []Level {
	levels := make([]Level, len(cfg.Campaign.Levels))
	for i, lc := range cfg.Campaign.Levels {
		levels[i] = Level{ID: i + 1, Name: lc.Name, Target: lc.Target, Spawn4: lc.Spawn4}
	}
	return levels
}

// LevelCount returns the number of campaign levels.
func (g *Game) LevelCount() int {
	return len(g.cfg.Campaign.Levels)
}

// Level returns the current campaign level, 1-based. Endless games report 0.
func (g *Game) Level() int {
	if g.mode == ModeEndless {
		return 0
	}
	return g.levelIndex + 1
}

// level returns the config of the level at index, clamped to the last one.
func (g *Game) level(index int) config.LevelConfig {
	levels := g.cfg.Campaign.Levels
	if index >= len(levels) {
		index = len(levels) - 1
	}
	if index < 0 {
		index = 0
	}
	return levels[index]
}
