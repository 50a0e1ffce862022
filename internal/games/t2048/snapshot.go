package t2048

import "github.com/vovakirdan/tui-2048/internal/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateAnimating    GameStateType = "animating"
	StateLevelCleared GameStateType = "level_cleared"
	StateWinBanner    GameStateType = "win_banner"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Mode    string // "campaign" or "endless"
	Level   int    // 1-indexed campaign level, 0 for endless
	Target  int    // Current target tile value
	Score   int
	Moves   int
	Board   engine.Grid
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.anim.active():
		state = StateAnimating
	case g.levelCleared:
		state = StateLevelCleared
	case g.winBanner:
		state = StateWinBanner
	}

	return Snapshot{
		Tick:    g.tick,
		Mode:    string(g.mode),
		Level:   g.Level(),
		Target:  g.currentTarget,
		Score:   g.eng.Score(),
		Moves:   g.moves,
		Board:   g.eng.Grid(),
		MaxTile: g.eng.MaxTile(),
		State:   state,
	}
}
