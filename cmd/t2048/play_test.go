package main

import (
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

func TestWithCheckpoint(t *testing.T) {
	tests := []struct {
		name         string
		saved        int
		sizeFromFlag bool
		want         int
	}{
		{"saved size wins", 5, false, 5},
		{"flag wins", 5, true, 4},
		{"no saved size", 0, false, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultGameConfig()
			cfg.Board.Size = 4
			cp := core.Checkpoint{Mode: "endless", Size: tt.saved}

			got := withCheckpoint(registry.Settings{Config: cfg}, cp, tt.sizeFromFlag)
			if got.Config.Board.Size != tt.want {
				t.Errorf("Board.Size = %d, want %d", got.Config.Board.Size, tt.want)
			}
			if got.Resume == nil || got.Resume.Size != tt.saved {
				t.Errorf("Resume = %+v, want the checkpoint", got.Resume)
			}
		})
	}
}

func TestResumeLargerSavedBoard(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Board.Size = 4
	board := [][]int{
		{2, 4, 8, 16, 32},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 2},
	}
	cp := core.Checkpoint{Mode: "endless", Size: 5, Board: board, Score: 120, Moves: 9}

	game, err := registry.Create(t2048.IDEndless, withCheckpoint(registry.Settings{Config: cfg}, cp, false))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	game.Reset(core.RuntimeConfig{ScreenW: 120, ScreenH: 60, TickRate: 60, Seed: 1})

	st := game.State()
	if st.BoardSize != 5 || st.Score != 120 || st.Moves != 9 {
		t.Errorf("state = %+v, want the saved 5x5 game", st)
	}
}
