package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var (
	flagLevel  int
	flagResume bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (default: the campaign).

Controls:
  Arrows/WASD/hjkl - Slide tiles
  Enter/Space      - Skip a level banner
  P                - Pause
  R                - Restart (after game over)
  Esc              - Save and leave
  Q/Ctrl+C         - Save and quit
  Ctrl+S           - Screenshot

Quitting mid-game saves the board; --resume picks it up again.

Difficulty options:
  easy   - Half as many 4 tiles
  normal - Spawn rates from the config
  hard   - Twice as many 4 tiles
  fixed  - Campaign spawn rates stay at the first level's

Examples:
  t2048 play
  t2048 play --level 4
  t2048 play 2048_endless --size 6
  t2048 play --resume
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start at (1-based)")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Continue the saved game for this mode")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := t2048.IDCampaign
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fatalf("unknown game mode %q\nRun 't2048 list' to see available modes.", gameID)
	}

	gameCfg, err := loadGameConfig()
	if err != nil {
		fatalf("%v", err)
	}

	logger, closeLog, err := newLogger(nil, "t2048")
	if err != nil {
		fatalf("%v", err)
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	settings := registry.Settings{Config: gameCfg, StartLevel: flagLevel}
	if flagResume {
		if store == nil {
			fatalf("cannot resume without a scores database")
		}
		saved, loadErr := store.LoadGame(gameID)
		if loadErr != nil {
			fatalf("%v", loadErr)
		}
		if saved == nil {
			fatalf("no saved game for %q", gameID)
		}
		settings = withCheckpoint(settings, saved.Checkpoint, flagSize != 0)
	}

	game, err := registry.Create(gameID, settings)
	if err != nil {
		fatalf("%v", err)
	}

	if _, err := tui.Run(game, runtimeConfig(), tui.Options{
		Store:      store,
		Logger:     logger,
		SaveOnQuit: true,
	}); err != nil {
		fatalf("running game: %v", err)
	}
}

// withCheckpoint attaches a saved game to settings. The board size follows
// the checkpoint unless --size pinned one.
func withCheckpoint(settings registry.Settings, cp core.Checkpoint, sizeFromFlag bool) registry.Settings {
	if !sizeFromFlag && cp.Size > 0 {
		settings.Config.Board.Size = cp.Size
	}
	settings.Resume = &cp
	return settings
}
