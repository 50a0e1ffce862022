package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode, level or saved game from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Saved games show up as "Resume" entries at the top.
Esc in a game returns to the menu; Q quits.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --difficulty easy
  t2048 menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
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

	cfg := runtimeConfig()
	levels := t2048.Levels(gameCfg)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg, levels, resumableGames(store))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		sel := menuResult.Selection
		if sel == nil {
			return
		}

		backToMenu, err := playSelection(sel, gameCfg, cfg, store, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if !backToMenu {
			return
		}
	}
}

// playSelection runs the picked mode and reports whether to show the menu again.
func playSelection(sel *tui.MenuSelection, gameCfg config.GameConfig, cfg core.RuntimeConfig, store *storage.Store, logger *log.Logger) (bool, error) {
	settings := registry.Settings{Config: gameCfg, StartLevel: sel.StartLevel}
	if sel.Resume && store != nil {
		saved, err := store.LoadGame(sel.GameID)
		if err != nil {
			return true, err
		}
		if saved != nil {
			settings = withCheckpoint(settings, saved.Checkpoint, flagSize != 0)
		}
	}

	game, err := registry.Create(sel.GameID, settings)
	if err != nil {
		return true, err
	}

	// Fresh seed for each game unless --seed pinned one
	cfg.Seed = flagSeed

	return tui.Run(game, cfg, tui.Options{
		Store:      store,
		Logger:     logger,
		SaveOnQuit: true,
	})
}

// resumableGames lists the modes with a saved game.
func resumableGames(store *storage.Store) []string {
	if store == nil {
		return nil
	}

	var ids []string
	for _, g := range registry.List() {
		if saved, err := store.LoadGame(g.ID); err == nil && saved != nil {
			ids = append(ids, g.ID)
		}
	}
	return ids
}
