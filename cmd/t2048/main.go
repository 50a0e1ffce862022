// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 list               - List game modes
//	t2048 play [mode]        - Play a mode (default: campaign)
//	t2048 menu               - Pick a mode, level or saved game interactively
//	t2048 serve              - Start SSH server for remote play
//	t2048 scores [mode]      - Show high scores for a mode
//	t2048 simulate           - Run random-move games headless
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible games
//	--db <path>           - Set database path (default: ~/.t2048/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--size <n>            - Override the board size
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/storage"

	// Import the game to register its modes
	_ "github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSize       int
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the board with the arrow keys (or WASD / hjkl). Equal tiles merge
and add their value to your score. Reach the target tile to clear a
campaign level, or play endless mode until the board locks up.

Available commands:
  list      - Show game modes
  play      - Play a mode directly
  menu      - Interactive mode, level and saved-game picker
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Run random-move games and print statistics

Examples:
  t2048 play
  t2048 play 2048_endless --size 5
  t2048 play --resume
  t2048 menu --difficulty hard
  t2048 serve --ssh :2222
  t2048 simulate --games 500 --seed 42`,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	flags.StringVar(&flagDBPath, "db", "~/.t2048/scores.db", "Path to scores database")
	flags.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.IntVar(&flagSize, "size", 0, "Board size (0 = from config)")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// fatalf prints an error and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadGameConfig resolves the game config from --config, --difficulty and --size.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.GameConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagSize != 0 {
		cfg.Board.Size = flagSize
	}
	if err := cfg.Validate(); err != nil {
		return config.GameConfig{}, err
	}
	return cfg, nil
}

// newLogger builds the logger from --log-level and --log-file. Without a log
// file, output goes to fallback; a nil fallback discards it. The returned
// cleanup closes the log file.
func newLogger(fallback *os.File, prefix string) (*log.Logger, func(), error) {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}

	if flagLogFile == "" {
		if fallback == nil {
			return logging.Discard(), func() {}, nil
		}
		return logging.New(fallback, level, prefix), func() {}, nil
	}

	f, err := logging.OpenFile(flagLogFile)
	if err != nil {
		return nil, nil, err
	}
	return logging.New(f, level, prefix), func() { f.Close() }, nil
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. The game still works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
