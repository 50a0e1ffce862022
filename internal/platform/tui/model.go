package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Options configure a game model.
type Options struct {
	Store  *storage.Store // nil disables scores and saves
	Logger *log.Logger    // nil discards logs

	// SaveOnQuit stores an unfinished game when the player leaves, so it
	// can be resumed later.
	SaveOnQuit bool

	// Embedded keeps the program running when the player goes back; the
	// parent model checks BackToMenu instead.
	Embedded bool

	// ScreenshotDir defaults to ~/.t2048/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	cfg.Seed = core.ResolveSeed(cfg.Seed)

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		logger:     logger.With("game", game.ID()),
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.saveProgress()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		m.saveProgress()
		m.backToMenu = true
		if m.opts.Embedded {
			return m, nil
		}
		return m, tea.Quit

	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = core.ResolveSeed(0)
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		m.logger.Debug("game restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Moved {
		m.logger.Debug("move", "score", m.gameState.Score, "max_tile", m.gameState.MaxTile)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.recordGameOver()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordGameOver stores the final score and drops any saved game for this mode.
func (m *Model) recordGameOver() {
	st := m.gameState
	m.logger.Info("game over", "score", st.Score, "max_tile", st.MaxTile, "moves", st.Moves)

	if m.opts.Store == nil {
		return
	}
	if st.Score > 0 {
		id, err := m.opts.Store.SaveScore(storage.ScoreRecord{
			GameID:    m.game.ID(),
			Score:     st.Score,
			MaxTile:   st.MaxTile,
			Moves:     st.Moves,
			BoardSize: st.BoardSize,
		})
		if err != nil {
			m.logger.Warn("score save failed", "error", err)
		} else {
			m.logger.Info("score saved", "id", id)
		}
	}
	if m.opts.SaveOnQuit {
		if err := m.opts.Store.DeleteGame(m.game.ID()); err != nil {
			m.logger.Warn("could not clear saved game", "error", err)
		}
	}
}

// saveProgress stores an unfinished game when saving is enabled.
func (m *Model) saveProgress() {
	if !m.opts.SaveOnQuit || m.opts.Store == nil {
		return
	}
	cp, ok := m.game.(registry.Checkpointer)
	if !ok {
		return
	}
	checkpoint, ok := cp.Checkpoint()
	if !ok {
		return
	}
	if err := m.opts.Store.SaveGame(m.game.ID(), checkpoint); err != nil {
		m.logger.Warn("save failed", "error", err)
		return
	}
	m.logger.Info("game saved", "score", checkpoint.Score, "moves", checkpoint.Moves)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			return
		}
		dir = filepath.Join(home, ".t2048", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a game. It reports whether the
// player asked to go back to the menu rather than quit.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
