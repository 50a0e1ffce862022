package t2048

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Registered game IDs.
const (
	IDCampaign = "2048"
	IDEndless  = "2048_endless"
)

// Options configure a new game.
type Options struct {
	Config     config.GameConfig
	StartLevel int              // 1-based campaign level, 0 starts at the first
	Resume     *core.Checkpoint // restored by the first Reset
}

// Game implements the 2048 puzzle on top of the grid engine.
type Game struct {
	mode       Mode
	cfg        config.GameConfig
	startLevel int
	resume     *core.Checkpoint

	rng  *rand.Rand
	eng  *engine.Engine
	tick uint64

	moves         int // changing moves since Reset, kept across level engines
	levelIndex    int // Current level (0-indexed)
	currentTarget int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver     bool
	levelCleared bool
	won          bool // campaign finished
	winBanner    bool // endless win tile reached, banner showing
	winShown     bool
	paused       bool
	tooSmall     bool
	bannerTicks  int

	anim     animation
	lastMove engine.MoveResult
}

// New creates a campaign mode game.
func New(opts Options) (*Game, error) {
	return newGame(ModeCampaign, opts)
}

// NewEndless creates an endless mode game.
func NewEndless(opts Options) (*Game, error) {
	return newGame(ModeEndless, opts)
}

func newGame(mode Mode, opts Options) (*Game, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if mode == ModeCampaign && len(opts.Config.Campaign.Levels) == 0 {
		return nil, fmt.Errorf("t2048: campaign has no levels")
	}
	if opts.StartLevel < 0 || opts.StartLevel > len(opts.Config.Campaign.Levels) {
		return nil, fmt.Errorf("t2048: start level %d out of range", opts.StartLevel)
	}
	if opts.Resume != nil && opts.Resume.Size != opts.Config.Board.Size {
		return nil, fmt.Errorf("t2048: saved board is %dx%d, config wants %d",
			opts.Resume.Size, opts.Resume.Size, opts.Config.Board.Size)
	}
	return &Game{
		mode:       mode,
		cfg:        opts.Config,
		startLevel: opts.StartLevel,
		resume:     opts.Resume,
	}, nil
}

func init() {
	registry.Register(IDCampaign, func(s registry.Settings) (registry.Game, error) {
		return New(Options{Config: s.Config, StartLevel: s.StartLevel, Resume: s.Resume})
	})
	registry.Register(IDEndless, func(s registry.Settings) (registry.Game, error) {
		return NewEndless(Options{Config: s.Config, Resume: s.Resume})
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDCampaign
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "2048 (Endless)"
	}
	return "2048"
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset initializes/restarts the game. A pending resume checkpoint is
// consumed by the first call.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.moves = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.winBanner = false
	g.winShown = false
	g.paused = false
	g.bannerTicks = 0
	g.anim = animation{}
	g.lastMove = engine.MoveResult{}

	g.eng = nil
	g.levelIndex = 0
	if g.mode == ModeCampaign && g.startLevel > 0 {
		g.levelIndex = g.startLevel - 1
	}

	if cp := g.resume; cp != nil {
		g.resume = nil
		if g.restore(*cp) {
			g.checkScreenSize()
			return
		}
	}

	g.loadLevel()
	g.eng.Reset()
	g.gameOver = !g.eng.HasAnyValidMove()
	g.checkScreenSize()
}

// restore loads a checkpoint, reporting false if it does not fit.
func (g *Game) restore(cp core.Checkpoint) bool {
	if cp.Mode != string(g.mode) {
		return false
	}
	if g.mode == ModeCampaign && cp.Level >= 1 && cp.Level <= g.LevelCount() {
		g.levelIndex = cp.Level - 1
	}
	g.loadLevel()
	if err := g.eng.Restore(engine.Grid(cp.Board), cp.Score); err != nil {
		return false
	}
	g.moves = cp.Moves
	g.winShown = g.cfg.Endless.WinTile > 0 && g.eng.MaxTile() >= g.cfg.Endless.WinTile
	g.gameOver = !g.eng.HasAnyValidMove()
	return true
}

// loadLevel builds an engine with the current level's spawn distribution,
// carrying over the board and score of the previous engine if there was one.
func (g *Game) loadLevel() {
	dist := g.cfg.Distribution()
	g.currentTarget = 0
	if g.mode == ModeCampaign {
		level := g.level(g.levelIndex)
		g.currentTarget = level.Target
		dist = level.Distribution()
	}

	eng, err := engine.New(g.cfg.Board.Size, engine.WithRand(g.rng), engine.WithDistribution(dist))
	if err != nil {
		// config was validated in the constructor
		panic(fmt.Sprintf("t2048: %v", err))
	}
	if g.eng != nil {
		if err := eng.Restore(g.eng.Grid(), g.eng.Score()); err != nil {
			panic(fmt.Sprintf("t2048: carry board: %v", err))
		}
	}
	g.eng = eng
}

// Resize adapts to a new screen size, keeping the game in progress.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	w, h := boardDims(g.cfg.Board.Size)
	minW := w + 4
	minH := h + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle window size check
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Moves are ignored until the previous one has finished animating
	if g.anim.active() {
		g.updateAnimation()
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.bannerTicks++
		if g.bannerTicks >= g.cfg.Animation.BannerTicks || in.Has(core.ActionConfirm) {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.winBanner {
		g.bannerTicks++
		if g.bannerTicks >= g.cfg.Animation.BannerTicks || in.Has(core.ActionConfirm) {
			g.winBanner = false
			g.bannerTicks = 0
		}
		return core.StepResult{State: g.State()}
	}

	// Don't process moves if game over or won
	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	moved := g.processMove(dir)
	return core.StepResult{State: g.State(), Moved: moved}
}

// directionFor maps the first direction action in the frame to a move.
func directionFor(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.Up, true
	case in.Has(core.ActionDown):
		return engine.Down, true
	case in.Has(core.ActionLeft):
		return engine.Left, true
	case in.Has(core.ActionRight):
		return engine.Right, true
	}
	return 0, false
}

// processMove applies a move and reports whether the board changed.
func (g *Game) processMove(dir engine.Direction) bool {
	before := g.eng.Grid()
	res, err := g.eng.ApplyMove(dir)
	if err != nil || !res.Changed {
		return false
	}

	g.moves++
	g.lastMove = res
	g.startAnimation(before, res)

	maxTile := g.eng.MaxTile()
	switch {
	case g.mode == ModeCampaign && g.currentTarget > 0 && maxTile >= g.currentTarget:
		g.levelCleared = true
		g.bannerTicks = 0
	case g.mode == ModeEndless && !g.winShown && g.cfg.Endless.WinTile > 0 && maxTile >= g.cfg.Endless.WinTile:
		g.winShown = true
		g.winBanner = true
		g.bannerTicks = 0
	}

	if !g.eng.HasAnyValidMove() {
		g.gameOver = true
		g.levelCleared = false
		g.winBanner = false
	}
	return true
}

// advanceLevel moves to the next level, keeping the board and score.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.bannerTicks = 0

	if g.levelIndex >= g.LevelCount()-1 {
		// Completed all levels
		g.won = true
		return
	}

	g.levelIndex++
	g.loadLevel()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.eng.Score(),
		MaxTile:   g.eng.MaxTile(),
		Moves:     g.moves,
		BoardSize: g.eng.Size(),
		GameOver:  g.gameOver || g.won,
		Paused:    g.paused || g.tooSmall || g.levelCleared || g.winBanner,
	}
}

// Board returns a copy of the current grid.
func (g *Game) Board() engine.Grid {
	return g.eng.Grid()
}

// LastMove returns the result of the most recent changing move.
func (g *Game) LastMove() engine.MoveResult {
	return g.lastMove
}

// Animating reports whether a move is still being animated.
func (g *Game) Animating() bool {
	return g.anim.active()
}

// Checkpoint returns the resumable state of an unfinished game.
func (g *Game) Checkpoint() (core.Checkpoint, bool) {
	if g.eng == nil || g.gameOver || g.won || g.moves == 0 {
		return core.Checkpoint{}, false
	}

	level := 0
	if g.mode == ModeCampaign {
		level = g.levelIndex + 1
		// a cleared level resumes at the next one
		if g.levelCleared && g.levelIndex < g.LevelCount()-1 {
			level++
		}
	}
	return core.Checkpoint{
		Mode:  string(g.mode),
		Size:  g.eng.Size(),
		Board: g.eng.Grid(),
		Score: g.eng.Score(),
		Moves: g.moves,
		Level: level,
	}, true
}
