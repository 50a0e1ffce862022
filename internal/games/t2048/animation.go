package t2048

import "github.com/vovakirdan/tui-2048/internal/engine"

// AnimationPhase represents the current phase of animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSlide
	PhasePop
)

// animation replays one move: tiles slide from their old cells to their new
// ones, then merged and spawned tiles pop.
type animation struct {
	phase AnimationPhase
	ticks int

	before engine.Grid       // board as it was before the move
	paths  []engine.TilePath // tiles that moved or merged
	moving map[engine.Coord]bool
	spawn  *engine.Spawn
	merged map[engine.Coord]bool
}

func (a *animation) active() bool {
	return a.phase != PhaseNone
}

// progress returns how far the current phase is, from 0 to 1.
func (a *animation) progress(duration int) float64 {
	if duration <= 0 {
		return 1
	}
	p := float64(a.ticks) / float64(duration)
	if p > 1 {
		p = 1
	}
	return p
}

// startAnimation begins the slide phase for a move that changed the board.
func (g *Game) startAnimation(before engine.Grid, res engine.MoveResult) {
	paths := engine.TilePaths(res.Transitions)
	a := animation{
		before: before,
		paths:  paths,
		moving: make(map[engine.Coord]bool, len(paths)),
		spawn:  res.Spawned,
		merged: make(map[engine.Coord]bool),
	}
	for _, p := range paths {
		a.moving[p.From] = true
		if p.Merged {
			a.merged[p.To] = true
		}
	}

	switch {
	case g.cfg.Animation.SlideTicks > 0:
		a.phase = PhaseSlide
	case g.cfg.Animation.PopTicks > 0:
		a.phase = PhasePop
	default:
		a.phase = PhaseNone
	}
	g.anim = a
}

// updateAnimation advances the animation state.
// Returns true if animation is still in progress.
func (g *Game) updateAnimation() bool {
	if !g.anim.active() {
		return false
	}

	g.anim.ticks++

	var duration int
	switch g.anim.phase {
	case PhaseSlide:
		duration = g.cfg.Animation.SlideTicks
	case PhasePop:
		duration = g.cfg.Animation.PopTicks
	}

	if g.anim.ticks >= duration {
		g.finishPhase()
	}
	return g.anim.active()
}

// finishPhase moves from slide to pop, or ends the animation.
func (g *Game) finishPhase() {
	if g.anim.phase == PhaseSlide && g.cfg.Animation.PopTicks > 0 &&
		(g.anim.spawn != nil || len(g.anim.merged) > 0) {
		g.anim.phase = PhasePop
		g.anim.ticks = 0
		return
	}

	// Animation complete
	g.anim = animation{}
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// interpolate returns the fractional board position of a path at progress t.
func interpolate(p engine.TilePath, t float64) (row, col float64) {
	t = easeOutQuad(t)
	row = float64(p.From.Row) + float64(p.To.Row-p.From.Row)*t
	col = float64(p.From.Col) + float64(p.To.Col-p.From.Col)*t
	return row, col
}
