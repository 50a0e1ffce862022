package t2048

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

const (
	cellWidth  = 7 // Width of each cell (including the left border)
	cellHeight = 2 // Height of each cell (including the top border)
	hudHeight  = 3
)

// boardDims returns the on-screen size of a size×size board.
func boardDims(size int) (w, h int) {
	return size*cellWidth + 1, size*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := boardDims(g.cfg.Board.Size)
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderGridLines(dst, boardX, boardY)
	g.renderTiles(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the score and level info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	titleX := boardX + (boardW-len(title))/2
	dst.DrawTextColor(titleX, 0, title, core.ColorBrightYellow)

	scoreStr := fmt.Sprintf("Score: %d", g.eng.Score())
	dst.DrawText(boardX, 1, scoreStr)

	// Level/Target info (campaign) or Max tile (endless)
	var infoStr string
	if g.mode == ModeCampaign {
		infoStr = fmt.Sprintf("Lv %d/%d  Target: %d", g.levelIndex+1, g.LevelCount(), g.currentTarget)
	} else {
		infoStr = fmt.Sprintf("Max: %d", g.eng.MaxTile())
	}

	infoX := boardX + boardW - len(infoStr)
	if infoX < boardX+len(scoreStr)+1 {
		// narrow boards put the info on the mode line instead
		dst.DrawText(boardX, 2, infoStr)
		return
	}
	dst.DrawText(infoX, 1, infoStr)

	modeStr := fmt.Sprintf("%s  Moves: %d", g.modeLabel(), g.moves)
	modeX := boardX + (boardW-len(modeStr))/2
	dst.DrawTextColor(core.Max(modeX, 0), 2, modeStr, core.ColorGray)
}

func (g *Game) modeLabel() string {
	if g.mode == ModeEndless {
		return "Endless"
	}
	return "Campaign"
}

// renderGridLines draws the cell borders.
func (g *Game) renderGridLines(dst *core.Screen, boardX, boardY int) {
	n := g.cfg.Board.Size
	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColor(px, py, corner, core.ColorGray)

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', core.ColorGray)
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// renderTiles draws tile values, animated when a move is playing.
func (g *Game) renderTiles(dst *core.Screen, boardX, boardY int) {
	if g.anim.phase == PhaseSlide {
		t := g.anim.progress(g.cfg.Animation.SlideTicks)
		for r, row := range g.anim.before {
			for c, v := range row {
				if v == 0 || g.anim.moving[engine.Coord{Row: r, Col: c}] {
					continue
				}
				g.drawTile(dst, boardX, boardY, float64(r), float64(c), v, tileColor(v))
			}
		}
		for _, p := range g.anim.paths {
			row, col := interpolate(p, t)
			g.drawTile(dst, boardX, boardY, row, col, p.Value, tileColor(p.Value))
		}
		return
	}

	board := g.eng.Grid()
	for r, row := range board {
		for c, v := range row {
			if v == 0 {
				continue
			}
			at := engine.Coord{Row: r, Col: c}
			color := tileColor(v)
			if g.anim.phase == PhasePop {
				if g.anim.spawn != nil && g.anim.spawn.At == at {
					// spawned tiles appear halfway through the pop
					if g.anim.progress(g.cfg.Animation.PopTicks) < 0.5 {
						continue
					}
					color = core.ColorBrightWhite
				}
				if g.anim.merged[at] {
					color = core.ColorBrightWhite
				}
			}
			g.drawTile(dst, boardX, boardY, float64(r), float64(c), v, color)
		}
	}
}

// drawTile draws a value centered in the cell at a fractional board position.
func (g *Game) drawTile(dst *core.Screen, boardX, boardY int, row, col float64, value int, color core.Color) {
	cellX := boardX + int(math.Round(col*cellWidth)) + 1
	cellY := boardY + int(math.Round(row*cellHeight)) + 1

	valStr := strconv.Itoa(value)
	padLeft := (cellWidth - 1 - len(valStr)) / 2
	if padLeft < 0 {
		padLeft = 0
	}
	dst.DrawTextColor(cellX+padLeft, cellY, valStr, color)
}

// tileColor picks a color by tile magnitude.
func tileColor(v int) core.Color {
	switch v {
	case 2:
		return core.ColorWhite
	case 4:
		return core.ColorBrightWhite
	case 8:
		return core.ColorYellow
	case 16:
		return core.ColorOrange
	case 32:
		return core.ColorRed
	case 64:
		return core.ColorBrightRed
	case 128:
		return core.ColorBrightYellow
	case 256:
		return core.ColorGreen
	case 512:
		return core.ColorBrightGreen
	case 1024:
		return core.ColorCyan
	case 2048:
		return core.ColorBrightMagenta
	default:
		return core.ColorMagenta
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.anim.active():
		// let the move finish before covering the board
	case g.levelCleared:
		targetStr := fmt.Sprintf("Target %d reached!", g.currentTarget)
		if g.levelIndex >= g.LevelCount()-1 {
			g.drawOverlay(dst, centerX, centerY, targetStr, "Final level complete!")
		} else {
			nextStr := fmt.Sprintf("Next: Level %d", g.levelIndex+2)
			g.drawOverlay(dst, centerX, centerY, targetStr, nextStr)
		}
	case g.winBanner:
		g.drawOverlay(dst, centerX, centerY, fmt.Sprintf("%d!", g.cfg.Endless.WinTile), "You win! Keep going")
	case g.won:
		g.drawOverlay(dst, centerX, centerY, "CAMPAIGN COMPLETE!", "You are the champion!", "Press R to restart")
	case g.gameOver:
		maxStr := fmt.Sprintf("Max tile: %d", g.eng.MaxTile())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawTextColor(x, boxY+1+i, line, core.ColorBrightWhite)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | P: Pause | R: Restart | Q: Quit"
}
