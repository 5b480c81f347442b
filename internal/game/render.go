package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
)

const (
	cellWidth  = 7 // including the left border
	cellHeight = 2 // including the top border
	hudHeight  = 3

	boardW = engine.Size*cellWidth + 1
	boardH = engine.Size*cellHeight + 1
)

// TileColor returns the display color for a tile value.
func TileColor(v int) core.Color {
	switch v {
	case 0:
		return core.ColorGray
	case 2:
		return core.ColorWhite
	case 4:
		return core.ColorBrightWhite
	case 8, 16:
		return core.ColorOrange
	case 32:
		return core.ColorRed
	case 64:
		return core.ColorBrightRed
	case 128:
		return core.ColorYellow
	case 256:
		return core.ColorBrightYellow
	case 512:
		return core.ColorGreen
	case 1024:
		return core.ColorBrightGreen
	case 2048:
		return core.ColorBrightMagenta
	default:
		return core.ColorBrightCyan
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	board := g.boardRect()
	g.renderHUD(dst, board)
	g.renderBoard(dst, board)
	g.renderStatus(dst, board.X, board.Bottom())
	g.renderOverlays(dst, board)
}

// boardRect places the board horizontally centered below the HUD.
func (g *Game) boardRect() core.Rect {
	return core.NewRect((g.screenW-boardW)/2, hudHeight+1, boardW, boardH)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
}

func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	title := "2048"
	dst.DrawTextColored(board.X+(board.W-len(title))/2, 0, title, core.ColorBrightMagenta)

	drawPair(dst, board, 1, fmt.Sprintf("Score: %d", g.session.Score()), fmt.Sprintf("Best: %d", g.Best()))
	drawPair(dst, board, 2, fmt.Sprintf("Max: %d", g.session.MaxTile()), fmt.Sprintf("Moves: %d", g.session.Moves()))
}

// drawPair writes left flush with the board and right aligned to its edge.
func drawPair(dst *core.Screen, board core.Rect, y int, left, right string) {
	dst.DrawText(board.X, y, left)
	dst.DrawText(max(board.Right()-len(right), board.X+len(left)+1), y, right)
}

func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	boardX, boardY := board.X, board.Y
	for y := range engine.Size + 1 {
		for x := range engine.Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.SetColored(px, py, junction(x, y), core.ColorGray)
			if x < engine.Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < engine.Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	grid := g.session.Grid()
	for r := range engine.Size {
		for c := range engine.Size {
			v := grid[r][c]
			if v == 0 {
				continue
			}

			text := strconv.Itoa(v)
			color := TileColor(v)
			if g.pop.at(r, c) {
				text = "[" + text + "]"
				color = core.ColorBrightWhite
			}

			inner := cellWidth - 1
			pad := max((inner-len(text)+1)/2, 0)
			dst.DrawTextColored(boardX+c*cellWidth+1+pad, boardY+r*cellHeight+1, text, color)
		}
	}
}

// junction returns the box-drawing rune where grid lines x and y cross.
func junction(x, y int) rune {
	last := engine.Size
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == last:
		return '┐'
	case y == last && x == 0:
		return '└'
	case y == last && x == last:
		return '┘'
	case y == 0:
		return '┬'
	case y == last:
		return '┴'
	case x == 0:
		return '├'
	case x == last:
		return '┤'
	default:
		return '┼'
	}
}

func (g *Game) renderStatus(dst *core.Screen, boardX, y int) {
	if g.session.HasWon() && !g.session.IsOver() && !g.winBanner {
		dst.DrawTextColored(boardX, y, "2048 reached, keep going!", core.ColorBrightMagenta)
	}
}

func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	centerX, centerY := board.Center()
	switch {
	case g.session.IsOver():
		g.drawOverlay(dst, centerX, centerY, core.ColorBrightRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d  Max: %d", g.session.Score(), g.session.MaxTile()),
			"Press R to restart")
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, core.ColorYellow, "PAUSED", "Press P to resume", "R: new game")
	case g.winBanner:
		g.drawOverlay(dst, centerX, centerY, core.ColorBrightMagenta, "You reached 2048!", "Enter: keep going", "R: new game")
	}
}

// drawOverlay draws a boxed message centered on (centerX, centerY).
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, color core.Color, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}

	box := core.CenteredRect(centerX, centerY, width+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, color)
	}
}
