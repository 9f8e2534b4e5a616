package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Board layout: one HUD row, then the bordered play field.
const (
	hudRows    = 1
	borderSize = 1
)

// BoardLayout is where the play field sits on screen.
type BoardLayout struct {
	Area  core.Rect // Inside the border
	CellW int       // Columns per tile
	Fits  bool
}

// LayoutBoard centres a tileCount x tileCount field on a screen. Tiles are
// two columns wide when there is room, which keeps them roughly square.
func LayoutBoard(screenW, screenH, tileCount int) BoardLayout {
	cellW := 2
	if tileCount*2+2*borderSize > screenW {
		cellW = 1
	}
	w := tileCount * cellW
	h := tileCount

	fits := w+2*borderSize <= screenW && h+2*borderSize+hudRows <= screenH

	outer := core.CenteredRect(screenW, screenH-hudRows, w+2*borderSize, h+2*borderSize)
	outer.X = max(outer.X, 0)
	outer.Y = max(outer.Y, 0) + hudRows
	return BoardLayout{
		Area:  outer.Inset(borderSize),
		CellW: cellW,
		Fits:  fits,
	}
}

// RequiredSize returns the smallest screen that fits a board.
func RequiredSize(tileCount int) (w, h int) {
	return tileCount + 2*borderSize, tileCount + 2*borderSize + hudRows
}

// DrawBoard paints the border, snake and food of snap.
func DrawBoard(scr *core.Screen, snap snake.Snapshot, layout BoardLayout) {
	area := layout.Area
	scr.DrawBox(area.Inset(-borderSize), core.ColorBorder)
	scr.FillRect(area, ' ', core.ColorDefault)

	if snap.HasFood {
		drawTile(scr, layout, snap.Food, '●', core.ColorFood)
	}

	for i := len(snap.Snake) - 1; i >= 0; i-- {
		r, c := '█', core.ColorSnakeBody
		if i == 0 {
			r, c = '█', core.ColorSnakeHead
			if snap.Phase == snake.PhaseGameOver && !snap.Won {
				c = core.ColorDanger
			}
		}
		drawTile(scr, layout, snap.Snake[i], r, c)
	}
}

func drawTile(scr *core.Screen, layout BoardLayout, p snake.Point, r rune, c core.Color) {
	x := layout.Area.X + p.X*layout.CellW
	y := layout.Area.Y + p.Y
	scr.SetCell(x, y, r, c)
	// Food stays a single glyph so it reads as a dot.
	if layout.CellW > 1 && r == '█' {
		for dx := 1; dx < layout.CellW; dx++ {
			scr.SetCell(x+dx, y, r, c)
		}
	}
}

// DrawHUD writes the score line above the board.
func DrawHUD(scr *core.Screen, snap snake.Snapshot, layout BoardLayout, extra string) {
	y := layout.Area.Y - borderSize - hudRows
	left := fmt.Sprintf("Score %d  High %d", snap.Score, snap.HighScore)
	right := string(snap.Difficulty)
	if extra != "" {
		right = extra + "  " + right
	}

	x0 := layout.Area.X - borderSize
	scr.DrawText(x0, y, left, core.ColorHUD)
	rightX := layout.Area.Right() + borderSize - len([]rune(right))
	scr.DrawText(max(rightX, x0+len(left)+1), y, right, core.ColorHUD)
}

// DrawOverlay writes a block of centred lines over the middle of the board.
func DrawOverlay(scr *core.Screen, layout BoardLayout, lines []string, c core.Color) {
	if len(lines) == 0 {
		return
	}
	area := layout.Area
	top := max(area.Y+(area.H-len(lines))/2, area.Y)
	for i, line := range lines {
		y := top + i
		if y >= area.Bottom() {
			break
		}
		w := len([]rune(line)) + 2
		band := core.NewRect(area.X+(area.W-w)/2, y, w, 1)
		scr.FillRect(band, ' ', c)
		scr.DrawTextCentered(area, y, line, c)
	}
}

// DrawTooSmall replaces the screen with a resize hint.
func DrawTooSmall(scr *core.Screen, tileCount int) {
	w, h := RequiredSize(tileCount)
	scr.Clear()
	b := scr.Bounds()
	scr.DrawTextCentered(b, b.H/2-1, "Terminal too small", core.ColorDanger)
	scr.DrawTextCentered(b, b.H/2, fmt.Sprintf("need at least %dx%d, have %dx%d", w, h, b.W, b.H), core.ColorHUD)
}
