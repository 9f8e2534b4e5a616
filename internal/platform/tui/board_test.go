package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func TestLayoutBoard(t *testing.T) {
	tests := []struct {
		name      string
		w, h      int
		wantCellW int
		wantFits  bool
	}{
		{"roomy", 80, 24, 2, true},
		{"narrow", 30, 24, 1, true},
		{"short", 80, 20, 2, false},
		{"tiny", 10, 5, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := LayoutBoard(tt.w, tt.h, 21)
			if l.CellW != tt.wantCellW || l.Fits != tt.wantFits {
				t.Errorf("LayoutBoard(%d, %d) = cellW %d fits %v", tt.w, tt.h, l.CellW, l.Fits)
			}
			if l.Area.W != 21*l.CellW || l.Area.H != 21 {
				t.Errorf("Area = %+v", l.Area)
			}
		})
	}
}

func TestDrawBoard(t *testing.T) {
	scr := core.NewScreen(30, 10)
	layout := LayoutBoard(30, 10, 5)
	snap := snake.Snapshot{
		Phase:     snake.PhaseRunning,
		TileCount: 5,
		Snake:     []snake.Point{{X: 2, Y: 2}, {X: 1, Y: 2}},
		Food:      snake.Point{X: 4, Y: 0},
		HasFood:   true,
	}
	DrawBoard(scr, snap, layout)

	head := scr.GetCell(layout.Area.X+4, layout.Area.Y+2)
	if head.Rune != '█' || head.Color != core.ColorSnakeHead {
		t.Errorf("head cell = %+v", head)
	}
	body := scr.GetCell(layout.Area.X+2, layout.Area.Y+2)
	if body.Color != core.ColorSnakeBody {
		t.Errorf("body cell = %+v", body)
	}
	food := scr.GetCell(layout.Area.X+8, layout.Area.Y)
	if food.Rune != '●' || food.Color != core.ColorFood {
		t.Errorf("food cell = %+v", food)
	}
	if got := scr.Get(layout.Area.X-1, layout.Area.Y-1); got != '╭' {
		t.Errorf("border corner = %q", got)
	}
}

func TestDrawOverlay(t *testing.T) {
	scr := core.NewScreen(30, 12)
	layout := LayoutBoard(30, 12, 9)
	DrawOverlay(scr, layout, []string{"PAUSED"}, core.ColorOverlay)
	if !strings.Contains(scr.String(), "PAUSED") {
		t.Error("overlay text missing")
	}
}

func TestDrawOverlayStaysInsideBoard(t *testing.T) {
	scr := core.NewScreen(30, 12)
	layout := LayoutBoard(30, 12, 3)
	lines := []string{"a", "b", "c", "d", "e", "f", "g"}
	DrawOverlay(scr, layout, lines, core.ColorOverlay)

	for y := 0; y < scr.Height(); y++ {
		if y >= layout.Area.Y && y < layout.Area.Bottom() {
			continue
		}
		if row := scr.Row(y); strings.ContainsAny(row, "abcdefg") {
			t.Errorf("row %d outside the board = %q", y, row)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	scr := core.NewScreen(12, 2)
	scr.DrawText(0, 0, "score", core.ColorHUD)
	scr.DrawText(6, 0, "●", core.ColorFood)
	scr.DrawText(0, 1, "end", core.ColorDefault)

	out := RenderScreen(scr)
	if !strings.Contains(out, "score") || !strings.Contains(out, "●") || !strings.Contains(out, "end") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}
