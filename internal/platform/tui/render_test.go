package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "Score:")
	s.DrawTextColor(7, 0, "2048", core.ColorBrightMagenta)
	s.DrawTextColor(0, 1, "16", core.ColorOrange)

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen produced %d lines, want 2", len(lines))
	}
	for _, want := range []string{"Score:", "2048", "16"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
