package tui

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/portfolio-runner/internal/core"
)

var ansiSeq = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(1, 0, "hello")
	s.DrawTextColored(2, 1, "runner", core.ColorCyan)
	s.SetBg(0, 2, core.RGB{R: 10, G: 20, B: 30})
	s.SetBg(1, 2, core.RGB{R: 10, G: 20, B: 30})

	out := ansiSeq.ReplaceAllString(RenderScreen(s), "")
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	want := []string{" hello      ", "  runner    ", "            "}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestCellStyleCache(t *testing.T) {
	cache := make(map[cellStyle]lipgloss.Style)
	bg := core.Cell{Rune: 'x', Color: core.ColorRed, Bg: core.RGB{R: 1, G: 2, B: 3}, HasBg: true}
	plain := core.Cell{Rune: 'x', Color: core.ColorRed}

	styleOf(bg).render(cache)
	styleOf(bg).render(cache)
	styleOf(plain).render(cache)
	if len(cache) != 2 {
		t.Errorf("cache holds %d styles, want 2", len(cache))
	}

	st := styleOf(bg).render(cache)
	if got := st.GetBackground(); got != lipgloss.Color("#010203") {
		t.Errorf("background: got %v, want #010203", got)
	}
	if got := styleOf(plain).render(cache).GetBackground(); got != (lipgloss.NoColor{}) {
		t.Errorf("plain cell got background %v", got)
	}
}

func TestUnknownColorFallsBack(t *testing.T) {
	cache := make(map[cellStyle]lipgloss.Style)
	st := cellStyle{fg: core.Color(200)}.render(cache)
	if got := st.GetForeground(); got != (lipgloss.NoColor{}) {
		t.Errorf("unknown color got foreground %v", got)
	}
}
