package runner

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/portfolio-runner/internal/core"
)

// 112x31 cells at 8x16 pixels per cell.
func newRenderGame() (*Game, *core.Screen) {
	g := newTestGame(VariantFlat, 112*8, 31*16, newFakeAssets(true), nil)
	return g, core.NewScreen(112, 31)
}

func closeTo(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -2 && d <= 2
}

func TestRenderIntro(t *testing.T) {
	g, scr := newRenderGame()
	g.Render(scr)
	out := scr.String()

	for _, want := range []string{"Press F to start the game", "Press UP ARROW to jump", "Hi I am Jai"} {
		if !strings.Contains(out, want) {
			t.Errorf("intro screen missing %q", want)
		}
	}
	if strings.Contains(out, "Orbs collected") {
		t.Error("HUD drawn before start")
	}
}

func TestRenderLoading(t *testing.T) {
	g := newTestGame(VariantFlat, 112*8, 31*16, newFakeAssets(false), nil)
	scr := core.NewScreen(112, 31)
	step(g, core.ActionStart)
	g.Render(scr)

	if !strings.Contains(scr.String(), "Loading...") {
		t.Error("loading note missing while assets load")
	}
}

func TestRenderPausedAndHUD(t *testing.T) {
	g, scr := newRenderGame()
	step(g, core.ActionStart)
	step(g, core.ActionPause)
	g.Render(scr)
	out := scr.String()

	for _, want := range []string{"Game Paused", "Press P or Escape to resume", "Orbs collected: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("paused screen missing %q", want)
		}
	}
}

func TestRenderSamplesBackground(t *testing.T) {
	g, scr := newRenderGame()
	step(g, core.ActionStart)
	g.Render(scr)

	// Surface is 869x488 px: 108x30 cells, offset 2 columns.
	x := 2 + 108 - 3

	sky := scr.GetCell(x, 8)
	if !sky.HasBg || !closeTo(sky.Bg.R, 200) || !closeTo(sky.Bg.G, 0) || !closeTo(sky.Bg.B, 0) {
		t.Errorf("background cell: %+v", sky)
	}

	// Ground strip: red under rgb(30,60,90) at 0.3.
	ground := scr.GetCell(x, 29)
	if !closeTo(ground.Bg.R, 149) || !closeTo(ground.Bg.G, 18) || !closeTo(ground.Bg.B, 27) {
		t.Errorf("ground cell: %+v", ground)
	}

	// Player sprite is solid blue, 12x6 cells from (x/8, y/16).
	p := g.Player()
	pc := scr.GetCell(2+int(p.X/8)+6, int(p.Y/16)+3)
	if !closeTo(pc.Bg.B, 255) || !closeTo(pc.Bg.R, 0) {
		t.Errorf("player cell: %+v", pc)
	}
}

func TestRenderOverlayPanel(t *testing.T) {
	g, scr := newRenderGame()
	step(g, core.ActionStart)
	for i := 0; i < 40 && !g.Overlay().Visible; i++ {
		step(g)
	}
	// Long enough to type the first words, short of the next marker.
	for i := 0; i < 30; i++ {
		step(g)
	}
	g.Render(scr)
	out := scr.String()

	for _, want := range []string{"About", "GitHub Profile", "LinkedIn Profile", "DevOps Engineer"} {
		if !strings.Contains(out, want) {
			t.Errorf("overlay missing %q", want)
		}
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g, _ := newRenderGame()
	scr := core.NewScreen(3, 2)
	g.Render(scr) // must not panic
}

func TestWrap(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  []string
	}{
		{"", 10, nil},
		{"one two three", 7, []string{"one two", "three"}},
		{"one two three", 100, []string{"one two three"}},
		{"abcdefghij xy", 4, []string{"abcd", "efgh", "ij", "xy"}},
		{"a  b", 5, []string{"a b"}},
	}
	for _, tt := range tests {
		if got := wrap(tt.in, tt.width); !slices.Equal(got, tt.want) {
			t.Errorf("wrap(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello", 10); got != "hello" {
		t.Errorf("short: %q", got)
	}
	if got := truncate("hello world", 6); got != "hello…" {
		t.Errorf("long: %q", got)
	}
	if got := truncate("hello", 0); got != "" {
		t.Errorf("zero: %q", got)
	}
}
