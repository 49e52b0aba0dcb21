package runner

import (
	"image"
	"image/color"

	"github.com/vovakirdan/portfolio-runner/internal/assets"
	"github.com/vovakirdan/portfolio-runner/internal/config"
	"github.com/vovakirdan/portfolio-runner/internal/core"
	"github.com/vovakirdan/portfolio-runner/internal/i18n"
)

// fakeAssets is an AssetSource that becomes ready on Begin when auto is set.
type fakeAssets struct {
	auto   bool
	ready  bool
	gen    uint64
	begins []assets.Manifest
	images map[assets.Key]image.Image
}

func newFakeAssets(auto bool) *fakeAssets {
	return &fakeAssets{
		auto: auto,
		images: map[assets.Key]image.Image{
			assets.KeyBackground: uniform(40, 22, color.RGBA{200, 0, 0, 255}),
			assets.KeyPlayer:     uniform(8, 8, color.RGBA{0, 0, 255, 255}),
			assets.KeyMarker:     uniform(4, 4, color.RGBA{255, 255, 0, 255}),
		},
	}
}

func uniform(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func (f *fakeAssets) Begin(m assets.Manifest) {
	f.begins = append(f.begins, m)
	f.gen++
	f.ready = f.auto
}

func (f *fakeAssets) Ready() bool { return f.ready }

func (f *fakeAssets) Image(k assets.Key) image.Image {
	if !f.ready {
		return nil
	}
	return f.images[k]
}

func (f *fakeAssets) Sound() (string, []byte) { return "jump.wav", nil }

func (f *fakeAssets) Generation() uint64 { return f.gen }

// Test tick rate: 50 ticks per second gives 20ms per Step.
const testTickRate = 50

func newTestGame(variant string, windowW, windowH int, src AssetSource, cfg *config.RunnerConfig) *Game {
	if cfg == nil {
		c := config.DefaultRunnerConfig()
		cfg = &c
	}
	g := NewWithOptions(variant, Options{
		Config:  cfg,
		Assets:  src,
		Catalog: i18n.MustLoad("en"),
	})
	g.Reset(core.RuntimeConfig{WindowW: windowW, WindowH: windowH, TickRate: testTickRate})
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	return g.Step(core.NewInputFrame(actions...))
}

func countEvents(r core.StepResult, e core.Event) int {
	n := 0
	for _, ev := range r.Events {
		if ev == e {
			n++
		}
	}
	return n
}
