// Package gui provides the Ebitengine frontend for the runner.
// It owns the window, keyboard, mouse and touch input, and the jump sound;
// the session itself stays in the game package and is drawn from its
// per-frame snapshot.
package gui

import (
	"fmt"
	"image"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/portfolio-runner/internal/core"
	"github.com/vovakirdan/portfolio-runner/internal/games/runner"
	"github.com/vovakirdan/portfolio-runner/internal/registry"
)

// SampleRate is the audio context rate; sounds are resampled to it.
const SampleRate = 48000

// Session is a game the window can draw.
type Session interface {
	registry.Game
	Snapshot() runner.Snapshot
	Assets() runner.AssetSource
}

// Options configure the window.
type Options struct {
	Logger *log.Logger // Nil = discard
	Mute   bool        // Skip the audio context entirely
}

// Window implements ebiten.Game around one session.
type Window struct {
	session Session
	cfg     core.RuntimeConfig
	log     *log.Logger

	sound  *Sound
	fonts  *fonts
	images imageCache

	winW, winH int
	surface    *ebiten.Image
	touches    []ebiten.TouchID
}

// New resets the session for the initial window size and prepares fonts and audio.
func New(session Session, cfg core.RuntimeConfig, opts Options) (*Window, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	f, err := newFonts()
	if err != nil {
		return nil, fmt.Errorf("gui: %w", err)
	}

	var ctx *audio.Context
	if !opts.Mute {
		ctx = audio.NewContext(SampleRate)
	}

	session.Reset(cfg)

	return &Window{
		session: session,
		cfg:     cfg,
		log:     opts.Logger,
		sound:   NewSound(ctx, opts.Logger),
		fonts:   f,
		winW:    cfg.WindowW,
		winH:    cfg.WindowH,
	}, nil
}

// Update polls input and advances the session by one frame.
func (w *Window) Update() error {
	res := w.session.Step(w.pollInput())

	name, data := w.session.Assets().Sound()
	w.sound.Sync(name, data)

	for _, ev := range res.Events {
		switch ev {
		case core.EventJump:
			w.sound.Play()
		case core.EventPhase:
			w.log.Debug("phase changed", "phase", res.State.Phase, "of", res.State.Phases)
		}
	}
	return nil
}

// pollInput maps this frame's presses to actions.
func (w *Window) pollInput() core.InputFrame {
	f := core.NewInputFrame()

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		f.Set(core.ActionStart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		f.Set(core.ActionJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		f.Set(core.ActionPause)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if w.onSurface(image.Pt(ebiten.CursorPosition())) {
			f.Set(core.ActionTap)
		}
	}
	w.touches = inpututil.AppendJustPressedTouchIDs(w.touches[:0])
	for _, id := range w.touches {
		if w.onSurface(image.Pt(ebiten.TouchPosition(id))) {
			f.Set(core.ActionTap)
		}
	}
	return f
}

func (w *Window) onSurface(p image.Point) bool {
	snap := w.session.Snapshot()
	return p.In(surfaceRect(w.winW, w.winH, snap.Viewport))
}

// Layout reports window size changes to the session and keeps a
// one-to-one mapping between window and screen pixels.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != w.winW || outsideHeight != w.winH {
		w.winW, w.winH = outsideWidth, outsideHeight
		w.session.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// surfaceRect centers the surface in the window.
func surfaceRect(winW, winH int, v runner.Viewport) image.Rectangle {
	sw, sh := int(v.Width), int(v.Height)
	x := core.Max((winW-sw)/2, 0)
	y := core.Max((winH-sh)/2, 0)
	return image.Rect(x, y, x+sw, y+sh)
}

// Run opens the window and blocks until it is closed.
func Run(session Session, cfg core.RuntimeConfig, opts Options) error {
	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)
	ebiten.SetWindowTitle(session.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	w, err := New(session, cfg, opts)
	if err != nil {
		return err
	}
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
