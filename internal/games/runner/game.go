// Package runner implements the portfolio runner: a sprite runs across the
// surface on its own, jumps under gravity and collects markers that open
// timed, typewriter-animated topic overlays.
//
// Two variants are registered. "flat" has one stage with a sliding window
// of markers. "phased" walks through several stages, each with its own
// background, advancing on collection or on wraparound.
package runner

import (
	"context"
	"errors"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/portfolio-runner/internal/assets"
	"github.com/vovakirdan/portfolio-runner/internal/config"
	"github.com/vovakirdan/portfolio-runner/internal/core"
	"github.com/vovakirdan/portfolio-runner/internal/i18n"
	"github.com/vovakirdan/portfolio-runner/internal/registry"
)

// Variant IDs.
const (
	VariantFlat   = "flat"
	VariantPhased = "phased"
)

// closeTimeout bounds how long teardown waits for running decodes.
const closeTimeout = 2 * time.Second

var defaultTitles = map[string]string{
	VariantFlat:   "Portfolio Runner",
	VariantPhased: "Portfolio Journey",
}

func init() {
	defaults := config.DefaultRunnerConfig()
	for _, id := range []string{VariantFlat, VariantPhased} {
		registry.MustRegister(registry.Info{
			ID:     id,
			Title:  defaultTitles[id],
			Stages: len(defaults.Variants[id].Phases),
		}, func() registry.Game { return New(id) })
	}
}

// RegisterConfigured brings the registry in line with cfg. Variants already
// registered take the config's title and stage count; the rest are
// registered so layouts added in a config file can be played by ID.
// It returns the newly registered IDs in sorted order.
func RegisterConfigured(cfg config.RunnerConfig) ([]string, error) {
	names := make([]string, 0, len(cfg.Variants))
	for name := range cfg.Variants {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		added []string
		errs  []error
	)
	for _, name := range names {
		v := cfg.Variants[name]
		if registry.Exists(name) {
			if err := registry.Describe(name, v.Title, len(v.Phases)); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		err := registry.Register(registry.Info{
			ID:     name,
			Title:  v.Title,
			Stages: len(v.Phases),
			Origin: registry.Configured,
		}, func() registry.Game {
			return &Game{id: name, variant: v}
		})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		added = append(added, name)
	}
	return added, errors.Join(errs...)
}

// Settings shared by every game created through the registry, set from the CLI.
var (
	configPath string
	assetDir   string
	language   = i18n.DefaultLang
	logger     *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetAssetDir makes games load assets from dir instead of the embedded set.
func SetAssetDir(dir string) {
	assetDir = dir
}

// SetLanguage selects the UI string catalog.
func SetLanguage(lang string) {
	language = lang
}

// SetLogger sets the logger games and their asset loaders write to.
func SetLogger(l *log.Logger) {
	logger = l
}

// Options override what Reset would otherwise load from the package settings.
type Options struct {
	Config  *config.RunnerConfig
	Assets  AssetSource
	Catalog *i18n.Catalog
	Logger  *log.Logger
}

// Game is one runner session.
type Game struct {
	id   string
	opts Options

	cfg     config.RunnerConfig
	variant config.VariantConfig
	runtime core.RuntimeConfig
	log     *log.Logger
	text    *i18n.Catalog
	assets  AssetSource
	loader  *assets.Loader // Set when the session built its own loader

	sched   *core.Scheduler
	tick    time.Duration
	track   *Track
	overlay *Overlay
	topics  Table

	view    Viewport
	groundY float64
	player  Player

	started bool
	paused  bool
	ready   bool
	score   int
	frames  int

	events []core.Event
	cells  cellCache
}

// New creates a game for the named variant using the package settings.
func New(variant string) *Game {
	return &Game{id: variant}
}

// NewWithOptions creates a game for the named variant with explicit dependencies.
func NewWithOptions(variant string, opts Options) *Game {
	return &Game{id: variant, opts: opts}
}

// ID returns the variant ID.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name of the variant.
func (g *Game) Title() string {
	if g.variant.Title != "" {
		return g.variant.Title
	}
	if t, ok := defaultTitles[g.id]; ok {
		return t
	}
	return g.id
}

// Reset mounts a fresh session. Any timers of the previous session are dropped.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.tick = time.Second / time.Duration(runtime.TickRate)

	g.log = g.opts.Logger
	if g.log == nil {
		g.log = logger
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}

	g.cfg = g.loadConfig()
	g.variant = g.resolveVariant()

	g.text = g.opts.Catalog
	if g.text == nil {
		cat, err := i18n.Load(language)
		if err != nil {
			g.log.Error("failed to load strings", "lang", language, "err", err)
		}
		g.text = cat
	}

	if err := g.Close(); err != nil {
		g.log.Warn("previous asset decodes still running", "err", err)
	}
	g.assets = g.opts.Assets
	if g.assets == nil {
		dir := assetDir
		if dir == "" {
			dir = g.cfg.Assets.Dir
		}
		g.loader = assets.NewLoader(assets.Open(dir), g.log)
		g.assets = g.loader
	}

	g.sched = core.NewScheduler()
	g.topics = NewTable(g.cfg.Topics)
	g.track = NewTrack(PhasesFromConfig(g.variant))
	g.overlay = NewOverlay(g.sched, g.cfg.Overlay.Tick, g.cfg.Overlay.DismissAfter)

	g.started = false
	g.paused = false
	g.ready = false
	g.score = 0
	g.frames = 0
	g.events = nil
	g.cells = cellCache{}

	g.resize(float64(runtime.WindowW), float64(runtime.WindowH))
	g.player = Player{X: g.cfg.Player.StartX, Y: g.groundY}

	g.log.Debug("session reset", "variant", g.id, "phases", g.track.Len(),
		"viewport", g.view.Width, "height", g.view.Height)
}

func (g *Game) loadConfig() config.RunnerConfig {
	if g.opts.Config != nil {
		return *g.opts.Config
	}
	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		g.log.Error("failed to load config, using defaults", "path", configPath, "err", err)
		return config.DefaultRunnerConfig()
	}
	return cfg
}

func (g *Game) resolveVariant() config.VariantConfig {
	if v, err := g.cfg.Variant(g.id); err == nil {
		return v
	}
	if v, err := config.DefaultRunnerConfig().Variant(g.id); err == nil {
		g.log.Warn("variant missing from config, using built-in layout", "variant", g.id)
		return v
	}
	g.log.Error("unknown variant, falling back", "variant", g.id, "fallback", VariantFlat)
	v, _ := config.DefaultRunnerConfig().Variant(VariantFlat)
	return v
}

// Resize recomputes the surface and ground line for a new window size.
// Velocity is not rescaled.
func (g *Game) Resize(windowW, windowH int) {
	g.resize(float64(windowW), float64(windowH))
	g.player.Refit(g.groundY, g.view.Width)
}

func (g *Game) resize(windowW, windowH float64) {
	g.runtime.WindowW, g.runtime.WindowH = int(windowW), int(windowH)
	g.view = ComputeViewport(windowW, windowH, g.cfg.Viewport)
	g.groundY = g.view.Height - g.cfg.Player.Size - g.cfg.Player.GroundMargin
}

// Step advances one display frame. Host time moves by one tick whether or
// not the frame itself runs, so overlay timers keep going while paused.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil
	g.sched.Advance(g.tick)

	g.handleInput(in)
	g.ready = g.started && g.assets.Ready()

	if g.started && g.ready && !g.paused {
		g.frame()
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) frame() {
	g.frames++
	g.player.Fall(g.cfg.Physics.Gravity, g.groundY)

	if g.player.Run(g.cfg.Physics.RunSpeed, g.view.Width) {
		if g.track.Phase().Advance == AdvanceWrap {
			if g.advancePhase("wrap") {
				return
			}
		}
	}

	g.collide()
}

// collide collects the first visible marker the player overlaps.
func (g *Game) collide() {
	box := g.player.Box(g.cfg.Player.Size)
	for _, i := range g.visibleMarkers() {
		if box.Overlaps(g.markerBox(i)) {
			g.collect(i)
			return
		}
	}
}

func (g *Game) markerBox(i int) core.RectF {
	m := g.track.Marker(i)
	x := m.LogicalX * g.view.Scale(g.cfg.Viewport.ReferenceWidth)
	y := g.view.Height - g.cfg.Markers.BottomOffset
	return core.NewRectF(x, y, g.cfg.Markers.Size, g.cfg.Markers.Size)
}

func (g *Game) collect(i int) {
	if !g.track.Collect(i) {
		return
	}
	m := g.track.Marker(i)
	g.score++

	topic, ok := g.topics.Lookup(m.Topic)
	if !ok {
		g.log.Warn("marker topic not in table", "topic", m.Topic)
	}
	g.overlay.Show(topic)
	g.events = append(g.events, core.EventCollect)
	g.log.Info("marker collected", "phase", g.track.Index()+1, "topic", m.Topic, "score", g.score)

	phase := g.track.Phase()
	if phase.Advance == AdvanceCollect && g.track.Complete() && !g.track.Last() && g.track.Pending() == 0 {
		g.track.SetPending(g.sched.After(phase.Delay, func() {
			g.advancePhase("collect")
		}))
		g.log.Debug("phase advance scheduled", "phase", g.track.Index()+1, "delay", phase.Delay)
	}
}

// advancePhase moves to the next phase and resets the per-phase bundle.
// It reports false on the last phase.
func (g *Game) advancePhase(reason string) bool {
	if g.track.Last() {
		return false
	}
	if tok := g.track.Pending(); tok != 0 {
		g.sched.Cancel(tok)
	}
	g.track.Advance()

	g.score = 0
	g.overlay.Dismiss()
	g.beginAssets()
	g.ready = false

	g.events = append(g.events, core.EventPhase)
	g.log.Info("phase advanced", "phase", g.track.Index()+1, "of", g.track.Len(),
		"reason", reason, "background", g.track.Phase().Background)
	return true
}

func (g *Game) beginAssets() {
	g.assets.Begin(assets.Manifest{
		Background: g.track.Phase().Background,
		Player:     g.cfg.Assets.Player,
		Marker:     g.cfg.Assets.Marker,
		JumpSound:  g.cfg.Assets.JumpSound,
	})
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	phases := 1
	phase := 1
	if g.track != nil {
		phases = g.track.Len()
		phase = g.track.Index() + 1
	}
	return core.GameState{
		Score:       g.score,
		Started:     g.started,
		Paused:      g.paused,
		AssetsReady: g.ready,
		Phase:       phase,
		Phases:      phases,
	}
}

// Player returns a copy of the player state.
func (g *Game) Player() Player {
	return g.player
}

// Viewport returns the current surface size.
func (g *Game) Viewport() Viewport {
	return g.view
}

// SurfaceSize returns the surface width and height in pixels.
func (g *Game) SurfaceSize() (float64, float64) {
	return g.view.Width, g.view.Height
}

// GroundY returns the Y the player's top edge rests at when grounded.
func (g *Game) GroundY() float64 {
	return g.groundY
}

// Overlay returns what the overlay panel shows.
func (g *Game) Overlay() OverlayState {
	return g.overlay.State()
}

// Frames returns how many physics frames have run.
func (g *Game) Frames() int {
	return g.frames
}

// Now returns the session's host time.
func (g *Game) Now() time.Duration {
	return g.sched.Now()
}

// Assets returns the asset source the session draws from.
func (g *Game) Assets() AssetSource {
	return g.assets
}

// Close waits briefly for the session's own asset decodes to finish.
// Sessions given an AssetSource through Options leave it alone.
func (g *Game) Close() error {
	if g.loader == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	err := g.loader.Close(ctx)
	g.loader = nil
	return err
}

// Topics returns the session's topic table.
func (g *Game) Topics() Table {
	return g.topics
}
