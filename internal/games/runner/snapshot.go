package runner

import (
	"fmt"
	"image"
	"strconv"

	"github.com/vovakirdan/portfolio-runner/internal/assets"
	"github.com/vovakirdan/portfolio-runner/internal/core"
	"github.com/vovakirdan/portfolio-runner/internal/i18n"
)

// Snapshot is everything a pixel frontend needs to draw one frame.
// Coordinates are surface pixels with the origin at the top-left.
type Snapshot struct {
	Title    string
	State    core.GameState
	Viewport Viewport
	GroundY  float64

	Player  core.RectF
	Markers []core.RectF // Drawn markers: eligible and not on screen as the overlay topic
	Ground  GroundStrip
	Overlay OverlayState

	Text Labels

	Background image.Image // nil until ready
	Sprite     image.Image
	Marker     image.Image
	Generation uint64 // Bumped whenever the images change
}

// GroundStrip is the translucent band along the bottom of the surface.
type GroundStrip struct {
	Rect    core.RectF
	Color   core.RGB
	Opacity float64
}

// Labels are the localized UI strings for the current state.
type Labels struct {
	HUD          string
	Hint         string
	Phase        string // Empty for single-phase variants
	IntroTitle   string
	IntroStart   string
	PausedTitle  string
	PausedResume string
	Loading      string
	Links        string
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Title:    g.Title(),
		State:    g.State(),
		Viewport: g.view,
		GroundY:  g.groundY,
		Player:   g.player.Box(g.cfg.Player.Size),
		Ground:   g.groundStrip(),
		Overlay:  g.overlay.State(),
		Text:     g.labels(),
	}

	for _, i := range g.visibleMarkers() {
		s.Markers = append(s.Markers, g.markerBox(i))
	}

	if g.ready {
		s.Background = g.assets.Image(assets.KeyBackground)
		s.Sprite = g.assets.Image(assets.KeyPlayer)
		s.Marker = g.assets.Image(assets.KeyMarker)
	}
	s.Generation = g.assets.Generation()
	return s
}

// visibleMarkers returns the eligible markers minus the one whose topic is
// currently on screen.
func (g *Game) visibleMarkers() []int {
	active := g.overlay.Active()
	var out []int
	for _, i := range g.track.Eligible() {
		if active != NoTopic && g.track.Marker(i).Topic == active {
			continue
		}
		out = append(out, i)
	}
	return out
}

func (g *Game) groundStrip() GroundStrip {
	h := g.cfg.Ground.Height
	return GroundStrip{
		Rect:    core.NewRectF(0, g.view.Height-h, g.view.Width, h),
		Color:   parseHex(g.cfg.Ground.Color),
		Opacity: g.cfg.Ground.Opacity,
	}
}

func (g *Game) labels() Labels {
	l := Labels{
		HUD:          fmt.Sprintf(g.text.Get(i18n.HUDScore), g.score),
		Hint:         g.text.Get(i18n.HintControls),
		IntroTitle:   g.text.Get(i18n.IntroTitle),
		IntroStart:   g.text.Get(i18n.IntroStart),
		PausedTitle:  g.text.Get(i18n.PausedTitle),
		PausedResume: g.text.Get(i18n.PausedResume),
		Loading:      g.text.Get(i18n.Loading),
		Links:        g.text.Get(i18n.LinksHeading),
	}
	if g.track.Len() > 1 {
		l.Phase = fmt.Sprintf(g.text.Get(i18n.PhaseLabel), g.track.Index()+1, g.track.Len())
	}
	return l
}

// parseHex reads "#rrggbb". Malformed input yields the default ground color.
func parseHex(s string) core.RGB {
	if len(s) != 7 || s[0] != '#' {
		return core.RGB{R: 30, G: 60, B: 90}
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return core.RGB{R: 30, G: 60, B: 90}
	}
	return core.RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}
