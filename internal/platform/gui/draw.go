package gui

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/portfolio-runner/internal/core"
	"github.com/vovakirdan/portfolio-runner/internal/games/runner"
)

var (
	pageColor    = color.RGBA{12, 12, 18, 255}
	surfaceColor = color.RGBA{26, 26, 35, 255}
	hintColor    = color.NRGBA{20, 20, 40, 200}
	introColor   = color.NRGBA{204, 231, 255, 240}
	introText    = color.RGBA{20, 40, 70, 255}
	dimColor     = color.NRGBA{0, 0, 0, 150}
	panelColor   = color.NRGBA{30, 30, 60, 230}
	titleColor   = color.RGBA{255, 230, 90, 255}
	bodyColor    = color.RGBA{235, 235, 245, 255}
	linkColor    = color.RGBA{120, 200, 255, 255}
	mutedColor   = color.RGBA{160, 160, 180, 255}
)

const panelMaxWidth = 600

// imageCache holds GPU copies of the snapshot images for one asset generation.
type imageCache struct {
	gen    uint64
	bg     *ebiten.Image
	sprite *ebiten.Image
	marker *ebiten.Image
}

// sync uploads the snapshot's images when the generation changes.
func (c *imageCache) sync(s runner.Snapshot) {
	if c.bg != nil && c.gen == s.Generation {
		return
	}
	c.release()
	c.gen = s.Generation
	if s.Background != nil {
		c.bg = ebiten.NewImageFromImage(s.Background)
	}
	if s.Sprite != nil {
		c.sprite = ebiten.NewImageFromImage(s.Sprite)
	}
	if s.Marker != nil {
		c.marker = ebiten.NewImageFromImage(s.Marker)
	}
}

func (c *imageCache) release() {
	for _, img := range []*ebiten.Image{c.bg, c.sprite, c.marker} {
		if img != nil {
			img.Deallocate()
		}
	}
	c.bg, c.sprite, c.marker = nil, nil, nil
}

// Draw renders the surface centered in the window.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(pageColor)

	snap := w.session.Snapshot()
	r := surfaceRect(w.winW, w.winH, snap.Viewport)
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return
	}
	if w.surface == nil || w.surface.Bounds().Size() != r.Size() {
		if w.surface != nil {
			w.surface.Deallocate()
		}
		w.surface = ebiten.NewImage(r.Dx(), r.Dy())
	}

	dst := w.surface
	dst.Fill(surfaceColor)

	if snap.State.AssetsReady {
		w.images.sync(snap)
		w.drawScene(dst, snap)
	}
	w.drawUI(dst, snap)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	screen.DrawImage(dst, op)
}

// drawScene draws background, ground strip, player and markers, in that order.
func (w *Window) drawScene(dst *ebiten.Image, s runner.Snapshot) {
	drawImageBox(dst, w.images.bg, core.NewRectF(0, 0, s.Viewport.Width, s.Viewport.Height))

	g := s.Ground
	fillRect(dst, g.Rect, color.NRGBA{g.Color.R, g.Color.G, g.Color.B, uint8(g.Opacity*255 + 0.5)})

	drawImageBox(dst, w.images.sprite, s.Player)
	for _, m := range s.Markers {
		drawImageBox(dst, w.images.marker, m)
	}
}

// drawUI draws the text layers: hint bar, HUD, intro or loading card,
// overlay panel and pause card.
func (w *Window) drawUI(dst *ebiten.Image, s runner.Snapshot) {
	vw, vh := s.Viewport.Width, s.Viewport.Height
	body, title := w.fonts.faces(vw)
	lh := body.Size * 1.4

	hintW := text.Advance(s.Text.Hint, body) + 16
	fillRect(dst, core.NewRectF((vw-hintW)/2, 4, hintW, lh), hintColor)
	drawText(dst, s.Text.Hint, body, vw/2, 4+lh*0.15, text.AlignCenter, mutedColor)

	if s.State.Started {
		drawText(dst, s.Text.HUD, body, 10, 8+lh, text.AlignStart, bodyColor)
		if s.Text.Phase != "" {
			drawText(dst, s.Text.Phase, body, vw-10, 8+lh, text.AlignEnd, bodyColor)
		}
	}

	switch {
	case !s.State.Started:
		w.drawIntro(dst, s, body, title)
	case !s.State.AssetsReady:
		drawText(dst, s.Text.Loading, body, vw/2, vh/2, text.AlignCenter, mutedColor)
	}

	if s.Overlay.Visible {
		w.drawOverlay(dst, s, body, title)
	}

	if s.State.Started && s.State.Paused {
		fillRect(dst, core.NewRectF(0, 0, vw, vh), dimColor)
		drawText(dst, s.Text.PausedTitle, title, vw/2, vh/2-title.Size, text.AlignCenter, bodyColor)
		drawText(dst, s.Text.PausedResume, body, vw/2, vh/2+lh*0.5, text.AlignCenter, mutedColor)
	}
}

func (w *Window) drawIntro(dst *ebiten.Image, s runner.Snapshot, body, title *text.GoTextFace) {
	vw, vh := s.Viewport.Width, s.Viewport.Height
	width := min(vw-40, panelMaxWidth)
	lines := wrapText(s.Text.IntroTitle, title, width-32)
	lh := title.Size * 1.3

	height := float64(len(lines))*lh + body.Size*3
	top := (vh - height) / 2
	fillRect(dst, core.NewRectF((vw-width)/2, top, width, height), introColor)

	y := top + body.Size*0.6
	for _, l := range lines {
		drawText(dst, l, title, vw/2, y, text.AlignCenter, introText)
		y += lh
	}
	drawText(dst, s.Text.IntroStart, body, vw/2, y+body.Size*0.4, text.AlignCenter, introText)
}

func (w *Window) drawOverlay(dst *ebiten.Image, s runner.Snapshot, body, title *text.GoTextFace) {
	ov := s.Overlay
	vw := s.Viewport.Width
	width := min(vw-40, panelMaxWidth)
	lh := body.Size * 1.4
	inner := width - 32

	full := wrapText(ov.Message, body, inner)
	shown := revealLines(full, utf8.RuneCountInString(ov.Revealed))

	rows := 1 + len(full)
	if ov.Note != "" {
		rows++
	}
	if len(ov.Links) > 0 {
		rows += 1 + len(ov.Links)
	}
	height := title.Size*1.6 + float64(rows-1)*lh + 24
	left, top := (vw-width)/2, 40.0
	fillRect(dst, core.NewRectF(left, top, width, height), panelColor)

	x, y := left+16, top+12
	drawText(dst, ov.Title, title, x, y, text.AlignStart, titleColor)
	y += title.Size * 1.6

	for _, l := range shown {
		drawText(dst, l, body, x, y, text.AlignStart, bodyColor)
		y += lh
	}
	y = top + 12 + title.Size*1.6 + float64(len(full))*lh

	if ov.Note != "" {
		drawText(dst, ov.Note, body, x, y, text.AlignStart, mutedColor)
		y += lh
	}
	if len(ov.Links) > 0 {
		drawText(dst, s.Text.Links, body, x, y, text.AlignStart, mutedColor)
		y += lh
		for _, link := range ov.Links {
			drawText(dst, link.Label+": "+link.URL, body, x, y, text.AlignStart, linkColor)
			y += lh
		}
	}
}

// drawImageBox stretches img over box.
func drawImageBox(dst, img *ebiten.Image, box core.RectF) {
	if img == nil || box.W <= 0 || box.H <= 0 {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(box.W/float64(b.Dx()), box.H/float64(b.Dy()))
	op.GeoM.Translate(box.X, box.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

func fillRect(dst *ebiten.Image, r core.RectF, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, align text.Align, c color.Color) {
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = align
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}
