package runner

import (
	"image"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/draw"

	"github.com/vovakirdan/portfolio-runner/internal/assets"
	"github.com/vovakirdan/portfolio-runner/internal/core"
)

// Terminal palette for the areas not covered by a raster asset.
var (
	surfaceBg = core.RGB{R: 26, G: 26, B: 35}
	hintBg    = core.RGB{R: 20, G: 20, B: 40}
	introBg   = core.RGB{R: 204, G: 231, B: 255}
	pausedBg  = core.RGB{R: 8, G: 8, B: 12}
	panelBg   = core.RGB{R: 30, G: 30, B: 60}
)

// Overlay panel limits, in surface pixels.
const (
	panelTop      = 40
	panelMaxWidth = 600
)

// cellCache keeps the downsampled background between frames.
type cellCache struct {
	gen        uint64
	cols, rows int
	bg         *image.RGBA
}

// Render draws the session into a cell buffer. Each cell stands for a
// tui.cell_width by tui.cell_height block of surface pixels; raster assets
// are downsampled into cell background colors.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	cw, ch := g.cellSize()
	cols := core.Min(int(g.view.Width)/cw, dst.Width())
	rows := core.Min(int(g.view.Height)/ch, dst.Height())
	if cols <= 0 || rows <= 0 {
		return
	}
	ox := (dst.Width() - cols) / 2
	oy := (dst.Height() - rows) / 2
	area := core.NewRect(ox, oy, cols, rows)

	canvas := image.NewRGBA(image.Rect(0, 0, cols, rows))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(toColor(surfaceBg)), image.Point{}, draw.Src)

	if g.ready {
		g.paintScene(canvas, cw, ch)
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := canvas.RGBAAt(x, y)
			dst.SetBg(ox+x, oy+y, core.RGB{R: c.R, G: c.G, B: c.B})
		}
	}

	text := g.labels()
	g.drawHUD(dst, area, text)

	switch {
	case !g.started:
		g.drawIntro(dst, area, text)
	case !g.ready:
		dst.DrawTextColored(centerX(area, text.Loading), area.Y+area.H/2, text.Loading, core.ColorGray)
	}

	if ov := g.overlay.State(); ov.Visible {
		g.drawOverlay(dst, area, ov, cw, ch)
	}

	if g.started && g.paused {
		drawCard(dst, area, area.Y+area.H/2-2, pausedBg, []cardLine{
			{text.PausedTitle, core.ColorBrightCyan},
			{"", core.ColorDefault},
			{text.PausedResume, core.ColorCyan},
		})
	}
}

func (g *Game) cellSize() (int, int) {
	cw, ch := g.cfg.TUI.CellWidth, g.cfg.TUI.CellHeight
	if cw <= 0 {
		cw = 8
	}
	if ch <= 0 {
		ch = 16
	}
	return cw, ch
}

// paintScene composes background, ground strip, player and markers, in
// that order, at one pixel per cell.
func (g *Game) paintScene(canvas *image.RGBA, cw, ch int) {
	cols, rows := canvas.Bounds().Dx(), canvas.Bounds().Dy()

	if bg := g.scaledBackground(cols, rows); bg != nil {
		draw.Draw(canvas, canvas.Bounds(), bg, image.Point{}, draw.Src)
	}

	strip := g.groundStrip()
	sr := cellRect(strip.Rect, cw, ch).Intersect(canvas.Bounds())
	for y := sr.Min.Y; y < sr.Max.Y; y++ {
		for x := sr.Min.X; x < sr.Max.X; x++ {
			c := canvas.RGBAAt(x, y)
			b := core.RGB{R: c.R, G: c.G, B: c.B}.Blend(strip.Color, strip.Opacity)
			canvas.SetRGBA(x, y, toColor(b))
		}
	}

	if sprite := g.assets.Image(assets.KeyPlayer); sprite != nil {
		dr := cellRect(g.player.Box(g.cfg.Player.Size), cw, ch)
		draw.ApproxBiLinear.Scale(canvas, dr, sprite, sprite.Bounds(), draw.Over, nil)
	}

	if orb := g.assets.Image(assets.KeyMarker); orb != nil {
		for _, i := range g.visibleMarkers() {
			dr := cellRect(g.markerBox(i), cw, ch)
			draw.ApproxBiLinear.Scale(canvas, dr, orb, orb.Bounds(), draw.Over, nil)
		}
	}
}

func (g *Game) scaledBackground(cols, rows int) *image.RGBA {
	gen := g.assets.Generation()
	if c := g.cells; c.bg != nil && c.gen == gen && c.cols == cols && c.rows == rows {
		return c.bg
	}
	src := g.assets.Image(assets.KeyBackground)
	if src == nil {
		return nil
	}
	bg := image.NewRGBA(image.Rect(0, 0, cols, rows))
	draw.ApproxBiLinear.Scale(bg, bg.Bounds(), src, src.Bounds(), draw.Src, nil)
	g.cells = cellCache{gen: gen, cols: cols, rows: rows, bg: bg}
	return bg
}

// cellRect maps a surface-pixel box to the cells it covers, at least one
// cell in each direction.
func cellRect(r core.RectF, cw, ch int) image.Rectangle {
	x0 := int(math.Floor(r.X / float64(cw)))
	y0 := int(math.Floor(r.Y / float64(ch)))
	w := core.Max(1, int(math.Round(r.W/float64(cw))))
	h := core.Max(1, int(math.Round(r.H/float64(ch))))
	return image.Rect(x0, y0, x0+w, y0+h)
}

func toColor(c core.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func (g *Game) drawHUD(dst *core.Screen, area core.Rect, l Labels) {
	hint := truncate(l.Hint, area.W)
	hx := centerX(area, hint)
	dst.FillBg(core.NewRect(hx-1, area.Y, len([]rune(hint))+2, 1), hintBg)
	dst.DrawTextColored(hx, area.Y, hint, core.ColorBrightCyan)

	if !g.started {
		return
	}
	if area.H > 1 {
		dst.DrawTextColored(area.X+2, area.Y+1, l.HUD, core.ColorBrightWhite)
		if l.Phase != "" {
			dst.DrawTextColored(area.X+area.W-len([]rune(l.Phase))-2, area.Y+1, l.Phase, core.ColorGray)
		}
	}
}

func (g *Game) drawIntro(dst *core.Screen, area core.Rect, l Labels) {
	width := core.Min(area.W-4, 64)
	lines := []cardLine{}
	for _, s := range wrap(l.IntroTitle, width) {
		lines = append(lines, cardLine{s, core.ColorBlue})
	}
	lines = append(lines, cardLine{"", core.ColorDefault}, cardLine{l.IntroStart, core.ColorGray})
	drawCard(dst, area, area.Y+area.H*3/10-len(lines)/2, introBg, lines)
}

func (g *Game) drawOverlay(dst *core.Screen, area core.Rect, ov OverlayState, cw, ch int) {
	width := core.Min(area.W-4, panelMaxWidth/cw)
	if width < 8 {
		width = area.W
	}
	inner := width - 4

	// Lay out against the full message so the panel keeps its size while typing.
	full := wrap(ov.Message, inner)
	shown := wrap(ov.Revealed, inner)

	lines := []cardLine{{ov.Title, core.ColorBrightCyan}, {"", core.ColorDefault}}
	for i := range full {
		text := ""
		if i < len(shown) && len(shown) <= len(full) {
			text = shown[i]
		}
		lines = append(lines, cardLine{text, core.ColorBrightWhite})
	}
	if ov.Note != "" {
		lines = append(lines, cardLine{"", core.ColorDefault})
		for _, s := range wrap(ov.Note, inner) {
			lines = append(lines, cardLine{s, core.ColorWhite})
		}
	}
	if len(ov.Links) > 0 {
		lines = append(lines, cardLine{"", core.ColorDefault})
		for _, link := range ov.Links {
			lines = append(lines, cardLine{truncate(link.Label, inner), core.ColorBrightBlue})
			lines = append(lines, cardLine{truncate(link.URL, inner), core.ColorGray})
		}
	}

	top := area.Y + core.Max(2, panelTop/ch)
	drawPanel(dst, area, top, width, panelBg, lines)
}

type cardLine struct {
	text  string
	color core.Color
}

// drawCard draws a box sized to its lines, centered horizontally in area.
func drawCard(dst *core.Screen, area core.Rect, top int, bg core.RGB, lines []cardLine) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l.text)))
	}
	drawPanel(dst, area, top, core.Min(width+4, area.W), bg, lines)
}

func drawPanel(dst *core.Screen, area core.Rect, top, width int, bg core.RGB, lines []cardLine) {
	height := len(lines) + 2
	if top+height > area.Y+area.H {
		top = core.Max(area.Y, area.Y+area.H-height)
	}
	x := area.X + (area.W-width)/2
	box := core.NewRect(x, top, width, height)
	dst.DrawRect(box, ' ')
	dst.FillBg(box, bg)

	for i, l := range lines {
		text := truncate(l.text, width-2)
		tx := x + (width-len([]rune(text)))/2
		dst.DrawTextColored(tx, top+1+i, text, l.color)
	}
}

func centerX(area core.Rect, s string) int {
	return area.X + (area.W-len([]rune(s)))/2
}

// wrap breaks s into lines of at most width runes on word boundaries.
func wrap(s string, width int) []string {
	if width <= 0 || s == "" {
		return nil
	}
	var (
		lines []string
		cur   []rune
	)
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		for len(w) > width {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = nil
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(cur) == 0:
			cur = append(cur, w...)
		case len(cur)+1+len(w) <= width:
			cur = append(cur, ' ')
			cur = append(cur, w...)
		default:
			lines = append(lines, string(cur))
			cur = append([]rune(nil), w...)
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
