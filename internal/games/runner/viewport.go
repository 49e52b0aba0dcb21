package runner

import (
	"math"

	"github.com/vovakirdan/portfolio-runner/internal/config"
)

// Viewport is the drawing surface size in device-independent pixels.
type Viewport struct {
	Width  float64
	Height float64
	Mobile bool
}

// ComputeViewport sizes the surface for a host window.
//
// Desktop windows get a surface 97% of the window width, between 320 and
// 900 pixels, with a 16:9 height no lower than 400. Mobile windows (800
// pixels wide or less) drop the width ceiling and take the larger of 46%
// of the window height, the 16:9 height and 230. Results are whole pixels.
func ComputeViewport(windowW, windowH float64, cfg config.ViewportConfig) Viewport {
	v := Viewport{Mobile: windowW <= cfg.MobileBreakpoint}
	w := cfg.WidthFraction * windowW

	if v.Mobile {
		w = math.Max(w, cfg.MinWidth)
		v.Width = math.Floor(w)
		v.Height = math.Floor(math.Max(math.Max(cfg.MobileHeightFraction*windowH, w*cfg.AspectRatio), cfg.MobileMinHeight))
		return v
	}

	w = math.Min(math.Max(w, cfg.MinWidth), cfg.MaxWidth)
	v.Width = math.Floor(w)
	v.Height = math.Floor(math.Max(w*cfg.AspectRatio, cfg.MinHeight))
	return v
}

// Scale returns the factor from reference space to surface space.
func (v Viewport) Scale(referenceWidth float64) float64 {
	if referenceWidth <= 0 {
		return 1
	}
	return v.Width / referenceWidth
}
