package gui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Font sizes at a 900px wide surface; they scale with the surface.
const (
	bodyFontSize  = 16.0
	titleFontSize = 22.0
	minFontSize   = 10.0
)

// fonts caches faces per size.
type fonts struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource

	size  float64
	body  *text.GoTextFace
	title *text.GoTextFace
}

func newFonts() (*fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}
	return &fonts{regular: regular, bold: bold}, nil
}

// faces returns body and title faces for a surface of the given width.
func (f *fonts) faces(surfaceW float64) (body, title *text.GoTextFace) {
	scale := surfaceW / 900
	size := bodyFontSize * scale
	if size < minFontSize {
		size = minFontSize
	}
	if f.body == nil || f.size != size {
		f.size = size
		f.body = &text.GoTextFace{Source: f.regular, Size: size}
		f.title = &text.GoTextFace{Source: f.bold, Size: size * titleFontSize / bodyFontSize}
	}
	return f.body, f.title
}

// wrapText breaks s into lines no wider than maxW when drawn with face.
// A single word wider than maxW gets a line of its own.
func wrapText(s string, face text.Face, maxW float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			next := line + " " + w
			if text.Advance(next, face) > maxW {
				lines = append(lines, line)
				line = w
				continue
			}
			line = next
		}
		lines = append(lines, line)
	}
	return lines
}

// revealLines lays out the full text and shows only the first n runes of
// it, so typed-out text does not reflow as it grows.
func revealLines(lines []string, n int) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		r := []rune(l)
		if n <= 0 {
			break
		}
		if n < len(r) {
			out = append(out, string(r[:n]))
			break
		}
		out = append(out, l)
		n -= len(r) + 1 // the space or newline the wrap consumed
	}
	return out
}
