package window

import (
	"strings"

	"github.com/vovakirdan/emerald-city/internal/canvas"
	"github.com/vovakirdan/emerald-city/internal/core"
)

// Debug font metrics in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// projection maps world coordinates (origin at the center, y up) onto
// window pixels (origin top-left, y down).
type projection struct {
	w, h float64
}

func newProjection(width, height int) projection {
	return projection{w: float64(width), h: float64(height)}
}

// point returns the pixel for world point p.
func (pr projection) point(p core.Vec) (float32, float32) {
	return float32(p.X + pr.w/2), float32(pr.h/2 - p.Y)
}

// rect returns the top-left pixel and size of a world rectangle.
func (pr projection) rect(r core.Rect) (x, y, w, h float32) {
	x, y = pr.point(core.V(r.X, r.Top()))
	return x, y, float32(r.W), float32(r.H)
}

// textScale returns the magnification for a size hint.
func textScale(size canvas.TextSize) float64 {
	switch size {
	case canvas.TextSmall:
		return 1
	case canvas.TextLarge:
		return 1.5
	case canvas.TextTitle:
		return 2
	}
	return 1.25
}

// textOrigin returns where to place the top-left of a label so its
// baseline sits on the anchor.
func (pr projection) textOrigin(at core.Vec, text string, style canvas.TextStyle) (float64, float64) {
	x, y := pr.point(at)
	scale := textScale(style.Size)
	px := float64(x)
	if style.Align == canvas.AlignCenter {
		px -= float64(len(text)*glyphW) * scale / 2
	}
	return px, float64(y) - glyphH*scale
}

// printable replaces runes the debug font cannot draw.
func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 0x7e {
			return '*'
		}
		return r
	}, s)
}
