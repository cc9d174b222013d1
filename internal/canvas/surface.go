// Package canvas is the drawing surface the walk is painted on.
//
// Drawing happens in world coordinates (origin at the center, y up). The
// Canvas implementation keeps a retained display list that frontends
// rasterize however they like: the terminal maps it onto cells, the window
// draws it with ebiten vector primitives.
package canvas

import (
	"errors"

	"github.com/vovakirdan/emerald-city/internal/core"
)

// ErrClosed is returned by every drawing call once the surface is closed.
var ErrClosed = errors.New("canvas: surface closed")

// Layer groups items so parts of the picture can be redrawn independently.
// Layers are painted in declaration order.
type Layer uint8

const (
	LayerCity Layer = iota
	LayerTrail
	LayerEffects
	LayerOverlay
	layerCount
)

var layerNames = [layerCount]string{"city", "trail", "effects", "overlay"}

func (l Layer) String() string {
	if l < layerCount {
		return layerNames[l]
	}
	return "unknown"
}

// Align positions text relative to its anchor point.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextSize is a coarse font size hint. Terminal frontends ignore it.
type TextSize uint8

const (
	TextSmall TextSize = iota
	TextNormal
	TextLarge
	TextTitle
)

// TextStyle controls how a label is placed.
type TextStyle struct {
	Align Align
	Size  TextSize
	Bold  bool
}

// Surface is what presentation code draws on.
// Any error means the surface is unusable and drawing should stop.
type Surface interface {
	FillRect(layer Layer, r core.Rect, c core.Color) error
	StrokeRect(layer Layer, r core.Rect, c core.Color, width float64) error
	Line(layer Layer, from, to core.Vec, c core.Color, width float64) error
	Dot(layer Layer, at core.Vec, radius float64, c core.Color) error
	Ring(layer Layer, center core.Vec, radius float64, c core.Color, width float64) error
	Text(layer Layer, at core.Vec, text string, c core.Color, style TextStyle) error
	// Clear drops every item on the layer.
	Clear(layer Layer) error
	// Present marks the end of a batch of drawing; renderers pick it up.
	Present() error
}
