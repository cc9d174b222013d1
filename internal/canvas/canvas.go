package canvas

import (
	"sync"

	"github.com/vovakirdan/emerald-city/internal/core"
)

// Kind identifies the primitive an Item draws.
type Kind uint8

const (
	KindFillRect Kind = iota
	KindStrokeRect
	KindLine
	KindDot
	KindRing
	KindText
)

// Item is one retained drawing primitive.
//
// Field use depends on Kind: rects use Rect; lines use From and To; dots and
// rings use From as the center and Radius; text uses From as the anchor.
type Item struct {
	Kind   Kind
	Layer  Layer
	Color  core.Color
	Rect   core.Rect
	From   core.Vec
	To     core.Vec
	Radius float64
	Width  float64
	Text   string
	Style  TextStyle
}

// Canvas is a retained display list implementing Surface.
// One goroutine draws; any number of renderers may read concurrently.
type Canvas struct {
	mu      sync.RWMutex
	layers  [layerCount][]Item
	frames  uint64
	closed  bool
	onClose func()
}

// New returns an empty, open canvas.
func New() *Canvas {
	return &Canvas{}
}

// OnClose registers fn to run once when the canvas is closed.
func (c *Canvas) OnClose(fn func()) {
	c.mu.Lock()
	c.onClose = fn
	c.mu.Unlock()
}

func (c *Canvas) add(it Item) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if it.Layer >= layerCount {
		it.Layer = LayerOverlay
	}
	c.layers[it.Layer] = append(c.layers[it.Layer], it)
	return nil
}

func (c *Canvas) FillRect(layer Layer, r core.Rect, col core.Color) error {
	return c.add(Item{Kind: KindFillRect, Layer: layer, Rect: r, Color: col})
}

func (c *Canvas) StrokeRect(layer Layer, r core.Rect, col core.Color, width float64) error {
	return c.add(Item{Kind: KindStrokeRect, Layer: layer, Rect: r, Color: col, Width: width})
}

func (c *Canvas) Line(layer Layer, from, to core.Vec, col core.Color, width float64) error {
	return c.add(Item{Kind: KindLine, Layer: layer, From: from, To: to, Color: col, Width: width})
}

func (c *Canvas) Dot(layer Layer, at core.Vec, radius float64, col core.Color) error {
	return c.add(Item{Kind: KindDot, Layer: layer, From: at, Radius: radius, Color: col})
}

func (c *Canvas) Ring(layer Layer, center core.Vec, radius float64, col core.Color, width float64) error {
	return c.add(Item{Kind: KindRing, Layer: layer, From: center, Radius: radius, Color: col, Width: width})
}

func (c *Canvas) Text(layer Layer, at core.Vec, text string, col core.Color, style TextStyle) error {
	return c.add(Item{Kind: KindText, Layer: layer, From: at, Text: text, Color: col, Style: style})
}

func (c *Canvas) Clear(layer Layer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if layer < layerCount {
		c.layers[layer] = c.layers[layer][:0]
	}
	return nil
}

func (c *Canvas) Present() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.frames++
	return nil
}

// Close marks the surface as gone. Later drawing calls return ErrClosed;
// the items already drawn stay readable.
func (c *Canvas) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	fn := c.onClose
	c.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Closed reports whether Close was called.
func (c *Canvas) Closed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// Frames returns how many times Present has been called.
func (c *Canvas) Frames() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frames
}

// Items returns a copy of the display list in paint order.
func (c *Canvas) Items() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, l := range c.layers {
		n += len(l)
	}
	out := make([]Item, 0, n)
	for _, l := range c.layers {
		out = append(out, l...)
	}
	return out
}

// Each calls fn for every item in paint order while holding the read lock.
// fn must not draw on the canvas.
func (c *Canvas) Each(fn func(Item)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, l := range c.layers {
		for _, it := range l {
			fn(it)
		}
	}
}

// Len returns the number of items on a layer.
func (c *Canvas) Len(layer Layer) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if layer >= layerCount {
		return 0
	}
	return len(c.layers[layer])
}
