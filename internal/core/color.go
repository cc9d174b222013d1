package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color represents a named color from the city palette.
// The same value is used by the terminal (via Hex) and the window (via RGBA).
type Color uint8

// Palette colors for the city scene.
const (
	ColorDefault Color = iota
	ColorBackground
	ColorEmerald
	ColorLightGreen
	ColorSeaGreen
	ColorTurquoise
	ColorBlue
	ColorPurple
	ColorWizardGreen
	ColorBrick
	ColorGold
	ColorOrange
	ColorYellow
	ColorLamp
	ColorPaleYellow
	ColorWhite
	ColorLavender
	ColorOrchid
	ColorGem
	ColorMint
	ColorMagenta
	ColorRed
	ColorGray
)

type colorInfo struct {
	name string
	hex  string
}

var colorTable = map[Color]colorInfo{
	ColorDefault:     {"default", "#dddddd"},
	ColorBackground:  {"background", "#0d3321"},
	ColorEmerald:     {"emerald", "#27ae60"},
	ColorLightGreen:  {"light-green", "#2ecc71"},
	ColorSeaGreen:    {"sea-green", "#16a085"},
	ColorTurquoise:   {"turquoise", "#1abc9c"},
	ColorBlue:        {"blue", "#3498db"},
	ColorPurple:      {"purple", "#9b59b6"},
	ColorWizardGreen: {"wizard-green", "#00ff00"},
	ColorBrick:       {"brick", "#f4d03f"},
	ColorGold:        {"gold", "#ffd700"},
	ColorOrange:      {"orange", "#ffa500"},
	ColorYellow:      {"yellow", "#ffff00"},
	ColorLamp:        {"lamp", "#ffeb3b"},
	ColorPaleYellow:  {"pale-yellow", "#fff59d"},
	ColorWhite:       {"white", "#ffffff"},
	ColorLavender:    {"lavender", "#e1bee7"},
	ColorOrchid:      {"orchid", "#ce93d8"},
	ColorGem:         {"gem", "#50c878"},
	ColorMint:        {"mint", "#00ff88"},
	ColorMagenta:     {"magenta", "#ff69ff"},
	ColorRed:         {"red", "#ff3333"},
	ColorGray:        {"gray", "#8a8a8a"},
}

// paletteRGBA holds every palette color decoded once, since the window
// asks for it on each draw call.
var paletteRGBA = func() map[Color]color.RGBA {
	m := make(map[Color]color.RGBA, len(colorTable))
	for c, info := range colorTable {
		m[c] = hexRGBA(info.hex)
	}
	return m
}()

// hexRGBA decodes "#rrggbb" into an opaque color.
func hexRGBA(hex string) color.RGBA {
	v, err := strconv.ParseUint(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		panic(fmt.Sprintf("core: bad palette hex %q", hex))
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// String returns the palette name of the color.
func (c Color) String() string {
	if info, ok := colorTable[c]; ok {
		return info.name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// Hex returns the color as a "#rrggbb" string (lipgloss accepts this form).
func (c Color) Hex() string {
	if info, ok := colorTable[c]; ok {
		return info.hex
	}
	return colorTable[ColorDefault].hex
}

// RGBA returns the color as an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	if rgba, ok := paletteRGBA[c]; ok {
		return rgba
	}
	return paletteRGBA[ColorDefault]
}

// ParseColor resolves a palette name (case-insensitive) to a Color.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, info := range colorTable {
		if info.name == name {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("unknown color %q", name)
}

// MarshalYAML encodes the color by name.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML decodes a color from its palette name.
func (c *Color) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseColor(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
