package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/emerald-city/internal/canvas"
	"github.com/vovakirdan/emerald-city/internal/core"
)

// Glyphs used to rasterize the display list.
const (
	glyphFill    = '█'
	glyphWindow  = '▪'
	glyphTrail   = '▓'
	glyphSparkle = '·'
	glyphAgent   = '●'
	glyphGem     = '◆'
	glyphDot     = '✦'
	glyphRing    = '○'
	glyphHLine   = '─'
	glyphVLine   = '│'
	glyphCorner  = '┼'
)

// Width and radius thresholds in world units.
const (
	trailMinWidth  = 10
	agentMinRadius = 15
	gemMinRadius   = 5
)

// colorStyles maps core.Color to lipgloss styles on the city background.
var colorStyles = func() map[core.Color]lipgloss.Style {
	bg := lipgloss.Color(core.ColorBackground.Hex())
	m := make(map[core.Color]lipgloss.Style)
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		m[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Background(bg)
	}
	return m
}()

// Viewport maps world coordinates (origin at the center, y up) onto a grid
// of terminal cells (origin top-left, y down).
type Viewport struct {
	Cols, Rows int
}

// Cell returns the cell containing world point p. The result may lie
// outside the grid.
func (v Viewport) Cell(p core.Vec) (x, y int) {
	fx := (p.X + core.WorldWidth/2) / core.WorldWidth * float64(v.Cols)
	fy := (core.WorldHeight/2 - p.Y) / core.WorldHeight * float64(v.Rows)
	return int(math.Floor(fx)), int(math.Floor(fy))
}

// cellsPerUnit returns the horizontal scale, used to size rings.
func (v Viewport) cellsPerUnit() (sx, sy float64) {
	return float64(v.Cols) / core.WorldWidth, float64(v.Rows) / core.WorldHeight
}

// Rasterize paints the canvas display list onto dst, scaled to fit.
func Rasterize(dst *core.Screen, c *canvas.Canvas) {
	dst.Fill(' ', core.ColorBackground)
	vp := Viewport{Cols: dst.Width(), Rows: dst.Height()}
	c.Each(func(it canvas.Item) {
		drawItem(dst, vp, it)
	})
}

func drawItem(dst *core.Screen, vp Viewport, it canvas.Item) {
	switch it.Kind {
	case canvas.KindFillRect:
		fillRect(dst, vp, it.Rect, it.Color)
	case canvas.KindStrokeRect:
		strokeRect(dst, vp, it.Rect, it.Color)
	case canvas.KindLine:
		r := glyphSparkle
		if it.Width >= trailMinWidth {
			r = glyphTrail
		}
		x0, y0 := vp.Cell(it.From)
		x1, y1 := vp.Cell(it.To)
		line(dst, x0, y0, x1, y1, r, it.Color)
	case canvas.KindDot:
		r := glyphDot
		switch {
		case it.Radius >= agentMinRadius:
			r = glyphAgent
		case it.Radius >= gemMinRadius:
			r = glyphGem
		}
		x, y := vp.Cell(it.From)
		dst.SetCell(x, y, r, it.Color)
	case canvas.KindRing:
		ring(dst, vp, it.From, it.Radius, it.Color)
	case canvas.KindText:
		x, y := vp.Cell(it.From)
		if it.Style.Align == canvas.AlignCenter {
			dst.DrawTextCentered(x, y, it.Text, it.Color)
		} else {
			dst.DrawText(x, y, it.Text, it.Color)
		}
	}
}

func fillRect(dst *core.Screen, vp Viewport, r core.Rect, col core.Color) {
	x0, y0 := vp.Cell(core.V(r.X, r.Top()))
	x1, y1 := vp.Cell(core.V(r.Right(), r.Y))
	if x0 == x1 && y0 == y1 {
		// Smaller than a cell: windows and the like
		dst.SetCell(x0, y0, glyphWindow, col)
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetCell(x, y, glyphFill, col)
		}
	}
}

func strokeRect(dst *core.Screen, vp Viewport, r core.Rect, col core.Color) {
	x0, y0 := vp.Cell(core.V(r.X, r.Top()))
	x1, y1 := vp.Cell(core.V(r.Right(), r.Y))
	dst.DrawHLine(x0, y0, x1-x0+1, glyphHLine, col)
	dst.DrawHLine(x0, y1, x1-x0+1, glyphHLine, col)
	dst.DrawVLine(x0, y0, y1-y0+1, glyphVLine, col)
	dst.DrawVLine(x1, y0, y1-y0+1, glyphVLine, col)
	for _, p := range [][2]int{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		dst.SetCell(p[0], p[1], glyphCorner, col)
	}
}

// line draws a Bresenham line between two cells.
func line(dst *core.Screen, x0, y0, x1, y1 int, r rune, col core.Color) {
	dx := core.Abs(x1 - x0)
	dy := -core.Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		dst.SetCell(x0, y0, r, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func ring(dst *core.Screen, vp Viewport, center core.Vec, radius float64, col core.Color) {
	sx, _ := vp.cellsPerUnit()
	// Enough samples to close the circle at this scale
	n := max(16, int(2*math.Pi*radius*sx*2))
	for i := 0; i < n; i++ {
		p := center.Forward(360*float64(i)/float64(n), radius)
		x, y := vp.Cell(p)
		dst.SetCell(x, y, glyphRing, col)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
