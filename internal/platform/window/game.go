// Package window runs the walk in a desktop window using ebiten.
package window

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/emerald-city/internal/canvas"
	"github.com/vovakirdan/emerald-city/internal/session"
	"github.com/vovakirdan/emerald-city/internal/sim"
	"github.com/vovakirdan/emerald-city/internal/storage"
)

// Game is the ebiten.Game animating one walk.
type Game struct {
	sess    *session.Session
	store   *storage.Store
	logger  *log.Logger
	proj    projection
	width   int
	height  int
	delay   time.Duration
	last    time.Time
	scratch *ebiten.Image
	done    bool
	summary sim.Summary
}

// NewGame creates a window game for sess.
func NewGame(sess *session.Session, store *storage.Store, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	w, h := sess.Config.Window.Width, sess.Config.Window.Height
	return &Game{
		sess:   sess,
		store:  store,
		logger: logger,
		proj:   newProjection(w, h),
		width:  w,
		height: h,
		delay:  sess.Config.Pacing.FrameDelay,
	}
}

// Update advances the walk one redraw point whenever the frame delay has passed.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if !g.done {
			g.sess.Canvas.Close()
			g.sess.Walker.Abort(canvas.ErrClosed)
			g.finish()
		}
		return ebiten.Termination
	}

	if g.done {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			return ebiten.Termination
		}
		return nil
	}

	if g.last.IsZero() {
		g.sess.Walker.Setup()
	}
	now := time.Now()
	if now.Sub(g.last) < g.delay {
		return nil
	}
	g.last = now

	if !g.sess.Walker.StepFrame() {
		g.finish()
	}
	return nil
}

// finish closes out the walk once and records it.
func (g *Game) finish() {
	if g.done {
		return
	}
	g.summary = g.sess.Walker.Finish()
	g.done = true

	id, err := g.sess.Save(g.store, g.summary)
	if err != nil {
		g.logger.Warn("could not save run", "err", err)
		return
	}
	if id != "" {
		g.logger.Debug("run saved", "id", id)
	}
}

// Draw paints the display list over the background.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.sess.Config.Window.Background.RGBA())
	g.sess.Canvas.Each(func(it canvas.Item) {
		g.drawItem(screen, it)
	})
}

func (g *Game) drawItem(dst *ebiten.Image, it canvas.Item) {
	col := it.Color.RGBA()
	switch it.Kind {
	case canvas.KindFillRect:
		x, y, w, h := g.proj.rect(it.Rect)
		vector.DrawFilledRect(dst, x, y, w, h, col, false)
	case canvas.KindStrokeRect:
		x, y, w, h := g.proj.rect(it.Rect)
		vector.StrokeRect(dst, x, y, w, h, float32(it.Width), col, false)
	case canvas.KindLine:
		x0, y0 := g.proj.point(it.From)
		x1, y1 := g.proj.point(it.To)
		vector.StrokeLine(dst, x0, y0, x1, y1, float32(it.Width), col, true)
		if it.Width >= 2 {
			// Round caps so wide trail segments join cleanly
			r := float32(it.Width / 2)
			vector.DrawFilledCircle(dst, x0, y0, r, col, true)
			vector.DrawFilledCircle(dst, x1, y1, r, col, true)
		}
	case canvas.KindDot:
		x, y := g.proj.point(it.From)
		vector.DrawFilledCircle(dst, x, y, float32(it.Radius), col, true)
	case canvas.KindRing:
		x, y := g.proj.point(it.From)
		vector.StrokeCircle(dst, x, y, float32(it.Radius), float32(it.Width), col, true)
	case canvas.KindText:
		g.drawText(dst, it)
	}
}

// drawText prints a label with the debug font, scaled and tinted.
func (g *Game) drawText(dst *ebiten.Image, it canvas.Item) {
	text := printable(it.Text)
	if text == "" {
		return
	}
	w := min(len(text)*glyphW, g.width)
	if g.scratch == nil {
		g.scratch = ebiten.NewImage(g.width, glyphH)
	}
	g.scratch.Clear()
	ebitenutil.DebugPrintAt(g.scratch, text, 0, 0)

	scale := textScale(it.Style.Size)
	x, y := g.proj.textOrigin(it.From, text, it.Style)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(it.Color.RGBA())

	src := g.scratch.SubImage(image.Rect(0, 0, w, glyphH)).(*ebiten.Image)
	dst.DrawImage(src, op)
	if it.Style.Bold {
		op.GeoM.Translate(1, 0)
		dst.DrawImage(src, op)
	}
}

// Layout keeps the world at a fixed pixel size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Summary returns the final summary once the walk is over.
func (g *Game) Summary() (sim.Summary, bool) {
	return g.summary, g.done
}

// Run opens the window, animates sess and blocks until the window closes.
func Run(sess *session.Session, store *storage.Store, logger *log.Logger) (sim.Summary, error) {
	g := NewGame(sess, store, logger)

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(sess.Config.Window.Title)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil {
		return sim.Summary{}, fmt.Errorf("window: %w", err)
	}
	g.finish()
	return g.summary, nil
}

var _ ebiten.Game = (*Game)(nil)
