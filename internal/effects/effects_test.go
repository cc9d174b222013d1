package effects

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/emerald-city/internal/canvas"
	"github.com/vovakirdan/emerald-city/internal/config"
	"github.com/vovakirdan/emerald-city/internal/core"
	"github.com/vovakirdan/emerald-city/internal/sim"
)

func TestBurstStaysInRange(t *testing.T) {
	cfg := config.DefaultSceneConfig()
	origin := core.V(100, -50)

	tests := []struct {
		name  string
		burst config.BurstConfig
	}{
		{"normal", cfg.Effects.Normal},
		{"mega", cfg.Effects.Mega},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(1); seed <= 20; seed++ {
				marks := Burst(origin, tt.burst, cfg.Effects.Palette, sim.NewSource(seed))
				if len(marks) == 0 {
					t.Fatalf("seed %d: empty burst", seed)
				}
				limit := float64(tt.burst.Length.Max) + 1e-9
				for _, m := range marks {
					if origin.Dist(m.From) > limit {
						t.Fatalf("seed %d: mark starts %v away", seed, origin.Dist(m.From))
					}
					if m.Kind == MarkLine && origin.Dist(m.To) > limit {
						t.Fatalf("seed %d: line ends %v away", seed, origin.Dist(m.To))
					}
					if !inPalette(m.Color, cfg.Effects.Palette) {
						t.Fatalf("seed %d: color %v not in palette", seed, m.Color)
					}
				}
			}
		})
	}
}

func inPalette(c core.Color, palette []core.Color) bool {
	for _, p := range palette {
		if p == c {
			return true
		}
	}
	return false
}

func TestBurstSolidLine(t *testing.T) {
	// One particle, angle 0, length 20, pen never lifts
	b := config.BurstConfig{
		Particles: config.IntRange{Min: 1, Max: 1},
		Length:    config.IntRange{Min: 20, Max: 20},
	}
	marks := Burst(core.V(0, 0), b, []core.Color{core.ColorGold}, solidSource{})
	if len(marks) != 1 {
		t.Fatalf("got %d marks, expected one solid line", len(marks))
	}
	m := marks[0]
	if m.Kind != MarkLine || m.From != core.V(0, 0) {
		t.Errorf("mark = %+v", m)
	}
	if d := m.From.Dist(m.To); d < 20-1e-9 || d > 20+1e-9 {
		t.Errorf("line length = %v, expected 20", d)
	}
}

// solidSource never lifts the pen and always picks index 0.
type solidSource struct{}

func (solidSource) Float64() float64 { return 0.99 }
func (solidSource) Intn(int) int     { return 0 }

func TestHUDLine(t *testing.T) {
	if got := HUDLine(3, 12, 410); got != "Emeralds: 3/12 | Score: 410" {
		t.Errorf("HUDLine = %q", got)
	}
}

func TestVictoryLine(t *testing.T) {
	tests := []struct {
		sum  sim.Summary
		want string
	}{
		{sim.Summary{Score: 1200}, "Final Score: 1200"},
		{sim.Summary{Score: 2900, Perfect: true}, "Final Score: 2900 - PERFECT! ALL EMERALDS!"},
	}
	for _, tt := range tests {
		if got := VictoryLine(tt.sum); got != tt.want {
			t.Errorf("VictoryLine(%+v) = %q, expected %q", tt.sum, got, tt.want)
		}
	}
}

func newPainted(t *testing.T, seed int64) (*canvas.Canvas, *Painter, *sim.Scene) {
	t.Helper()
	cfg := config.DefaultSceneConfig()
	scene := sim.NewScene(cfg, sim.NewSource(seed))
	c := canvas.New()
	p := NewPainter(c, cfg, sim.NewSource(seed+1))
	if err := p.OnSetup(scene, sim.Agent{Pos: core.V(-500, -350)}); err != nil {
		t.Fatalf("OnSetup: %v", err)
	}
	return c, p, scene
}

func texts(c *canvas.Canvas, layer canvas.Layer) []string {
	var out []string
	c.Each(func(it canvas.Item) {
		if it.Kind == canvas.KindText && it.Layer == layer {
			out = append(out, it.Text)
		}
	})
	return out
}

func TestPainterSetup(t *testing.T) {
	c, _, scene := newPainted(t, 3)

	fills := 0
	rings := 0
	c.Each(func(it canvas.Item) {
		if it.Layer == canvas.LayerCity && it.Kind == canvas.KindFillRect && it.Color != core.ColorLamp {
			fills++
		}
		if it.Kind == canvas.KindStrokeRect {
			rings++
		}
	})
	if fills != len(scene.Buildings) {
		t.Errorf("drew %d building bodies, expected %d", fills, len(scene.Buildings))
	}
	if rings != 1 {
		t.Errorf("drew %d auras, expected one for the goal", rings)
	}

	city := strings.Join(texts(c, canvas.LayerCity), "\n")
	for _, want := range []string{"EMERALD CITY MAP", "★ WIZARD ★", "Collect all 12 emeralds"} {
		if !strings.Contains(city, want) {
			t.Errorf("city layer missing %q", want)
		}
	}

	hud := texts(c, canvas.LayerOverlay)
	if len(hud) != 1 || hud[0] != "Emeralds: 0/12 | Score: 0" {
		t.Errorf("overlay text = %q", hud)
	}
	if c.Frames() != 1 {
		t.Errorf("frames = %d, expected setup to present once", c.Frames())
	}
}

func TestPainterCaptureRemovesEmerald(t *testing.T) {
	c, p, scene := newPainted(t, 5)
	gemsBefore := c.Len(canvas.LayerOverlay)

	score := sim.ScoreState{Score: 100, Gathered: 1}
	if err := p.OnCapture(scene.Collectibles[0], score); err != nil {
		t.Fatal(err)
	}
	if err := p.OnFrame(3, score); err != nil {
		t.Fatal(err)
	}

	// Each emerald is a gem dot and a sparkle dot
	if got := c.Len(canvas.LayerOverlay); got != gemsBefore-2 {
		t.Errorf("overlay items = %d, expected %d", got, gemsBefore-2)
	}
	effects := strings.Join(texts(c, canvas.LayerEffects), "\n")
	if !strings.Contains(effects, "Ding! +100") {
		t.Errorf("effects layer missing ding label: %q", effects)
	}
	if hud := texts(c, canvas.LayerOverlay); hud[0] != "Emeralds: 1/12 | Score: 100" {
		t.Errorf("hud = %q", hud[0])
	}
}

func TestPainterVictory(t *testing.T) {
	c, p, scene := newPainted(t, 7)
	goal := scene.Goal().Center()

	if err := p.OnVictory(goal, sim.Summary{Score: 2100, Gathered: 12, Total: 12, GoalFound: true, Perfect: true}); err != nil {
		t.Fatal(err)
	}

	rings := 0
	c.Each(func(it canvas.Item) {
		if it.Kind == canvas.KindRing {
			rings++
			if it.From != goal {
				t.Errorf("ring centered at %v, expected %v", it.From, goal)
			}
		}
	})
	if rings != 4 {
		t.Errorf("drew %d rings, expected 4 (even bursts of 8)", rings)
	}
	effects := strings.Join(texts(c, canvas.LayerEffects), "\n")
	for _, want := range []string{"YOU FOUND THE WIZARD!", "Final Score: 2100 - PERFECT! ALL EMERALDS!"} {
		if !strings.Contains(effects, want) {
			t.Errorf("effects layer missing %q", want)
		}
	}
}

func TestPainterHintWhenGoalMissed(t *testing.T) {
	c, p, _ := newPainted(t, 9)
	if err := p.OnFinish(sim.Summary{Score: 340, Gathered: 2, Total: 12}); err != nil {
		t.Fatal(err)
	}
	effects := strings.Join(texts(c, canvas.LayerEffects), "\n")
	for _, want := range []string{"The Wizard is hiding", "Final Score: 340 | Emeralds: 2/12"} {
		if !strings.Contains(effects, want) {
			t.Errorf("effects layer missing %q", want)
		}
	}
}

func TestPainterReportsClosedSurface(t *testing.T) {
	c, p, _ := newPainted(t, 11)
	c.Close()

	if err := p.OnMove(core.V(0, 0), core.V(10, 0), core.ColorGold); !errors.Is(err, canvas.ErrClosed) {
		t.Errorf("OnMove err = %v, expected ErrClosed", err)
	}
	// The error sticks
	if err := p.OnFrame(0, sim.ScoreState{}); !errors.Is(err, canvas.ErrClosed) {
		t.Errorf("OnFrame err = %v, expected ErrClosed", err)
	}
}

// closingObserver closes the canvas after a few frames, like a user closing the window.
type closingObserver struct {
	sim.NopObserver
	c      *canvas.Canvas
	frames int
	after  int
}

func (o *closingObserver) OnFrame(int, sim.ScoreState) error {
	o.frames++
	if o.frames == o.after {
		o.c.Close()
	}
	return nil
}

func TestWalkAbortsWhenCanvasCloses(t *testing.T) {
	cfg := config.DefaultSceneConfig()
	cfg.Pacing.FrameDelay = 0
	scene := sim.NewScene(cfg, sim.NewSource(13))
	c := canvas.New()
	painter := NewPainter(c, cfg, sim.NewSource(14))
	closer := &closingObserver{c: c, after: 3}

	w := sim.NewWalker(scene, cfg, sim.NewSource(15), sim.NewSource(16), sim.Observers{closer, painter})
	sum := w.Run(context.Background())

	if !sum.Aborted {
		t.Fatal("expected the walk to abort once the canvas closed")
	}
	if sum.StepsTaken >= cfg.Walk.Steps {
		t.Errorf("steps taken = %d, expected fewer than %d", sum.StepsTaken, cfg.Walk.Steps)
	}
	if !errors.Is(w.AbortCause(), canvas.ErrClosed) {
		t.Errorf("abort cause = %v", w.AbortCause())
	}
}
