package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/emerald-city/internal/canvas"
	"github.com/vovakirdan/emerald-city/internal/config"
	"github.com/vovakirdan/emerald-city/internal/core"
	"github.com/vovakirdan/emerald-city/internal/session"
	"github.com/vovakirdan/emerald-city/internal/storage"
)

func TestViewportCell(t *testing.T) {
	vp := Viewport{Cols: 120, Rows: 45}

	tests := []struct {
		name   string
		p      core.Vec
		wx, wy int
	}{
		{"top-left corner", core.V(-600, 450), 0, 0},
		{"origin", core.V(0, 0), 60, 22},
		{"bottom-right inside", core.V(599, -449), 119, 44},
		{"left of the world", core.V(-700, 0), -10, 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := vp.Cell(tt.p)
			if x != tt.wx || y != tt.wy {
				t.Errorf("Cell(%v) = (%d,%d), want (%d,%d)", tt.p, x, y, tt.wx, tt.wy)
			}
		})
	}
}

func TestRasterizeGlyphs(t *testing.T) {
	c := canvas.New()
	//nolint:errcheck // fresh canvas
	c.Dot(canvas.LayerOverlay, core.V(0, 0), 15, core.ColorBrick)
	//nolint:errcheck // fresh canvas
	c.Dot(canvas.LayerOverlay, core.V(-300, 0), 9, core.ColorEmerald)
	//nolint:errcheck // fresh canvas
	c.Line(canvas.LayerTrail, core.V(-600, 200), core.V(590, 200), core.ColorYellow, 20)

	screen := core.NewScreen(120, 45)
	Rasterize(screen, c)

	if got := screen.GetCell(60, 22); got.Rune != glyphAgent || got.Color != core.ColorBrick {
		t.Errorf("agent cell = %q/%v", got.Rune, got.Color)
	}
	if got := screen.GetCell(30, 22); got.Rune != glyphGem {
		t.Errorf("emerald cell = %q, want %q", got.Rune, glyphGem)
	}

	_, row := Viewport{Cols: 120, Rows: 45}.Cell(core.V(0, 200))
	trail := strings.Count(screen.Row(row), string(glyphTrail))
	if trail < 100 {
		t.Errorf("trail covers %d cells, want most of the row", trail)
	}
}

func TestRasterizeLaterLayersWin(t *testing.T) {
	c := canvas.New()
	//nolint:errcheck // fresh canvas
	c.Dot(canvas.LayerOverlay, core.V(0, 0), 15, core.ColorBrick)
	//nolint:errcheck // fresh canvas
	c.FillRect(canvas.LayerCity, core.NewRect(-100, -100, 200, 200), core.ColorPurple)

	screen := core.NewScreen(120, 45)
	Rasterize(screen, c)

	if got := screen.GetCell(60, 22); got.Rune != glyphAgent {
		t.Errorf("overlay should paint over the city, got %q", got.Rune)
	}
	if got := screen.GetCell(58, 22); got.Rune != glyphFill || got.Color != core.ColorPurple {
		t.Errorf("building cell = %q/%v", got.Rune, got.Color)
	}
}

func TestMapKey(t *testing.T) {
	km := DefaultWalkKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want Action
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, ActionQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, ActionPause},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")}, ActionFaster},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-")}, ActionSlower},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, ActionScreenshot},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, ActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKey(tt.msg); got != tt.want {
			t.Errorf("MapKey(%s) = %d, want %d", tt.msg, got, tt.want)
		}
	}
}

func newTestModel(steps int) *Model {
	cfg := config.DefaultSceneConfig()
	cfg.Walk.Steps = steps
	cfg.Pacing.FrameDelay = 0

	sess := session.New(session.Options{Seed: 42, Config: cfg, Frontend: session.FrontendTerminal})
	return NewModel(sess, nil, nil, core.RuntimeConfig{ScreenW: 100, ScreenH: 40})
}

func TestModelRunsToCompletion(t *testing.T) {
	m := newTestModel(30)
	if m.Init() == nil {
		t.Fatal("Init should schedule the first tick")
	}

	for i := 0; i < 100; i++ {
		if _, ok := m.Summary(); ok {
			break
		}
		m.Update(TickMsg{})
	}

	sum, ok := m.Summary()
	if !ok {
		t.Fatal("walk never finished")
	}
	if sum.StepsTaken != 30 || sum.Aborted {
		t.Errorf("summary = %+v, want 30 steps and no abort", sum)
	}
	if !strings.Contains(m.View(), "Quest complete!") {
		t.Error("finished view should announce completion")
	}

	// Any key exits once the map is finished.
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd == nil {
		t.Error("expected quit command after completion")
	}
}

func TestModelQuitAbortsWalk(t *testing.T) {
	m := newTestModel(180)
	m.Init()
	m.Update(TickMsg{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !m.sess.Canvas.Closed() {
		t.Error("quit should close the canvas")
	}

	sum, ok := m.Summary()
	if !ok {
		t.Fatal("quit should finish the walk")
	}
	if !sum.Aborted || sum.StepsTaken >= 180 {
		t.Errorf("summary = %+v, want an aborted walk", sum)
	}
}

func TestModelPauseHoldsWalk(t *testing.T) {
	m := newTestModel(30)
	m.Init()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})

	before := m.sess.Walker.StepsTaken()
	m.Update(TickMsg{})
	if got := m.sess.Walker.StepsTaken(); got != before {
		t.Errorf("paused walk advanced from %d to %d", before, got)
	}
}

func TestModelCloseRecordsAbortedRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := newTestModel(180)
	m.store = store
	m.Init()
	m.Update(TickMsg{})

	m.Close()
	m.Close()

	sum, ok := m.Summary()
	if !ok || !sum.Aborted {
		t.Fatalf("summary = %+v (done=%v), want an aborted walk", sum, ok)
	}
	if !m.sess.Canvas.Closed() {
		t.Error("Close should close the canvas")
	}
	if n, err := store.RunCount(); err != nil || n != 1 {
		t.Errorf("RunCount() = %d, %v; want exactly one saved run", n, err)
	}
	runs, err := store.RecentRuns(1)
	if err != nil || len(runs) != 1 || !runs[0].Aborted {
		t.Errorf("RecentRuns() = %+v, %v; want one aborted run", runs, err)
	}
}

func TestModelCloseAfterCompletionKeepsSummary(t *testing.T) {
	m := newTestModel(10)
	m.Init()
	for i := 0; i < 50; i++ {
		if _, ok := m.Summary(); ok {
			break
		}
		m.Update(TickMsg{})
	}

	m.Close()
	if sum, _ := m.Summary(); sum.Aborted || sum.StepsTaken != 10 {
		t.Errorf("summary = %+v, want the completed walk untouched", sum)
	}
}
