package effects

import (
	"fmt"

	"github.com/vovakirdan/emerald-city/internal/canvas"
	"github.com/vovakirdan/emerald-city/internal/config"
	"github.com/vovakirdan/emerald-city/internal/core"
	"github.com/vovakirdan/emerald-city/internal/sim"
)

// World positions of the fixed labels.
var (
	titlePos    = core.V(0, 420)
	subtitlePos = core.V(0, 390)
	goalHintPos = core.V(0, 368)
	footerPos   = core.V(0, -440)
	hudPos      = core.V(-580, 420)
	bannerPos   = core.V(0, -380)
	finalPos    = core.V(0, -415)
	bonusPos    = core.V(0, 0)
	dingOffset  = core.V(0, 20)
)

const (
	labelOffset  = 10.0
	auraPad      = 10.0
	auraWidth    = 3.0
	trailWidth   = 20.0
	agentRadius  = 15.0
	emeraldSize  = 9.0
	sparkleShift = 5.0
)

// pen records the first drawing error and skips everything after it.
type pen struct {
	s   canvas.Surface
	err error
}

func (p *pen) fillRect(l canvas.Layer, r core.Rect, c core.Color) {
	if p.err == nil {
		p.err = p.s.FillRect(l, r, c)
	}
}

func (p *pen) strokeRect(l canvas.Layer, r core.Rect, c core.Color, w float64) {
	if p.err == nil {
		p.err = p.s.StrokeRect(l, r, c, w)
	}
}

func (p *pen) line(l canvas.Layer, from, to core.Vec, c core.Color, w float64) {
	if p.err == nil {
		p.err = p.s.Line(l, from, to, c, w)
	}
}

func (p *pen) dot(l canvas.Layer, at core.Vec, r float64, c core.Color) {
	if p.err == nil {
		p.err = p.s.Dot(l, at, r, c)
	}
}

func (p *pen) ring(l canvas.Layer, center core.Vec, r float64, c core.Color, w float64) {
	if p.err == nil {
		p.err = p.s.Ring(l, center, r, c, w)
	}
}

func (p *pen) text(l canvas.Layer, at core.Vec, s string, c core.Color, st canvas.TextStyle) {
	if p.err == nil {
		p.err = p.s.Text(l, at, s, c, st)
	}
}

func (p *pen) clear(l canvas.Layer) {
	if p.err == nil {
		p.err = p.s.Clear(l)
	}
}

func (p *pen) present() {
	if p.err == nil {
		p.err = p.s.Present()
	}
}

// Painter draws the walk on a Surface. It implements sim.Observer and returns
// the surface's error unchanged, which the walker treats as "window closed".
type Painter struct {
	p     pen
	cfg   config.SceneConfig
	fx    sim.Source
	agent core.Vec
	score sim.ScoreState
	gems  []sim.Collectible
	total int
}

var _ sim.Observer = (*Painter)(nil)

// NewPainter returns a painter drawing on s. Window lighting and glitter draw
// from fx, never from the physics source.
func NewPainter(s canvas.Surface, cfg config.SceneConfig, fx sim.Source) *Painter {
	return &Painter{
		p:   pen{s: s},
		cfg: cfg,
		fx:  fx,
	}
}

// Err returns the first drawing error, if any.
func (pt *Painter) Err() error {
	return pt.p.err
}

func (pt *Painter) OnSetup(scene *sim.Scene, agent sim.Agent) error {
	pt.agent = agent.Pos
	pt.total = len(scene.Collectibles)
	pt.gems = append(pt.gems[:0], scene.Collectibles...)

	pt.drawInstructions()
	for _, b := range scene.Buildings {
		pt.drawBuilding(b)
	}
	pt.drawOverlay()
	pt.p.present()
	return pt.Err()
}

func (pt *Painter) drawInstructions() {
	bold := canvas.TextStyle{Align: canvas.AlignCenter, Size: canvas.TextNormal, Bold: true}
	pt.p.text(canvas.LayerCity, titlePos, "EMERALD CITY MAP", core.ColorWizardGreen,
		canvas.TextStyle{Align: canvas.AlignCenter, Size: canvas.TextTitle, Bold: true})
	pt.p.text(canvas.LayerCity, subtitlePos, "Follow the yellow brick road to find the Wizard!", core.ColorYellow, bold)
	pt.p.text(canvas.LayerCity, goalHintPos,
		fmt.Sprintf("Collect all %d emeralds for a perfect score!", pt.cfg.Collectibles.Count), core.ColorMint, bold)
	pt.p.text(canvas.LayerCity, footerPos, "Watch for glitter explosions at corners!", core.ColorMagenta, bold)
}

func (pt *Painter) drawBuilding(b sim.Building) {
	r := b.Rect
	pt.p.fillRect(canvas.LayerCity, r, b.Color)

	if !b.IsGoal {
		pt.drawWindows(r)
		return
	}

	// The Wizard's building gets a lopsided square aura and a label.
	side := r.W + 2*auraPad
	pt.p.strokeRect(canvas.LayerCity, core.NewRect(r.X-auraPad, r.Y-auraPad, side, side), core.ColorWizardGreen, auraWidth)
	pt.p.text(canvas.LayerCity, core.V(r.X+r.W/2, r.Top()+labelOffset), "★ WIZARD ★", core.ColorYellow,
		canvas.TextStyle{Align: canvas.AlignCenter, Size: canvas.TextLarge, Bold: true})
}

func (pt *Painter) drawWindows(r core.Rect) {
	w, h := int(r.W), int(r.H)
	size := min(w, h) / 8
	if size <= 0 {
		return
	}
	rows := max(2, h/(size*3))
	cols := max(2, w/(size*3))

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if pt.fx.Float64() >= pt.cfg.City.WindowChance {
				continue
			}
			wx := r.X + float64(col+1)*(r.W/float64(cols+1)) - float64(size)/2
			wy := r.Y + float64(row+1)*(r.H/float64(rows+1)) - float64(size)/2
			pt.p.fillRect(canvas.LayerCity, core.NewRect(wx, wy, float64(size), float64(size)), core.ColorLamp)
		}
	}
}

// drawOverlay redraws the parts that change between frames: the emeralds
// still in play, the agent marker and the HUD.
func (pt *Painter) drawOverlay() {
	pt.p.clear(canvas.LayerOverlay)
	for _, g := range pt.gems {
		pt.p.dot(canvas.LayerOverlay, g.Pos, emeraldSize, core.ColorGem)
		pt.p.dot(canvas.LayerOverlay, g.Pos.Add(core.V(0, sparkleShift)), dotRadius, core.ColorWhite)
	}
	pt.p.dot(canvas.LayerOverlay, pt.agent, agentRadius, core.ColorBrick)
	pt.p.text(canvas.LayerOverlay, hudPos, HUDLine(pt.score.Gathered, pt.total, pt.score.Score), core.ColorWizardGreen,
		canvas.TextStyle{Align: canvas.AlignLeft, Size: canvas.TextNormal, Bold: true})
}

// HUDLine formats the score line shown in the corner of the map.
func HUDLine(gathered, total, score int) string {
	return fmt.Sprintf("Emeralds: %d/%d | Score: %d", gathered, total, score)
}

func (pt *Painter) burst(at core.Vec, b config.BurstConfig) {
	for _, m := range Burst(at, b, pt.cfg.Effects.Palette, pt.fx) {
		switch m.Kind {
		case MarkLine:
			pt.p.line(canvas.LayerEffects, m.From, m.To, m.Color, lineWidth)
		case MarkDot:
			pt.p.dot(canvas.LayerEffects, m.From, dotRadius, m.Color)
		}
	}
}

func (pt *Painter) OnMove(from, to core.Vec, trail core.Color) error {
	pt.agent = to
	pt.p.line(canvas.LayerTrail, from, to, trail, trailWidth)
	return pt.Err()
}

func (pt *Painter) OnTurn(at core.Vec, score sim.ScoreState) error {
	pt.score = score
	pt.burst(at, pt.cfg.Effects.Normal)
	return pt.Err()
}

func (pt *Painter) OnBounce(at core.Vec, score sim.ScoreState) error {
	pt.score = score
	pt.burst(at, pt.cfg.Effects.Mega)
	return pt.Err()
}

func (pt *Painter) OnCapture(c sim.Collectible, score sim.ScoreState) error {
	pt.score = score
	for i, g := range pt.gems {
		if g.ID == c.ID {
			pt.gems = append(pt.gems[:i], pt.gems[i+1:]...)
			break
		}
	}
	pt.burst(c.Pos, pt.cfg.Effects.Normal)
	pt.p.text(canvas.LayerEffects, pt.agent.Add(dingOffset), fmt.Sprintf("♪ Ding! +%d", pt.cfg.Collectibles.Points), core.ColorGem,
		canvas.TextStyle{Align: canvas.AlignCenter, Size: canvas.TextSmall, Bold: true})
	return pt.Err()
}

func (pt *Painter) OnAllCollected(score sim.ScoreState) error {
	pt.score = score
	pt.p.text(canvas.LayerEffects, bonusPos, fmt.Sprintf("★ BONUS! +%d ★", pt.cfg.Collectibles.AllCollectedBonus), core.ColorGold,
		canvas.TextStyle{Align: canvas.AlignCenter, Size: canvas.TextLarge, Bold: true})
	return pt.Err()
}

func (pt *Painter) OnVictory(goal core.Vec, sum sim.Summary) error {
	pt.score.Score = sum.Score
	pt.score.Gathered = sum.Gathered
	pt.score.GoalFound = true

	fx := pt.cfg.Effects
	for i := 0; i < fx.VictoryBursts; i++ {
		pt.burst(goal, fx.Mega)
		if i%2 == 0 {
			pt.p.ring(canvas.LayerEffects, goal, fx.RingBase+float64(i)*fx.RingStep, core.ColorGold, auraWidth)
		}
	}

	pt.p.text(canvas.LayerEffects, bannerPos, "YOU FOUND THE WIZARD!", core.ColorWizardGreen,
		canvas.TextStyle{Align: canvas.AlignCenter, Size: canvas.TextTitle, Bold: true})
	pt.p.text(canvas.LayerEffects, finalPos, VictoryLine(sum), core.ColorYellow,
		canvas.TextStyle{Align: canvas.AlignCenter, Size: canvas.TextLarge, Bold: true})
	pt.drawOverlay()
	pt.p.present()
	return pt.Err()
}

// VictoryLine is the final score message shown when the Wizard is found.
func VictoryLine(sum sim.Summary) string {
	if sum.Perfect {
		return fmt.Sprintf("Final Score: %d - PERFECT! ALL EMERALDS!", sum.Score)
	}
	return fmt.Sprintf("Final Score: %d", sum.Score)
}

func (pt *Painter) OnFrame(_ int, score sim.ScoreState) error {
	pt.score = score
	pt.drawOverlay()
	pt.p.present()
	return pt.Err()
}

func (pt *Painter) OnFinish(sum sim.Summary) error {
	pt.score.Score = sum.Score
	pt.score.Gathered = sum.Gathered

	if !sum.GoalFound {
		pt.p.text(canvas.LayerEffects, bannerPos, "The Wizard is hiding in the building marked with ★", core.ColorRed,
			canvas.TextStyle{Align: canvas.AlignCenter, Size: canvas.TextLarge, Bold: true})
		pt.p.text(canvas.LayerEffects, finalPos, fmt.Sprintf("Final Score: %d | Emeralds: %d/%d", sum.Score, sum.Gathered, sum.Total),
			core.ColorYellow, canvas.TextStyle{Align: canvas.AlignCenter, Size: canvas.TextLarge, Bold: true})
	}
	pt.drawOverlay()
	pt.p.present()
	return pt.Err()
}
