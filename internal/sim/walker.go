package sim

import (
	"context"
	"math"
	"slices"
	"time"

	"github.com/vovakirdan/emerald-city/internal/config"
	"github.com/vovakirdan/emerald-city/internal/core"
)

// Walker drives the agent's random walk through the city, one step at a time.
//
// Steps run strictly in sequence. Physics draws from rng only; cosmetic
// choices (the trail color) draw from fx so they can never change the path.
type Walker struct {
	cfg   config.SceneConfig
	rng   Source
	fx    Source
	obs   Observer
	scene *Scene

	agent     Agent
	score     ScoreState
	remaining []Collectible

	step     int // Index of the next step to run
	started  bool
	framed   bool // The last step ended on a redraw point
	aborted  bool
	abortErr error
	finished bool
}

// NewWalker prepares a walk over scene. A nil observer is replaced by NopObserver.
func NewWalker(scene *Scene, cfg config.SceneConfig, rng, fx Source, obs Observer) *Walker {
	if obs == nil {
		obs = NopObserver{}
	}
	remaining := make([]Collectible, len(scene.Collectibles))
	copy(remaining, scene.Collectibles)

	return &Walker{
		cfg:   cfg,
		rng:   rng,
		fx:    fx,
		obs:   obs,
		scene: scene,
		agent: Agent{
			Pos:     cfg.Walk.Start.Vec(),
			Heading: core.NormalizeHeading(cfg.Walk.Heading),
			Trail:   cfg.Walk.TrailStart,
		},
		remaining: remaining,
	}
}

// Scene returns the scene being walked.
func (w *Walker) Scene() *Scene {
	return w.scene
}

// Agent returns the current agent state.
func (w *Walker) Agent() Agent {
	return w.agent
}

// Score returns the current score state.
func (w *Walker) Score() ScoreState {
	return w.score
}

// Remaining returns a copy of the emeralds not yet gathered.
func (w *Walker) Remaining() []Collectible {
	out := make([]Collectible, len(w.remaining))
	copy(out, w.remaining)
	return out
}

// StepsTaken returns the number of completed steps.
func (w *Walker) StepsTaken() int {
	return w.step
}

// Aborted reports whether an observer error stopped the walk.
func (w *Walker) Aborted() bool {
	return w.aborted
}

// AbortCause returns the observer error (or context error) that stopped the walk.
func (w *Walker) AbortCause() error {
	return w.abortErr
}

// Done reports whether no further steps will run.
func (w *Walker) Done() bool {
	return w.aborted || w.finished || w.step >= w.cfg.Walk.Steps
}

// Abort stops the walk as if the surface had been closed.
func (w *Walker) Abort(cause error) {
	if w.aborted {
		return
	}
	w.aborted = true
	w.abortErr = cause
}

// emit records an observer error as an abort. It reports whether to continue.
func (w *Walker) emit(err error) bool {
	if err != nil {
		w.Abort(err)
		return false
	}
	return true
}

// Setup announces the scene to the observer once. Frontends may call it to
// draw the city before the first step; Step calls it otherwise.
// It reports whether the walk can continue.
func (w *Walker) Setup() bool {
	if w.started {
		return !w.aborted
	}
	w.started = true
	return w.emit(w.obs.OnSetup(w.scene, w.agent))
}

// Step runs one transition of the walk. It returns true while more steps remain.
func (w *Walker) Step() bool {
	w.framed = false
	if w.Done() || !w.Setup() {
		return false
	}

	walk := w.cfg.Walk
	step := w.step

	// Occasional turn, rewarded with glitter.
	if w.rng.Float64() < walk.TurnChance {
		angle := Pick(w.rng, walk.TurnAngles)
		w.agent.Heading = core.NormalizeHeading(w.agent.Heading + float64(angle))
		w.score.Score += walk.TurnPoints
		w.score.Turns++
		if !w.emit(w.obs.OnTurn(w.agent.Pos, w.score)) {
			return false
		}
	}

	if step%walk.TrailEvery == 0 {
		w.agent.Trail = Pick(w.fx, walk.TrailPalette)
	}

	dist := Between(w.rng, walk.Distance.Min, walk.Distance.Max)
	from := w.agent.Pos
	w.agent.Pos = from.Forward(w.agent.Heading, float64(dist))
	if !w.emit(w.obs.OnMove(from, w.agent.Pos, w.agent.Trail)) {
		return false
	}

	if !w.collect() || !w.checkGoal() || !w.bounce() {
		return false
	}

	w.step++

	if step%w.cfg.Pacing.RedrawEvery == 0 {
		w.framed = true
		if !w.emit(w.obs.OnFrame(step, w.score)) {
			return false
		}
	}

	return !w.Done()
}

// StepFrame runs steps until the next redraw point or the end of the walk.
// It returns true while more steps remain.
func (w *Walker) StepFrame() bool {
	for {
		more := w.Step()
		if !more || w.framed {
			return more
		}
	}
}

// collect gathers every emerald within the capture radius. Each emerald
// leaves the remaining set only as it is counted, so an aborted capture
// keeps the rest in play.
func (w *Walker) collect() bool {
	col := w.cfg.Collectibles
	for i := 0; i < len(w.remaining); {
		c := w.remaining[i]
		if w.agent.Pos.Dist(c.Pos) >= col.CaptureRadius {
			i++
			continue
		}
		w.remaining = slices.Delete(w.remaining, i, i+1)
		w.score.Gathered++
		w.score.Score += col.Points
		if !w.emit(w.obs.OnCapture(c, w.score)) {
			return false
		}

		if w.score.Gathered == len(w.scene.Collectibles) && !w.score.AllCollectedAwarded {
			w.score.AllCollectedAwarded = true
			w.score.Score += col.AllCollectedBonus
			if !w.emit(w.obs.OnAllCollected(w.score)) {
				return false
			}
		}
	}
	return true
}

// checkGoal awards the Wizard bonus the first time the agent gets close.
func (w *Walker) checkGoal() bool {
	if w.score.GoalFound {
		return true
	}
	goal := w.scene.Goal().Center()
	if w.agent.Pos.Dist(goal) >= w.cfg.Goal.Radius {
		return true
	}

	w.score.GoalFound = true
	if w.perfect() {
		w.score.Score += w.cfg.Goal.PerfectPoints
	} else {
		w.score.Score += w.cfg.Goal.Points
	}
	return w.emit(w.obs.OnVictory(goal, w.summary()))
}

// bounce turns the agent around when it leaves the walk bounds.
// Only the heading is corrected; the position may stay outside.
func (w *Walker) bounce() bool {
	walk := w.cfg.Walk
	pos := w.agent.Pos
	if math.Abs(pos.X) <= walk.Bounds.HalfWidth && math.Abs(pos.Y) <= walk.Bounds.HalfHeight {
		return true
	}

	jitter := Between(w.rng, -walk.BounceJitter, walk.BounceJitter)
	w.agent.Heading = core.NormalizeHeading(w.agent.Heading + 180 + float64(jitter))
	w.score.Score += walk.BouncePoints
	w.score.Bounces++
	return w.emit(w.obs.OnBounce(pos, w.score))
}

func (w *Walker) perfect() bool {
	return len(w.scene.Collectibles) > 0 && w.score.Gathered == len(w.scene.Collectibles)
}

func (w *Walker) summary() Summary {
	return Summary{
		Score:      w.score.Score,
		Gathered:   w.score.Gathered,
		Total:      len(w.scene.Collectibles),
		GoalFound:  w.score.GoalFound,
		Perfect:    w.perfect(),
		Turns:      w.score.Turns,
		Bounces:    w.score.Bounces,
		Steps:      w.cfg.Walk.Steps,
		StepsTaken: w.step,
		Aborted:    w.aborted,
	}
}

// Finish ends the walk and notifies observers with the summary.
// It is safe to call more than once; only the first call notifies.
// Observer errors are swallowed here since nothing is left to stop.
func (w *Walker) Finish() Summary {
	if w.finished {
		return w.summary()
	}
	w.Setup()
	w.finished = true
	sum := w.summary()
	if !w.aborted {
		//nolint:errcheck // the surface may already be closing
		w.obs.OnFinish(sum)
	}
	return sum
}

// Run executes the remaining steps synchronously, pausing for the configured
// frame delay after each redraw. It stops early when an observer fails or ctx
// is cancelled, and always returns the final summary.
func (w *Walker) Run(ctx context.Context) Summary {
	delay := w.cfg.Pacing.FrameDelay
	var timer *time.Timer

	for w.StepFrame() {
		if delay <= 0 {
			if err := ctx.Err(); err != nil {
				w.Abort(err)
				break
			}
			continue
		}

		if timer == nil {
			timer = time.NewTimer(delay)
		} else {
			timer.Reset(delay)
		}
		select {
		case <-ctx.Done():
			timer.Stop()
			w.Abort(ctx.Err())
		case <-timer.C:
		}
	}

	return w.Finish()
}
