package sim

import (
	"errors"

	"github.com/vovakirdan/emerald-city/internal/core"
)

// Observer receives the side effects of the walk.
//
// Any non-nil error is treated as "the drawing surface is gone": the walker
// stops at the next opportunity and never propagates the error further.
// No distinction is made between causes.
type Observer interface {
	OnSetup(scene *Scene, agent Agent) error
	OnMove(from, to core.Vec, trail core.Color) error
	OnTurn(at core.Vec, score ScoreState) error
	OnBounce(at core.Vec, score ScoreState) error
	OnCapture(c Collectible, score ScoreState) error
	OnAllCollected(score ScoreState) error
	OnVictory(goal core.Vec, sum Summary) error
	OnFrame(step int, score ScoreState) error
	OnFinish(sum Summary) error
}

// NopObserver ignores every event. Embed it to implement a subset of Observer.
type NopObserver struct{}

func (NopObserver) OnSetup(*Scene, Agent) error                { return nil }
func (NopObserver) OnMove(core.Vec, core.Vec, core.Color) error { return nil }
func (NopObserver) OnTurn(core.Vec, ScoreState) error           { return nil }
func (NopObserver) OnBounce(core.Vec, ScoreState) error         { return nil }
func (NopObserver) OnCapture(Collectible, ScoreState) error     { return nil }
func (NopObserver) OnAllCollected(ScoreState) error             { return nil }
func (NopObserver) OnVictory(core.Vec, Summary) error           { return nil }
func (NopObserver) OnFrame(int, ScoreState) error               { return nil }
func (NopObserver) OnFinish(Summary) error                      { return nil }

// Observers fans every event out to each observer in order.
// All observers are notified; their errors are joined.
type Observers []Observer

func (o Observers) each(fn func(Observer) error) error {
	var errs []error
	for _, obs := range o {
		if err := fn(obs); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (o Observers) OnSetup(scene *Scene, agent Agent) error {
	return o.each(func(obs Observer) error { return obs.OnSetup(scene, agent) })
}

func (o Observers) OnMove(from, to core.Vec, trail core.Color) error {
	return o.each(func(obs Observer) error { return obs.OnMove(from, to, trail) })
}

func (o Observers) OnTurn(at core.Vec, score ScoreState) error {
	return o.each(func(obs Observer) error { return obs.OnTurn(at, score) })
}

func (o Observers) OnBounce(at core.Vec, score ScoreState) error {
	return o.each(func(obs Observer) error { return obs.OnBounce(at, score) })
}

func (o Observers) OnCapture(c Collectible, score ScoreState) error {
	return o.each(func(obs Observer) error { return obs.OnCapture(c, score) })
}

func (o Observers) OnAllCollected(score ScoreState) error {
	return o.each(func(obs Observer) error { return obs.OnAllCollected(score) })
}

func (o Observers) OnVictory(goal core.Vec, sum Summary) error {
	return o.each(func(obs Observer) error { return obs.OnVictory(goal, sum) })
}

func (o Observers) OnFrame(step int, score ScoreState) error {
	return o.each(func(obs Observer) error { return obs.OnFrame(step, score) })
}

func (o Observers) OnFinish(sum Summary) error {
	return o.each(func(obs Observer) error { return obs.OnFinish(sum) })
}
