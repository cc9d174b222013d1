// Package session wires one walk together: seeds, scene, canvas, painter,
// optional sound and the walker. Every frontend starts from a Session.
package session

import (
	"github.com/vovakirdan/emerald-city/internal/audio"
	"github.com/vovakirdan/emerald-city/internal/canvas"
	"github.com/vovakirdan/emerald-city/internal/config"
	"github.com/vovakirdan/emerald-city/internal/core"
	"github.com/vovakirdan/emerald-city/internal/effects"
	"github.com/vovakirdan/emerald-city/internal/sim"
	"github.com/vovakirdan/emerald-city/internal/storage"
)

// fxSalt derives the cosmetic seed from the physics seed so a seed
// reproduces the whole picture, not only the path.
const fxSalt = 0x5eed_0f_0a

// fxSeed returns the cosmetic seed for seed. It is never zero, which
// NewSource would replace with the clock.
func fxSeed(seed int64) int64 {
	if fx := seed ^ fxSalt; fx != 0 {
		return fx
	}
	return fxSalt
}

// Frontend names stored with each run.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
	FrontendSSH      = "ssh"
)

// Options configures a new session.
type Options struct {
	Seed     int64 // 0 selects a time-based seed
	Config   config.SceneConfig
	Frontend string
	Sound    audio.Player // nil plays nothing
	Extra    []sim.Observer
}

// Session is one fully wired walk.
type Session struct {
	Seed     int64
	Frontend string
	Config   config.SceneConfig
	Scene    *sim.Scene
	Canvas   *canvas.Canvas
	Painter  *effects.Painter
	Walker   *sim.Walker
}

// New builds the scene and the walker. Nothing is drawn until the walker's
// Setup or first Step runs.
func New(opts Options) *Session {
	seed := core.RuntimeConfig{Seed: opts.Seed}.ResolveSeed()

	rng := sim.NewSource(seed)
	fx := sim.NewSource(fxSeed(seed))

	cfg := opts.Config
	scene := sim.NewScene(cfg, rng)
	c := canvas.New()
	painter := effects.NewPainter(c, cfg, fx)

	obs := sim.Observers{painter}
	if opts.Sound != nil {
		obs = append(obs, audio.NewObserver(opts.Sound))
	}
	obs = append(obs, opts.Extra...)

	return &Session{
		Seed:     seed,
		Frontend: opts.Frontend,
		Config:   cfg,
		Scene:    scene,
		Canvas:   c,
		Painter:  painter,
		Walker:   sim.NewWalker(scene, cfg, rng, fx, obs),
	}
}

// Record converts a finished walk into a storage row.
func (s *Session) Record(sum sim.Summary) storage.Run {
	return storage.Run{
		Seed:      s.Seed,
		Score:     sum.Score,
		Emeralds:  sum.Gathered,
		Total:     sum.Total,
		GoalFound: sum.GoalFound,
		Perfect:   sum.Perfect,
		Steps:     sum.StepsTaken,
		Aborted:   sum.Aborted,
		Frontend:  s.Frontend,
	}
}

// Save stores the finished walk when store is non-nil.
// It returns the new run ID, or "" when nothing was stored.
func (s *Session) Save(store *storage.Store, sum sim.Summary) (string, error) {
	if store == nil {
		return "", nil
	}
	return store.SaveRun(s.Record(sum))
}
