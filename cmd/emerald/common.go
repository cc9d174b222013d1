package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/emerald-city/internal/audio"
	"github.com/vovakirdan/emerald-city/internal/config"
	"github.com/vovakirdan/emerald-city/internal/session"
	"github.com/vovakirdan/emerald-city/internal/sim"
	"github.com/vovakirdan/emerald-city/internal/storage"
)

// newLogger builds the process logger from --log-level.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "emerald",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadScene loads the scene config and applies flag overrides.
func loadScene() (config.SceneConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.SceneConfig{}, err
	}

	pace, err := config.ParsePace(flagPace)
	if err != nil {
		return config.SceneConfig{}, err
	}
	config.ApplyPace(&cfg, pace)

	if flagSteps >= 0 {
		cfg.Walk.Steps = flagSteps
	}
	return cfg, nil
}

// openStore opens the run history. A failure is logged and yields nil,
// so the walk still runs without recording.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// openSound starts the audio device when --sound is set. The returned
// close func is always safe to call.
func openSound(logger *log.Logger) (audio.Player, func()) {
	if !flagSound {
		return nil, func() {}
	}
	m := audio.NewManager()
	if err := m.Init(); err != nil {
		logger.Warn("sound disabled", "err", err)
		return nil, func() {}
	}
	return m, m.Close
}

// newSession wires a walk for the given frontend.
func newSession(cfg config.SceneConfig, frontend string, sound audio.Player, extra ...sim.Observer) *session.Session {
	return session.New(session.Options{
		Seed:     flagSeed,
		Config:   cfg,
		Frontend: frontend,
		Sound:    sound,
		Extra:    extra,
	})
}

func printWelcome() {
	fmt.Println("*** Welcome to Emerald City! ***")
	fmt.Println("Building the city...")
}

func printStart() {
	fmt.Println("Following the yellow brick road...")
	fmt.Println("Watch for glitter explosions when the turtle hits corners!")
	fmt.Println("Collect emeralds for bonus points!")
	fmt.Println()
}

func printSummary(sum sim.Summary) {
	fmt.Printf("\n*** Quest complete! Final Score: %d ***\n", sum.Score)
	fmt.Printf("Emeralds Collected: %d/%d\n", sum.Gathered, sum.Total)
}

// consoleObserver prints the result as soon as the walk ends, while the
// window is still open.
type consoleObserver struct {
	sim.NopObserver
}

func (consoleObserver) OnFinish(sum sim.Summary) error {
	printSummary(sum)
	fmt.Println("Click the window to exit.")
	return nil
}

// fatal prints err and exits with status 1.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
