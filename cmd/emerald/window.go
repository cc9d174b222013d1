package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/emerald-city/internal/platform/window"
	"github.com/vovakirdan/emerald-city/internal/session"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Animate the walk in a desktop window",
	Long: `Open a 1200x900 window, draw the city and animate the walk.

Closing the window stops the walk early. Once the walk is over,
click the window to exit.

Examples:
  emerald window
  emerald window --seed 7 --pace slow
  emerald window --sound`,
	Run: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	logger := newLogger()

	cfg, err := loadScene()
	if err != nil {
		fatal("%v", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	sound, closeSound := openSound(logger)
	defer closeSound()

	printWelcome()
	sess := newSession(cfg, session.FrontendWindow, sound, consoleObserver{})
	logger.Debug("scene ready", "seed", sess.Seed, "buildings", len(sess.Scene.Buildings))
	printStart()

	sum, err := window.Run(sess, store, logger)
	if err != nil {
		fatal("%v", err)
	}
	if sum.Aborted {
		logger.Info("window closed before the walk ended", "steps", sum.StepsTaken)
	}
}
