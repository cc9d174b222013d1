package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/emerald-city/internal/core"
	"github.com/vovakirdan/emerald-city/internal/platform/tui"
	"github.com/vovakirdan/emerald-city/internal/session"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Animate the walk in the terminal",
	Long: `Draw the city in your terminal and animate the walk.

Controls:
  P/Space    - Pause
  +/-        - Faster/slower
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Stop the walk

Once the walk is over, any key or click exits.

Examples:
  emerald run
  emerald run --seed 42 --pace fast
  emerald run --config ./my-city.yaml`,
	Run: runTerminal,
}

func runTerminal(_ *cobra.Command, _ []string) {
	logger := newLogger()

	cfg, err := loadScene()
	if err != nil {
		fatal("%v", err)
	}

	rc := core.DefaultConfig()
	rc.FrameDelay = cfg.Pacing.FrameDelay
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	sound, closeSound := openSound(logger)
	defer closeSound()

	printWelcome()
	sess := newSession(cfg, session.FrontendTerminal, sound)
	printStart()

	rc.Seed = sess.Seed
	sum, err := tui.Run(sess, store, logger, rc)
	if err != nil {
		fatal("running walk: %v", err)
	}
	printSummary(sum)
	fmt.Printf("Seed: %d\n", sess.Seed)
}
