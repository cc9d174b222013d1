package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/emerald-city/internal/session"
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run the walk without drawing",
	Long: `Run the whole walk as fast as possible, without a window or
pacing, and print the result. Useful to check a seed or fill the
run history.

Examples:
  emerald headless
  emerald headless --seed 42
  emerald headless --steps 5000`,
	Run: runHeadless,
}

func runHeadless(_ *cobra.Command, _ []string) {
	logger := newLogger()

	cfg, err := loadScene()
	if err != nil {
		fatal("%v", err)
	}
	cfg.Pacing.FrameDelay = 0

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printWelcome()
	sess := newSession(cfg, session.FrontendHeadless, nil)
	printStart()

	sum := sess.Walker.Run(ctx)
	if sum.Aborted {
		logger.Warn("walk interrupted", "steps", sum.StepsTaken, "cause", sess.Walker.AbortCause())
	}

	id, err := sess.Save(store, sum)
	if err != nil {
		logger.Warn("could not save run", "err", err)
	}

	printSummary(sum)
	fmt.Printf("Seed: %d  Steps: %s  Turns: %s  Bounces: %s\n",
		sess.Seed, humanize.Comma(int64(sum.StepsTaken)),
		humanize.Comma(int64(sum.Turns)), humanize.Comma(int64(sum.Bounces)))
	if sum.GoalFound {
		fmt.Println("The Wizard was found!")
	}
	if id != "" {
		fmt.Printf("Run saved as %s\n", id)
	}
}
