package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/emerald-city/internal/platform/tui"
	"github.com/vovakirdan/emerald-city/internal/storage"
)

var (
	flagInteractive bool
	flagRecent      bool
	flagLimit       int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded walks",
	Long: `Display the best recorded walks.

Examples:
  emerald scores
  emerald scores --recent --limit 20
  emerald scores --interactive
  emerald scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in an interactive table")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the most recent runs instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening run database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fatal("clearing runs: %v", err)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fatal("%v", err)
		}
		return
	}

	var runs []storage.Run
	title := "Best Walks"
	if flagRecent {
		title = "Recent Walks"
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		fatal("retrieving runs: %v", err)
	}

	fmt.Printf("Emerald City - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No walks recorded yet.")
		fmt.Println()
		fmt.Println("Run 'emerald' to follow the yellow brick road!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-20s  %s\n", "Rank", "Score", "Gems", "Wizard", "Seed", "When")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-20s  %s\n", "----", "-----", "----", "------", "----", "----")

	for i, r := range runs {
		wizard := "-"
		if r.GoalFound {
			wizard = "yes"
		}
		fmt.Printf("  %-4d  %-8s  %-6s  %-6s  %-20d  %s\n",
			i+1, humanize.Comma(int64(r.Score)), fmt.Sprintf("%d/%d", r.Emeralds, r.Total),
			wizard, r.Seed, humanize.Time(r.CreatedAt))
	}

	fmt.Println()
	if best, err := store.BestScore(); err == nil {
		count, _ := store.RunCount()
		fmt.Printf("Best: %s over %s walks\n", humanize.Comma(int64(best)), humanize.Comma(int64(count)))
	}
}
