// emerald draws a random walk through Emerald City in search of the Wizard.
//
// Usage:
//
//	emerald [window]        - Animate the walk in a desktop window
//	emerald run             - Animate the walk in the terminal
//	emerald headless        - Run the walk without drawing, print the result
//	emerald scores          - Show recorded walks
//	emerald serve           - Start SSH server so others can watch a walk
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for a reproducible city and walk
//	--steps <n>        - Override the number of steps
//	--config <path>    - Scene config YAML
//	--pace <preset>    - slow, normal, fast or instant
//	--db <path>        - Set database path (default: ~/.emerald/emerald.db)
//	--log-level <lvl>  - debug, info, warn or error
//	--sound            - Play chimes for captures, bounces and the Wizard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagSteps    int
	flagConfig   string
	flagPace     string
	flagDBPath   string
	flagLogLevel string
	flagSound    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "emerald",
	Short: "Emerald City - follow the yellow brick road to the Wizard",
	Long: `Emerald City draws a city of colored buildings, scatters emeralds
through the streets and sends a turtle on a random walk to find the Wizard.

Available commands:
  window    - Animate the walk in a desktop window (default)
  run       - Animate the walk in your terminal
  headless  - Run the walk without drawing and print the result
  scores    - View recorded walks
  serve     - Start SSH server for remote viewing

Examples:
  emerald
  emerald run --seed 42
  emerald headless --steps 500
  emerald scores --interactive
  emerald serve --ssh :2222`,
	Run: runWindow,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagSteps, "steps", -1, "Number of walk steps (-1 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom scene config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPace, "pace", "", "Pace preset: slow, normal, fast, instant")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.emerald/emerald.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound effects")

	// Add subcommands
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
