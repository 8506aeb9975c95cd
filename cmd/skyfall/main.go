// skyfall is a vertical-scrolling arcade shooter for the terminal.
//
// Usage:
//
//	skyfall list               - List available variants
//	skyfall play <variant>     - Play a variant
//	skyfall menu               - Pick variants interactively
//	skyfall scores <variant>   - Show high scores for a variant
//	skyfall serve              - Start SSH server for remote play
//	skyfall sim <variant>      - Run a headless deterministic game
//	skyfall config [variant]   - Print the default or resolved config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.skyfall/scores.db)
//	--verbose       - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register the built-in variants
	_ "github.com/vovakirdan/skyfall/internal/variants"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "skyfall",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyfall",
	Short: "Skyfall - dodge falling hazards in your terminal",
	Long: `Skyfall is a vertical-scrolling arcade shooter played in the terminal.
Steer your ship and avoid enemies and obstacles falling from the sky.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  scores   - View high scores
  serve    - Start SSH server for remote play
  sim      - Run a headless game with no input
  config   - Print the default or resolved config

Examples:
  skyfall list
  skyfall play hallway
  skyfall menu
  skyfall serve --ssh :2222
  skyfall scores dodge`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
		log.SetDefault(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyfall/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
