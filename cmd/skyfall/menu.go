package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start skyfall with a variant picker menu",
	Long: `Start skyfall in interactive menu mode.

Use arrow keys or j/k to pick a variant, left/right to pick a difficulty
and Enter to play. After a game you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Play
  Tab          - Scoreboard
  Q            - Quit

Examples:
  skyfall menu
  skyfall menu --fps 30
  skyfall menu --difficulty hard`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Initial difficulty preset: easy, normal, hard")
}

func runMenu(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	base, err := config.LoadSkyfall(flagConfig)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()
	return tui.RunSession(tui.SessionOptions{
		Base:   base,
		Preset: preset,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Logger: logger,
	})
}
