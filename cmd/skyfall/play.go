package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/platform/tcellui"
	"github.com/vovakirdan/skyfall/internal/platform/tui"
	"github.com/vovakirdan/skyfall/internal/registry"
	"github.com/vovakirdan/skyfall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagBackend    string
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Arrows/WASD - Steer
  P/Esc       - Pause
  R           - Restart (after game over)
  B           - Leave (when paused or after game over)
  Q/Ctrl+C    - Quit

Difficulty options (constant for the whole game):
  easy   - Slower spawns
  normal - Variant defaults
  hard   - Faster spawns

Backends:
  bubbletea - Bubble Tea renderer (default)
  tcell     - Direct tcell renderer

Examples:
  skyfall play hallway
  skyfall play dodge --difficulty hard
  skyfall play classic --backend tcell
  skyfall play hallway --config ./my-skyfall.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagBackend, "backend", "bubbletea", "Renderer backend: bubbletea, tcell")
}

// loadRules loads the base config and resolves variant and difficulty on top.
func loadRules(variant, configPath, difficulty string) (config.SkyfallConfig, error) {
	if !registry.Exists(variant) {
		return config.SkyfallConfig{}, fmt.Errorf("unknown variant %q (run 'skyfall list' to see available variants)", variant)
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.SkyfallConfig{}, err
	}
	base, err := config.LoadSkyfall(configPath)
	if err != nil {
		return config.SkyfallConfig{}, err
	}
	return registry.ResolvePreset(variant, base, preset)
}

// openStore opens the score database. Failure is not fatal for playing.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func runPlay(_ *cobra.Command, args []string) error {
	variant := args[0]

	rules, err := loadRules(variant, flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	switch flagBackend {
	case "bubbletea", "":
		width, height := terminalSize()
		return tui.Run(tui.GameOptions{
			Variant: variant,
			Rules:   rules,
			Runtime: core.RuntimeConfig{
				ScreenW:  width,
				ScreenH:  height,
				TickRate: flagFPS,
				Seed:     flagSeed,
			},
			Store:  store,
			Logger: logger,
		})

	case "tcell":
		return tcellui.Run(tcellui.Options{
			Variant:  variant,
			Rules:    rules,
			Seed:     flagSeed,
			TickRate: flagFPS,
			Store:    store,
			Logger:   logger,
		})

	default:
		return fmt.Errorf("unknown backend %q (want bubbletea or tcell)", flagBackend)
	}
}
