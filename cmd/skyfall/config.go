package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the default or resolved game config",
	Long: `Without a variant, print the built-in default config. It is a complete
starting point for ~/.skyfall/configs/skyfall.yaml or a --config file.

With a variant, print the rules a game of that variant would run with:
the base config, the variant overlay and the difficulty preset.

Examples:
  skyfall config > ~/.skyfall/configs/skyfall.yaml
  skyfall config hallway
  skyfall config dodge --difficulty hard --config ./my-skyfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runConfig(_ *cobra.Command, args []string) error {
	variant := ""
	if len(args) == 1 {
		variant = args[0]
	}
	return writeConfig(os.Stdout, variant, flagConfig, flagDifficulty)
}

// writeConfig writes the embedded defaults, or the resolved rules when a
// variant is given.
func writeConfig(w io.Writer, variant, configPath, difficulty string) error {
	if variant == "" {
		_, err := w.Write(config.GetDefaultYAML())
		return err
	}

	rules, err := loadRules(variant, configPath, difficulty)
	if err != nil {
		return err
	}
	data, err := config.Marshal(rules)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "# %s rules\n", variant)
	_, err = w.Write(data)
	return err
}
