package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seb-mtl/Space-Invaders/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the config file
search, the difficulty preset and flag overrides, as YAML.

Config search order:
  1. --config path (YAML, or TOML by .toml extension)
  2. ~/.invaders/config.yaml
  3. ~/.invaders/config.toml
  4. ./configs/invaders.yaml
  5. built-in defaults

Examples:
  invaders config
  invaders config --difficulty hard
  invaders config --defaults > ~/.invaders/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	out, err := config.Marshal(loadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}
