// invaders is a Space Invaders clone for the terminal.
//
// Usage:
//
//	invaders [play]          - Play in this terminal
//	invaders serve           - Start SSH server for remote play
//	invaders scores          - Show the best runs
//	invaders simulate        - Run a headless game and print its final state
//	invaders config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set run database path (default: ~/.invaders/runs.db)
//	--config <path>      - Load a YAML or TOML config file
//	--difficulty <name>  - easy, normal, hard or classic
//	--hscore <path>      - Override the highscore file
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/seb-mtl/Space-Invaders/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagHscore     string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `Shoot down the alien formation before it reaches the ground.

Available commands:
  play      - Play in this terminal (default)
  serve     - Start SSH server for remote play
  scores    - View the best runs
  simulate  - Run a headless game with an autopilot
  config    - Print the effective configuration

Examples:
  invaders
  invaders play --difficulty hard
  invaders serve --ssh :2222
  invaders scores
  invaders simulate --frames 3600 --seed 42`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/runs.db", "Path to run database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, classic")
	rootCmd.PersistentFlags().StringVar(&flagHscore, "hscore", "", "Path to highscore file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file, the difficulty preset and the
// highscore override. Exits on invalid input.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&cfg, preset)

	if flagHscore != "" {
		cfg.Highscore.Path = flagHscore
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// highscorePath returns the expanded highscore path of cfg.
func highscorePath(cfg config.Config) string {
	path, err := config.ExpandPath(cfg.Highscore.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return cfg.Highscore.Path
	}
	return path
}

// newLogger builds a logger writing to --log-file, or to fallback when no
// file is given. The returned function closes the file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func()) {
	w := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		} else {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	return logger, closeFn
}
