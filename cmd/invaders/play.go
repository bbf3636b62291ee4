package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/seb-mtl/Space-Invaders/internal/highscore"
	"github.com/seb-mtl/Space-Invaders/internal/platform/tui"
	"github.com/seb-mtl/Space-Invaders/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A, Right/D  - Move
  Space/Up         - Fire (and restart after game over)
  Ctrl+S           - Save a screenshot
  ?                - Toggle help
  Q/Esc/Ctrl+C     - Quit

Difficulty options:
  easy     - 5 lives, slower formation, fewer bombs
  normal   - Keep the loaded config
  hard     - 2 lives, faster formation, more bombs
  classic  - Arcade values regardless of the config file

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --config ./my-invaders.toml
  invaders play --log-file invaders.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	// The alt screen owns the terminal, so logs go to a file or nowhere.
	logger, closeLog := newLogger(io.Discard, "invaders")
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config:   cfg,
		Store:    store,
		Scores:   highscore.New(highscorePath(cfg)),
		Logger:   logger,
		Player:   currentUser(),
		TickRate: flagFPS,
		Seed:     flagSeed,
		Width:    width,
		Height:   height,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// currentUser names the local player for the run history.
func currentUser() string {
	for _, env := range []string{"USER", "USERNAME"} {
		if u := os.Getenv(env); u != "" {
			return u
		}
	}
	return "local"
}
