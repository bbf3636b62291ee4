package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/seb-mtl/Space-Invaders/internal/highscore"
	"github.com/seb-mtl/Space-Invaders/internal/platform/tui"
	"github.com/seb-mtl/Space-Invaders/internal/storage"
)

var (
	flagLimit  int
	flagPlain  bool
	flagPlayer string
	flagRunID  string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs from the run database together with the best
score from the highscore file.

In a terminal this opens an interactive table; use --plain for text.

Examples:
  invaders scores
  invaders scores --plain --limit 20
  invaders scores --player alice
  invaders scores --run 6f1c2b9e-1f0a-4d7e-9a43-0c8d7b2e5a11
  invaders scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show recent runs of this player")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by its id")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole run history")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	best := highscore.New(highscorePath(cfg))
	if err := best.ReadFromDisk(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read highscore %s: %v\n", best.Path(), err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagRunID != "" {
		printRun(store, flagRunID)
		return
	}

	interactive := !flagPlain && flagPlayer == "" && term.IsTerminal(int(os.Stdout.Fd()))
	if interactive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, best.Highscore(), width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.RunRecord
	if flagPlayer != "" {
		runs, err = store.PlayerRuns(flagPlayer, flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Space Invaders")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders play' to set the first high score!")
	} else {
		fmt.Printf("  %-4s  %-8s  %-5s  %-12s  %-16s  %s\n", "Rank", "Score", "Level", "Player", "When", "Run")
		fmt.Printf("  %-4s  %-8s  %-5s  %-12s  %-16s  %s\n", "----", "-----", "-----", "------", "----", "---")

		for i, run := range runs {
			fmt.Printf("  %-4d  %-8d  %-5d  %-12s  %-16s  %s\n",
				i+1, run.Score, run.Level, run.Player, humanize.Time(run.CreatedAt), run.RunID)
		}
	}

	fmt.Println()
	fmt.Printf("Best score on this machine: %s\n", humanize.Comma(int64(best.Highscore())))
	if high, err := store.HighScore(); err == nil && high > 0 {
		fmt.Printf("Best recorded run: %s\n", humanize.Comma(int64(high)))
	}

	if stats, err := store.Stats(); err == nil && stats.Runs > 0 {
		fmt.Printf("%s runs played, average %.1f, best level %d, last played %s\n",
			humanize.Comma(int64(stats.Runs)), stats.AvgScore, stats.BestLevel, humanize.Time(stats.LastPlayed))
	}
}

// printRun prints one stored run, or exits if there is none with that id.
func printRun(store *storage.Store, runID string) {
	run, err := store.RunByID(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "Error: no run with id %s\n", runID)
		os.Exit(1)
	}

	fmt.Printf("Run:    %s\n", run.RunID)
	fmt.Printf("Player: %s\n", run.Player)
	fmt.Printf("Score:  %s\n", humanize.Comma(int64(run.Score)))
	fmt.Printf("Level:  %d\n", run.Level)
	fmt.Printf("Played: %s (%s)\n", run.CreatedAt.Local().Format(time.DateTime), humanize.Time(run.CreatedAt))
}
