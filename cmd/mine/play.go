package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lambda-mine/internal/mine/levels"
	"github.com/vovakirdan/lambda-mine/internal/platform/tui"
	"github.com/vovakirdan/lambda-mine/internal/replay"
	"github.com/vovakirdan/lambda-mine/internal/storage"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level, or open the level picker when no
level is named.

Controls:
  Arrows/hjkl - Move (earth is excavated, simple rocks push sideways)
  Space/.     - Wait one turn
  s           - Use a razor on adjacent beards
  a/Esc       - Abort the game
  r           - Restart the level
  n           - Skip to the next level
  q/Ctrl+C    - Quit

Examples:
  mine play
  mine play contest1
  mine play flood1 --record flood1.journal.gz`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record the game to a journal file")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	entries, err := levels.NewLoader(cfg.LevelsDir).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "No levels found in %s\n", cfg.LevelsDir)
		os.Exit(1)
	}

	startIndex := -1
	if len(args) == 1 {
		for i, e := range entries {
			if e.Level.ID == args[0] {
				startIndex = i
				break
			}
		}
		if startIndex < 0 {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'mine levels' to see available levels.")
			os.Exit(1)
		}
	}

	// Terminal size for the picker layout
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	var recorder *replay.Recorder
	if flagRecord != "" {
		levelID := ""
		if startIndex >= 0 {
			levelID = entries[startIndex].Level.ID
		}
		recorder, err = replay.NewRecorder(flagRecord, levelID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(entries, store, tui.Options{
		StartIndex: startIndex,
		ShowLegend: cfg.ShowLegend,
		Recorder:   recorder,
		Width:      width,
		Height:     height,
	})

	if store != nil {
		store.Close()
	}
	if recorder != nil {
		if closeErr := recorder.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", closeErr)
		}
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
