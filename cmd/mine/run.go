package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lambda-mine/internal/mine"
	"github.com/vovakirdan/lambda-mine/internal/mine/levels"
	"github.com/vovakirdan/lambda-mine/internal/replay"
)

var flagRunRecord string

var runCmd = &cobra.Command{
	Use:   "run <level> <route>",
	Short: "Execute a route non-interactively",
	Long: `Run a route of single-letter actions against a level and print the
final map and verdict. Useful for validating solutions and recorded
routes.

Route letters: L R U D (move), W (wait), S (shave), A (abort).

Examples:
  mine run contest1 "DLLLDDRRRLULLDL"
  mine run flood1 "RRRRDD" --record flood1.journal.gz`,
	Args: cobra.ExactArgs(2),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagRunRecord, "record", "", "Record the run to a journal file")
}

func runRun(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level, err := levels.NewLoader(cfg.LevelsDir).LoadByID(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	route, err := mine.ParseRoute(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var recorder *replay.Recorder
	if flagRunRecord != "" {
		recorder, err = replay.NewRecorder(flagRunRecord, level.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer recorder.Close()
	}

	snap := mine.Initialize(level)
	for _, a := range route {
		var verdict mine.Verdict
		snap, verdict = mine.Step(snap, a)
		if recorder != nil {
			if recErr := recorder.Record(a, snap); recErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", recErr)
			}
		}
		if verdict.Terminal() {
			break
		}
	}

	for _, row := range snap.Rows() {
		fmt.Println(row)
	}
	fmt.Println()
	fmt.Printf("Verdict:  %s\n", snap.Verdict)
	fmt.Printf("Lambdas:  %d/%d\n", snap.Lambdas, level.Lambdas)
	fmt.Printf("Moves:    %d\n", snap.Moves)
	fmt.Printf("Route:    %s\n", snap.Route())

	if snap.Verdict.Loss() {
		os.Exit(1)
	}
}
