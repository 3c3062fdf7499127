package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lambda-mine/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Inspect a recorded game journal",
	Long: `Print the per-tick frames of a journal recorded with
'mine play --record' or 'mine run --record'.

Examples:
  mine replay flood1.journal.gz`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) {
	hdr, frames, err := replay.ReadAll(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Journal: %s", args[0])
	if hdr.Level != "" {
		fmt.Printf(" (level %s)", hdr.Level)
	}
	fmt.Println()
	fmt.Println()

	if len(frames) == 0 {
		fmt.Println("No frames recorded.")
		return
	}

	fmt.Printf("  %-5s  %-8s  %-9s  %-8s  %-4s  %-5s  %s\n",
		"Tick", "Action", "Verdict", "Robot", "λ", "Air", "Water")
	fmt.Printf("  %-5s  %-8s  %-9s  %-8s  %-4s  %-5s  %s\n",
		"----", "------", "-------", "-----", "--", "---", "-----")

	for _, f := range frames {
		robot := fmt.Sprintf("(%d,%d)", f.RobotX, f.RobotY)
		fmt.Printf("  %-5d  %-8s  %-9s  %-8s  %-4d  %-5d  %d\n",
			f.Tick, f.Action, f.Verdict, robot, f.Lambdas, f.Air, f.WaterRow,
		)
	}

	last := frames[len(frames)-1]
	fmt.Println()
	fmt.Printf("Final: %s after %d moves, λ %d\n", last.Verdict, last.Moves, last.Lambdas)
}
