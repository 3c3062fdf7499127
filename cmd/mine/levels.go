package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lambda-mine/internal/mine/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long:  `Shows the level catalog found in the levels directory.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
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
		fmt.Printf("No levels found in %s.\n", cfg.LevelsDir)
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, e := range entries {
		if len(e.Level.ID) > maxIDLen {
			maxIDLen = len(e.Level.ID)
		}
	}

	fmt.Printf("  %-*s  %-8s  %-4s  %s\n", maxIDLen, "ID", "Size", "λ", "Name")
	fmt.Printf("  %-*s  %-8s  %-4s  %s\n", maxIDLen, "--", "----", "--", "----")

	for _, e := range entries {
		fmt.Printf("  %-*s  %-8s  %-4d  %s\n",
			maxIDLen, e.Level.ID,
			fmt.Sprintf("%dx%d", e.Level.Width, e.Level.Height),
			e.Level.Lambdas,
			e.Level.Name,
		)
	}

	fmt.Println()
	fmt.Println("Run 'mine play <id>' to play a level.")
}
