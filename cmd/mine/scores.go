package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lambda-mine/internal/mine/levels"
	"github.com/vovakirdan/lambda-mine/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show best results for a level",
	Long: `Display the top 10 results for the specified level, best first:
most lambdas collected, fewest moves breaking ties.

Examples:
  mine scores contest1`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	levelID := args[0]

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level, err := levels.NewLoader(cfg.LevelsDir).LoadByID(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'mine levels' to see available levels.")
		os.Exit(1)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.TopResults(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Results - %s\n", level.Name)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mine play %s' to set the first result!\n", levelID)
		return
	}

	fmt.Printf("  %-4s  %-9s  %-6s  %-6s  %s\n", "Rank", "Outcome", "λ", "Moves", "Date")
	fmt.Printf("  %-4s  %-9s  %-6s  %-6s  %s\n", "----", "-------", "--", "-----", "----")

	for i, entry := range results {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-9s  %-6d  %-6d  %s\n", i+1, entry.Outcome, entry.Lambdas, entry.Moves, dateStr)
	}

	stats, err := store.GetLevelStats(levelID)
	if err == nil && stats.Games > 0 {
		fmt.Println()
		fmt.Printf("Played %d times, won %d", stats.Games, stats.Wins)
		if stats.BestMoves > 0 {
			fmt.Printf(", best win in %d moves", stats.BestMoves)
		}
		fmt.Println()
	}
}
