// mine is a terminal game of boulders, lambdas and rising water.
//
// Usage:
//
//	mine play [level]        - Play a level (picker when omitted)
//	mine levels              - List available levels
//	mine run <level> <route> - Execute a route non-interactively
//	mine replay <file>       - Inspect a recorded game journal
//	mine scores <level>      - Show best results for a level
//	mine serve               - Start SSH server for remote play
//
// Global flags:
//
//	--levels <dir>  - Levels directory (default: ./levels)
//	--db <path>     - Results database (default: ~/.lambda-mine/results.db)
//	--config <path> - Config file overriding both
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lambda-mine/internal/config"
)

var (
	// Global flags
	flagLevelsDir string
	flagDBPath    string
	flagConfig    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mine",
	Short: "Lambda Mine - guide a mining robot through collapsing caves",
	Long: `Lambda Mine is a turn-based terminal game: guide a robot through a
mine, collect every lambda, and reach the lift before the rocks, the
beards or the rising water get you.

Available commands:
  play     - Play a level interactively
  levels   - Show the level catalog
  run      - Execute a route non-interactively
  replay   - Inspect a recorded game journal
  scores   - View best results for a level
  serve    - Start SSH server for remote play

Examples:
  mine play
  mine play contest1
  mine run contest1 "DLLLDDRRRLULLDL"
  mine serve --ssh :2222
  mine scores contest1`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Levels directory (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the effective configuration: config file values
// overridden by explicit global flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLevelsDir != "" {
		cfg.LevelsDir = flagLevelsDir
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	return cfg, nil
}
