// Package config provides user configuration for the lambda mine platform.
package config

// Config holds user-tunable settings shared by every command.
type Config struct {
	// LevelsDir is the directory scanned for level files.
	LevelsDir string `yaml:"levels_dir"`

	// DBPath is the location of the results database.
	DBPath string `yaml:"db_path"`

	// ShowLegend toggles the trampoline legend next to the map.
	ShowLegend bool `yaml:"show_legend"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LevelsDir:  "levels",
		DBPath:     "~/.lambda-mine/results.db",
		ShowLegend: true,
	}
}
