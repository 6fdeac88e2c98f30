// cannon is an arcade cannon game for the terminal, the desktop and SSH.
//
// Usage:
//
//	cannon play      - Play in this terminal
//	cannon window    - Play in a desktop window
//	cannon serve     - Start SSH server for remote play
//	cannon config    - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cannon-arcade/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cannon",
	Short: "Cannon - aim, fire and hit the flying balls",
	Long: `Cannon is a small arcade game: drag from the sky to aim the cannon,
let go to fire, and hit the winged balls crossing the screen.

Available commands:
  play     - Play in this terminal (mouse or keyboard)
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective game configuration

Examples:
  cannon play
  cannon play --difficulty hard --seed 42
  cannon window --assets ./sprites
  cannon serve --address :2222
  cannon config --difficulty easy > ~/.cannon/configs/cannon.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for terminal play (default ~/.cannon/cannon.log)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the game config and applies the difficulty preset.
func loadConfig() (config.CannonConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.CannonConfig{}, err
	}
	cfg, err := config.LoadCannon(flagConfig)
	if err != nil {
		return config.CannonConfig{}, err
	}
	config.ApplyCannonPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.CannonConfig{}, err
	}
	return cfg, nil
}

// mustLoadConfig is loadConfig for command handlers.
func mustLoadConfig() config.CannonConfig {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
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
	return logger
}

// openLogFile opens the terminal-play log file, creating its directory.
func openLogFile() (*os.File, error) {
	path := flagLogFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".cannon", "cannon.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
