package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cannon-arcade/internal/core"
	"github.com/vovakirdan/cannon-arcade/internal/platform/desktop"
)

var (
	flagAssets string
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a resizable window and play with the mouse or a touch screen.

Sprites are drawn by the game. With --assets, any of these files found in
the directory replace the drawn sprite of the same name:
  cloud.png ball.png wing_left.png wing_right.png reward.png
  cannon_back.png cannon_front.png wheel.png flash.png bullet.png

Controls:
  Mouse/touch  - Aim (press in the sky, drag, release to fire)
  P            - Pause
  R            - Restart
  Q/Esc        - Quit

Examples:
  cannon window
  cannon window --width 1280 --height 720
  cannon window --assets ./sprites --mute`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with sprite PNG files")
	windowCmd.Flags().IntVar(&flagWidth, "width", 800, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 600, "Window height in pixels")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	logger := newLogger(os.Stderr, "cannon")

	rc := core.RuntimeConfig{
		CanvasW:  float64(flagWidth),
		CanvasH:  float64(flagHeight),
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	err := desktop.Run(cfg, rc, desktop.Options{
		AssetsDir: flagAssets,
		Logger:    logger,
		Mute:      flagMute,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
