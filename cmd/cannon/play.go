package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cannon-arcade/internal/audio"
	"github.com/vovakirdan/cannon-arcade/internal/core"
	"github.com/vovakirdan/cannon-arcade/internal/platform/tui"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Play the cannon game in this terminal.

Controls:
  Mouse drag   - Aim (press in the sky, move, release to fire)
  Left/Right   - Aim with the keyboard (also A/D, H/L)
  Space/Enter  - Fire
  P/Esc        - Pause
  R            - Restart
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Logs are written to --log-file so they do not disturb the game.

Examples:
  cannon play
  cannon play --difficulty easy
  cannon play --seed 7 --log-level debug
  cannon play --config ./my-cannon.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	var logOut io.Writer = io.Discard
	if f, err := openLogFile(); err == nil {
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "cannon")

	// Get terminal size, falling back to a classic 80x24
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	} else {
		logger.Warn("cannot read terminal size", "error", err)
	}

	canvasW, canvasH := tui.CanvasSize(width, height)
	rc := core.RuntimeConfig{
		CanvasW:  canvasW,
		CanvasH:  canvasH,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := tui.Options{Logger: logger}
	if !flagMute {
		spk := audio.NewSpeaker()
		if err := spk.Init(); err != nil {
			// The game runs without sound
			logger.Warn("audio unavailable", "error", err)
		} else {
			defer spk.Close()
			opts.Sound = spk
		}
	}

	logger.Info("game started", "cols", width, "rows", height, "seed", flagSeed)
	if err := tui.Run(cfg, rc, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
	logger.Info("game ended")
}
