package desktop

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	sfx "github.com/vovakirdan/cannon-arcade/internal/audio"
	"github.com/vovakirdan/cannon-arcade/internal/config"
	"github.com/vovakirdan/cannon-arcade/internal/core"
	"github.com/vovakirdan/cannon-arcade/internal/games/cannon"
	"github.com/vovakirdan/cannon-arcade/internal/platform"
)

// Options configures the window host.
type Options struct {
	AssetsDir string      // Optional directory with PNG sprites
	Logger    *log.Logger // nil discards
	Mute      bool
}

// Host adapts a cannon game to ebiten.Game.
type Host struct {
	game    *cannon.Game
	surface *Surface
	logger  *log.Logger
	config  core.RuntimeConfig
	start   time.Time

	fixedSeed bool

	touches  []ebiten.TouchID
	touchID  ebiten.TouchID
	touching bool
}

// NewHost creates a host and resets the game to rc.
func NewHost(cfg config.CannonConfig, rc core.RuntimeConfig, assets cannon.Assets, logger *log.Logger) *Host {
	fixedSeed := rc.Seed != 0
	if !fixedSeed {
		rc.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game := cannon.New(cfg, assets, platform.LogHooks(logger))
	game.Reset(rc)

	return &Host{
		game:      game,
		surface:   NewSurface(),
		logger:    logger,
		config:    rc,
		start:     time.Now(),
		fixedSeed: fixedSeed,
	}
}

// Update reads input and advances the game.
func (h *Host) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		h.game.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		h.restart()
	}

	if !h.updateTouch() {
		h.updateMouse()
	}

	h.game.Frame(float64(time.Since(h.start)) / float64(time.Millisecond))
	return nil
}

func (h *Host) updateMouse() {
	x, y := ebiten.CursorPosition()
	applyPointer(h.game.Pointer(),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		float64(x), float64(y))
}

// updateTouch follows the first finger down and reports whether a touch
// is active.
func (h *Host) updateTouch() bool {
	if !h.touching {
		h.touches = inpututil.AppendJustPressedTouchIDs(h.touches[:0])
		if len(h.touches) == 0 {
			return false
		}
		h.touchID, h.touching = h.touches[0], true
		x, y := ebiten.TouchPosition(h.touchID)
		applyPointer(h.game.Pointer(), true, false, float64(x), float64(y))
		return true
	}

	if inpututil.IsTouchJustReleased(h.touchID) {
		x, y := inpututil.TouchPositionInPreviousTick(h.touchID)
		applyPointer(h.game.Pointer(), false, true, float64(x), float64(y))
		h.touching = false
		return true
	}
	x, y := ebiten.TouchPosition(h.touchID)
	applyPointer(h.game.Pointer(), false, false, float64(x), float64(y))
	return true
}

// applyPointer forwards one input sample to the pointer tracker.
func applyPointer(p *core.Pointer, pressed, released bool, x, y float64) {
	switch {
	case pressed:
		p.Press(x, y)
	case released:
		p.Release(x, y)
	default:
		p.Move(x, y)
	}
}

func (h *Host) restart() {
	if !h.fixedSeed {
		h.config.Seed = time.Now().UnixNano()
	}
	h.game.Reset(h.config)
	h.touching = false
	h.logger.Info("round restarted", "seed", h.config.Seed)
}

// Draw renders the game onto screen.
func (h *Host) Draw(screen *ebiten.Image) {
	h.surface.Begin(screen)
	h.game.Draw(h.surface)
	if h.game.Paused() {
		w, hh := h.game.Size()
		ebitenutil.DebugPrintAt(screen, "PAUSED", int(w/2)-18, int(hh/2))
	}
}

// Layout uses the window size as the canvas size, resizing the game
// when it changes.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

func (h *Host) resize(w, hh float64) {
	if w == h.config.CanvasW && hh == h.config.CanvasH {
		return
	}
	h.config.CanvasW, h.config.CanvasH = w, hh
	h.game.Resize(w, hh)
	h.logger.Debug("canvas resized", "width", w, "height", hh)
}

// Game returns the running game.
func (h *Host) Game() *cannon.Game {
	return h.game
}

// Run opens a window of rc.CanvasW x rc.CanvasH and plays until it is
// closed or Q is pressed.
func Run(cfg config.CannonConfig, rc core.RuntimeConfig, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}

	var fire *Sound
	if !opts.Mute {
		fire = NewFireSound(audio.NewContext(int(sfx.SampleRate)))
	}

	host := NewHost(cfg, rc, LoadAssets(opts.AssetsDir, fire, logger), logger)

	ebiten.SetWindowSize(int(rc.CanvasW), int(rc.CanvasH))
	ebiten.SetWindowTitle("Cannon")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(rc.TickRate)

	logger.Info("window opened", "width", rc.CanvasW, "height", rc.CanvasH, "seed", host.config.Seed)
	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
