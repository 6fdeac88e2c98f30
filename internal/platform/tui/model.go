package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cannon-arcade/internal/config"
	"github.com/vovakirdan/cannon-arcade/internal/core"
	"github.com/vovakirdan/cannon-arcade/internal/games/cannon"
	"github.com/vovakirdan/cannon-arcade/internal/platform"
)

// aimSteps is how many keyboard nudges it takes to sweep the canvas width.
const aimSteps = 40

// Options configures a terminal Model.
type Options struct {
	Sound    core.Sound         // Fire sound; nil plays nothing
	Logger   *log.Logger        // Game events at debug level; nil discards
	Renderer *lipgloss.Renderer // Style renderer; nil uses the default
}

// Model is the Bubble Tea model running one cannon game.
type Model struct {
	game     *cannon.Game
	screen   *core.Screen
	raster   *core.Raster
	renderer *ScreenRenderer
	footer   lipgloss.Style
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	config   core.RuntimeConfig
	epoch    time.Time

	clicks    *platform.ClickGate
	fixedSeed bool
	aim       core.Point // Keyboard aim point in canvas pixels
	keyHeld   bool       // The pointer is held down by keyboard aiming

	quitting bool
}

// CanvasSize returns the canvas size in pixels for a terminal of cols x rows.
// The last row is kept for the help footer.
func CanvasSize(cols, rows int) (w, h float64) {
	return float64(max(cols, 0)) * CellW, float64(max(rows-1, 0)) * CellH
}

// NewModel creates a model for a terminal whose canvas is rc.CanvasW x rc.CanvasH pixels.
func NewModel(cfg config.CannonConfig, rc core.RuntimeConfig, opts Options) Model {
	fixedSeed := rc.Seed != 0
	if !fixedSeed {
		rc.Seed = time.Now().UnixNano()
	}
	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	renderer := NewScreenRenderer(opts.Renderer)
	screen := core.NewScreen(int(rc.CanvasW/CellW), int(rc.CanvasH/CellH))

	game := cannon.New(cfg, Assets(opts.Sound), platform.LogHooks(logger))
	game.Reset(rc)

	h := help.New()
	h.ShowAll = false

	return Model{
		game:      game,
		screen:    screen,
		raster:    core.NewRaster(screen, CellW, CellH),
		renderer:  renderer,
		footer:    renderer.renderer.NewStyle().Foreground(lipgloss.Color("241")),
		keys:      DefaultKeyMap(),
		help:      h,
		logger:    logger,
		config:    rc,
		epoch:     time.Now(),
		clicks:    platform.NewClickGate(game.Pointer()),
		fixedSeed: fixedSeed,
		aim:       core.Point{X: rc.CanvasW / 2},
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
	case key.Matches(msg, m.keys.Pause):
		m.game.TogglePause()
	case key.Matches(msg, m.keys.Restart):
		m.restart()
	case key.Matches(msg, m.keys.Left):
		m.nudgeAim(-1)
	case key.Matches(msg, m.keys.Right):
		m.nudgeAim(1)
	case key.Matches(msg, m.keys.Fire):
		m.keyFire()
	}
	return m, nil
}

// handleMouse feeds mouse events to the pointer tracker. Cell coordinates
// map to the pixel at the cell center.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := cellCenter(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.keyHeld = false
			m.clicks.Press(p)
		}
	case tea.MouseActionMotion:
		m.clicks.Move(p)
	case tea.MouseActionRelease:
		m.clicks.Release(p)
	}
	return m, nil
}

// handleResize keeps the canvas matched to the terminal. The game is
// resized in place, not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	w, h := CanvasSize(msg.Width, msg.Height)
	m.config.CanvasW, m.config.CanvasH = w, h
	m.screen.Resize(int(w/CellW), int(h/CellH))
	m.game.Resize(w, h)
	m.help.Width = msg.Width
	m.aim.X = core.ClampF(m.aim.X, 0, w)
	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.game.Frame(float64(now.Sub(m.epoch)) / float64(time.Millisecond))
	m.clicks.Tick(m.game.Paused())
	return m, tickCmd(m.config.TickRate)
}

// nudgeAim moves the keyboard aim point along the upper sky and holds the
// pointer there so the barrel follows.
func (m *Model) nudgeAim(dir float64) {
	w, _ := m.game.Size()
	m.aim.X = core.ClampF(m.aim.X+dir*w/aimSteps, 0, w)
	m.aim.Y = m.game.Snapshot().SeparatorY / 3

	if m.keyHeld && m.game.Pointer().State().Pressed {
		m.clicks.Move(m.aim)
		return
	}
	m.keyHeld = true
	m.clicks.Press(m.aim)
}

// keyFire lets go of the keyboard-held pointer, pressing first if needed.
func (m *Model) keyFire() {
	if !m.keyHeld || !m.game.Pointer().State().Pressed {
		m.aim.Y = m.game.Snapshot().SeparatorY / 3
		m.clicks.Press(m.aim)
	}
	m.keyHeld = false
	m.clicks.Release(m.aim)
}

// restart begins a new round. A seed given on the command line is reused.
func (m *Model) restart() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.keyHeld = false
	m.clicks.Reset()
	m.logger.Info("round restarted", "seed", m.config.Seed)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".cannon", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("cannon_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m Model) draw() {
	m.raster.Begin()
	m.game.Draw(m.raster)
	if m.game.Paused() {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ", core.ColorWhite)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return m.renderer.Render(m.screen) + "\n" + m.footer.Render(m.help.View(m.keys))
}

// Game returns the running game.
func (m Model) Game() *cannon.Game {
	return m.game
}

func cellCenter(x, y int) core.Point {
	return core.Point{X: (float64(x) + 0.5) * CellW, Y: (float64(y) + 0.5) * CellH}
}

// Run starts the Bubble Tea program with the given model.
func Run(cfg config.CannonConfig, rc core.RuntimeConfig, opts Options) error {
	model := NewModel(cfg, rc, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
