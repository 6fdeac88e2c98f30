package cannon

import (
	"github.com/vovakirdan/cannon-arcade/internal/config"
	"github.com/vovakirdan/cannon-arcade/internal/core"
)

// Game is the cannon game simulation. Hosts feed the Pointer, call Frame
// once per display refresh and Draw onto their surface.
type Game struct {
	cfg    config.CannonConfig
	assets Assets
	hooks  Hooks

	rng     *core.RNG
	clock   core.FrameClock
	pointer core.Pointer
	palette palette

	width  float64
	height float64
	sepY   float64 // Ground line; the sky is above it
	paused bool

	clouds     *Clouds
	targets    *Targets
	rig        *Rig
	projectile *Projectile
}

// State is a read-only view of the game for hosts and tests.
type State struct {
	Angle      float64
	Pivot      core.Point
	WillFire   bool
	Fired      bool
	Flying     bool
	Collided   bool
	Projectile core.Rect
	SeparatorY float64
	Paused     bool
}

// New creates a game. Call Reset before the first frame.
func New(cfg config.CannonConfig, assets Assets, hooks Hooks) *Game {
	g := &Game{
		cfg:     cfg,
		assets:  assets,
		hooks:   hooks,
		palette: newPalette(cfg.Colors),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// Reset seeds the RNG, sizes the canvas and puts every entity back to its initial state.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = core.NewRNG(rc.Seed)
	g.clock = core.FrameClock{MaxDeltaMs: g.cfg.Loop.MaxDeltaMs}
	g.pointer.Reset()
	g.paused = false

	g.clouds = newClouds(g.cfg.Clouds, g.assets.Cloud)
	g.targets = newTargets(g.cfg, g.assets)
	g.rig = newRig(g.cfg.Cannon, g.cfg.Projectile.Scale, g.assets)
	g.projectile = newProjectile(g.cfg.Projectile, g.assets.Bullet)

	g.Resize(rc.CanvasW, rc.CanvasH)
}

// Resize updates the canvas size and the ground line.
func (g *Game) Resize(w, h float64) {
	g.width, g.height = max(w, 0), max(h, 0)
	g.sepY = g.cfg.Canvas.SeparatorRatio * g.height
}

// Size returns the canvas size.
func (g *Game) Size() (w, h float64) {
	return g.width, g.height
}

// Pointer returns the input tracker hosts write pointer events to.
func (g *Game) Pointer() *core.Pointer {
	return &g.pointer
}

// TogglePause pauses or resumes the simulation.
func (g *Game) TogglePause() {
	g.paused = !g.paused
	// Do not count the paused time as one huge frame.
	g.clock.Reset()
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Frame is the tick-source entry point. nowMs is a monotonic timestamp.
func (g *Game) Frame(nowMs float64) {
	g.Advance(g.clock.Delta(nowMs))
}

// Advance runs one simulation step of deltaMs milliseconds:
// clouds, targets, rig, then projectile. A paused game does not move,
// so an armed shot waits for resume.
func (g *Game) Advance(deltaMs float64) {
	if g.width <= 0 || g.height <= 0 || g.paused {
		return
	}

	g.clouds.Update(deltaMs, g.width, g.height, g.rng)
	g.targets.Update(deltaMs, g.width, g.rng)

	snap := g.rig.Update(deltaMs, g.pointer.State(), g.width, g.sepY)
	if snap.JustFired && g.hooks.OnFire != nil {
		g.hooks.OnFire(snap.Angle)
	}

	bounds := core.NewRect(0, 0, g.width, g.height)
	res := g.projectile.Update(deltaMs, snap, bounds, g.targets, g.rng)
	if res.Hit != nil && g.hooks.OnHit != nil {
		g.hooks.OnHit(*res.Hit)
	}
	if res.Resolved {
		g.rig.Resolve(g.width)
		if g.hooks.OnResolve != nil {
			g.hooks.OnResolve(res.Collided)
		}
	}
}

// Snapshot returns the current state.
func (g *Game) Snapshot() State {
	return State{
		Angle:      g.rig.Angle,
		Pivot:      g.rig.Pivot,
		WillFire:   g.rig.WillFire,
		Fired:      g.rig.Fired,
		Flying:     g.projectile.Flying,
		Collided:   g.projectile.Collided,
		Projectile: g.projectile.Rect(),
		SeparatorY: g.sepY,
		Paused:     g.paused,
	}
}
