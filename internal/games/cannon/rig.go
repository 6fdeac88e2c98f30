package cannon

import (
	"math"

	"github.com/vovakirdan/cannon-arcade/internal/anim"
	"github.com/vovakirdan/cannon-arcade/internal/config"
	"github.com/vovakirdan/cannon-arcade/internal/core"
)

// RigSnapshot is the read-only view of the cannon the projectile needs each tick.
type RigSnapshot struct {
	Angle     float64
	Pivot     core.Point
	Home      core.Rect // Projectile rest position in unrotated rig space
	Fired     bool
	JustFired bool // Fired during this tick
}

// Rig is the cannon: barrel back and front, wheel and muzzle flash.
// It turns pointer drags into an aim angle and arms, fires and resolves shots.
//
// States: idle -> aiming (pressed above the pivot) -> armed (released)
// -> fired (until the projectile resolves) -> idle.
type Rig struct {
	cfg         config.RigConfig
	limit       float64
	sound       core.Sound
	bullet      core.Image
	bulletScale float64

	Back  Sprite
	Front Sprite
	Wheel Sprite
	Flash Sprite

	Angle float64
	Pivot core.Point
	Home  core.Rect

	WillFire bool
	Fired    bool

	aiming     bool // Last pressed sample was above the pivot
	wasPressed bool

	flashAlpha  anim.Animation
	flashOffset anim.Animation
	flashScale  anim.Animation
}

func newRig(cfg config.RigConfig, bulletScale float64, assets Assets) *Rig {
	fadeMs := cfg.FlashFadeSec * 1000
	return &Rig{
		cfg:         cfg,
		limit:       cfg.AngleLimit(),
		sound:       assets.Fire,
		bullet:      assets.Bullet,
		bulletScale: bulletScale,
		Back:        Sprite{Image: assets.CannonBack},
		Front:       Sprite{Image: assets.CannonFront},
		Wheel:       Sprite{Image: assets.Wheel},
		Flash:       Sprite{Image: assets.Flash},
		flashAlpha:  anim.NewFade(1, 0, fadeMs),
		flashOffset: anim.NewOffset(0, -cfg.FlashRisePx, fadeMs),
		flashScale:  anim.NewScale(1, cfg.FlashScaleEnd, fadeMs),
	}
}

// AimAngle returns the barrel angle pointing from pivot toward p, clamped to ±limit.
// Zero points straight up and positive angles lean right. A pointer below
// the pivot is mirrored above it.
func AimAngle(p, pivot core.Point, limit float64) float64 {
	dx := p.X - pivot.X
	dy := -math.Abs(p.Y - pivot.Y)
	if dx == 0 {
		return 0
	}
	return core.ClampF(-math.Atan(dx/dy), -limit, limit)
}

// layout recenters the rig on the canvas and sizes every part from its
// image at the configured scale.
func (r *Rig) layout(canvasW, sepY float64) {
	r.Wheel.FitImage(r.cfg.Scale)
	r.Wheel.X = canvasW/2 - r.Wheel.W/2
	r.Wheel.Y = sepY - r.Wheel.H
	r.Pivot = r.Wheel.Center()

	r.Back.FitImage(r.cfg.Scale)
	r.Back.X = canvasW/2 - r.Back.W/2
	r.Back.Y = r.Wheel.Y - r.Back.H + r.cfg.OverlapPx

	r.Front.FitImage(r.cfg.Scale)
	r.Front.X = canvasW/2 - r.Front.W/2
	r.Front.Y = r.Wheel.Y - r.Front.H + r.cfg.OverlapPx

	bw, bh := core.ImageSize(r.bullet)
	bw, bh = bw*r.bulletScale, bh*r.bulletScale
	r.Home = core.NewRect(canvasW/2-bw/2, r.Back.Y-r.cfg.MuzzleGapPx, bw, bh)

	r.layoutFlash(canvasW)
}

// layoutFlash sizes the flash to a fraction of the barrel width keeping the
// image ratio, then applies the running offset and scale.
func (r *Rig) layoutFlash(canvasW float64) {
	fw, fh := core.ImageSize(r.Flash.Image)
	baseW, baseH := r.Back.W*r.cfg.FlashWidthRatio, 0.0
	if fw > 0 {
		baseH = baseW * fh / fw
	}
	scale := r.flashScale.Value
	r.Flash.W, r.Flash.H = baseW*scale, baseH*scale
	r.Flash.X = canvasW/2 - r.Flash.W/2
	r.Flash.Y = r.Home.Y - r.cfg.FlashGapPx + r.flashOffset.Value
}

// Update runs one tick of the aim and fire state machine and returns the
// snapshot the projectile reads.
func (r *Rig) Update(deltaMs float64, ptr core.PointerState, canvasW, sepY float64) RigSnapshot {
	r.layout(canvasW, sepY)

	justFired := false
	if r.WillFire && !ptr.Pressed && !r.Fired {
		r.fire()
		justFired = true
	}

	switch {
	case ptr.Pressed && ptr.Current.Y <= r.Pivot.Y:
		r.Angle = AimAngle(ptr.Current, r.Pivot, r.limit)
		r.aiming = true
	case ptr.Pressed:
		r.aiming = false
	case r.wasPressed:
		if r.aiming && !r.Fired {
			r.WillFire = true
		}
		r.aiming = false
	}
	r.wasPressed = ptr.Pressed

	if r.Fired {
		r.flashAlpha.Advance(deltaMs)
		r.flashOffset.Advance(deltaMs)
		r.flashScale.Advance(deltaMs)
		r.layoutFlash(canvasW)
	}

	return RigSnapshot{
		Angle:     r.Angle,
		Pivot:     r.Pivot,
		Home:      r.Home,
		Fired:     r.Fired,
		JustFired: justFired,
	}
}

func (r *Rig) fire() {
	r.WillFire = false
	r.Fired = true
	if r.sound != nil {
		r.sound.Play()
	}
	r.flashAlpha.Start()
	r.flashOffset.Start()
	r.flashScale.Start()
}

// Resolve returns the rig to idle after the projectile leaves play or hits.
func (r *Rig) Resolve(canvasW float64) {
	r.Fired = false
	r.flashAlpha.Reset()
	r.flashOffset.Reset()
	r.flashScale.Reset()
	r.layoutFlash(canvasW)
}

// FlashAlpha returns the current muzzle flash opacity.
func (r *Rig) FlashAlpha() float64 {
	return r.flashAlpha.Value
}
