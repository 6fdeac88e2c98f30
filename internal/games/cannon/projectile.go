package cannon

import (
	"math"

	"github.com/vovakirdan/cannon-arcade/internal/config"
	"github.com/vovakirdan/cannon-arcade/internal/core"
)

// Projectile is the single cannon ball. At rest it sits in the barrel;
// once fired it travels in a straight line and spins until it leaves the
// canvas or hits a target.
type Projectile struct {
	Sprite
	cfg config.ProjectileConfig

	VX, VY  float64 // Unit direction of travel
	Spin    float64 // Roll angle in radians
	SpinDir float64

	Flying   bool
	Collided bool
}

// ProjectileResult reports what happened to the projectile during one tick.
type ProjectileResult struct {
	Hit      *TargetHit
	Resolved bool // The shot ended this tick
	Collided bool // The ended shot had hit something
}

func newProjectile(cfg config.ProjectileConfig, img core.Image) *Projectile {
	return &Projectile{
		Sprite: Sprite{Image: img},
		cfg:    cfg,
	}
}

// Update advances the projectile using the rig snapshot for this tick.
func (p *Projectile) Update(deltaMs float64, rig RigSnapshot, bounds core.Rect, field *Targets, rng *core.RNG) ProjectileResult {
	p.FitImage(p.cfg.Scale)

	if !rig.Fired {
		p.rest(rig.Home)
		p.Collided = false
		return ProjectileResult{}
	}

	if rig.JustFired {
		p.launch(rig)
	}

	if p.Rect().Intersects(bounds) && !p.Collided {
		step := p.cfg.Speed * deltaMs / 1000
		p.X += p.VX * step
		p.Y += p.VY * step
		p.Spin += p.cfg.SpinSpeed() * deltaMs / 1000 * p.SpinDir

		if i := field.HitTest(core.Point{X: p.X, Y: p.Y}); i >= 0 {
			p.Collided = true
			hit := field.Strike(i, bounds.W, bounds.H, rng)
			return ProjectileResult{Hit: &hit}
		}
		return ProjectileResult{}
	}

	collided := p.Collided
	p.Flying = false
	p.Collided = false
	p.rest(rig.Home)
	return ProjectileResult{Resolved: true, Collided: collided}
}

// launch converts the barrel rest position to canvas space and sets the heading.
func (p *Projectile) launch(rig RigSnapshot) {
	c := core.RotateAround(rig.Home.Center(), rig.Pivot, rig.Angle)
	p.X = c.X - p.W/2
	p.Y = c.Y - p.H/2
	p.VX, p.VY = math.Sin(rig.Angle), -math.Cos(rig.Angle)
	p.Spin = rig.Angle
	p.SpinDir = sign(rig.Angle)
	p.Flying = true
	p.Collided = false
}

func (p *Projectile) rest(home core.Rect) {
	p.X, p.Y = home.X, home.Y
	p.Spin = 0
	p.Flying = false
}

// sign returns -1, 0 or 1. A straight-up shot does not roll.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
