package cannon

import (
	"github.com/vovakirdan/cannon-arcade/internal/config"
	"github.com/vovakirdan/cannon-arcade/internal/core"
)

type palette struct {
	skyTop    core.RGB
	skyBottom core.RGB
	ground    core.RGB
}

// newPalette parses the configured colors, keeping the built-in color for any bad entry.
func newPalette(cfg config.ColorConfig) palette {
	p := palette{skyTop: core.ColorSky, skyBottom: core.ColorWhite, ground: core.ColorGround}
	if c, err := core.ParseHex(cfg.SkyTop); err == nil {
		p.skyTop = c
	}
	if c, err := core.ParseHex(cfg.SkyBottom); err == nil {
		p.skyBottom = c
	}
	if c, err := core.ParseHex(cfg.Ground); err == nil {
		p.ground = c
	}
	return p
}

// Draw renders the scene back to front: sky, clouds, ground, targets, cannon, projectile.
// The sky fills the canvas and the ground is a band across it.
func (g *Game) Draw(surf core.Surface) {
	if surf == nil || g.width <= 0 || g.height <= 0 {
		return
	}

	surf.ClearRect(0, 0, g.width, g.height)
	surf.FillGradient(0, 0, g.width, g.height, g.palette.skyTop, g.palette.skyBottom)
	g.clouds.Draw(surf)
	top, bottom := g.groundBand()
	surf.FillRect(0, top, g.width, bottom-top, g.palette.ground)

	g.targets.Draw(surf)
	g.drawRig(surf)
}

// groundBand returns the top and bottom of the painted ground.
func (g *Game) groundBand() (float64, float64) {
	c := g.cfg.Canvas
	return c.GroundTopRatio * g.height, c.GroundBottomRatio * g.height
}

// drawRig draws the barrel rotated about the wheel. The resting projectile
// and the flash ride inside the barrel transform; a flying projectile is
// drawn in canvas space with its own spin.
func (g *Game) drawRig(surf core.Surface) {
	r, p := g.rig, g.projectile

	surf.Save()
	surf.Translate(r.Pivot.X, r.Pivot.Y)
	surf.Rotate(r.Angle)
	surf.Translate(-r.Pivot.X, -r.Pivot.Y)

	r.Back.Draw(surf)
	if !r.Fired {
		p.Draw(surf)
	}
	r.Front.Draw(surf)

	if r.Fired && r.FlashAlpha() > 0 {
		surf.Save()
		surf.SetAlpha(r.FlashAlpha())
		r.Flash.Draw(surf)
		surf.Restore()
	}
	surf.Restore()

	r.Wheel.Draw(surf)

	if r.Fired && p.Flying {
		p.DrawRotated(surf, p.Spin)
	}
}
