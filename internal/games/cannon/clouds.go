package cannon

import (
	"github.com/vovakirdan/cannon-arcade/internal/config"
	"github.com/vovakirdan/cannon-arcade/internal/core"
)

// Cloud is a drifting background sprite.
type Cloud struct {
	Sprite
	Speed float64 // px/s
}

// Clouds is the fixed pool of background clouds.
type Clouds struct {
	cfg  config.CloudConfig
	pool []Cloud
}

func newClouds(cfg config.CloudConfig, img core.Image) *Clouds {
	c := &Clouds{
		cfg:  cfg,
		pool: make([]Cloud, max(cfg.Count, 0)),
	}
	for i := range c.pool {
		c.pool[i].Sprite = NewSprite(img)
	}
	return c
}

// Update drifts every cloud right, re-rolling any that are unset or past the right edge.
func (c *Clouds) Update(deltaMs, canvasW, canvasH float64, rng *core.RNG) {
	for i := range c.pool {
		cl := &c.pool[i]
		if !cl.Loaded() {
			continue
		}
		if cl.IsUnset() || cl.X > canvasW {
			c.respawn(cl, canvasW, canvasH, rng)
			continue
		}
		cl.X += cl.Speed * deltaMs / 1000
	}
}

func (c *Clouds) respawn(cl *Cloud, canvasW, canvasH float64, rng *core.RNG) {
	cl.FitImage(rng.UniformFloat(c.cfg.Scale.Min, c.cfg.Scale.Max))
	cl.X = rng.UniformFloat(-cl.W/2, canvasW+cl.W/2)
	cl.Y = rng.UniformFloat(0, canvasH/3)
	cl.Speed = rng.UniformFloat(c.cfg.Speed.Min, c.cfg.Speed.Max)
}

// Draw paints every placed cloud.
func (c *Clouds) Draw(surf core.Surface) {
	for i := range c.pool {
		c.pool[i].Draw(surf)
	}
}
