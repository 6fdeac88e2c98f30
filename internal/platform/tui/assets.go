package tui

import (
	"github.com/vovakirdan/cannon-arcade/internal/core"
	"github.com/vovakirdan/cannon-arcade/internal/games/cannon"
)

// Terminal cell size in canvas pixels. Cells are about twice as tall as wide.
const (
	CellW = 10.0
	CellH = 20.0
)

// glyph is an image that the raster draws as a single colored rune.
type glyph struct {
	r    rune
	fg   core.RGB
	w, h float64
}

func (g glyph) Loaded() bool             { return true }
func (g glyph) Size() (float64, float64) { return g.w, g.h }
func (g glyph) Glyph() (rune, core.RGB)  { return g.r, g.fg }

// Assets returns the glyph sprite set sized for terminal cells. Cannon
// parts and the bullet are twice their on-screen size.
func Assets(fire core.Sound) cannon.Assets {
	return cannon.Assets{
		Cloud:       glyph{'░', core.RGB{R: 0xf5, G: 0xf8, B: 0xff}, 120, 40},
		Ball:        glyph{'●', core.RGB{R: 0xe6, G: 0x39, B: 0x46}, 60, 60},
		WingLeft:    glyph{'◀', core.RGB{R: 0xf1, G: 0xfa, B: 0xee}, 40, 40},
		WingRight:   glyph{'▶', core.RGB{R: 0xf1, G: 0xfa, B: 0xee}, 40, 40},
		Reward:      glyph{'$', core.RGB{R: 0xff, G: 0xd1, B: 0x66}, 60, 40},
		CannonBack:  glyph{'█', core.RGB{R: 0x2b, G: 0x2d, B: 0x42}, 80, 200},
		CannonFront: glyph{'▓', core.RGB{R: 0x5c, G: 0x67, B: 0x7d}, 40, 200},
		Wheel:       glyph{'◉', core.RGB{R: 0x8d, G: 0x55, B: 0x24}, 120, 120},
		Flash:       glyph{'✶', core.RGB{R: 0xff, G: 0x9f, B: 0x1c}, 80, 40},
		Bullet:      glyph{'●', core.RGB{R: 0x11, G: 0x11, B: 0x11}, 40, 40},
		Fire:        fire,
	}
}
