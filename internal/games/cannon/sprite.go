// Package cannon implements the cannon arcade game: aim the barrel with the
// pointer, release to fire, and knock winged balls out of the sky.
package cannon

import (
	"math"

	"github.com/vovakirdan/cannon-arcade/internal/core"
)

// Sprite is a positioned, sized image. A sprite at +Inf on both axes is
// unset and gets placed by its owner on the next update.
type Sprite struct {
	Image core.Image
	X, Y  float64
	W, H  float64
}

// NewSprite creates an unset sprite for img.
func NewSprite(img core.Image) Sprite {
	s := Sprite{Image: img}
	s.Unset()
	return s
}

// Unset moves the sprite to the sentinel position.
func (s *Sprite) Unset() {
	s.X, s.Y = math.Inf(1), math.Inf(1)
}

// IsUnset reports whether the sprite needs placing.
func (s *Sprite) IsUnset() bool {
	return math.IsInf(s.X, 1) || math.IsInf(s.Y, 1)
}

// Loaded reports whether the sprite's image is ready to draw.
func (s *Sprite) Loaded() bool {
	return core.ImageLoaded(s.Image)
}

// FitImage sizes the sprite to its image times scale. Unloaded images give zero size.
func (s *Sprite) FitImage(scale float64) {
	w, h := core.ImageSize(s.Image)
	s.W, s.H = w*scale, h*scale
}

// Rect returns the sprite bounds.
func (s *Sprite) Rect() core.Rect {
	return core.NewRect(s.X, s.Y, s.W, s.H)
}

// Center returns the sprite center.
func (s *Sprite) Center() core.Point {
	return s.Rect().Center()
}

// Draw blits the sprite. Unloaded or unset sprites are skipped.
func (s *Sprite) Draw(surf core.Surface) {
	if !s.Loaded() || s.IsUnset() {
		return
	}
	surf.DrawImage(s.Image, s.X, s.Y, s.W, s.H)
}

// DrawRotated blits the sprite rotated by rad around its own center.
func (s *Sprite) DrawRotated(surf core.Surface, rad float64) {
	if !s.Loaded() || s.IsUnset() {
		return
	}
	c := s.Center()
	surf.Save()
	surf.Translate(c.X, c.Y)
	surf.Rotate(rad)
	surf.DrawImage(s.Image, -s.W/2, -s.H/2, s.W, s.H)
	surf.Restore()
}
