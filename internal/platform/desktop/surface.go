// Package desktop runs the cannon game in a window with Ebitengine.
package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/cannon-arcade/internal/core"
)

type surfaceState struct {
	tf    core.Transform
	alpha float64
}

// Surface implements core.Surface on an ebiten image. Fills are drawn
// with a 1x1 white image so they follow the current transform.
type Surface struct {
	dst   *ebiten.Image
	white *ebiten.Image

	tf    core.Transform
	alpha float64
	stack []surfaceState
}

// NewSurface creates a surface. Call Begin every frame with the target image.
func NewSurface() *Surface {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Surface{white: white, tf: core.Identity(), alpha: 1}
}

// Begin targets dst and resets the transform, alpha and state stack.
func (s *Surface) Begin(dst *ebiten.Image) {
	s.dst = dst
	s.tf = core.Identity()
	s.alpha = 1
	s.stack = s.stack[:0]
}

// geoM converts a core transform to an ebiten GeoM.
func geoM(t core.Transform) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, t.A)
	g.SetElement(0, 1, t.C)
	g.SetElement(0, 2, t.E)
	g.SetElement(1, 0, t.B)
	g.SetElement(1, 1, t.D)
	g.SetElement(1, 2, t.F)
	return g
}

// rectGeoM maps the unit square, scaled by (sx, sy), onto (x, y, w, h) under t.
func rectGeoM(t core.Transform, sx, sy, x, y, w, h float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(w/sx, h/sy)
	g.Translate(x, y)
	g.Concat(geoM(t))
	return g
}

func (s *Surface) fill(x, y, w, h float64, c core.RGB, blend ebiten.Blend) {
	if s.dst == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = rectGeoM(s.tf, 1, 1, x, y, w, h)
	op.ColorScale.ScaleWithColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
	op.ColorScale.ScaleAlpha(float32(s.alpha))
	op.Blend = blend
	s.dst.DrawImage(s.white, op)
}

// ClearRect makes the covered pixels transparent.
func (s *Surface) ClearRect(x, y, w, h float64) {
	s.fill(x, y, w, h, core.ColorBlack, ebiten.BlendClear)
}

// FillRect paints a solid rectangle.
func (s *Surface) FillRect(x, y, w, h float64, c core.RGB) {
	s.fill(x, y, w, h, c, ebiten.BlendSourceOver)
}

// FillGradient paints a vertical gradient with per-vertex colors.
func (s *Surface) FillGradient(x, y, w, h float64, top, bottom core.RGB) {
	if s.dst == nil || w <= 0 || h <= 0 {
		return
	}
	vs := gradientVertices(s.tf, s.alpha, x, y, w, h, top, bottom)
	is := []uint16{0, 1, 2, 1, 3, 2}
	s.dst.DrawTriangles(vs[:], is, s.white, &ebiten.DrawTrianglesOptions{})
}

// gradientVertices returns the four corners top-left, top-right,
// bottom-left, bottom-right with straight-alpha colors.
func gradientVertices(t core.Transform, alpha, x, y, w, h float64, top, bottom core.RGB) [4]ebiten.Vertex {
	corners := [4]core.Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x, Y: y + h}, {X: x + w, Y: y + h}}
	var vs [4]ebiten.Vertex
	for i, p := range corners {
		c := top
		if i >= 2 {
			c = bottom
		}
		d := t.Apply(p)
		a := float32(alpha)
		vs[i] = ebiten.Vertex{
			DstX:   float32(d.X),
			DstY:   float32(d.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: float32(c.R) / 0xff,
			ColorG: float32(c.G) / 0xff,
			ColorB: float32(c.B) / 0xff,
			ColorA: a,
		}
	}
	return vs
}

// DrawImage draws img stretched to (x, y, w, h). Images from other
// hosts and unloaded images are skipped.
func (s *Surface) DrawImage(img core.Image, x, y, w, h float64) {
	im, ok := img.(*Image)
	if s.dst == nil || !ok || !im.Loaded() || w <= 0 || h <= 0 {
		return
	}
	iw, ih := im.Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM = rectGeoM(s.tf, iw, ih, x, y, w, h)
	op.ColorScale.ScaleAlpha(float32(s.alpha))
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(im.img, op)
}

// Save pushes the transform and alpha.
func (s *Surface) Save() {
	s.stack = append(s.stack, surfaceState{tf: s.tf, alpha: s.alpha})
}

// Restore pops the transform and alpha. Unbalanced calls are ignored.
func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	s.tf, s.alpha = top.tf, top.alpha
}

func (s *Surface) Translate(x, y float64) { s.tf = s.tf.Translate(x, y) }
func (s *Surface) Rotate(rad float64)     { s.tf = s.tf.Rotate(rad) }
func (s *Surface) SetAlpha(a float64)     { s.alpha = core.ClampF(a, 0, 1) }
