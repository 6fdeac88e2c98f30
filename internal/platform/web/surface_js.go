//go:build js

package web

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/vovakirdan/cannon-arcade/internal/core"
)

// Surface implements core.Surface on a CanvasRenderingContext2D.
type Surface struct {
	ctx *js.Object
}

// NewSurface wraps a 2D context.
func NewSurface(ctx *js.Object) *Surface {
	return &Surface{ctx: ctx}
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	s.ctx.Call("clearRect", x, y, w, h)
}

func (s *Surface) FillRect(x, y, w, h float64, c core.RGB) {
	s.ctx.Set("fillStyle", cssColor(c))
	s.ctx.Call("fillRect", x, y, w, h)
}

func (s *Surface) FillGradient(x, y, w, h float64, top, bottom core.RGB) {
	g := s.ctx.Call("createLinearGradient", 0, y, 0, y+h)
	g.Call("addColorStop", 0, cssColor(top))
	g.Call("addColorStop", 1, cssColor(bottom))
	s.ctx.Set("fillStyle", g)
	s.ctx.Call("fillRect", x, y, w, h)
}

// DrawImage skips images that are not loaded or come from another host.
func (s *Surface) DrawImage(img core.Image, x, y, w, h float64) {
	im, ok := img.(*Image)
	if !ok || !im.Loaded() {
		return
	}
	s.ctx.Call("drawImage", im.el, x, y, w, h)
}

func (s *Surface) Save()                  { s.ctx.Call("save") }
func (s *Surface) Restore()               { s.ctx.Call("restore") }
func (s *Surface) Translate(x, y float64) { s.ctx.Call("translate", x, y) }
func (s *Surface) Rotate(rad float64)     { s.ctx.Call("rotate", rad) }
func (s *Surface) SetAlpha(a float64)     { s.ctx.Set("globalAlpha", core.ClampF(a, 0, 1)) }
