//go:build js

package web

import (
	"math"

	"github.com/gopherjs/gopherjs/js"

	"github.com/vovakirdan/cannon-arcade/internal/core"
	"github.com/vovakirdan/cannon-arcade/internal/games/cannon"
	"github.com/vovakirdan/cannon-arcade/internal/platform"
)

// Image is an <img> or offscreen <canvas>. Loaded turns true once the
// browser has decoded it.
type Image struct {
	el     *js.Object
	loaded bool
}

func (i *Image) Loaded() bool {
	return i != nil && i.loaded
}

func (i *Image) Size() (float64, float64) {
	if !i.Loaded() {
		return 0, 0
	}
	return i.el.Get("width").Float(), i.el.Get("height").Float()
}

// loadImage starts fetching src. If the fetch fails the drawn sprite
// from fallback is used instead.
func loadImage(src string, fallback func() *js.Object) *Image {
	img := &Image{}
	el := js.Global.Get("Image").New()
	el.Set("onload", func() {
		img.loaded = true
	})
	el.Set("onerror", func() {
		warn("sprite not found, using drawn sprite:", src)
		img.el = fallback()
		img.loaded = true
	})
	img.el = el
	el.Set("src", src)
	return img
}

// Sound plays a clip through a fresh <audio> element per call so shots overlap.
type Sound struct {
	src string
}

func (s *Sound) Play() {
	if s == nil || s.src == "" {
		return
	}
	p := js.Global.Get("Audio").New(s.src).Call("play")
	if p != nil && p != js.Undefined {
		// Autoplay may be refused until the first user gesture.
		p.Call("catch", func(*js.Object) {})
	}
}

// renderToCanvas draws a sprite on an offscreen canvas.
func renderToCanvas(width, height int, draw func(ctx *js.Object)) *js.Object {
	canvas := js.Global.Get("document").Call("createElement", "canvas")
	canvas.Set("width", width)
	canvas.Set("height", height)
	draw(canvas.Call("getContext", "2d"))
	return canvas
}

// drawSprite renders a sprite recipe on an offscreen canvas.
func drawSprite(s platform.Sprite) *js.Object {
	return renderToCanvas(s.W, s.H, func(ctx *js.Object) {
		for _, sh := range s.Shapes {
			ctx.Set("fillStyle", cssColor(sh.Color))
			if sh.R > 0 {
				ctx.Call("beginPath")
				ctx.Call("arc", sh.X, sh.Y, sh.R, 0, 2*math.Pi)
				ctx.Call("fill")
				continue
			}
			ctx.Call("fillRect", sh.X, sh.Y, sh.W, sh.H)
		}
	})
}

// loadAssets requests <base>/<name>.png for every sprite.
func loadAssets(base string, fire *Sound) cannon.Assets {
	assets := platform.SpriteAssets(func(s platform.Sprite) core.Image {
		return loadImage(base+"/"+s.Name+".png", func() *js.Object { return drawSprite(s) })
	})
	if fire != nil {
		assets.Fire = fire
	}
	return assets
}
