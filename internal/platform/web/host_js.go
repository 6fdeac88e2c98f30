//go:build js

package web

import (
	"fmt"
	"math"

	"github.com/gopherjs/gopherjs/js"

	"github.com/vovakirdan/cannon-arcade/internal/config"
	"github.com/vovakirdan/cannon-arcade/internal/core"
	"github.com/vovakirdan/cannon-arcade/internal/games/cannon"
	"github.com/vovakirdan/cannon-arcade/internal/platform"
)

// Options configures the browser host.
type Options struct {
	CanvasID   string // Element id of the canvas
	AssetsPath string // URL prefix for sprite files
	Debug      bool   // Log game events to the console
	Mute       bool
}

// Host drives a cannon game from requestAnimationFrame.
type Host struct {
	game    *cannon.Game
	surface *Surface
	canvas  *js.Object
	clicks  *platform.ClickGate
	config  core.RuntimeConfig
	touchID int
}

// Run attaches the game to the canvas and starts the frame loop.
func Run(cfg config.CannonConfig, rc core.RuntimeConfig, opts Options) error {
	doc := js.Global.Get("document")
	canvas := doc.Call("getElementById", opts.CanvasID)
	if canvas == nil || canvas == js.Undefined {
		return fmt.Errorf("canvas element %q not found", opts.CanvasID)
	}

	var fire *Sound
	if !opts.Mute {
		src, err := fireDataURL()
		if err != nil {
			warn(err.Error())
		} else {
			fire = &Sound{src: src}
		}
	}

	if rc.Seed == 0 {
		rc.Seed = int64(js.Global.Get("Date").Call("now").Float())
	}

	h := &Host{
		canvas:  canvas,
		surface: NewSurface(canvas.Call("getContext", "2d")),
		config:  rc,
		touchID: -1,
	}
	h.fitWindow()

	var hooks cannon.Hooks
	if opts.Debug {
		hooks = consoleHooks()
	}
	h.game = cannon.New(cfg, loadAssets(opts.AssetsPath, fire), hooks)
	h.game.Reset(h.config)
	h.clicks = platform.NewClickGate(h.game.Pointer())

	h.listen()
	info("cannon started, seed", h.config.Seed)
	js.Global.Call("requestAnimationFrame", h.frame)
	return nil
}

// fitWindow sizes the canvas backing store to the window.
func (h *Host) fitWindow() {
	w := js.Global.Get("innerWidth").Float()
	hh := js.Global.Get("innerHeight").Float()
	h.canvas.Set("width", w)
	h.canvas.Set("height", hh)
	h.config.CanvasW, h.config.CanvasH = w, hh
}

func (h *Host) frame(now float64) {
	js.Global.Call("requestAnimationFrame", h.frame)
	h.game.Frame(now)
	h.clicks.Tick(h.game.Paused())
	h.game.Draw(h.surface)
}

func (h *Host) point(clientX, clientY float64) core.Point {
	r := h.canvas.Call("getBoundingClientRect")
	box := clientRect{
		Left:   r.Get("left").Float(),
		Top:    r.Get("top").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
	return toCanvas(clientX, clientY, box, h.config.CanvasW, h.config.CanvasH)
}

func (h *Host) eventPoint(e *js.Object) core.Point {
	return h.point(e.Get("clientX").Float(), e.Get("clientY").Float())
}

// changedTouch returns the tracked finger from a touch event, if present.
func (h *Host) changedTouch(e *js.Object) *js.Object {
	list := e.Get("changedTouches")
	for i := 0; i < list.Length(); i++ {
		t := list.Index(i)
		if h.touchID < 0 || t.Get("identifier").Int() == h.touchID {
			return t
		}
	}
	return nil
}

func (h *Host) listen() {
	win := js.Global

	h.canvas.Call("addEventListener", "mousedown", func(e *js.Object) {
		if e.Get("button").Int() == 0 {
			h.clicks.Press(h.eventPoint(e))
		}
	})
	win.Call("addEventListener", "mousemove", func(e *js.Object) {
		h.clicks.Move(h.eventPoint(e))
	})
	win.Call("addEventListener", "mouseup", func(e *js.Object) {
		if e.Get("button").Int() == 0 {
			h.clicks.Release(h.eventPoint(e))
		}
	})

	h.canvas.Call("addEventListener", "touchstart", func(e *js.Object) {
		e.Call("preventDefault")
		if h.touchID >= 0 {
			return
		}
		t := h.changedTouch(e)
		if t == nil {
			return
		}
		h.touchID = t.Get("identifier").Int()
		h.clicks.Press(h.eventPoint(t))
	})
	h.canvas.Call("addEventListener", "touchmove", func(e *js.Object) {
		e.Call("preventDefault")
		if t := h.changedTouch(e); t != nil && h.touchID >= 0 {
			h.clicks.Move(h.eventPoint(t))
		}
	})
	end := func(e *js.Object) {
		e.Call("preventDefault")
		if t := h.changedTouch(e); t != nil && h.touchID >= 0 {
			h.touchID = -1
			h.clicks.Release(h.eventPoint(t))
		}
	}
	h.canvas.Call("addEventListener", "touchend", end)
	h.canvas.Call("addEventListener", "touchcancel", end)

	win.Call("addEventListener", "keydown", func(e *js.Object) {
		switch e.Get("key").String() {
		case "p", "P", "Escape":
			h.game.TogglePause()
		case "r", "R":
			h.config.Seed = int64(js.Global.Get("Date").Call("now").Float())
			h.game.Reset(h.config)
			h.clicks.Reset()
			info("round restarted, seed", h.config.Seed)
		}
	})

	win.Call("addEventListener", "resize", func() {
		h.fitWindow()
		h.game.Resize(h.config.CanvasW, h.config.CanvasH)
	})
}

func consoleHooks() cannon.Hooks {
	return cannon.Hooks{
		OnFire: func(angle float64) {
			debug("fire, angle", fmt.Sprintf("%.1f°", angle*180/math.Pi))
		},
		OnHit: func(hit cannon.TargetHit) {
			debug("target hit", hit.Index, hit.At.X, hit.At.Y)
		},
		OnResolve: func(collided bool) {
			debug("shot resolved, collided", collided)
		},
	}
}

func info(args ...interface{})  { js.Global.Get("console").Call("info", args...) }
func warn(args ...interface{})  { js.Global.Get("console").Call("warn", args...) }
func debug(args ...interface{}) { js.Global.Get("console").Call("debug", args...) }
