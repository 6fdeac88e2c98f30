package cannon

import (
	"fmt"

	"github.com/vovakirdan/cannon-arcade/internal/config"
	"github.com/vovakirdan/cannon-arcade/internal/core"
)

type fakeImage struct {
	name   string
	w, h   float64
	loaded bool
}

func (f *fakeImage) Loaded() bool             { return f.loaded }
func (f *fakeImage) Size() (float64, float64) { return f.w, f.h }

type countingSound struct {
	plays int
}

func (s *countingSound) Play() { s.plays++ }

// recordingSurface logs every call so tests can check draw order.
type recordingSurface struct {
	ops []string
}

func (r *recordingSurface) ClearRect(x, y, w, h float64) { r.ops = append(r.ops, "clear") }
func (r *recordingSurface) FillRect(x, y, w, h float64, c core.RGB) {
	r.ops = append(r.ops, "fill")
}
func (r *recordingSurface) FillGradient(x, y, w, h float64, top, bottom core.RGB) {
	r.ops = append(r.ops, "gradient")
}
func (r *recordingSurface) DrawImage(img core.Image, x, y, w, h float64) {
	name := "?"
	if f, ok := img.(*fakeImage); ok {
		name = f.name
	}
	r.ops = append(r.ops, "image:"+name)
}
func (r *recordingSurface) Save()                  { r.ops = append(r.ops, "save") }
func (r *recordingSurface) Restore()               { r.ops = append(r.ops, "restore") }
func (r *recordingSurface) Translate(x, y float64) { r.ops = append(r.ops, "translate") }
func (r *recordingSurface) Rotate(rad float64)     { r.ops = append(r.ops, fmt.Sprintf("rotate:%.3f", rad)) }
func (r *recordingSurface) SetAlpha(a float64)     { r.ops = append(r.ops, fmt.Sprintf("alpha:%.2f", a)) }

func (r *recordingSurface) count(op string) int {
	n := 0
	for _, o := range r.ops {
		if o == op {
			n++
		}
	}
	return n
}

func (r *recordingSurface) index(op string) int {
	for i, o := range r.ops {
		if o == op {
			return i
		}
	}
	return -1
}

func img(name string, w, h float64) *fakeImage {
	return &fakeImage{name: name, w: w, h: h, loaded: true}
}

func testAssets(sound core.Sound) Assets {
	return Assets{
		Cloud:       img("cloud", 100, 60),
		Ball:        img("ball", 60, 60),
		WingLeft:    img("wing-left", 40, 40),
		WingRight:   img("wing-right", 40, 40),
		Reward:      img("reward", 50, 50),
		CannonBack:  img("back", 80, 200),
		CannonFront: img("front", 80, 200),
		Wheel:       img("wheel", 120, 120),
		Flash:       img("flash", 128, 64),
		Bullet:      img("bullet", 40, 40),
		Fire:        sound,
	}
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{CanvasW: 800, CanvasH: 600, TickRate: 60, Seed: seed}
}

// newTestGame builds an 800x600 game. mutate may adjust the config first.
// At the default half scale the rig images lay out as a 40x100 barrel,
// a 60px wheel and a 20px bullet.
func newTestGame(seed int64, sound core.Sound, mutate func(*config.CannonConfig)) *Game {
	cfg := config.DefaultCannonConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := New(cfg, testAssets(sound), Hooks{})
	g.Reset(testRuntime(seed))
	return g
}

func noTargets(cfg *config.CannonConfig) {
	cfg.Targets.Count = 0
}

// fireAt runs the press, release, fire sequence at p and returns after the firing tick.
func fireAt(g *Game, p core.Point) {
	g.Pointer().Press(p.X, p.Y)
	g.Advance(16)
	g.Pointer().Release(p.X, p.Y)
	g.Advance(16)
	g.Advance(16)
}
