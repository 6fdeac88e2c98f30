package platform

import (
	"github.com/vovakirdan/cannon-arcade/internal/core"
	"github.com/vovakirdan/cannon-arcade/internal/games/cannon"
)

// Shape is a filled circle (R > 0) or rectangle in sprite pixels.
type Shape struct {
	X, Y, W, H float64
	R          float64
	Color      core.RGB
}

// Sprite is a drawn stand-in for an image file <Name>.png.
type Sprite struct {
	Name   string
	W, H   int
	Shapes []Shape
}

func disc(x, y, r float64, c core.RGB) Shape { return Shape{X: x, Y: y, R: r, Color: c} }
func box(x, y, w, h float64, c core.RGB) Shape {
	return Shape{X: x, Y: y, W: w, H: h, Color: c}
}

var (
	cloudWhite = core.RGB{R: 0xf5, G: 0xf8, B: 0xff}
	wingWhite  = core.RGB{R: 0xf1, G: 0xfa, B: 0xee}
	ballRed    = core.RGB{R: 0xe6, G: 0x39, B: 0x46}
	gold       = core.RGB{R: 0xff, G: 0xd1, B: 0x66}
	wood       = core.RGB{R: 0x8d, G: 0x55, B: 0x24}
)

// Sprites are the default images hosts draw when no file is supplied.
var Sprites = []Sprite{
	{"cloud", 120, 60, []Shape{
		disc(30, 38, 20, cloudWhite),
		disc(60, 28, 26, cloudWhite),
		disc(90, 38, 20, cloudWhite),
		box(30, 38, 60, 20, cloudWhite),
	}},
	{"ball", 60, 60, []Shape{
		disc(30, 30, 29, ballRed),
		disc(22, 22, 8, core.RGB{R: 0xff, G: 0x8a, B: 0x93}),
	}},
	{"wing_left", 40, 40, []Shape{
		box(4, 14, 36, 12, wingWhite),
		disc(10, 20, 9, wingWhite),
	}},
	{"wing_right", 40, 40, []Shape{
		box(0, 14, 36, 12, wingWhite),
		disc(30, 20, 9, wingWhite),
	}},
	{"reward", 60, 40, []Shape{
		box(0, 0, 60, 40, wood),
		box(4, 4, 52, 32, gold),
		box(26, 0, 8, 40, ballRed),
	}},
	// Cannon parts and the bullet are drawn at twice their on-screen size.
	{"cannon_back", 80, 200, []Shape{
		box(0, 0, 80, 200, core.RGB{R: 0x2b, G: 0x2d, B: 0x42}),
	}},
	{"cannon_front", 80, 200, []Shape{
		box(20, 0, 40, 200, core.RGB{R: 0x5c, G: 0x67, B: 0x7d}),
		box(0, 0, 80, 16, core.RGB{R: 0x8d, G: 0x99, B: 0xae}),
	}},
	{"wheel", 120, 120, []Shape{
		disc(60, 60, 58, wood),
		disc(60, 60, 16, core.RGB{R: 0x3e, G: 0x25, B: 0x10}),
	}},
	{"flash", 128, 64, []Shape{
		disc(64, 36, 28, core.RGB{R: 0xff, G: 0x9f, B: 0x1c}),
		disc(36, 44, 18, gold),
		disc(92, 44, 18, gold),
	}},
	{"bullet", 40, 40, []Shape{
		disc(20, 20, 18, core.RGB{R: 0x11, G: 0x11, B: 0x11}),
	}},
}

// SpriteAssets builds cannon assets by calling load with each sprite.
func SpriteAssets(load func(Sprite) core.Image) cannon.Assets {
	images := make(map[string]core.Image, len(Sprites))
	for _, s := range Sprites {
		images[s.Name] = load(s)
	}
	return cannon.Assets{
		Cloud:       images["cloud"],
		Ball:        images["ball"],
		WingLeft:    images["wing_left"],
		WingRight:   images["wing_right"],
		Reward:      images["reward"],
		CannonBack:  images["cannon_back"],
		CannonFront: images["cannon_front"],
		Wheel:       images["wheel"],
		Flash:       images["flash"],
		Bullet:      images["bullet"],
	}
}
