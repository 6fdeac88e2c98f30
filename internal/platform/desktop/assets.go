package desktop

import (
	"errors"
	"fmt"
	"image/color"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	sfx "github.com/vovakirdan/cannon-arcade/internal/audio"
	"github.com/vovakirdan/cannon-arcade/internal/core"
	"github.com/vovakirdan/cannon-arcade/internal/games/cannon"
	"github.com/vovakirdan/cannon-arcade/internal/platform"
)

// Image is an ebiten image handle. A nil image reports not loaded.
type Image struct {
	img *ebiten.Image
}

// Loaded reports whether the image is ready.
func (i *Image) Loaded() bool {
	return i != nil && i.img != nil
}

// Size returns the image size in pixels.
func (i *Image) Size() (float64, float64) {
	if !i.Loaded() {
		return 0, 0
	}
	b := i.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// LoadAssets builds the sprite set. When dir is set, <dir>/<name>.png
// replaces the drawn sprite of the same name; missing files keep the
// drawn one.
func LoadAssets(dir string, fire *Sound, logger *log.Logger) cannon.Assets {
	assets := platform.SpriteAssets(func(s platform.Sprite) core.Image {
		if dir == "" {
			return drawSprite(s)
		}
		img, err := loadPNG(filepath.Join(dir, s.Name+".png"))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			logger.Debug("sprite file not found, using drawn sprite", "sprite", s.Name)
		case err != nil:
			logger.Warn("could not load sprite", "sprite", s.Name, "error", err)
		default:
			return img
		}
		return drawSprite(s)
	})
	if fire != nil {
		assets.Fire = fire
	}
	return assets
}

func loadPNG(path string) (*Image, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return &Image{img: img}, nil
}

// drawSprite renders a sprite recipe with vector shapes.
func drawSprite(s platform.Sprite) *Image {
	img := ebiten.NewImage(s.W, s.H)
	for _, sh := range s.Shapes {
		c := color.RGBA{R: sh.Color.R, G: sh.Color.G, B: sh.Color.B, A: 0xff}
		if sh.R > 0 {
			vector.DrawFilledCircle(img, float32(sh.X), float32(sh.Y), float32(sh.R), c, true)
			continue
		}
		vector.DrawFilledRect(img, float32(sh.X), float32(sh.Y), float32(sh.W), float32(sh.H), c, false)
	}
	return &Image{img: img}
}

// Sound plays a PCM clip. Each Play starts a new player so shots overlap.
type Sound struct {
	ctx *audio.Context
	pcm []byte
}

// NewFireSound renders the synthesized fire effect for ctx.
// The context must run at the synth sample rate.
func NewFireSound(ctx *audio.Context) *Sound {
	return &Sound{ctx: ctx, pcm: sfx.PCM(sfx.FireSound(sfx.SampleRate))}
}

// Play starts the clip.
func (s *Sound) Play() {
	if s == nil || s.ctx == nil {
		return
	}
	s.ctx.NewPlayerFromBytes(s.pcm).Play()
}
