package core

import "math"

// Runes used when an image is drawn with partial alpha.
const (
	faintRune = '·'
	blockRune = '█'
)

type rasterState struct {
	tf    Transform
	alpha float64
}

// Raster is a Surface that samples the scene onto a Screen.
// Each cell covers cellW x cellH canvas pixels and takes the color of
// whatever covers the pixel at its center.
type Raster struct {
	screen *Screen
	cellW  float64
	cellH  float64

	tf    Transform
	alpha float64
	stack []rasterState
}

// NewRaster creates a raster drawing onto s.
func NewRaster(s *Screen, cellW, cellH float64) *Raster {
	r := &Raster{
		screen: s,
		cellW:  cellW,
		cellH:  cellH,
	}
	r.Begin()
	return r
}

// Begin resets the transform, alpha and state stack for a new frame.
func (r *Raster) Begin() {
	r.tf = Identity()
	r.alpha = 1
	r.stack = r.stack[:0]
}

// CanvasSize returns the canvas size in pixels covered by the screen.
func (r *Raster) CanvasSize() (w, h float64) {
	return float64(r.screen.Width()) * r.cellW, float64(r.screen.Height()) * r.cellH
}

// ClearRect resets covered cells to black spaces.
func (r *Raster) ClearRect(x, y, w, h float64) {
	r.cover(x, y, w, h, func(cx, cy int, _ Point) {
		r.screen.SetCell(cx, cy, Cell{Rune: ' ', Fg: ColorWhite, Bg: ColorBlack})
	})
}

// FillRect paints covered cells with c.
func (r *Raster) FillRect(x, y, w, h float64, c RGB) {
	r.cover(x, y, w, h, func(cx, cy int, _ Point) {
		r.paint(cx, cy, c)
	})
}

// FillGradient paints covered cells with a vertical gradient.
func (r *Raster) FillGradient(x, y, w, h float64, top, bottom RGB) {
	if h <= 0 {
		return
	}
	r.cover(x, y, w, h, func(cx, cy int, local Point) {
		r.paint(cx, cy, top.Blend(bottom, (local.Y-y)/h))
	})
}

// DrawImage stamps the image glyph on every covered cell.
// Unloaded images are skipped.
func (r *Raster) DrawImage(img Image, x, y, w, h float64) {
	if !ImageLoaded(img) || r.alpha <= 0.05 {
		return
	}
	glyph, fg := blockRune, ColorWhite
	if g, ok := img.(Glyph); ok {
		glyph, fg = g.Glyph()
	}
	if r.alpha < 0.4 {
		glyph = faintRune
	}

	stamp := func(cx, cy int, _ Point) {
		cell := r.screen.GetCell(cx, cy)
		cell.Rune = glyph
		cell.Fg = cell.Bg.Blend(fg, r.alpha)
		r.screen.SetCell(cx, cy, cell)
	}
	if r.cover(x, y, w, h, stamp) == 0 {
		// Smaller than a cell: mark the cell under its center.
		c := r.tf.Apply(Point{x + w/2, y + h/2})
		cx, cy := int(math.Floor(c.X/r.cellW)), int(math.Floor(c.Y/r.cellH))
		stamp(cx, cy, Point{})
	}
}

// Save pushes the transform and alpha.
func (r *Raster) Save() {
	r.stack = append(r.stack, rasterState{tf: r.tf, alpha: r.alpha})
}

// Restore pops the transform and alpha. Unbalanced calls are ignored.
func (r *Raster) Restore() {
	if len(r.stack) == 0 {
		return
	}
	top := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.tf, r.alpha = top.tf, top.alpha
}

// Translate moves the origin.
func (r *Raster) Translate(x, y float64) {
	r.tf = r.tf.Translate(x, y)
}

// Rotate rotates the coordinate system clockwise by rad.
func (r *Raster) Rotate(rad float64) {
	r.tf = r.tf.Rotate(rad)
}

// SetAlpha sets the global alpha, clamped to [0,1].
func (r *Raster) SetAlpha(a float64) {
	r.alpha = ClampF(a, 0, 1)
}

func (r *Raster) paint(cx, cy int, c RGB) {
	cell := r.screen.GetCell(cx, cy)
	cell.Bg = cell.Bg.Blend(c, r.alpha)
	if r.alpha >= 0.5 {
		cell.Rune = ' '
	}
	r.screen.SetCell(cx, cy, cell)
}

// cover calls fn for every cell whose center falls inside the local rect
// (x, y, w, h) under the current transform. It returns the number of cells visited.
func (r *Raster) cover(x, y, w, h float64, fn func(cx, cy int, local Point)) int {
	if w <= 0 || h <= 0 || r.cellW <= 0 || r.cellH <= 0 {
		return 0
	}
	inv, ok := r.tf.Invert()
	if !ok {
		return 0
	}

	corners := [4]Point{
		r.tf.Apply(Point{x, y}),
		r.tf.Apply(Point{x + w, y}),
		r.tf.Apply(Point{x, y + h}),
		r.tf.Apply(Point{x + w, y + h}),
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		minX, maxX = math.Min(minX, c.X), math.Max(maxX, c.X)
		minY, maxY = math.Min(minY, c.Y), math.Max(maxY, c.Y)
	}

	x0 := max(int(math.Floor(minX/r.cellW)), 0)
	y0 := max(int(math.Floor(minY/r.cellH)), 0)
	x1 := min(int(math.Ceil(maxX/r.cellW)), r.screen.Width()-1)
	y1 := min(int(math.Ceil(maxY/r.cellH)), r.screen.Height()-1)

	n := 0
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			center := Point{(float64(cx) + 0.5) * r.cellW, (float64(cy) + 0.5) * r.cellH}
			local := inv.Apply(center)
			if local.X < x || local.X >= x+w || local.Y < y || local.Y >= y+h {
				continue
			}
			fn(cx, cy, local)
			n++
		}
	}
	return n
}
