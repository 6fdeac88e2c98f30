package core

// Image is a handle to an image asset owned by the host.
// Size reports zero until the asset has loaded.
type Image interface {
	Loaded() bool
	Size() (w, h float64)
}

// Sound is a fire-and-forget audio asset. Play must not block and may
// be called again while a previous play is still audible.
type Sound interface {
	Play()
}

// Glyph is implemented by images that can be drawn as a single terminal rune.
type Glyph interface {
	Glyph() (r rune, fg RGB)
}

// Surface is the 2D drawing target the game renders onto.
// Coordinates go through the current transform; Save and Restore
// push and pop the transform together with the global alpha.
type Surface interface {
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64, c RGB)
	// FillGradient fills a rect with a vertical linear gradient from top to bottom.
	FillGradient(x, y, w, h float64, top, bottom RGB)
	DrawImage(img Image, x, y, w, h float64)

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(rad float64)
	SetAlpha(a float64)
}

// ImageSize returns the size of img, or zero when img is nil or not loaded.
func ImageSize(img Image) (w, h float64) {
	if img == nil || !img.Loaded() {
		return 0, 0
	}
	return img.Size()
}

// ImageLoaded reports whether img is non-nil and ready.
func ImageLoaded(img Image) bool {
	return img != nil && img.Loaded()
}
