package anim

import "github.com/vovakirdan/cannon-arcade/internal/core"

// Kind selects what an Animation's value drives.
type Kind int

const (
	KindFade   Kind = iota // Value is an alpha
	KindScale              // Value is a size ratio
	KindOffset             // Value is a pixel offset
	KindPath               // Value is progress along From->To
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindFade:
		return "fade"
	case KindScale:
		return "scale"
	case KindOffset:
		return "offset"
	case KindPath:
		return "path"
	default:
		return "unknown"
	}
}

// Animation is a single scalar property animated between two keyframes.
type Animation struct {
	Kind       Kind
	Keys       [2]float64
	DurationMs float64
	Value      float64

	// From and To are the endpoints of a path animation.
	From, To core.Point

	running bool
}

// NewFade creates an alpha animation.
func NewFade(from, to, durationMs float64) Animation {
	return newAnimation(KindFade, from, to, durationMs)
}

// NewScale creates a size-ratio animation.
func NewScale(from, to, durationMs float64) Animation {
	return newAnimation(KindScale, from, to, durationMs)
}

// NewOffset creates a pixel-offset animation.
func NewOffset(from, to, durationMs float64) Animation {
	return newAnimation(KindOffset, from, to, durationMs)
}

// NewPath creates an animation that moves a point from one position to another.
func NewPath(from, to core.Point, durationMs float64) Animation {
	a := newAnimation(KindPath, 0, 1, durationMs)
	a.From, a.To = from, to
	return a
}

func newAnimation(kind Kind, from, to, durationMs float64) Animation {
	return Animation{
		Kind:       kind,
		Keys:       [2]float64{from, to},
		DurationMs: durationMs,
		Value:      from,
	}
}

// Start rewinds to the first keyframe and begins playing.
func (a *Animation) Start() {
	a.Value = a.Keys[0]
	a.running = true
}

// Reset rewinds to the first keyframe and stops.
func (a *Animation) Reset() {
	a.Value = a.Keys[0]
	a.running = false
}

// Advance moves the value forward by deltaMs. It is a no-op unless running.
func (a *Animation) Advance(deltaMs float64) {
	if !a.running {
		return
	}
	a.Value = Interpolate(a.Value, a.Keys, deltaMs, a.DurationMs)
	if a.Value == a.Keys[1] {
		a.running = false
	}
}

// Running reports whether the animation is still playing.
func (a *Animation) Running() bool {
	return a.running
}

// Done reports whether the value has reached the last keyframe.
func (a *Animation) Done() bool {
	return a.Value == a.Keys[1]
}

// Point returns the current position of a path animation.
func (a *Animation) Point() core.Point {
	t := a.Value
	return core.Point{
		X: core.Lerp(a.From.X, a.To.X, t),
		Y: core.Lerp(a.From.Y, a.To.Y, t),
	}
}
