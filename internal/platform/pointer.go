package platform

import "github.com/vovakirdan/cannon-arcade/internal/core"

// ClickGate sits between host input events and the game pointer. Hosts
// that deliver events between ticks can see a press and its release
// before the game ever samples the press; the gate holds such a release
// back until one tick has run with the pointer down.
type ClickGate struct {
	pointer *core.Pointer

	pressTicked bool
	pending     bool
	releaseAt   core.Point
}

// NewClickGate wraps p.
func NewClickGate(p *core.Pointer) *ClickGate {
	return &ClickGate{pointer: p}
}

// Press forwards a press.
func (g *ClickGate) Press(p core.Point) {
	g.pointer.Press(p.X, p.Y)
	g.pressTicked = false
	g.pending = false
}

// Move forwards a move. A held-back release keeps its own position.
func (g *ClickGate) Move(p core.Point) {
	g.pointer.Move(p.X, p.Y)
}

// Release forwards a release, or holds it until the next Tick.
// A release without a press only moves the pointer.
func (g *ClickGate) Release(p core.Point) {
	switch {
	case !g.pointer.State().Pressed:
		g.pointer.Move(p.X, p.Y)
	case g.pressTicked:
		g.pointer.Release(p.X, p.Y)
	default:
		g.pending = true
		g.releaseAt = p
	}
}

// Tick is called after each game frame. Paused frames do not count as
// having seen the press.
func (g *ClickGate) Tick(paused bool) {
	if !paused && g.pointer.State().Pressed {
		g.pressTicked = true
	}
	if g.pending && g.pressTicked {
		g.pending = false
		g.pointer.Release(g.releaseAt.X, g.releaseAt.Y)
	}
}

// Pending reports whether a release is being held back.
func (g *ClickGate) Pending() bool {
	return g.pending
}

// Reset drops any held-back release.
func (g *ClickGate) Reset() {
	g.pressTicked = false
	g.pending = false
}
