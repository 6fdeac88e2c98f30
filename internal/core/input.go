package core

// PointerState is the latest pointer sample as seen by the game.
type PointerState struct {
	Start   Point // Position of the last press
	Current Point // Latest position
	Pressed bool
}

// Pointer tracks press, move and release events in surface-local coordinates.
// Hosts write to it between ticks; the game reads it once per tick.
type Pointer struct {
	state PointerState
}

// Press records a press at (x, y).
func (p *Pointer) Press(x, y float64) {
	p.state.Start = Point{x, y}
	p.state.Current = Point{x, y}
	p.state.Pressed = true
}

// Move records a pointer move. Moves are tracked with or without a press.
func (p *Pointer) Move(x, y float64) {
	p.state.Current = Point{x, y}
}

// Release records a release at (x, y).
func (p *Pointer) Release(x, y float64) {
	p.state.Current = Point{x, y}
	p.state.Pressed = false
}

// State returns a copy of the current pointer state.
func (p *Pointer) State() PointerState {
	return p.state
}

// Reset clears the pointer state.
func (p *Pointer) Reset() {
	p.state = PointerState{}
}
