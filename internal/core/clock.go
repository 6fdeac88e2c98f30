package core

// FrameClock turns absolute frame timestamps into per-frame deltas.
type FrameClock struct {
	// MaxDeltaMs caps a single delta after stalls. Zero disables the cap.
	MaxDeltaMs float64

	last    float64
	started bool
}

// Delta returns the milliseconds elapsed since the previous call.
// The first call only records the timestamp and returns 0.
func (c *FrameClock) Delta(nowMs float64) float64 {
	if !c.started {
		c.started = true
		c.last = nowMs
		return 0
	}
	d := nowMs - c.last
	c.last = nowMs
	if d < 0 {
		return 0
	}
	if c.MaxDeltaMs > 0 && d > c.MaxDeltaMs {
		return c.MaxDeltaMs
	}
	return d
}

// Reset forgets the previous timestamp so the next frame is treated as the first.
func (c *FrameClock) Reset() {
	c.started = false
	c.last = 0
}
