// Package anim provides linear keyframe animation for scalar sprite properties.
package anim

// Interpolate advances current toward keys[1] at the constant rate
// (keys[1]-keys[0])/durationMs per millisecond of elapsedMs.
// The result never passes keys[1], and once current equals keys[1]
// further calls return it unchanged.
func Interpolate(current float64, keys [2]float64, elapsedMs, durationMs float64) float64 {
	start, end := keys[0], keys[1]
	if current == end || start == end || durationMs <= 0 {
		return end
	}

	next := current + (end-start)/durationMs*elapsedMs
	if end > start {
		return min(next, end)
	}
	return max(next, end)
}
