package core

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a 24-bit color used by surfaces and screen cells.
type RGB struct {
	R, G, B uint8
}

// Predefined colors for the scene.
var (
	ColorBlack  = RGB{0, 0, 0}
	ColorWhite  = RGB{255, 255, 255}
	ColorSky    = RGB{0x32, 0x91, 0xce}
	ColorGround = RGB{0x92, 0x9a, 0xa0}
)

// Hex returns the color in #rrggbb form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Blend mixes c toward other by t in [0,1].
func (c RGB) Blend(other RGB, t float64) RGB {
	t = ClampF(t, 0, 1)
	mix := func(a, b uint8) uint8 {
		return uint8(Lerp(float64(a), float64(b), t) + 0.5)
	}
	return RGB{mix(c.R, other.R), mix(c.G, other.G), mix(c.B, other.B)}
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}
