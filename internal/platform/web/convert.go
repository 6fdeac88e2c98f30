// Package web runs the cannon game on an HTML canvas. It is compiled
// with GopherJS; only the conversions in this file build natively.
package web

import (
	"encoding/base64"
	"fmt"

	sfx "github.com/vovakirdan/cannon-arcade/internal/audio"
	"github.com/vovakirdan/cannon-arcade/internal/core"
)

// cssColor formats c for fillStyle and gradient stops.
func cssColor(c core.RGB) string {
	return c.Hex()
}

// clientRect is the canvas bounding box in CSS pixels.
type clientRect struct {
	Left, Top, Width, Height float64
}

// toCanvas maps a client position to canvas pixels. The canvas may be
// stretched by CSS, so the position is scaled by backing size over box size.
func toCanvas(clientX, clientY float64, box clientRect, canvasW, canvasH float64) core.Point {
	p := core.Point{X: clientX - box.Left, Y: clientY - box.Top}
	if box.Width > 0 {
		p.X *= canvasW / box.Width
	}
	if box.Height > 0 {
		p.Y *= canvasH / box.Height
	}
	return p
}

// fireDataURL renders the fire effect to a WAV data URL for an audio element.
func fireDataURL() (string, error) {
	data, err := sfx.WAV(sfx.FireSound(sfx.SampleRate), sfx.Format)
	if err != nil {
		return "", fmt.Errorf("failed to encode fire sound: %w", err)
	}
	return "data:audio/wav;base64," + base64.StdEncoding.EncodeToString(data), nil
}
