// Package platform holds pieces shared by the game hosts.
package platform

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cannon-arcade/internal/games/cannon"
)

// LogHooks reports game events to logger at debug level.
func LogHooks(logger *log.Logger) cannon.Hooks {
	return cannon.Hooks{
		OnFire: func(angle float64) {
			logger.Debug("fire", "angle", fmt.Sprintf("%.1f°", angle*180/math.Pi))
		},
		OnHit: func(hit cannon.TargetHit) {
			logger.Debug("target hit", "target", hit.Index, "x", hit.At.X, "y", hit.At.Y)
		},
		OnResolve: func(collided bool) {
			logger.Debug("shot resolved", "collided", collided)
		},
	}
}
