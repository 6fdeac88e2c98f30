package cannon

import "github.com/vovakirdan/cannon-arcade/internal/core"

// Assets are the host-provided image and sound handles.
// Any handle may be nil or not yet loaded; the game skips what it cannot draw.
type Assets struct {
	Cloud     core.Image
	Ball      core.Image
	WingLeft  core.Image
	WingRight core.Image
	Reward    core.Image

	CannonBack  core.Image
	CannonFront core.Image
	Wheel       core.Image
	Flash       core.Image
	Bullet      core.Image

	Fire core.Sound
}

// TargetHit describes a projectile striking a target.
type TargetHit struct {
	Index int        // Pool slot of the struck target
	At    core.Point // Target position at impact
}

// Hooks are optional callbacks for game events. Hosts use them for logging.
type Hooks struct {
	OnFire    func(angle float64)
	OnHit     func(hit TargetHit)
	OnResolve func(collided bool)
}
