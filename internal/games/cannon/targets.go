package cannon

import (
	"github.com/vovakirdan/cannon-arcade/internal/anim"
	"github.com/vovakirdan/cannon-arcade/internal/config"
	"github.com/vovakirdan/cannon-arcade/internal/core"
)

// Target is a winged ball crossing the sky.
type Target struct {
	Ball      Sprite
	LeftWing  Sprite
	RightWing Sprite
	Reward    Sprite

	Speed float64 // px/s
	Dir   float64 // +1 travels right, -1 travels left

	revealed   bool
	revealFade anim.Animation
	revealPath anim.Animation
}

// RewardAlpha returns the current reward box opacity.
func (t *Target) RewardAlpha() float64 {
	return t.revealFade.Value
}

// Targets is the fixed-capacity arena of targets. Slots are reused in place.
type Targets struct {
	cfg        config.TargetConfig
	reward     config.RewardConfig
	difficulty *config.DifficultyManager
	pool       []Target
	elapsedMs  float64
}

func newTargets(cfg config.CannonConfig, assets Assets) *Targets {
	t := &Targets{
		cfg:        cfg.Targets,
		reward:     cfg.Reward,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		pool:       make([]Target, max(cfg.Targets.Count, 0)),
	}
	for i := range t.pool {
		tg := &t.pool[i]
		tg.Ball = NewSprite(assets.Ball)
		tg.LeftWing = NewSprite(assets.WingLeft)
		tg.RightWing = NewSprite(assets.WingRight)
		tg.Reward = NewSprite(assets.Reward)
		tg.revealFade = anim.NewFade(1, 1, 0)
	}
	return t
}

// Len returns the pool size.
func (t *Targets) Len() int {
	return len(t.pool)
}

// At returns the target in slot i.
func (t *Targets) At(i int) *Target {
	return &t.pool[i]
}

// Update places unset targets, moves the rest and respawns those that left the canvas.
func (t *Targets) Update(deltaMs, canvasW float64, rng *core.RNG) {
	t.elapsedMs += deltaMs
	for i := range t.pool {
		tg := &t.pool[i]
		t.updateReward(tg, deltaMs)

		if tg.Ball.IsUnset() {
			t.spawn(tg, t.cfg.SpawnOffset, canvasW, rng)
			continue
		}

		tg.Ball.X += tg.Dir * tg.Speed * deltaMs / 1000
		t.syncWings(tg)

		if (tg.Dir > 0 && tg.Ball.X > canvasW) || (tg.Dir < 0 && tg.Ball.X+tg.Ball.W < 0) {
			t.spawn(tg, t.cfg.RespawnOffset, canvasW, rng)
		}
	}
}

// spawn gives tg a random side, row, offset and speed.
// The ball starts strictly off-canvas on the side it travels from.
func (t *Targets) spawn(tg *Target, offsets config.Range, canvasW float64, rng *core.RNG) {
	tg.Ball.W, tg.Ball.H = t.cfg.BallSize, t.cfg.BallSize
	tg.LeftWing.W, tg.LeftWing.H = t.cfg.WingSize, t.cfg.WingSize
	tg.RightWing.W, tg.RightWing.H = t.cfg.WingSize, t.cfg.WingSize

	tg.Dir = 1
	if rng.UniformInt(0, 1) == 0 {
		tg.Dir = -1
	}

	offset := rng.UniformFloat(offsets.Min, offsets.Max)
	if tg.Dir > 0 {
		tg.Ball.X = -t.cfg.BallSize - t.cfg.WingSize - offset
	} else {
		tg.Ball.X = canvasW + t.cfg.WingSize + offset
	}

	row := rng.UniformInt(0, float64(t.cfg.RowCount-1))
	tg.Ball.Y = t.cfg.RowGap + float64(row)*t.cfg.RowHeight

	tg.Speed = t.difficulty.Speed(rng.UniformFloat(t.cfg.Speed.Min, t.cfg.Speed.Max), t.elapsedMs)
	t.syncWings(tg)
}

func (t *Targets) syncWings(tg *Target) {
	tg.LeftWing.X = tg.Ball.X - t.cfg.WingSize
	tg.RightWing.X = tg.Ball.X + t.cfg.BallSize
	tg.LeftWing.Y = tg.Ball.Y
	tg.RightWing.Y = tg.Ball.Y
}

// HitTest returns the first target whose box holds p on both axes, or -1.
// Only the projectile's top-left corner is tested.
func (t *Targets) HitTest(p core.Point) int {
	for i := range t.pool {
		b := &t.pool[i].Ball
		if b.IsUnset() {
			continue
		}
		if p.Y >= b.Y && p.Y <= b.Y+b.H && p.X >= b.X && p.X <= b.X+b.W {
			return i
		}
	}
	return -1
}

// Strike respawns target i and reveals its reward box at the canvas center.
func (t *Targets) Strike(i int, canvasW, canvasH float64, rng *core.RNG) TargetHit {
	tg := &t.pool[i]
	hit := TargetHit{Index: i, At: core.Point{X: tg.Ball.X, Y: tg.Ball.Y}}

	t.spawn(tg, t.cfg.RespawnOffset, canvasW, rng)

	tg.Reward.FitImage(1)
	tg.Reward.X = (canvasW - tg.Reward.W) / 2
	tg.Reward.Y = (canvasH - tg.Reward.H) / 2
	tg.revealed = true

	fadeTo := 1.0
	if t.reward.Fade {
		fadeTo = 0
	}
	tg.revealFade = anim.NewFade(1, fadeTo, t.reward.RevealMs)
	tg.revealFade.Start()
	from := core.Point{X: tg.Reward.X, Y: tg.Reward.Y}
	tg.revealPath = anim.NewPath(from, core.Point{X: from.X, Y: from.Y - t.reward.RisePx}, t.reward.RevealMs)
	tg.revealPath.Start()
	return hit
}

// updateReward runs the reveal animation and parks the reward box when it ends.
// With a zero reveal time the box is visible only until the next update.
func (t *Targets) updateReward(tg *Target, deltaMs float64) {
	if !tg.revealed {
		return
	}
	tg.revealFade.Advance(deltaMs)
	tg.revealPath.Advance(deltaMs)
	if !tg.revealPath.Running() {
		tg.revealed = false
		tg.Reward.Unset()
		return
	}
	p := tg.revealPath.Point()
	tg.Reward.X, tg.Reward.Y = p.X, p.Y
}

// Draw paints the balls with their wings and any revealed reward boxes.
func (t *Targets) Draw(surf core.Surface) {
	for i := range t.pool {
		tg := &t.pool[i]
		tg.LeftWing.Draw(surf)
		tg.RightWing.Draw(surf)
		tg.Ball.Draw(surf)
	}
	for i := range t.pool {
		tg := &t.pool[i]
		if !tg.revealed {
			continue
		}
		surf.Save()
		surf.SetAlpha(tg.RewardAlpha())
		tg.Reward.Draw(surf)
		surf.Restore()
	}
}
