package cannon

import (
	"math"
	"testing"

	"github.com/vovakirdan/cannon-arcade/internal/config"
	"github.com/vovakirdan/cannon-arcade/internal/core"
)

func TestAimAngleClamp(t *testing.T) {
	limit := 70 * math.Pi / 180
	pivot := core.Point{X: 400, Y: 480}

	for x := -400.0; x <= 1200; x += 25 {
		for y := -200.0; y <= 800; y += 25 {
			a := AimAngle(core.Point{X: x, Y: y}, pivot, limit)
			if math.IsNaN(a) {
				t.Fatalf("AimAngle(%v, %v) is NaN", x, y)
			}
			if math.Abs(a) > limit {
				t.Fatalf("AimAngle(%v, %v) = %f exceeds limit %f", x, y, a, limit)
			}
		}
	}
}

func TestAimAngle(t *testing.T) {
	limit := 70 * math.Pi / 180
	pivot := core.Point{X: 400, Y: 480}

	tests := []struct {
		name     string
		p        core.Point
		expected float64
	}{
		{"straight up", core.Point{X: 400, Y: 100}, 0},
		{"on the pivot", pivot, 0},
		{"up and right leans right", core.Point{X: 500, Y: 380}, math.Pi / 4},
		{"up and left leans left", core.Point{X: 300, Y: 380}, -math.Pi / 4},
		{"far right clamps", core.Point{X: 1000, Y: 470}, limit},
		{"level right clamps", core.Point{X: 500, Y: 480}, limit},
		{"level left clamps", core.Point{X: 300, Y: 480}, -limit},
		{"below pivot mirrors", core.Point{X: 500, Y: 580}, math.Pi / 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AimAngle(tc.p, pivot, limit)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("AimAngle(%v) = %f, expected %f", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRigLayout(t *testing.T) {
	g := newTestGame(1, nil, noTargets)
	g.Advance(16)
	r := g.rig

	if g.sepY != 510 {
		t.Fatalf("separator = %f, expected 510", g.sepY)
	}
	if r.Pivot != (core.Point{X: 400, Y: 480}) {
		t.Errorf("pivot = %v, expected (400, 480)", r.Pivot)
	}
	if r.Wheel.Y != 450 {
		t.Errorf("wheel y = %f, expected 450", r.Wheel.Y)
	}
	// Barrel overlaps the wheel by 30px.
	if r.Back.Y+r.Back.H-r.Wheel.Y != 30 {
		t.Errorf("barrel overlap = %f, expected 30", r.Back.Y+r.Back.H-r.Wheel.Y)
	}
	if r.Home.Y != r.Back.Y-10 {
		t.Errorf("projectile home y = %f, expected %f", r.Home.Y, r.Back.Y-10)
	}
	if r.Home.Center().X != 400 {
		t.Errorf("projectile home not centered: %v", r.Home)
	}
	if r.Flash.Y != r.Home.Y-10 {
		t.Errorf("flash y = %f, expected %f", r.Flash.Y, r.Home.Y-10)
	}
	if r.Back.W != 40 || r.Back.H != 100 || r.Wheel.W != 60 || r.Home.W != 20 {
		t.Errorf("half scale sizes: back %fx%f wheel %f home %f", r.Back.W, r.Back.H, r.Wheel.W, r.Home.W)
	}
	// Flash spans 0.85 of the barrel width and keeps the 2:1 image ratio.
	flashW := r.Back.W * 0.85
	if r.Flash.W != flashW || r.Flash.H != flashW/2 {
		t.Errorf("flash size = %fx%f, expected %fx%f", r.Flash.W, r.Flash.H, flashW, flashW/2)
	}
}

func TestRigScaleAndFlashWidth(t *testing.T) {
	tests := []struct {
		name       string
		scale      float64
		flashRatio float64
		backW      float64
		wheelY     float64
		flashW     float64
	}{
		{"full size", 1, 1, 80, 390, 80},
		{"half size", 0.5, 0.85, 40, 450, 34},
		{"quarter size wide flash", 0.25, 1.5, 20, 480, 30},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(1, nil, func(cfg *config.CannonConfig) {
				noTargets(cfg)
				cfg.Cannon.Scale = tc.scale
				cfg.Cannon.FlashWidthRatio = tc.flashRatio
			})
			g.Advance(16)
			r := g.rig

			if r.Back.W != tc.backW || r.Front.W != tc.backW {
				t.Errorf("barrel width = %f/%f, expected %f", r.Back.W, r.Front.W, tc.backW)
			}
			if r.Wheel.Y != tc.wheelY {
				t.Errorf("wheel y = %f, expected %f", r.Wheel.Y, tc.wheelY)
			}
			if math.Abs(r.Flash.W-tc.flashW) > 1e-9 || math.Abs(r.Flash.H-tc.flashW/2) > 1e-9 {
				t.Errorf("flash size = %fx%f, expected %fx%f", r.Flash.W, r.Flash.H, tc.flashW, tc.flashW/2)
			}
			if math.Abs(r.Flash.Center().X-400) > 1e-9 {
				t.Errorf("flash not centered: %v", r.Flash.Rect())
			}
		})
	}
}

func TestRigRecentersOnResize(t *testing.T) {
	g := newTestGame(1, nil, noTargets)
	g.Advance(16)
	g.Resize(1000, 800)
	g.Advance(16)

	if g.rig.Pivot.X != 500 {
		t.Errorf("pivot x after resize = %f, expected 500", g.rig.Pivot.X)
	}
	if g.sepY != 680 {
		t.Errorf("separator after resize = %f, expected 680", g.sepY)
	}
}

func TestFireSequence(t *testing.T) {
	sound := &countingSound{}
	g := newTestGame(1, sound, noTargets)
	target := core.Point{X: 500, Y: 100}

	g.Pointer().Press(target.X, target.Y)
	g.Advance(16)
	s := g.Snapshot()
	want := -math.Atan((target.X - 400) / (target.Y - 480))
	if math.Abs(s.Angle-want) > 1e-9 {
		t.Fatalf("angle = %f, expected %f", s.Angle, want)
	}
	if s.WillFire || s.Fired {
		t.Fatalf("pressing must not arm or fire: %+v", s)
	}

	g.Pointer().Release(target.X, target.Y)
	g.Advance(16)
	s = g.Snapshot()
	if !s.WillFire || s.Fired {
		t.Fatalf("release should arm without firing: %+v", s)
	}

	g.Advance(16)
	s = g.Snapshot()
	if !s.Fired || s.WillFire {
		t.Fatalf("next tick should fire: %+v", s)
	}
	if sound.plays != 1 {
		t.Errorf("fire sound played %d times, expected 1", sound.plays)
	}
	p := g.projectile
	if math.Abs(p.VX-math.Sin(want)) > 1e-9 || math.Abs(p.VY+math.Cos(want)) > 1e-9 {
		t.Errorf("velocity = (%f, %f), expected (sin, -cos) of %f", p.VX, p.VY, want)
	}
	if !p.Flying {
		t.Error("projectile should be flying")
	}
	if !g.rig.flashAlpha.Running() {
		t.Error("muzzle flash should be animating")
	}
}

func TestAimBelowPivotDoesNotArm(t *testing.T) {
	g := newTestGame(1, nil, noTargets)

	g.Pointer().Press(500, 100)
	g.Advance(16)
	angle := g.Snapshot().Angle

	// Drag below the pivot: rotation freezes and the release does not arm.
	g.Pointer().Move(100, 590)
	g.Advance(16)
	if g.Snapshot().Angle != angle {
		t.Errorf("angle changed below pivot: %f -> %f", angle, g.Snapshot().Angle)
	}
	g.Pointer().Release(100, 590)
	g.Advance(16)
	g.Advance(16)

	s := g.Snapshot()
	if s.WillFire || s.Fired {
		t.Errorf("release below pivot should not fire: %+v", s)
	}
}

func TestReleaseWithoutPressDoesNothing(t *testing.T) {
	g := newTestGame(1, nil, noTargets)
	g.Pointer().Move(500, 100)
	g.Advance(16)
	g.Pointer().Release(500, 100)
	g.Advance(16)
	g.Advance(16)

	if s := g.Snapshot(); s.WillFire || s.Fired || s.Angle != 0 {
		t.Errorf("hover and release should not aim or fire: %+v", s)
	}
}

func TestSingleProjectileInFlight(t *testing.T) {
	sound := &countingSound{}
	g := newTestGame(1, sound, noTargets)

	fireAt(g, core.Point{X: 400, Y: 100})
	if !g.Snapshot().Fired {
		t.Fatal("expected fired")
	}

	// A second full press/release cycle during flight must not arm another shot.
	g.Pointer().Press(300, 100)
	g.Advance(16)
	g.Pointer().Release(300, 100)
	g.Advance(16)
	g.Advance(16)

	s := g.Snapshot()
	if !s.Fired || s.WillFire {
		t.Fatalf("second shot armed during flight: %+v", s)
	}
	if sound.plays != 1 {
		t.Fatalf("fire sound played %d times during one flight", sound.plays)
	}

	// Fly until the projectile leaves the canvas and resolves.
	for i := 0; i < 200 && g.Snapshot().Fired; i++ {
		g.Advance(16)
	}
	if g.Snapshot().Fired {
		t.Fatal("projectile never resolved")
	}

	fireAt(g, core.Point{X: 400, Y: 100})
	if !g.Snapshot().Fired || sound.plays != 2 {
		t.Errorf("should fire again after resolving: fired=%v plays=%d", g.Snapshot().Fired, sound.plays)
	}
}

func TestResolveResetsFlash(t *testing.T) {
	g := newTestGame(1, nil, noTargets)
	fireAt(g, core.Point{X: 400, Y: 100})
	g.Advance(100)
	if g.rig.FlashAlpha() >= 1 {
		t.Fatal("flash should be fading during flight")
	}

	for i := 0; i < 200 && g.Snapshot().Fired; i++ {
		g.Advance(16)
	}

	r := g.rig
	if r.FlashAlpha() != 1 || r.flashOffset.Value != 0 || r.flashScale.Value != 1 {
		t.Errorf("flash not reset: alpha=%f offset=%f scale=%f",
			r.FlashAlpha(), r.flashOffset.Value, r.flashScale.Value)
	}
	if r.Flash.W != r.Back.W*0.85 {
		t.Errorf("flash width = %f, expected %f", r.Flash.W, r.Back.W*0.85)
	}
}

func TestFlashAnimationEndpoints(t *testing.T) {
	g := newTestGame(1, nil, noTargets)
	fireAt(g, core.Point{X: 400, Y: 100})
	homeY := g.rig.Home.Y - 10
	baseW := g.rig.Back.W * 0.85

	g.Advance(300)
	r := g.rig
	if r.FlashAlpha() != 0 {
		t.Errorf("alpha after fade = %f, expected 0", r.FlashAlpha())
	}
	if math.Abs(r.Flash.Y-(homeY-20)) > 1e-9 {
		t.Errorf("flash y after fade = %f, expected %f", r.Flash.Y, homeY-20)
	}
	if math.Abs(r.Flash.W-baseW*1.3) > 1e-9 {
		t.Errorf("flash width after fade = %f, expected %f", r.Flash.W, baseW*1.3)
	}
}
