package core

import "testing"

func TestPointerLifecycle(t *testing.T) {
	var p Pointer

	if s := p.State(); s.Pressed {
		t.Fatal("zero pointer should not be pressed")
	}

	p.Press(10, 20)
	s := p.State()
	if !s.Pressed || s.Start != (Point{10, 20}) || s.Current != (Point{10, 20}) {
		t.Errorf("after Press: %+v", s)
	}

	p.Move(30, 40)
	s = p.State()
	if s.Start != (Point{10, 20}) || s.Current != (Point{30, 40}) {
		t.Errorf("after Move: %+v", s)
	}

	p.Release(35, 45)
	s = p.State()
	if s.Pressed {
		t.Error("Release should clear pressed")
	}
	if s.Current != (Point{35, 45}) {
		t.Errorf("Release should update current, got %v", s.Current)
	}

	p.Reset()
	if p.State() != (PointerState{}) {
		t.Error("Reset should clear state")
	}
}

func TestFrameClock(t *testing.T) {
	tests := []struct {
		name     string
		maxDelta float64
		stamps   []float64
		expected []float64
	}{
		{
			name:     "first frame is zero",
			stamps:   []float64{123456},
			expected: []float64{0},
		},
		{
			name:     "steady frames",
			stamps:   []float64{1000, 1016, 1033},
			expected: []float64{0, 16, 17},
		},
		{
			name:     "stall is capped",
			maxDelta: 250,
			stamps:   []float64{0, 16, 5016},
			expected: []float64{0, 16, 250},
		},
		{
			name:     "clock going backwards",
			stamps:   []float64{100, 50, 66},
			expected: []float64{0, 0, 16},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := FrameClock{MaxDeltaMs: tc.maxDelta}
			for i, now := range tc.stamps {
				if got := c.Delta(now); got != tc.expected[i] {
					t.Errorf("Delta(%f) = %f, expected %f", now, got, tc.expected[i])
				}
			}
		})
	}
}

func TestFrameClockReset(t *testing.T) {
	var c FrameClock
	c.Delta(100)
	c.Delta(200)
	c.Reset()
	if got := c.Delta(10000); got != 0 {
		t.Errorf("Delta after Reset = %f, expected 0", got)
	}
}
