// Package audio synthesizes the cannon sound effects with beep.
// The terminal host plays them through the beep speaker; other hosts
// render them to PCM.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the rate every effect is synthesized at.
const SampleRate = beep.SampleRate(48000)

// Fire sound shape.
const (
	fireDuration = 220 * time.Millisecond
	fireAttack   = 4 * time.Millisecond
	fireThumpHz  = 70.0
	fireVolume   = 0.8
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveNoise
)

type oscillator struct {
	freq   float64
	phase  float64
	left   int
	wave   Wave
	rate   beep.SampleRate
	random *rand.Rand
}

// NewOscillator returns a streamer producing duration worth of wave at freq.
// Noise is drawn from a fixed seed so every shot sounds the same.
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		left:   rate.N(duration),
		wave:   wave,
		rate:   rate,
		random: rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.left <= 0 {
			return i, i > 0
		}
		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveNoise:
			v = o.random.Float64()*2 - 1
		}
		samples[i][0], samples[i][1] = v, v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.left--
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay is a linear attack followed by an exponential tail.
type decay struct {
	streamer beep.Streamer
	pos      int
	attack   int
	total    int
}

// NewDecay shapes s with a short linear attack and an exponential fall to silence at duration.
func NewDecay(s beep.Streamer, duration, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{
		streamer: s,
		attack:   rate.N(attack),
		total:    rate.N(duration),
	}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := d.gain(d.pos)
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.pos++
	}
	return n, ok
}

func (d *decay) gain(pos int) float64 {
	switch {
	case pos >= d.total:
		return 0
	case pos < d.attack:
		return float64(pos) / float64(d.attack)
	default:
		t := float64(pos-d.attack) / float64(max(d.total-d.attack, 1))
		// e^-5 at the end, then forced to zero.
		return math.Exp(-5 * t)
	}
}

func (d *decay) Err() error { return d.streamer.Err() }

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// FireSound returns a fresh cannon shot: a noise blast over a low sine thump.
func FireSound(rate beep.SampleRate) beep.Streamer {
	blast := NewDecay(NewOscillator(0, fireDuration, WaveNoise, rate), fireDuration, fireAttack, rate)
	thump := NewDecay(NewOscillator(fireThumpHz, fireDuration, WaveSine, rate), fireDuration, fireAttack, rate)

	mixed := beep.Mix(
		newVolume(blast, 0.6),
		newVolume(thump, 0.4),
	)
	return newVolume(beep.Take(rate.N(fireDuration), mixed), fireVolume)
}

// FireDuration returns the length of the fire sound.
func FireDuration() time.Duration {
	return fireDuration
}
