// Package anim holds the time-based values behind the splash screen effects.
// Everything here is a pure function of elapsed time so views stay easy to test.
package anim

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	PulseMin        = 0.25
	PulseMax        = 0.65
	PulseHalfPeriod = 3000 * time.Millisecond

	SplashFadeIn  = 99 * time.Millisecond
	TipCrossfade  = 600 * time.Millisecond
	FrameInterval = 50 * time.Millisecond
)

// Pulse oscillates linearly between Min and Max, taking HalfPeriod for each
// direction
type Pulse struct {
	Min        float64
	Max        float64
	HalfPeriod time.Duration
}

// DefaultPulse is the splash background pulse
func DefaultPulse() Pulse {
	return Pulse{Min: PulseMin, Max: PulseMax, HalfPeriod: PulseHalfPeriod}
}

// Alpha returns the pulse value after elapsed time
func (p Pulse) Alpha(elapsed time.Duration) float64 {
	if p.HalfPeriod <= 0 || elapsed <= 0 {
		return p.Min
	}

	period := 2 * p.HalfPeriod
	phase := elapsed % period

	var t float64
	if phase < p.HalfPeriod {
		t = float64(phase) / float64(p.HalfPeriod)
	} else {
		t = float64(period-phase) / float64(p.HalfPeriod)
	}
	return p.Min + (p.Max-p.Min)*t
}

// Fade is a one-shot linear transition
type Fade struct {
	Duration time.Duration
}

// Progress returns how far the fade is after elapsed, clamped to [0, 1]
func (f Fade) Progress(elapsed time.Duration) float64 {
	if f.Duration <= 0 || elapsed >= f.Duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(f.Duration)
}

// Done reports whether the fade has finished
func (f Fade) Done(elapsed time.Duration) bool {
	return f.Progress(elapsed) >= 1
}

// Blend mixes two hex colours; t=0 gives from, t=1 gives to.
// Unparseable input falls back to black.
func Blend(from, to string, t float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		a = colorful.Color{}
	}
	b, err := colorful.Hex(to)
	if err != nil {
		b = colorful.Color{}
	}
	return a.BlendRgb(b, clamp(t)).Clamped().Hex()
}

// Gradient samples n colours spread evenly across stops
func Gradient(stops []string, n int) []string {
	if n <= 0 || len(stops) == 0 {
		return nil
	}

	out := make([]string, n)
	if len(stops) == 1 || n == 1 {
		for i := range out {
			out[i] = Blend(stops[0], stops[0], 0)
		}
		return out
	}

	segments := float64(len(stops) - 1)
	for i := range out {
		pos := float64(i) / float64(n-1) * segments
		seg := int(pos)
		if seg >= len(stops)-1 {
			seg = len(stops) - 2
		}
		out[i] = Blend(stops[seg], stops[seg+1], pos-float64(seg))
	}
	return out
}

func clamp(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
