package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPulseAlpha(t *testing.T) {
	p := DefaultPulse()

	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0.25},
		{1500 * time.Millisecond, 0.45},
		{3000 * time.Millisecond, 0.65},
		{4500 * time.Millisecond, 0.45},
		{6000 * time.Millisecond, 0.25},
		{7500 * time.Millisecond, 0.45},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, p.Alpha(tt.elapsed), 1e-9, "elapsed %s", tt.elapsed)
	}
}

func TestPulseStaysInBounds(t *testing.T) {
	p := DefaultPulse()
	for ms := 0; ms < 20000; ms += 37 {
		a := p.Alpha(time.Duration(ms) * time.Millisecond)
		require.GreaterOrEqual(t, a, PulseMin)
		require.LessOrEqual(t, a, PulseMax)
	}
}

func TestPulseDegenerate(t *testing.T) {
	assert.Equal(t, 0.1, Pulse{Min: 0.1, Max: 0.9}.Alpha(time.Second))
	assert.Equal(t, 0.25, DefaultPulse().Alpha(-time.Second))
}

func TestFadeProgress(t *testing.T) {
	f := Fade{Duration: TipCrossfade}

	assert.Equal(t, 0.0, f.Progress(0))
	assert.InDelta(t, 0.5, f.Progress(300*time.Millisecond), 1e-9)
	assert.Equal(t, 1.0, f.Progress(time.Second))
	assert.True(t, f.Done(TipCrossfade))
	assert.False(t, f.Done(TipCrossfade-time.Millisecond))
	assert.Equal(t, 1.0, Fade{}.Progress(0))
}

func TestBlend(t *testing.T) {
	assert.Equal(t, "#000000", Blend("#000000", "#ffffff", 0))
	assert.Equal(t, "#ffffff", Blend("#000000", "#ffffff", 1))
	assert.Equal(t, "#ffffff", Blend("#000000", "#ffffff", 2), "t is clamped")
	assert.Equal(t, "#a21caf", Blend("#A21CAF", "#06B6D4", 0))
	assert.Equal(t, "#000000", Blend("not-a-colour", "#000000", 0.5))
}

func TestGradient(t *testing.T) {
	stops := []string{"#A21CAF", "#000000", "#06B6D4"}

	got := Gradient(stops, 5)
	require.Len(t, got, 5)
	assert.Equal(t, "#a21caf", got[0])
	assert.Equal(t, "#000000", got[2])
	assert.Equal(t, "#06b6d4", got[4])

	assert.Nil(t, Gradient(stops, 0))
	assert.Nil(t, Gradient(nil, 3))
	assert.Equal(t, []string{"#a21caf", "#a21caf"}, Gradient(stops[:1], 2))
}
