package waveform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavekit/shapes"
	"github.com/katalvlaran/wavekit/waveform"
)

// sineBuffer samples sin over [0, phaseEnd] inclusive at n points, matching
// the way captured sine bursts are synthesized in bench scripts.
func sineBuffer(n int, phaseEnd float64) []float64 {
	out := make([]float64, n)
	step := phaseEnd / float64(n-1)
	for i := range out {
		out[i] = math.Sin(float64(i) * step)
	}

	return out
}

// capturedSine is the canonical extraction fixture: 10000 samples of
// sin over [0, 10π] at 0.1 ms spacing — five cycles of a 5 Hz signal at
// amplitude multiplier 1.
func capturedSine(t testing.TB) *waveform.NonPeriodic {
	t.Helper()
	w, err := waveform.NewNonPeriodic(sineBuffer(10000, 10*math.Pi), 1, 0.0001, 0)
	require.NoError(t, err)

	return w
}

func mustSine(t testing.TB) *waveform.Periodic {
	t.Helper()
	p, err := shapes.Sine(5, 2, 0, 0)
	require.NoError(t, err)

	return p
}

func mustCosine(t testing.TB) *waveform.Periodic {
	t.Helper()
	p, err := shapes.Cosine(5, 2, 0, 0)
	require.NoError(t, err)

	return p
}
