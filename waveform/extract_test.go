package waveform_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavekit/dsp"
	"github.com/katalvlaran/wavekit/shapes"
	"github.com/katalvlaran/wavekit/waveform"
)

// TestExtractPeriodic_SineCapture is the canonical scenario: five cycles of
// a 5 Hz sine at 0.1 ms spacing collapse to a 5.00 Hz periodic waveform
// that matches both a sine and a cosine generator up to phase.
func TestExtractPeriodic_SineCapture(t *testing.T) {
	captured := capturedSine(t)

	p, err := captured.ExtractPeriodic(nil)
	require.NoError(t, err)

	// the correlation taper drags the raw autocorrelation peak to lag 1999;
	// consecutive-peak spacing recovers the true 2000-sample period
	assert.Len(t, p.Samples(), 2000)
	assert.Equal(t, 5.0, p.Frequency())
	assert.Equal(t, 2.0, p.AmplitudeVpp(), "vpp is twice the amplitude multiplier")
	assert.Zero(t, p.Phase())

	opts := waveform.DefaultCompareOptions()
	opts.IgnorePhase = true

	eq, err := p.Compare(mustSine(t), &opts)
	require.NoError(t, err)
	assert.True(t, eq, "extracted component must match a 5 Hz sine up to phase")

	eq, err = p.Compare(mustCosine(t), &opts)
	require.NoError(t, err)
	assert.True(t, eq, "extracted component must match a 5 Hz cosine up to phase")
}

// TestExtractPeriodic_TiledCardiac recovers an exactly repeated cycle:
// the mean cycle reproduces it and the derived parameters line up with the
// generator the tile came from.
func TestExtractPeriodic_TiledCardiac(t *testing.T) {
	beat, err := shapes.Cardiac(2, 1, 0, 0)
	require.NoError(t, err)
	small, err := beat.Resample(0.001) // 16384 -> 500 points per cycle
	require.NoError(t, err)
	cycle := small.Samples()
	require.Len(t, cycle, 500)

	captured, err := waveform.NewNonPeriodic(dsp.Tile(cycle, 8), 0.5, 0.001, 0)
	require.NoError(t, err)

	p, err := captured.ExtractPeriodic(nil)
	require.NoError(t, err)

	assert.Equal(t, 2.0, p.Frequency())
	assert.Equal(t, 1.0, p.AmplitudeVpp())
	assert.InDeltaSlice(t, cycle, p.Samples(), 1e-12, "mean of identical cycles is the cycle")

	eq, err := p.Compare(small, nil)
	require.NoError(t, err)
	assert.True(t, eq)
}

// TestExtractPeriodic_InsufficientData rejects buffers below the minimum.
func TestExtractPeriodic_InsufficientData(t *testing.T) {
	w, err := waveform.NewNonPeriodic(sineBuffer(299, 4*math.Pi), 1, 1e-4, 0)
	require.NoError(t, err)

	_, err = w.ExtractPeriodic(nil)
	assert.ErrorIs(t, err, waveform.ErrInsufficientData)
}

// TestExtractPeriodic_Noise finds no repeating structure in seeded noise.
func TestExtractPeriodic_Noise(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	data := make([]float64, 2048)
	for i := range data {
		data[i] = 0.8 * (2*rng.Float64() - 1)
	}
	w, err := waveform.NewNonPeriodic(data, 1, 1e-4, 0)
	require.NoError(t, err)

	_, err = w.ExtractPeriodic(nil)
	require.Error(t, err)
	assert.True(t,
		errors.Is(err, waveform.ErrNoPeriodicity) || errors.Is(err, waveform.ErrNoConsistentPeriod),
		"got: %v", err)
}

// TestExtractPeriodic_FlatLine: a constant buffer has no repeating
// structure either.
func TestExtractPeriodic_FlatLine(t *testing.T) {
	data := make([]float64, 600)
	for i := range data {
		data[i] = 0.3
	}
	w, err := waveform.NewNonPeriodic(data, 1, 1e-4, 0)
	require.NoError(t, err)

	_, err = w.ExtractPeriodic(nil)
	assert.ErrorIs(t, err, waveform.ErrNoPeriodicity)
}

// TestExtractPeriodic_TooFewCycles: a clear period that repeats only twice
// is not trusted.
func TestExtractPeriodic_TooFewCycles(t *testing.T) {
	// ~2.7 cycles of a 150-sample period in a 400-sample buffer
	data := make([]float64, 400)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * float64(i) / 150)
	}
	w, err := waveform.NewNonPeriodic(data, 1, 1e-4, 0)
	require.NoError(t, err)

	_, err = w.ExtractPeriodic(nil)
	assert.ErrorIs(t, err, waveform.ErrNoConsistentPeriod)
}

// TestExtractPeriodic_CustomOptions: loosening MinCycles turns the previous
// failure into a successful extraction, proving the constants are not
// hardwired.
func TestExtractPeriodic_CustomOptions(t *testing.T) {
	data := make([]float64, 400)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * float64(i) / 150)
	}
	w, err := waveform.NewNonPeriodic(data, 1, 1e-4, 0)
	require.NoError(t, err)

	opts := waveform.DefaultExtractOptions()
	opts.MinCycles = 2

	p, err := w.ExtractPeriodic(&opts)
	require.NoError(t, err)
	assert.InDelta(t, 150, 1/(p.Frequency()*1e-4), 2, "period in samples")
}

// TestExtractPeriodic_ZeroOptions: an all-zero options struct falls back to
// the defaults field by field instead of dividing by zero.
func TestExtractPeriodic_ZeroOptions(t *testing.T) {
	captured := capturedSine(t)

	p, err := captured.ExtractPeriodic(&waveform.ExtractOptions{})
	require.NoError(t, err)
	assert.Equal(t, 5.0, p.Frequency())
}

// TestExtractPeriodic_CarriesOffset: the DC offset survives extraction.
func TestExtractPeriodic_CarriesOffset(t *testing.T) {
	captured, err := waveform.NewNonPeriodic(sineBuffer(10000, 10*math.Pi), 1, 0.0001, 0.75)
	require.NoError(t, err)

	p, err := captured.ExtractPeriodic(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.75, p.Offset())
}
