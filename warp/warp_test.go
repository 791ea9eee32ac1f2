package warp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavekit/warp"
)

func TestDistance_Identical(t *testing.T) {
	a := []float64{0, 1, 0, -1, 0}
	d, err := warp.Distance(a, a, nil)
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestDistance_WarpedCopy(t *testing.T) {
	// b stretches a's plateau; the alignment absorbs it at zero cost.
	a := []float64{0, 1, 0}
	b := []float64{0, 0, 1, 1, 0}
	d, err := warp.Distance(a, b, nil)
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestDistance_AmplitudeMismatch(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 4}

	raw, err := warp.Distance(a, b, &warp.Options{})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, raw, 1e-12)

	norm, err := warp.Distance(a, b, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/6.0, norm, 1e-12)
}

func TestDistance_ShiftedPulse(t *testing.T) {
	a := []float64{0, 0, 1, 2, 1, 0, 0, 0, 0}
	b := []float64{0, 0, 0, 0, 1, 2, 1, 0, 0}
	d, err := warp.Distance(a, b, nil)
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestDistance_SlopePenalty(t *testing.T) {
	a := []float64{0, 0}
	b := []float64{0, 0, 0}
	d, err := warp.Distance(a, b, &warp.Options{SlopePenalty: 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, d, 1e-12)
}

func TestDistance_WindowForbidsAlignment(t *testing.T) {
	a := []float64{0, 0}
	b := []float64{0, 0, 0, 0, 0}
	d, err := warp.Distance(a, b, &warp.Options{Window: 1})
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))
}

func TestDistance_Errors(t *testing.T) {
	_, err := warp.Distance(nil, []float64{1}, nil)
	assert.ErrorIs(t, err, warp.ErrEmptyInput)

	_, err = warp.Distance([]float64{1}, nil, nil)
	assert.ErrorIs(t, err, warp.ErrEmptyInput)

	_, err = warp.Distance([]float64{1}, []float64{1}, &warp.Options{Window: -1})
	assert.ErrorIs(t, err, warp.ErrBadWindow)
}

func TestDefaultOptions(t *testing.T) {
	o := warp.DefaultOptions()
	assert.Zero(t, o.Window)
	assert.Zero(t, o.SlopePenalty)
	assert.True(t, o.Normalize)
}
