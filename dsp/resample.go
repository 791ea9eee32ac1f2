package dsp

import "gonum.org/v1/gonum/dsp/fourier"

// Resample returns x resampled to exactly n points using the Fourier method:
// the real spectrum of x is truncated (downsampling) or zero-padded
// (upsampling) to the target bin count and transformed back at the new rate.
// The result is band-limited, so smooth signals survive a round trip within a
// small RMSE.
//
// Returns ErrEmptyInput if x is empty and ErrBadLength if n <= 0.
func Resample(x []float64, n int) ([]float64, error) {
	m := len(x)
	if m == 0 {
		return nil, ErrEmptyInput
	}
	if n <= 0 {
		return nil, ErrBadLength
	}
	if n == m {
		out := make([]float64, m)
		copy(out, x)

		return out, nil
	}

	spec := fourier.NewFFT(m).Coefficients(nil, x) // m/2+1 bins

	// Keep the bins both lengths can represent.
	keep := m
	if n < m {
		keep = n
	}
	nyq := keep/2 + 1
	out := make([]complex128, n/2+1)
	copy(out[:nyq], spec[:nyq])

	// The shared Nyquist bin carries half its energy in the other
	// representation; rebalance it so the inverse transform is exact.
	if keep%2 == 0 {
		if n < m {
			out[keep/2] *= 2
		} else {
			out[keep/2] *= 0.5
		}
	}

	y := fourier.NewFFT(n).Sequence(nil, out)
	// Sequence is unnormalized; together with the length change the net
	// scale is 1/m.
	scale := 1 / float64(m)
	for i := range y {
		y[i] *= scale
	}

	return y, nil
}

// Tile returns k copies of x laid end to end.
func Tile(x []float64, k int) []float64 {
	out := make([]float64, 0, len(x)*k)
	for i := 0; i < k; i++ {
		out = append(out, x...)
	}

	return out
}
