package dsp

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// Mode selects which part of the correlation sequence Correlate returns.
type Mode int

const (
	// Full returns all len(a)+len(b)-1 lags; zero lag sits at index len(b)-1.
	Full Mode = iota
	// Valid returns only the len(a)-len(b)+1 positions where b overlaps a
	// completely, without zero padding.
	Valid
)

// Correlate computes the linear cross-correlation of a against b,
// c[k] = Σ_i a[i]·b[i-k+len(b)-1], via FFT convolution with the reversed
// second sequence. Both inputs are left untouched.
//
// Returns ErrEmptyInput if either sequence is empty, and ErrShortInput for
// Valid mode with len(a) < len(b).
func Correlate(a, b []float64, mode Mode) ([]float64, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return nil, ErrEmptyInput
	}
	if mode == Valid && n < m {
		return nil, ErrShortInput
	}

	length := n + m - 1
	fa := make([]complex128, length)
	fb := make([]complex128, length)
	for i, v := range a {
		fa[i] = complex(v, 0)
	}
	for i, v := range b {
		fb[m-1-i] = complex(v, 0) // reversed: correlation == convolution with rev(b)
	}

	ca := fft.FFT(fa)
	cb := fft.FFT(fb)
	for i := range ca {
		ca[i] *= cb[i]
	}
	inv := fft.IFFT(ca)

	full := make([]float64, length)
	for i, v := range inv {
		full[i] = real(v)
	}
	if mode == Valid {
		return full[m-1 : n], nil
	}

	return full, nil
}

// ArgMax returns the index of the largest value in x, the first one on ties,
// and -1 for an empty sequence.
func ArgMax(x []float64) int {
	best, bestVal := -1, math.Inf(-1)
	for i, v := range x {
		if v > bestVal {
			best, bestVal = i, v
		}
	}

	return best
}

// RMSE returns the root-mean-square error between two equal-length sequences.
func RMSE(a, b []float64) (float64, error) {
	if len(a) == 0 {
		return 0, ErrEmptyInput
	}
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}
	var ss float64
	for i := range a {
		d := a[i] - b[i]
		ss += d * d
	}

	return math.Sqrt(ss / float64(len(a))), nil
}
