package dsp

import "gonum.org/v1/gonum/stat"

// Detrend removes the least-squares linear fit over the sample index from x
// and returns the residual. Inputs shorter than two samples come back as
// zeros.
func Detrend(x []float64) []float64 {
	out := make([]float64, len(x))
	if len(x) < 2 {
		return out
	}

	idx := make([]float64, len(x))
	for i := range idx {
		idx[i] = float64(i)
	}
	alpha, beta := stat.LinearRegression(idx, x, nil, false)
	for i, v := range x {
		out[i] = v - (alpha + beta*idx[i])
	}

	return out
}
