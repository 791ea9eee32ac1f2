package dsp_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wavekit/dsp"
)

// ExampleResample upsamples one exact sine cycle from 4 to 8 points; the
// interpolated samples land on the underlying sine.
func ExampleResample() {
	x := []float64{0, 1, 0, -1} // sin at 4 points per cycle

	y, err := dsp.Resample(x, 8)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%d points, quarter-cycle value %.2f\n", len(y), y[2])
	// Output:
	// 8 points, quarter-cycle value 1.00
}

// ExampleFindPeaks locates the repeating-lag peaks of a noisy two-bump
// profile.
func ExampleFindPeaks() {
	x := []float64{0.0, 0.1, 0.9, 0.2, 0.05, 0.3, 0.7, 0.1}

	peaks := dsp.FindPeaks(x, dsp.PeakOptions{MinHeight: 0.5})
	fmt.Println(peaks)
	// Output:
	// [2 6]
}

// ExampleCorrelate finds the shift between a signal and its delayed copy.
func ExampleCorrelate() {
	n, shift := 64, 9
	a := make([]float64, n)
	b := make([]float64, n)
	for i := range a {
		a[i] = math.Sin(2 * math.Pi * 4 * float64(i) / float64(n))
	}
	copy(b[shift:], a[:n-shift]) // b lags a by 9 samples

	corr, err := dsp.Correlate(a, b, dsp.Full)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	lag := dsp.ArgMax(corr) - (len(b) - 1)
	fmt.Println("best lag:", lag)
	// Output:
	// best lag: -9
}
