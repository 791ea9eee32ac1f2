package waveform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/wavekit/dsp"
)

// ptpGuard keeps the relative-variance ratio finite for near-flat mean cycles.
const ptpGuard = 1e-9

// ExtractPeriodic recovers the periodic component of a raw capture and
// returns it as a new Periodic waveform: frequency 1/(interval·period),
// peak-to-peak amplitude 2·amplitude, the offset carried over, phase zero,
// and the column-wise mean cycle as sample data. The extraction is lossy and
// one-shot; w itself is untouched.
//
// Candidate periods are peaks of the lag-0-normalized autocorrelation of the
// detrended buffer, restricted to lags >= max(MinLagFloor, n/MinLagDivisor)
// and corrected for the correlation taper via consecutive-peak spacing. The
// smallest candidates are evaluated first: a candidate is scored by the mean
// per-column spread across its cycles relative to the mean-cycle
// peak-to-peak, accepted immediately below RelVarThreshold, otherwise the
// globally best score wins.
//
// Errors: ErrInsufficientData below MinSamples, ErrNoPeriodicity when no
// autocorrelation peak qualifies (or the detrended buffer has no energy),
// ErrNoConsistentPeriod when every candidate spans fewer than MinCycles
// complete cycles.
func (w *NonPeriodic) ExtractPeriodic(opt *ExtractOptions) (*Periodic, error) {
	o := fillExtractOptions(opt)
	n := len(w.data)
	if n < o.MinSamples {
		return nil, fmt.Errorf("%w: need at least %d samples, have %d", ErrInsufficientData, o.MinSamples, n)
	}

	detrended := dsp.Detrend(w.data)
	corr, err := dsp.Correlate(detrended, detrended, dsp.Full)
	if err != nil {
		return nil, err
	}
	acf := corr[n-1:] // non-negative lags only
	if acf[0] <= ptpGuard {
		return nil, fmt.Errorf("%w: buffer has no energy after detrending", ErrNoPeriodicity)
	}
	floats.Scale(1/acf[0], acf)

	minLag := o.MinLagFloor
	if d := n / o.MinLagDivisor; d > minLag {
		minLag = d
	}
	peaks := dsp.FindPeaks(acf[minLag:], dsp.PeakOptions{
		MinHeight:     o.PeakHeight,
		MinProminence: o.PeakProminence,
		MinDistance:   float64(minLag) / 3,
	})
	if len(peaks) == 0 {
		return nil, fmt.Errorf("%w: no autocorrelation peak above height %g", ErrNoPeriodicity, o.PeakHeight)
	}
	if len(peaks) > o.MaxCandidates {
		peaks = peaks[:o.MaxCandidates]
	}
	lags := make([]int, len(peaks))
	for i, p := range peaks {
		lags[i] = p + minLag
	}

	bestPeriod := 0
	bestScore := math.Inf(1)
	for i := range lags { // ascending candidate periods
		period := refinePeriod(lags, i)
		cycles := n / period
		if cycles < o.MinCycles {
			continue
		}
		score := cycleSpread(w.data, period, cycles)
		if score < o.RelVarThreshold {
			bestPeriod = period

			break // first good candidate wins
		}
		if score < bestScore {
			bestPeriod, bestScore = period, score
		}
	}
	if bestPeriod == 0 {
		return nil, fmt.Errorf("%w: every candidate spans fewer than %d cycles", ErrNoConsistentPeriod, o.MinCycles)
	}

	mean := meanCycle(w.data, bestPeriod, n/bestPeriod)
	out, err := NewPeriodic(mean, 1/(w.interval*float64(bestPeriod)), w.amplitude*2, w.offset, 0)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// refinePeriod corrects candidate i for the linear taper of the full
// correlation: lag k sums only n-k products, which drags every peak slightly
// toward zero. Consecutive peaks carry the same bias, so their spacing does
// not, and the candidate snaps to the nearest multiple of it. A lone peak
// stays at its observed lag.
func refinePeriod(lags []int, i int) int {
	if len(lags) < 2 {
		return lags[i]
	}
	spacing := lags[1] - lags[0]
	mult := int(math.Round(float64(lags[i]) / float64(spacing)))
	if mult < 1 {
		return lags[i]
	}

	return mult * spacing
}

// cycleSpread reshapes the first cycles·period samples into rows of one
// period each and scores how much the rows disagree: the mean per-column
// population standard deviation, relative to the peak-to-peak range of the
// column-wise mean cycle.
func cycleSpread(x []float64, period, cycles int) float64 {
	col := make([]float64, cycles)
	mean := make([]float64, period)
	var spread float64
	for c := 0; c < period; c++ {
		for r := 0; r < cycles; r++ {
			col[r] = x[r*period+c]
		}
		mean[c] = stat.Mean(col, nil)
		spread += stat.PopStdDev(col, nil)
	}
	spread /= float64(period)
	ptp := floats.Max(mean) - floats.Min(mean)

	return spread / (ptp + ptpGuard)
}

// meanCycle averages the first cycles·period samples column-wise into one
// representative cycle.
func meanCycle(x []float64, period, cycles int) []float64 {
	mean := make([]float64, period)
	for r := 0; r < cycles; r++ {
		row := x[r*period : (r+1)*period]
		floats.Add(mean, row)
	}
	floats.Scale(1/float64(cycles), mean)

	return mean
}
