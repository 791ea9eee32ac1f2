package waveform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const twoPi = 2 * math.Pi

// Kind tags the two waveform variants. Comparison and conversion dispatch on
// the pair of kinds instead of on concrete types.
type Kind int

const (
	// KindPeriodic marks a waveform described by one repeating cycle.
	KindPeriodic Kind = iota
	// KindNonPeriodic marks a waveform described by an explicit finite buffer.
	KindNonPeriodic
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindPeriodic:
		return "periodic"
	case KindNonPeriodic:
		return "non-periodic"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Waveform is the capability set every variant exposes. Both implementations
// live in this package, so constructors and the abstract contract share one
// import path and no cycle can form.
type Waveform interface {
	// Kind reports the variant tag used for comparison dispatch.
	Kind() Kind
	// Samples returns a copy of the normalized amplitude values in [-1, 1].
	Samples() []float64
	// SampleInterval returns the time in seconds between adjacent samples.
	SampleInterval() float64
	// Volts converts the normalized samples to voltage values; the exact
	// formula differs per variant.
	Volts() []float64
	// PlotData returns a (time axis, volts) pair for external charting.
	PlotData() (t, v []float64)
	// Label returns a human-readable variant name for chart titling.
	Label() string
}

// validateSamples enforces the [-1, 1] normalized-range invariant.
func validateSamples(data []float64) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: sample buffer is empty", ErrInvalidParameter)
	}
	lo, hi := floats.Min(data), floats.Max(data)
	if lo < -1 || hi > 1 {
		return fmt.Errorf("%w, observed range [%g, %g]", ErrInvalidData, lo, hi)
	}

	return nil
}

// normalizePhase maps any angle into [0, 2π).
func normalizePhase(phase float64) float64 {
	phase = math.Mod(phase, twoPi)
	if phase < 0 {
		phase += twoPi
	}

	return phase
}

// cloneFloats returns an independent copy of x.
func cloneFloats(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)

	return out
}

// roundSamples rounds every value to six decimal digits, the precision
// resampled buffers are stored with.
func roundSamples(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Round(v*1e6) / 1e6
	}

	return out
}

// resampleCount returns the sample count a buffer of n points at interval
// old maps to at interval target.
func resampleCount(n int, old, target float64) int {
	return int(math.Round(float64(n) * old / target))
}

// timeAxis returns n evenly spaced instants starting at zero.
func timeAxis(n int, dt float64) []float64 {
	t := make([]float64, n)
	for i := range t {
		t[i] = float64(i) * dt
	}

	return t
}
