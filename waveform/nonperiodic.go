package waveform

import (
	"fmt"

	"github.com/katalvlaran/wavekit/dsp"
	"github.com/katalvlaran/wavekit/warp"
)

// NonPeriodic is a waveform described by an explicit finite sample buffer
// with fixed spacing: normalized samples, an amplitude multiplier that
// scales them to volts, and a DC offset. Typically holds captured or
// synthesized raw data. Immutable after construction.
type NonPeriodic struct {
	data      []float64
	amplitude float64
	interval  float64
	offset    float64
	label     string
}

// NewNonPeriodic builds a non-periodic waveform from raw normalized samples.
// Fails with ErrInvalidData for samples outside [-1, 1] and
// ErrInvalidParameter for a non-positive sample interval or empty buffer.
func NewNonPeriodic(samples []float64, amplitudeVolts, intervalSec, offsetVolts float64) (*NonPeriodic, error) {
	if intervalSec <= 0 {
		return nil, fmt.Errorf("%w: sample interval must be positive, got %g s", ErrInvalidParameter, intervalSec)
	}
	if err := validateSamples(samples); err != nil {
		return nil, err
	}

	return &NonPeriodic{
		data:      cloneFloats(samples),
		amplitude: amplitudeVolts,
		interval:  intervalSec,
		offset:    offsetVolts,
		label:     "NonPeriodic",
	}, nil
}

// Kind reports KindNonPeriodic.
func (w *NonPeriodic) Kind() Kind { return KindNonPeriodic }

// Samples returns a copy of the normalized sample buffer.
func (w *NonPeriodic) Samples() []float64 { return cloneFloats(w.data) }

// Amplitude returns the multiplier that scales normalized samples to volts.
func (w *NonPeriodic) Amplitude() float64 { return w.amplitude }

// Offset returns the DC offset in volts.
func (w *NonPeriodic) Offset() float64 { return w.offset }

// SampleInterval returns the time in seconds between adjacent samples.
func (w *NonPeriodic) SampleInterval() float64 { return w.interval }

// TotalDuration returns the time spanned by the buffer:
// (sample count - 1) · interval.
func (w *NonPeriodic) TotalDuration() float64 {
	return float64(len(w.data)-1) * w.interval
}

// Label returns the human-readable variant name.
func (w *NonPeriodic) Label() string { return w.label }

// WithLabel returns a copy carrying the given label.
func (w *NonPeriodic) WithLabel(label string) *NonPeriodic {
	out := *w
	out.data = cloneFloats(w.data)
	out.label = label

	return &out
}

// Volts converts the samples to voltage values:
// samples · amplitude + offset. The offset is added here while
// Periodic.Volts subtracts it; see the note there.
func (w *NonPeriodic) Volts() []float64 {
	out := make([]float64, len(w.data))
	for i, v := range w.data {
		out[i] = v*w.amplitude + w.offset
	}

	return out
}

// PlotData returns (time, volts) pairs for external charting.
func (w *NonPeriodic) PlotData() (t, v []float64) {
	return timeAxis(len(w.data), w.interval), w.Volts()
}

// Resample returns a new non-periodic waveform with round(n·old/new)
// samples obtained by band-limited resampling and rounded to six decimals.
// Fails with ErrInvalidResample when no sample would remain.
func (w *NonPeriodic) Resample(intervalSec float64) (*NonPeriodic, error) {
	if intervalSec <= 0 {
		return nil, fmt.Errorf("%w: sample interval must be positive, got %g s", ErrInvalidParameter, intervalSec)
	}
	n := resampleCount(len(w.data), w.interval, intervalSec)
	if n == 0 {
		return nil, fmt.Errorf("%w: interval %g s across %g s of data", ErrInvalidResample, intervalSec, w.TotalDuration())
	}
	resampled, err := dsp.Resample(w.data, n)
	if err != nil {
		return nil, err
	}
	out, err := NewNonPeriodic(roundSamples(resampled), w.amplitude, intervalSec, w.offset)
	if err != nil {
		return nil, err
	}

	return out.WithLabel(w.label), nil
}

// WarpDistance returns the dynamic-time-warped distance between the voltage
// traces of two captures, resampled to the coarser shared interval first.
// Complements Compare for traces with timing jitter, where strict
// sample-by-sample RMSE is too pessimistic.
func (w *NonPeriodic) WarpDistance(other *NonPeriodic, opt *warp.Options) (float64, error) {
	common := w.interval
	if other.interval > common {
		common = other.interval
	}
	self, err := w.Resample(common)
	if err != nil {
		return 0, err
	}
	ref, err := other.Resample(common)
	if err != nil {
		return 0, err
	}

	return warp.Distance(self.Volts(), ref.Volts(), opt)
}

// Compare reports whether w and other describe the same signal within the
// RMSE tolerance. See Compare for the dispatch rules.
func (w *NonPeriodic) Compare(other Waveform, opt *CompareOptions) (bool, error) {
	return Compare(w, other, opt)
}
