package waveform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wavekit/dsp"
)

// Periodic is a waveform fully described by one cycle of normalized samples
// plus frequency, peak-to-peak amplitude, DC offset and phase. The value is
// immutable; every transform returns a new instance.
type Periodic struct {
	data   []float64
	freq   float64
	vpp    float64
	offset float64
	phase  float64
	label  string
}

// NewPeriodic builds a periodic waveform from one cycle of normalized
// samples. The phase is normalized into [0, 2π). Fails with ErrInvalidData
// for samples outside [-1, 1] and ErrInvalidParameter for a non-positive
// frequency or an empty cycle.
func NewPeriodic(samples []float64, freqHz, amplitudeVpp, offsetVolts, phaseRad float64) (*Periodic, error) {
	if freqHz <= 0 {
		return nil, fmt.Errorf("%w: frequency must be positive, got %g Hz", ErrInvalidParameter, freqHz)
	}
	if err := validateSamples(samples); err != nil {
		return nil, err
	}

	return &Periodic{
		data:   cloneFloats(samples),
		freq:   freqHz,
		vpp:    amplitudeVpp,
		offset: offsetVolts,
		phase:  normalizePhase(phaseRad),
		label:  "Periodic",
	}, nil
}

// Kind reports KindPeriodic.
func (p *Periodic) Kind() Kind { return KindPeriodic }

// Samples returns a copy of the one-cycle normalized sample buffer.
func (p *Periodic) Samples() []float64 { return cloneFloats(p.data) }

// Frequency returns the waveform frequency in hertz.
func (p *Periodic) Frequency() float64 { return p.freq }

// AmplitudeVpp returns the peak-to-peak amplitude in volts.
func (p *Periodic) AmplitudeVpp() float64 { return p.vpp }

// Offset returns the DC offset in volts.
func (p *Periodic) Offset() float64 { return p.offset }

// Phase returns the phase in radians, always within [0, 2π).
func (p *Periodic) Phase() float64 { return p.phase }

// SampleInterval returns the derived per-sample time delta: one period
// divided by the cycle sample count.
func (p *Periodic) SampleInterval() float64 {
	return (1 / p.freq) / float64(len(p.data))
}

// Label returns the human-readable variant name.
func (p *Periodic) Label() string { return p.label }

// WithLabel returns a copy carrying the given label.
func (p *Periodic) WithLabel(label string) *Periodic {
	out := *p
	out.data = cloneFloats(p.data)
	out.label = label

	return &out
}

// Volts converts the cycle to voltage values: the buffer is first rotated by
// the phase (tail before head), then scaled by Vpp/2 and shifted by the
// offset. The offset is subtracted here while NonPeriodic.Volts adds it;
// downstream measurements rely on the asymmetry.
func (p *Periodic) Volts() []float64 {
	n := len(p.data)
	split := int(math.Round(float64(n)*p.phase/twoPi)) % n
	out := make([]float64, 0, n)
	out = append(out, p.data[split:]...)
	out = append(out, p.data[:split]...)
	for i := range out {
		out[i] = out[i]*p.vpp/2 - p.offset
	}

	return out
}

// PlotData returns one period of (time, volts) pairs for external charting.
func (p *Periodic) PlotData() (t, v []float64) {
	return timeAxis(len(p.data), p.SampleInterval()), p.Volts()
}

// Resample returns a new periodic waveform whose cycle holds
// round(n·old/new) samples obtained by band-limited resampling and rounded
// to six decimals. Fails with ErrInvalidResample when no sample would remain.
func (p *Periodic) Resample(intervalSec float64) (*Periodic, error) {
	if intervalSec <= 0 {
		return nil, fmt.Errorf("%w: sample interval must be positive, got %g s", ErrInvalidParameter, intervalSec)
	}
	n := resampleCount(len(p.data), p.SampleInterval(), intervalSec)
	if n == 0 {
		return nil, fmt.Errorf("%w: interval %g s across a %g Hz cycle", ErrInvalidResample, intervalSec, p.freq)
	}
	resampled, err := dsp.Resample(p.data, n)
	if err != nil {
		return nil, err
	}
	out, err := NewPeriodic(roundSamples(resampled), p.freq, p.vpp, p.offset, p.phase)
	if err != nil {
		return nil, err
	}

	return out.WithLabel(p.label), nil
}

// PhaseDifferenceTo estimates the cyclic shift, in radians within [0, 2π),
// that aligns p with other. Both waveforms are resampled to the coarser
// shared interval and converted to volts; p's cycle is tiled twice so any
// circular shift shows up in a linear valid-mode cross-correlation, and the
// argmax of that correlation is the alignment offset. The offset is accepted
// only if rotating other by it makes the two waveforms RMSE-equal.
//
// ok is false when the waveforms differ in amplitude, frequency or shape —
// the expected "not periodic-equal" outcome. Errors are reserved for
// malformed inputs.
func (p *Periodic) PhaseDifferenceTo(other *Periodic, opt *CompareOptions) (phase float64, ok bool, err error) {
	o := fillCompareOptions(opt)
	if p.vpp != other.vpp || p.freq != other.freq {
		return 0, false, nil
	}

	common := math.Max(p.SampleInterval(), other.SampleInterval())
	self, err := p.Resample(common)
	if err != nil {
		return 0, false, err
	}
	ref, err := other.Resample(common)
	if err != nil {
		return 0, false, err
	}

	tiled := dsp.Tile(self.Volts(), 2)
	refVolts := ref.Volts()
	corr, err := dsp.Correlate(tiled, refVolts, dsp.Valid)
	if err != nil {
		return 0, false, err
	}
	best := dsp.ArgMax(corr)

	n := len(tiled) / 2
	window := len(tiled) - best
	if window > n {
		window = n
	}
	if window < len(refVolts) {
		return 0, false, nil // degenerate alignment
	}
	// a full-cycle offset is the same shift as zero
	phase = normalizePhase(twoPi * float64(best) / float64(n))

	candidate := &Periodic{
		data:   cloneFloats(other.data),
		freq:   other.freq,
		vpp:    other.vpp,
		offset: other.offset,
		phase:  normalizePhase(other.phase - phase),
		label:  other.label,
	}
	direct := o
	direct.IgnorePhase = false
	eq, err := comparePeriodicPair(p, candidate, direct)
	if err != nil {
		return 0, false, err
	}
	if !eq {
		return 0, false, nil
	}

	return phase, true, nil
}

// Compare reports whether p and other describe the same signal within the
// RMSE tolerance. See Compare for the dispatch rules.
func (p *Periodic) Compare(other Waveform, opt *CompareOptions) (bool, error) {
	return Compare(p, other, opt)
}
