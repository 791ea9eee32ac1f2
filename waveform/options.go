package waveform

// ExtractOptions tunes periodicity extraction (NonPeriodic.ExtractPeriodic).
// The defaults were tuned against oscilloscope-like noise profiles; fields
// left at zero fall back to them.
//
//   - MinSamples: minimal buffer length before extraction is attempted.
//   - MinLagFloor / MinLagDivisor: the smallest autocorrelation lag that may
//     count as a period is max(MinLagFloor, n/MinLagDivisor), suppressing
//     spurious near-zero-lag peaks.
//   - PeakHeight / PeakProminence: thresholds on the lag-0-normalized
//     autocorrelation peaks; the inter-peak distance is minLag/3.
//   - MaxCandidates: at most this many of the smallest candidate periods are
//     evaluated.
//   - MinCycles: candidates covering fewer complete cycles are skipped.
//   - RelVarThreshold: a candidate whose mean per-column cycle spread,
//     relative to the mean-cycle peak-to-peak, stays below this value is
//     accepted immediately; otherwise the global minimum wins.
type ExtractOptions struct {
	MinSamples      int
	MinLagFloor     int
	MinLagDivisor   int
	PeakHeight      float64
	PeakProminence  float64
	MaxCandidates   int
	MinCycles       int
	RelVarThreshold float64
}

// DefaultExtractOptions returns the tuned extraction defaults.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		MinSamples:      300,
		MinLagFloor:     8,
		MinLagDivisor:   80,
		PeakHeight:      0.28,
		PeakProminence:  0.18,
		MaxCandidates:   12,
		MinCycles:       3,
		RelVarThreshold: 0.22,
	}
}

// CompareOptions tunes waveform comparison.
//   - MaxRMSE: maximal voltage RMSE for two waveforms to count as equal.
//   - IgnorePhase: for periodic comparison, accept any cyclic shift that
//     aligns the two waveforms. Ignored on the non-periodic/non-periodic path.
//   - Extract: options used when a mixed-kind comparison has to derive a
//     periodic equivalent first.
type CompareOptions struct {
	MaxRMSE     float64
	IgnorePhase bool
	Extract     ExtractOptions
}

// DefaultCompareOptions returns the default comparison tolerances.
func DefaultCompareOptions() CompareOptions {
	return CompareOptions{
		MaxRMSE: 0.01,
		Extract: DefaultExtractOptions(),
	}
}

// fillCompareOptions applies defaults for a nil or zero-field options value.
func fillCompareOptions(opt *CompareOptions) CompareOptions {
	if opt == nil {
		return DefaultCompareOptions()
	}
	o := *opt
	if o.MaxRMSE <= 0 {
		o.MaxRMSE = 0.01
	}
	if o.Extract == (ExtractOptions{}) {
		o.Extract = DefaultExtractOptions()
	}

	return o
}

// fillExtractOptions applies defaults for a nil options value and backfills
// zero fields, so a partially populated struct never divides by zero inside
// the extraction.
func fillExtractOptions(opt *ExtractOptions) ExtractOptions {
	if opt == nil {
		return DefaultExtractOptions()
	}
	o := *opt
	def := DefaultExtractOptions()
	if o.MinSamples <= 0 {
		o.MinSamples = def.MinSamples
	}
	if o.MinLagFloor <= 0 {
		o.MinLagFloor = def.MinLagFloor
	}
	if o.MinLagDivisor <= 0 {
		o.MinLagDivisor = def.MinLagDivisor
	}
	if o.PeakHeight <= 0 {
		o.PeakHeight = def.PeakHeight
	}
	if o.PeakProminence <= 0 {
		o.PeakProminence = def.PeakProminence
	}
	if o.MaxCandidates <= 0 {
		o.MaxCandidates = def.MaxCandidates
	}
	if o.MinCycles <= 0 {
		o.MinCycles = def.MinCycles
	}
	if o.RelVarThreshold <= 0 {
		o.RelVarThreshold = def.RelVarThreshold
	}

	return o
}
