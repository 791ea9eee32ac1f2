package waveform

import "errors"

var (
	// ErrInvalidData indicates sample values outside the normalized [-1, 1]
	// range at construction time.
	ErrInvalidData = errors.New("waveform: sample values must lie within [-1, 1]")
	// ErrInvalidParameter indicates a malformed waveform parameter such as a
	// non-positive frequency or sample interval.
	ErrInvalidParameter = errors.New("waveform: invalid parameter")
	// ErrInsufficientData indicates too few samples for periodicity extraction.
	ErrInsufficientData = errors.New("waveform: too few samples for periodicity extraction")
	// ErrNoPeriodicity indicates no repeating structure was found in the
	// autocorrelation of the buffer.
	ErrNoPeriodicity = errors.New("waveform: no periodic structure detected")
	// ErrNoConsistentPeriod indicates candidate periods were found but none
	// covers enough complete cycles to be trusted.
	ErrNoConsistentPeriod = errors.New("waveform: no candidate period is consistent across cycles")
	// ErrInvalidResample indicates the target interval would leave zero samples.
	ErrInvalidResample = errors.New("waveform: target interval leaves no samples")
)
