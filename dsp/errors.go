package dsp

import "errors"

var (
	// ErrEmptyInput indicates an input sequence has no samples.
	ErrEmptyInput = errors.New("dsp: input sequence must be non-empty")
	// ErrBadLength indicates a non-positive target length.
	ErrBadLength = errors.New("dsp: target length must be positive")
	// ErrShortInput indicates the first sequence is shorter than the second
	// in Valid correlation mode.
	ErrShortInput = errors.New("dsp: valid mode requires len(a) >= len(b)")
	// ErrLengthMismatch indicates two sequences differ in length.
	ErrLengthMismatch = errors.New("dsp: sequences must have equal length")
)
