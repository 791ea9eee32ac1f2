// Package dsp provides the numeric signal primitives the waveform types are
// built on: band-limited (Fourier) resampling, linear cross-correlation,
// peak detection with height/prominence/distance criteria, least-squares
// linear detrending and a handful of sequence helpers.
//
// The semantics intentionally match the well-known scientific conventions:
//
//   - Resample keeps the lowest frequency bins of the input spectrum and
//     reconstructs at the new rate (truncate or zero-pad, then inverse FFT).
//   - Correlate(a, b, Full) has length len(a)+len(b)-1 with zero lag at
//     index len(b)-1; Valid keeps only fully-overlapping positions.
//   - FindPeaks reports plateau-midpoint local maxima, filtered first by
//     minimum height, then by minimum inter-peak distance (highest peak
//     wins), then by minimum prominence.
//   - Detrend subtracts the least-squares line fitted over the index axis.
//
// All functions are pure: inputs are never modified, results are freshly
// allocated. Results are numerically deterministic for fixed inputs but not
// bit-reproducible across FFT backends; compare them with tolerances.
//
//	go get github.com/katalvlaran/wavekit/dsp
package dsp
