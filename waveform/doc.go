// Package waveform models electrical signals as immutable sampled values in
// two kinds: Periodic (one canonical cycle plus frequency, peak-to-peak
// amplitude, DC offset and phase) and NonPeriodic (a finite buffer plus
// amplitude multiplier, sample interval and DC offset).
//
// 🚀 What can it do?
//
//   - Convert normalized samples ([-1,1]) to volts, per kind
//   - Resample any waveform to a new sample interval (band-limited)
//   - Extract the periodic component of a raw capture via autocorrelation
//     (NonPeriodic.ExtractPeriodic)
//   - Estimate the phase difference between two periodic waveforms via
//     cross-correlation (Periodic.PhaseDifferenceTo)
//   - Compare any two waveforms with an RMSE tolerance (Compare), converting
//     non-periodic to periodic automatically for mixed kinds
//
// ✨ Guarantees:
//
//   - Value semantics: constructors copy, accessors copy, transforms return
//     new instances; a waveform never changes after construction.
//   - Construction-time validation: samples outside [-1,1] fail with
//     ErrInvalidData carrying the observed range.
//   - Comparison is polymorphic over the kind pair through a dispatch table;
//     every empirical extraction constant lives in ExtractOptions.
//
// ⚠️ Note one asymmetry: non-periodic voltage conversion adds the DC offset
// while periodic conversion subtracts it. Upstream measurement data depends
// on both behaviors; see the Volts doc comments.
//
//	go get github.com/katalvlaran/wavekit/waveform
package waveform
