// Package wavekit models electrical waveforms as immutable sampled-signal
// values — from closed-form generators to captured oscilloscope buffers.
//
// 🚀 What is wavekit?
//
//	A measurement/test-automation helper library that brings together:
//		• Waveform values: periodic (one cycle + frequency/amplitude/phase/offset)
//		  and non-periodic (finite buffer + amplitude/interval/offset)
//		• Generators: sine, cosine, DC and a cardiac-like pattern
//		• Periodicity extraction: recover the repeating cycle of a raw capture
//		  via autocorrelation peak analysis
//		• Phase estimation: cross-correlation phase difference between two
//		  periodic waveforms
//		• Similarity: RMSE-based equivalence across both waveform kinds, plus
//		  a time-warped distance for jittery captures
//		• Rendering: HTML line charts of any waveform's voltage trace
//
// ✨ Why choose wavekit?
//
//   - Value semantics – every transform returns a new waveform, nothing mutates
//   - Tolerance-first – comparisons are RMSE-thresholded, never exact-equality
//   - Tunable – every empirical extraction constant is an Options field
//   - Pure Go numeric stack – gonum + go-dsp, no cgo
//
// Everything is organized under five subpackages:
//
//	dsp/      — resampling, correlation, peak detection, detrending primitives
//	waveform/ — the Periodic/NonPeriodic value types, extraction & comparison
//	shapes/   — closed-form one-cycle generators
//	warp/     — dynamic-time-warped distance for jitter-tolerant comparison
//	render/   — go-echarts chart output for any waveform
//
// Quick ASCII example:
//
//	 1┤  ╭─╮       ╭─╮
//	 0┼──┼─┼───┼───┼─┼──
//	-1┤    ╰─╯      ╰─╯
//
//	a captured buffer collapses to one averaged cycle plus a frequency.
//
// Dive into README-level docs in each package's doc.go for full examples.
//
//	go get github.com/katalvlaran/wavekit/waveform
package wavekit
