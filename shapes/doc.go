// Package shapes provides closed-form one-cycle generators for the common
// test-bench waveforms: sine, cosine, DC and a cardiac-like pattern. Each
// generator is a pure constructor returning a waveform.Periodic value;
// shape is data, not a subtype.
//
// Sine, cosine and cardiac cycles hold 16384 points; DC holds 2. Sine and
// cosine sample the closed [0, 2π] interval, so the first sample reappears
// as the last one. Extraction and comparison are calibrated against this
// sampling.
//
//	go get github.com/katalvlaran/wavekit/shapes
package shapes
