// Package warp computes a dynamic-time-warping distance between voltage
// traces. Captured waveforms from real instruments jitter along the time
// axis, so a strict sample-by-sample RMSE can reject two traces of the same
// signal; the warped distance tolerates local stretching and compression.
//
// The computation is a classic two-row rolling DP in O(N·M) time and
// O(min-side) memory, with an optional Sakoe–Chiba band to bound how far the
// alignment may drift and an optional slope penalty to discourage excessive
// stretching. No alignment path is recovered; only the distance is needed
// for trace comparison.
//
// ⚙️ Usage:
//
//	opts := warp.DefaultOptions()
//	opts.Window = 10 // allow ±10 samples of drift
//	d, err := warp.Distance(traceA, traceB, &opts)
//
//	go get github.com/katalvlaran/wavekit/warp
package warp
