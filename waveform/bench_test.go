package waveform_test

import (
	"testing"

	"github.com/katalvlaran/wavekit/waveform"
)

func BenchmarkExtractPeriodic(b *testing.B) {
	captured := capturedSine(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := captured.ExtractPeriodic(nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompare_PeriodicIgnorePhase(b *testing.B) {
	sine := mustSine(b)
	cosine := mustCosine(b)
	opts := ignorePhase()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := waveform.Compare(sine, cosine, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPhaseDifferenceTo(b *testing.B) {
	sine := mustSine(b)
	cosine := mustCosine(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := sine.PhaseDifferenceTo(cosine, nil); err != nil {
			b.Fatal(err)
		}
	}
}
