package shapes

import (
	"math"

	"github.com/katalvlaran/wavekit/waveform"
)

// One Gaussian bump of the cardiac pattern: amplitude at a cycle-phase
// center with a given width. Centers and widths are cycle fractions.
type bump struct {
	amp    float64
	center float64
	sigma  float64
}

// The five components of one heartbeat: atrial deflection (P), the
// three-lobe main complex (Q, R, S) and the recovery wave (T).
var cardiacBumps = []bump{
	{0.25, 0.18, 0.045},   // P
	{-0.15, 0.355, 0.018}, // Q
	{1.00, 0.38, 0.012},   // R
	{-0.35, 0.415, 0.022}, // S
	{0.40, 0.68, 0.085},   // T
}

// Cardiac returns one cycle of a simplified heartbeat waveform: the sum of
// five Gaussian bumps at fixed phase offsets. The cycle is sampled on the
// half-open [0, 1) phase grid so it repeats seamlessly.
func Cardiac(freqHz, amplitudeVpp, offsetVolts, phaseRad float64) (*waveform.Periodic, error) {
	data := make([]float64, PointsPerCycle)
	for i := range data {
		phase := float64(i) / PointsPerCycle
		var v float64
		for _, b := range cardiacBumps {
			d := phase - b.center
			v += b.amp * math.Exp(-d*d/(2*b.sigma*b.sigma))
		}
		data[i] = v
	}
	p, err := waveform.NewPeriodic(data, freqHz, amplitudeVpp, offsetVolts, phaseRad)
	if err != nil {
		return nil, err
	}

	return p.WithLabel("Cardiac"), nil
}
