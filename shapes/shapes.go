package shapes

import (
	"math"

	"github.com/katalvlaran/wavekit/waveform"
)

// PointsPerCycle is the cycle resolution of the sine, cosine and cardiac
// generators.
const PointsPerCycle = 16384

// Sine returns one cycle of a sine waveform.
func Sine(freqHz, amplitudeVpp, offsetVolts, phaseRad float64) (*waveform.Periodic, error) {
	return closedCycle(math.Sin, "Sine", freqHz, amplitudeVpp, offsetVolts, phaseRad)
}

// Cosine returns one cycle of a cosine waveform.
func Cosine(freqHz, amplitudeVpp, offsetVolts, phaseRad float64) (*waveform.Periodic, error) {
	return closedCycle(math.Cos, "Cosine", freqHz, amplitudeVpp, offsetVolts, phaseRad)
}

// DC returns a flat waveform. Its normalized samples are zero, so the
// voltage trace is the negated offset (periodic conversion subtracts the
// offset — see waveform.Periodic.Volts).
func DC(freqHz, offsetVolts float64) (*waveform.Periodic, error) {
	p, err := waveform.NewPeriodic([]float64{0, 0}, freqHz, 0, offsetVolts, 0)
	if err != nil {
		return nil, err
	}

	return p.WithLabel("DC"), nil
}

// closedCycle samples fn over the closed [0, 2π] interval.
func closedCycle(fn func(float64) float64, label string, freqHz, amplitudeVpp, offsetVolts, phaseRad float64) (*waveform.Periodic, error) {
	data := make([]float64, PointsPerCycle)
	step := 2 * math.Pi / float64(PointsPerCycle-1)
	for i := range data {
		data[i] = fn(float64(i) * step)
	}
	p, err := waveform.NewPeriodic(data, freqHz, amplitudeVpp, offsetVolts, phaseRad)
	if err != nil {
		return nil, err
	}

	return p.WithLabel(label), nil
}
