package dsp

import (
	"math"
	"sort"
)

// PeakOptions filters the local maxima reported by FindPeaks.
// A zero value disables the corresponding criterion.
//   - MinHeight: minimal sample value at the peak.
//   - MinDistance: minimal index separation between surviving peaks;
//     when two peaks are closer, the higher one wins.
//   - MinProminence: minimal vertical drop to the surrounding contour line
//     (the classic topographic prominence definition).
type PeakOptions struct {
	MinHeight     float64
	MinDistance   float64
	MinProminence float64
}

// FindPeaks returns the indices of local maxima of x, ascending.
// A plateau counts as a single peak located at its midpoint. Filters are
// applied in order: height, distance, prominence.
func FindPeaks(x []float64, opt PeakOptions) []int {
	peaks := localMaxima(x)

	if opt.MinHeight > 0 {
		kept := peaks[:0]
		for _, p := range peaks {
			if x[p] >= opt.MinHeight {
				kept = append(kept, p)
			}
		}
		peaks = kept
	}

	if opt.MinDistance > 0 {
		peaks = selectByDistance(x, peaks, opt.MinDistance)
	}

	if opt.MinProminence > 0 {
		kept := peaks[:0]
		for _, p := range peaks {
			if prominence(x, p) >= opt.MinProminence {
				kept = append(kept, p)
			}
		}
		peaks = kept
	}

	return peaks
}

// localMaxima scans for strict rises followed by strict falls; flat tops are
// reduced to their middle sample.
func localMaxima(x []float64) []int {
	var peaks []int
	n := len(x)
	for i := 1; i < n-1; i++ {
		if x[i] <= x[i-1] {
			continue
		}
		// walk over a possible plateau
		ahead := i + 1
		for ahead < n-1 && x[ahead] == x[i] {
			ahead++
		}
		if x[ahead] < x[i] {
			peaks = append(peaks, (i+ahead-1)/2)
			i = ahead
		}
	}

	return peaks
}

// selectByDistance keeps the highest peaks first and suppresses any other
// peak closer than dist samples to an already kept one.
func selectByDistance(x []float64, peaks []int, dist float64) []int {
	minSep := int(math.Ceil(dist))

	order := make([]int, len(peaks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return x[peaks[order[a]]] > x[peaks[order[b]]] })

	removed := make([]bool, len(peaks))
	for _, i := range order {
		if removed[i] {
			continue
		}
		for j := i - 1; j >= 0 && peaks[i]-peaks[j] < minSep; j-- {
			removed[j] = true
		}
		for j := i + 1; j < len(peaks) && peaks[j]-peaks[i] < minSep; j++ {
			removed[j] = true
		}
	}

	kept := peaks[:0]
	for i, p := range peaks {
		if !removed[i] {
			kept = append(kept, p)
		}
	}

	return kept
}

// prominence measures how far the peak rises above the lowest contour line
// enclosing it and no higher peak.
func prominence(x []float64, p int) float64 {
	leftMin := x[p]
	for i := p - 1; i >= 0 && x[i] <= x[p]; i-- {
		if x[i] < leftMin {
			leftMin = x[i]
		}
	}
	rightMin := x[p]
	for i := p + 1; i < len(x) && x[i] <= x[p]; i++ {
		if x[i] < rightMin {
			rightMin = x[i]
		}
	}
	base := leftMin
	if rightMin > base {
		base = rightMin
	}

	return x[p] - base
}
