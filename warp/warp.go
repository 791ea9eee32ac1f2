package warp

import (
	"errors"
	"math"
)

var (
	// ErrEmptyInput indicates one or both input traces are empty.
	ErrEmptyInput = errors.New("warp: input traces must be non-empty")
	// ErrBadWindow indicates a negative Sakoe–Chiba window.
	ErrBadWindow = errors.New("warp: window must be non-negative")
)

// Options configures the warped-distance computation.
//   - Window: Sakoe–Chiba band half-width in samples; alignment cells with
//     |i-j| beyond it are forbidden. Zero disables the constraint.
//   - SlopePenalty: extra cost for insertion/deletion steps, biasing the
//     alignment toward the diagonal.
//   - Normalize: divide the accumulated cost by len(a)+len(b) so distances
//     of traces with different lengths stay comparable.
type Options struct {
	Window       int
	SlopePenalty float64
	Normalize    bool
}

// DefaultOptions returns the defaults: no window, no slope penalty,
// length-normalized output.
func DefaultOptions() Options {
	return Options{Normalize: true}
}

// Distance returns the dynamic-time-warping distance between traces a and b
// under opts (nil means DefaultOptions). The result is +Inf when the window
// forbids every complete alignment.
func Distance(a, b []float64, opts *Options) (float64, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, ErrEmptyInput
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Window < 0 {
		return 0, ErrBadWindow
	}

	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if o.Window > 0 && abs(i-j) > o.Window {
				curr[j] = inf

				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			step := prev[j-1] // match
			if v := prev[j] + o.SlopePenalty; v < step {
				step = v // insertion
			}
			if v := curr[j-1] + o.SlopePenalty; v < step {
				step = v // deletion
			}
			curr[j] = cost + step
		}
		prev, curr = curr, prev
	}

	d := prev[m]
	if o.Normalize && !math.IsInf(d, 1) {
		d /= float64(n + m)
	}

	return d, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
