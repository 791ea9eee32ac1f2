package waveform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wavekit/dsp"
)

// compareFunc compares two waveforms of the kinds it is registered for.
type compareFunc func(a, b Waveform, o CompareOptions) (bool, error)

// comparators dispatches on the (Kind, Kind) pair. Mixed pairs derive the
// periodic equivalent of the non-periodic side and delegate to the
// periodic/periodic entry.
var comparators = map[[2]Kind]compareFunc{
	{KindPeriodic, KindPeriodic}:       comparePeriodic,
	{KindPeriodic, KindNonPeriodic}:    comparePeriodicMixed,
	{KindNonPeriodic, KindPeriodic}:    compareNonPeriodicMixed,
	{KindNonPeriodic, KindNonPeriodic}: compareNonPeriodic,
}

// Compare reports whether a and b describe the same signal within the RMSE
// tolerance in opt (nil means DefaultCompareOptions). Comparison is
// polymorphic over the kind pair:
//
//   - periodic vs periodic: unequal frequencies never match; with
//     IgnorePhase the waveforms match when some cyclic shift aligns them
//     (PhaseDifferenceTo), otherwise both are resampled to the coarser
//     shared interval and their voltage RMSE must stay below MaxRMSE.
//   - non-periodic vs non-periodic: resample to the coarser interval,
//     convert to volts, require equal lengths and RMSE below MaxRMSE.
//   - mixed kinds: the non-periodic side is converted with ExtractPeriodic
//     first; extraction failures surface as errors.
func Compare(a, b Waveform, opt *CompareOptions) (bool, error) {
	o := fillCompareOptions(opt)
	fn, found := comparators[[2]Kind{a.Kind(), b.Kind()}]
	if !found {
		return false, fmt.Errorf("%w: unsupported kind pair (%s, %s)", ErrInvalidParameter, a.Kind(), b.Kind())
	}

	return fn(a, b, o)
}

func comparePeriodic(a, b Waveform, o CompareOptions) (bool, error) {
	return comparePeriodicPair(a.(*Periodic), b.(*Periodic), o)
}

func comparePeriodicMixed(a, b Waveform, o CompareOptions) (bool, error) {
	equivalent, err := b.(*NonPeriodic).ExtractPeriodic(&o.Extract)
	if err != nil {
		return false, err
	}

	// roles swapped: the derived periodic compares against the periodic side
	return comparePeriodicPair(equivalent, a.(*Periodic), o)
}

func compareNonPeriodicMixed(a, b Waveform, o CompareOptions) (bool, error) {
	equivalent, err := a.(*NonPeriodic).ExtractPeriodic(&o.Extract)
	if err != nil {
		return false, err
	}

	return comparePeriodicPair(equivalent, b.(*Periodic), o)
}

// comparePeriodicPair is the periodic/periodic comparison both the dispatch
// table and PhaseDifferenceTo use.
func comparePeriodicPair(a, b *Periodic, o CompareOptions) (bool, error) {
	if a.freq != b.freq {
		return false, nil
	}

	if o.IgnorePhase {
		_, ok, err := a.PhaseDifferenceTo(b, &o)

		return ok, err
	}

	common := math.Max(a.SampleInterval(), b.SampleInterval())
	ra, err := a.Resample(common)
	if err != nil {
		return false, err
	}
	rb, err := b.Resample(common)
	if err != nil {
		return false, err
	}
	rmse, err := dsp.RMSE(ra.Volts(), rb.Volts())
	if err != nil {
		return false, err
	}

	return rmse < o.MaxRMSE, nil
}

func compareNonPeriodic(a, b Waveform, o CompareOptions) (bool, error) {
	wa, wb := a.(*NonPeriodic), b.(*NonPeriodic)
	common := math.Max(wa.interval, wb.interval)
	ra, err := wa.Resample(common)
	if err != nil {
		return false, err
	}
	rb, err := wb.Resample(common)
	if err != nil {
		return false, err
	}
	va, vb := ra.Volts(), rb.Volts()
	if len(va) != len(vb) {
		return false, nil
	}
	rmse, err := dsp.RMSE(va, vb)
	if err != nil {
		return false, err
	}

	return rmse < o.MaxRMSE, nil
}
