package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/RyanBlaney/waveform-catalog/pkg/waveform"
)

// CompareOptions controls waveform and trace comparison
type CompareOptions struct {
	// MaxRMSE is the largest root-mean-square error between the two sampled
	// signals for which they still count as identical
	MaxRMSE float64

	// IgnorePhase shifts one signal against the other and compares at the
	// best cross-correlation alignment, so a sine and a cosine of the same
	// frequency and amplitude compare as equal
	IgnorePhase bool

	// PointsPerPeriod is the sampling density used when comparing periodic
	// waveforms over a single period
	PointsPerPeriod int
}

// DefaultCompareOptions returns the comparison defaults
func DefaultCompareOptions() CompareOptions {
	return CompareOptions{
		MaxRMSE:         0.01,
		IgnorePhase:     false,
		PointsPerPeriod: 1024,
	}
}

// RMSE returns the root-mean-square error between two equal-length sample
// slices
func RMSE(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return math.Inf(1)
	}
	sq := make([]float64, len(a))
	for i := range a {
		d := a[i] - b[i]
		sq[i] = d * d
	}
	return math.Sqrt(stat.Mean(sq, nil))
}

// bestCircularLag returns the shift of y (in samples) that maximizes the
// circular cross-correlation with x. Both slices must have the same length.
func bestCircularLag(x, y []float64) int {
	n := len(x)
	doubled := make([]float64, 2*n)
	copy(doubled, x)
	copy(doubled[n:], x)

	bestLag, bestCorr := 0, math.Inf(-1)
	for lag := 0; lag < n; lag++ {
		var corr float64
		for i := 0; i < n; i++ {
			corr += doubled[lag+i] * y[i]
		}
		if corr > bestCorr {
			bestCorr = corr
			bestLag = lag
		}
	}
	return bestLag
}

func rotate(x []float64, lag int) []float64 {
	n := len(x)
	out := make([]float64, n)
	for i := range out {
		out[i] = x[(i+lag)%n]
	}
	return out
}

// CompareTraces compares two recorded traces. Both are resampled to the
// coarser of the two intervals first; traces of different total duration are
// never equal.
func CompareTraces(a, b *Trace, opts CompareOptions) (bool, error) {
	common := math.Max(a.Interval(), b.Interval())
	ra, err := Resample(a, common)
	if err != nil {
		return false, err
	}
	rb, err := Resample(b, common)
	if err != nil {
		return false, err
	}
	va, vb := ra.values, rb.values
	if len(va) != len(vb) {
		return false, nil
	}
	if opts.IgnorePhase {
		va = rotate(va, bestCircularLag(va, vb))
	}
	return RMSE(va, vb) < opts.MaxRMSE, nil
}

// onePeriod samples a single period of a periodic waveform at n points. For a
// DC waveform, which has no period of its own, the fallback period is used.
func onePeriod(w waveform.Waveform, fallbackPeriod float64, n int) ([]float64, error) {
	d := w.Describe()
	period := d.Period
	if period <= 0 {
		period = fallbackPeriod
	}
	times := make([]float64, n)
	step := period / float64(n)
	for i := range times {
		times[i] = float64(i) * step
	}
	return w.Sample(times)
}

// Compare reports whether two waveforms describe the same signal within
// opts.MaxRMSE. Periodic waveforms are compared over one period; a
// non-periodic waveform is first reduced to its periodic equivalent via
// ExtractPeriodic. Periodic waveforms of different frequency are never equal.
func Compare(a, b waveform.Waveform, opts CompareOptions) (bool, error) {
	var err error
	if a, err = asPeriodic(a, opts); err != nil {
		return false, err
	}
	if b, err = asPeriodic(b, opts); err != nil {
		return false, err
	}

	da, db := a.Describe(), b.Describe()
	// DC carries no frequency, so only check when both declare one. The 1%
	// slack absorbs the period estimation error of extracted patterns.
	if da.Frequency > 0 && db.Frequency > 0 {
		if math.Abs(da.Frequency-db.Frequency) > 0.01*da.Frequency {
			return false, nil
		}
	}

	fallback := math.Max(da.Period, db.Period)
	if fallback <= 0 {
		fallback = 1
	}
	va, err := onePeriod(a, fallback, opts.PointsPerPeriod)
	if err != nil {
		return false, err
	}
	vb, err := onePeriod(b, fallback, opts.PointsPerPeriod)
	if err != nil {
		return false, err
	}
	if opts.IgnorePhase {
		va = rotate(va, bestCircularLag(va, vb))
	}
	return RMSE(va, vb) < opts.MaxRMSE, nil
}

// PhaseDifference returns the phase in [0, 2*pi) by which b must be advanced
// to align with a, found at the best cross-correlation lag over one period.
// ok is false when the waveforms do not match within opts.MaxRMSE even at the
// best alignment, or when their frequencies differ.
func PhaseDifference(a, b waveform.Waveform, opts CompareOptions) (phase float64, ok bool, err error) {
	da, db := a.Describe(), b.Describe()
	if !da.Periodic || !db.Periodic || da.Period <= 0 || db.Period <= 0 {
		return 0, false, waveform.NewError(a.Kind(), waveform.ErrCodeParameter,
			"phase difference requires two periodic waveforms", nil)
	}
	if math.Abs(da.Frequency-db.Frequency) > 1e-6*da.Frequency {
		return 0, false, nil
	}

	n := opts.PointsPerPeriod
	va, err := onePeriod(a, da.Period, n)
	if err != nil {
		return 0, false, err
	}
	vb, err := onePeriod(b, db.Period, n)
	if err != nil {
		return 0, false, err
	}
	lag := bestCircularLag(va, vb)
	if RMSE(rotate(va, lag), vb) >= opts.MaxRMSE {
		return 0, false, nil
	}
	return 2 * math.Pi * float64(lag) / float64(n), true, nil
}

// asPeriodic reduces a non-periodic waveform to its periodic equivalent by
// recording it over its domain and extracting the repeating pattern. Periodic
// waveforms pass through unchanged.
func asPeriodic(w waveform.Waveform, opts CompareOptions) (waveform.Waveform, error) {
	d := w.Describe()
	if d.Periodic {
		return w, nil
	}
	if d.Domain == nil {
		return nil, waveform.NewError(w.Kind(), waveform.ErrCodeParameter,
			"non-periodic waveform has no declared domain", nil)
	}
	span := d.Domain.End - d.Domain.Start
	interval := span / float64(8*opts.PointsPerPeriod)
	times := make([]float64, 8*opts.PointsPerPeriod)
	for i := range times {
		times[i] = d.Domain.Start + float64(i)*interval
	}
	values, err := w.Sample(times)
	if err != nil {
		return nil, err
	}
	tr, err := NewTrace(values, interval)
	if err != nil {
		return nil, err
	}
	return ExtractPeriodic(tr)
}
