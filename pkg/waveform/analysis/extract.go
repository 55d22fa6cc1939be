package analysis

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"

	"github.com/RyanBlaney/waveform-catalog/pkg/logging"
	"github.com/RyanBlaney/waveform-catalog/pkg/waveform"
)

// detrend removes the least-squares linear trend from the samples
func detrend(values []float64) []float64 {
	xs := make([]float64, len(values))
	for i := range xs {
		xs[i] = float64(i)
	}
	alpha, beta := stat.LinearRegression(xs, values, nil, false)
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v - (alpha + beta*float64(i))
	}
	return out
}

// autocorrelate returns the positive-lag autocorrelation of x, computed in
// the frequency domain
func autocorrelate(x []float64) []float64 {
	spectrum := fft.FFTReal(x)
	power := make([]complex128, len(spectrum))
	for i, c := range spectrum {
		power[i] = c * complex(real(c), -imag(c))
	}
	back := fft.IFFT(power)
	out := make([]float64, len(x))
	for i := range out {
		out[i] = real(back[i])
	}
	return out
}

// findPeaks returns the indices of local maxima with value >= height,
// keeping only the highest peak within each minDistance window
func findPeaks(x []float64, height float64, minDistance int) []int {
	var candidates []int
	for i := 1; i < len(x)-1; i++ {
		if x[i] >= height && x[i] > x[i-1] && x[i] >= x[i+1] {
			candidates = append(candidates, i)
		}
	}
	if minDistance <= 1 || len(candidates) < 2 {
		return candidates
	}
	var peaks []int
	for _, c := range candidates {
		if len(peaks) == 0 || c-peaks[len(peaks)-1] >= minDistance {
			peaks = append(peaks, c)
		} else if x[c] > x[peaks[len(peaks)-1]] {
			peaks[len(peaks)-1] = c
		}
	}
	return peaks
}

// interpolateCycle builds a sampling function that linearly interpolates one
// cycle of sample values over [0, period), wrapping at the boundary
func interpolateCycle(cycle []float64, period float64) waveform.SampleFunc {
	n := len(cycle)
	return func(t float64) float64 {
		pos := t / period * float64(n)
		i := int(math.Floor(pos))
		frac := pos - float64(i)
		a := cycle[i%n]
		b := cycle[(i+1)%n]
		return a + frac*(b-a)
	}
}

// ExtractPeriodic detects the repeating pattern in a recorded trace and
// returns it as a periodic waveform. The period is estimated from the peak
// spacing of the detrended autocorrelation, every complete cycle is averaged
// into one clean cycle, and that cycle becomes the sampling function of a
// CustomPeriodic via linear interpolation.
//
// It fails with a parameter error when no periodic pattern is detectable or
// the trace holds fewer than two complete cycles.
func ExtractPeriodic(tr *Trace) (*waveform.CustomPeriodic, error) {
	logger := logging.WithFields(logging.Fields{
		"component": "periodic_extractor",
	})

	values := tr.values
	corr := autocorrelate(detrend(values))
	corr = corr[:len(corr)/2]

	var maxCorr float64
	for _, v := range corr {
		maxCorr = math.Max(maxCorr, v)
	}

	// tighten first, then relax until enough peaks appear
	var peaks []int
	for _, pass := range []struct {
		heightFrac  float64
		minDistance int
	}{
		{0.8, 50},
		{0.6, 100},
		{0.4, 200},
	} {
		peaks = findPeaks(corr, pass.heightFrac*maxCorr, min(pass.minDistance, len(values)/10))
		if len(peaks) > 2 {
			break
		}
	}
	if len(peaks) < 2 {
		return nil, waveform.NewError("", waveform.ErrCodeParameter,
			"no periodic pattern found in trace", nil)
	}

	periodSamples := peaks[1] - peaks[0]
	completeCycles := len(values) / periodSamples
	if completeCycles < 2 {
		return nil, waveform.NewError("", waveform.ErrCodeParameter,
			"trace is too short to confirm a periodic pattern", nil)
	}

	meanCycle := make([]float64, periodSamples)
	for c := 0; c < completeCycles; c++ {
		for i := 0; i < periodSamples; i++ {
			meanCycle[i] += values[c*periodSamples+i]
		}
	}
	for i := range meanCycle {
		meanCycle[i] /= float64(completeCycles)
	}

	period := tr.interval * float64(periodSamples)
	logger.Debug("periodic pattern extracted", logging.Fields{
		"period_samples":  periodSamples,
		"complete_cycles": completeCycles,
		"period_sec":      period,
		"frequency_hz":    1 / period,
	})

	return waveform.NewCustomPeriodic(interpolateCycle(meanCycle, period), period)
}
