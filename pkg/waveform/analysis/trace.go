// Package analysis provides trace-level operations over sampled waveforms:
// Fourier resampling, RMSE comparison with optional phase alignment, and
// extraction of the periodic pattern hidden in a non-periodic capture.
package analysis

import (
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/fft"

	"github.com/RyanBlaney/waveform-catalog/pkg/waveform"
)

// Trace is an immutable, uniformly sampled series recorded from a waveform or
// captured from an instrument.
type Trace struct {
	values   []float64
	interval float64
}

// NewTrace creates a trace from raw sample values and the fixed interval
// between them, in seconds
func NewTrace(values []float64, interval float64) (*Trace, error) {
	if len(values) < 2 {
		return nil, waveform.NewError("", waveform.ErrCodeParameter,
			fmt.Sprintf("trace needs at least 2 samples, got %d", len(values)), nil)
	}
	if interval <= 0 || math.IsNaN(interval) || math.IsInf(interval, 0) {
		return nil, waveform.NewError("", waveform.ErrCodeParameter,
			fmt.Sprintf("sample interval must be > 0, got %v", interval), nil)
	}
	vs := make([]float64, len(values))
	copy(vs, values)
	return &Trace{values: vs, interval: interval}, nil
}

// Record samples w every interval seconds over [0, duration) and returns the
// resulting trace
func Record(w waveform.Waveform, interval, duration float64) (*Trace, error) {
	if interval <= 0 {
		return nil, waveform.NewError(w.Kind(), waveform.ErrCodeParameter,
			fmt.Sprintf("sample interval must be > 0, got %v", interval), nil)
	}
	n := int(math.Round(duration / interval))
	if n < 2 {
		return nil, waveform.NewError(w.Kind(), waveform.ErrCodeParameter,
			fmt.Sprintf("duration %vs at interval %vs yields fewer than 2 samples", duration, interval), nil)
	}
	times := make([]float64, n)
	for i := range times {
		times[i] = float64(i) * interval
	}
	values, err := w.Sample(times)
	if err != nil {
		return nil, err
	}
	return &Trace{values: values, interval: interval}, nil
}

// Values returns a copy of the sample values
func (tr *Trace) Values() []float64 {
	out := make([]float64, len(tr.values))
	copy(out, tr.values)
	return out
}

// Len returns the number of samples
func (tr *Trace) Len() int { return len(tr.values) }

// Interval returns the time between consecutive samples in seconds
func (tr *Trace) Interval() float64 { return tr.interval }

// Duration returns the total time covered by the trace in seconds
func (tr *Trace) Duration() float64 {
	return float64(len(tr.values)-1) * tr.interval
}

// Resample returns a new trace with the given sample interval. Sample values
// are interpolated in the frequency domain: the trace spectrum is truncated
// or zero-padded to the new length and transformed back.
func Resample(tr *Trace, interval float64) (*Trace, error) {
	if interval <= 0 || math.IsNaN(interval) || math.IsInf(interval, 0) {
		return nil, waveform.NewError("", waveform.ErrCodeParameter,
			fmt.Sprintf("sample interval must be > 0, got %v", interval), nil)
	}
	n := len(tr.values)
	m := int(math.Round(float64(n) * tr.interval / interval))
	if m < 2 {
		return nil, waveform.NewError("", waveform.ErrCodeParameter,
			fmt.Sprintf("interval %vs leaves fewer than 2 samples", interval), nil)
	}
	if m == n {
		return NewTrace(tr.values, interval)
	}

	spectrum := fft.FFTReal(tr.values)
	resized := make([]complex128, m)
	keep := (min(n, m) - 1) / 2
	resized[0] = spectrum[0]
	for k := 1; k <= keep; k++ {
		resized[k] = spectrum[k]
		resized[m-k] = spectrum[n-k]
	}
	back := fft.IFFT(resized)

	scale := float64(m) / float64(n)
	values := make([]float64, m)
	for i, c := range back {
		values[i] = real(c) * scale
	}
	return &Trace{values: values, interval: interval}, nil
}
