// Package waveform defines the catalog of waveform descriptions handed to
// programmable signal generators during test execution. Every variant is an
// immutable value object: parameters are validated once at construction and
// evaluation is a pure function of time.
package waveform

import (
	"fmt"
	"iter"
	"math"
)

// Kind identifies a concrete waveform variant
type Kind string

const (
	KindSine              Kind = "sine"
	KindCosine            Kind = "cosine"
	KindDC                Kind = "dc"
	KindCardiac           Kind = "cardiac"
	KindCustomPeriodic    Kind = "custom_periodic"
	KindCustomNonPeriodic Kind = "custom_non_periodic"
)

// Waveform is the capability contract shared by every variant. Implementations
// are immutable after construction and safe for concurrent use.
type Waveform interface {
	// Kind returns the variant tag
	Kind() Kind

	// ValueAt returns the instantaneous amplitude at time t (seconds).
	// Periodic variants accept any real t; non-periodic variants return a
	// domain error outside their declared domain.
	ValueAt(t float64) (float64, error)

	// Sample evaluates ValueAt elementwise over the given times. It stops at
	// the first evaluation error.
	Sample(times []float64) ([]float64, error)

	// Values returns a lazy, restartable sequence over the given times
	Values(times []float64) iter.Seq2[float64, error]

	// Describe returns a read-only summary of the waveform for logging
	// and introspection
	Describe() Descriptor
}

// DomainRange is the validity interval of a non-periodic waveform
type DomainRange struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
}

// Descriptor summarizes a waveform's kind and parameters
type Descriptor struct {
	Kind      Kind         `json:"kind" yaml:"kind"`
	Periodic  bool         `json:"periodic" yaml:"periodic"`
	Amplitude float64      `json:"amplitude" yaml:"amplitude"`
	Frequency float64      `json:"frequency,omitempty" yaml:"frequency,omitempty"`
	Period    float64      `json:"period,omitempty" yaml:"period,omitempty"`
	Phase     float64      `json:"phase,omitempty" yaml:"phase,omitempty"`
	Offset    float64      `json:"offset" yaml:"offset"`
	HeartRate float64      `json:"heart_rate,omitempty" yaml:"heart_rate,omitempty"`
	Domain    *DomainRange `json:"domain,omitempty" yaml:"domain,omitempty"`
}

// sampleAll evaluates w at every time, stopping on the first error
func sampleAll(w Waveform, times []float64) ([]float64, error) {
	out := make([]float64, 0, len(times))
	for v, err := range w.Values(times) {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// valueSeq adapts ValueAt into a restartable sequence over times
func valueSeq(w Waveform, times []float64) iter.Seq2[float64, error] {
	return func(yield func(float64, error) bool) {
		for _, t := range times {
			if !yield(w.ValueAt(t)) {
				return
			}
		}
	}
}

// normalizePhase maps any finite phase into [0, 2*pi)
func normalizePhase(phase float64) float64 {
	p := math.Mod(phase, 2*math.Pi)
	if p < 0 {
		p += 2 * math.Pi
	}
	return p
}

func checkFinite(kind Kind, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NewError(kind, ErrCodeParameter,
			fmt.Sprintf("%s must be finite, got %v", name, v), nil)
	}
	return nil
}

func checkAmplitude(kind Kind, amplitude float64) error {
	if err := checkFinite(kind, "amplitude", amplitude); err != nil {
		return err
	}
	if amplitude < 0 {
		return NewError(kind, ErrCodeParameter,
			fmt.Sprintf("amplitude must be >= 0, got %v", amplitude), nil)
	}
	return nil
}

func checkPositive(kind Kind, name string, v float64) error {
	if err := checkFinite(kind, name, v); err != nil {
		return err
	}
	if v <= 0 {
		return NewError(kind, ErrCodeParameter,
			fmt.Sprintf("%s must be > 0, got %v", name, v), nil)
	}
	return nil
}

// EqualTolerance is the relative tolerance used for parameter equality
const EqualTolerance = 1e-9

func closeEnough(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= EqualTolerance*scale
}

// Equal reports whether two waveforms are the same concrete variant with all
// parameters matching within EqualTolerance relative tolerance. Custom
// variants additionally require identical sampling functions, which cannot be
// compared in general, so custom waveforms are equal only to themselves.
func Equal(a, b Waveform) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindCustomPeriodic, KindCustomNonPeriodic:
		if a != b {
			return false
		}
	}
	da, db := a.Describe(), b.Describe()
	if da.Domain != nil || db.Domain != nil {
		if da.Domain == nil || db.Domain == nil {
			return false
		}
		if !closeEnough(da.Domain.Start, db.Domain.Start) ||
			!closeEnough(da.Domain.End, db.Domain.End) {
			return false
		}
	}
	return closeEnough(da.Amplitude, db.Amplitude) &&
		closeEnough(da.Frequency, db.Frequency) &&
		closeEnough(da.Phase, db.Phase) &&
		closeEnough(da.Offset, db.Offset) &&
		closeEnough(da.HeartRate, db.HeartRate)
}
