package waveform

import (
	"fmt"
	"iter"
	"math"
)

// SampleFunc computes an amplitude from a time in seconds
type SampleFunc func(t float64) float64

// CustomPeriodic wraps a user-supplied sampling function with a periodicity
// guarantee: the function describes one period over [0, period) and is
// evaluated at t modulo period for any real t.
type CustomPeriodic struct {
	fn     SampleFunc
	period float64
}

// NewCustomPeriodic creates a periodic waveform from a user-supplied sampling
// function and a declared period in seconds
func NewCustomPeriodic(fn SampleFunc, period float64) (*CustomPeriodic, error) {
	if fn == nil {
		return nil, NewError(KindCustomPeriodic, ErrCodeCapability,
			"sampling function must not be nil", nil)
	}
	if err := checkPositive(KindCustomPeriodic, "period", period); err != nil {
		return nil, err
	}
	return &CustomPeriodic{fn: fn, period: period}, nil
}

func (c *CustomPeriodic) Kind() Kind { return KindCustomPeriodic }

// Period returns the declared repetition interval in seconds
func (c *CustomPeriodic) Period() float64 { return c.period }

// Frequency returns the repetition rate in Hz
func (c *CustomPeriodic) Frequency() float64 { return 1 / c.period }

func (c *CustomPeriodic) ValueAt(t float64) (float64, error) {
	u := math.Mod(t, c.period)
	if u < 0 {
		u += c.period
	}
	return c.fn(u), nil
}

func (c *CustomPeriodic) Sample(times []float64) ([]float64, error) {
	return sampleAll(c, times)
}

func (c *CustomPeriodic) Values(times []float64) iter.Seq2[float64, error] {
	return valueSeq(c, times)
}

func (c *CustomPeriodic) Describe() Descriptor {
	return Descriptor{
		Kind:      KindCustomPeriodic,
		Periodic:  true,
		Frequency: c.Frequency(),
		Period:    c.period,
	}
}

// CustomNonPeriodic wraps a user-supplied sampling function defined only over
// the bounded domain [tStart, tEnd]. Queries outside the domain fail with a
// domain error.
type CustomNonPeriodic struct {
	fn     SampleFunc
	tStart float64
	tEnd   float64
}

// NewCustomNonPeriodic creates a non-periodic waveform from a user-supplied
// sampling function and its validity domain
func NewCustomNonPeriodic(fn SampleFunc, tStart, tEnd float64) (*CustomNonPeriodic, error) {
	if fn == nil {
		return nil, NewError(KindCustomNonPeriodic, ErrCodeCapability,
			"sampling function must not be nil", nil)
	}
	if err := checkFinite(KindCustomNonPeriodic, "domain start", tStart); err != nil {
		return nil, err
	}
	if err := checkFinite(KindCustomNonPeriodic, "domain end", tEnd); err != nil {
		return nil, err
	}
	if tStart >= tEnd {
		return nil, NewError(KindCustomNonPeriodic, ErrCodeParameter,
			fmt.Sprintf("domain start %v must be before domain end %v", tStart, tEnd), nil)
	}
	return &CustomNonPeriodic{fn: fn, tStart: tStart, tEnd: tEnd}, nil
}

func (c *CustomNonPeriodic) Kind() Kind { return KindCustomNonPeriodic }

// Domain returns the validity interval of the waveform
func (c *CustomNonPeriodic) Domain() (start, end float64) {
	return c.tStart, c.tEnd
}

func (c *CustomNonPeriodic) ValueAt(t float64) (float64, error) {
	if t < c.tStart || t > c.tEnd {
		return 0, NewError(KindCustomNonPeriodic, ErrCodeDomain,
			fmt.Sprintf("t=%v is outside the waveform domain [%v, %v]", t, c.tStart, c.tEnd), nil)
	}
	return c.fn(t), nil
}

func (c *CustomNonPeriodic) Sample(times []float64) ([]float64, error) {
	return sampleAll(c, times)
}

func (c *CustomNonPeriodic) Values(times []float64) iter.Seq2[float64, error] {
	return valueSeq(c, times)
}

func (c *CustomNonPeriodic) Describe() Descriptor {
	return Descriptor{
		Kind:     KindCustomNonPeriodic,
		Periodic: false,
		Domain:   &DomainRange{Start: c.tStart, End: c.tEnd},
	}
}
