package waveform

import (
	"iter"
	"math"
)

// periodicParams holds the shared parameter set of the sinusoidal variants
type periodicParams struct {
	amplitude float64
	frequency float64
	phase     float64
	offset    float64
}

func newPeriodicParams(kind Kind, amplitude, frequency, phase, offset float64) (periodicParams, error) {
	if err := checkAmplitude(kind, amplitude); err != nil {
		return periodicParams{}, err
	}
	if err := checkPositive(kind, "frequency", frequency); err != nil {
		return periodicParams{}, err
	}
	if err := checkFinite(kind, "phase", phase); err != nil {
		return periodicParams{}, err
	}
	if err := checkFinite(kind, "offset", offset); err != nil {
		return periodicParams{}, err
	}
	return periodicParams{
		amplitude: amplitude,
		frequency: frequency,
		phase:     normalizePhase(phase),
		offset:    offset,
	}, nil
}

// Amplitude returns the peak deviation from the offset
func (p periodicParams) Amplitude() float64 { return p.amplitude }

// Frequency returns the repetition rate in Hz
func (p periodicParams) Frequency() float64 { return p.frequency }

// Phase returns the phase shift in radians, normalized to [0, 2*pi)
func (p periodicParams) Phase() float64 { return p.phase }

// Offset returns the DC bias added to every sample
func (p periodicParams) Offset() float64 { return p.offset }

// Period returns the repetition interval in seconds
func (p periodicParams) Period() float64 { return 1 / p.frequency }

// Sine is the waveform amplitude*sin(2*pi*frequency*t + phase) + offset
type Sine struct {
	periodicParams
}

// NewSine creates a sine waveform with validated parameters
func NewSine(amplitude, frequency, phase, offset float64) (*Sine, error) {
	params, err := newPeriodicParams(KindSine, amplitude, frequency, phase, offset)
	if err != nil {
		return nil, err
	}
	return &Sine{periodicParams: params}, nil
}

func (s *Sine) Kind() Kind { return KindSine }

func (s *Sine) ValueAt(t float64) (float64, error) {
	return s.amplitude*math.Sin(2*math.Pi*s.frequency*t+s.phase) + s.offset, nil
}

func (s *Sine) Sample(times []float64) ([]float64, error) {
	return sampleAll(s, times)
}

func (s *Sine) Values(times []float64) iter.Seq2[float64, error] {
	return valueSeq(s, times)
}

func (s *Sine) Describe() Descriptor {
	return Descriptor{
		Kind:      KindSine,
		Periodic:  true,
		Amplitude: s.amplitude,
		Frequency: s.frequency,
		Period:    s.Period(),
		Phase:     s.phase,
		Offset:    s.offset,
	}
}
