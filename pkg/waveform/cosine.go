package waveform

import (
	"iter"
	"math"
)

// Cosine is the waveform amplitude*cos(2*pi*frequency*t + phase) + offset
type Cosine struct {
	periodicParams
}

// NewCosine creates a cosine waveform with validated parameters
func NewCosine(amplitude, frequency, phase, offset float64) (*Cosine, error) {
	params, err := newPeriodicParams(KindCosine, amplitude, frequency, phase, offset)
	if err != nil {
		return nil, err
	}
	return &Cosine{periodicParams: params}, nil
}

func (c *Cosine) Kind() Kind { return KindCosine }

func (c *Cosine) ValueAt(t float64) (float64, error) {
	return c.amplitude*math.Cos(2*math.Pi*c.frequency*t+c.phase) + c.offset, nil
}

func (c *Cosine) Sample(times []float64) ([]float64, error) {
	return sampleAll(c, times)
}

func (c *Cosine) Values(times []float64) iter.Seq2[float64, error] {
	return valueSeq(c, times)
}

func (c *Cosine) Describe() Descriptor {
	return Descriptor{
		Kind:      KindCosine,
		Periodic:  true,
		Amplitude: c.amplitude,
		Frequency: c.frequency,
		Period:    c.Period(),
		Phase:     c.phase,
		Offset:    c.offset,
	}
}
