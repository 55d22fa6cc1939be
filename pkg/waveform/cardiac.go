package waveform

import (
	"iter"
	"math"
)

// cardiacTemplate evaluates the PQRST pulse shape at normalized cycle phase
// u in [0, 1). The shape is a sum of five Gaussians, one per deflection, with
// the R spike normalized to a peak of roughly 1.
func cardiacTemplate(u float64) float64 {
	const qrs = 0.38
	v := 0.25 * gaussian(u, 0.18, 0.045)       // P wave (atrial)
	v += -0.15 * gaussian(u, qrs-0.025, 0.018) // Q
	v += 1.00 * gaussian(u, qrs, 0.012)        // R spike
	v += -0.35 * gaussian(u, qrs+0.035, 0.022) // S
	v += 0.40 * gaussian(u, 0.68, 0.085)       // T wave (ventricular recovery)
	return v
}

func gaussian(x, mu, sigma float64) float64 {
	z := (x - mu) / sigma
	return math.Exp(-0.5 * z * z)
}

// Cardiac is a strictly periodic PQRST-shaped waveform. Its period is
// 60/heartRate seconds and the pulse shape is scaled so the R spike peaks at
// amplitude above the offset.
type Cardiac struct {
	heartRate float64
	amplitude float64
	offset    float64
}

// NewCardiac creates a cardiac waveform at the given heart rate in beats per
// minute
func NewCardiac(heartRate, amplitude, offset float64) (*Cardiac, error) {
	if err := checkPositive(KindCardiac, "heart rate", heartRate); err != nil {
		return nil, err
	}
	if err := checkAmplitude(KindCardiac, amplitude); err != nil {
		return nil, err
	}
	if err := checkFinite(KindCardiac, "offset", offset); err != nil {
		return nil, err
	}
	return &Cardiac{heartRate: heartRate, amplitude: amplitude, offset: offset}, nil
}

func (c *Cardiac) Kind() Kind { return KindCardiac }

// HeartRate returns the configured rate in beats per minute
func (c *Cardiac) HeartRate() float64 { return c.heartRate }

// Amplitude returns the peak height of the R spike above the offset
func (c *Cardiac) Amplitude() float64 { return c.amplitude }

// Offset returns the baseline level
func (c *Cardiac) Offset() float64 { return c.offset }

// Frequency returns the beat frequency in Hz
func (c *Cardiac) Frequency() float64 { return c.heartRate / 60 }

// Period returns 60/heartRate seconds
func (c *Cardiac) Period() float64 { return 60 / c.heartRate }

func (c *Cardiac) ValueAt(t float64) (float64, error) {
	u := t * c.Frequency()
	u -= math.Floor(u)
	return c.amplitude*cardiacTemplate(u) + c.offset, nil
}

func (c *Cardiac) Sample(times []float64) ([]float64, error) {
	return sampleAll(c, times)
}

func (c *Cardiac) Values(times []float64) iter.Seq2[float64, error] {
	return valueSeq(c, times)
}

func (c *Cardiac) Describe() Descriptor {
	return Descriptor{
		Kind:      KindCardiac,
		Periodic:  true,
		Amplitude: c.amplitude,
		Frequency: c.Frequency(),
		Period:    c.Period(),
		Offset:    c.offset,
		HeartRate: c.heartRate,
	}
}
