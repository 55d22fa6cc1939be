package waveform

import "iter"

// DC is a constant waveform: ValueAt(t) == offset for all t. Its amplitude is
// zero and it has no meaningful frequency.
type DC struct {
	offset float64
}

// NewDC creates a DC waveform at the given level
func NewDC(offset float64) (*DC, error) {
	if err := checkFinite(KindDC, "offset", offset); err != nil {
		return nil, err
	}
	return &DC{offset: offset}, nil
}

func (d *DC) Kind() Kind { return KindDC }

// Offset returns the constant level
func (d *DC) Offset() float64 { return d.offset }

func (d *DC) ValueAt(t float64) (float64, error) {
	return d.offset, nil
}

func (d *DC) Sample(times []float64) ([]float64, error) {
	return sampleAll(d, times)
}

func (d *DC) Values(times []float64) iter.Seq2[float64, error] {
	return valueSeq(d, times)
}

func (d *DC) Describe() Descriptor {
	return Descriptor{
		Kind:     KindDC,
		Periodic: true,
		Offset:   d.offset,
	}
}
