package waveform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const periodicityDelta = 1e-9

// TestConstructionValidation checks that invalid parameters are rejected with
// a parameter error for every variant.
func TestConstructionValidation(t *testing.T) {
	inf := math.Inf(1)
	nan := math.NaN()

	type test struct {
		name      string
		construct func() (Waveform, error)
	}

	// asWaveform avoids wrapping a nil concrete pointer in a non-nil interface
	asWaveform := func(w Waveform, err error) (Waveform, error) {
		if err != nil {
			return nil, err
		}
		return w, nil
	}

	tests := []test{
		{"sine zero frequency", func() (Waveform, error) {
			w, err := NewSine(1, 0, 0, 0)
			return asWaveform(w, err)
		}},
		{"sine negative frequency", func() (Waveform, error) {
			w, err := NewSine(1, -5, 0, 0)
			return asWaveform(w, err)
		}},
		{"sine negative amplitude", func() (Waveform, error) {
			w, err := NewSine(-1, 1, 0, 0)
			return asWaveform(w, err)
		}},
		{"sine infinite phase", func() (Waveform, error) {
			w, err := NewSine(1, 1, inf, 0)
			return asWaveform(w, err)
		}},
		{"sine NaN offset", func() (Waveform, error) {
			w, err := NewSine(1, 1, 0, nan)
			return asWaveform(w, err)
		}},
		{"cosine zero frequency", func() (Waveform, error) {
			w, err := NewCosine(1, 0, 0, 0)
			return asWaveform(w, err)
		}},
		{"cosine negative amplitude", func() (Waveform, error) {
			w, err := NewCosine(-1, 1, 0, 0)
			return asWaveform(w, err)
		}},
		{"dc infinite offset", func() (Waveform, error) {
			w, err := NewDC(inf)
			return asWaveform(w, err)
		}},
		{"cardiac zero heart rate", func() (Waveform, error) {
			w, err := NewCardiac(0, 1, 0)
			return asWaveform(w, err)
		}},
		{"cardiac negative amplitude", func() (Waveform, error) {
			w, err := NewCardiac(60, -1, 0)
			return asWaveform(w, err)
		}},
		{"custom periodic zero period", func() (Waveform, error) {
			w, err := NewCustomPeriodic(math.Sin, 0)
			return asWaveform(w, err)
		}},
		{"custom non-periodic inverted domain", func() (Waveform, error) {
			w, err := NewCustomNonPeriodic(math.Sin, 1, 0)
			return asWaveform(w, err)
		}},
		{"custom non-periodic NaN bound", func() (Waveform, error) {
			w, err := NewCustomNonPeriodic(math.Sin, nan, 1)
			return asWaveform(w, err)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := tt.construct()
			if w != nil {
				t.Errorf("expected nil waveform, got %v", w)
			}
			if !IsParameterError(err) {
				t.Errorf("expected parameter error, got %v", err)
			}
		})
	}
}

func TestNilSamplingFunction(t *testing.T) {
	_, err := NewCustomPeriodic(nil, 1)
	assert.True(t, IsCapabilityError(err), "periodic: expected capability error, got %v", err)

	_, err = NewCustomNonPeriodic(nil, 0, 1)
	assert.True(t, IsCapabilityError(err), "non-periodic: expected capability error, got %v", err)
}

func TestSineAnchorValues(t *testing.T) {
	s, err := NewSine(1, 1, 0, 0)
	require.NoError(t, err)

	v, err := s.ValueAt(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, v, periodicityDelta)

	v, err = s.ValueAt(0.25)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, periodicityDelta)
}

func TestCosineAnchorValue(t *testing.T) {
	c, err := NewCosine(1, 1, 0, 0)
	require.NoError(t, err)

	v, err := c.ValueAt(0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, periodicityDelta)
}

func TestAmplitudeOffsetPhaseApplied(t *testing.T) {
	s, err := NewSine(2, 1, math.Pi/2, 1.5)
	require.NoError(t, err)

	// phase pi/2 turns the sine into a cosine: amplitude*1 + offset at t=0
	v, err := s.ValueAt(0)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, v, periodicityDelta)
}

func TestPeriodicity(t *testing.T) {
	sine, err := NewSine(1, 5, 0.3, 0.5)
	require.NoError(t, err)
	cosine, err := NewCosine(2, 3, 0, -1)
	require.NoError(t, err)
	cardiac, err := NewCardiac(72, 1, 0)
	require.NoError(t, err)
	custom, err := NewCustomPeriodic(func(t float64) float64 { return t * t }, 0.25)
	require.NoError(t, err)

	type periodic interface {
		Waveform
		Period() float64
	}

	for _, w := range []periodic{sine, cosine, cardiac, custom} {
		period := w.Period()
		for _, tm := range []float64{0, 0.17, 1.9, -2.4, 123.456} {
			v1, err := w.ValueAt(tm)
			require.NoError(t, err)
			v2, err := w.ValueAt(tm + period)
			require.NoError(t, err)
			assert.InDeltaf(t, v1, v2, 1e-6, "%s not periodic at t=%v", w.Kind(), tm)
		}
	}
}

func TestDCConstant(t *testing.T) {
	d, err := NewDC(2.5)
	require.NoError(t, err)

	for _, tm := range []float64{-100, 0, 0.001, 42, 1e9} {
		v, err := d.ValueAt(tm)
		require.NoError(t, err)
		assert.Equal(t, 2.5, v)
	}
}

func TestCardiacPeriod(t *testing.T) {
	c, err := NewCardiac(60, 1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.Period(), periodicityDelta)

	c, err = NewCardiac(120, 1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, c.Period(), periodicityDelta)
}

func TestCardiacShape(t *testing.T) {
	c, err := NewCardiac(60, 1, 0)
	require.NoError(t, err)

	// the R spike at 38% of the cycle dominates every other deflection
	peak, err := c.ValueAt(0.38)
	require.NoError(t, err)
	assert.Greater(t, peak, 0.8)

	for _, tm := range []float64{0.0, 0.18, 0.5, 0.68, 0.95} {
		v, err := c.ValueAt(tm)
		require.NoError(t, err)
		assert.Less(t, v, peak)
	}
}

func TestNonPeriodicDomain(t *testing.T) {
	w, err := NewCustomNonPeriodic(func(t float64) float64 { return 2 * t }, 0.5, 1.5)
	require.NoError(t, err)

	v, err := w.ValueAt(1.0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
	assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))

	_, err = w.ValueAt(0.4)
	assert.True(t, IsDomainError(err), "below domain: expected domain error, got %v", err)

	_, err = w.ValueAt(1.6)
	assert.True(t, IsDomainError(err), "above domain: expected domain error, got %v", err)

	start, end := w.Domain()
	assert.Equal(t, 0.5, start)
	assert.Equal(t, 1.5, end)
}

func TestSampleMatchesValueAt(t *testing.T) {
	s, err := NewSine(1, 2, 0, 0)
	require.NoError(t, err)

	times := []float64{0.1, 0.2, 0.3}
	values, err := s.Sample(times)
	require.NoError(t, err)
	require.Len(t, values, 3)

	for i, tm := range times {
		want, err := s.ValueAt(tm)
		require.NoError(t, err)
		assert.Equal(t, want, values[i])
	}

	// restartable: a second pass produces identical output
	again, err := s.Sample(times)
	require.NoError(t, err)
	assert.Equal(t, values, again)
}

func TestValuesSequenceRestartable(t *testing.T) {
	s, err := NewSine(1, 1, 0, 0)
	require.NoError(t, err)

	times := []float64{0, 0.25, 0.5}
	seq := s.Values(times)

	var first, second []float64
	for v, err := range seq {
		require.NoError(t, err)
		first = append(first, v)
	}
	for v, err := range seq {
		require.NoError(t, err)
		second = append(second, v)
	}
	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}

func TestSampleStopsOnDomainError(t *testing.T) {
	w, err := NewCustomNonPeriodic(func(t float64) float64 { return t }, 0, 1)
	require.NoError(t, err)

	_, err = w.Sample([]float64{0.5, 2.0, 0.7})
	assert.True(t, IsDomainError(err))
}

func TestPhaseNormalization(t *testing.T) {
	s, err := NewSine(1, 1, 5*math.Pi, 0)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, s.Phase(), periodicityDelta)

	s, err = NewSine(1, 1, -math.Pi/2, 0)
	require.NoError(t, err)
	assert.InDelta(t, 3*math.Pi/2, s.Phase(), periodicityDelta)
}

func TestDescribe(t *testing.T) {
	s, err := NewSine(2, 10, 0.5, -1)
	require.NoError(t, err)

	d := s.Describe()
	assert.Equal(t, KindSine, d.Kind)
	assert.True(t, d.Periodic)
	assert.Equal(t, 2.0, d.Amplitude)
	assert.Equal(t, 10.0, d.Frequency)
	assert.InDelta(t, 0.1, d.Period, periodicityDelta)
	assert.Equal(t, -1.0, d.Offset)

	np, err := NewCustomNonPeriodic(math.Sin, 0, 2)
	require.NoError(t, err)
	dn := np.Describe()
	assert.False(t, dn.Periodic)
	require.NotNil(t, dn.Domain)
	assert.Equal(t, 0.0, dn.Domain.Start)
	assert.Equal(t, 2.0, dn.Domain.End)
}

func TestEqual(t *testing.T) {
	a, err := NewSine(1, 5, 0, 0)
	require.NoError(t, err)
	b, err := NewSine(1, 5, 0, 0)
	require.NoError(t, err)
	c, err := NewSine(1, 5+1e-12, 0, 0)
	require.NoError(t, err)
	d, err := NewSine(1, 6, 0, 0)
	require.NoError(t, err)
	cos, err := NewCosine(1, 5, 0, 0)
	require.NoError(t, err)

	assert.True(t, Equal(a, a))
	assert.True(t, Equal(a, b))
	assert.True(t, Equal(a, c), "difference below relative tolerance")
	assert.False(t, Equal(a, d))
	assert.False(t, Equal(a, cos), "same parameters, different kind")

	cp1, err := NewCustomPeriodic(math.Sin, 1)
	require.NoError(t, err)
	cp2, err := NewCustomPeriodic(math.Sin, 1)
	require.NoError(t, err)
	assert.True(t, Equal(cp1, cp1))
	assert.False(t, Equal(cp1, cp2), "distinct custom waveforms are never equal")
}

func TestCustomPeriodicWrapsNegativeTime(t *testing.T) {
	w, err := NewCustomPeriodic(func(t float64) float64 { return t }, 1)
	require.NoError(t, err)

	v, err := w.ValueAt(-0.25)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, v, periodicityDelta)
}
