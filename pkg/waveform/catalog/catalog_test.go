package catalog

import (
	"math"
	"slices"
	"testing"

	"github.com/RyanBlaney/waveform-catalog/pkg/waveform"
)

// TestBuild checks that every declarable kind resolves to the right variant.
func TestBuild(t *testing.T) {
	type test struct {
		def      Definition
		wantKind waveform.Kind
		wantErr  bool
	}

	tests := []test{
		{Definition{Name: "s", Kind: "sine", Amplitude: 1, Frequency: 50}, waveform.KindSine, false},
		{Definition{Name: "c", Kind: "cosine", Amplitude: 2, Frequency: 60, Phase: math.Pi}, waveform.KindCosine, false},
		{Definition{Name: "d", Kind: "dc", Offset: 3.3}, waveform.KindDC, false},
		{Definition{Name: "h", Kind: "cardiac", HeartRate: 80, Amplitude: 1}, waveform.KindCardiac, false},
		{Definition{Name: "bad", Kind: "triangle"}, "", true},
		{Definition{Name: "cp", Kind: "custom_periodic"}, "", true},
		{Definition{Name: "cn", Kind: "custom_non_periodic"}, "", true},
		{Definition{Name: "neg", Kind: "sine", Amplitude: -1, Frequency: 50}, "", true},
		{Definition{Name: "flat", Kind: "sine", Amplitude: 1, Frequency: 0}, "", true},
	}

	for _, tt := range tests {
		w, err := Build(tt.def)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Build(%s/%s): expected error, got %v", tt.def.Name, tt.def.Kind, w)
			}
			continue
		}
		if err != nil {
			t.Errorf("Build(%s/%s): unexpected error: %v", tt.def.Name, tt.def.Kind, err)
			continue
		}
		if w.Kind() != tt.wantKind {
			t.Errorf("Build(%s): want kind %s, got %s", tt.def.Name, tt.wantKind, w.Kind())
		}
	}
}

func TestLoad(t *testing.T) {
	defs := []Definition{
		{Name: "sine-50", Kind: "sine", Amplitude: 1, Frequency: 50},
		{Name: "dc-zero", Kind: "dc"},
	}

	cat, err := Load(defs)
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if cat.Len() != 2 {
		t.Errorf("Len: want 2, got %d", cat.Len())
	}

	names := cat.Names()
	if !slices.Equal(names, []string{"dc-zero", "sine-50"}) {
		t.Errorf("Names: want sorted [dc-zero sine-50], got %v", names)
	}

	w, err := cat.Get("sine-50")
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	if w.Kind() != waveform.KindSine {
		t.Errorf("Get: want sine, got %s", w.Kind())
	}

	if _, err := cat.Get("missing"); !waveform.IsParameterError(err) {
		t.Errorf("Get(missing): want parameter error, got %v", err)
	}
}

func TestLoadRejectsDuplicates(t *testing.T) {
	defs := []Definition{
		{Name: "twice", Kind: "dc"},
		{Name: "twice", Kind: "dc", Offset: 1},
	}
	if _, err := Load(defs); err == nil {
		t.Error("Load: expected duplicate-name error")
	}
}

func TestLoadRequiresName(t *testing.T) {
	if _, err := Load([]Definition{{Kind: "dc"}}); !waveform.IsParameterError(err) {
		t.Error("Load: expected parameter error for missing name")
	}
}

func TestRegisterCustom(t *testing.T) {
	cat := New()

	ramp, err := waveform.NewCustomPeriodic(func(tm float64) float64 { return tm }, 1)
	if err != nil {
		t.Fatalf("NewCustomPeriodic: %v", err)
	}
	if err := cat.Register("ramp", ramp); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := cat.Register("ramp", ramp); err == nil {
		t.Error("Register: expected error on duplicate name")
	}

	got, err := cat.Get("ramp")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != waveform.Waveform(ramp) {
		t.Error("Get: registered waveform does not round-trip")
	}
}
