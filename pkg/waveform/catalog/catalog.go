// Package catalog resolves named waveform definitions, usually loaded from
// the application configuration, into live waveform values that test code can
// look up by name.
package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/RyanBlaney/waveform-catalog/pkg/waveform"
)

// Definition is a declarative description of a catalog entry. Custom variants
// need a live sampling function and cannot be declared here; use Register.
type Definition struct {
	Name      string  `mapstructure:"name" yaml:"name" json:"name"`
	Kind      string  `mapstructure:"kind" yaml:"kind" json:"kind"`
	Amplitude float64 `mapstructure:"amplitude" yaml:"amplitude" json:"amplitude"`
	Frequency float64 `mapstructure:"frequency" yaml:"frequency" json:"frequency"`
	Phase     float64 `mapstructure:"phase" yaml:"phase" json:"phase"`
	Offset    float64 `mapstructure:"offset" yaml:"offset" json:"offset"`
	HeartRate float64 `mapstructure:"heart_rate" yaml:"heart_rate" json:"heart_rate"`
}

// Build constructs the waveform a definition describes
func Build(def Definition) (waveform.Waveform, error) {
	switch waveform.Kind(def.Kind) {
	case waveform.KindSine:
		return waveform.NewSine(def.Amplitude, def.Frequency, def.Phase, def.Offset)
	case waveform.KindCosine:
		return waveform.NewCosine(def.Amplitude, def.Frequency, def.Phase, def.Offset)
	case waveform.KindDC:
		return waveform.NewDC(def.Offset)
	case waveform.KindCardiac:
		return waveform.NewCardiac(def.HeartRate, def.Amplitude, def.Offset)
	case waveform.KindCustomPeriodic, waveform.KindCustomNonPeriodic:
		return nil, waveform.NewError(waveform.Kind(def.Kind), waveform.ErrCodeCapability,
			fmt.Sprintf("%q waveforms carry a sampling function and must be registered programmatically", def.Kind), nil)
	default:
		return nil, waveform.NewError(waveform.Kind(def.Kind), waveform.ErrCodeParameter,
			fmt.Sprintf("unknown waveform kind %q", def.Kind), nil)
	}
}

// Catalog is a named collection of waveforms
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]waveform.Waveform
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{entries: make(map[string]waveform.Waveform)}
}

// Load builds every definition and adds it to the catalog. Duplicate names
// are parameter errors.
func Load(defs []Definition) (*Catalog, error) {
	c := New()
	for _, def := range defs {
		if def.Name == "" {
			return nil, waveform.NewError(waveform.Kind(def.Kind), waveform.ErrCodeParameter,
				"catalog entry is missing a name", nil)
		}
		w, err := Build(def)
		if err != nil {
			return nil, err
		}
		if err := c.Register(def.Name, w); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Register adds a waveform under the given name
func (c *Catalog) Register(name string, w waveform.Waveform) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[name]; exists {
		return waveform.NewError(w.Kind(), waveform.ErrCodeParameter,
			fmt.Sprintf("catalog already has an entry named %q", name), nil)
	}
	c.entries[name] = w
	return nil
}

// Get returns the waveform registered under name
func (c *Catalog) Get(name string) (waveform.Waveform, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	w, ok := c.entries[name]
	if !ok {
		return nil, waveform.NewError("", waveform.ErrCodeParameter,
			fmt.Sprintf("no catalog entry named %q", name), nil)
	}
	return w, nil
}

// Names returns the registered names in sorted order
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered entries
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
