package configs

import (
	"math"

	"github.com/spf13/viper"
)

// SetDefaults sets default configuration values for all components
func SetDefaults(v *viper.Viper) {
	// Application defaults
	v.SetDefault("verbose", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("output_format", "table")

	// Sampling defaults: 1 ms steps over one second
	v.SetDefault("sampling.interval", 0.001)
	v.SetDefault("sampling.duration", 1.0)

	// Comparison defaults
	v.SetDefault("compare.max_rmse", 0.01)
	v.SetDefault("compare.points_per_period", 1024)

	// Built-in catalog entries
	v.SetDefault("catalog", []map[string]any{
		{
			"name":      "sine-1k",
			"kind":      "sine",
			"amplitude": 1.0,
			"frequency": 1000.0,
		},
		{
			"name":      "cosine-1k",
			"kind":      "cosine",
			"amplitude": 1.0,
			"frequency": 1000.0,
		},
		{
			"name":      "sine-1k-90deg",
			"kind":      "sine",
			"amplitude": 1.0,
			"frequency": 1000.0,
			"phase":     math.Pi / 2,
		},
		{
			"name":   "dc-2v5",
			"kind":   "dc",
			"offset": 2.5,
		},
		{
			"name":       "cardiac-60bpm",
			"kind":       "cardiac",
			"heart_rate": 60.0,
			"amplitude":  1.0,
		},
	})
}
