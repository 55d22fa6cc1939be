package configs

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/RyanBlaney/waveform-catalog/pkg/waveform/catalog"
)

// Config represents the application configuration
type Config struct {
	// Application settings
	Verbose      bool   `mapstructure:"verbose"`
	LogLevel     string `mapstructure:"log_level"`
	OutputFormat string `mapstructure:"output_format"`

	// Sampling defaults
	Sampling SamplingConfig `mapstructure:"sampling"`

	// Comparison defaults
	Compare CompareConfig `mapstructure:"compare"`

	// Catalog entries available to the CLI and to test code
	Catalog []catalog.Definition `mapstructure:"catalog"`
}

// SamplingConfig contains default sampling settings
type SamplingConfig struct {
	Interval float64 `mapstructure:"interval"`
	Duration float64 `mapstructure:"duration"`
}

// CompareConfig contains waveform comparison settings
type CompareConfig struct {
	MaxRMSE         float64 `mapstructure:"max_rmse"`
	PointsPerPeriod int     `mapstructure:"points_per_period"`
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	config := &Config{}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return config, nil
}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) error {
	if config.Sampling.Interval <= 0 {
		return fmt.Errorf("sampling interval must be positive")
	}

	if config.Sampling.Duration <= 0 {
		return fmt.Errorf("sampling duration must be positive")
	}

	if config.Compare.MaxRMSE <= 0 {
		return fmt.Errorf("comparison max RMSE must be positive")
	}

	if config.Compare.PointsPerPeriod < 2 {
		return fmt.Errorf("comparison points per period must be at least 2")
	}

	seen := make(map[string]struct{}, len(config.Catalog))
	for _, def := range config.Catalog {
		if def.Name == "" {
			return fmt.Errorf("catalog entry is missing a name")
		}
		if _, dup := seen[def.Name]; dup {
			return fmt.Errorf("duplicate catalog entry %q", def.Name)
		}
		seen[def.Name] = struct{}{}
	}

	return nil
}
