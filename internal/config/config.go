// Package config handles meshtool configuration loading.
package config

import (
	gomath "math"

	"github.com/Faultbox/globemesh/internal/geo"
)

// Config holds all meshtool settings.
type Config struct {
	Subdivision SubdivisionConfig `yaml:"subdivision"`
	Globe       GlobeConfig       `yaml:"globe"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// SubdivisionConfig holds refinement settings.
type SubdivisionConfig struct {
	GranularityDeg       float64 `yaml:"granularity_deg"`         // max angular edge span, degrees
	MaxElementsPerBuffer int     `yaml:"max_elements_per_buffer"` // index elements per primitive set
}

// GlobeConfig holds world-model settings.
type GlobeConfig struct {
	RadiusMeters float64 `yaml:"radius_meters"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Subdivision: SubdivisionConfig{
			GranularityDeg:       1.0,
			MaxElementsPerBuffer: gomath.MaxInt32,
		},
		Globe: GlobeConfig{
			RadiusMeters: geo.EquatorialRadius,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// GranularityRad returns the granularity threshold in radians.
func (c *Config) GranularityRad() float64 {
	return c.Subdivision.GranularityDeg * gomath.Pi / 180
}
