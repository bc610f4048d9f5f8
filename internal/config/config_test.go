package config

import (
	gomath "math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Subdivision.GranularityDeg != 1.0 {
		t.Errorf("default granularity = %v, want 1.0", cfg.Subdivision.GranularityDeg)
	}
	if cfg.Subdivision.MaxElementsPerBuffer != gomath.MaxInt32 {
		t.Errorf("default max elements = %v, want MaxInt32", cfg.Subdivision.MaxElementsPerBuffer)
	}
	if cfg.Globe.RadiusMeters <= 6e6 {
		t.Errorf("default radius = %v, want earth-sized", cfg.Globe.RadiusMeters)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Logging.Level)
	}
}

func TestGranularityRad(t *testing.T) {
	cfg := Default()
	cfg.Subdivision.GranularityDeg = 180

	if got := cfg.GranularityRad(); gomath.Abs(got-gomath.Pi) > 1e-12 {
		t.Errorf("GranularityRad() = %v, want π", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meshtool.yaml")
	data := `
subdivision:
  granularity_deg: 2.5
  max_elements_per_buffer: 9000
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Subdivision.GranularityDeg != 2.5 {
		t.Errorf("granularity = %v, want 2.5", cfg.Subdivision.GranularityDeg)
	}
	if cfg.Subdivision.MaxElementsPerBuffer != 9000 {
		t.Errorf("max elements = %v, want 9000", cfg.Subdivision.MaxElementsPerBuffer)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
	// untouched sections keep defaults
	if cfg.Globe.RadiusMeters <= 6e6 {
		t.Errorf("radius lost its default: %v", cfg.Globe.RadiusMeters)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meshtool.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() with invalid yaml should fail")
	}
}
