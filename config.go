package pqcal

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the JSON calibration input consumed by the pqcal CLI.
// Measurements are [code percent, measured nits] pairs.
type Config struct {
	PeakLuminance float64     `json:"peak_luminance"`
	LUTSize       int         `json:"lut_size"`
	FilenameCAL   string      `json:"filename_cal"`
	Measurements  [][]float64 `json:"measurements"`
	Title         string      `json:"title,omitempty"`
}

// LoadConfig reads and validates a JSON config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes and validates JSON config data.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate ensures all required fields are present and plausible.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.PeakLuminance == 0 {
		return fmt.Errorf("%w: peak_luminance", ErrMissingField)
	}
	if c.PeakLuminance < 0 {
		return fmt.Errorf("peak_luminance must be positive, got %g", c.PeakLuminance)
	}
	if c.LUTSize == 0 {
		return fmt.Errorf("%w: lut_size", ErrMissingField)
	}
	if c.LUTSize < 2 {
		return fmt.Errorf("lut_size must be at least 2, got %d", c.LUTSize)
	}
	if c.FilenameCAL == "" {
		return fmt.Errorf("%w: filename_cal", ErrMissingField)
	}
	if len(c.Measurements) == 0 {
		return fmt.Errorf("%w: measurements", ErrMissingField)
	}
	for i, m := range c.Measurements {
		if len(m) != 2 {
			return fmt.Errorf("measurement %d: want [code%%, nits] pair, got %d values", i, len(m))
		}
		if m[1] < 0 {
			return fmt.Errorf("measurement %d: negative luminance %g", i, m[1])
		}
	}
	return nil
}

// Samples converts the raw measurement pairs to Sample values, in the
// order they appear in the config.
func (c *Config) Samples() []Sample {
	samples := make([]Sample, len(c.Measurements))
	for i, m := range c.Measurements {
		samples[i] = Sample{CodePercent: m[0], MeasuredNits: m[1]}
	}
	return samples
}

// Descriptor returns the display title for the .cal header.
func (c *Config) Descriptor() string {
	if c.Title != "" {
		return c.Title
	}
	return defaultDescriptor
}
