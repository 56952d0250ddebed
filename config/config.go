package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables for a felzseg run: the Felzenszwalb-
// Huttenlocher merge constant and the (currently no-op, see the
// preprocess package) Gaussian pre-filter parameters.
type Config struct {
	// K is the merge threshold constant from spec.md section 4.B/4.C:
	// larger values favor larger, coarser regions.
	K float64 `yaml:"k"`

	// UseGaussian selects whether the driver runs a smoothing pass
	// before segmentation. preprocess.Identity is the only smoother
	// currently wired, so setting this true has no visible effect
	// beyond exercising the seam.
	UseGaussian bool `yaml:"useGaussian"`

	// GaussianMaskSize is the (odd) side length of the smoothing
	// kernel, when UseGaussian is set.
	GaussianMaskSize int `yaml:"gaussianMaskSize"`

	// GaussianSigma is the standard deviation of the smoothing kernel,
	// when UseGaussian is set.
	GaussianSigma float64 `yaml:"gaussianSigma"`
}

// DefaultConfig returns the configuration felzseg runs with when no
// config file is supplied.
func DefaultConfig() *Config {
	return &Config{
		K:                300,
		UseGaussian:      false,
		GaussianMaskSize: 5,
		GaussianSigma:    1.0,
	}
}

// Validate reports whether cfg's fields are within the ranges the rest
// of the module assumes.
func (cfg *Config) Validate() error {
	if cfg.K < 0 {
		return ErrNegativeK
	}
	if cfg.UseGaussian {
		if cfg.GaussianMaskSize < 3 || cfg.GaussianMaskSize%2 == 0 {
			return ErrInvalidMaskSize
		}
		if cfg.GaussianSigma <= 0 {
			return ErrNonPositiveSigma
		}
	}
	return nil
}

// LoadConfig loads configuration from a YAML file at path. If the file
// does not exist, LoadConfig returns DefaultConfig without error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig marshals cfg as YAML and writes it to path.
func SaveConfig(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshaling: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}
