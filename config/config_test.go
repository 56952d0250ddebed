package config_test

import (
	"path/filepath"
	"testing"

	"github.com/Between-Dimensions/ImageSegmentation/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Validates(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.LoadConfig(filepath.Join(dir, "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestSaveThenLoad_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "felzseg.yaml")

	original := &config.Config{
		K:                123.5,
		UseGaussian:      true,
		GaussianMaskSize: 7,
		GaussianSigma:    2.5,
	}
	require.NoError(t, config.SaveConfig(original, path))

	loaded, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestValidate_RejectsNegativeK(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.K = -1
	assert.ErrorIs(t, cfg.Validate(), config.ErrNegativeK)
}

func TestValidate_RejectsEvenMaskSize(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UseGaussian = true
	cfg.GaussianMaskSize = 4
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidMaskSize)
}

func TestValidate_RejectsNonPositiveSigma(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UseGaussian = true
	cfg.GaussianSigma = 0
	assert.ErrorIs(t, cfg.Validate(), config.ErrNonPositiveSigma)
}

func TestValidate_IgnoresGaussianFieldsWhenDisabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UseGaussian = false
	cfg.GaussianMaskSize = -4
	cfg.GaussianSigma = -1
	assert.NoError(t, cfg.Validate())
}
