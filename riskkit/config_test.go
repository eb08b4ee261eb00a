package riskkit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 0.03, cfg.RiskFreeRate)
	assert.Equal(t, 5.0, cfg.VaRLevel)
	assert.Equal(t, 0.1, cfg.NormalityLevel)
	assert.Equal(t, 1000.0, cfg.InitialInvestment)
	assert.Equal(t, 12, cfg.PeriodsPerYear)
	assert.True(t, cfg.CornishFisher)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero var level", func(c *Config) { c.VaRLevel = 0 }},
		{"var level of 100", func(c *Config) { c.VaRLevel = 100 }},
		{"normality level above one", func(c *Config) { c.NormalityLevel = 1.5 }},
		{"negative investment", func(c *Config) { c.InitialInvestment = -1 }},
		{"no periods", func(c *Config) { c.PeriodsPerYear = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadConfig_ValidYAML_OverridesDefaults(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "risk.yaml")
	content := `risk_free_rate: 0.02
var_level: 1
periods_per_year: 252
cornish_fisher: false`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// When
	cfg, err := LoadConfig(path)

	// Then
	require.NoError(t, err)
	assert.Equal(t, 0.02, cfg.RiskFreeRate)
	assert.Equal(t, 1.0, cfg.VaRLevel)
	assert.Equal(t, 252, cfg.PeriodsPerYear)
	assert.False(t, cfg.CornishFisher)
	assert.Equal(t, 0.1, cfg.NormalityLevel, "unset keys keep their defaults")
	assert.Equal(t, 1000.0, cfg.InitialInvestment)
}

func TestLoadConfig_EmptyPath_UsesDefaultsAndEnv(t *testing.T) {
	t.Setenv("RISKKIT_VAR_LEVEL", "2.5")
	t.Setenv("RISKKIT_INITIAL_INVESTMENT", "100")

	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.VaRLevel)
	assert.Equal(t, 100.0, cfg.InitialInvestment)
	assert.Equal(t, 0.03, cfg.RiskFreeRate)
}

func TestLoadConfig_OutOfRange_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "risk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("var_level: 150"), 0o644))

	_, err := LoadConfig(path)

	assert.Error(t, err)
}

func TestLoadConfig_MissingFile_ReturnsError(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
