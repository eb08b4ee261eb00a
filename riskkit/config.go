package riskkit

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds the parameters Summarize applies to every column.
type Config struct {
	RiskFreeRate      float64 `mapstructure:"risk_free_rate" json:"risk_free_rate"`
	VaRLevel          float64 `mapstructure:"var_level" json:"var_level" validate:"gt=0,lt=100"`
	NormalityLevel    float64 `mapstructure:"normality_level" json:"normality_level" validate:"gt=0,lt=1"`
	InitialInvestment float64 `mapstructure:"initial_investment" json:"initial_investment" validate:"gt=0"`
	PeriodsPerYear    int     `mapstructure:"periods_per_year" json:"periods_per_year" validate:"gt=0"`
	CornishFisher     bool    `mapstructure:"cornish_fisher" json:"cornish_fisher"`
}

// DefaultConfig returns the default risk configuration.
func DefaultConfig() *Config {
	return &Config{
		RiskFreeRate:      DefaultRiskFreeRate,
		VaRLevel:          DefaultVaRLevel,
		NormalityLevel:    DefaultNormalityLevel,
		InitialInvestment: DefaultInitialInvestment,
		PeriodsPerYear:    DefaultPeriodsPerYear,
		CornishFisher:     true,
	}
}

var validate = validator.New()

// Validate checks that every parameter is in range.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid risk config: %w", err)
	}
	return nil
}

// LoadConfig reads a config file (any format viper understands) on top of the defaults.
// Environment variables prefixed with RISKKIT_ override both, e.g. RISKKIT_VAR_LEVEL=1.
// An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("risk_free_rate", def.RiskFreeRate)
	v.SetDefault("var_level", def.VaRLevel)
	v.SetDefault("normality_level", def.NormalityLevel)
	v.SetDefault("initial_investment", def.InitialInvestment)
	v.SetDefault("periods_per_year", def.PeriodsPerYear)
	v.SetDefault("cornish_fisher", def.CornishFisher)

	v.SetEnvPrefix("riskkit")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse risk config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
