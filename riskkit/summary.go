package riskkit

import (
	"context"
	"encoding/json"
	"math"

	"github.com/rs/zerolog"

	"github.com/sartorproj/riskkit/stats"
	"github.com/sartorproj/riskkit/timeseries"
)

// ColumnSummary collects every per-column statistic of a Summary.
// Non-finite values encode as JSON null.
type ColumnSummary struct {
	Name                 string  `json:"name"`
	AnnualizedReturn     float64 `json:"annualized_return"`
	AnnualizedVolatility float64 `json:"annualized_volatility"`
	SharpeRatio          float64 `json:"sharpe_ratio"`
	Skewness             float64 `json:"skewness"`
	Kurtosis             float64 `json:"kurtosis"`
	SemiDeviation        float64 `json:"semi_deviation"`
	VaRHistoric          float64 `json:"var_historic"`
	VaRGaussian          float64 `json:"var_gaussian"`
	VaRCornishFisher     float64 `json:"var_cornish_fisher"` // NaN unless Config.CornishFisher is set
	CVaRHistoric         float64 `json:"cvar_historic"`
	MaxDrawdown          float64 `json:"max_drawdown"`
}

// MarshalJSON implements json.Marshaler.
func (c ColumnSummary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name                 string          `json:"name"`
		AnnualizedReturn     stats.JSONFloat `json:"annualized_return"`
		AnnualizedVolatility stats.JSONFloat `json:"annualized_volatility"`
		SharpeRatio          stats.JSONFloat `json:"sharpe_ratio"`
		Skewness             stats.JSONFloat `json:"skewness"`
		Kurtosis             stats.JSONFloat `json:"kurtosis"`
		SemiDeviation        stats.JSONFloat `json:"semi_deviation"`
		VaRHistoric          stats.JSONFloat `json:"var_historic"`
		VaRGaussian          stats.JSONFloat `json:"var_gaussian"`
		VaRCornishFisher     stats.JSONFloat `json:"var_cornish_fisher"`
		CVaRHistoric         stats.JSONFloat `json:"cvar_historic"`
		MaxDrawdown          stats.JSONFloat `json:"max_drawdown"`
	}{
		Name:                 c.Name,
		AnnualizedReturn:     stats.JSONFloat(c.AnnualizedReturn),
		AnnualizedVolatility: stats.JSONFloat(c.AnnualizedVolatility),
		SharpeRatio:          stats.JSONFloat(c.SharpeRatio),
		Skewness:             stats.JSONFloat(c.Skewness),
		Kurtosis:             stats.JSONFloat(c.Kurtosis),
		SemiDeviation:        stats.JSONFloat(c.SemiDeviation),
		VaRHistoric:          stats.JSONFloat(c.VaRHistoric),
		VaRGaussian:          stats.JSONFloat(c.VaRGaussian),
		VaRCornishFisher:     stats.JSONFloat(c.VaRCornishFisher),
		CVaRHistoric:         stats.JSONFloat(c.CVaRHistoric),
		MaxDrawdown:          stats.JSONFloat(c.MaxDrawdown),
	})
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (c ColumnSummary) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", c.Name).
		Float64("annualized_return", c.AnnualizedReturn).
		Float64("annualized_volatility", c.AnnualizedVolatility).
		Float64("sharpe_ratio", c.SharpeRatio).
		Float64("skewness", c.Skewness).
		Float64("kurtosis", c.Kurtosis).
		Float64("semi_deviation", c.SemiDeviation).
		Float64("var_historic", c.VaRHistoric).
		Float64("var_gaussian", c.VaRGaussian).
		Float64("var_cornish_fisher", c.VaRCornishFisher).
		Float64("cvar_historic", c.CVaRHistoric).
		Float64("max_drawdown", c.MaxDrawdown)
}

// nonFinite returns the names of the fields that are NaN or infinite.
func (c ColumnSummary) nonFinite(cornishFisher bool) []string {
	fields := []struct {
		name string
		v    float64
	}{
		{"annualized_return", c.AnnualizedReturn},
		{"annualized_volatility", c.AnnualizedVolatility},
		{"sharpe_ratio", c.SharpeRatio},
		{"skewness", c.Skewness},
		{"kurtosis", c.Kurtosis},
		{"semi_deviation", c.SemiDeviation},
		{"var_historic", c.VaRHistoric},
		{"var_gaussian", c.VaRGaussian},
		{"cvar_historic", c.CVaRHistoric},
		{"max_drawdown", c.MaxDrawdown},
	}
	if cornishFisher {
		fields = append(fields, struct {
			name string
			v    float64
		}{"var_cornish_fisher", c.VaRCornishFisher})
	}

	var bad []string
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			bad = append(bad, f.name)
		}
	}
	return bad
}

// Summary is the full risk report of an input.
type Summary struct {
	Config    Config                  `json:"config"`
	Columns   []ColumnSummary         `json:"columns"`
	Normality *stats.JarqueBeraResult `json:"normality"` // one joint test over all columns
	IsNormal  bool                    `json:"is_normal"`
	Nobs      int                     `json:"nobs"`
}

// Column returns the summary of a column.
func (s *Summary) Column(name string) (ColumnSummary, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnSummary{}, false
}

// Summarize computes every statistic of the package for each column of rets using the
// parameters in cfg (DefaultConfig when nil). cfg.PeriodsPerYear overrides the kit's
// annualization factor. Non-finite statistics are reported at warn level through the
// logger carried by ctx.
func (k *Kit) Summarize(ctx context.Context, rets timeseries.Input, cfg *Config) (*Summary, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cols, err := timeseries.Columns(rets)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx)
	kk := New(WithPrimitives(k.prim), WithPeriodsPerYear(cfg.PeriodsPerYear))

	sharpe, err := kk.SharpeRatio(rets, cfg.RiskFreeRate)
	if err != nil {
		return nil, err
	}
	skew, err := kk.Skewness(rets)
	if err != nil {
		return nil, err
	}
	kurt, err := kk.Kurtosis(rets)
	if err != nil {
		return nil, err
	}
	semi, err := kk.SemiDeviation(rets)
	if err != nil {
		return nil, err
	}
	hist, err := kk.VaRHistoric(rets, cfg.VaRLevel)
	if err != nil {
		return nil, err
	}
	gauss, err := kk.VaRGaussian(rets, cfg.VaRLevel, false)
	if err != nil {
		return nil, err
	}
	cf := newResult(false, 0)
	if cfg.CornishFisher {
		if cf, err = kk.VaRGaussian(rets, cfg.VaRLevel, true); err != nil {
			return nil, err
		}
	}
	cvar, err := kk.CVaRHistoric(rets, cfg.VaRLevel)
	if err != nil {
		return nil, err
	}
	jb, err := kk.JarqueBera(rets)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Config:    *cfg,
		Columns:   make([]ColumnSummary, 0, len(cols)),
		Normality: jb,
		IsNormal:  jb.IsNormal(cfg.NormalityLevel),
	}
	if len(cols) > 0 {
		summary.Nobs = cols[0].Len()
	}

	for _, c := range cols {
		row, _ := sharpe.Row(c.Name)
		dd, err := kk.Drawdowns(c, cfg.InitialInvestment)
		if err != nil {
			return nil, err
		}
		maxDD, _ := dd.MaxDrawdown()

		cs := ColumnSummary{
			Name:                 c.Name,
			AnnualizedReturn:     row.AnnualizedReturn,
			AnnualizedVolatility: row.AnnualizedVolatility,
			SharpeRatio:          row.SharpeRatio,
			Skewness:             skew.Value(c.Name),
			Kurtosis:             kurt.Value(c.Name),
			SemiDeviation:        semi.Value(c.Name),
			VaRHistoric:          hist.Value(c.Name),
			VaRGaussian:          gauss.Value(c.Name),
			VaRCornishFisher:     cf.Value(c.Name),
			CVaRHistoric:         cvar.Value(c.Name),
			MaxDrawdown:          maxDD,
		}
		if bad := cs.nonFinite(cfg.CornishFisher); len(bad) > 0 {
			logger.Warn().Str("column", c.Name).Strs("fields", bad).Msg("non-finite risk statistics")
		}
		logger.Debug().Object("summary", cs).Msg("column summarized")
		summary.Columns = append(summary.Columns, cs)
	}

	logger.Debug().
		Int("columns", len(cols)).
		Float64("jarque_bera", jb.Statistic).
		Float64("p_value", jb.PValue).
		Bool("normal", summary.IsNormal).
		Msg("summary complete")

	return summary, nil
}

// Summarize runs Kit.Summarize with the default kit.
func Summarize(ctx context.Context, rets timeseries.Input, cfg *Config) (*Summary, error) {
	return std.Summarize(ctx, rets, cfg)
}
