// Package main demonstrates the risk statistics on synthetic monthly portfolio returns.
package main

import (
	"context"
	"encoding/json"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/sartorproj/riskkit/riskkit"
	"github.com/sartorproj/riskkit/timeseries"
)

// Portfolio defines a synthetic return stream to analyze
type Portfolio struct {
	Name       string  // Column name
	MeanReturn float64 // Monthly mean return
	Volatility float64 // Monthly standard deviation
	CrashProb  float64 // Probability of a crash month (adds skew and fat tails)
	CrashSize  float64 // Return in a crash month
}

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	cfg, err := riskkit.LoadConfig(os.Getenv("RISKKIT_CONFIG"))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load risk config")
	}

	portfolios := []Portfolio{
		{Name: "Large Cap", MeanReturn: 0.007, Volatility: 0.04},
		{Name: "Small Cap", MeanReturn: 0.010, Volatility: 0.06, CrashProb: 0.03, CrashSize: -0.18},
		{Name: "Bonds", MeanReturn: 0.003, Volatility: 0.01},
		{Name: "Short Vol", MeanReturn: 0.012, Volatility: 0.015, CrashProb: 0.02, CrashSize: -0.30},
	}

	table, err := simulate(portfolios, 240, 42)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build returns table")
	}
	logger.Info().
		Strs("columns", table.Names()).
		Int("months", table.Len()).
		Interface("config", cfg).
		Msg("analyzing portfolios")

	summary, err := riskkit.Summarize(ctx, table, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to summarize returns")
	}
	for _, c := range summary.Columns {
		logger.Info().Object("risk", c).Msg(c.Name)
	}
	logger.Info().
		Float64("jarque_bera", summary.Normality.Statistic).
		Float64("p_value", summary.Normality.PValue).
		Bool("normal", summary.IsNormal).
		Msg("joint normality test")

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		logger.Fatal().Err(err).Msg("failed to encode summary")
	}

	// Drawdown episode of the riskiest column
	worstName, worstDD := "", 0.0
	for _, c := range summary.Columns {
		if c.MaxDrawdown < worstDD {
			worstName, worstDD = c.Name, c.MaxDrawdown
		}
	}
	if worstName == "" {
		return
	}
	col, _ := table.Column(worstName)
	dd, err := riskkit.Drawdowns(col, cfg.InitialInvestment)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to compute drawdowns")
	}
	depth, at := dd.MaxDrawdown()
	logger.Info().
		Str("column", worstName).
		Time("trough", dd.Timestamps[at]).
		Float64("depth", depth).
		Float64("wealth", dd.WealthIndex[at]).
		Float64("peak", dd.LastPeak[at]).
		Float64("final_wealth", dd.WealthIndex[dd.Len()-1]).
		Msg("deepest drawdown")
}

// simulate draws months of returns for each portfolio with a fixed seed
func simulate(portfolios []Portfolio, months int, seed int64) (*timeseries.Table, error) {
	rng := rand.New(rand.NewSource(seed))
	start := time.Date(2005, time.January, 31, 0, 0, 0, 0, time.UTC)

	timestamps := make([]time.Time, months)
	for i := range timestamps {
		timestamps[i] = monthEnd(start, i)
	}

	columns := make([]*timeseries.Series, 0, len(portfolios))
	for _, p := range portfolios {
		values := make([]float64, months)
		for i := range values {
			r := p.MeanReturn + p.Volatility*rng.NormFloat64()
			if p.CrashProb > 0 && rng.Float64() < p.CrashProb {
				r += p.CrashSize
			}
			values[i] = math.Max(r, -0.99)
		}
		s, err := timeseries.NewWithTimestamps(p.Name, timestamps, values)
		if err != nil {
			return nil, err
		}
		columns = append(columns, s)
	}
	return timeseries.NewTable(columns...)
}

// monthEnd returns the last day of the i-th month after start
func monthEnd(start time.Time, i int) time.Time {
	first := time.Date(start.Year(), start.Month()+time.Month(i)+1, 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 0, -1)
}
