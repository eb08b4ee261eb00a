package riskkit

import (
	"github.com/sartorproj/riskkit/stats"
	"github.com/sartorproj/riskkit/timeseries"
)

// MagicMoments returns E[(r-μ)^moment] / σ^moment per column, σ being the population
// standard deviation. Pass 3 for skewness and 4 for kurtosis. Any integer is accepted.
//
// The kurtosis is raw, not excess: a normal sample gives about 3.
func (k *Kit) MagicMoments(rets timeseries.Input, moment int) (*Result, error) {
	return perColumn(rets, func(x []float64) float64 {
		return stats.StandardizedMoment(k.prim, x, moment)
	})
}

// Skewness is MagicMoments with moment 3.
func (k *Kit) Skewness(rets timeseries.Input) (*Result, error) {
	return k.MagicMoments(rets, 3)
}

// Kurtosis is MagicMoments with moment 4 (raw kurtosis).
func (k *Kit) Kurtosis(rets timeseries.Input) (*Result, error) {
	return k.MagicMoments(rets, 4)
}

// JarqueBera runs one Jarque-Bera test on all observations of the input.
// A Table is not tested column by column: its columns are pooled into a single sample.
func (k *Kit) JarqueBera(rets timeseries.Input) (*stats.JarqueBeraResult, error) {
	x, err := pooled(rets)
	if err != nil {
		return nil, err
	}
	return stats.JarqueBera(k.prim, x), nil
}

// IsNormal reports whether the Jarque-Bera p-value exceeds level, i.e. normality is not rejected.
// Like JarqueBera it runs one joint test over a whole Table.
func (k *Kit) IsNormal(rets timeseries.Input, level float64) (bool, error) {
	jb, err := k.JarqueBera(rets)
	if err != nil {
		return false, err
	}
	return jb.IsNormal(level), nil
}

// MagicMoments runs Kit.MagicMoments with the default kit.
func MagicMoments(rets timeseries.Input, moment int) (*Result, error) {
	return std.MagicMoments(rets, moment)
}

// IsNormal runs Kit.IsNormal with the default kit.
func IsNormal(rets timeseries.Input, level float64) (bool, error) {
	return std.IsNormal(rets, level)
}
