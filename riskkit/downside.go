package riskkit

import (
	"github.com/sartorproj/riskkit/stats"
	"github.com/sartorproj/riskkit/timeseries"
)

// SemiDeviation returns the population standard deviation of the strictly negative
// returns of each column. A column without negative returns yields NaN.
func (k *Kit) SemiDeviation(rets timeseries.Input) (*Result, error) {
	return perColumn(rets, func(x []float64) float64 {
		return k.prim.StdDev(below(x, 0), 0)
	})
}

// VaRHistoric returns the historic Value-at-Risk at level percent for each column:
// the level-th percentile of the returns with its sign flipped, so a loss is positive.
// Returns fall below -VaR level percent of the time.
func (k *Kit) VaRHistoric(rets timeseries.Input, level float64) (*Result, error) {
	return perColumn(rets, func(x []float64) float64 {
		return k.varHistoric(x, level)
	})
}

func (k *Kit) varHistoric(x []float64, level float64) float64 {
	return -k.prim.Percentile(x, level)
}

// VaRGaussian returns the parametric Value-at-Risk at level percent for each column,
// -(μ + z·σ) with z the level/100 quantile of the standard normal and σ the population
// standard deviation. With modified set, z is adjusted by the Cornish-Fisher expansion
// using the column's skewness and raw kurtosis.
func (k *Kit) VaRGaussian(rets timeseries.Input, level float64, modified bool) (*Result, error) {
	z := k.prim.NormQuantile(level / 100)
	return perColumn(rets, func(x []float64) float64 {
		zc := z
		if modified {
			zc = cornishFisher(z, stats.Skewness(k.prim, x), stats.Kurtosis(k.prim, x))
		}
		return -(k.prim.Mean(x) + zc*k.prim.StdDev(x, 0))
	})
}

// cornishFisher adjusts a standard normal quantile z for skewness s and raw kurtosis kurt.
func cornishFisher(z, s, kurt float64) float64 {
	z2 := z * z
	z3 := z2 * z
	return z +
		(z2-1)*s/6 +
		(z3-3*z)*(kurt-3)/24 -
		(2*z3-5*z)*(s*s)/36
}

// CVaRHistoric returns the historic conditional VaR at level percent for each column:
// the mean of the returns strictly below -VaRHistoric. The value is a return, so a loss
// is negative. A column with no such returns yields NaN.
func (k *Kit) CVaRHistoric(rets timeseries.Input, level float64) (*Result, error) {
	return perColumn(rets, func(x []float64) float64 {
		return k.prim.Mean(below(x, -k.varHistoric(x, level)))
	})
}

// below returns the elements of x strictly less than threshold.
func below(x []float64, threshold float64) []float64 {
	return timeseries.New(x).Filter(func(v float64) bool { return v < threshold })
}

// SemiDeviation runs Kit.SemiDeviation with the default kit.
func SemiDeviation(rets timeseries.Input) (*Result, error) {
	return std.SemiDeviation(rets)
}

// VaRHistoric runs Kit.VaRHistoric with the default kit.
func VaRHistoric(rets timeseries.Input, level float64) (*Result, error) {
	return std.VaRHistoric(rets, level)
}

// VaRGaussian runs Kit.VaRGaussian with the default kit.
func VaRGaussian(rets timeseries.Input, level float64, modified bool) (*Result, error) {
	return std.VaRGaussian(rets, level, modified)
}

// CVaRHistoric runs Kit.CVaRHistoric with the default kit.
func CVaRHistoric(rets timeseries.Input, level float64) (*Result, error) {
	return std.CVaRHistoric(rets, level)
}
