// Package riskkit provides risk and performance statistics for financial return series.
//
// RiskKit is a Go library of pure functions over periodic (by default monthly)
// returns, given either as a single named series or as a table of named series
// processed column by column.
//
// # Features
//
//   - Annualized return, annualized volatility and Sharpe ratio
//   - Wealth index, running peak and drawdown curves
//   - Skewness and raw kurtosis, Jarque-Bera normality test
//   - Semi-deviation
//   - Historic VaR and CVaR, Gaussian and Cornish-Fisher VaR
//
// # Quick Start
//
//	table, _ := timeseries.NewTable(
//	    timeseries.NewNamed("Small Cap", small),
//	    timeseries.NewNamed("Large Cap", large),
//	)
//	report, _ := riskkit.SharpeRatio(table, 0.03)
//	hvar, _ := riskkit.VaRHistoric(table, 5)
//	cf, _ := riskkit.VaRGaussian(table, 5, true)
//
// Compute everything at once with a configuration:
//
//	cfg, _ := riskkit.LoadConfig("risk.yaml")
//	summary, _ := riskkit.Summarize(ctx, table, cfg)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - riskkit: the risk functions, Kit, Config and Summarize
//   - stats: numeric primitives (gonum-backed), moments, percentiles, Jarque-Bera
//   - timeseries: Series, Table and the Input variant
//
// # References
//
//   - Sharpe, W. F. (1966). Mutual Fund Performance
//   - Jarque, C. M., & Bera, A. K. (1980). Efficient tests for normality
//   - Cornish, E. A., & Fisher, R. A. (1938). Moments and cumulants in the specification of distributions
package riskkit
