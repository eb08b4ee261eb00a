// Package riskkit computes risk and performance statistics for periodic return series.
//
// Every function accepts a timeseries.Input, which is either a single *Series or a
// *Table of named series. A Table is processed column by column with no interaction
// between columns, and results keep the table's column order. IsNormal is the one
// exception: it pools a whole Table into a single Jarque-Bera test.
//
// # Return and Risk Summary
//
//	report, err := riskkit.SharpeRatio(table, riskkit.DefaultRiskFreeRate)
//	for _, row := range report.Rows {
//	    fmt.Println(row.Name, row.AnnualizedReturn, row.AnnualizedVolatility, row.SharpeRatio)
//	}
//
// # Drawdowns
//
//	dd, err := riskkit.Drawdowns(series, riskkit.DefaultInitialInvestment)
//	worst, at := dd.MaxDrawdown()
//
// # Distribution Shape
//
//	skew, err := riskkit.MagicMoments(table, 3)
//	kurt, err := riskkit.MagicMoments(table, 4) // raw kurtosis, about 3 for normal data
//	normal, err := riskkit.IsNormal(table, 0.1)
//
// # Downside Risk
//
//	semi, err := riskkit.SemiDeviation(table)
//	hvar, err := riskkit.VaRHistoric(table, 5)
//	gvar, err := riskkit.VaRGaussian(table, 5, false)
//	cfvar, err := riskkit.VaRGaussian(table, 5, true) // Cornish-Fisher
//	cvar, err := riskkit.CVaRHistoric(table, 5)
//
// VaR values are losses expressed as positive numbers. Degenerate inputs (zero
// volatility, no negative returns, an empty tail) produce NaN or ±Inf, never an
// error. Errors are reserved for inputs that are neither a Series nor a Table
// (ErrUnsupportedInput).
//
// # Kits
//
// The package-level functions use a default Kit backed by gonum with monthly
// annualization. Build a Kit to change either:
//
//	kit := riskkit.New(riskkit.WithPeriodsPerYear(252))
//	report, err := kit.SharpeRatio(daily, 0.02)
package riskkit
