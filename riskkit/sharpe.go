package riskkit

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/riskkit/timeseries"
)

// Metric names of a SharpeReport.
const (
	AnnualizedReturns    = "Annualized Returns"
	AnnualizedVolatility = "Annualized Volatility"
	SharpeRatioMetric    = "Sharpe Ratio"
)

// SharpeRow holds the return/risk summary of one column.
type SharpeRow struct {
	Name                 string
	AnnualizedReturn     float64
	AnnualizedVolatility float64
	SharpeRatio          float64
}

// SharpeReport holds one SharpeRow per input column, in input order.
type SharpeReport struct {
	Rows []SharpeRow
}

// Row returns the summary of a column.
func (r *SharpeReport) Row(name string) (SharpeRow, bool) {
	for _, row := range r.Rows {
		if row.Name == name {
			return row, true
		}
	}
	return SharpeRow{}, false
}

// Metric returns one metric across all columns.
// metric is one of AnnualizedReturns, AnnualizedVolatility or SharpeRatioMetric; anything else gives nil.
func (r *SharpeReport) Metric(metric string) *Result {
	var pick func(SharpeRow) float64
	switch metric {
	case AnnualizedReturns:
		pick = func(s SharpeRow) float64 { return s.AnnualizedReturn }
	case AnnualizedVolatility:
		pick = func(s SharpeRow) float64 { return s.AnnualizedVolatility }
	case SharpeRatioMetric:
		pick = func(s SharpeRow) float64 { return s.SharpeRatio }
	default:
		return nil
	}
	res := newResult(false, len(r.Rows))
	for _, row := range r.Rows {
		res.set(row.Name, pick(row))
	}
	return res
}

// SharpeRatio computes annualized return, annualized volatility and the Sharpe ratio
// for each column, with rfr the annual risk-free rate.
//
//	annualized return     = Π(1+r)^(P/n) - 1
//	annualized volatility = std(r, ddof=1) * √P
//	sharpe ratio          = (annualized return - rfr) / annualized volatility
//
// P is the kit's periods per year. Zero volatility yields ±Inf or NaN.
func (k *Kit) SharpeRatio(rets timeseries.Input, rfr float64) (*SharpeReport, error) {
	cols, err := timeseries.Columns(rets)
	if err != nil {
		return nil, err
	}

	report := &SharpeReport{Rows: make([]SharpeRow, len(cols))}
	for i, c := range cols {
		ann := k.annualizedReturn(c.Values)
		vol := k.annualizedVolatility(c.Values)
		report.Rows[i] = SharpeRow{
			Name:                 c.Name,
			AnnualizedReturn:     ann,
			AnnualizedVolatility: vol,
			SharpeRatio:          (ann - rfr) / vol,
		}
	}
	return report, nil
}

func (k *Kit) annualizedReturn(x []float64) float64 {
	growth := make([]float64, len(x))
	copy(growth, x)
	floats.AddConst(1, growth)
	return math.Pow(floats.Prod(growth), float64(k.periodsPerYear)/float64(len(x))) - 1
}

func (k *Kit) annualizedVolatility(x []float64) float64 {
	return k.prim.StdDev(x, 1) * math.Sqrt(float64(k.periodsPerYear))
}

// SharpeRatio runs Kit.SharpeRatio with the default kit.
func SharpeRatio(rets timeseries.Input, rfr float64) (*SharpeReport, error) {
	return std.SharpeRatio(rets, rfr)
}
