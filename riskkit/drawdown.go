package riskkit

import (
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/riskkit/timeseries"
)

// Column names of DrawdownResult.Table.
const (
	WealthIndexColumn = "Wealth Index"
	LastPeakColumn    = "Last Peak"
	DrawdownColumn    = "Drawdown"
)

// DrawdownResult holds the wealth index, its running peak and the drawdown, one entry per period.
type DrawdownResult struct {
	Name        string
	Timestamps  []time.Time // nil unless the input carried timestamps
	WealthIndex []float64
	LastPeak    []float64
	Drawdown    []float64
}

// Len returns the number of periods.
func (d *DrawdownResult) Len() int {
	return len(d.Drawdown)
}

// MaxDrawdown returns the deepest drawdown and the index at which it occurs.
// It returns (0, -1) for an empty result.
func (d *DrawdownResult) MaxDrawdown() (float64, int) {
	if len(d.Drawdown) == 0 {
		return 0, -1
	}
	at := floats.MinIdx(d.Drawdown)
	return d.Drawdown[at], at
}

// Table returns the three sequences as columns of a table.
func (d *DrawdownResult) Table() *timeseries.Table {
	col := func(name string, v []float64) *timeseries.Series {
		return &timeseries.Series{Name: name, Values: v, Timestamps: d.Timestamps}
	}
	return timeseries.MustTable(
		col(WealthIndexColumn, d.WealthIndex),
		col(LastPeakColumn, d.LastPeak),
		col(DrawdownColumn, d.Drawdown),
	)
}

// Drawdowns computes the drawdown curve of a single return series.
//
//	W_t = initInv * Π_{i<=t}(1+r_i)
//	P_t = max(W_1..W_t)
//	D_t = (W_t - P_t) / P_t
//
// D_t is never positive and is 0 whenever W_t sets a new high.
func (k *Kit) Drawdowns(rets *timeseries.Series, initInv float64) (*DrawdownResult, error) {
	if rets == nil {
		return nil, timeseries.Unsupported(rets)
	}

	c := rets.Copy()
	n := c.Len()
	wealth := c.Values
	floats.AddConst(1, wealth)
	floats.CumProd(wealth, wealth)
	floats.Scale(initInv, wealth)

	peak := make([]float64, n)
	drawdown := make([]float64, n)
	for i, w := range wealth {
		peak[i] = w
		if i > 0 && peak[i-1] > w {
			peak[i] = peak[i-1]
		}
		drawdown[i] = (w - peak[i]) / peak[i]
	}

	res := &DrawdownResult{
		Name:        rets.Name,
		WealthIndex: wealth,
		LastPeak:    peak,
		Drawdown:    drawdown,
	}
	if c.HasTimestamps() {
		res.Timestamps = c.Timestamps
	}
	return res, nil
}

// Drawdowns runs Kit.Drawdowns with the default kit.
func Drawdowns(rets *timeseries.Series, initInv float64) (*DrawdownResult, error) {
	return std.Drawdowns(rets, initInv)
}
