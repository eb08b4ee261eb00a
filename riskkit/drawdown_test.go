package riskkit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/riskkit/timeseries"
)

func TestDrawdowns(t *testing.T) {
	dd, err := Drawdowns(timeseries.NewNamed("A", retsA), DefaultInitialInvestment)
	require.NoError(t, err)
	require.Equal(t, 5, dd.Len())

	wealth := []float64{1010.0, 989.8, 1019.494, 1009.29906, 1029.4850412}
	peak := []float64{1010.0, 1010.0, 1019.494, 1019.494, 1029.4850412}
	drawdown := []float64{0, -0.02, 0, -0.01, 0}

	assert.InDeltaSlice(t, wealth, dd.WealthIndex, 1e-9)
	assert.InDeltaSlice(t, peak, dd.LastPeak, 1e-9)
	assert.InDeltaSlice(t, drawdown, dd.Drawdown, 1e-12)
	assert.Equal(t, "A", dd.Name)
	assert.Nil(t, dd.Timestamps)

	worst, at := dd.MaxDrawdown()
	assert.InDelta(t, -0.02, worst, 1e-12)
	assert.Equal(t, 1, at)
}

func TestDrawdownsInitialInvestment(t *testing.T) {
	dd, err := Drawdowns(timeseries.New(retsB), 1)
	require.NoError(t, err)

	assert.InDelta(t, 1.02, dd.WealthIndex[0], 1e-12)
	assert.InDelta(t, -0.03, dd.Drawdown[2], 1e-12)
	assert.InDelta(t, -0.01, dd.Drawdown[4], 1e-12)
}

func TestDrawdownsNonPositiveAndZeroAtHighs(t *testing.T) {
	table := randomTable(t, 11, 4, 240)

	for _, c := range table.Columns() {
		t.Run(c.Name, func(t *testing.T) {
			dd, err := Drawdowns(c, DefaultInitialInvestment)
			require.NoError(t, err)

			high := 0.0
			for i, w := range dd.WealthIndex {
				assert.LessOrEqual(t, dd.Drawdown[i], 0.0)
				assert.GreaterOrEqual(t, dd.LastPeak[i], w)
				if w >= high {
					assert.Equal(t, 0.0, dd.Drawdown[i], "new high at %d", i)
					high = w
				}
			}
		})
	}
}

func TestDrawdownsTimestampsAndTable(t *testing.T) {
	base := time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC)
	ts := make([]time.Time, len(retsA))
	for i := range ts {
		ts[i] = base.AddDate(0, i, 0)
	}
	series, err := timeseries.NewWithTimestamps("A", ts, retsA)
	require.NoError(t, err)

	dd, err := Drawdowns(series, DefaultInitialInvestment)
	require.NoError(t, err)
	assert.Equal(t, ts, dd.Timestamps)

	table := dd.Table()
	assert.Equal(t, []string{WealthIndexColumn, LastPeakColumn, DrawdownColumn}, table.Names())
	col, ok := table.Column(DrawdownColumn)
	require.True(t, ok)
	assert.Equal(t, dd.Drawdown, col.Values)
	assert.True(t, col.HasTimestamps())
}

func TestDrawdownsEmpty(t *testing.T) {
	dd, err := Drawdowns(timeseries.New(nil), DefaultInitialInvestment)
	require.NoError(t, err)
	assert.Equal(t, 0, dd.Len())

	worst, at := dd.MaxDrawdown()
	assert.Equal(t, 0.0, worst)
	assert.Equal(t, -1, at)
}

func TestDrawdownsDetachedFromInput(t *testing.T) {
	base := time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC)
	ts := []time.Time{base, base.AddDate(0, 1, 0), base.AddDate(0, 2, 0)}
	values := []float64{0.1, -0.5, 0.2}
	series, err := timeseries.NewWithTimestamps("x", ts, values)
	require.NoError(t, err)

	dd, err := Drawdowns(series, 1)
	require.NoError(t, err)

	assert.Equal(t, []float64{0.1, -0.5, 0.2}, values, "input values must not change")
	series.Values[1] = 0
	series.Timestamps[1] = base
	assert.InDelta(t, -0.5, dd.Drawdown[1], 1e-12)
	assert.Equal(t, base.AddDate(0, 1, 0), dd.Timestamps[1])
}

func TestMaxDrawdownFirstTrough(t *testing.T) {
	dd := &DrawdownResult{Drawdown: []float64{0, -0.1, 0, -0.1, -0.05}}
	worst, at := dd.MaxDrawdown()
	assert.Equal(t, -0.1, worst)
	assert.Equal(t, 1, at)
}
