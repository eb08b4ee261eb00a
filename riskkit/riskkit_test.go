package riskkit

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/riskkit/stats"
	"github.com/sartorproj/riskkit/timeseries"
)

var (
	retsA = []float64{0.01, -0.02, 0.03, -0.01, 0.02}
	retsB = []float64{0.02, 0.01, -0.03, 0.04, -0.01}
)

func sampleTable(t *testing.T) *timeseries.Table {
	t.Helper()
	table, err := timeseries.NewTable(
		timeseries.NewNamed("A", retsA),
		timeseries.NewNamed("B", retsB),
	)
	require.NoError(t, err)
	return table
}

// randomTable builds a table of pseudo-random monthly returns.
func randomTable(t *testing.T, seed int64, cols, rows int) *timeseries.Table {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	series := make([]*timeseries.Series, cols)
	for c := range series {
		values := make([]float64, rows)
		for i := range values {
			values[i] = rng.NormFloat64()*0.05 + 0.005
		}
		series[c] = timeseries.NewNamed(string(rune('A'+c)), values)
	}
	table, err := timeseries.NewTable(series...)
	require.NoError(t, err)
	return table
}

func TestNewKit(t *testing.T) {
	k := New()
	assert.Equal(t, DefaultPeriodsPerYear, k.PeriodsPerYear())
	assert.IsType(t, stats.Gonum{}, k.Primitives())

	k = New(WithPeriodsPerYear(252), WithPrimitives(nil))
	assert.Equal(t, 252, k.PeriodsPerYear())
	assert.NotNil(t, k.Primitives(), "nil primitives must be ignored")

	k = New(WithPeriodsPerYear(0))
	assert.Equal(t, DefaultPeriodsPerYear, k.PeriodsPerYear())
}

func TestResultOrdering(t *testing.T) {
	table := timeseries.MustTable(
		timeseries.NewNamed("z", retsA),
		timeseries.NewNamed("a", retsB),
	)
	res, err := VaRHistoric(table, 5)
	require.NoError(t, err)

	assert.False(t, res.IsScalar())
	assert.Equal(t, 2, res.Len())
	assert.Equal(t, []string{"z", "a"}, res.Names())
	assert.Equal(t, []float64{res.Value("z"), res.Value("a")}, res.Values())
	assert.Equal(t, res.Value("z"), res.Scalar(), "scalar is the first column")
	assert.Len(t, res.Map(), 2)

	_, ok := res.Get("missing")
	assert.False(t, ok)
	assert.True(t, math.IsNaN(res.Value("missing")))
}

func TestScalarResult(t *testing.T) {
	res, err := VaRHistoric(timeseries.NewNamed("A", retsA), 20)
	require.NoError(t, err)

	assert.True(t, res.IsScalar())
	assert.Equal(t, []string{"A"}, res.Names())
	assert.InDelta(t, 0.012, res.Scalar(), 1e-12)
}

func TestUnsupportedInput(t *testing.T) {
	calls := map[string]func(timeseries.Input) error{
		"SharpeRatio": func(in timeseries.Input) error {
			_, err := SharpeRatio(in, DefaultRiskFreeRate)
			return err
		},
		"MagicMoments": func(in timeseries.Input) error {
			_, err := MagicMoments(in, 3)
			return err
		},
		"IsNormal": func(in timeseries.Input) error {
			_, err := IsNormal(in, DefaultNormalityLevel)
			return err
		},
		"SemiDeviation": func(in timeseries.Input) error {
			_, err := SemiDeviation(in)
			return err
		},
		"VaRHistoric": func(in timeseries.Input) error {
			_, err := VaRHistoric(in, DefaultVaRLevel)
			return err
		},
		"VaRGaussian": func(in timeseries.Input) error {
			_, err := VaRGaussian(in, DefaultVaRLevel, true)
			return err
		},
		"CVaRHistoric": func(in timeseries.Input) error {
			_, err := CVaRHistoric(in, DefaultVaRLevel)
			return err
		},
	}

	inputs := map[string]timeseries.Input{
		"nil":        nil,
		"nil series": (*timeseries.Series)(nil),
		"nil table":  (*timeseries.Table)(nil),
	}

	for fn, call := range calls {
		for name, in := range inputs {
			t.Run(fn+"/"+name, func(t *testing.T) {
				err := call(in)
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnsupportedInput))
			})
		}
	}

	_, err := Drawdowns(nil, DefaultInitialInvestment)
	assert.True(t, errors.Is(err, ErrUnsupportedInput))
}

func TestUnsupportedPlainValues(t *testing.T) {
	for _, v := range []any{0.05, "returns", 42} {
		in, err := timeseries.AsInput(v)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnsupportedInput))

		_, err = VaRHistoric(in, 5)
		assert.True(t, errors.Is(err, ErrUnsupportedInput))
		_, err = CVaRHistoric(in, 5)
		assert.True(t, errors.Is(err, ErrUnsupportedInput))
	}
}

func TestInputsAreNotMutated(t *testing.T) {
	table := randomTable(t, 7, 3, 60)
	before := table.Values()

	_, _ = SharpeRatio(table, DefaultRiskFreeRate)
	_, _ = MagicMoments(table, 4)
	_, _ = IsNormal(table, DefaultNormalityLevel)
	_, _ = SemiDeviation(table)
	_, _ = VaRHistoric(table, 5)
	_, _ = VaRGaussian(table, 5, true)
	_, _ = CVaRHistoric(table, 5)
	for _, c := range table.Columns() {
		_, _ = Drawdowns(c, DefaultInitialInvestment)
	}

	assert.Equal(t, before, table.Values())
}
