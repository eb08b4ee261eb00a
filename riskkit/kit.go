package riskkit

import (
	"github.com/sartorproj/riskkit/stats"
	"github.com/sartorproj/riskkit/timeseries"
)

// Defaults used by the package-level functions and DefaultConfig.
const (
	DefaultRiskFreeRate      = 0.03
	DefaultInitialInvestment = 1000.0
	DefaultVaRLevel          = 5.0
	DefaultNormalityLevel    = 0.1
	DefaultPeriodsPerYear    = 12
)

// ErrUnsupportedInput is returned when an input is neither a Series nor a Table.
var ErrUnsupportedInput = timeseries.ErrUnsupportedInput

// Kit binds the risk functions to a set of numeric primitives and a sampling frequency.
// A Kit is immutable and safe for concurrent use.
type Kit struct {
	prim           stats.Primitives
	periodsPerYear int
}

// Option configures a Kit.
type Option func(*Kit)

// WithPrimitives replaces the numeric backend.
func WithPrimitives(p stats.Primitives) Option {
	return func(k *Kit) {
		if p != nil {
			k.prim = p
		}
	}
}

// WithPeriodsPerYear sets the number of return periods per year used for annualization (12 for monthly).
func WithPeriodsPerYear(n int) Option {
	return func(k *Kit) {
		if n > 0 {
			k.periodsPerYear = n
		}
	}
}

// New creates a Kit backed by gonum and monthly annualization unless overridden.
func New(opts ...Option) *Kit {
	k := &Kit{
		prim:           stats.Gonum{},
		periodsPerYear: DefaultPeriodsPerYear,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Primitives returns the numeric backend of the kit.
func (k *Kit) Primitives() stats.Primitives {
	return k.prim
}

// PeriodsPerYear returns the annualization factor of the kit.
func (k *Kit) PeriodsPerYear() int {
	return k.periodsPerYear
}

var std = New()

// perColumn applies f to the values of a Series, or to each column of a Table.
func perColumn(in timeseries.Input, f func(x []float64) float64) (*Result, error) {
	switch v := in.(type) {
	case *timeseries.Series:
		if v == nil {
			return nil, timeseries.Unsupported(in)
		}
		r := newResult(true, 1)
		r.set(v.Name, f(v.Values))
		return r, nil
	case *timeseries.Table:
		if v == nil {
			return nil, timeseries.Unsupported(in)
		}
		r := newResult(false, v.Width())
		for _, c := range v.Columns() {
			r.set(c.Name, f(c.Values))
		}
		return r, nil
	default:
		return nil, timeseries.Unsupported(in)
	}
}

// pooled returns all observations of an input as one sample.
func pooled(in timeseries.Input) ([]float64, error) {
	switch v := in.(type) {
	case *timeseries.Series:
		if v == nil {
			return nil, timeseries.Unsupported(in)
		}
		return v.Values, nil
	case *timeseries.Table:
		if v == nil {
			return nil, timeseries.Unsupported(in)
		}
		return v.Values(), nil
	default:
		return nil, timeseries.Unsupported(in)
	}
}
