package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Primitives is the small set of numeric routines the risk functions are built on.
// Implementations must be pure: no retained state, no mutation of x.
type Primitives interface {
	// Mean returns the arithmetic mean of x, NaN when x is empty.
	Mean(x []float64) float64
	// StdDev returns the standard deviation of x with ddof delta degrees of freedom.
	StdDev(x []float64, ddof int) float64
	// Moment returns the central moment E[(x-μ)^k].
	Moment(x []float64, k int) float64
	// Percentile returns the p-th percentile of x (0 <= p <= 100) with linear interpolation.
	Percentile(x []float64, p float64) float64
	// NormQuantile returns the inverse of the standard normal CDF at p.
	NormQuantile(p float64) float64
	// ChiSquaredSurvival returns P(X > x) for a chi-squared variable with dof degrees of freedom.
	ChiSquaredSurvival(x, dof float64) float64
}

// Gonum implements Primitives on top of gonum's stat and distuv packages.
type Gonum struct{}

var _ Primitives = Gonum{}

// Mean returns the arithmetic mean of x.
func (Gonum) Mean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Mean(x, nil)
}

// StdDev returns sqrt(Σ(x-μ)² / (n-ddof)).
// n <= ddof gives NaN or +Inf per IEEE division, as does an empty x.
func (Gonum) StdDev(x []float64, ddof int) float64 {
	n := len(x)
	if n == 0 {
		return math.NaN()
	}
	pop := stat.PopVariance(x, nil)
	if ddof == 0 {
		return math.Sqrt(pop)
	}
	return math.Sqrt(pop * float64(n) / float64(n-ddof))
}

// Moment returns the central moment of order k without degrees of freedom correction.
func (Gonum) Moment(x []float64, k int) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Moment(float64(k), x, nil)
}

// Percentile uses the "linear" method: the value at rank (n-1)*p/100,
// interpolating between the two closest observations.
func (Gonum) Percentile(x []float64, p float64) float64 {
	return Percentile(x, p)
}

// NormQuantile returns NaN outside [0, 1].
func (Gonum) NormQuantile(p float64) float64 {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return math.NaN()
	}
	return distuv.UnitNormal.Quantile(p)
}

// ChiSquaredSurvival returns 1 - CDF(x) of the chi-squared distribution.
func (Gonum) ChiSquaredSurvival(x, dof float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	return distuv.ChiSquared{K: dof}.Survival(x)
}

// Percentile returns the p-th percentile of x with linear interpolation between closest ranks.
// It returns NaN for an empty x or p outside [0, 100]. x is not modified.
func Percentile(x []float64, p float64) float64 {
	n := len(x)
	if n == 0 || math.IsNaN(p) || p < 0 || p > 100 {
		return math.NaN()
	}

	sorted := make([]float64, n)
	copy(sorted, x)
	sort.Float64s(sorted)

	pos := p / 100 * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
