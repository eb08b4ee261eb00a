package stats

import "math"

// StandardizedMoment returns E[(x-μ)^k] / σ^k with the population standard deviation (ddof=0).
// k=3 is the sample skewness and k=4 the raw kurtosis; no excess correction is applied.
func StandardizedMoment(p Primitives, x []float64, k int) float64 {
	sd := p.StdDev(x, 0)
	return p.Moment(x, k) / math.Pow(sd, float64(k))
}

// Skewness returns the biased sample skewness of x.
func Skewness(p Primitives, x []float64) float64 {
	return StandardizedMoment(p, x, 3)
}

// Kurtosis returns the raw (non-excess) sample kurtosis of x; a normal sample gives about 3.
func Kurtosis(p Primitives, x []float64) float64 {
	return StandardizedMoment(p, x, 4)
}
