// Package stats provides the numeric primitives and distribution diagnostics
// used by the risk functions.
//
// # Primitives
//
// Every computation goes through the Primitives interface so the underlying
// math library can be swapped. Gonum is the default implementation:
//
//	var p stats.Primitives = stats.Gonum{}
//	mean := p.Mean(x)
//	sd := p.StdDev(x, 1)          // sample standard deviation
//	q := p.Percentile(x, 5)       // 5th percentile, linear interpolation
//	z := p.NormQuantile(0.05)     // about -1.645
//
// # Moments
//
//	skew := stats.Skewness(p, x)
//	kurt := stats.Kurtosis(p, x)  // raw kurtosis, not excess
//	m5 := stats.StandardizedMoment(p, x, 5)
//
// # Normality
//
// Jarque-Bera test, H0: the sample is normally distributed:
//
//	jb := stats.JarqueBera(p, x)
//	if jb.IsNormal(0.1) {
//	    // fail to reject normality at the 10% level
//	}
package stats
