package stats

import (
	"encoding/json"
	"math"
)

// JarqueBeraResult represents the result of a Jarque-Bera test.
type JarqueBeraResult struct {
	Statistic float64 `json:"statistic"`
	PValue    float64 `json:"p_value"`
	Skewness  float64 `json:"skewness"`
	Kurtosis  float64 `json:"kurtosis"` // raw kurtosis, 3 for a normal sample
	N         int     `json:"n"`
}

// MarshalJSON writes non-finite fields as null.
func (r JarqueBeraResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Statistic JSONFloat `json:"statistic"`
		PValue    JSONFloat `json:"p_value"`
		Skewness  JSONFloat `json:"skewness"`
		Kurtosis  JSONFloat `json:"kurtosis"`
		N         int       `json:"n"`
	}{
		Statistic: JSONFloat(r.Statistic),
		PValue:    JSONFloat(r.PValue),
		Skewness:  JSONFloat(r.Skewness),
		Kurtosis:  JSONFloat(r.Kurtosis),
		N:         r.N,
	})
}

// JarqueBera tests the null hypothesis that x is normally distributed.
// JB = n/6 * (S² + (K-3)²/4), asymptotically chi-squared with 2 degrees of freedom.
// A small p-value rejects normality. An empty sample gives NaN statistic and p-value.
func JarqueBera(p Primitives, x []float64) *JarqueBeraResult {
	n := len(x)
	if n == 0 {
		return &JarqueBeraResult{Statistic: math.NaN(), PValue: math.NaN(),
			Skewness: math.NaN(), Kurtosis: math.NaN()}
	}

	s := Skewness(p, x)
	k := Kurtosis(p, x)
	jb := float64(n) / 6 * (s*s + (k-3)*(k-3)/4)

	return &JarqueBeraResult{
		Statistic: jb,
		PValue:    p.ChiSquaredSurvival(jb, 2),
		Skewness:  s,
		Kurtosis:  k,
		N:         n,
	}
}

// IsNormal reports whether the test fails to reject normality at the given level.
// NaN p-values never pass.
func (r *JarqueBeraResult) IsNormal(level float64) bool {
	return r.PValue > level
}
