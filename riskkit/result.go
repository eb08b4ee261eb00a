package riskkit

import "math"

// Result maps column names to one value each, in the column order of the input.
// A Result computed from a single Series is scalar: it holds one entry keyed by the series name.
type Result struct {
	names  []string
	values map[string]float64
	scalar bool
}

func newResult(scalar bool, n int) *Result {
	return &Result{
		names:  make([]string, 0, n),
		values: make(map[string]float64, n),
		scalar: scalar,
	}
}

func (r *Result) set(name string, v float64) {
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = v
}

// IsScalar reports whether the result was computed from a single Series.
func (r *Result) IsScalar() bool {
	return r.scalar
}

// Scalar returns the first value, NaN for an empty result.
func (r *Result) Scalar() float64 {
	if len(r.names) == 0 {
		return math.NaN()
	}
	return r.values[r.names[0]]
}

// Len returns the number of columns.
func (r *Result) Len() int {
	return len(r.names)
}

// Names returns the column names in order.
func (r *Result) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Get returns the value for a column.
func (r *Result) Get(name string) (float64, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Value returns the value for a column, NaN if the column is unknown.
func (r *Result) Value(name string) float64 {
	v, ok := r.values[name]
	if !ok {
		return math.NaN()
	}
	return v
}

// Values returns the values in column order.
func (r *Result) Values() []float64 {
	out := make([]float64, len(r.names))
	for i, n := range r.names {
		out[i] = r.values[n]
	}
	return out
}

// Map returns a copy of the name to value mapping.
func (r *Result) Map() map[string]float64 {
	out := make(map[string]float64, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}
