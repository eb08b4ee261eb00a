package timeseries

import (
	"errors"
	"slices"
	"time"
)

// Series represents a named sequence of periodic returns with optional timestamps.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates an unnamed series from values.
func New(values []float64) *Series {
	return &Series{Values: values}
}

// NewNamed creates a series with the given column name.
func NewNamed(name string, values []float64) *Series {
	return &Series{Values: values, Name: name}
}

// NewWithTimestamps creates a named series with explicit timestamps.
func NewWithTimestamps(name string, timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, errors.New("timestamps and values must have the same length")
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       name,
	}, nil
}

func (*Series) isInput() {}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// HasTimestamps reports whether every value carries a timestamp.
func (s *Series) HasTimestamps() bool {
	return len(s.Values) > 0 && len(s.Timestamps) == len(s.Values)
}

// Filter returns the values for which keep returns true, in order.
// The result never aliases the series storage.
func (s *Series) Filter(keep func(float64) bool) []float64 {
	out := make([]float64, 0, len(s.Values))
	for _, v := range s.Values {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Copy returns a deep copy of the series. Nil timestamps stay nil.
func (s *Series) Copy() *Series {
	return &Series{
		Timestamps: slices.Clone(s.Timestamps),
		Values:     slices.Clone(s.Values),
		Name:       s.Name,
	}
}
