// Package timeseries provides the data structures consumed by the risk functions.
//
// A Series is a named column of periodic returns. A Table is an ordered set of
// named Series of equal length. Both implement Input, the closed variant every
// risk function accepts.
//
// # Creating a Series
//
//	rets := timeseries.NewNamed("Fund A", []float64{0.01, -0.02, 0.03})
//
// # Creating a Table
//
//	table, err := timeseries.NewTable(
//	    timeseries.NewNamed("Small Cap", small),
//	    timeseries.NewNamed("Large Cap", large),
//	)
//
// Column order is insertion order. Construction fails with ErrDuplicateColumn
// or ErrLengthMismatch when columns collide or disagree on length.
//
// # Adapting plain values
//
//	in, err := timeseries.AsInput([]float64{0.01, 0.02})
//	_, err = timeseries.AsInput(42.0) // errors.Is(err, timeseries.ErrUnsupportedInput)
package timeseries
