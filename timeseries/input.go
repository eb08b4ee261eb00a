package timeseries

import (
	"errors"
	"fmt"
)

// ErrUnsupportedInput is returned when a value is neither a Series nor a Table.
var ErrUnsupportedInput = errors.New("expected a series or table")

// Input is either a *Series or a *Table. The set of implementations is closed.
type Input interface {
	isInput()
}

// Columns returns the series an input consists of: the series itself, or the table's columns.
func Columns(in Input) ([]*Series, error) {
	switch v := in.(type) {
	case *Series:
		if v == nil {
			return nil, Unsupported(in)
		}
		return []*Series{v}, nil
	case *Table:
		if v == nil {
			return nil, Unsupported(in)
		}
		return v.Columns(), nil
	default:
		return nil, Unsupported(in)
	}
}

// AsInput adapts common Go values to an Input.
// It accepts an Input, a []float64 (an unnamed series) and a []*Series (a table).
func AsInput(v any) (Input, error) {
	switch x := v.(type) {
	case *Series:
		if x == nil {
			return nil, Unsupported(v)
		}
		return x, nil
	case *Table:
		if x == nil {
			return nil, Unsupported(v)
		}
		return x, nil
	case []float64:
		return New(x), nil
	case []*Series:
		return NewTable(x...)
	default:
		return nil, Unsupported(v)
	}
}

// Unsupported wraps ErrUnsupportedInput with the offending type.
func Unsupported(v any) error {
	return fmt.Errorf("%w: got %T", ErrUnsupportedInput, v)
}
