package timeseries

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateColumn = errors.New("duplicate column name")
	ErrLengthMismatch  = errors.New("columns must have the same length")
)

// Table is an ordered set of uniquely named series sharing one implicit time index.
// Column order is insertion order and is preserved in every result derived from the table.
type Table struct {
	columns []*Series
	index   map[string]int
}

// NewTable builds a table from the given columns.
// Columns are copied by reference; callers must not mutate them afterwards.
func NewTable(columns ...*Series) (*Table, error) {
	t := &Table{index: make(map[string]int, len(columns))}
	for _, c := range columns {
		if err := t.add(c); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// MustTable is like NewTable but panics on error.
func MustTable(columns ...*Series) *Table {
	t, err := NewTable(columns...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) add(s *Series) error {
	if s == nil {
		return errors.New("nil column")
	}
	if _, ok := t.index[s.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, s.Name)
	}
	if len(t.columns) > 0 && s.Len() != t.columns[0].Len() {
		return fmt.Errorf("%w: %q has %d rows, want %d",
			ErrLengthMismatch, s.Name, s.Len(), t.columns[0].Len())
	}
	t.index[s.Name] = len(t.columns)
	t.columns = append(t.columns, s)
	return nil
}

func (*Table) isInput() {}

// Len returns the number of rows.
func (t *Table) Len() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Len()
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return len(t.columns)
}

// Names returns the column names in insertion order.
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Columns returns the columns in insertion order.
func (t *Table) Columns() []*Series {
	out := make([]*Series, len(t.columns))
	copy(out, t.columns)
	return out
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (*Series, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.columns[i], true
}

// Values returns every observation of every column, column after column.
func (t *Table) Values() []float64 {
	out := make([]float64, 0, t.Len()*t.Width())
	for _, c := range t.columns {
		out = append(out, c.Values...)
	}
	return out
}
