package table

import (
	"fmt"
	"sort"

	"tabstat/domain/core"
)

// Column is a named, ordered sequence of scalar values, one per row.
type Column []Value

// Numbers builds a numeric column.
func Numbers(fs ...float64) Column {
	col := make(Column, len(fs))
	for i, f := range fs {
		col[i] = Number(f)
	}
	return col
}

// Texts builds a categorical column.
func Texts(ss ...string) Column {
	col := make(Column, len(ss))
	for i, s := range ss {
		col[i] = Text(s)
	}
	return col
}

// NonNull returns the values of c with null markers removed, preserving
// relative order.
func (c Column) NonNull() Column {
	out := make(Column, 0, len(c))
	for _, v := range c {
		if !v.IsNull() {
			out = append(out, v)
		}
	}
	return out
}

// HasNull reports whether any cell is the null marker.
func (c Column) HasNull() bool {
	for _, v := range c {
		if v.IsNull() {
			return true
		}
	}
	return false
}

// Floats asserts every cell is numeric and returns the float payloads. This
// is the gate every arithmetic operation passes through; op names the
// operation for the error message.
func (c Column) Floats(op string) ([]float64, error) {
	out := make([]float64, len(c))
	for i, v := range c {
		if !v.IsNumeric() {
			return nil, core.NewTypeError(op, fmt.Sprintf("non-numeric %s value at row %d", v.Kind(), i))
		}
		out[i] = v.Float()
	}
	return out, nil
}

// Sort orders the column in place. All cells must share one orderable kind;
// mixed or null cells fail with a type error naming op.
func (c Column) Sort(op string) error {
	if len(c) < 2 {
		return nil
	}
	kind := c[0].Kind()
	for i, v := range c {
		if v.IsNull() {
			return core.NewTypeError(op, fmt.Sprintf("null value at position %d cannot be ordered", i))
		}
		if v.Kind() != kind {
			return core.NewTypeError(op, fmt.Sprintf("mixed %s and %s values cannot be ordered", kind, v.Kind()))
		}
	}
	sort.Slice(c, func(i, j int) bool {
		less, _ := c[i].Less(c[j])
		return less
	})
	return nil
}

// Table is a handle over caller-provided column storage. The mapping is held
// by reference: mutations made through the handle are visible to the caller
// and vice versa. Access is single-threaded; the table does no locking.
type Table struct {
	columns map[string]Column
}

// New wraps a column mapping after validating the shape invariant: every
// column must have the same number of rows.
func New(columns map[string]Column) (*Table, error) {
	if columns == nil {
		return nil, core.NewTypeError("table", "dataset mapping is nil")
	}
	t := &Table{columns: columns}
	if err := t.CheckShape(); err != nil {
		return nil, err
	}
	return t, nil
}

// CheckShape re-validates the equal-length invariant. Row-filtering
// mutations call this after rewriting columns.
func (t *Table) CheckShape() error {
	names := t.Names()
	if len(names) == 0 {
		return nil
	}
	want := len(t.columns[names[0]])
	for _, name := range names[1:] {
		if got := len(t.columns[name]); got != want {
			return core.NewShapeError(fmt.Sprintf("column %q has %d rows, column %q has %d", names[0], want, name, got))
		}
	}
	return nil
}

// Rows returns the row count shared by every column.
func (t *Table) Rows() int {
	for _, col := range t.columns {
		return len(col)
	}
	return 0
}

// Names returns the column names in sorted order for deterministic
// iteration.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.columns))
	for name := range t.columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the column exists.
func (t *Table) Has(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Column returns the full ordered sequence for a column.
func (t *Table) Column(name string) (Column, error) {
	col, ok := t.columns[name]
	if !ok {
		return nil, core.NewColumnNotFound(name)
	}
	return col, nil
}

// NonNull returns the column with null markers removed, preserving order.
func (t *Table) NonNull(name string) (Column, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	return col.NonNull(), nil
}

// SetColumn writes a column into the shared storage, adding it if absent.
// Callers are responsible for keeping the shape invariant.
func (t *Table) SetColumn(name string, col Column) {
	t.columns[name] = col
}

// DropColumn removes a column from the shared storage.
func (t *Table) DropColumn(name string) {
	delete(t.columns, name)
}

// Columns exposes the underlying shared mapping. Mutating it mutates the
// table.
func (t *Table) Columns() map[string]Column {
	return t.columns
}
