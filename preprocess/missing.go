package preprocess

import (
	"tabstat/domain/core"
	"tabstat/domain/table"
	"tabstat/stats"
)

// FillMethod selects how FillNA derives the replacement value.
type FillMethod string

const (
	FillMean    FillMethod = "mean"
	FillMedian  FillMethod = "median"
	FillMode    FillMethod = "mode"
	FillDefault FillMethod = "default"
)

// MissingValueProcessor masks, fills, and drops null observations through
// the shared table handle.
type MissingValueProcessor struct {
	tbl *table.Table
	eng *stats.Engine
}

// NewMissingValueProcessor creates a processor bound to the caller's table
// handle.
func NewMissingValueProcessor(tbl *table.Table) *MissingValueProcessor {
	return &MissingValueProcessor{tbl: tbl, eng: stats.New(tbl)}
}

// IsNA returns, per targeted column, only its null cells. With no targets it
// answers the whole-dataset question instead: the shared mapping when any
// column holds a null, an empty map otherwise.
func (m *MissingValueProcessor) IsNA(columns []string) (map[string]table.Column, error) {
	if len(columns) == 0 {
		for _, name := range m.tbl.Names() {
			col, err := m.tbl.Column(name)
			if err != nil {
				return nil, err
			}
			if col.HasNull() {
				return m.tbl.Columns(), nil
			}
		}
		return map[string]table.Column{}, nil
	}

	out := make(map[string]table.Column, len(columns))
	for _, name := range columns {
		col, err := m.tbl.Column(name)
		if err != nil {
			return nil, err
		}
		nulls := make(table.Column, 0)
		for _, v := range col {
			if v.IsNull() {
				nulls = append(nulls, v)
			}
		}
		out[name] = nulls
	}
	return out, nil
}

// NotNA returns a new table holding only the rows where every targeted
// column is non-null. The shared storage is not modified.
func (m *MissingValueProcessor) NotNA(columns []string) (*table.Table, error) {
	keep, err := m.keptRows(columns)
	if err != nil {
		return nil, err
	}
	filtered := make(map[string]table.Column, len(m.tbl.Names()))
	for _, name := range m.tbl.Names() {
		col, err := m.tbl.Column(name)
		if err != nil {
			return nil, err
		}
		out := make(table.Column, 0, len(keep))
		for _, i := range keep {
			out = append(out, col[i])
		}
		filtered[name] = out
	}
	return table.New(filtered)
}

// FillNA rewrites the null slots of each targeted column with a value
// derived from the column itself or with the caller's default. Columns with
// no nulls are untouched; all-null columns fall back to the default.
func (m *MissingValueProcessor) FillNA(columns []string, method FillMethod, defaultValue table.Value) error {
	switch method {
	case FillMean, FillMedian, FillMode, FillDefault:
	default:
		return core.NewInvalidArgument("fill method", string(method))
	}

	targets, err := targetColumns(m.tbl, columns)
	if err != nil {
		return err
	}
	for _, name := range targets {
		col, err := m.tbl.Column(name)
		if err != nil {
			return err
		}
		if !col.HasNull() {
			continue
		}
		fill, err := m.fillValue(name, col, method, defaultValue)
		if err != nil {
			return err
		}
		out := make(table.Column, len(col))
		for i, v := range col {
			if v.IsNull() {
				out[i] = fill
			} else {
				out[i] = v
			}
		}
		m.tbl.SetColumn(name, out)
	}
	return nil
}

func (m *MissingValueProcessor) fillValue(name string, col table.Column, method FillMethod, defaultValue table.Value) (table.Value, error) {
	if method == FillDefault || len(col.NonNull()) == 0 {
		return defaultValue, nil
	}
	switch method {
	case FillMean:
		v, err := m.eng.Mean(name)
		if err != nil {
			return table.Null(), err
		}
		return table.Number(v), nil
	case FillMedian:
		v, err := m.eng.Median(name)
		if err != nil {
			return table.Null(), err
		}
		return table.Number(v), nil
	default: // FillMode, validated by the caller
		modes, err := m.eng.Mode(name)
		if err != nil {
			return table.Null(), err
		}
		return modes[0], nil
	}
}

// DropNA removes, in place, every row holding a null in any targeted column.
// All columns are rewritten with one shared kept-row index set, and the
// shape invariant is re-checked afterwards. Re-running with the same targets
// changes nothing.
func (m *MissingValueProcessor) DropNA(columns []string) error {
	keep, err := m.keptRows(columns)
	if err != nil {
		return err
	}
	if len(keep) == m.tbl.Rows() {
		return nil
	}
	for _, name := range m.tbl.Names() {
		col, err := m.tbl.Column(name)
		if err != nil {
			return err
		}
		out := make(table.Column, 0, len(keep))
		for _, i := range keep {
			out = append(out, col[i])
		}
		m.tbl.SetColumn(name, out)
	}
	return m.tbl.CheckShape()
}

// keptRows returns the indices of rows with no null in any targeted column.
func (m *MissingValueProcessor) keptRows(columns []string) ([]int, error) {
	targets, err := targetColumns(m.tbl, columns)
	if err != nil {
		return nil, err
	}
	cols := make([]table.Column, len(targets))
	for i, name := range targets {
		col, err := m.tbl.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}

	keep := make([]int, 0, m.tbl.Rows())
	for i := 0; i < m.tbl.Rows(); i++ {
		hasNull := false
		for _, col := range cols {
			if col[i].IsNull() {
				hasNull = true
				break
			}
		}
		if !hasNull {
			keep = append(keep, i)
		}
	}
	return keep, nil
}
