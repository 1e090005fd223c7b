// Package preprocess implements the tabular preprocessing collaborators:
// scaling, categorical encoding, and missing-value handling, orchestrated by
// the Preprocessor façade. Every collaborator operates through one shared
// table handle, so a mutation made by one is observed by all of them and by
// the caller that supplied the column storage.
package preprocess

import (
	"tabstat/domain/core"
	"tabstat/domain/table"
	"tabstat/stats"
)

// ScaleMethod selects the scaling transform.
type ScaleMethod string

const (
	ScaleMinMax   ScaleMethod = "min_max"
	ScaleStandard ScaleMethod = "standard"
)

// EncodeMethod selects the categorical encoding.
type EncodeMethod string

const (
	EncodeLabel  EncodeMethod = "label"
	EncodeOneHot EncodeMethod = "one_hot"
)

// Preprocessor is the orchestration façade over one shared table handle.
type Preprocessor struct {
	tbl     *table.Table
	eng     *stats.Engine
	missing *MissingValueProcessor
	scaler  *Scaler
	encoder *Encoder
}

// New validates the caller's column mapping and builds a façade around it.
// The mapping is held by reference, never copied.
func New(columns map[string]table.Column) (*Preprocessor, error) {
	tbl, err := table.New(columns)
	if err != nil {
		return nil, err
	}
	return FromTable(tbl), nil
}

// FromTable builds a façade around an existing handle.
func FromTable(tbl *table.Table) *Preprocessor {
	return &Preprocessor{
		tbl:     tbl,
		eng:     stats.New(tbl),
		missing: NewMissingValueProcessor(tbl),
		scaler:  NewScaler(tbl),
		encoder: NewEncoder(tbl),
	}
}

// Table returns the shared handle.
func (p *Preprocessor) Table() *table.Table { return p.tbl }

// Stats returns the statistics engine bound to the shared handle.
func (p *Preprocessor) Stats() *stats.Engine { return p.eng }

// IsNA reports the null cells of the targeted columns.
func (p *Preprocessor) IsNA(columns []string) (map[string]table.Column, error) {
	return p.missing.IsNA(columns)
}

// NotNA returns a filtered copy keeping rows with no null in the targeted
// columns.
func (p *Preprocessor) NotNA(columns []string) (*table.Table, error) {
	return p.missing.NotNA(columns)
}

// FillNA rewrites null slots in the targeted columns.
func (p *Preprocessor) FillNA(columns []string, method FillMethod, defaultValue table.Value) error {
	return p.missing.FillNA(columns, method, defaultValue)
}

// DropNA removes rows holding a null in any targeted column, in place.
func (p *Preprocessor) DropNA(columns []string) error {
	return p.missing.DropNA(columns)
}

// Scale dispatches to the selected scaling transform.
func (p *Preprocessor) Scale(columns []string, method ScaleMethod) error {
	switch method {
	case ScaleMinMax:
		return p.scaler.MinMax(columns)
	case ScaleStandard:
		return p.scaler.Standard(columns)
	default:
		return core.NewInvalidArgument("scale method", string(method))
	}
}

// Encode dispatches to the selected categorical encoding. Encoding requires
// an explicit column set; an empty set is a no-op.
func (p *Preprocessor) Encode(columns []string, method EncodeMethod) error {
	if len(columns) == 0 {
		return nil
	}
	switch method {
	case EncodeLabel:
		return p.encoder.Label(columns)
	case EncodeOneHot:
		return p.encoder.OneHot(columns)
	default:
		return core.NewInvalidArgument("encode method", string(method))
	}
}

// targetColumns resolves a target set to validated column names: nil or
// empty means every column, in sorted order.
func targetColumns(tbl *table.Table, columns []string) ([]string, error) {
	if len(columns) == 0 {
		return tbl.Names(), nil
	}
	for _, name := range columns {
		if !tbl.Has(name) {
			return nil, core.NewColumnNotFound(name)
		}
	}
	return columns, nil
}
