package preprocess

import (
	"fmt"

	"tabstat/domain/core"
	"tabstat/domain/table"
	"tabstat/stats"
)

// Encoder rewrites categorical columns through the shared table handle.
// Categories are taken in ascending sorted order so codes and derived column
// names are deterministic across runs.
type Encoder struct {
	tbl *table.Table
	eng *stats.Engine
}

// NewEncoder creates an encoder bound to the caller's table handle.
func NewEncoder(tbl *table.Table) *Encoder {
	return &Encoder{tbl: tbl, eng: stats.New(tbl)}
}

// categories returns the sorted distinct non-null values of a column.
func (e *Encoder) categories(name, op string) (table.Column, error) {
	freq, err := e.eng.AbsoluteFrequency(name)
	if err != nil {
		return nil, err
	}
	cats := freq.Values()
	if err := cats.Sort(op); err != nil {
		return nil, err
	}
	return cats, nil
}

// Label rewrites each targeted column to integer codes assigned by sorted
// category order. Null slots stay null.
func (e *Encoder) Label(columns []string) error {
	if err := e.validate(columns); err != nil {
		return err
	}
	for _, name := range columns {
		cats, err := e.categories(name, "label_encode")
		if err != nil {
			return err
		}
		codes := make(map[table.Value]int, len(cats))
		for i, cat := range cats {
			codes[cat] = i
		}

		col, err := e.tbl.Column(name)
		if err != nil {
			return err
		}
		out := make(table.Column, len(col))
		for i, v := range col {
			if v.IsNull() {
				out[i] = v
				continue
			}
			out[i] = table.Int(codes[v])
		}
		e.tbl.SetColumn(name, out)
	}
	return nil
}

// OneHot replaces each targeted column with one boolean column per category,
// named "{column}_{category}". Null rows are false in every derived column.
func (e *Encoder) OneHot(columns []string) error {
	if err := e.validate(columns); err != nil {
		return err
	}
	for _, name := range columns {
		cats, err := e.categories(name, "one_hot_encode")
		if err != nil {
			return err
		}
		col, err := e.tbl.Column(name)
		if err != nil {
			return err
		}
		for _, cat := range cats {
			derived := make(table.Column, len(col))
			for i, v := range col {
				derived[i] = table.Bool(v.Equal(cat))
			}
			e.tbl.SetColumn(fmt.Sprintf("%s_%s", name, cat), derived)
		}
		e.tbl.DropColumn(name)
	}
	return nil
}

func (e *Encoder) validate(columns []string) error {
	for _, name := range columns {
		if !e.tbl.Has(name) {
			return core.NewColumnNotFound(name)
		}
	}
	return nil
}
