package preprocess

import (
	"gonum.org/v1/gonum/floats"

	"tabstat/domain/table"
	"tabstat/stats"
)

// Scaler rewrites numeric columns in place through the shared table handle.
// Null slots are never scaled; they stay null. Every targeted column is
// validated before the first write, so a type failure leaves the table
// untouched.
type Scaler struct {
	tbl *table.Table
	eng *stats.Engine
}

// NewScaler creates a scaler bound to the caller's table handle.
func NewScaler(tbl *table.Table) *Scaler {
	return &Scaler{tbl: tbl, eng: stats.New(tbl)}
}

type scalePlan struct {
	name string
	col  table.Column
	// min-max: lo/span; standard: lo=mean, span=stdev
	lo   float64
	span float64
}

// MinMax maps every non-null value of the targeted columns into [0, 1]. A
// zero-range column maps every non-null value to 0.0. Columns with no
// non-null values are skipped.
func (s *Scaler) MinMax(columns []string) error {
	targets, err := targetColumns(s.tbl, columns)
	if err != nil {
		return err
	}

	plans := make([]scalePlan, 0, len(targets))
	for _, name := range targets {
		col, err := s.tbl.Column(name)
		if err != nil {
			return err
		}
		xs, err := col.NonNull().Floats("min_max_scaler")
		if err != nil {
			return err
		}
		if len(xs) == 0 {
			continue
		}
		lo := floats.Min(xs)
		plans = append(plans, scalePlan{name: name, col: col, lo: lo, span: floats.Max(xs) - lo})
	}

	for _, p := range plans {
		s.rewrite(p)
	}
	return nil
}

// Standard centers every non-null value of the targeted columns on the
// column mean and divides by the population standard deviation. A
// zero-deviation column maps every non-null value to 0.0.
func (s *Scaler) Standard(columns []string) error {
	targets, err := targetColumns(s.tbl, columns)
	if err != nil {
		return err
	}

	plans := make([]scalePlan, 0, len(targets))
	for _, name := range targets {
		col, err := s.tbl.Column(name)
		if err != nil {
			return err
		}
		xs, err := col.NonNull().Floats("standard_scaler")
		if err != nil {
			return err
		}
		if len(xs) == 0 {
			continue
		}
		mean, err := s.eng.Mean(name)
		if err != nil {
			return err
		}
		sigma, err := s.eng.Stdev(name)
		if err != nil {
			return err
		}
		plans = append(plans, scalePlan{name: name, col: col, lo: mean, span: sigma})
	}

	for _, p := range plans {
		s.rewrite(p)
	}
	return nil
}

func (s *Scaler) rewrite(p scalePlan) {
	out := make(table.Column, len(p.col))
	for i, v := range p.col {
		switch {
		case v.IsNull():
			out[i] = v
		case p.span == 0:
			out[i] = table.Number(0)
		default:
			out[i] = table.Number((v.Float() - p.lo) / p.span)
		}
	}
	s.tbl.SetColumn(p.name, out)
}
