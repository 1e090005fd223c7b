// Package stats implements the descriptive-statistics engine. All queries
// read through one shared table handle; null markers are excluded before any
// arithmetic, and empty inputs yield defined zero values rather than errors.
package stats

import (
	"math"

	mstats "github.com/montanaflynn/stats"

	"tabstat/domain/table"
)

// Engine provides statistical computation over one table handle. It performs
// no locking and never adds or removes rows itself.
type Engine struct {
	tbl *table.Table
}

// New creates an engine bound to the caller's table handle.
func New(tbl *table.Table) *Engine {
	return &Engine{tbl: tbl}
}

// Table returns the shared handle the engine reads through.
func (e *Engine) Table() *table.Table {
	return e.tbl
}

// numeric fetches the non-null float view of a column, failing with a type
// error naming op when a non-numeric value survives the null filter.
func (e *Engine) numeric(column, op string) ([]float64, error) {
	vals, err := e.tbl.NonNull(column)
	if err != nil {
		return nil, err
	}
	return vals.Floats(op)
}

// Mean returns the arithmetic mean over the non-null values of a numeric
// column, or 0.0 when no values remain after the null filter.
func (e *Engine) Mean(column string) (float64, error) {
	xs, err := e.numeric(column, "mean")
	if err != nil {
		return 0, err
	}
	if len(xs) == 0 {
		return 0, nil
	}
	return mstats.Mean(xs)
}

// Median returns the middle value of the sorted non-null values, averaging
// the two central values for even counts. Empty columns yield 0.0.
func (e *Engine) Median(column string) (float64, error) {
	xs, err := e.numeric(column, "median")
	if err != nil {
		return 0, err
	}
	if len(xs) == 0 {
		return 0, nil
	}
	return mstats.Median(xs)
}

// Variance returns the population variance (divisor n) over the non-null
// values. Empty and single-value columns have zero dispersion by definition.
func (e *Engine) Variance(column string) (float64, error) {
	xs, err := e.numeric(column, "variance")
	if err != nil {
		return 0, err
	}
	if len(xs) < 2 {
		return 0, nil
	}
	return mstats.PopulationVariance(xs)
}

// Stdev returns the non-negative square root of Variance.
func (e *Engine) Stdev(column string) (float64, error) {
	v, err := e.Variance(column)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Mode returns every value tied for the maximum absolute frequency, in
// first-seen order. An empty column yields an empty sequence.
func (e *Engine) Mode(column string) (table.Column, error) {
	freq, err := e.AbsoluteFrequency(column)
	if err != nil {
		return nil, err
	}
	if len(freq) == 0 {
		return table.Column{}, nil
	}
	max := 0.0
	for _, entry := range freq {
		if entry.Count > max {
			max = entry.Count
		}
	}
	modes := make(table.Column, 0, 1)
	for _, entry := range freq {
		if entry.Count == max {
			modes = append(modes, entry.Value)
		}
	}
	return modes, nil
}
