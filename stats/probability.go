package stats

import (
	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"tabstat/domain/table"
)

// Covariance computes the population covariance of two columns paired by row
// index. Pairs with a null on either side are discarded; 0.0 is returned
// when no pairs remain.
//
// Policy: the means are computed from each column's full non-null values,
// not from the jointly non-null pairs, matching the per-column Mean measure.
func (e *Engine) Covariance(columnA, columnB string) (float64, error) {
	colA, err := e.tbl.Column(columnA)
	if err != nil {
		return 0, err
	}
	colB, err := e.tbl.Column(columnB)
	if err != nil {
		return 0, err
	}

	fa, err := colA.NonNull().Floats("covariance")
	if err != nil {
		return 0, err
	}
	fb, err := colB.NonNull().Floats("covariance")
	if err != nil {
		return 0, err
	}

	xs := make([]float64, 0, len(colA))
	ys := make([]float64, 0, len(colA))
	for i := range colA {
		if colA[i].IsNull() || colB[i].IsNull() {
			continue
		}
		xs = append(xs, colA[i].Float())
		ys = append(ys, colB[i].Float())
	}
	if len(xs) == 0 {
		return 0, nil
	}

	meanA, err := mstats.Mean(fa)
	if err != nil {
		return 0, err
	}
	meanB, err := mstats.Mean(fb)
	if err != nil {
		return 0, err
	}

	floats.AddConst(-meanA, xs)
	floats.AddConst(-meanB, ys)
	return floats.Dot(xs, ys) / float64(len(xs)), nil
}

// ConditionalProbability estimates P(next = a | current = b) by reading the
// column's non-null values as a first-order transition trace. The
// denominator counts every occurrence of current, including one in the final
// position; the numerator counts adjacent (current, next) pairs. The ratio
// is returned at full precision. Traces shorter than two values, and
// currents that never occur, yield 0.0.
func (e *Engine) ConditionalProbability(column string, next, current table.Value) (float64, error) {
	vals, err := e.tbl.NonNull(column)
	if err != nil {
		return 0, err
	}
	if len(vals) < 2 {
		return 0, nil
	}

	occurrences := 0
	transitions := 0
	for i, v := range vals {
		if !v.Equal(current) {
			continue
		}
		occurrences++
		if i+1 < len(vals) && vals[i+1].Equal(next) {
			transitions++
		}
	}
	if occurrences == 0 {
		return 0, nil
	}
	return float64(transitions) / float64(occurrences), nil
}
