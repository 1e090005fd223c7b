package stats

// Profile summarizes the health of one column: size, missingness,
// cardinality, and for numeric columns the first two moments.
type Profile struct {
	Column       string
	SampleSize   int
	MissingCount int
	MissingRate  float64
	Cardinality  int
	Numeric      bool
	Mean         float64
	Variance     float64
	ZeroVariance bool
}

// ProfileColumn computes the summary profile of a single column.
func (e *Engine) ProfileColumn(column string) (Profile, error) {
	col, err := e.tbl.Column(column)
	if err != nil {
		return Profile{}, err
	}
	nn := col.NonNull()

	p := Profile{
		Column:       column,
		SampleSize:   len(col),
		MissingCount: len(col) - len(nn),
	}
	if len(col) > 0 {
		p.MissingRate = float64(p.MissingCount) / float64(len(col))
	}

	set, err := e.Itemset(column)
	if err != nil {
		return Profile{}, err
	}
	p.Cardinality = len(set)

	p.Numeric = len(nn) > 0
	for _, v := range nn {
		if !v.IsNumeric() {
			p.Numeric = false
			break
		}
	}
	if p.Numeric {
		p.Mean, _ = e.Mean(column)
		p.Variance, _ = e.Variance(column)
		p.ZeroVariance = p.Variance < 1e-10
	}
	return p, nil
}
