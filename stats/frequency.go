package stats

import (
	"tabstat/domain/core"
	"tabstat/domain/table"
)

// FrequencyMode selects which frequency table a cumulative query accumulates.
type FrequencyMode string

const (
	FrequencyAbsolute FrequencyMode = "absolute"
	FrequencyRelative FrequencyMode = "relative"
)

// FrequencyEntry pairs a distinct value with its count (absolute) or
// proportion (relative/cumulative).
type FrequencyEntry struct {
	Value table.Value
	Count float64
}

// FrequencyTable is a frequency mapping with a defined iteration order:
// first-seen order for absolute and relative tables, ascending value order
// for cumulative tables.
type FrequencyTable []FrequencyEntry

// Count looks up the entry for a value.
func (ft FrequencyTable) Count(v table.Value) (float64, bool) {
	for _, entry := range ft {
		if entry.Value.Equal(v) {
			return entry.Count, true
		}
	}
	return 0, false
}

// Total sums all entries.
func (ft FrequencyTable) Total() float64 {
	total := 0.0
	for _, entry := range ft {
		total += entry.Count
	}
	return total
}

// Values returns a copy of the distinct values in table order.
func (ft FrequencyTable) Values() table.Column {
	vals := make(table.Column, len(ft))
	for i, entry := range ft {
		vals[i] = entry.Value
	}
	return vals
}

// Itemset returns the set of distinct non-null values in a column.
func (e *Engine) Itemset(column string) (map[table.Value]struct{}, error) {
	vals, err := e.tbl.NonNull(column)
	if err != nil {
		return nil, err
	}
	set := make(map[table.Value]struct{}, len(vals))
	for _, v := range vals {
		set[v] = struct{}{}
	}
	return set, nil
}

// AbsoluteFrequency counts occurrences of each distinct non-null value,
// keeping first-seen order.
func (e *Engine) AbsoluteFrequency(column string) (FrequencyTable, error) {
	vals, err := e.tbl.NonNull(column)
	if err != nil {
		return nil, err
	}
	index := make(map[table.Value]int, len(vals))
	ft := make(FrequencyTable, 0)
	for _, v := range vals {
		if i, ok := index[v]; ok {
			ft[i].Count++
			continue
		}
		index[v] = len(ft)
		ft = append(ft, FrequencyEntry{Value: v, Count: 1})
	}
	return ft, nil
}

// RelativeFrequency normalizes the absolute frequencies by the non-null
// count. A column with no non-null values yields an empty table.
func (e *Engine) RelativeFrequency(column string) (FrequencyTable, error) {
	ft, err := e.AbsoluteFrequency(column)
	if err != nil {
		return nil, err
	}
	total := ft.Total()
	if total == 0 {
		return FrequencyTable{}, nil
	}
	out := make(FrequencyTable, len(ft))
	for i, entry := range ft {
		out[i] = FrequencyEntry{Value: entry.Value, Count: entry.Count / total}
	}
	return out, nil
}

// CumulativeFrequency accumulates the chosen frequency table over distinct
// values in ascending order, which requires every value in the column to
// share one orderable kind. In relative mode the final entry is pinned to
// exactly 1.0 so summed fractions cannot drift.
func (e *Engine) CumulativeFrequency(column string, mode FrequencyMode) (FrequencyTable, error) {
	var ft FrequencyTable
	var err error
	switch mode {
	case FrequencyAbsolute:
		ft, err = e.AbsoluteFrequency(column)
	case FrequencyRelative:
		ft, err = e.RelativeFrequency(column)
	default:
		return nil, core.NewInvalidArgument("frequency mode", string(mode))
	}
	if err != nil {
		return nil, err
	}

	keys := ft.Values()
	if err := keys.Sort("cumulative_frequency"); err != nil {
		return nil, err
	}

	out := make(FrequencyTable, 0, len(keys))
	running := 0.0
	for _, k := range keys {
		count, _ := ft.Count(k)
		running += count
		out = append(out, FrequencyEntry{Value: k, Count: running})
	}
	if mode == FrequencyRelative && len(out) > 0 {
		out[len(out)-1].Count = 1.0
	}
	return out, nil
}
