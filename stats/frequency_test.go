package stats

import (
	"math"
	"testing"

	"tabstat/domain/core"
	"tabstat/domain/table"
)

func TestAbsoluteFrequency_FirstSeenOrder(t *testing.T) {
	eng := newEngine(t, map[string]table.Column{
		"x": {table.Number(1), table.Number(2), table.Number(2), table.Number(3), table.Null()},
	})
	freq, err := eng.AbsoluteFrequency("x")
	if err != nil {
		t.Fatalf("AbsoluteFrequency: %v", err)
	}

	want := []struct {
		value table.Value
		count float64
	}{
		{table.Number(1), 1},
		{table.Number(2), 2},
		{table.Number(3), 1},
	}
	if len(freq) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(freq))
	}
	for i, w := range want {
		if !freq[i].Value.Equal(w.value) || freq[i].Count != w.count {
			t.Errorf("entry %d: expected %v:%v, got %v:%v", i, w.value, w.count, freq[i].Value, freq[i].Count)
		}
	}
}

func TestRelativeFrequency_SumsToOne(t *testing.T) {
	eng := newEngine(t, map[string]table.Column{
		"x": table.Texts("a", "b", "b", "c", "b"),
	})
	freq, err := eng.RelativeFrequency("x")
	if err != nil {
		t.Fatalf("RelativeFrequency: %v", err)
	}
	if math.Abs(freq.Total()-1.0) > 1e-12 {
		t.Errorf("relative frequencies should sum to 1.0, got %v", freq.Total())
	}
	if count, ok := freq.Count(table.Text("b")); !ok || count != 0.6 {
		t.Errorf("expected b -> 0.6, got %v (found=%v)", count, ok)
	}
}

func TestRelativeFrequency_AllNull(t *testing.T) {
	eng := newEngine(t, map[string]table.Column{
		"x": {table.Null(), table.Null()},
	})
	freq, err := eng.RelativeFrequency("x")
	if err != nil {
		t.Fatalf("RelativeFrequency: %v", err)
	}
	if len(freq) != 0 {
		t.Errorf("expected empty table, got %v", freq)
	}
}

func TestCumulativeFrequency_Absolute(t *testing.T) {
	eng := newEngine(t, map[string]table.Column{
		"x": table.Numbers(3, 1, 2, 1, 3, 3),
	})
	freq, err := eng.CumulativeFrequency("x", FrequencyAbsolute)
	if err != nil {
		t.Fatalf("CumulativeFrequency: %v", err)
	}

	// Ascending key order: 1 (2 obs), 2 (1 obs), 3 (3 obs).
	wantKeys := table.Numbers(1, 2, 3)
	wantCounts := []float64{2, 3, 6}
	if len(freq) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(freq))
	}
	for i := range freq {
		if !freq[i].Value.Equal(wantKeys[i]) || freq[i].Count != wantCounts[i] {
			t.Errorf("entry %d: expected %v:%v, got %v:%v", i, wantKeys[i], wantCounts[i], freq[i].Value, freq[i].Count)
		}
	}
}

func TestCumulativeFrequency_RelativeEndsAtOne(t *testing.T) {
	// Seven observations make the summed fractions drift without pinning.
	eng := newEngine(t, map[string]table.Column{
		"x": table.Texts("a", "b", "c", "a", "b", "a", "c"),
	})
	freq, err := eng.CumulativeFrequency("x", FrequencyRelative)
	if err != nil {
		t.Fatalf("CumulativeFrequency: %v", err)
	}
	if len(freq) == 0 {
		t.Fatal("expected entries")
	}
	if last := freq[len(freq)-1].Count; last != 1.0 {
		t.Errorf("final cumulative value must be exactly 1.0, got %v", last)
	}
	for i := 1; i < len(freq); i++ {
		if freq[i].Count < freq[i-1].Count {
			t.Errorf("cumulative values must be non-decreasing: %v then %v", freq[i-1].Count, freq[i].Count)
		}
	}
}

func TestCumulativeFrequency_InvalidMode(t *testing.T) {
	eng := newEngine(t, map[string]table.Column{"x": table.Numbers(1)})
	if _, err := eng.CumulativeFrequency("x", "running"); !core.IsInvalidArgument(err) {
		t.Errorf("expected invalid-argument error, got %v", err)
	}
}

func TestCumulativeFrequency_MixedKinds(t *testing.T) {
	eng := newEngine(t, map[string]table.Column{
		"x": {table.Number(1), table.Text("a")},
	})
	if _, err := eng.CumulativeFrequency("x", FrequencyAbsolute); !core.IsTypeError(err) {
		t.Errorf("expected type error for unorderable values, got %v", err)
	}
}

func TestItemset(t *testing.T) {
	eng := newEngine(t, map[string]table.Column{
		"x": {table.Text("a"), table.Text("b"), table.Text("a"), table.Null()},
	})
	set, err := eng.Itemset("x")
	if err != nil {
		t.Fatalf("Itemset: %v", err)
	}
	if len(set) != 2 {
		t.Fatalf("expected 2 distinct values, got %d", len(set))
	}
	for _, want := range []table.Value{table.Text("a"), table.Text("b")} {
		if _, ok := set[want]; !ok {
			t.Errorf("missing %v from itemset", want)
		}
	}
}
