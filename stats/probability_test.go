package stats

import (
	"math"
	"testing"

	"tabstat/domain/core"
	"tabstat/domain/table"
)

func TestConditionalProbability_WorkedExample(t *testing.T) {
	// x = [2, 1, 2, 1, 3]: value 2 occurs twice, and both occurrences are
	// followed by 1, so P(next=1 | current=2) = 1.0.
	eng := newEngine(t, map[string]table.Column{
		"x": table.Numbers(2, 1, 2, 1, 3),
	})
	got, err := eng.ConditionalProbability("x", table.Number(1), table.Number(2))
	if err != nil {
		t.Fatalf("ConditionalProbability: %v", err)
	}
	if got != 1.0 {
		t.Errorf("expected 1.0, got %v", got)
	}
}

func TestConditionalProbability_TrailingCurrent(t *testing.T) {
	// The final 2 has no successor but still counts in the denominator.
	eng := newEngine(t, map[string]table.Column{
		"x": table.Numbers(2, 1, 2),
	})
	got, err := eng.ConditionalProbability("x", table.Number(1), table.Number(2))
	if err != nil {
		t.Fatalf("ConditionalProbability: %v", err)
	}
	if got != 0.5 {
		t.Errorf("expected 0.5, got %v", got)
	}
}

func TestConditionalProbability_Degenerate(t *testing.T) {
	// Columns live in separate tables because they have different lengths
	// and table.New enforces the equal-length shape invariant.
	shortEng := newEngine(t, map[string]table.Column{"short": table.Numbers(1)})
	absentEng := newEngine(t, map[string]table.Column{"absent": table.Numbers(1, 2, 3)})

	got, err := shortEng.ConditionalProbability("short", table.Number(1), table.Number(1))
	if err != nil || got != 0.0 {
		t.Errorf("sequence shorter than 2: expected 0.0, got %v err=%v", got, err)
	}

	got, err = absentEng.ConditionalProbability("absent", table.Number(1), table.Number(9))
	if err != nil || got != 0.0 {
		t.Errorf("zero denominator: expected 0.0, got %v err=%v", got, err)
	}
}

func TestConditionalProbability_SkipsNulls(t *testing.T) {
	// Nulls are removed before the trace is read, so 2 and 1 become
	// adjacent across the gap.
	eng := newEngine(t, map[string]table.Column{
		"x": {table.Number(2), table.Null(), table.Number(1)},
	})
	got, err := eng.ConditionalProbability("x", table.Number(1), table.Number(2))
	if err != nil {
		t.Fatalf("ConditionalProbability: %v", err)
	}
	if got != 1.0 {
		t.Errorf("expected 1.0, got %v", got)
	}
}

func TestCovariance_WorkedExample(t *testing.T) {
	eng := newEngine(t, map[string]table.Column{
		"a": table.Numbers(1, 2, 3),
		"b": table.Numbers(2, 4, 6),
	})
	got, err := eng.Covariance("a", "b")
	if err != nil {
		t.Fatalf("Covariance: %v", err)
	}
	if math.Abs(got-4.0/3.0) > 1e-12 {
		t.Errorf("expected 4/3, got %v", got)
	}
}

func TestCovariance_DropsNullPairs(t *testing.T) {
	eng := newEngine(t, map[string]table.Column{
		"a": {table.Number(1), table.Null(), table.Number(3)},
		"b": {table.Number(2), table.Number(4), table.Null()},
	})
	// Only the first pair survives; both deviations are taken against the
	// full non-null column means (2 and 3).
	got, err := eng.Covariance("a", "b")
	if err != nil {
		t.Fatalf("Covariance: %v", err)
	}
	want := (1.0 - 2.0) * (2.0 - 3.0)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCovariance_NoPairs(t *testing.T) {
	eng := newEngine(t, map[string]table.Column{
		"a": {table.Number(1), table.Null()},
		"b": {table.Null(), table.Number(2)},
	})
	got, err := eng.Covariance("a", "b")
	if err != nil || got != 0.0 {
		t.Errorf("expected 0.0 with no pairs, got %v err=%v", got, err)
	}
}

func TestCovariance_NonNumeric(t *testing.T) {
	eng := newEngine(t, map[string]table.Column{
		"a": table.Numbers(1, 2),
		"b": table.Texts("x", "y"),
	})
	if _, err := eng.Covariance("a", "b"); !core.IsTypeError(err) {
		t.Errorf("expected type error, got %v", err)
	}
}
