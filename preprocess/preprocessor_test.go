package preprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabstat/domain/core"
	"tabstat/domain/table"
)

func TestPreprocessor_Pipeline(t *testing.T) {
	columns := map[string]table.Column{
		"age":  {table.Number(20), table.Null(), table.Number(40)},
		"city": {table.Text("b"), table.Text("a"), table.Text("b")},
	}
	prep, err := New(columns)
	require.NoError(t, err)

	require.NoError(t, prep.FillNA([]string{"age"}, FillMean, table.Number(0)))
	require.NoError(t, prep.Scale([]string{"age"}, ScaleMinMax))
	require.NoError(t, prep.Encode([]string{"city"}, EncodeLabel))

	// Every collaborator wrote through the same handle into the caller's
	// mapping.
	assert.Equal(t, table.Numbers(0, 0.5, 1), columns["age"])
	assert.Equal(t, table.Column{table.Int(1), table.Int(0), table.Int(1)}, columns["city"])

	mean, err := prep.Stats().Mean("age")
	require.NoError(t, err)
	assert.Equal(t, 0.5, mean)
}

func TestPreprocessor_InvalidSelectors(t *testing.T) {
	prep, err := New(map[string]table.Column{"x": table.Numbers(1)})
	require.NoError(t, err)

	assert.True(t, core.IsInvalidArgument(prep.Scale(nil, "robust")))
	assert.True(t, core.IsInvalidArgument(prep.Encode([]string{"x"}, "ordinal")))
}

func TestPreprocessor_EncodeEmptySetIsNoop(t *testing.T) {
	columns := map[string]table.Column{"x": table.Texts("a")}
	prep, err := New(columns)
	require.NoError(t, err)

	require.NoError(t, prep.Encode(nil, EncodeLabel))
	assert.Equal(t, table.Texts("a"), columns["x"])
}

func TestPreprocessor_RejectsBadShape(t *testing.T) {
	_, err := New(map[string]table.Column{
		"a": table.Numbers(1),
		"b": table.Numbers(1, 2),
	})
	assert.True(t, core.IsShapeError(err))
}
