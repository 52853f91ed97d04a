package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numericDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := New(
		[]string{"id", "score", "label"},
		[][]string{
			{"1", "10", "x"},
			{"2", "20", "y"},
			{"3", "30", ""},
			{"4", "40", "z"},
		},
	)
	require.NoError(t, err)
	return ds
}

func TestDescribe_NumericColumnsOnly(t *testing.T) {
	ds := numericDataset(t)
	stats := ds.Describe()

	require.Len(t, stats, 2)
	assert.Equal(t, "id", stats[0].Column)
	assert.Equal(t, "score", stats[1].Column)
}

func TestDescribe_Stats(t *testing.T) {
	ds := numericDataset(t)
	stats := ds.Describe()

	score := stats[1]
	assert.Equal(t, 4, score.Count)
	assert.InDelta(t, 25.0, score.Mean, 1e-9)
	assert.InDelta(t, 12.909944487358056, score.Std, 1e-9) // sample std of 10,20,30,40
	assert.InDelta(t, 10.0, score.Min, 1e-9)
	assert.InDelta(t, 17.5, score.Q25, 1e-9)
	assert.InDelta(t, 25.0, score.Median, 1e-9)
	assert.InDelta(t, 32.5, score.Q75, 1e-9)
	assert.InDelta(t, 40.0, score.Max, 1e-9)
}

func TestDescribe_SkipsEmptyCells(t *testing.T) {
	ds, err := New([]string{"v"}, [][]string{{"5"}, {""}, {"15"}})
	require.NoError(t, err)

	stats := ds.Describe()
	require.Len(t, stats, 1)
	assert.Equal(t, 2, stats[0].Count)
	assert.InDelta(t, 10.0, stats[0].Mean, 1e-9)
}

func TestDescribe_SingleValueStdIsNaN(t *testing.T) {
	ds, err := New([]string{"v"}, [][]string{{"7"}})
	require.NoError(t, err)

	stats := ds.Describe()
	require.Len(t, stats, 1)
	assert.True(t, math.IsNaN(stats[0].Std))
	assert.InDelta(t, 7.0, stats[0].Median, 1e-9)
}

func TestDescribe_NoNumericColumns(t *testing.T) {
	ds, err := New([]string{"name"}, [][]string{{"ann"}, {"bob"}})
	require.NoError(t, err)
	assert.Empty(t, ds.Describe())
}

func TestMissing(t *testing.T) {
	ds := numericDataset(t)
	counts := ds.Missing()

	require.Len(t, counts, 3)
	assert.Equal(t, MissingCount{Column: "id", Count: 0}, counts[0])
	assert.Equal(t, MissingCount{Column: "score", Count: 0}, counts[1])
	assert.Equal(t, MissingCount{Column: "label", Count: 1}, counts[2])
}

func TestMissing_WhitespaceCountsAsMissing(t *testing.T) {
	ds, err := New([]string{"a"}, [][]string{{"  "}, {"x"}})
	require.NoError(t, err)

	counts := ds.Missing()
	assert.Equal(t, 1, counts[0].Count)
}

func TestInfo(t *testing.T) {
	ds := numericDataset(t)
	info := ds.Info()

	assert.Contains(t, info, "4 rows, 3 columns")
	assert.Contains(t, info, "int64")
	assert.Contains(t, info, "string")
	assert.Contains(t, info, "Memory usage")
}

func TestColumnTypeInference(t *testing.T) {
	ds, err := New(
		[]string{"i", "f", "b", "s", "empty"},
		[][]string{
			{"1", "1.5", "true", "abc", ""},
			{"2", "2", "false", "1x", ""},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, "int64", ds.columnType(0))
	assert.Equal(t, "float64", ds.columnType(1))
	assert.Equal(t, "bool", ds.columnType(2))
	assert.Equal(t, "string", ds.columnType(3))
	assert.Equal(t, "string", ds.columnType(4))
}
