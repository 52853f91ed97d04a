package dataset

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ColumnStats holds the describe-summary of a single numeric column:
// count, mean, sample standard deviation, min, quartiles, and max.
type ColumnStats struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// MissingCount holds the number of empty cells in one column.
type MissingCount struct {
	Column string
	Count  int
}

// Describe computes per-column statistics for every numeric column, in column
// order. A column is numeric when it has at least one non-empty cell and all
// non-empty cells parse as floats. Std is the sample deviation and is NaN for
// single-value columns.
func (d *Dataset) Describe() []ColumnStats {
	var stats []ColumnStats
	for idx, name := range d.Columns {
		values, ok := d.numericColumn(idx)
		if !ok {
			continue
		}
		stats = append(stats, describeColumn(name, values))
	}
	return stats
}

// Missing counts empty cells per column, in column order.
func (d *Dataset) Missing() []MissingCount {
	counts := make([]MissingCount, len(d.Columns))
	for idx, name := range d.Columns {
		count := 0
		for _, row := range d.Rows {
			if strings.TrimSpace(row[idx]) == "" {
				count++
			}
		}
		counts[idx] = MissingCount{Column: name, Count: count}
	}
	return counts
}

// Info renders a structural summary of the dataset: per-column inferred type
// and non-null count, plus row/column totals and an approximate memory
// footprint.
func (d *Dataset) Info() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dataset: %d rows, %d columns\n", len(d.Rows), len(d.Columns))

	width := 6
	for _, name := range d.Columns {
		if len(name) > width {
			width = len(name)
		}
	}

	fmt.Fprintf(&sb, " #   %-*s  Non-Null  Type\n", width, "Column")
	memory := 0
	for idx, name := range d.Columns {
		nonNull := 0
		for _, row := range d.Rows {
			memory += len(row[idx])
			if strings.TrimSpace(row[idx]) != "" {
				nonNull++
			}
		}
		fmt.Fprintf(&sb, " %-3d %-*s  %-8d  %s\n", idx, width, name, nonNull, d.columnType(idx))
	}
	fmt.Fprintf(&sb, "Memory usage: %d bytes (cell data, approximate)\n", memory)
	return sb.String()
}

// numericColumn extracts the parsed non-empty values of column idx. The second
// return is false when the column is empty or holds a non-numeric cell.
func (d *Dataset) numericColumn(idx int) ([]float64, bool) {
	var values []float64
	for _, row := range d.Rows {
		cell := strings.TrimSpace(row[idx])
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, false
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, false
	}
	return values, true
}

// columnType infers the narrowest type that covers all non-empty cells.
func (d *Dataset) columnType(idx int) string {
	isInt, isFloat, isBool := true, true, true
	seen := false
	for _, row := range d.Rows {
		cell := strings.TrimSpace(row[idx])
		if cell == "" {
			continue
		}
		seen = true
		if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
			isInt = false
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			isFloat = false
		}
		if _, err := strconv.ParseBool(cell); err != nil {
			isBool = false
		}
	}
	switch {
	case !seen:
		return "string"
	case isInt:
		return "int64"
	case isFloat:
		return "float64"
	case isBool:
		return "bool"
	default:
		return "string"
	}
}

func describeColumn(name string, values []float64) ColumnStats {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	std := math.NaN()
	if len(values) > 1 {
		sq := 0.0
		for _, v := range values {
			sq += (v - mean) * (v - mean)
		}
		std = math.Sqrt(sq / float64(len(values)-1))
	}

	return ColumnStats{
		Column: name,
		Count:  len(values),
		Mean:   mean,
		Std:    std,
		Min:    sorted[0],
		Q25:    quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q75:    quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
}

// quantile interpolates linearly between order statistics, matching the
// dataframe convention the summaries were modeled on.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	frac := pos - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
