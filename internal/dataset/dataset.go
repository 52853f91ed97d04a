// Package dataset implements the in-memory tabular value tabshell operates on:
// ordered named columns with ordered rows of string cells, loaded from CSV and
// summarized for the interactive shell.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Dataset is a tabular value with named columns and ordered rows.
// Cells are kept as strings; numeric interpretation happens in the summaries.
type Dataset struct {
	Columns []string
	Rows    [][]string
}

// New creates a dataset from a header and rows. It returns an error if any
// row width disagrees with the header.
func New(columns []string, rows [][]string) (*Dataset, error) {
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", i, len(row), len(columns))
		}
	}
	return &Dataset{Columns: columns, Rows: rows}, nil
}

// NumRows returns the number of data rows.
func (d *Dataset) NumRows() int {
	return len(d.Rows)
}

// NumColumns returns the number of columns.
func (d *Dataset) NumColumns() int {
	return len(d.Columns)
}

// Values returns the dataset as a rectangular block: the header row followed
// by the data rows. This is the shape the write-range binding accepts.
func (d *Dataset) Values() [][]string {
	values := make([][]string, 0, len(d.Rows)+1)
	values = append(values, d.Columns)
	values = append(values, d.Rows...)
	return values
}

// WriteCSV serializes the dataset as CSV to w, header first.
func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(d.Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i, row := range d.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
