package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"tabshell/internal/logger"
)

// LoadCSV parses delimited text from r into a Dataset. The first record is
// taken as the column header. Parse failures are reported as descriptive
// errors; this boundary never panics.
func LoadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV input is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV header: %w", err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, record)
	}

	logger.Debug("CSV parsed", "columns", len(header), "rows", len(rows))
	return &Dataset{Columns: header, Rows: rows}, nil
}

// LoadCSVFile parses the CSV file at path into a Dataset.
func LoadCSVFile(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	ds, err := LoadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return ds, nil
}
