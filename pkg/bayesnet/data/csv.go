package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/cognicore/bayesnet/pkg/bayesnet/internalerr"
)

// ReadCSV builds a dataset from comma-separated rows. The first row
// holds attribute names; every column is treated as nominal, with the
// domain built from observed values in order of first appearance.
func ReadCSV(r io.Reader) (*DataSet, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("csv needs a header row and at least one data row: %w", internalerr.ErrInvalidInput)
	}

	header := rows[0]
	body := rows[1:]

	// Collect each column's domain in order of first appearance.
	domains := make([][]string, len(header))
	seen := make([]map[string]struct{}, len(header))
	for col := range header {
		seen[col] = make(map[string]struct{})
	}
	for _, row := range body {
		if len(row) != len(header) {
			return nil, fmt.Errorf("row has %d fields, header has %d: %w", len(row), len(header), internalerr.ErrInvalidInput)
		}
		for col, v := range row {
			if _, ok := seen[col][v]; ok {
				continue
			}
			seen[col][v] = struct{}{}
			domains[col] = append(domains[col], v)
		}
	}

	attributes := make([]*Attribute, len(header))
	for col, name := range header {
		a, err := NewNominal(name, col, domains[col])
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", col, err)
		}
		attributes[col] = a
	}

	ds, err := NewDataSet(attributes)
	if err != nil {
		return nil, err
	}

	for _, row := range body {
		values := make([]float64, len(header))
		for col, v := range row {
			code, _ := attributes[col].ValueID(v)
			values[col] = float64(code)
		}
		if err := ds.AddInstance(Instance{Values: values}); err != nil {
			return nil, err
		}
	}

	return ds, nil
}

// LoadCSV reads a dataset from a CSV file on disk.
func LoadCSV(path string) (*DataSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}
