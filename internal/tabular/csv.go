package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// CSVReader reads comma-separated exports with a header row.
type CSVReader struct{}

// Format returns the reader name.
func (CSVReader) Format() string { return "csv" }

// Read reads all rows. Ragged rows are allowed; missing cells read as "".
func (CSVReader) Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return NewTable(nil, nil, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	var rows [][]string
	var rowNums []int
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		if isBlank(rec) {
			continue
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, rec)
		rowNums = append(rowNums, line)
	}
	return NewTable(header, rows, rowNums), nil
}
