package tabular

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXReader reads one worksheet of an Excel workbook.
type XLSXReader struct {
	Sheet string // empty = first sheet
}

// Format returns the reader name.
func (*XLSXReader) Format() string { return "xlsx" }

// Read reads the configured worksheet; its first row is the header.
func (x *XLSXReader) Read(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := x.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if err := renderDates(f, sheet, records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return NewTable(nil, nil, nil), nil
	}

	var rows [][]string
	var rowNums []int
	for i, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		rows = append(rows, rec)
		rowNums = append(rowNums, i+2)
	}
	return NewTable(records[0], rows, rowNums), nil
}

// dateLayout is how date cells are rendered; the date normalizer accepts it.
const dateLayout = "2006-01-02"

// renderDates replaces date-formatted cells with their ISO date. GetRows
// applies each cell's number format, and the built-in date formats (such as
// "mm-dd-yy") are ambiguous, so date cells are re-read from their raw serial.
func renderDates(f *excelize.File, sheet string, records [][]string) error {
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	for r := 0; r < min(len(raw), len(records)); r++ {
		for c := 0; c < min(len(raw[r]), len(records[r])); c++ {
			if raw[r][c] == records[r][c] {
				continue
			}
			serial, err := strconv.ParseFloat(raw[r][c], 64)
			if err != nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			isDate, err := isDateCell(f, sheet, cell)
			if err != nil {
				return fmt.Errorf("cell %s: %w", cell, err)
			}
			if !isDate {
				continue
			}
			t, err := excelize.ExcelDateToTime(serial, date1904)
			if err != nil {
				return fmt.Errorf("cell %s: %w", cell, err)
			}
			records[r][c] = t.Format(dateLayout)
		}
	}
	return nil
}

// isDateCell reports whether the cell's number format is a date format,
// either built-in (ids 14-22 and 45-47) or a custom one with year or day tokens.
func isDateCell(f *excelize.File, sheet, cell string) (bool, error) {
	styleID, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return false, err
	}
	style, err := f.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	switch {
	case style.NumFmt >= 14 && style.NumFmt <= 22, style.NumFmt >= 45 && style.NumFmt <= 47:
		return true, nil
	case style.CustomNumFmt != nil:
		return strings.ContainsAny(strings.ToLower(*style.CustomNumFmt), "yd"), nil
	}
	return false, nil
}
