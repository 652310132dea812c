package tabular

import "strings"

// Table is a header row plus the data rows under it.
type Table struct {
	Header  []string
	Records []Record
	index   map[string]int
}

// Record is one data row addressed by header name.
type Record struct {
	Row    int // 1-based row in the source, header is row 1
	values []string
	index  map[string]int
}

// NewTable builds a table from a header and raw rows. rowNums gives the
// source row of each entry in rows.
func NewTable(header []string, rows [][]string, rowNums []int) *Table {
	clean := make([]string, len(header))
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		clean[i] = h
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}

	t := &Table{Header: clean, index: index}
	for i, row := range rows {
		t.Records = append(t.Records, Record{Row: rowNums[i], values: row, index: index})
	}
	return t
}

// HasColumn reports whether the header contains name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Get returns the trimmed value of column name, or "" when the column or
// cell is absent.
func (r Record) Get(name string) string {
	i, ok := r.index[name]
	if !ok || i >= len(r.values) {
		return ""
	}
	return strings.TrimSpace(r.values[i])
}

// Has reports whether column name holds a non-blank value.
func (r Record) Has(name string) bool {
	return r.Get(name) != ""
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
