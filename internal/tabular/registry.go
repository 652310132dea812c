// Package tabular reads header-named rows from accounting exports.
package tabular

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat is returned when no reader is registered for a file.
var ErrUnknownFormat = errors.New("unknown input format")

// Reader converts an export file into a Table.
type Reader interface {
	Read(r io.Reader) (*Table, error)
	Format() string
}

// Registry holds readers keyed by format (the file extension without dot).
type Registry struct {
	readers map[string]Reader
}

// NewRegistry creates an empty reader registry.
func NewRegistry() *Registry {
	return &Registry{readers: make(map[string]Reader)}
}

// Register adds a reader. Panics on duplicate format.
func (r *Registry) Register(rd Reader) {
	key := strings.ToLower(rd.Format())
	if _, ok := r.readers[key]; ok {
		panic("duplicate reader format: " + key)
	}
	r.readers[key] = rd
}

// Get returns the reader for format, or nil.
func (r *Registry) Get(format string) Reader {
	return r.readers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with the CSV and XLSX readers. sheet
// selects the XLSX worksheet; empty means the first one.
func DefaultRegistry(sheet string) *Registry {
	r := NewRegistry()
	r.Register(&CSVReader{})
	r.Register(&XLSXReader{Sheet: sheet})
	return r
}

// ReadFile opens path and reads it with the reader matching its extension.
func (r *Registry) ReadFile(path string) (*Table, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	rd := r.Get(format)
	if rd == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	t, err := rd.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return t, nil
}
