package runlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Pipeline names recorded in the run log.
const (
	PipelineAccounts = "accounts"
	PipelineJournals = "journals"
	PipelineLoad     = "load"
)

// Entry is one conversion run.
type Entry struct {
	Timestamp time.Time
	RunID     uuid.UUID
	Pipeline  string
	Input     string
	Output    string
	Records   int // accounts or journals produced
	Entries   int // journal entries, zero for the accounts pipeline
}

// Header is the CSV header of a run log file.
const Header = "timestamp,run_id,pipeline,input,output,records,entries"

const (
	numFields   = 7
	colTime     = 0
	colRunID    = 1
	colPipeline = 2
	colInput    = 3
	colOutput   = 4
	colRecords  = 5
	colEntries  = 6
)

// NewEntry stamps a run with the current time and a fresh run id.
func NewEntry(pipeline, input, output string, records, entries int) Entry {
	return Entry{
		Timestamp: time.Now().UTC(),
		RunID:     uuid.New(),
		Pipeline:  pipeline,
		Input:     input,
		Output:    output,
		Records:   records,
		Entries:   entries,
	}
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTime] = e.Timestamp.Format(time.RFC3339)
	row[colRunID] = e.RunID.String()
	row[colPipeline] = e.Pipeline
	row[colInput] = e.Input
	row[colOutput] = e.Output
	row[colRecords] = strconv.Itoa(e.Records)
	row[colEntries] = strconv.Itoa(e.Entries)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTime])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTime], err)
	}
	runID, err := uuid.Parse(record[colRunID])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing run id %q: %w", record[colRunID], err)
	}
	records, err := strconv.Atoi(record[colRecords])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing records %q: %w", record[colRecords], err)
	}
	entries, err := strconv.Atoi(record[colEntries])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing entries %q: %w", record[colEntries], err)
	}

	return Entry{
		Timestamp: ts,
		RunID:     runID,
		Pipeline:  record[colPipeline],
		Input:     record[colInput],
		Output:    record[colOutput],
		Records:   records,
		Entries:   entries,
	}, nil
}

// Append writes entries to path, creating parent directories, the file and its header if needed.
func Append(path string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating run log dir: %w", err)
	}

	needsHeader := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries from path.
// Returns an empty slice if the file does not exist.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
