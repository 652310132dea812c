package runlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		Timestamp: testTime,
		RunID:     uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2"),
		Pipeline:  PipelineJournals,
		Input:     "partidas.csv",
		Output:    "journals_insert.sql",
		Records:   4,
		Entries:   6,
	}
}

func TestAppend_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "run-log.csv")
	require.NoError(t, Append(path, []Entry{testEntry()}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "2024-01-15T10:30:00Z,7d444840-9dc0-11d1-b245-5ffdce74fad2,journals,partidas.csv,journals_insert.sql,4,6", lines[1])
}

func TestAppend_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run-log.csv")
	require.NoError(t, Append(path, []Entry{testEntry()}))

	e2 := testEntry()
	e2.Pipeline = PipelineAccounts
	e2.Records = 19
	e2.Entries = 0
	require.NoError(t, Append(path, []Entry{e2}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, PipelineJournals, entries[0].Pipeline)
	assert.Equal(t, PipelineAccounts, entries[1].Pipeline)
	assert.Equal(t, 19, entries[1].Records)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header), "header written once")
}

func TestRead_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run-log.csv")
	want := testEntry()
	want.Input = "cuentas, enero.csv"
	require.NoError(t, Append(path, []Entry{want}))

	got, err := Read(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want, got[0])
}

func TestRead_Missing(t *testing.T) {
	entries, err := Read(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRead_BadRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run-log.csv")
	content := Header + "\nnot-a-time,x,accounts,a.csv,a.sql,1,0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestNewEntry(t *testing.T) {
	a := NewEntry(PipelineAccounts, "in.csv", "out.sql", 3, 0)
	b := NewEntry(PipelineAccounts, "in.csv", "out.sql", 3, 0)

	assert.NotEqual(t, uuid.Nil, a.RunID)
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Equal(t, time.UTC, a.Timestamp.Location())
}
