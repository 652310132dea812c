package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Journal is a group of entries recorded together as one transaction.
type Journal struct {
	Number      int    // meaningless when Single is set
	Single      bool   // built from a row without a journal number
	Code        string // original textual journal code, e.g. "MY-00042"
	Description string
	Date        time.Time
	Statement   string
	Purpose     string
	Entries     []JournalEntry
}

// JournalEntry is one debit or credit line of a journal.
type JournalEntry struct {
	AccountCode string
	AccountName string
	Amount      decimal.Decimal
	Side        Side
	Description string
	Purpose     string
}

// JournalMetadata is the shape of journals.metadata.
type JournalMetadata struct {
	Statement      string `json:"estado_cuenta"`
	OriginalNumber string `json:"original_journal_number,omitempty"`
	SingleEntry    bool   `json:"single_entry,omitempty"`
	Purpose        string `json:"proposito,omitempty"`
}

// EntryMetadata is the shape of journal_entries.metadata.
type EntryMetadata struct {
	Purpose string `json:"proposito"`
}

// Metadata returns the journal-level metadata document.
func (j Journal) Metadata() JournalMetadata {
	md := JournalMetadata{
		Statement:   j.Statement,
		SingleEntry: j.Single,
		Purpose:     j.Purpose,
	}
	if !j.Single {
		md.OriginalNumber = j.Code
	}
	return md
}

// Metadata returns the entry metadata, or nil when the entry carries none.
func (e JournalEntry) Metadata() *EntryMetadata {
	if e.Purpose == "" {
		return nil
	}
	return &EntryMetadata{Purpose: e.Purpose}
}
