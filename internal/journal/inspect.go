package journal

import (
	"fmt"

	"github.com/cleared-dev/ledgerload/internal/id"
)

// Finding describes a journal whose lines disagree on a value that only the
// first line contributes to the journal.
type Finding struct {
	Journal string
	Row     int
	Field   string
	Kept    string
	Dropped string
}

func (f Finding) String() string {
	return fmt.Sprintf("journal %s row %d: %s %q differs from first entry (%q kept)", f.Journal, f.Row, f.Field, f.Dropped, f.Kept)
}

// Inspect reports lines whose date or statement differs from the first line
// of their journal. Nothing is changed.
func (g *Grouper) Inspect() []Finding {
	var findings []Finding
	for _, n := range g.numbers() {
		lines := g.numbered[n]
		first := lines[0]
		code := id.FormatJournalCode(g.prefix, n)
		for _, l := range lines[1:] {
			if !l.Date.Equal(first.Date) {
				findings = append(findings, Finding{
					Journal: code,
					Row:     l.Row,
					Field:   "date",
					Kept:    first.Date.Format("2006-01-02"),
					Dropped: l.Date.Format("2006-01-02"),
				})
			}
			if l.Statement != first.Statement {
				findings = append(findings, Finding{
					Journal: code,
					Row:     l.Row,
					Field:   "statement",
					Kept:    first.Statement,
					Dropped: l.Statement,
				})
			}
		}
	}
	return findings
}
