package sqlgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/ledgerload/internal/model"
)

// JournalStats counts what WriteJournals emitted.
type JournalStats struct {
	Journals int
	Entries  int
	Singles  int // journals whose entry could only be written as a comment
}

// WriteJournals writes numbered journals and their entries, then the single
// journals. A single journal has no natural key to link its entry to, so the
// entry is written commented out for a later procedural pass.
func WriteJournals(w io.Writer, journals []model.Journal) (JournalStats, error) {
	var stats JournalStats
	p := &printer{w: w}
	p.printf("-- Insert journals and journal entries\n")
	p.printf("BEGIN;\n\n")

	singlesHeader := false
	for _, j := range journals {
		var err error
		if j.Single {
			if !singlesHeader {
				p.printf("-- Single entries without journal number\n\n")
				singlesHeader = true
			}
			err = writeSingle(p, j)
			stats.Singles++
		} else {
			err = writeNumbered(p, j)
		}
		if err != nil {
			return stats, err
		}
		stats.Journals++
		stats.Entries += len(j.Entries)
	}

	p.printf("COMMIT;\n")
	return stats, p.err
}

func writeNumbered(p *printer, j model.Journal) error {
	md, err := jsonb(j.Metadata())
	if err != nil {
		return fmt.Errorf("journal %s: %w", j.Code, err)
	}

	p.printf("-- Journal %s\n", j.Code)
	p.printf("INSERT INTO journals (journal_number, description, date, metadata, statement)\n")
	p.printf("VALUES (%d, %s, '%s', %s, %s);\n",
		j.Number, Literal(j.Description), j.Date.Format(dateFormat), md, Literal(j.Statement))

	journalRef := fmt.Sprintf("(SELECT id FROM journals WHERE journal_number = %d)", j.Number)
	for _, e := range j.Entries {
		stmt, err := entryInsert(journalRef, e)
		if err != nil {
			return fmt.Errorf("journal %s: %w", j.Code, err)
		}
		p.printf("%s", stmt)
	}
	p.printf("\n")
	return nil
}

func writeSingle(p *printer, j model.Journal) error {
	md, err := jsonb(j.Metadata())
	if err != nil {
		return fmt.Errorf("single journal %q: %w", j.Description, err)
	}

	p.printf("INSERT INTO journals (description, date, metadata, statement)\n")
	p.printf("VALUES (%s, '%s', %s, %s)\n", Literal(j.Description), j.Date.Format(dateFormat), md, Literal(j.Statement))
	p.printf("RETURNING id;\n")

	for _, e := range j.Entries {
		stmt, err := entryInsert("<last_journal_id>", e)
		if err != nil {
			return fmt.Errorf("single journal %q: %w", j.Description, err)
		}
		p.printf("%s", commentOut(stmt))
	}
	p.printf("\n")
	return nil
}

func entryInsert(journalRef string, e model.JournalEntry) (string, error) {
	md := "NULL"
	if m := e.Metadata(); m != nil {
		var err error
		if md, err = jsonb(m); err != nil {
			return "", fmt.Errorf("entry %s: %w", e.AccountCode, err)
		}
	}

	return fmt.Sprintf(`INSERT INTO journal_entries (journal_id, account_id, amount, side, description, metadata)
VALUES (
    %s,
    (SELECT id FROM accounts WHERE code = %s),
    %s,
    '%s',
    %s,
    %s
);
`, journalRef, Literal(e.AccountCode), e.Amount.StringFixed(2), SideLabel(e.Side), Literal(e.Description), md), nil
}

// commentOut prefixes every line of stmt with "-- ".
func commentOut(stmt string) string {
	lines := strings.Split(strings.TrimSuffix(stmt, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "-- " + l
	}
	return strings.Join(lines, "\n") + "\n"
}
