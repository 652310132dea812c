package loader

import (
	"context"
	"fmt"

	"github.com/cleared-dev/ledgerload/internal/model"
	"github.com/cleared-dev/ledgerload/internal/sqlgen"
)

const (
	insertNumberedJournalSQL = `INSERT INTO journals (journal_number, description, date, metadata, statement)
VALUES ($1, $2, $3, $4::jsonb, $5)
RETURNING id`
	insertSingleJournalSQL = `INSERT INTO journals (description, date, metadata, statement)
VALUES ($1, $2, $3::jsonb, $4)
RETURNING id`
	insertEntrySQL = `INSERT INTO journal_entries (journal_id, account_id, amount, side, description, metadata)
VALUES ($1, (SELECT id FROM accounts WHERE code = $2), $3, $4, $5, $6::jsonb)`
)

// JournalsResult summarizes LoadJournals.
type JournalsResult struct {
	Journals int
	Entries  int
	Singles  int
}

// LoadJournals inserts each journal and links its entries through the
// returned id, which also covers journals without a number.
func (l *Loader) LoadJournals(ctx context.Context, q Querier, journals []model.Journal) (JournalsResult, error) {
	var res JournalsResult

	for _, j := range journals {
		md, err := model.EncodeJSON(j.Metadata())
		if err != nil {
			return res, fmt.Errorf("journal %s: %w", j.Code, err)
		}

		var journalID int64
		if j.Single {
			err = q.QueryRow(ctx, insertSingleJournalSQL, j.Description, j.Date, md, j.Statement).Scan(&journalID)
			res.Singles++
		} else {
			err = q.QueryRow(ctx, insertNumberedJournalSQL, j.Number, j.Description, j.Date, md, j.Statement).Scan(&journalID)
		}
		if err != nil {
			return res, fmt.Errorf("inserting journal %s: %w", journalName(j), err)
		}
		res.Journals++

		for _, e := range j.Entries {
			var entryMD any
			if m := e.Metadata(); m != nil {
				s, err := model.EncodeJSON(m)
				if err != nil {
					return res, fmt.Errorf("journal %s entry %s: %w", journalName(j), e.AccountCode, err)
				}
				entryMD = s
			}

			_, err := q.Exec(ctx, insertEntrySQL,
				journalID, e.AccountCode, e.Amount.StringFixed(2), sqlgen.SideLabel(e.Side), e.Description, entryMD,
			)
			if err != nil {
				return res, fmt.Errorf("inserting entry %s of journal %s: %w", e.AccountCode, journalName(j), err)
			}
			res.Entries++
		}
	}

	l.log.Info().Int("journals", res.Journals).Int("entries", res.Entries).Msg("journals loaded")
	return res, nil
}

func journalName(j model.Journal) string {
	if j.Single {
		return fmt.Sprintf("%q (single)", j.Description)
	}
	return j.Code
}
