package journal

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/ledgerload/internal/id"
	"github.com/cleared-dev/ledgerload/internal/model"
	"github.com/cleared-dev/ledgerload/internal/normalize"
	"github.com/cleared-dev/ledgerload/internal/tabular"
)

// Column names of the journals export.
const (
	ColNumber      = "Número de Partida"
	ColAccountCode = "Número de Cuenta"
	ColAccountName = "Nombre de Cuenta"
	ColDescription = "Descripción"
	ColDebit       = "Debe"
	ColCredit      = "Haber"
	ColDate        = "Fecha"
	ColStatement   = "Estado de cuenta"
	ColPurpose     = "Propósito Asignado"
)

// ParseLines normalizes the records of a journals export. Rows with zero
// in both amount columns are dropped before their date is looked at; any
// other row with an unparsable date fails the whole read.
func ParseLines(tbl *tabular.Table, prefix string, log zerolog.Logger) ([]model.Line, error) {
	var lines []model.Line
	for _, rec := range tbl.Records {
		debit := normalize.Amount(rec.Get(ColDebit))
		credit := normalize.Amount(rec.Get(ColCredit))
		if debit.IsZero() && credit.IsZero() {
			log.Debug().Int("row", rec.Row).Msg("skipping row without amount")
			continue
		}

		date, err := normalize.Date(rec.Get(ColDate))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rec.Row, err)
		}

		number, ok := id.ParseJournalNumberPrefix(rec.Get(ColNumber), prefix)
		lines = append(lines, model.Line{
			Row:         rec.Row,
			Number:      number,
			HasNumber:   ok,
			AccountCode: rec.Get(ColAccountCode),
			AccountName: rec.Get(ColAccountName),
			Description: rec.Get(ColDescription),
			Debit:       debit,
			Credit:      credit,
			Date:        date,
			Statement:   rec.Get(ColStatement),
			Purpose:     rec.Get(ColPurpose),
		})
	}
	return lines, nil
}
