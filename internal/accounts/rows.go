package accounts

import (
	"errors"
	"fmt"

	"github.com/cleared-dev/ledgerload/internal/model"
	"github.com/cleared-dev/ledgerload/internal/tabular"
)

// Column names of the accounts export.
const (
	ColCode           = "Código"
	ColName           = "Nombre"
	ColBalanceType    = "Tipo de Saldo"
	ColBankIdentifier = "Identificador Bancario"
	ColLevel2Code     = "Código Cuenta 2"
	ColLevel2Name     = "Cuenta 2"
	ColLevel3Code     = "Código Cuenta 3"
	ColLevel3Name     = "Cuenta 3"
	ColLevel4Code     = "Código Cuenta 4"
	ColLevel4Name     = "Cuenta 4"
)

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("missing required column")

var requiredColumns = []string{ColCode, ColName, ColBalanceType}

// Row is one line of the accounts export.
type Row struct {
	Line           int
	Code           string
	Name           string
	BalanceType    string
	BankIdentifier string
	Level2         model.HierarchyRef // immediate parent
	Level3         model.HierarchyRef
	Level4         model.HierarchyRef // outermost
}

// ParseRows converts table records into Rows.
func ParseRows(tbl *tabular.Table) ([]Row, error) {
	for _, col := range requiredColumns {
		if !tbl.HasColumn(col) {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}

	rows := make([]Row, 0, len(tbl.Records))
	for _, rec := range tbl.Records {
		code := rec.Get(ColCode)
		if code == "" {
			return nil, fmt.Errorf("row %d: empty %s", rec.Row, ColCode)
		}
		rows = append(rows, Row{
			Line:           rec.Row,
			Code:           code,
			Name:           rec.Get(ColName),
			BalanceType:    rec.Get(ColBalanceType),
			BankIdentifier: rec.Get(ColBankIdentifier),
			Level2:         model.HierarchyRef{Code: rec.Get(ColLevel2Code), Name: rec.Get(ColLevel2Name)},
			Level3:         model.HierarchyRef{Code: rec.Get(ColLevel3Code), Name: rec.Get(ColLevel3Name)},
			Level4:         model.HierarchyRef{Code: rec.Get(ColLevel4Code), Name: rec.Get(ColLevel4Name)},
		})
	}
	return rows, nil
}
