// Package sqlgen renders accounts and journals as INSERT statements for the
// accounts/journals/journal_entries schema. Foreign keys are written as
// subqueries on natural keys, so the statements must run in order inside
// the emitted transaction.
package sqlgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/ledgerload/internal/model"
)

const dateFormat = "2006-01-02"

var typeLabels = map[model.AccountType]string{
	model.AccountTypeAsset:     "activo",
	model.AccountTypeLiability: "pasivo",
	model.AccountTypeEquity:    "patrimonio",
	model.AccountTypeIncome:    "ingresos",
	model.AccountTypeExpense:   "egresos",
}

var sideLabels = map[model.Side]string{
	model.SideDebit:  "debe",
	model.SideCredit: "haber",
}

// Escape doubles single quotes for use inside a single-quoted SQL literal.
func Escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// Literal returns s as a quoted SQL string literal.
func Literal(s string) string {
	return "'" + Escape(s) + "'"
}

// TypeLabel returns the schema value for an account type.
func TypeLabel(t model.AccountType) string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return typeLabels[model.AccountTypeAsset]
}

// SideLabel returns the schema value for a side.
func SideLabel(s model.Side) string {
	if l, ok := sideLabels[s]; ok {
		return l
	}
	return sideLabels[model.SideDebit]
}

// printer remembers the first write error so rendering code can stay linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func jsonb(v any) (string, error) {
	s, err := model.EncodeJSON(v)
	if err != nil {
		return "", err
	}
	return Literal(s) + "::jsonb", nil
}
