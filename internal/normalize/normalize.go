// Package normalize converts raw export fields into typed values.
package normalize

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerload/internal/model"
)

// dateLayouts are tried in order: day/month/year, year-month-day,
// month/day/year, day-month-year.
var dateLayouts = []string{
	"2/1/2006",
	"2006-1-2",
	"1/2/2006",
	"2-1-2006",
}

// ParseError reports a date that matched none of the accepted layouts.
type ParseError struct {
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse date %q", e.Value)
}

// AccountType derives the account type from the code prefix. Unknown or
// malformed codes are assets.
func AccountType(code string) model.AccountType {
	switch {
	case strings.HasPrefix(code, "1-"):
		return model.AccountTypeAsset
	case strings.HasPrefix(code, "2-"):
		return model.AccountTypeLiability
	case strings.HasPrefix(code, "3-"):
		return model.AccountTypeEquity
	case strings.HasPrefix(code, "4-"):
		return model.AccountTypeIncome
	case strings.HasPrefix(code, "5-"):
		return model.AccountTypeExpense
	default:
		return model.AccountTypeAsset
	}
}

// NormalSide maps a "Tipo de Saldo" label to a side. Anything other than
// deudor/acreedor is debit.
func NormalSide(label string) model.Side {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "acreedor":
		return model.SideCredit
	default:
		return model.SideDebit
	}
}

// Date parses text with the first matching layout.
func Date(text string) (time.Time, error) {
	s := strings.TrimSpace(text)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ParseError{Value: text}
}

// Amount parses a currency amount, dropping currency symbols, thousands
// separators and whitespace. Empty or unparsable input is zero.
func Amount(text string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == 'L', r == '$', r == ',':
			return -1
		case unicode.IsSpace(r), unicode.Is(unicode.Sc, r):
			return -1
		}
		return r
	}, text)
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
