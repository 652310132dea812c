package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line is a normalized row of a journals export.
type Line struct {
	Row         int // 1-based source row, header included
	Number      int // journal number, valid when HasNumber
	HasNumber   bool
	AccountCode string
	AccountName string
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Date        time.Time
	Statement   string
	Purpose     string
}

// Entry converts the line into a journal entry. The debit column wins when
// both amounts are nonzero. A negative amount is posted as its absolute
// value on the opposite side.
func (l Line) Entry() JournalEntry {
	e := JournalEntry{
		AccountCode: l.AccountCode,
		AccountName: l.AccountName,
		Description: l.Description,
		Purpose:     l.Purpose,
	}
	if !l.Debit.IsZero() {
		e.Amount = l.Debit
		e.Side = SideDebit
	} else {
		e.Amount = l.Credit
		e.Side = SideCredit
	}
	if e.Amount.IsNegative() {
		e.Amount = e.Amount.Neg()
		e.Side = e.Side.Opposite()
	}
	return e
}

// IsEmpty reports whether both amount columns are zero.
func (l Line) IsEmpty() bool {
	return l.Debit.IsZero() && l.Credit.IsZero()
}
