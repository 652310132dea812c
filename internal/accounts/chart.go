package accounts

import (
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/ledgerload/internal/model"
	"github.com/cleared-dev/ledgerload/internal/normalize"
	"github.com/cleared-dev/ledgerload/internal/tabular"
)

// Chart accumulates a deduplicated chart of accounts keyed by code. The
// first account stored under a code is never replaced.
type Chart struct {
	byCode     map[string]model.Account
	duplicates int
	log        zerolog.Logger
}

// NewChart creates an empty Chart.
func NewChart(log zerolog.Logger) *Chart {
	return &Chart{byCode: make(map[string]model.Account), log: log}
}

// Build parses every record of tbl into a Chart.
func Build(tbl *tabular.Table, log zerolog.Logger) (*Chart, error) {
	rows, err := ParseRows(tbl)
	if err != nil {
		return nil, err
	}
	c := NewChart(log)
	for _, row := range rows {
		c.Add(row)
	}
	return c, nil
}

// Add stores the row's account and then synthesizes any hierarchy
// ancestors not yet present, outermost level first.
func (c *Chart) Add(row Row) {
	if !c.insert(primaryAccount(row)) {
		c.duplicates++
		c.log.Debug().Int("row", row.Line).Str("code", row.Code).Msg("duplicate account code ignored")
	}

	levels := []struct {
		ref    model.HierarchyRef
		parent string
	}{
		{row.Level4, ""},
		{row.Level3, row.Level4.Code},
		{row.Level2, row.Level3.Code},
	}
	for _, lvl := range levels {
		if lvl.ref.Code == "" {
			continue
		}
		if c.insert(ancestorAccount(lvl.ref, lvl.parent)) {
			c.log.Debug().Int("row", row.Line).Str("code", lvl.ref.Code).Msg("synthesized ancestor account")
		}
	}
}

// insert stores acct unless its code is already present.
func (c *Chart) insert(acct model.Account) bool {
	if _, ok := c.byCode[acct.Code]; ok {
		return false
	}
	c.byCode[acct.Code] = acct
	return true
}

// Sorted returns all accounts ordered by code, compared as strings.
func (c *Chart) Sorted() []model.Account {
	out := make([]model.Account, 0, len(c.byCode))
	for _, a := range c.byCode {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b model.Account) int {
		return strings.Compare(a.Code, b.Code)
	})
	return out
}

// Get returns an account by code.
func (c *Chart) Get(code string) (model.Account, bool) {
	a, ok := c.byCode[code]
	return a, ok
}

// Exists reports whether a code is in the chart.
func (c *Chart) Exists(code string) bool {
	_, ok := c.byCode[code]
	return ok
}

// Len returns the number of accounts.
func (c *Chart) Len() int {
	return len(c.byCode)
}

// Duplicates returns how many rows repeated a code already in the chart.
func (c *Chart) Duplicates() int {
	return c.duplicates
}

func primaryAccount(row Row) model.Account {
	extra := model.ExtraData{BankIdentifier: row.BankIdentifier}
	if row.Level2.Code != "" {
		ref := row.Level2
		extra.Level2 = &ref
	}
	if row.Level3.Code != "" {
		ref := row.Level3
		extra.Level3 = &ref
	}
	if row.Level4.Code != "" {
		ref := row.Level4
		extra.Level4 = &ref
	}

	return model.Account{
		Code:       row.Code,
		Name:       row.Name,
		Type:       normalize.AccountType(row.Code),
		NormalSide: normalize.NormalSide(row.BalanceType),
		ParentCode: row.Level2.Code,
		Extra:      extra,
	}
}

func ancestorAccount(ref model.HierarchyRef, parent string) model.Account {
	return model.Account{
		Code:       ref.Code,
		Name:       ref.Name,
		Type:       normalize.AccountType(ref.Code),
		NormalSide: model.SideDebit,
		ParentCode: parent,
	}
}
