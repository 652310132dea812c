package model

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeIncome    AccountType = "income"
	AccountTypeExpense   AccountType = "expense"
)

// Side is the debit or credit side of an entry or of an account's normal balance.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideDebit {
		return SideCredit
	}
	return SideDebit
}

// Account is one node of the chart of accounts.
type Account struct {
	Code       string
	Name       string
	Type       AccountType
	NormalSide Side
	ParentCode string // "" = top-level
	Extra      ExtraData
}

// HasParent reports whether the account references a parent code.
func (a Account) HasParent() bool {
	return a.ParentCode != ""
}

// HierarchyRef is a code/name pair taken from one of the hierarchy columns.
type HierarchyRef struct {
	Code string `json:"codigo"`
	Name string `json:"nombre"`
}

// ExtraData holds the auxiliary bank and hierarchy fields stored in accounts.extra_data.
type ExtraData struct {
	BankIdentifier string        `json:"identificador_bancario,omitempty"`
	Level2         *HierarchyRef `json:"cuenta_2,omitempty"`
	Level3         *HierarchyRef `json:"cuenta_3,omitempty"`
	Level4         *HierarchyRef `json:"cuenta_4,omitempty"`
}

// IsEmpty reports whether no auxiliary field is set.
func (e ExtraData) IsEmpty() bool {
	return e.BankIdentifier == "" && e.Level2 == nil && e.Level3 == nil && e.Level4 == nil
}
