package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineEntrySide(t *testing.T) {
	tests := []struct {
		name       string
		debit      string
		credit     string
		wantSide   Side
		wantAmount string
	}{
		{"debit only", "100", "0", SideDebit, "100.00"},
		{"credit only", "0", "250.5", SideCredit, "250.50"},
		{"both nonzero prefers debit", "10", "20", SideDebit, "10.00"},
		{"negative debit posts as credit", "-100", "0", SideCredit, "100.00"},
		{"negative credit posts as debit", "0", "-42.1", SideDebit, "42.10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Line{
				AccountCode: "1-01",
				Debit:       decimal.RequireFromString(tt.debit),
				Credit:      decimal.RequireFromString(tt.credit),
			}
			e := l.Entry()
			assert.Equal(t, tt.wantSide, e.Side)
			assert.Equal(t, tt.wantAmount, e.Amount.StringFixed(2))
			assert.Equal(t, "1-01", e.AccountCode)
		})
	}
}

func TestSideOpposite(t *testing.T) {
	assert.Equal(t, SideCredit, SideDebit.Opposite())
	assert.Equal(t, SideDebit, SideCredit.Opposite())
}

func TestLineIsEmpty(t *testing.T) {
	assert.True(t, Line{}.IsEmpty())
	assert.False(t, Line{Credit: decimal.NewFromInt(1)}.IsEmpty())
}

func TestJournalMetadata(t *testing.T) {
	numbered := Journal{Number: 42, Code: "MY-00042", Statement: "Conciliado", Purpose: "Pago"}
	md := numbered.Metadata()
	assert.Equal(t, "MY-00042", md.OriginalNumber)
	assert.False(t, md.SingleEntry)

	single := Journal{Single: true, Code: "", Statement: "Pendiente"}
	md = single.Metadata()
	assert.Empty(t, md.OriginalNumber)
	assert.True(t, md.SingleEntry)

	got, err := EncodeJSON(md)
	require.NoError(t, err)
	assert.Equal(t, `{"estado_cuenta":"Pendiente","single_entry":true}`, got)
}

func TestEntryMetadata(t *testing.T) {
	assert.Nil(t, JournalEntry{}.Metadata())
	md := JournalEntry{Purpose: "Nómina"}.Metadata()
	require.NotNil(t, md)
	assert.Equal(t, "Nómina", md.Purpose)
}

func TestEncodeJSONKeepsText(t *testing.T) {
	got, err := EncodeJSON(ExtraData{
		BankIdentifier: "BAC <123> & co",
		Level4:         &HierarchyRef{Code: "1-00", Name: "Activo Circulante"},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"identificador_bancario":"BAC <123> & co","cuenta_4":{"codigo":"1-00","nombre":"Activo Circulante"}}`, got)
}

func TestEncodeJSONEmptyExtra(t *testing.T) {
	got, err := EncodeJSON(ExtraData{})
	require.NoError(t, err)
	assert.Equal(t, "{}", got)
	assert.True(t, ExtraData{}.IsEmpty())
}
