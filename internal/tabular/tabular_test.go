package tabular

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCSVReader_Read(t *testing.T) {
	in := "\ufeffCódigo, Nombre ,Tipo de Saldo\n1-01,Caja,Deudor\n\n2-01, Proveedores ,Acreedor,extra\n1-02\n"

	tbl, err := CSVReader{}.Read(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"Código", "Nombre", "Tipo de Saldo"}, tbl.Header)
	assert.True(t, tbl.HasColumn("Código"))
	assert.False(t, tbl.HasColumn("Cuenta 2"))
	require.Len(t, tbl.Records, 3)

	assert.Equal(t, 2, tbl.Records[0].Row)
	assert.Equal(t, "Caja", tbl.Records[0].Get("Nombre"))

	// Blank line 3 is skipped; row numbers still follow the source.
	assert.Equal(t, 4, tbl.Records[1].Row)
	assert.Equal(t, "Proveedores", tbl.Records[1].Get("Nombre"))

	// Short rows read missing cells as empty.
	assert.Equal(t, "1-02", tbl.Records[2].Get("Código"))
	assert.Empty(t, tbl.Records[2].Get("Nombre"))
	assert.False(t, tbl.Records[2].Has("Tipo de Saldo"))
	assert.Empty(t, tbl.Records[2].Get("Unknown"))
}

func TestCSVReader_Empty(t *testing.T) {
	tbl, err := CSVReader{}.Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, tbl.Records)
	assert.False(t, tbl.HasColumn("Código"))
}

func TestXLSXReader_Read(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Código", "Nombre", "Tipo de Saldo"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"1-01", "Caja", "Deudor"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A4", &[]any{"2-01", "Proveedores", "Acreedor"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tbl, err := DefaultRegistry("").ReadFile(path)
	require.NoError(t, err)
	require.Len(t, tbl.Records, 2)
	assert.Equal(t, "1-01", tbl.Records[0].Get("Código"))
	assert.Equal(t, 2, tbl.Records[0].Row)
	assert.Equal(t, "Acreedor", tbl.Records[1].Get("Tipo de Saldo"))
	assert.Equal(t, 4, tbl.Records[1].Row)
}

func TestXLSXReader_NamedSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journals.xlsx")
	f := excelize.NewFile()
	_, err := f.NewSheet("Partidas")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Partidas", "A1", &[]any{"Número de Partida", "Debe"}))
	require.NoError(t, f.SetSheetRow("Partidas", "A2", &[]any{"MY-00001", "100"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tbl, err := DefaultRegistry("Partidas").ReadFile(path)
	require.NoError(t, err)
	require.Len(t, tbl.Records, 1)
	assert.Equal(t, "MY-00001", tbl.Records[0].Get("Número de Partida"))

	_, err = DefaultRegistry("Missing").ReadFile(path)
	require.Error(t, err)
}

func TestXLSXReader_DateCells(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journals.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Número de Partida", "Debe", "Fecha"}))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "MY-00001"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", 1500.5))
	require.NoError(t, f.SetCellValue("Sheet1", "C2", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))

	custom := "dd/mm/yyyy"
	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &custom})
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Sheet1", "C3", time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, f.SetCellStyle("Sheet1", "C3", "C3", style))
	require.NoError(t, f.SetCellValue("Sheet1", "A3", "MY-00002"))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tbl, err := DefaultRegistry("").ReadFile(path)
	require.NoError(t, err)
	require.Len(t, tbl.Records, 2)
	assert.Equal(t, "2024-01-15", tbl.Records[0].Get("Fecha"))
	assert.Equal(t, "1500.5", tbl.Records[0].Get("Debe"))
	assert.Equal(t, "2024-02-03", tbl.Records[1].Get("Fecha"))
}

func TestReadFile_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.CSV")
	require.NoError(t, os.WriteFile(path, []byte("Código,Nombre\n1-01,Caja\n"), 0o644))

	tbl, err := DefaultRegistry("").ReadFile(path)
	require.NoError(t, err)
	require.Len(t, tbl.Records, 1)
}

func TestReadFile_NotFound(t *testing.T) {
	_, err := DefaultRegistry("").ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestReadFile_UnknownFormat(t *testing.T) {
	_, err := DefaultRegistry("").ReadFile("accounts.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&CSVReader{})
	assert.Panics(t, func() { r.Register(&CSVReader{}) })
	assert.NotNil(t, r.Get("CSV"))
	assert.Nil(t, r.Get("xls"))
}
