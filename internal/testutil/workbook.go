// Package testutil builds ZUS-style source workbooks for tests.
package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// PreambleRows is the number of title rows the ZUS workbook starts with.
const PreambleRows = 9

// DistrictRow is one data row of a source workbook. Nil fields leave the
// cell empty.
type DistrictRow struct {
	Name   any
	Code   any
	Male   any
	Female any
}

// WriteWorkbook saves rows to an xlsx file in a temp dir and returns its path.
// Every row is written as-is starting at A1.
func WriteWorkbook(t *testing.T, name string, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

// WritePensionWorkbook writes the title block, the column label row and one
// row per district in the default layout (name, code, male avg, female avg
// in columns 1, 2, 5 and 8).
func WritePensionWorkbook(t *testing.T, districts []DistrictRow) string {
	t.Helper()

	rows := PensionRows(districts)
	return WriteWorkbook(t, "pkt 6_emerytury_powiaty.xlsx", rows)
}

// PensionRows returns the raw rows WritePensionWorkbook writes.
func PensionRows(districts []DistrictRow) [][]any {
	rows := make([][]any, 0, PreambleRows+1+len(districts))
	for i := 0; i < PreambleRows; i++ {
		rows = append(rows, []any{fmt.Sprintf("Tablica 6, wiersz %d", i+1)})
	}
	rows = append(rows, []any{
		"Lp.", "Powiat", "Kod", "M max", "M min", "M średnia", "K max", "K min", "K średnia",
	})

	for i, d := range districts {
		rows = append(rows, []any{
			i + 1, d.Name, d.Code, 9999.99, 1.0, d.Male, 9999.99, 1.0, d.Female,
		})
	}
	return rows
}
