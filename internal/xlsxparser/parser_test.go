package xlsxparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/powiaty-converter/internal/testutil"
)

func TestReadFirstSheet_RawValues(t *testing.T) {
	path := testutil.WritePensionWorkbook(t, []testutil.DistrictRow{
		{Name: "  Warszawa ", Code: 1465, Male: 3200.5, Female: 2800.25},
	})

	sheet, err := ReadFirstSheet(path, 10)
	require.NoError(t, err)

	assert.Equal(t, path, sheet.Path)
	assert.NotEmpty(t, sheet.Name)
	require.Len(t, sheet.Rows, 11)

	assert.Equal(t, "Warszawa", sheet.Cell(10, 1))
	assert.Equal(t, "  Warszawa ", sheet.RawCell(10, 1))
	assert.Equal(t, "1465", sheet.Cell(10, 2))
	assert.Equal(t, "3200.5", sheet.Cell(10, 5))
	assert.Equal(t, "2800.25", sheet.Cell(10, 8))
	assert.Equal(t, []int{10}, sheet.DataRows(10))
}

func TestReadFirstSheet_OutOfRangeCells(t *testing.T) {
	sheet := &Sheet{Rows: [][]string{{"a", " b "}, {}}}

	assert.Equal(t, "b", sheet.Cell(0, 1))
	assert.Equal(t, "", sheet.Cell(0, 9))
	assert.Equal(t, "", sheet.Cell(5, 0))
	assert.Equal(t, "", sheet.RawCell(-1, 0))
	assert.True(t, sheet.IsRowEmpty(1))
	assert.False(t, sheet.IsRowEmpty(0))
	assert.Nil(t, sheet.DataRows(2))
}

func TestReadFirstSheet_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.xlsx")

	_, err := ReadFirstSheet(path, 10)
	require.ErrorIs(t, err, ErrSourceNotFound)
	assert.Contains(t, err.Error(), path)
}

func TestReadFirstSheet_NotAWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0644))

	_, err := ReadFirstSheet(path, 10)
	require.ErrorIs(t, err, ErrMalformedSource)
	assert.Contains(t, err.Error(), path)
}

func TestReadFirstSheet_TooFewRows(t *testing.T) {
	rows := testutil.PensionRows(nil)[:9]
	path := testutil.WriteWorkbook(t, "short.xlsx", rows)

	_, err := ReadFirstSheet(path, 10)
	require.ErrorIs(t, err, ErrMalformedSource)
	assert.Contains(t, err.Error(), "9 rows")
}
