// =============================================================================
// Powiaty Converter - XLSX Source Parser
// =============================================================================
//
// This module reads the source workbook. Only the first sheet is used and
// cells are addressed by position, never by header text: the ZUS workbook
// carries a multi-row title block whose wording changes between vintages.
//
// SHEET STRUCTURE (default layout):
//
//   | Row   | Content                                                  |
//   |-------|----------------------------------------------------------|
//   | 0-8   | Title block (discarded)                                  |
//   | 9     | Column labels (discarded)                                |
//   | 10+   | One powiat per row                                       |
//
//   | Col 1 | Col 2 | Col 3-5            | Col 6-8              |
//   |-------|-------|--------------------|----------------------|
//   | Name  | Code  | Men: max, min, avg | Women: max, min, avg |
//
// Cell values are read raw (number formats are not applied), so a pension of
// 3200.5 formatted as "3 200,50 zł" is returned as "3200.5".
//
// =============================================================================

package xlsxparser

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrSourceNotFound is returned when the workbook path does not exist.
	ErrSourceNotFound = errors.New("source file not found")

	// ErrMalformedSource is returned when the workbook cannot be read as a
	// spreadsheet, has no sheets, or has too few rows.
	ErrMalformedSource = errors.New("malformed source file")
)

// =============================================================================
// SHEET STRUCTURE
// =============================================================================

// Sheet holds the raw rows of the first worksheet of a workbook.
type Sheet struct {
	// Path is the path of the workbook the sheet was read from.
	Path string

	// Name is the worksheet name.
	Name string

	// Rows holds every row, including the title block. Trailing empty cells
	// of a row are not present.
	Rows [][]string
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// ReadFirstSheet opens a workbook and reads all rows of its first sheet.
//
// PARAMETERS:
//   - path: The path to the XLSX workbook.
//   - minRows: The minimum number of rows the sheet must have.
//
// RETURNS:
//   - A pointer to the Sheet.
//   - An error wrapping ErrSourceNotFound or ErrMalformedSource.
//
// The workbook is opened read-only and closed before returning.
func ReadFirstSheet(path string, minRows int) (*Sheet, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat source file %s: %w", path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedSource, path, err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("%w: %s: workbook has no sheets", ErrMalformedSource, path)
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: failed to read rows: %v", ErrMalformedSource, path, err)
	}

	if len(rows) < minRows {
		return nil, fmt.Errorf("%w: %s: sheet %q has %d rows, need at least %d",
			ErrMalformedSource, path, sheetName, len(rows), minRows)
	}

	return &Sheet{
		Path: path,
		Name: sheetName,
		Rows: rows,
	}, nil
}

// =============================================================================
// SHEET METHODS
// =============================================================================

// Cell returns the trimmed value at (row, col), or "" when the cell is
// outside the sheet or empty.
func (s *Sheet) Cell(row, col int) string {
	if row < 0 || row >= len(s.Rows) {
		return ""
	}
	r := s.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// RawCell returns the untrimmed value at (row, col).
func (s *Sheet) RawCell(row, col int) string {
	if row < 0 || row >= len(s.Rows) || col < 0 || col >= len(s.Rows[row]) {
		return ""
	}
	return s.Rows[row][col]
}

// DataRows returns the indices of rows from start to the end of the sheet.
func (s *Sheet) DataRows(start int) []int {
	if start >= len(s.Rows) {
		return nil
	}
	idx := make([]int, 0, len(s.Rows)-start)
	for i := start; i < len(s.Rows); i++ {
		idx = append(idx, i)
	}
	return idx
}

// IsRowEmpty checks if a row contains only empty cells.
func (s *Sheet) IsRowEmpty(row int) bool {
	if row < 0 || row >= len(s.Rows) {
		return true
	}
	for _, cell := range s.Rows[row] {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
