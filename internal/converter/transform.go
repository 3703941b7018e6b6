// =============================================================================
// Powiaty Converter - Field Transformations
// =============================================================================
//
// This module converts raw cell values into DistrictRecord fields.
//
// TERYT CODES:
//   The workbook identifies a powiat by a 4-digit województwo+powiat code
//   (e.g. 1465 for Warszawa). The TERYT registry uses 7 characters
//   (województwo+powiat+gmina+type), so the code is zero-padded to 4 digits
//   and the "000" suffix is appended:
//
//     205  -> "0205000"
//     1465 -> "1465000"
//
//   A missing code, or a code of 0, produces no TERYT (JSON null).
//
// =============================================================================

package converter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// =============================================================================
// TERYT CODES
// =============================================================================

// FormatTeryt renders a 4-digit source code as a TERYT code.
func FormatTeryt(code int, suffix string) string {
	return fmt.Sprintf("%04d%s", code, suffix)
}

// ParseTeryt converts a raw code cell into a TERYT code.
//
// PARAMETERS:
//   - raw: The raw cell value. Numeric cells arrive as e.g. "1465" or "1465.0".
//   - suffix: The literal appended to the padded code.
//
// RETURNS:
//   - A pointer to the TERYT code, or nil if the cell is empty or zero.
//   - An error if the cell is not numeric or does not fit an int64.
func ParseTeryt(raw, suffix string) (*string, error) {
	value, err := ParseOptionalFloat(raw)
	if err != nil || value == nil {
		return nil, err
	}

	truncated := math.Trunc(*value)
	if truncated < math.MinInt64 || truncated >= math.MaxInt64 {
		return nil, fmt.Errorf("value %q is out of range for a code", strings.TrimSpace(raw))
	}

	code := int(truncated)
	if code == 0 {
		return nil, nil
	}

	teryt := FormatTeryt(code, suffix)
	return &teryt, nil
}

// =============================================================================
// NUMERIC CELLS
// =============================================================================

// ParseOptionalFloat parses a raw numeric cell.
// An empty cell yields nil; a non-numeric or infinite cell is an error.
func ParseOptionalFloat(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(value, 0) {
		return nil, fmt.Errorf("value %q is not a number", raw)
	}
	if math.IsNaN(value) {
		return nil, nil
	}
	return &value, nil
}

// =============================================================================
// NAMES
// =============================================================================

// NormalizeName trims the surrounding whitespace of a powiat name.
func NormalizeName(raw string) string {
	return strings.TrimSpace(raw)
}
