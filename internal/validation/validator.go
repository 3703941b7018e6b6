// =============================================================================
// Powiaty Converter - Validation Engine
// =============================================================================
//
// This module checks a powiaty document against the rules its consumers rely
// on. It is run on every freshly converted document and by the 'validate'
// command on a file already on disk.
//
// RULES:
//   Document-level:
//     - version, source and description are non-empty
//     - dataDate is in YYYY-MM form
//     - national averages are non-negative
//   Record-level:
//     - teryt, when present, is exactly 7 digits
//     - avgPensionMale / avgPensionFemale, when present, are non-negative
//     - teryt is not repeated (warning)
//     - teryt is missing (warning)
//     - name is empty (warning)
//
// ERROR HANDLING:
//   - Errors are collected, not returned on first failure
//   - Each error includes the record index, field and offending value
//
// =============================================================================

package validation

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/ginjaninja78/powiaty-converter/internal/types"
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

const (
	// SeverityError marks a rule violation that makes the document unusable.
	SeverityError = "error"

	// SeverityWarning marks a suspicious but usable value.
	SeverityWarning = "warning"
)

var (
	terytPattern    = regexp.MustCompile(`^\d{7}$`)
	dataDatePattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
)

// ValidationError represents a single validation finding.
type ValidationError struct {
	// Severity is SeverityError or SeverityWarning.
	Severity string

	// Index is the position of the record in "powiaty", or -1 for
	// document-level fields.
	Index int

	// Field is the JSON name of the field that failed validation.
	Field string

	// Value is the offending value, rendered as text.
	Value string

	// Message is a human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("[%s] Field '%s': %s (value: '%s')",
			strings.ToUpper(e.Severity), e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("[%s] Powiat %d, Field '%s': %s (value: '%s')",
		strings.ToUpper(e.Severity), e.Index, e.Field, e.Message, e.Value)
}

// =============================================================================
// VALIDATION RESULT
// =============================================================================

// ValidationResult contains the results of validation.
type ValidationResult struct {
	// IsValid is true if there are no errors (warnings are allowed).
	IsValid bool

	// Errors contains all findings, including warnings.
	Errors []*ValidationError

	// ErrorCount is the number of SeverityError findings.
	ErrorCount int

	// WarningCount is the number of SeverityWarning findings.
	WarningCount int

	// RecordsValidated is the number of powiat records checked.
	RecordsValidated int
}

// =============================================================================
// VALIDATION FUNCTIONS
// =============================================================================

// ValidateDocument checks a document and returns every finding.
func ValidateDocument(doc *types.OutputDocument) *ValidationResult {
	v := &collector{}

	if doc.Version == "" {
		v.add(SeverityError, -1, "version", doc.Version, "must not be empty")
	}
	if doc.Source == "" {
		v.add(SeverityError, -1, "source", doc.Source, "must not be empty")
	}
	if doc.Description == "" {
		v.add(SeverityError, -1, "description", doc.Description, "must not be empty")
	}
	if !dataDatePattern.MatchString(doc.DataDate) {
		v.add(SeverityError, -1, "dataDate", doc.DataDate, "must be in YYYY-MM form")
	}

	na := doc.NationalAverage
	v.nonNegative(-1, "nationalAverage.overall", &na.Overall)
	v.nonNegative(-1, "nationalAverage.male", &na.Male)
	v.nonNegative(-1, "nationalAverage.female", &na.Female)

	seen := make(map[string]int, len(doc.Powiaty))
	for i, p := range doc.Powiaty {
		ValidateRecord(i, p, v.add)

		if p.Teryt == nil {
			continue
		}
		if first, dup := seen[*p.Teryt]; dup {
			v.add(SeverityWarning, i, "teryt", *p.Teryt,
				fmt.Sprintf("duplicates the code of powiat %d", first))
			continue
		}
		seen[*p.Teryt] = i
	}

	result := &ValidationResult{
		Errors:           v.errors,
		RecordsValidated: len(doc.Powiaty),
	}
	for _, e := range v.errors {
		if e.Severity == SeverityError {
			result.ErrorCount++
		} else {
			result.WarningCount++
		}
	}
	result.IsValid = result.ErrorCount == 0

	return result
}

// ReportFunc receives a single validation finding.
type ReportFunc func(severity string, index int, field, value, message string)

// ValidateRecord checks a single powiat record and reports each finding.
func ValidateRecord(index int, p types.DistrictRecord, report ReportFunc) {
	if strings.TrimSpace(p.Name) == "" {
		report(SeverityWarning, index, "name", p.Name, "must not be empty")
	}

	if p.Teryt == nil {
		report(SeverityWarning, index, "teryt", "null", "no TERYT code")
	} else if !ValidTeryt(*p.Teryt) {
		report(SeverityError, index, "teryt", *p.Teryt, "must be exactly 7 digits")
	}

	pensions := []struct {
		field string
		value *float64
	}{
		{"avgPensionMale", p.AvgPensionMale},
		{"avgPensionFemale", p.AvgPensionFemale},
	}
	for _, pension := range pensions {
		if pension.value != nil && *pension.value < 0 {
			report(SeverityError, index, pension.field, formatFloat(*pension.value), "must not be negative")
		}
	}
}

// ValidTeryt reports whether code is a 7-digit TERYT code.
func ValidTeryt(code string) bool {
	return terytPattern.MatchString(code)
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

type collector struct {
	errors []*ValidationError
}

func (c *collector) add(severity string, index int, field, value, message string) {
	c.errors = append(c.errors, &ValidationError{
		Severity: severity,
		Index:    index,
		Field:    field,
		Value:    value,
		Message:  message,
	})
}

func (c *collector) nonNegative(index int, field string, value *float64) {
	if value != nil && *value < 0 {
		c.add(SeverityError, index, field, formatFloat(*value), "must not be negative")
	}
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}

// =============================================================================
// ERROR OUTPUT
// =============================================================================

// FormatErrors formats validation errors for display or logging.
//
// PARAMETERS:
//   - errors: The validation errors to format.
//
// RETURNS:
//   - A formatted string containing all errors.
func FormatErrors(errors []*ValidationError) string {
	if len(errors) == 0 {
		return "No validation errors."
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("Validation completed with %d finding(s):\n\n", len(errors)))

	for i, err := range errors {
		builder.WriteString(fmt.Sprintf("%d. %s\n", i+1, err.Error()))
	}

	return builder.String()
}

// WriteErrorLog writes validation errors to a log file.
//
// PARAMETERS:
//   - errors: The validation errors to write.
//   - filePath: The path to the output file.
//
// RETURNS:
//   - An error if writing fails.
func WriteErrorLog(errors []*ValidationError, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create error log: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	writer.WriteString(FormatErrors(errors))
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush error log: %w", err)
	}
	return nil
}
