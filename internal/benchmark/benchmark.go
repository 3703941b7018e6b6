// =============================================================================
// Powiaty Converter - Benchmark Lookup
// =============================================================================
//
// This module answers benchmark questions against a generated powiaty
// document: what is the national average pension, and what is the average
// pension in a given powiat, optionally for one gender.
//
// QUERY RULES:
//   - gender "M" selects male values, "F" female values, empty the overall
//   - teryt, when given, must be exactly 7 digits
//   - for a powiat without gender the mean of its non-null male/female
//     values is used
//   - a powiat value is reported only when it is not null
//
// =============================================================================

package benchmark

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ginjaninja78/powiaty-converter/internal/types"
	"github.com/ginjaninja78/powiaty-converter/internal/validation"
)

// =============================================================================
// TYPES
// =============================================================================

// Gender selects gender-specific averages.
type Gender string

const (
	// GenderAny selects overall averages.
	GenderAny Gender = ""

	// GenderMale selects male averages.
	GenderMale Gender = "M"

	// GenderFemale selects female averages.
	GenderFemale Gender = "F"
)

// ErrInvalidQuery is returned for a malformed TERYT code or gender.
var ErrInvalidQuery = errors.New("invalid benchmark query")

// Query is a benchmark request.
type Query struct {
	// Teryt is the 7-digit code of the powiat, or empty for national only.
	Teryt string

	// Gender is GenderMale, GenderFemale or GenderAny.
	Gender Gender
}

// Result is the answer to a Query.
type Result struct {
	NationalAvgPension float64         `json:"nationalAvgPension"`
	PowiatAvgPension   *float64        `json:"powiatAvgPension,omitempty"`
	PowiatResolved     *PowiatResolved `json:"powiatResolved,omitempty"`
	GeneratedAt        string          `json:"generatedAt"`
}

// PowiatResolved identifies the powiat a result was computed for.
type PowiatResolved struct {
	Name  string `json:"name"`
	Teryt string `json:"teryt"`
}

// Dataset is a loaded powiaty document.
type Dataset struct {
	doc *types.OutputDocument

	// now is replaced in tests.
	now func() time.Time
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads a powiaty document from a JSON file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read powiaty data: %w", err)
	}

	var doc types.OutputDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse powiaty data %s: %w", path, err)
	}

	return NewDataset(&doc), nil
}

// NewDataset wraps an in-memory document.
func NewDataset(doc *types.OutputDocument) *Dataset {
	return &Dataset{doc: doc, now: time.Now}
}

// Document returns the underlying document.
func (d *Dataset) Document() *types.OutputDocument {
	return d.doc
}

// =============================================================================
// LOOKUPS
// =============================================================================

// FindByTeryt returns the first powiat with the given TERYT code.
func (d *Dataset) FindByTeryt(teryt string) (types.DistrictRecord, bool) {
	if teryt == "" {
		return types.DistrictRecord{}, false
	}
	for _, p := range d.doc.Powiaty {
		if p.TerytOrEmpty() == teryt {
			return p, true
		}
	}
	return types.DistrictRecord{}, false
}

// NationalAverage returns the national average for a gender.
func (d *Dataset) NationalAverage(g Gender) float64 {
	switch g {
	case GenderMale:
		return d.doc.NationalAverage.Male
	case GenderFemale:
		return d.doc.NationalAverage.Female
	default:
		return d.doc.NationalAverage.Overall
	}
}

// PowiatAverage returns the average pension of a powiat for a gender, or
// nil when the value is not known.
func PowiatAverage(p types.DistrictRecord, g Gender) *float64 {
	switch g {
	case GenderMale:
		return p.AvgPensionMale
	case GenderFemale:
		return p.AvgPensionFemale
	}

	var sum float64
	var n int
	for _, v := range []*float64{p.AvgPensionMale, p.AvgPensionFemale} {
		if v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

// =============================================================================
// CALCULATION
// =============================================================================

// Validate checks the query fields.
func (q Query) Validate() error {
	if q.Teryt != "" && !validation.ValidTeryt(q.Teryt) {
		return fmt.Errorf("%w: TERYT code %q must be exactly 7 digits", ErrInvalidQuery, q.Teryt)
	}
	switch q.Gender {
	case GenderAny, GenderMale, GenderFemale:
	default:
		return fmt.Errorf("%w: gender %q must be M or F", ErrInvalidQuery, q.Gender)
	}
	return nil
}

// Calculate computes the benchmark values for a query.
//
// RETURNS:
//   - The Result. PowiatAvgPension and PowiatResolved are set only when the
//     powiat exists and has a value for the requested gender.
//   - An error wrapping ErrInvalidQuery if the query is malformed.
func (d *Dataset) Calculate(q Query) (*Result, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	result := &Result{
		NationalAvgPension: d.NationalAverage(q.Gender),
		GeneratedAt:        d.now().UTC().Format(time.RFC3339),
	}

	if q.Teryt == "" {
		return result, nil
	}

	p, ok := d.FindByTeryt(q.Teryt)
	if !ok {
		return result, nil
	}

	if avg := PowiatAverage(p, q.Gender); avg != nil {
		result.PowiatAvgPension = avg
		result.PowiatResolved = &PowiatResolved{Name: p.Name, Teryt: q.Teryt}
	}

	return result, nil
}
