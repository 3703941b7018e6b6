// =============================================================================
// Powiaty Converter - Shared Types
// =============================================================================
//
// This package contains the document types shared by the converter, the
// validator and the benchmark lookup. The JSON field names are the external
// contract of the generated file and must not change:
//
//   {
//     "version": "1.0.0",
//     "source": "pkt 6_emerytury_powiaty.xlsx",
//     "dataDate": "2024-12",
//     "description": "...",
//     "nationalAverage": { "overall": 0, "male": 0, "female": 0 },
//     "powiaty": [ { "name": "...", "teryt": "...", ... } ]
//   }
//
// =============================================================================

package types

// =============================================================================
// DOCUMENT TYPES
// =============================================================================

// OutputDocument is the JSON document produced by a conversion run.
// It is built once per run, written and discarded.
type OutputDocument struct {
	// Version is the document format version.
	Version string `json:"version"`

	// Source is the file name (not the full path) of the source workbook.
	Source string `json:"source"`

	// DataDate is the data vintage in YYYY-MM form.
	DataDate string `json:"dataDate"`

	// Description is a human-readable description of the data.
	Description string `json:"description"`

	// NationalAverage holds the derived national averages.
	NationalAverage NationalAverages `json:"nationalAverage"`

	// Powiaty holds one record per valid source row, in source order.
	Powiaty []DistrictRecord `json:"powiaty"`
}

// NationalAverages holds the national averages, each rounded to 2 decimals.
type NationalAverages struct {
	// Overall is the unweighted mean of Male and Female.
	Overall float64 `json:"overall"`

	// Male is the mean of all non-null male averages.
	Male float64 `json:"male"`

	// Female is the mean of all non-null female averages.
	Female float64 `json:"female"`
}

// DistrictRecord is the normalized record for a single powiat.
// Nil pointers serialize as JSON null.
type DistrictRecord struct {
	// Name is the trimmed powiat name.
	Name string `json:"name"`

	// Teryt is the 7-character TERYT code, or nil if the source had no code.
	Teryt *string `json:"teryt"`

	// AvgPensionMale is the average pension for men, if present.
	AvgPensionMale *float64 `json:"avgPensionMale"`

	// AvgPensionFemale is the average pension for women, if present.
	AvgPensionFemale *float64 `json:"avgPensionFemale"`
}

// TerytOrEmpty returns the TERYT code or an empty string when absent.
func (r DistrictRecord) TerytOrEmpty() string {
	if r.Teryt == nil {
		return ""
	}
	return *r.Teryt
}
