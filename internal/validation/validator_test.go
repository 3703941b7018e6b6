package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/powiaty-converter/internal/types"
)

func strPtr(s string) *string       { return &s }
func floatPtr(f float64) *float64 { return &f }

func validDocument() *types.OutputDocument {
	return &types.OutputDocument{
		Version:         "1.0.0",
		Source:          "pkt 6_emerytury_powiaty.xlsx",
		DataDate:        "2024-12",
		Description:     "Average pension amounts by powiat (district) in Poland",
		NationalAverage: types.NationalAverages{Overall: 3000.38, Male: 3200.5, Female: 2800.25},
		Powiaty: []types.DistrictRecord{
			{Name: "Warszawa", Teryt: strPtr("1465000"), AvgPensionMale: floatPtr(3200.5), AvgPensionFemale: floatPtr(2800.25)},
		},
	}
}

func TestValidateDocument_Valid(t *testing.T) {
	result := ValidateDocument(validDocument())

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 1, result.RecordsValidated)
}

func TestValidateDocument_RecordErrors(t *testing.T) {
	doc := validDocument()
	doc.Powiaty = append(doc.Powiaty,
		types.DistrictRecord{Name: "", Teryt: strPtr("205000")},
		types.DistrictRecord{Name: "Bolesławiecki", Teryt: strPtr("0201000"), AvgPensionFemale: floatPtr(-1)},
	)

	result := ValidateDocument(doc)

	assert.False(t, result.IsValid)
	assert.Equal(t, 2, result.ErrorCount)
	assert.Equal(t, 1, result.WarningCount)

	fields := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"name", "teryt", "avgPensionFemale"}, fields)
	assert.Equal(t, 1, result.Errors[0].Index)
	assert.Equal(t, SeverityWarning, result.Errors[0].Severity)
	assert.Equal(t, 2, result.Errors[2].Index)
}

func TestValidateDocument_Warnings(t *testing.T) {
	doc := validDocument()
	doc.Powiaty = append(doc.Powiaty,
		types.DistrictRecord{Name: "Warszawa (duplikat)", Teryt: strPtr("1465000")},
		types.DistrictRecord{Name: "Bez kodu"},
	)

	result := ValidateDocument(doc)

	assert.True(t, result.IsValid)
	assert.Equal(t, 2, result.WarningCount)
	assert.Contains(t, result.Errors[0].Message, "powiat 0")
	assert.Equal(t, "null", result.Errors[1].Value)
}

func TestValidateDocument_Metadata(t *testing.T) {
	doc := validDocument()
	doc.Version = ""
	doc.DataDate = "12-2024"
	doc.NationalAverage.Male = -5

	result := ValidateDocument(doc)

	require.Equal(t, 3, result.ErrorCount)
	for _, e := range result.Errors {
		assert.Equal(t, -1, e.Index)
	}
	assert.Contains(t, result.Errors[0].Error(), "Field 'version'")
}

func TestValidTeryt(t *testing.T) {
	assert.True(t, ValidTeryt("0205000"))
	assert.False(t, ValidTeryt("205000"))
	assert.False(t, ValidTeryt("02050000"))
	assert.False(t, ValidTeryt("02O5000"))
}

func TestWriteErrorLog(t *testing.T) {
	doc := validDocument()
	doc.Powiaty[0].Teryt = strPtr("abc")
	result := ValidateDocument(doc)

	path := filepath.Join(t.TempDir(), "errors.txt")
	require.NoError(t, WriteErrorLog(result.Errors, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1 finding(s)")
	assert.Contains(t, string(data), "[ERROR] Powiat 0, Field 'teryt'")
	assert.Equal(t, "No validation errors.", FormatErrors(nil))
}
