package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/powiaty-converter/internal/types"
)

func TestParseTeryt(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"205", "0205000"},
		{"1234", "1234000"},
		{"1465", "1465000"},
		{"1465.0", "1465000"},
		{" 201 ", "0201000"},
		{"205.9", "0205000"},
		{"7", "0007000"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseTeryt(tt.raw, "000")
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
			assert.Len(t, *got, 7)
		})
	}
}

func TestParseTeryt_Absent(t *testing.T) {
	for _, raw := range []string{"", "   ", "0", "0.0"} {
		got, err := ParseTeryt(raw, "000")
		require.NoError(t, err)
		assert.Nil(t, got, "raw %q", raw)
	}
}

func TestParseTeryt_NotNumeric(t *testing.T) {
	_, err := ParseTeryt("14-65", "000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"14-65"`)
}

func TestParseTeryt_OutOfRange(t *testing.T) {
	for _, raw := range []string{"1e19", "-1e19", "9.3e18"} {
		got, err := ParseTeryt(raw, "000")
		require.Error(t, err, "raw %q", raw)
		assert.Nil(t, got)
		assert.Contains(t, err.Error(), "out of range")
	}

	for _, raw := range []string{"Inf", "-Inf", "+inf"} {
		_, err := ParseTeryt(raw, "000")
		require.Error(t, err, "raw %q", raw)
		assert.Contains(t, err.Error(), "not a number")
	}
}

func TestParseOptionalFloat(t *testing.T) {
	got, err := ParseOptionalFloat("3200.5")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3200.5, *got)

	got, err = ParseOptionalFloat("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseOptionalFloat("3 200,50")
	assert.Error(t, err)

	_, err = ParseOptionalFloat("Infinity")
	assert.Error(t, err)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "m. st. Warszawa", NormalizeName("\t m. st. Warszawa \n"))
}

func f(v float64) *float64 { return &v }

func TestComputeNationalAverages(t *testing.T) {
	t.Run("single record", func(t *testing.T) {
		got := ComputeNationalAverages([]types.DistrictRecord{
			{Name: "Warszawa", AvgPensionMale: f(3200.5), AvgPensionFemale: f(2800.25)},
		})
		assert.Equal(t, types.NationalAverages{Overall: 3000.38, Male: 3200.5, Female: 2800.25}, got)
	})

	t.Run("nulls are excluded from each mean", func(t *testing.T) {
		got := ComputeNationalAverages([]types.DistrictRecord{
			{Name: "A", AvgPensionMale: f(3000)},
			{Name: "B", AvgPensionMale: f(3001), AvgPensionFemale: f(2000)},
			{Name: "C"},
		})
		assert.Equal(t, 3000.5, got.Male)
		assert.Equal(t, 2000.0, got.Female)
		assert.Equal(t, 2500.25, got.Overall)
	})

	t.Run("no values yields zero", func(t *testing.T) {
		got := ComputeNationalAverages([]types.DistrictRecord{{Name: "A"}})
		assert.Equal(t, types.NationalAverages{}, got)

		got = ComputeNationalAverages(nil)
		assert.Equal(t, types.NationalAverages{}, got)
	})

	t.Run("overall is the mean of male and female", func(t *testing.T) {
		// Three male values, one female value: a mean over all values would
		// give (1000+1000+1000+4000)/4 = 1750.
		got := ComputeNationalAverages([]types.DistrictRecord{
			{Name: "A", AvgPensionMale: f(1000), AvgPensionFemale: f(4000)},
			{Name: "B", AvgPensionMale: f(1000)},
			{Name: "C", AvgPensionMale: f(1000)},
		})
		assert.Equal(t, 2500.0, got.Overall)
	})

	t.Run("means are rounded to two decimals", func(t *testing.T) {
		got := ComputeNationalAverages([]types.DistrictRecord{
			{Name: "A", AvgPensionMale: f(1), AvgPensionFemale: f(1)},
			{Name: "B", AvgPensionMale: f(1), AvgPensionFemale: f(2)},
			{Name: "C", AvgPensionMale: f(2), AvgPensionFemale: f(2)},
		})
		assert.Equal(t, 1.33, got.Male)
		assert.Equal(t, 1.67, got.Female)
		assert.Equal(t, 1.5, got.Overall)
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3000.38, Round2(3000.375))
	assert.Equal(t, 2.67, Round2(2.675))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 1.5, Round2(1.499999))
}
