// =============================================================================
// Powiaty Converter - National Averages
// =============================================================================
//
// This module derives the national average pensions from the converted
// records and rounds them to 2 decimals.
//
// =============================================================================

package converter

import (
	"strconv"

	"github.com/ginjaninja78/powiaty-converter/internal/types"
)

// ComputeNationalAverages derives the national averages from the records.
//
// Male and female are means over the records where the value is present; an
// empty set gives 0. Overall is the mean of the unrounded male and female
// means, not a mean over all records. All three are rounded to 2 decimals.
func ComputeNationalAverages(records []types.DistrictRecord) types.NationalAverages {
	var maleSum, femaleSum float64
	var maleCount, femaleCount int

	for _, r := range records {
		if r.AvgPensionMale != nil {
			maleSum += *r.AvgPensionMale
			maleCount++
		}
		if r.AvgPensionFemale != nil {
			femaleSum += *r.AvgPensionFemale
			femaleCount++
		}
	}

	male := mean(maleSum, maleCount)
	female := mean(femaleSum, femaleCount)

	return types.NationalAverages{
		Overall: Round2((male + female) / 2),
		Male:    Round2(male),
		Female:  Round2(female),
	}
}

func mean(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Round2 rounds to 2 decimal places, half to even on the exact binary value
// (3000.375 -> 3000.38, 2.675 -> 2.67).
func Round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}
