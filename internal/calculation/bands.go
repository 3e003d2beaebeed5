package calculation

import (
	"github.com/shopspring/decimal"
)

// scoreBand is one interval of a piecewise-linear scoring table. A table is
// an ordered list of bands; band i covers (bands[i-1].upper, bands[i].upper]
// with the first band starting at zero. The score moves linearly from
// scoreAtLower at the interval start to scoreAtUpper at the interval end, so
// a single table expresses both rising scales (savings runway) and falling
// scales (expense ratio, DTI). Status label and color ride on the same row
// that produced the score, which keeps them from ever disagreeing.
type scoreBand struct {
	upper        decimal.Decimal
	scoreAtLower decimal.Decimal
	scoreAtUpper decimal.Decimal
	label        string
	color        string
}

// evaluateBands interpolates value against an ordered band table and returns
// the score together with the matched band. Values below zero clamp to the
// start of the first band; values beyond the last upper bound clamp to the
// end of the last band.
func evaluateBands(bands []scoreBand, value decimal.Decimal) (decimal.Decimal, scoreBand) {
	if value.IsNegative() {
		value = decimal.Zero
	}

	lower := decimal.Zero
	for _, band := range bands {
		if value.LessThanOrEqual(band.upper) {
			width := band.upper.Sub(lower)
			if width.IsZero() {
				return band.scoreAtUpper, band
			}
			fraction := value.Sub(lower).Div(width)
			score := band.scoreAtLower.Add(band.scoreAtUpper.Sub(band.scoreAtLower).Mul(fraction))
			return score, band
		}
		lower = band.upper
	}

	last := bands[len(bands)-1]
	return last.scoreAtUpper, last
}

// clampScore bounds a score to [0, 100].
func clampScore(score decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	if score.GreaterThan(hundred) {
		return hundred
	}
	if score.IsNegative() {
		return decimal.Zero
	}
	return score
}

// clampNonNegative floors a value at zero. Calculator inputs are normalized
// with this instead of rejected (fallback-over-throw policy).
func clampNonNegative(value decimal.Decimal) decimal.Decimal {
	if value.IsNegative() {
		return decimal.Zero
	}
	return value
}
