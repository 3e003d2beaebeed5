package calculation

import (
	"github.com/finpulse/finance-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Policy constants for the wealth projection. Risk profile return rates and
// the inflation rate are model assumptions, not user input.
var (
	riskProfileRates = map[domain.RiskProfile]decimal.Decimal{
		domain.RiskConservative: decimal.NewFromFloat(0.07),
		domain.RiskBalanced:     decimal.NewFromFloat(0.10),
		domain.RiskAggressive:   decimal.NewFromFloat(0.14),
	}

	annualInflationRate = decimal.NewFromFloat(0.06)
)

// AnnualReturnRate returns the fixed nominal annual return bound to a risk
// profile. Unknown values fall back to the balanced rate.
func AnnualReturnRate(rp domain.RiskProfile) decimal.Decimal {
	if rate, ok := riskProfileRates[rp]; ok {
		return rate
	}
	return riskProfileRates[domain.RiskBalanced]
}

// WealthProjectionCalculator computes closed-form compound growth of a
// lumpsum corpus plus a recurring monthly contribution (SIP).
type WealthProjectionCalculator struct{}

// NewWealthProjectionCalculator creates a new projection calculator.
func NewWealthProjectionCalculator() *WealthProjectionCalculator {
	return &WealthProjectionCalculator{}
}

// Project computes the future value after the given number of years.
// Lumpsum grows at annual compounding; contributions use the annuity-due
// formula at monthly compounding. RealValue deflates the nominal result by
// the fixed inflation constant. Negative inputs are clamped to zero.
func (c *WealthProjectionCalculator) Project(currentCorpus, monthlyContribution decimal.Decimal, years int, riskProfile domain.RiskProfile) domain.ProjectionResult {
	corpus := clampNonNegative(currentCorpus)
	monthly := clampNonNegative(monthlyContribution)
	if years < 0 {
		years = 0
	}

	one := decimal.NewFromInt(1)
	rate := AnnualReturnRate(riskProfile)
	yearsDec := decimal.NewFromInt(int64(years))
	months := decimal.NewFromInt(int64(years * 12))

	lumpsum := corpus.Mul(one.Add(rate).Pow(yearsDec))

	// Annuity-due: contributions land at the start of each month. The fixed
	// profile rates are never zero, but a zero rate must not divide by zero.
	monthlyRate := rate.Div(decimal.NewFromInt(12))
	var contributions decimal.Decimal
	if monthlyRate.IsZero() {
		contributions = monthly.Mul(months)
	} else {
		growth := one.Add(monthlyRate).Pow(months)
		contributions = monthly.Mul(growth.Sub(one)).Div(monthlyRate).Mul(one.Add(monthlyRate))
	}

	nominal := lumpsum.Add(contributions)
	invested := corpus.Add(monthly.Mul(months))
	real := nominal.Div(one.Add(annualInflationRate).Pow(yearsDec))

	return domain.ProjectionResult{
		NominalValue:   nominal,
		RealValue:      real,
		InvestedAmount: invested,
		Gain:           nominal.Sub(invested),
	}
}

// GrowthCurve produces one point per year from 0 to years inclusive for
// charting. It advances the corpus by simple annual re-compounding,
// (corpus + 12*monthly) * (1+rate), which is deliberately coarser than
// Project; use it for trend shape, not final figures.
func (c *WealthProjectionCalculator) GrowthCurve(currentCorpus, monthlyContribution decimal.Decimal, years int, riskProfile domain.RiskProfile) []domain.GrowthPoint {
	corpus := clampNonNegative(currentCorpus)
	monthly := clampNonNegative(monthlyContribution)
	if years < 0 {
		years = 0
	}

	one := decimal.NewFromInt(1)
	rate := AnnualReturnRate(riskProfile)
	annualContribution := monthly.Mul(decimal.NewFromInt(12))

	points := make([]domain.GrowthPoint, 0, years+1)
	value := corpus
	invested := corpus
	points = append(points, domain.GrowthPoint{Year: 0, ProjectedValue: value, InvestedValue: invested})

	for year := 1; year <= years; year++ {
		value = value.Add(annualContribution).Mul(one.Add(rate))
		invested = invested.Add(annualContribution)
		points = append(points, domain.GrowthPoint{Year: year, ProjectedValue: value, InvestedValue: invested})
	}

	return points
}
