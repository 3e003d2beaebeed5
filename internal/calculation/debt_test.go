package calculation

import (
	"testing"

	"github.com/finpulse/finance-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSingleDebtAmortization reproduces the standard amortization of one
// debt: 50,000 at 18% APR with a 2,000 minimum payment pays off in 32 months
// with 13,139.64 total interest (re-derivable by spreadsheet amortization).
func TestSingleDebtAmortization(t *testing.T) {
	debts := []domain.Debt{
		{Name: "card", Balance: decimal.NewFromInt(50000), AnnualRate: decimal.NewFromFloat(0.18), MinPayment: decimal.NewFromInt(2000)},
	}

	sim := NewDebtPayoffSimulator()
	result := sim.Simulate(debts, decimal.Zero, domain.StrategyAvalanche)

	assert.Equal(t, 32, result.MonthsToPayoff)
	assert.Len(t, result.History, 32)

	expectedInterest := decimal.NewFromFloat(13139.64)
	assert.True(t, result.TotalInterestPaid.Sub(expectedInterest).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"expected interest %s, got %s", expectedInterest, result.TotalInterestPaid.StringFixed(2))

	last := result.History[len(result.History)-1]
	assert.True(t, last.RemainingDebt.IsZero(), "final balance should be exactly zero, got %s", last.RemainingDebt)
	assert.True(t, last.CumulativeInterest.Equal(result.TotalInterestPaid))
	assert.False(t, result.IsCapped())
}

// TestAvalancheBeatsSnowball checks the optimality property: for the same
// debts and extra payment, avalanche never pays more interest than snowball.
func TestAvalancheBeatsSnowball(t *testing.T) {
	debts := []domain.Debt{
		{Name: "card", Balance: decimal.NewFromInt(80000), AnnualRate: decimal.NewFromFloat(0.24), MinPayment: decimal.NewFromInt(2500)},
		{Name: "car", Balance: decimal.NewFromInt(150000), AnnualRate: decimal.NewFromFloat(0.09), MinPayment: decimal.NewFromInt(4000)},
		{Name: "personal", Balance: decimal.NewFromInt(40000), AnnualRate: decimal.NewFromFloat(0.14), MinPayment: decimal.NewFromInt(1500)},
	}
	extra := decimal.NewFromInt(3000)

	sim := NewDebtPayoffSimulator()
	avalanche := sim.Simulate(debts, extra, domain.StrategyAvalanche)
	snowball := sim.Simulate(debts, extra, domain.StrategySnowball)

	assert.Equal(t, 29, avalanche.MonthsToPayoff)
	assert.Equal(t, 29, snowball.MonthsToPayoff)

	assert.True(t, avalanche.TotalInterestPaid.LessThanOrEqual(snowball.TotalInterestPaid),
		"avalanche interest %s should not exceed snowball interest %s",
		avalanche.TotalInterestPaid.StringFixed(2), snowball.TotalInterestPaid.StringFixed(2))

	// Reference values from an independent rational-arithmetic amortization.
	assert.True(t, avalanche.TotalInterestPaid.Sub(decimal.NewFromFloat(43710.22)).Abs().LessThan(decimal.NewFromInt(1)))
	assert.True(t, snowball.TotalInterestPaid.Sub(decimal.NewFromFloat(47594.95)).Abs().LessThan(decimal.NewFromInt(1)))
}

// TestBalanceMonotonicallyDecreases: with adequate payments the remaining
// total debt never rises month over month.
func TestBalanceMonotonicallyDecreases(t *testing.T) {
	debts := []domain.Debt{
		{Name: "a", Balance: decimal.NewFromInt(60000), AnnualRate: decimal.NewFromFloat(0.18), MinPayment: decimal.NewFromInt(2000)},
		{Name: "b", Balance: decimal.NewFromInt(30000), AnnualRate: decimal.NewFromFloat(0.10), MinPayment: decimal.NewFromInt(1000)},
	}

	result := NewDebtPayoffSimulator().Simulate(debts, decimal.NewFromInt(500), domain.StrategySnowball)
	require.NotEmpty(t, result.History)

	previous := result.History[0].RemainingDebt
	for _, point := range result.History[1:] {
		assert.True(t, point.RemainingDebt.LessThanOrEqual(previous),
			"month %d: balance %s rose above previous %s", point.Month, point.RemainingDebt, previous)
		previous = point.RemainingDebt
	}

	// Cumulative interest only ever grows.
	previousInterest := decimal.Zero
	for _, point := range result.History {
		assert.True(t, point.CumulativeInterest.GreaterThanOrEqual(previousInterest))
		previousInterest = point.CumulativeInterest
	}
}

func TestSimulateEdgeCases(t *testing.T) {
	sim := NewDebtPayoffSimulator()

	t.Run("empty debt list", func(t *testing.T) {
		result := sim.Simulate(nil, decimal.NewFromInt(5000), domain.StrategyAvalanche)
		assert.Equal(t, 0, result.MonthsToPayoff)
		assert.Empty(t, result.History)
		assert.True(t, result.TotalInterestPaid.IsZero())
	})

	t.Run("negative extra payment treated as zero", func(t *testing.T) {
		debts := []domain.Debt{
			{Name: "a", Balance: decimal.NewFromInt(10000), AnnualRate: decimal.NewFromFloat(0.12), MinPayment: decimal.NewFromInt(500)},
		}
		withNegative := sim.Simulate(debts, decimal.NewFromInt(-1000), domain.StrategyAvalanche)
		withZero := sim.Simulate(debts, decimal.Zero, domain.StrategyAvalanche)

		assert.Equal(t, withZero.MonthsToPayoff, withNegative.MonthsToPayoff)
		assert.True(t, withNegative.TotalInterestPaid.Equal(withZero.TotalInterestPaid))
	})

	t.Run("zero interest debt accrues nothing", func(t *testing.T) {
		debts := []domain.Debt{
			{Name: "loan", Balance: decimal.NewFromInt(12000), AnnualRate: decimal.Zero, MinPayment: decimal.NewFromInt(1000)},
		}
		result := sim.Simulate(debts, decimal.Zero, domain.StrategyAvalanche)
		assert.Equal(t, 12, result.MonthsToPayoff)
		assert.True(t, result.TotalInterestPaid.IsZero())
	})

	t.Run("zero rate sorts last under avalanche", func(t *testing.T) {
		// Extra payments go to the 20% debt first; the interest-free debt only
		// sees its minimum until the other is cleared.
		debts := []domain.Debt{
			{Name: "free", Balance: decimal.NewFromInt(10000), AnnualRate: decimal.Zero, MinPayment: decimal.NewFromInt(100)},
			{Name: "costly", Balance: decimal.NewFromInt(10000), AnnualRate: decimal.NewFromFloat(0.20), MinPayment: decimal.NewFromInt(100)},
		}
		avalanche := sim.Simulate(debts, decimal.NewFromInt(2000), domain.StrategyAvalanche)
		snowball := sim.Simulate(debts, decimal.NewFromInt(2000), domain.StrategySnowball)
		assert.True(t, avalanche.TotalInterestPaid.LessThanOrEqual(snowball.TotalInterestPaid))
	})
}

// TestUnpayableDebtHitsCap documents the fallback-over-throw policy: a debt
// whose interest outruns its payments terminates at the 360-month cap and is
// reported as a normal result with a positive final balance, not an error.
func TestUnpayableDebtHitsCap(t *testing.T) {
	debts := []domain.Debt{
		{Name: "spiral", Balance: decimal.NewFromInt(100000), AnnualRate: decimal.NewFromFloat(0.30), MinPayment: decimal.NewFromInt(100)},
	}

	result := NewDebtPayoffSimulator().Simulate(debts, decimal.Zero, domain.StrategyAvalanche)

	assert.Equal(t, domain.MaxPayoffMonths, result.MonthsToPayoff)
	assert.Len(t, result.History, domain.MaxPayoffMonths)
	assert.True(t, result.IsCapped())
	assert.True(t, result.History[len(result.History)-1].RemainingDebt.GreaterThan(decimal.NewFromInt(100000)),
		"balance should have grown past the principal")
}

// TestUnknownStrategyNormalizesToAvalanche: strategy values outside the
// closed enum are normalized before the loop, so a bogus value produces the
// avalanche result rather than some accidental third ordering.
func TestUnknownStrategyNormalizesToAvalanche(t *testing.T) {
	debts := []domain.Debt{
		{Name: "low rate", Balance: decimal.NewFromInt(5000), AnnualRate: decimal.NewFromFloat(0.08), MinPayment: decimal.NewFromInt(200)},
		{Name: "high rate", Balance: decimal.NewFromInt(30000), AnnualRate: decimal.NewFromFloat(0.22), MinPayment: decimal.NewFromInt(600)},
	}

	sim := NewDebtPayoffSimulator()
	avalanche := sim.Simulate(debts, decimal.NewFromInt(1500), domain.StrategyAvalanche)
	bogus := sim.Simulate(debts, decimal.NewFromInt(1500), domain.PayoffStrategy("landslide"))

	assert.Equal(t, avalanche.MonthsToPayoff, bogus.MonthsToPayoff)
	assert.True(t, bogus.TotalInterestPaid.Equal(avalanche.TotalInterestPaid))
	require.Len(t, bogus.History, len(avalanche.History))
	for i := range avalanche.History {
		assert.True(t, bogus.History[i].RemainingDebt.Equal(avalanche.History[i].RemainingDebt))
	}
}

// TestSimulateDoesNotMutateInput: the simulator works on a clone; the
// caller's slice must come back untouched.
func TestSimulateDoesNotMutateInput(t *testing.T) {
	debts := []domain.Debt{
		{Name: "a", Balance: decimal.NewFromInt(50000), AnnualRate: decimal.NewFromFloat(0.18), MinPayment: decimal.NewFromInt(2000)},
		{Name: "b", Balance: decimal.NewFromInt(20000), AnnualRate: decimal.NewFromFloat(0.10), MinPayment: decimal.NewFromInt(800)},
	}
	originals := make([]domain.Debt, len(debts))
	copy(originals, debts)

	NewDebtPayoffSimulator().Simulate(debts, decimal.NewFromInt(1000), domain.StrategySnowball)

	for i := range debts {
		assert.Equal(t, originals[i].Name, debts[i].Name)
		assert.True(t, debts[i].Balance.Equal(originals[i].Balance))
		assert.True(t, debts[i].AnnualRate.Equal(originals[i].AnnualRate))
		assert.True(t, debts[i].MinPayment.Equal(originals[i].MinPayment))
	}
}

// TestTerminationBound: monthsToPayoff never exceeds the cap and always
// matches the history length, for a spread of inputs.
func TestTerminationBound(t *testing.T) {
	tests := []struct {
		name  string
		debts []domain.Debt
		extra decimal.Decimal
	}{
		{
			name: "comfortably payable",
			debts: []domain.Debt{
				{Name: "a", Balance: decimal.NewFromInt(5000), AnnualRate: decimal.NewFromFloat(0.08), MinPayment: decimal.NewFromInt(500)},
			},
			extra: decimal.NewFromInt(1000),
		},
		{
			name: "barely payable",
			debts: []domain.Debt{
				{Name: "a", Balance: decimal.NewFromInt(200000), AnnualRate: decimal.NewFromFloat(0.20), MinPayment: decimal.NewFromInt(3500)},
			},
			extra: decimal.Zero,
		},
		{
			name: "not payable",
			debts: []domain.Debt{
				{Name: "a", Balance: decimal.NewFromInt(500000), AnnualRate: decimal.NewFromFloat(0.36), MinPayment: decimal.NewFromInt(1000)},
			},
			extra: decimal.Zero,
		},
		{
			name: "sanitized negative inputs",
			debts: []domain.Debt{
				{Name: "a", Balance: decimal.NewFromInt(-5000), AnnualRate: decimal.NewFromFloat(-0.10), MinPayment: decimal.NewFromInt(-200)},
				{Name: "b", Balance: decimal.NewFromInt(1000), AnnualRate: decimal.NewFromFloat(0.05), MinPayment: decimal.NewFromInt(100)},
			},
			extra: decimal.NewFromInt(-50),
		},
	}

	sim := NewDebtPayoffSimulator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, strategy := range []domain.PayoffStrategy{domain.StrategyAvalanche, domain.StrategySnowball} {
				result := sim.Simulate(tt.debts, tt.extra, strategy)
				assert.LessOrEqual(t, result.MonthsToPayoff, domain.MaxPayoffMonths)
				assert.Len(t, result.History, result.MonthsToPayoff)
				assert.True(t, result.TotalInterestPaid.GreaterThanOrEqual(decimal.Zero))
			}
		})
	}
}
