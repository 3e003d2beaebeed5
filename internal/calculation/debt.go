package calculation

import (
	"sort"

	"github.com/finpulse/finance-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// DebtPayoffSimulator runs month-by-month amortization of a set of debts
// under a payment-ordering strategy. It is stateless and safe for concurrent
// use; every run clones its inputs.
type DebtPayoffSimulator struct {
	Logger Logger
}

// NewDebtPayoffSimulator creates a simulator with a no-op logger.
func NewDebtPayoffSimulator() *DebtPayoffSimulator {
	return &DebtPayoffSimulator{Logger: NopLogger{}}
}

// workingDebt is the simulator's mutable per-run view of one debt.
type workingDebt struct {
	name        string
	monthlyRate decimal.Decimal
	annualRate  decimal.Decimal
	minPayment  decimal.Decimal
	balance     decimal.Decimal
}

// Simulate amortizes the debts month by month until every balance reaches
// zero or domain.MaxPayoffMonths elapse. Each month it accrues interest,
// pays minimums, reorders the debts per the strategy, then applies the
// remaining budget (freed minimums plus the extra payment) greedily down the
// order. A negative extra payment is treated as zero; an unrecognized
// strategy is normalized to avalanche with a logged warning. The caller's
// slice is never mutated.
func (s *DebtPayoffSimulator) Simulate(debts []domain.Debt, extraMonthlyPayment decimal.Decimal, strategy domain.PayoffStrategy) domain.PayoffResult {
	result := domain.PayoffResult{
		TotalInterestPaid: decimal.Zero,
		History:           []domain.PayoffHistoryPoint{},
	}
	if len(debts) == 0 {
		return result
	}

	if !strategy.IsValid() {
		s.Logger.Warnf("unknown payoff strategy %q, using %s", strategy, domain.StrategyAvalanche)
		strategy = domain.StrategyAvalanche
	}

	extra := clampNonNegative(extraMonthlyPayment)
	twelve := decimal.NewFromInt(12)

	work := make([]workingDebt, len(debts))
	baseBudget := decimal.Zero
	for i, d := range debts {
		rate := clampNonNegative(d.AnnualRate)
		minPayment := clampNonNegative(d.MinPayment)
		work[i] = workingDebt{
			name:        d.Name,
			annualRate:  rate,
			monthlyRate: rate.Div(twelve),
			minPayment:  minPayment,
			balance:     clampNonNegative(d.Balance),
		}
		baseBudget = baseBudget.Add(minPayment)
	}

	totalInterest := decimal.Zero
	month := 0

	for month < domain.MaxPayoffMonths && anyOutstanding(work) {
		month++

		// Minimums of already-cleared debts stay in the budget; that roll-over
		// is the whole point of the snowball/avalanche framing.
		budget := baseBudget.Add(extra)

		for i := range work {
			if work[i].balance.IsPositive() {
				interest := work[i].balance.Mul(work[i].monthlyRate)
				work[i].balance = work[i].balance.Add(interest)
				totalInterest = totalInterest.Add(interest)
			}
		}

		for i := range work {
			if work[i].balance.IsPositive() {
				payment := decimal.Min(work[i].balance, work[i].minPayment)
				work[i].balance = work[i].balance.Sub(payment)
				budget = budget.Sub(payment)
			}
		}

		for _, i := range paymentOrder(work, strategy) {
			if !budget.IsPositive() {
				break
			}
			if work[i].balance.IsPositive() {
				payment := decimal.Min(work[i].balance, budget)
				work[i].balance = work[i].balance.Sub(payment)
				budget = budget.Sub(payment)
			}
		}

		result.History = append(result.History, domain.PayoffHistoryPoint{
			Month:              month,
			RemainingDebt:      totalBalance(work),
			CumulativeInterest: totalInterest,
		})
	}

	result.MonthsToPayoff = month
	result.TotalInterestPaid = totalInterest

	if result.IsCapped() {
		s.Logger.Warnf("debt plan hit the %d-month cap with %s still outstanding", domain.MaxPayoffMonths, totalBalance(work).StringFixed(2))
	}

	return result
}

// paymentOrder returns a freshly sorted index view of the working debts for
// one month's extra allocation. Sorting indices keeps the working list in
// input order, so snowball ties resolve to original input order (the sort is
// stable).
func paymentOrder(work []workingDebt, strategy domain.PayoffStrategy) []int {
	order := make([]int, len(work))
	for i := range order {
		order[i] = i
	}
	switch strategy {
	case domain.StrategySnowball:
		sort.SliceStable(order, func(a, b int) bool {
			return work[order[a]].balance.LessThan(work[order[b]].balance)
		})
	case domain.StrategyAvalanche:
		// Highest rate first, zero-rate debts sort last. Simulate normalizes
		// unknown strategy values before the loop, so these two cases are
		// exhaustive.
		sort.SliceStable(order, func(a, b int) bool {
			return work[order[a]].annualRate.GreaterThan(work[order[b]].annualRate)
		})
	}
	return order
}

func anyOutstanding(work []workingDebt) bool {
	for i := range work {
		if work[i].balance.IsPositive() {
			return true
		}
	}
	return false
}

func totalBalance(work []workingDebt) decimal.Decimal {
	total := decimal.Zero
	for i := range work {
		if work[i].balance.IsPositive() {
			total = total.Add(work[i].balance)
		}
	}
	return total
}
