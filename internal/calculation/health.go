package calculation

import (
	"fmt"

	"github.com/finpulse/finance-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Factor weights of the composite health score. They sum to 1.
var (
	weightCashFlow     = decimal.NewFromFloat(0.40)
	weightSavings      = decimal.NewFromFloat(0.20)
	weightDebtPressure = decimal.NewFromFloat(0.20)
	weightGoalProgress = decimal.NewFromFloat(0.20)
)

// Expense ratio (totalExpenses / monthlyIncome): lower is better. The last
// band saturates at a ratio of 1.5, beyond which the score is pinned to 0.
var cashFlowBands = []scoreBand{
	{upper: decimal.NewFromFloat(0.40), scoreAtLower: decimal.NewFromInt(100), scoreAtUpper: decimal.NewFromInt(85), label: "Excellent", color: "#16a34a"},
	{upper: decimal.NewFromFloat(0.60), scoreAtLower: decimal.NewFromInt(85), scoreAtUpper: decimal.NewFromInt(65), label: "Good", color: "#65a30d"},
	{upper: decimal.NewFromFloat(0.80), scoreAtLower: decimal.NewFromInt(65), scoreAtUpper: decimal.NewFromInt(45), label: "Fair", color: "#d97706"},
	{upper: decimal.NewFromFloat(0.95), scoreAtLower: decimal.NewFromInt(45), scoreAtUpper: decimal.NewFromInt(20), label: "Strained", color: "#ea580c"},
	{upper: decimal.NewFromFloat(1.00), scoreAtLower: decimal.NewFromInt(20), scoreAtUpper: decimal.NewFromInt(5), label: "Critical", color: "#dc2626"},
	{upper: decimal.NewFromFloat(1.50), scoreAtLower: decimal.NewFromInt(5), scoreAtUpper: decimal.NewFromInt(0), label: "Severe", color: "#991b1b"},
}

// Savings runway in months of burn: higher is better. Saturates at 24 months.
var savingsBands = []scoreBand{
	{upper: decimal.NewFromInt(1), scoreAtLower: decimal.NewFromInt(0), scoreAtUpper: decimal.NewFromInt(25), label: "Critical", color: "#dc2626"},
	{upper: decimal.NewFromInt(3), scoreAtLower: decimal.NewFromInt(25), scoreAtUpper: decimal.NewFromInt(50), label: "Low", color: "#ea580c"},
	{upper: decimal.NewFromInt(6), scoreAtLower: decimal.NewFromInt(50), scoreAtUpper: decimal.NewFromInt(75), label: "Fair", color: "#d97706"},
	{upper: decimal.NewFromInt(12), scoreAtLower: decimal.NewFromInt(75), scoreAtUpper: decimal.NewFromInt(95), label: "Good", color: "#65a30d"},
	{upper: decimal.NewFromInt(24), scoreAtLower: decimal.NewFromInt(95), scoreAtUpper: decimal.NewFromInt(100), label: "Excellent", color: "#16a34a"},
}

// Debt-to-income ratio: lower is better. Saturates at a DTI of 1.0.
var debtPressureBands = []scoreBand{
	{upper: decimal.NewFromFloat(0.10), scoreAtLower: decimal.NewFromInt(100), scoreAtUpper: decimal.NewFromInt(85), label: "Excellent", color: "#16a34a"},
	{upper: decimal.NewFromFloat(0.20), scoreAtLower: decimal.NewFromInt(85), scoreAtUpper: decimal.NewFromInt(65), label: "Good", color: "#65a30d"},
	{upper: decimal.NewFromFloat(0.35), scoreAtLower: decimal.NewFromInt(65), scoreAtUpper: decimal.NewFromInt(40), label: "Elevated", color: "#d97706"},
	{upper: decimal.NewFromFloat(0.50), scoreAtLower: decimal.NewFromInt(40), scoreAtUpper: decimal.NewFromInt(15), label: "High", color: "#ea580c"},
	{upper: decimal.NewFromInt(1), scoreAtLower: decimal.NewFromInt(15), scoreAtUpper: decimal.NewFromInt(0), label: "Severe", color: "#991b1b"},
}

// fallbackMonthlyBurn covers the degenerate profile with neither expenses nor
// income; the runway denominator must stay positive.
var fallbackMonthlyBurn = decimal.NewFromInt(20000)

// Absolute monthly surplus thresholds for the stability bonus. Pure ratio
// scoring undervalues large absolute surpluses; the bonus compensates.
var stabilityTiers = []struct {
	surplus decimal.Decimal
	bonus   decimal.Decimal
}{
	{surplus: decimal.NewFromInt(500000), bonus: decimal.NewFromInt(15)},
	{surplus: decimal.NewFromInt(100000), bonus: decimal.NewFromInt(10)},
	{surplus: decimal.NewFromInt(50000), bonus: decimal.NewFromInt(5)},
}

// FinancialHealthScorer computes the weighted multi-factor health score.
type FinancialHealthScorer struct {
	Logger Logger
}

// NewFinancialHealthScorer creates a scorer with a no-op logger.
func NewFinancialHealthScorer() *FinancialHealthScorer {
	return &FinancialHealthScorer{Logger: NopLogger{}}
}

// Score computes the four factor scores and their weighted composite plus
// the stability bonus, clamped to [0, 100] and rounded to the nearest
// integer. Status labels always come from the same band rows that produced
// the scores.
func (s *FinancialHealthScorer) Score(profile *domain.FinancialProfile) domain.HealthScore {
	factors := []domain.HealthFactor{
		s.scoreCashFlow(profile),
		s.scoreSavingsBuffer(profile),
		s.scoreDebtPressure(profile),
		s.scoreGoalProgress(profile),
	}

	total := decimal.Zero
	for _, f := range factors {
		total = total.Add(f.Score.Mul(f.Weight))
	}
	total = total.Add(s.stabilityBonus(profile))
	total = clampScore(total)

	score := int(total.Round(0).IntPart())
	return domain.HealthScore{
		TotalScore: score,
		Status:     scoreLabel(decimal.NewFromInt(int64(score))),
		Breakdown:  factors,
	}
}

func (s *FinancialHealthScorer) scoreCashFlow(profile *domain.FinancialProfile) domain.HealthFactor {
	income := clampNonNegative(profile.MonthlyIncome)
	expenses := profile.TotalExpenses()

	factor := domain.HealthFactor{
		ID:     "cash_flow",
		Label:  "Cash Flow",
		Weight: weightCashFlow,
	}

	if income.IsZero() {
		// Ratio undefined without income; neutral score instead of an error.
		factor.Score = decimal.NewFromInt(50)
		factor.Status = "Unknown"
		factor.Description = "No income recorded, cash flow cannot be assessed"
		factor.Color = "#6b7280"
		return factor
	}

	ratio := expenses.Div(income)
	score, band := evaluateBands(cashFlowBands, ratio)
	factor.Score = clampScore(score)
	factor.Status = band.label
	factor.Color = band.color
	factor.Description = fmt.Sprintf("Spending %s%% of monthly income", ratio.Mul(decimal.NewFromInt(100)).StringFixed(1))
	return factor
}

func (s *FinancialHealthScorer) scoreSavingsBuffer(profile *domain.FinancialProfile) domain.HealthFactor {
	savings := clampNonNegative(profile.CurrentSavings)
	burn := profile.TotalExpenses()
	if burn.IsZero() {
		burn = clampNonNegative(profile.MonthlyIncome).Mul(decimal.NewFromFloat(0.6))
	}
	if burn.IsZero() {
		burn = fallbackMonthlyBurn
	}

	monthsCovered := savings.Div(burn)
	score, band := evaluateBands(savingsBands, monthsCovered)

	// Hitting the user's own savings target earns a bonus on top of runway.
	if profile.SavingsGoal.IsPositive() && savings.GreaterThanOrEqual(profile.SavingsGoal) {
		score = score.Add(decimal.NewFromInt(10))
	}

	return domain.HealthFactor{
		ID:          "savings_buffer",
		Label:       "Savings Buffer",
		Score:       clampScore(score),
		Status:      band.label,
		Description: fmt.Sprintf("Savings cover %s months of expenses", monthsCovered.StringFixed(1)),
		Weight:      weightSavings,
		Color:       band.color,
	}
}

func (s *FinancialHealthScorer) scoreDebtPressure(profile *domain.FinancialProfile) domain.HealthFactor {
	factor := domain.HealthFactor{
		ID:     "debt_pressure",
		Label:  "Debt Pressure",
		Weight: weightDebtPressure,
	}

	if !profile.HasDebt() {
		factor.Score = decimal.NewFromInt(100)
		factor.Status = "Debt Free"
		factor.Description = "No outstanding debt"
		factor.Color = "#16a34a"
		return factor
	}

	income := clampNonNegative(profile.MonthlyIncome)
	if income.IsZero() {
		// Debt with no income to service it.
		factor.Score = decimal.NewFromInt(10)
		factor.Status = "Severe"
		factor.Description = "Debt outstanding with no income recorded"
		factor.Color = "#991b1b"
		return factor
	}

	dti := clampNonNegative(profile.DebtPaymentMonthly).Div(income)
	score, band := evaluateBands(debtPressureBands, dti)
	factor.Score = clampScore(score)
	factor.Status = band.label
	factor.Color = band.color
	factor.Description = fmt.Sprintf("Debt payments take %s%% of monthly income", dti.Mul(decimal.NewFromInt(100)).StringFixed(1))
	return factor
}

func (s *FinancialHealthScorer) scoreGoalProgress(profile *domain.FinancialProfile) domain.HealthFactor {
	goals := make([]domain.Goal, 0, len(profile.ShortTermGoals)+len(profile.LongTermGoals))
	goals = append(goals, profile.ShortTermGoals...)
	goals = append(goals, profile.LongTermGoals...)

	factor := domain.HealthFactor{
		ID:     "goal_progress",
		Label:  "Goal Progress",
		Weight: weightGoalProgress,
	}

	if len(goals) == 0 {
		factor.Score = decimal.NewFromInt(40)
		factor.Status = "No Goals"
		factor.Description = "No savings goals set yet"
		factor.Color = "#6b7280"
		return factor
	}

	progressSum := decimal.Zero
	completed := 0
	for _, g := range goals {
		progressSum = progressSum.Add(g.Progress())
		if g.IsCompleted {
			completed++
		}
	}

	average := progressSum.Div(decimal.NewFromInt(int64(len(goals))))
	completionBonus := decimal.Min(decimal.NewFromInt(20), decimal.NewFromInt(int64(10*completed)))
	score := clampScore(average.Mul(decimal.NewFromInt(80)).Add(completionBonus))

	factor.Score = score
	factor.Status = scoreLabel(score)
	factor.Description = fmt.Sprintf("Average goal progress %s%%, %d completed", average.Mul(decimal.NewFromInt(100)).StringFixed(0), completed)
	factor.Color = scoreColor(score)
	return factor
}

// stabilityBonus rewards large absolute monthly surpluses that ratio-based
// factors undervalue: 5/10/15 points by surplus tier, plus 5 more when the
// surplus alone covers expenses more than twice over.
func (s *FinancialHealthScorer) stabilityBonus(profile *domain.FinancialProfile) decimal.Decimal {
	surplus := profile.MonthlySurplus()
	if !surplus.IsPositive() {
		return decimal.Zero
	}

	bonus := decimal.Zero
	for _, tier := range stabilityTiers {
		if surplus.GreaterThanOrEqual(tier.surplus) {
			bonus = tier.bonus
			break
		}
	}

	expenses := profile.TotalExpenses()
	if expenses.IsPositive() && surplus.GreaterThan(expenses.Mul(decimal.NewFromInt(2))) {
		bonus = bonus.Add(decimal.NewFromInt(5))
	}

	return bonus
}

// scoreLabel maps a 0-100 score to a qualitative label, used for scores that
// are not produced by a ratio band table (goal progress, composite).
func scoreLabel(score decimal.Decimal) string {
	switch {
	case score.GreaterThanOrEqual(decimal.NewFromInt(80)):
		return "Excellent"
	case score.GreaterThanOrEqual(decimal.NewFromInt(60)):
		return "Good"
	case score.GreaterThanOrEqual(decimal.NewFromInt(40)):
		return "Fair"
	case score.GreaterThanOrEqual(decimal.NewFromInt(20)):
		return "Poor"
	default:
		return "Critical"
	}
}

func scoreColor(score decimal.Decimal) string {
	switch {
	case score.GreaterThanOrEqual(decimal.NewFromInt(80)):
		return "#16a34a"
	case score.GreaterThanOrEqual(decimal.NewFromInt(60)):
		return "#65a30d"
	case score.GreaterThanOrEqual(decimal.NewFromInt(40)):
		return "#d97706"
	case score.GreaterThanOrEqual(decimal.NewFromInt(20)):
		return "#ea580c"
	default:
		return "#dc2626"
	}
}
