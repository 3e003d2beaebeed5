package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// PayoffStrategy selects the ordering of extra-payment allocation in the
// debt payoff simulation.
type PayoffStrategy string

const (
	// StrategyAvalanche pays the highest interest rate first (minimizes total interest).
	StrategyAvalanche PayoffStrategy = "avalanche"
	// StrategySnowball pays the smallest balance first (fastest individual payoffs).
	StrategySnowball PayoffStrategy = "snowball"
)

// IsValid reports whether the strategy is one of the closed set of values.
func (ps PayoffStrategy) IsValid() bool {
	return ps == StrategyAvalanche || ps == StrategySnowball
}

// UnmarshalYAML implements custom YAML unmarshaling so an invalid strategy
// fails at parse time instead of silently falling back.
func (ps *PayoffStrategy) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed := PayoffStrategy(s)
	if !parsed.IsValid() {
		return fmt.Errorf("payoff strategy must be %q or %q, got %q", StrategyAvalanche, StrategySnowball, s)
	}
	*ps = parsed
	return nil
}

// RiskProfile is a closed enumeration of investment risk appetites; each maps
// to a fixed annual nominal return rate in the wealth projection calculator.
type RiskProfile string

const (
	RiskConservative RiskProfile = "conservative"
	RiskBalanced     RiskProfile = "balanced"
	RiskAggressive   RiskProfile = "aggressive"
)

// IsValid reports whether the risk profile is one of the closed set of values.
func (rp RiskProfile) IsValid() bool {
	return rp == RiskConservative || rp == RiskBalanced || rp == RiskAggressive
}

// UnmarshalYAML implements custom YAML unmarshaling for RiskProfile.
func (rp *RiskProfile) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed := RiskProfile(s)
	if !parsed.IsValid() {
		return fmt.Errorf("risk profile must be %q, %q or %q, got %q", RiskConservative, RiskBalanced, RiskAggressive, s)
	}
	*rp = parsed
	return nil
}

// GoalType distinguishes short-term from long-term goals in milestone output.
type GoalType string

const (
	GoalShortTerm GoalType = "short_term"
	GoalLongTerm  GoalType = "long_term"
)

// Debt represents a single outstanding debt as supplied by the caller.
// The simulator works on a cloned copy and never mutates these values.
type Debt struct {
	Name       string          `yaml:"name" json:"name"`
	Balance    decimal.Decimal `yaml:"balance" json:"balance"`
	AnnualRate decimal.Decimal `yaml:"annual_rate" json:"annual_rate"` // decimal fraction, e.g. 0.18 for 18% APR
	MinPayment decimal.Decimal `yaml:"min_payment" json:"min_payment"`
}

// Goal is a savings goal snapshot. Goals are created and edited elsewhere;
// the engine only reads them.
type Goal struct {
	ID            string          `yaml:"id" json:"id"`
	Title         string          `yaml:"title" json:"title"`
	TargetAmount  decimal.Decimal `yaml:"target_amount" json:"target_amount"`
	CurrentAmount decimal.Decimal `yaml:"current_amount" json:"current_amount"`
	IsCompleted   bool            `yaml:"is_completed" json:"is_completed"`
	Deadline      *time.Time      `yaml:"deadline,omitempty" json:"deadline,omitempty"`
}

// Progress returns the goal's completion fraction in [0, 1]. Completed goals
// count as fully funded regardless of amounts; a non-positive target with no
// completion flag counts as zero.
func (g Goal) Progress() decimal.Decimal {
	if g.IsCompleted {
		return decimal.NewFromInt(1)
	}
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	p := g.CurrentAmount.Div(g.TargetAmount)
	if p.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	if p.IsNegative() {
		return decimal.Zero
	}
	return p
}

// FinancialProfile is the caller-owned snapshot of a user's finances. All
// engine operations read it and return derived values; nothing is written
// back.
type FinancialProfile struct {
	MonthlyIncome      decimal.Decimal            `yaml:"monthly_income" json:"monthly_income"`
	MonthlyExpenses    map[string]decimal.Decimal `yaml:"monthly_expenses" json:"monthly_expenses"` // per category
	CurrentSavings     decimal.Decimal            `yaml:"current_savings" json:"current_savings"`
	SavingsGoal        decimal.Decimal            `yaml:"savings_goal" json:"savings_goal"`
	TotalDebt          decimal.Decimal            `yaml:"total_debt" json:"total_debt"`
	DebtPaymentMonthly decimal.Decimal            `yaml:"debt_payment_monthly" json:"debt_payment_monthly"`
	ShortTermGoals     []Goal                     `yaml:"short_term_goals" json:"short_term_goals"`
	LongTermGoals      []Goal                     `yaml:"long_term_goals" json:"long_term_goals"`
}

// TotalExpenses sums the per-category monthly expenses. Negative category
// values are ignored rather than allowed to offset spending.
func (fp *FinancialProfile) TotalExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range fp.MonthlyExpenses {
		if amount.IsPositive() {
			total = total.Add(amount)
		}
	}
	return total
}

// MonthlySurplus returns income minus total expenses. Unlike most engine
// outputs this value is signed: a deficit is negative.
func (fp *FinancialProfile) MonthlySurplus() decimal.Decimal {
	return fp.MonthlyIncome.Sub(fp.TotalExpenses())
}

// HasDebt reports whether the profile carries any outstanding debt.
func (fp *FinancialProfile) HasDebt() bool {
	return fp.TotalDebt.IsPositive() || fp.DebtPaymentMonthly.IsPositive()
}

// SimulationParams bundles the user-chosen knobs for a full report run.
type SimulationParams struct {
	ExtraMonthlyPayment decimal.Decimal `yaml:"extra_monthly_payment" json:"extra_monthly_payment"`
	Strategy            PayoffStrategy  `yaml:"strategy" json:"strategy"`
	RiskProfile         RiskProfile     `yaml:"risk_profile" json:"risk_profile"`
	MonthlyInvestment   decimal.Decimal `yaml:"monthly_investment" json:"monthly_investment"`
	InvestmentYears     int             `yaml:"investment_years" json:"investment_years"`
}

// Configuration is the root document of an input file: one profile, the
// debt list, and the simulation parameters.
type Configuration struct {
	Profile    FinancialProfile `yaml:"profile" json:"profile"`
	Debts      []Debt           `yaml:"debts" json:"debts"`
	Simulation SimulationParams `yaml:"simulation" json:"simulation"`
}

// GenerateAssumptions creates a human-readable list of the model assumptions
// baked into a run, from the actual configured values.
func (sp *SimulationParams) GenerateAssumptions() []string {
	return []string{
		fmt.Sprintf("Debt payoff strategy: %s, extra payment %s/month", sp.Strategy, sp.ExtraMonthlyPayment.StringFixed(2)),
		fmt.Sprintf("Investment risk profile: %s over %d years", sp.RiskProfile, sp.InvestmentYears),
		"Inflation: 6.0% annually (fixed model constant)",
		"Debt simulation capped at 360 months; hitting the cap means the plan is insufficient, not an error",
		"Goals are satisfied smallest target first against a single savings pool",
	}
}
