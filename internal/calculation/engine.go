package calculation

import (
	"fmt"
	"time"

	"github.com/finpulse/finance-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine bundles the four calculators behind one entry point.
// Every component is a pure function of its inputs, so a single engine value
// is safe for concurrent use; identical inputs always produce identical
// outputs.
type CalculationEngine struct {
	DebtSim *DebtPayoffSimulator
	Wealth  *WealthProjectionCalculator
	Health  *FinancialHealthScorer
	Goals   *GoalTimelineAggregator
	Logger  Logger
}

// NewCalculationEngine creates an engine with a no-op logger.
func NewCalculationEngine() *CalculationEngine {
	logger := NopLogger{}
	return &CalculationEngine{
		DebtSim: &DebtPayoffSimulator{Logger: logger},
		Wealth:  NewWealthProjectionCalculator(),
		Health:  &FinancialHealthScorer{Logger: logger},
		Goals:   NewGoalTimelineAggregator(),
		Logger:  logger,
	}
}

// SetLogger sets the logger for the engine and its components. A nil logger
// installs the no-op logger.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	ce.Logger = l
	ce.DebtSim.Logger = l
	ce.Health.Logger = l
}

// BuildReport runs every calculator against one profile snapshot and
// returns the combined report. The payoff simulation runs twice, once with
// the chosen extra payment and once at zero, to derive the months and
// interest saved; the simulator itself never compares runs.
func (ce *CalculationEngine) BuildReport(asOf time.Time, cfg *domain.Configuration) (*domain.FinancialReport, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if !cfg.Simulation.Strategy.IsValid() {
		return nil, fmt.Errorf("invalid payoff strategy %q", cfg.Simulation.Strategy)
	}
	if !cfg.Simulation.RiskProfile.IsValid() {
		return nil, fmt.Errorf("invalid risk profile %q", cfg.Simulation.RiskProfile)
	}

	profile := &cfg.Profile
	sim := cfg.Simulation

	report := &domain.FinancialReport{
		GeneratedAt:   asOf,
		InterestSaved: decimal.Zero,
		Assumptions:   sim.GenerateAssumptions(),
	}

	if len(cfg.Debts) > 0 {
		plan := ce.DebtSim.Simulate(cfg.Debts, sim.ExtraMonthlyPayment, sim.Strategy)
		baseline := ce.DebtSim.Simulate(cfg.Debts, decimal.Zero, sim.Strategy)
		report.Payoff = &plan
		report.PayoffBaseline = &baseline
		report.MonthsSaved = baseline.MonthsToPayoff - plan.MonthsToPayoff
		report.InterestSaved = baseline.TotalInterestPaid.Sub(plan.TotalInterestPaid)
		ce.Logger.Debugf("payoff: %d months (%d at baseline), interest %s",
			plan.MonthsToPayoff, baseline.MonthsToPayoff, plan.TotalInterestPaid.StringFixed(2))
	}

	projection := ce.Wealth.Project(profile.CurrentSavings, sim.MonthlyInvestment, sim.InvestmentYears, sim.RiskProfile)
	report.Projection = &projection
	report.GrowthCurve = ce.Wealth.GrowthCurve(profile.CurrentSavings, sim.MonthlyInvestment, sim.InvestmentYears, sim.RiskProfile)

	health := ce.Health.Score(profile)
	report.Health = &health

	timeline := ce.Goals.Aggregate(asOf, profile.CurrentSavings, profile.ShortTermGoals, profile.LongTermGoals, sim.MonthlyInvestment)
	report.Timeline = &timeline

	return report, nil
}
