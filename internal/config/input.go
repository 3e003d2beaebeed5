package config

import (
	"fmt"
	"os"
	"time"

	"github.com/finpulse/finance-engine/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a configuration from a YAML file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration. The engine
// itself normalizes bad numbers rather than rejecting them; validation here
// catches input-file mistakes early with a readable error instead of a
// silently clamped result.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateProfile(&config.Profile); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}

	for i, debt := range config.Debts {
		if err := ip.validateDebt(&debt); err != nil {
			return fmt.Errorf("debt %d (%s) validation failed: %w", i, debt.Name, err)
		}
	}

	if err := ip.validateSimulation(&config.Simulation); err != nil {
		return fmt.Errorf("simulation validation failed: %w", err)
	}

	return nil
}

func (ip *InputParser) validateProfile(profile *domain.FinancialProfile) error {
	if profile.MonthlyIncome.IsNegative() {
		return fmt.Errorf("monthly income cannot be negative")
	}
	for category, amount := range profile.MonthlyExpenses {
		if amount.IsNegative() {
			return fmt.Errorf("expense category %q cannot be negative", category)
		}
	}
	if profile.CurrentSavings.IsNegative() {
		return fmt.Errorf("current savings cannot be negative")
	}
	if profile.SavingsGoal.IsNegative() {
		return fmt.Errorf("savings goal cannot be negative")
	}
	if profile.TotalDebt.IsNegative() {
		return fmt.Errorf("total debt cannot be negative")
	}
	if profile.DebtPaymentMonthly.IsNegative() {
		return fmt.Errorf("monthly debt payment cannot be negative")
	}

	for _, g := range profile.ShortTermGoals {
		if err := ip.validateGoal(&g); err != nil {
			return fmt.Errorf("short-term goal %q: %w", g.Title, err)
		}
	}
	for _, g := range profile.LongTermGoals {
		if err := ip.validateGoal(&g); err != nil {
			return fmt.Errorf("long-term goal %q: %w", g.Title, err)
		}
	}

	return nil
}

func (ip *InputParser) validateGoal(goal *domain.Goal) error {
	if goal.TargetAmount.IsNegative() {
		return fmt.Errorf("target amount cannot be negative")
	}
	if goal.CurrentAmount.IsNegative() {
		return fmt.Errorf("current amount cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateDebt(debt *domain.Debt) error {
	if debt.Name == "" {
		return fmt.Errorf("name is required")
	}
	if debt.Balance.IsNegative() {
		return fmt.Errorf("balance cannot be negative")
	}
	if debt.AnnualRate.IsNegative() {
		return fmt.Errorf("annual rate cannot be negative")
	}
	if debt.AnnualRate.GreaterThan(decimal.NewFromInt(2)) {
		return fmt.Errorf("annual rate is a decimal fraction (0.18 = 18%%), got %s", debt.AnnualRate)
	}
	if debt.MinPayment.IsNegative() {
		return fmt.Errorf("minimum payment cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateSimulation(sim *domain.SimulationParams) error {
	if sim.ExtraMonthlyPayment.IsNegative() {
		return fmt.Errorf("extra monthly payment cannot be negative")
	}
	if !sim.Strategy.IsValid() {
		return fmt.Errorf("strategy must be %q or %q", domain.StrategyAvalanche, domain.StrategySnowball)
	}
	if !sim.RiskProfile.IsValid() {
		return fmt.Errorf("risk profile must be %q, %q or %q", domain.RiskConservative, domain.RiskBalanced, domain.RiskAggressive)
	}
	if sim.MonthlyInvestment.IsNegative() {
		return fmt.Errorf("monthly investment cannot be negative")
	}
	if sim.InvestmentYears < 0 || sim.InvestmentYears > 60 {
		return fmt.Errorf("investment years must be between 0 and 60")
	}
	return nil
}

// CreateExampleConfiguration creates a complete example configuration that
// passes validation, used by the `example` CLI command.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	carDeadline := time.Date(time.Now().Year()+2, time.March, 31, 0, 0, 0, 0, time.UTC)

	return &domain.Configuration{
		Profile: domain.FinancialProfile{
			MonthlyIncome: decimal.NewFromInt(95000),
			MonthlyExpenses: map[string]decimal.Decimal{
				"housing":   decimal.NewFromInt(22000),
				"food":      decimal.NewFromInt(12000),
				"transport": decimal.NewFromInt(6000),
				"utilities": decimal.NewFromInt(4500),
				"leisure":   decimal.NewFromInt(7500),
			},
			CurrentSavings:     decimal.NewFromInt(240000),
			SavingsGoal:        decimal.NewFromInt(600000),
			TotalDebt:          decimal.NewFromInt(330000),
			DebtPaymentMonthly: decimal.NewFromInt(9500),
			ShortTermGoals: []domain.Goal{
				{
					ID:            uuid.NewString(),
					Title:         "Emergency fund",
					TargetAmount:  decimal.NewFromInt(180000),
					CurrentAmount: decimal.NewFromInt(90000),
				},
				{
					ID:            uuid.NewString(),
					Title:         "Car down payment",
					TargetAmount:  decimal.NewFromInt(250000),
					CurrentAmount: decimal.NewFromInt(40000),
					Deadline:      &carDeadline,
				},
			},
			LongTermGoals: []domain.Goal{
				{
					ID:            uuid.NewString(),
					Title:         "House down payment",
					TargetAmount:  decimal.NewFromInt(1500000),
					CurrentAmount: decimal.NewFromInt(110000),
				},
			},
		},
		Debts: []domain.Debt{
			{
				Name:       "Credit card",
				Balance:    decimal.NewFromInt(80000),
				AnnualRate: decimal.NewFromFloat(0.24),
				MinPayment: decimal.NewFromInt(2500),
			},
			{
				Name:       "Car loan",
				Balance:    decimal.NewFromInt(150000),
				AnnualRate: decimal.NewFromFloat(0.09),
				MinPayment: decimal.NewFromInt(4000),
			},
			{
				Name:       "Personal loan",
				Balance:    decimal.NewFromInt(100000),
				AnnualRate: decimal.NewFromFloat(0.14),
				MinPayment: decimal.NewFromInt(3000),
			},
		},
		Simulation: domain.SimulationParams{
			ExtraMonthlyPayment: decimal.NewFromInt(5000),
			Strategy:            domain.StrategyAvalanche,
			RiskProfile:         domain.RiskBalanced,
			MonthlyInvestment:   decimal.NewFromInt(10000),
			InvestmentYears:     10,
		},
	}
}
