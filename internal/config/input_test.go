package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/finpulse/finance-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExampleConfigurationIsValid(t *testing.T) {
	parser := NewInputParser()
	cfg := parser.CreateExampleConfiguration()

	require.NoError(t, parser.ValidateConfiguration(cfg))
	assert.NotEmpty(t, cfg.Debts)
	assert.NotEmpty(t, cfg.Profile.ShortTermGoals)

	// Goal IDs are generated and unique.
	seen := map[string]bool{}
	for _, g := range append(cfg.Profile.ShortTermGoals, cfg.Profile.LongTermGoals...) {
		assert.NotEmpty(t, g.ID)
		assert.False(t, seen[g.ID], "duplicate goal id %s", g.ID)
		seen[g.ID] = true
	}
}

func TestLoadFromFileRoundTrip(t *testing.T) {
	parser := NewInputParser()
	cfg := parser.CreateExampleConfiguration()

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.True(t, loaded.Profile.MonthlyIncome.Equal(cfg.Profile.MonthlyIncome))
	assert.Equal(t, cfg.Simulation.Strategy, loaded.Simulation.Strategy)
	assert.Equal(t, cfg.Simulation.RiskProfile, loaded.Simulation.RiskProfile)
	assert.Len(t, loaded.Debts, len(cfg.Debts))
}

func TestLoadFromFileErrors(t *testing.T) {
	parser := NewInputParser()

	t.Run("missing file", func(t *testing.T) {
		_, err := parser.LoadFromFile("does-not-exist.yaml")
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("profile: [not a map"), 0644))
		_, err := parser.LoadFromFile(path)
		assert.Error(t, err)
	})

	t.Run("invalid strategy rejected at parse time", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "strategy.yaml")
		content := []byte("simulation:\n  strategy: landslide\n  risk_profile: balanced\n")
		require.NoError(t, os.WriteFile(path, content, 0644))
		_, err := parser.LoadFromFile(path)
		assert.ErrorContains(t, err, "payoff strategy")
	})
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()

	base := func() *domain.Configuration { return parser.CreateExampleConfiguration() }

	tests := []struct {
		name    string
		mutate  func(*domain.Configuration)
		wantErr string
	}{
		{
			name:    "negative income",
			mutate:  func(c *domain.Configuration) { c.Profile.MonthlyIncome = decimal.NewFromInt(-1) },
			wantErr: "monthly income",
		},
		{
			name:    "negative expense category",
			mutate:  func(c *domain.Configuration) { c.Profile.MonthlyExpenses["food"] = decimal.NewFromInt(-500) },
			wantErr: "expense category",
		},
		{
			name:    "negative savings",
			mutate:  func(c *domain.Configuration) { c.Profile.CurrentSavings = decimal.NewFromInt(-10) },
			wantErr: "current savings",
		},
		{
			name:    "debt without name",
			mutate:  func(c *domain.Configuration) { c.Debts[0].Name = "" },
			wantErr: "name is required",
		},
		{
			name:    "rate given as percentage",
			mutate:  func(c *domain.Configuration) { c.Debts[0].AnnualRate = decimal.NewFromInt(18) },
			wantErr: "decimal fraction",
		},
		{
			name:    "negative goal target",
			mutate:  func(c *domain.Configuration) { c.Profile.ShortTermGoals[0].TargetAmount = decimal.NewFromInt(-5) },
			wantErr: "target amount",
		},
		{
			name:    "negative extra payment",
			mutate:  func(c *domain.Configuration) { c.Simulation.ExtraMonthlyPayment = decimal.NewFromInt(-100) },
			wantErr: "extra monthly payment",
		},
		{
			name:    "investment years out of range",
			mutate:  func(c *domain.Configuration) { c.Simulation.InvestmentYears = 75 },
			wantErr: "investment years",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := parser.ValidateConfiguration(cfg)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
