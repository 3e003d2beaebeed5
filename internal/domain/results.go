package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxPayoffMonths caps the debt simulation at 30 years. The cap guarantees
// termination for pathological inputs (e.g. minimum payments smaller than
// the accruing interest). A result that ends at the cap with a positive
// remaining balance means "not payable under this plan" and is returned as a
// normal value, never as an error; see PayoffResult.IsCapped.
const MaxPayoffMonths = 360

// PayoffHistoryPoint is one end-of-month snapshot of the debt simulation.
type PayoffHistoryPoint struct {
	Month              int             `json:"month"` // 1-based
	RemainingDebt      decimal.Decimal `json:"remaining_debt"`
	CumulativeInterest decimal.Decimal `json:"cumulative_interest"`
}

// PayoffResult is the outcome of a debt payoff simulation.
type PayoffResult struct {
	MonthsToPayoff    int                  `json:"months_to_payoff"`
	TotalInterestPaid decimal.Decimal      `json:"total_interest_paid"`
	History           []PayoffHistoryPoint `json:"history"`
}

// IsCapped reports whether the simulation hit the 360-month cap with debt
// still outstanding, meaning the plan cannot pay off the debts within 30
// years. Both conditions are required: a positive trailing balance alone is
// not capped, and a run that clears the debts in exactly 360 months is a
// payoff. Callers should surface a capped result as "plan insufficient",
// not an error.
func (pr *PayoffResult) IsCapped() bool {
	if pr.MonthsToPayoff < MaxPayoffMonths || len(pr.History) == 0 {
		return false
	}
	return pr.History[len(pr.History)-1].RemainingDebt.IsPositive()
}

// ProjectionResult is the closed-form wealth projection outcome.
type ProjectionResult struct {
	NominalValue   decimal.Decimal `json:"nominal_value"`
	RealValue      decimal.Decimal `json:"real_value"` // inflation-adjusted
	InvestedAmount decimal.Decimal `json:"invested_amount"`
	Gain           decimal.Decimal `json:"gain"` // signed
}

// GrowthPoint is one year of the charting growth curve. The curve uses a
// coarser annual re-compounding than the closed-form projection and is meant
// for trend shape only.
type GrowthPoint struct {
	Year           int             `json:"year"`
	ProjectedValue decimal.Decimal `json:"projected_value"`
	InvestedValue  decimal.Decimal `json:"invested_value"`
}

// HealthFactor is one of the four components of the composite health score.
type HealthFactor struct {
	ID          string          `json:"id"`
	Label       string          `json:"label"`
	Score       decimal.Decimal `json:"score"` // 0-100
	Status      string          `json:"status"`
	Description string          `json:"description"`
	Weight      decimal.Decimal `json:"weight"` // 0-1, the four weights sum to 1
	Color       string          `json:"color"`
}

// HealthScore is the weighted composite of the four factors.
type HealthScore struct {
	TotalScore int            `json:"total_score"` // clamped to [0, 100]
	Status     string         `json:"status"`
	Breakdown  []HealthFactor `json:"breakdown"`
}

// Milestone is a derived position of one goal on the cumulative savings
// timeline. Milestones are recomputed on every call and never stored.
type Milestone struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	TargetAmount     decimal.Decimal `json:"target_amount"`
	CumulativeTarget decimal.Decimal `json:"cumulative_target"`
	PositionPercent  decimal.Decimal `json:"position_percent"` // 0-100
	IsReached        bool            `json:"is_reached"`
	GoalType         GoalType        `json:"goal_type"`
	Deadline         *time.Time      `json:"deadline,omitempty"`
	ProjectedDate    *time.Time      `json:"projected_date,omitempty"`
}

// GoalTimeline merges all goals into one cumulative savings timeline.
// When HasGoals is false the remaining fields are zero values and there is
// nothing to render.
type GoalTimeline struct {
	HasGoals    bool            `json:"has_goals"`
	TotalTarget decimal.Decimal `json:"total_target"`
	Progress    decimal.Decimal `json:"progress"` // 0-100, clamped
	Milestones  []Milestone     `json:"milestones"`
}

// FinancialReport aggregates the output of all four calculators for one
// profile snapshot. It is what the output formatters consume.
type FinancialReport struct {
	GeneratedAt time.Time `json:"generated_at"`

	Payoff         *PayoffResult   `json:"payoff,omitempty"`
	PayoffBaseline *PayoffResult   `json:"payoff_baseline,omitempty"` // same debts, zero extra payment
	MonthsSaved    int             `json:"months_saved"`
	InterestSaved  decimal.Decimal `json:"interest_saved"`

	Projection  *ProjectionResult `json:"projection"`
	GrowthCurve []GrowthPoint     `json:"growth_curve"`

	Health   *HealthScore  `json:"health"`
	Timeline *GoalTimeline `json:"timeline"`

	Assumptions []string `json:"assumptions"`
}
