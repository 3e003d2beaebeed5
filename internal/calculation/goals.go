package calculation

import (
	"sort"
	"time"

	"github.com/finpulse/finance-engine/internal/domain"
	"github.com/finpulse/finance-engine/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// GoalTimelineAggregator merges short- and long-term goals into one
// cumulative savings timeline. Goals are satisfied smallest target first
// against the single pool of current savings; this is a spending-priority
// policy, not per-goal earmarking.
type GoalTimelineAggregator struct{}

// NewGoalTimelineAggregator creates a new aggregator.
func NewGoalTimelineAggregator() *GoalTimelineAggregator {
	return &GoalTimelineAggregator{}
}

// taggedGoal carries the origin list of a goal through the merge.
type taggedGoal struct {
	domain.Goal
	goalType domain.GoalType
}

// Aggregate builds the milestone timeline as of the given instant. Goals
// with a non-positive target are dropped; the rest are sorted ascending by
// target (ties keep input order, short-term list first). A milestone that is
// not yet reached gets a projected completion date when the monthly
// contribution is positive, ceil((cumulativeTarget-savings)/contribution)
// months out; otherwise its projected date stays nil.
func (a *GoalTimelineAggregator) Aggregate(asOf time.Time, currentSavings decimal.Decimal, shortTermGoals, longTermGoals []domain.Goal, monthlyContribution decimal.Decimal) domain.GoalTimeline {
	savings := clampNonNegative(currentSavings)
	contribution := clampNonNegative(monthlyContribution)

	merged := make([]taggedGoal, 0, len(shortTermGoals)+len(longTermGoals))
	for _, g := range shortTermGoals {
		if g.TargetAmount.IsPositive() {
			merged = append(merged, taggedGoal{Goal: g, goalType: domain.GoalShortTerm})
		}
	}
	for _, g := range longTermGoals {
		if g.TargetAmount.IsPositive() {
			merged = append(merged, taggedGoal{Goal: g, goalType: domain.GoalLongTerm})
		}
	}

	if len(merged) == 0 {
		return domain.GoalTimeline{
			TotalTarget: decimal.Zero,
			Progress:    decimal.Zero,
			Milestones:  []domain.Milestone{},
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].TargetAmount.LessThan(merged[j].TargetAmount)
	})

	totalTarget := decimal.Zero
	for _, g := range merged {
		totalTarget = totalTarget.Add(g.TargetAmount)
	}

	hundred := decimal.NewFromInt(100)
	progress := savings.Div(totalTarget).Mul(hundred)
	if progress.GreaterThan(hundred) {
		progress = hundred
	}

	milestones := make([]domain.Milestone, 0, len(merged))
	cumulative := decimal.Zero
	for _, g := range merged {
		cumulative = cumulative.Add(g.TargetAmount)

		m := domain.Milestone{
			ID:               g.ID,
			Title:            g.Title,
			TargetAmount:     g.TargetAmount,
			CumulativeTarget: cumulative,
			PositionPercent:  cumulative.Div(totalTarget).Mul(hundred),
			IsReached:        savings.GreaterThanOrEqual(cumulative),
			GoalType:         g.goalType,
			Deadline:         g.Deadline,
		}

		if !m.IsReached && contribution.IsPositive() {
			monthsNeeded := int(cumulative.Sub(savings).Div(contribution).Ceil().IntPart())
			projected := dateutil.AddMonths(asOf, monthsNeeded)
			m.ProjectedDate = &projected
		}

		milestones = append(milestones, m)
	}

	return domain.GoalTimeline{
		HasGoals:    true,
		TotalTarget: totalTarget,
		Progress:    progress,
		Milestones:  milestones,
	}
}
