package output

import (
	"fmt"
	"strings"

	"github.com/finpulse/finance-engine/internal/domain"
	"github.com/finpulse/finance-engine/pkg/dateutil"
	"github.com/finpulse/finance-engine/pkg/decimal"
)

// ConsoleFormatter renders the report as sectioned plain text for terminals.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.FinancialReport) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "FINANCIAL REPORT - %s\n", report.GeneratedAt.Format("2006-01-02"))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if report.Health != nil {
		c.writeHealth(&b, report.Health)
	}
	if report.Payoff != nil {
		c.writePayoff(&b, report)
	}
	if report.Projection != nil {
		c.writeProjection(&b, report)
	}
	if report.Timeline != nil {
		c.writeTimeline(&b, report.Timeline)
	}

	if len(report.Assumptions) > 0 {
		b.WriteString("ASSUMPTIONS\n")
		for _, a := range report.Assumptions {
			fmt.Fprintf(&b, "  - %s\n", a)
		}
	}

	return []byte(b.String()), nil
}

func (c ConsoleFormatter) writeHealth(b *strings.Builder, health *domain.HealthScore) {
	fmt.Fprintf(b, "FINANCIAL HEALTH: %d/100 (%s)\n", health.TotalScore, health.Status)
	for _, f := range health.Breakdown {
		fmt.Fprintf(b, "  %-16s %6s  %-10s %s\n", f.Label, f.Score.StringFixed(1), f.Status, f.Description)
	}
	b.WriteString("\n")
}

func (c ConsoleFormatter) writePayoff(b *strings.Builder, report *domain.FinancialReport) {
	payoff := report.Payoff
	b.WriteString("DEBT PAYOFF\n")
	if payoff.IsCapped() {
		remaining := payoff.History[len(payoff.History)-1].RemainingDebt
		fmt.Fprintf(b, "  Plan is insufficient: %s still outstanding after %d months\n",
			decimal.NewMoneyFromDecimal(remaining).Format(), payoff.MonthsToPayoff)
	} else {
		fmt.Fprintf(b, "  Debt free in %d months (%.1f years)\n", payoff.MonthsToPayoff, float64(payoff.MonthsToPayoff)/12)
	}
	fmt.Fprintf(b, "  Total interest: %s\n", decimal.NewMoneyFromDecimal(payoff.TotalInterestPaid).Format())
	if report.PayoffBaseline != nil && report.MonthsSaved > 0 {
		fmt.Fprintf(b, "  Extra payments save %d months and %s in interest\n",
			report.MonthsSaved, decimal.NewMoneyFromDecimal(report.InterestSaved).Format())
	}
	b.WriteString("\n")
}

func (c ConsoleFormatter) writeProjection(b *strings.Builder, report *domain.FinancialReport) {
	p := report.Projection
	b.WriteString("WEALTH PROJECTION\n")
	fmt.Fprintf(b, "  Invested:        %s\n", decimal.NewMoneyFromDecimal(p.InvestedAmount).Format())
	fmt.Fprintf(b, "  Projected value: %s\n", decimal.NewMoneyFromDecimal(p.NominalValue).Format())
	fmt.Fprintf(b, "  Gain:            %s\n", decimal.NewMoneyFromDecimal(p.Gain).Format())
	fmt.Fprintf(b, "  In today's money: %s\n", decimal.NewMoneyFromDecimal(p.RealValue).Format())
	b.WriteString("\n")
}

func (c ConsoleFormatter) writeTimeline(b *strings.Builder, timeline *domain.GoalTimeline) {
	b.WriteString("GOAL TIMELINE\n")
	if !timeline.HasGoals {
		b.WriteString("  No goals set\n\n")
		return
	}
	fmt.Fprintf(b, "  Total target %s, %s%% funded\n",
		decimal.NewMoneyFromDecimal(timeline.TotalTarget).Format(), timeline.Progress.StringFixed(1))
	for _, m := range timeline.Milestones {
		marker := " "
		if m.IsReached {
			marker = "x"
		}
		fmt.Fprintf(b, "  [%s] %-24s at %s (%s%%)", marker, m.Title,
			decimal.NewMoneyFromDecimal(m.CumulativeTarget).Format(), m.PositionPercent.StringFixed(0))
		if m.ProjectedDate != nil {
			fmt.Fprintf(b, " - projected %s", m.ProjectedDate.Format("Jan 2006"))
			if m.Deadline != nil {
				if m.ProjectedDate.After(*m.Deadline) {
					months := dateutil.MonthsBetween(*m.Deadline, *m.ProjectedDate)
					fmt.Fprintf(b, ", %d months past the deadline", months)
				} else {
					fmt.Fprintf(b, ", ahead of the %s deadline", m.Deadline.Format("Jan 2006"))
				}
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}
