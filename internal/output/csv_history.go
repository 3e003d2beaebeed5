package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/finpulse/finance-engine/internal/domain"
)

// CSVHistoryFormatter exports the month-by-month payoff history so the
// amortization can be cross-checked in a spreadsheet.
type CSVHistoryFormatter struct{}

func (c CSVHistoryFormatter) Name() string { return "csv" }

func (c CSVHistoryFormatter) Format(report *domain.FinancialReport) ([]byte, error) {
	if report.Payoff == nil {
		return nil, fmt.Errorf("report has no payoff simulation to export")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"month", "remaining_debt", "cumulative_interest"}); err != nil {
		return nil, err
	}
	for _, point := range report.Payoff.History {
		record := []string{
			strconv.Itoa(point.Month),
			point.RemainingDebt.StringFixed(2),
			point.CumulativeInterest.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
