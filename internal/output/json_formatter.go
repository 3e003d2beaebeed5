package output

import (
	"encoding/json"

	"github.com/finpulse/finance-engine/internal/domain"
)

// JSONFormatter serializes the financial report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.FinancialReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
