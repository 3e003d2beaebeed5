package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/finpulse/finance-engine/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *domain.FinancialReport) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.FinancialReport) ([]byte, error)
}

func (ff FormatterFunc) Format(r *domain.FinancialReport) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                                     { return ff.ID }

// WriteFormatted runs a formatter and writes output to a timestamped file with extension.
func WriteFormatted(f Formatter, report *domain.FinancialReport, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("finance_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVHistoryFormatter{},
}

// GetFormatter looks up a built-in formatter by name.
func GetFormatter(name string) (Formatter, error) {
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("unknown format %q (available: %s)", name, strings.Join(FormatterNames(), ", "))
}

// FormatterNames lists the names of the built-in formatters.
func FormatterNames() []string {
	names := make([]string, len(builtInFormatters))
	for i, f := range builtInFormatters {
		names[i] = f.Name()
	}
	return names
}
