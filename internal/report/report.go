// Package report renders the weather analysis report.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/couchcryptid/weather-report/internal/domain"
)

// Summary holds the aggregate results shown at the top of the report.
type Summary struct {
	Month       time.Month
	AverageTemp float64
	Threshold   float64
	HotDays     []domain.WeatherRecord
	RainyDays   int
}

// Render produces the full report text: a header block, the three aggregate
// lines, and one categorized line per record in original order.
func Render(records []domain.WeatherRecord, s Summary) string {
	var b strings.Builder

	title := "Weather Analysis Results"
	fmt.Fprintf(&b, "%s\n%s\n", title, strings.Repeat("-", len(title)+2))
	fmt.Fprintf(&b, "Generated: %s\n", clock.Now().UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "Average %s Temperature: %.2f °C\n", s.Month, s.AverageTemp)
	fmt.Fprintf(&b, "Days above %g °C: %s\n", s.Threshold, formatRecordList(s.HotDays))
	fmt.Fprintf(&b, "Rainy Days: %d\n", s.RainyDays)

	b.WriteString("\n")
	for _, r := range records {
		fmt.Fprintf(&b, "Date: %s, Category: %s\n", r.Date.Format(domain.DateLayout), r.Category())
	}

	return b.String()
}

// formatRecordList renders records as a bracketed, comma-separated list,
// e.g. "[2024-08-15 (34.1 °C), 2024-08-16 (35.0 °C)]".
func formatRecordList(records []domain.WeatherRecord) string {
	items := make([]string, len(records))
	for i, r := range records {
		items[i] = r.String()
	}
	return "[" + strings.Join(items, ", ") + "]"
}
