package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"

	"github.com/couchcryptid/weather-report/internal/domain"
	"github.com/couchcryptid/weather-report/internal/report"
)

func freezeClock(t *testing.T) {
	t.Helper()
	report.SetClock(clockwork.NewFakeClockAt(
		time.Date(2024, time.September, 1, 6, 0, 0, 0, time.UTC),
	))
	t.Cleanup(func() { report.SetClock(nil) })
}

func TestRender(t *testing.T) {
	freezeClock(t)

	records := []domain.WeatherRecord{
		{Date: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), Temperature: 29.4, Humidity: 55},
		{Date: time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC), Temperature: 34.1, Humidity: 40},
		{Date: time.Date(2024, 8, 20, 0, 0, 0, 0, time.UTC), Temperature: 12.0, Humidity: 60, Precipitation: 5.2},
	}
	summary := report.Summary{
		Month:       time.August,
		AverageTemp: 25.166666666666668,
		Threshold:   33.0,
		HotDays:     records[1:2],
		RainyDays:   1,
	}

	got := report.Render(records, summary)

	want := "Weather Analysis Results\n" +
		"--------------------------\n" +
		"Generated: 2024-09-01T06:00:00Z\n" +
		"Average August Temperature: 25.17 °C\n" +
		"Days above 33 °C: [2024-08-15 (34.1 °C)]\n" +
		"Rainy Days: 1\n" +
		"\n" +
		"Date: 2024-08-01, Category: Warm\n" +
		"Date: 2024-08-15, Category: Hot\n" +
		"Date: 2024-08-20, Category: Warm\n"
	assert.Equal(t, want, got)
}

func TestRender_EmptyDataset(t *testing.T) {
	freezeClock(t)

	got := report.Render(nil, report.Summary{Month: time.August, Threshold: 33.0})

	assert.Contains(t, got, "Average August Temperature: 0.00 °C")
	assert.Contains(t, got, "Days above 33 °C: []")
	assert.Contains(t, got, "Rainy Days: 0")
	assert.NotContains(t, got, "Date:")
}

func TestRender_ElementOrder(t *testing.T) {
	freezeClock(t)

	records := []domain.WeatherRecord{
		{Date: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), Temperature: 20.0},
	}
	got := report.Render(records, report.Summary{Month: time.August, Threshold: 33.0})

	order := []string{
		"Weather Analysis Results",
		"Average August Temperature:",
		"Days above 33 °C:",
		"Rainy Days:",
		"Date: 2024-08-01, Category: Warm",
	}
	last := -1
	for _, marker := range order {
		idx := strings.Index(got, marker)
		assert.Greater(t, idx, last, "element %q out of order", marker)
		last = idx
	}
}

func TestRender_FractionalThreshold(t *testing.T) {
	freezeClock(t)

	got := report.Render(nil, report.Summary{Month: time.July, Threshold: 30.5})

	assert.Contains(t, got, "Days above 30.5 °C: []")
}
