// Package stats provides pure aggregations over weather record sequences.
//
// Every function tolerates an empty input and is idempotent: re-running on
// the same sequence produces the same result, and no function mutates its
// input or depends on call order.
package stats

import (
	"time"

	"github.com/couchcryptid/weather-report/internal/domain"
)

// AverageTemperatureForMonth returns the arithmetic mean temperature of the
// records whose date falls in month. Returns 0.0 when no record matches.
func AverageTemperatureForMonth(records []domain.WeatherRecord, month time.Month) float64 {
	var sum float64
	var n int
	for _, r := range records {
		if r.Date.Month() == month {
			sum += r.Temperature
			n++
		}
	}
	if n == 0 {
		return 0.0
	}
	return sum / float64(n)
}

// DaysAboveTemperature returns the records with temperature strictly above
// threshold, preserving original order. The threshold itself is excluded.
func DaysAboveTemperature(records []domain.WeatherRecord, threshold float64) []domain.WeatherRecord {
	var matched []domain.WeatherRecord
	for _, r := range records {
		if r.Temperature > threshold {
			matched = append(matched, r)
		}
	}
	return matched
}

// CountRainyDays returns the number of records with precipitation strictly
// greater than zero.
func CountRainyDays(records []domain.WeatherRecord) int {
	n := 0
	for _, r := range records {
		if r.Rainy() {
			n++
		}
	}
	return n
}
