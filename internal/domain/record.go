package domain

import (
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the fixed date format used by the observation CSV.
const DateLayout = "2006-01-02"

// Weather categories derived from temperature. See the package documentation
// for the classification thresholds.
const (
	CategoryCold     = "Cold"
	CategoryWarm     = "Warm"
	CategoryHot      = "Hot"
	CategoryModerate = "Moderate"
)

// WeatherRecord is one day's observation. Records are immutable values:
// constructed once during load and never modified.
type WeatherRecord struct {
	Date          time.Time
	Temperature   float64 // °C
	Humidity      int     // percent
	Precipitation float64 // mm
}

// ParseRecord builds a WeatherRecord from positional CSV fields
// (date, temperature, humidity, precipitation). Extra fields are ignored;
// fewer than four is an error, as is any field that fails to parse.
func ParseRecord(fields []string) (WeatherRecord, error) {
	if len(fields) < 4 {
		return WeatherRecord{}, fmt.Errorf("expected 4 fields, got %d", len(fields))
	}

	date, err := time.Parse(DateLayout, fields[0])
	if err != nil {
		return WeatherRecord{}, fmt.Errorf("parse date %q: %w", fields[0], err)
	}

	temperature, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return WeatherRecord{}, fmt.Errorf("parse temperature %q: %w", fields[1], err)
	}

	humidity, err := strconv.Atoi(fields[2])
	if err != nil {
		return WeatherRecord{}, fmt.Errorf("parse humidity %q: %w", fields[2], err)
	}

	precipitation, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return WeatherRecord{}, fmt.Errorf("parse precipitation %q: %w", fields[3], err)
	}

	return WeatherRecord{
		Date:          date,
		Temperature:   temperature,
		Humidity:      humidity,
		Precipitation: precipitation,
	}, nil
}

// Category classifies the record by its integer-truncated temperature.
func (r WeatherRecord) Category() string {
	switch t := int(r.Temperature); {
	case t < 10:
		return CategoryCold
	case t <= 24:
		return CategoryWarm
	case t > 24:
		return CategoryHot
	default:
		return CategoryModerate
	}
}

// Rainy reports whether any precipitation fell. Exactly zero is dry.
func (r WeatherRecord) Rainy() bool {
	return r.Precipitation > 0
}

// String renders the record for list output, e.g. "2024-08-15 (34.1 °C)".
func (r WeatherRecord) String() string {
	return fmt.Sprintf("%s (%.1f °C)", r.Date.Format(DateLayout), r.Temperature)
}
