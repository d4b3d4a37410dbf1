// Package domain models daily weather observations.
//
// # Data Source
//
// Observations arrive as a plain CSV file, UTF-8, comma-separated, one header
// line, four positional columns:
//
//	date,temperature,humidity,precipitation
//	2024-08-01,29.4,55,0.0
//
// The format deliberately has no dialect handling: no quoting, no escaping,
// no embedded commas. Columns are matched by position, never by header name;
// the header line is discarded without validation.
//
// # Field Conventions
//
// Date:
//
//	Calendar date in "YYYY-MM-DD" form, no time component. Stored as a
//	time.Time at UTC midnight. The sequence is not required to be sorted and
//	duplicate dates are permitted.
//
// Temperature:
//
//	Degrees Celsius, signed decimal, no enforced range.
//
// Humidity:
//
//	Integer percentage. Expected to fall in 0-100 but not validated.
//
// Precipitation:
//
//	Millimeters, decimal. A day is "rainy" when precipitation is strictly
//	greater than zero; exactly zero means no rain.
//
// # Category Classification
//
// Each record derives a weather category from its temperature. The
// temperature is truncated to its integer part before classification, so
// 9.9 °C truncates to 9 and classifies as Cold while 24.9 °C truncates to 24
// and stays Warm:
//
//	t < 10        Cold
//	10 <= t <= 24 Warm
//	t > 24        Hot
//
// The three ranges partition the integers, so the Moderate fallback is
// unreachable; it exists to keep [WeatherRecord.Category] total.
package domain
