// Command weatherreport reads a CSV file of daily weather observations,
// computes aggregate statistics, and prints a categorized report to stdout.
//
// Usage:
//
//	weatherreport -file data/weatherdata.csv [-month 8] [-threshold 33]
//
// Month and threshold default from REPORT_MONTH and TEMP_THRESHOLD (or a
// .env file); diagnostics go to stderr so the report on stdout stays clean.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/couchcryptid/weather-report/internal/config"
	"github.com/couchcryptid/weather-report/internal/loader"
	"github.com/couchcryptid/weather-report/internal/observability"
	"github.com/couchcryptid/weather-report/internal/report"
	"github.com/couchcryptid/weather-report/internal/stats"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}

	logger := observability.NewLogger(cfg)

	fs := flag.NewFlagSet("weatherreport", flag.ContinueOnError)
	file := fs.String("file", "", "path to the weather observation CSV file (required)")
	month := fs.Int("month", int(cfg.Month), "month (1-12) for the average temperature")
	threshold := fs.Float64("threshold", cfg.Threshold, "temperature threshold in °C for the hot-day listing")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *file == "" {
		fmt.Fprintln(os.Stderr, "missing required flag: -file")
		fs.Usage()
		return 2
	}
	if *month < 1 || *month > 12 {
		logger.Error("invalid month", "month", *month)
		return 2
	}

	records, err := loader.ParseWeatherData(*file)
	if err != nil {
		logger.Error("failed to load weather data", "file", *file, "error", err)
		return 1
	}
	logger.Info("weather data loaded", "file", *file, "records", len(records))

	m := time.Month(*month)
	summary := report.Summary{
		Month:       m,
		AverageTemp: stats.AverageTemperatureForMonth(records, m),
		Threshold:   *threshold,
		HotDays:     stats.DaysAboveTemperature(records, *threshold),
		RainyDays:   stats.CountRainyDays(records),
	}

	fmt.Fprint(stdout, report.Render(records, summary))
	return 0
}
