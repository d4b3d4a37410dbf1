// Command genweather writes a deterministic sample weather observation CSV
// to stdout, for demos and manual testing of the report tool.
//
// Usage:
//
//	go run ./cmd/genweather -days 31 -start 2024-08-01 -seed 1 > weatherdata.csv
//
// The same seed always produces the same data.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/couchcryptid/weather-report/internal/domain"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	days := flag.Int("days", 30, "number of daily observations to generate")
	start := flag.String("start", "2024-08-01", "first observation date (YYYY-MM-DD)")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	startDate, err := time.Parse(domain.DateLayout, *start)
	if err != nil {
		return fmt.Errorf("invalid -start date: %w", err)
	}
	if *days < 0 {
		return fmt.Errorf("invalid -days: %d", *days)
	}

	rng := rand.New(rand.NewSource(*seed))

	w := csv.NewWriter(os.Stdout)
	if err := w.Write([]string{"date", "temperature", "humidity", "precipitation"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := 0; i < *days; i++ {
		rec := sampleRecord(rng, startDate.AddDate(0, 0, i))
		row := []string{
			rec.Date.Format(domain.DateLayout),
			strconv.FormatFloat(rec.Temperature, 'f', 1, 64),
			strconv.Itoa(rec.Humidity),
			strconv.FormatFloat(rec.Precipitation, 'f', 1, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	w.Flush()
	return w.Error()
}

// sampleRecord draws one plausible observation: summer-ish temperatures in
// the 8-38 °C range, humidity 30-90%, rain on roughly one day in four.
func sampleRecord(rng *rand.Rand, date time.Time) domain.WeatherRecord {
	rec := domain.WeatherRecord{
		Date:        date,
		Temperature: 8 + rng.Float64()*30,
		Humidity:    30 + rng.Intn(61),
	}
	if rng.Intn(4) == 0 {
		rec.Precipitation = float64(rng.Intn(200)) / 10.0
	}
	return rec
}
