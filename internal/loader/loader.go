// Package loader reads daily weather observation CSV files into memory.
package loader

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/couchcryptid/weather-report/internal/domain"
)

// ParseWeatherData reads the CSV file at path and returns its observations in
// file order. The first line is a header and is discarded without validation.
// Any unreadable file or malformed row fails the whole load; no partial
// result is returned. An empty or header-only file yields zero records.
func ParseWeatherData(path string) ([]domain.WeatherRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open weather data: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read weather data: %w", err)
		}
		return nil, nil
	}

	var records []domain.WeatherRecord
	line := 1
	for scanner.Scan() {
		line++
		rec, err := domain.ParseRecord(strings.Split(scanner.Text(), ","))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read weather data: %w", err)
	}

	return records, nil
}
