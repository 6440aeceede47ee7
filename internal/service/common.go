package service

import (
	"fmt"
	"strings"
	"time"
)

func validateNonNegativeInt(name string, value int) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func validateNonNegativeFloat(name string, value float64) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func normalizeName(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}

// normalizeDate validates a YYYY-MM-DD value, substituting fallback when
// empty. Dates are compared as strings everywhere downstream.
func normalizeDate(date, fallback string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return fallback, nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

func parseISODate(date string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", date, time.UTC)
}

// lastN returns the trailing n elements by insertion order.
func lastN[T any](items []T, n int) []T {
	if n <= 0 || n >= len(items) {
		return items
	}
	return items[len(items)-n:]
}
