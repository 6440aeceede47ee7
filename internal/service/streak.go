package service

import (
	"sort"
	"time"
)

// MaxStreak counts the longest run of consecutive calendar days in a
// list of YYYY-MM-DD strings. Duplicates collapse before counting.
// Consecutiveness is literal date arithmetic (previous day plus one,
// compared as ISO strings) rather than elapsed-time math, so DST shifts
// cannot produce off-by-one runs.
func MaxStreak(dates []string) int {
	if len(dates) == 0 {
		return 0
	}
	seen := make(map[string]bool, len(dates))
	unique := make([]string, 0, len(dates))
	for _, d := range dates {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		unique = append(unique, d)
	}
	if len(unique) == 0 {
		return 0
	}
	sort.Strings(unique)

	maxStreak, current := 1, 1
	for i := 1; i < len(unique); i++ {
		if unique[i] == nextDay(unique[i-1]) {
			current++
		} else {
			current = 1
		}
		if current > maxStreak {
			maxStreak = current
		}
	}
	return maxStreak
}

func nextDay(date string) string {
	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format("2006-01-02")
}
