package service

import (
	"fmt"
	"strings"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/model"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
)

type SleepInput struct {
	DurationHours float64
	Quality       string
	Bedtime       string
	WakeTime      string
	Date          string
}

func AddSleep(s *store.Store, in SleepInput) (string, error) {
	if in.DurationHours <= 0 || in.DurationHours > 24 {
		return "", fmt.Errorf("sleep duration must be between 0 and 24 hours")
	}
	quality := normalizeName(in.Quality)
	if _, ok := model.SleepQualityScore[quality]; !ok {
		return "", fmt.Errorf("invalid sleep quality %q (use poor, fair, good or excellent)", in.Quality)
	}
	date, err := normalizeDate(in.Date, s.TodayDate())
	if err != nil {
		return "", err
	}
	return s.AddSleepRecord(model.SleepRecord{
		DurationHours: in.DurationHours,
		Quality:       quality,
		Bedtime:       strings.TrimSpace(in.Bedtime),
		WakeTime:      strings.TrimSpace(in.WakeTime),
		Date:          date,
	})
}

type SleepSummary struct {
	Records          int     `json:"records"`
	AvgDurationHours float64 `json:"avg_duration_hours"`
	AvgQualityScore  float64 `json:"avg_quality_score"`
	Quality          string  `json:"quality"`
}

// SleepSummaryFor averages the last n records by insertion order, not by
// calendar window. The averaged quality ordinal is re-bucketed into one
// of the four labels.
func SleepSummaryFor(s *store.Store, n int) SleepSummary {
	if n <= 0 {
		n = 7
	}
	recent := lastN(s.Sleep, n)
	out := SleepSummary{Records: len(recent)}
	if len(recent) == 0 {
		return out
	}
	var duration, score float64
	for _, rec := range recent {
		duration += rec.DurationHours
		score += model.SleepQualityScore[rec.Quality]
	}
	out.AvgDurationHours = duration / float64(len(recent))
	out.AvgQualityScore = score / float64(len(recent))
	out.Quality = bucketSleepQuality(out.AvgQualityScore)
	return out
}

func bucketSleepQuality(avg float64) string {
	switch {
	case avg >= 3.5:
		return model.SleepQualityExcellent
	case avg >= 2.5:
		return model.SleepQualityGood
	case avg >= 1.5:
		return model.SleepQualityFair
	default:
		return model.SleepQualityPoor
	}
}
