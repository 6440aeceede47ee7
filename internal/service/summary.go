package service

import (
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
)

type HealthSummary struct {
	Date                 string  `json:"date"`
	TodayCalories        float64 `json:"today_calories"`
	TotalWorkouts        int     `json:"total_workouts"`
	AvgSleepHours        float64 `json:"avg_sleep_hours"`
	AvgMoodScore         float64 `json:"avg_mood_score"`
	WeekExerciseMin      int     `json:"week_exercise_min"`
	WeekExerciseCalories int     `json:"week_exercise_calories"`
}

// HealthSummaryFor aggregates today's intake, the all-time workout
// count, 7-record sleep and mood rolling averages, and a trailing
// 7-calendar-day exercise window.
//
// NOTE: the exercise figures use a calendar-day cutoff (date string
// compare against a week ago) while sleep and mood use the last seven
// records regardless of date. Both windowing rules are long-standing
// behavior that downstream consumers rely on; do not unify them.
func HealthSummaryFor(s *store.Store) HealthSummary {
	today := s.TodayDate()
	out := HealthSummary{
		Date:          today,
		TodayCalories: NutritionSummaryFor(s, today).Calories,
		TotalWorkouts: len(s.Exercise),
		AvgSleepHours: SleepSummaryFor(s, 7).AvgDurationHours,
		AvgMoodScore:  MoodSummaryFor(s, 7).AvgMoodScore,
	}

	weekAgo := daysBefore(today, 7)
	for _, item := range s.Exercise {
		if item.Date >= weekAgo {
			out.WeekExerciseMin += item.DurationMin
			out.WeekExerciseCalories += item.CaloriesBurned
		}
	}
	return out
}

func daysBefore(date string, days int) string {
	t, err := parseISODate(date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, -days).Format("2006-01-02")
}
