package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/model"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
)

type ExerciseInput struct {
	Name           string
	Type           string
	DurationMin    int
	CaloriesBurned int
	Date           string
	Notes          string
}

// AddExercise logs a workout. When calories burned is not provided and
// the activity name has a MET value, it is estimated from the profile
// weight.
func AddExercise(s *store.Store, in ExerciseInput) (string, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return "", fmt.Errorf("exercise name is required")
	}
	if in.DurationMin <= 0 {
		return "", fmt.Errorf("duration must be > 0")
	}
	if err := validateNonNegativeInt("calories burned", in.CaloriesBurned); err != nil {
		return "", err
	}
	if in.CaloriesBurned == 0 {
		if met, ok := LookupMET(in.Name); ok {
			in.CaloriesBurned = int(math.Round(CalculateCaloriesBurned(met, ProfileWeightKg(s.Profile), in.DurationMin)))
		}
	}
	exType := normalizeName(in.Type)
	if exType == "" {
		exType = "cardio"
	}
	date, err := normalizeDate(in.Date, s.TodayDate())
	if err != nil {
		return "", err
	}

	id, err := s.AddExerciseItem(model.ExerciseItem{
		Name:           normalizeName(in.Name),
		Type:           exType,
		DurationMin:    in.DurationMin,
		CaloriesBurned: in.CaloriesBurned,
		Date:           date,
		Notes:          strings.TrimSpace(in.Notes),
	})
	if err != nil {
		return "", err
	}

	if date == s.TodayDate() {
		today := s.Today
		today.ExerciseMin += in.DurationMin
		if err := s.SaveToday(today); err != nil {
			return "", err
		}
	}
	return id, nil
}

func TodaysExerciseItems(s *store.Store) []model.ExerciseItem {
	return ExerciseItemsForDate(s, s.TodayDate())
}

func ExerciseItemsForDate(s *store.Store, date string) []model.ExerciseItem {
	items := make([]model.ExerciseItem, 0)
	for _, item := range s.Exercise {
		if item.Date == date {
			items = append(items, item)
		}
	}
	return items
}

type ExerciseSummary struct {
	Date           string `json:"date"`
	DurationMin    int    `json:"duration_min"`
	CaloriesBurned int    `json:"calories_burned"`
	Workouts       int    `json:"workouts"`
}

func ExerciseSummaryFor(s *store.Store, date string) ExerciseSummary {
	out := ExerciseSummary{Date: date}
	for _, item := range s.Exercise {
		if item.Date != date {
			continue
		}
		out.Workouts++
		out.DurationMin += item.DurationMin
		out.CaloriesBurned += item.CaloriesBurned
	}
	return out
}
