package service

import (
	"fmt"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/model"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
)

var streakThresholds = []int{3, 7, 30}

// CheckStreakAchievements inspects the food, exercise and water logs and
// awards any streak achievement not yet earned. Awards are append-only
// and keyed by a stable name, so re-running never duplicates one. Each
// award also appends an unread notification.
func CheckStreakAchievements(s *store.Store) ([]model.Achievement, error) {
	earned := make(map[string]bool, len(s.Achievements))
	for _, a := range s.Achievements {
		earned[a.Name] = true
	}

	tracked := []struct {
		kind  string
		dates []string
	}{
		{"food", foodDates(s)},
		{"exercise", exerciseDates(s)},
		{"water", waterDates(s)},
	}

	awarded := make([]model.Achievement, 0)
	for _, track := range tracked {
		streak := MaxStreak(track.dates)
		for _, threshold := range streakThresholds {
			if streak < threshold {
				continue
			}
			name := fmt.Sprintf("%d-day %s streak", threshold, track.kind)
			if earned[name] {
				continue
			}
			achievement := model.Achievement{
				Name:        name,
				Type:        "streak",
				Description: fmt.Sprintf("Logged %s on %d consecutive days", track.kind, threshold),
				Date:        s.TodayDate(),
			}
			id, err := s.AddAchievement(achievement)
			if err != nil {
				return awarded, err
			}
			achievement.ID = id
			if _, err := s.AddNotification(model.Notification{
				Message: "Achievement unlocked: " + name,
				Date:    s.TodayDate(),
			}); err != nil {
				return awarded, err
			}
			earned[name] = true
			awarded = append(awarded, achievement)
		}
	}
	return awarded, nil
}

func foodDates(s *store.Store) []string {
	dates := make([]string, 0, len(s.Food))
	for _, item := range s.Food {
		dates = append(dates, item.Date)
	}
	return dates
}

func exerciseDates(s *store.Store) []string {
	dates := make([]string, 0, len(s.Exercise))
	for _, item := range s.Exercise {
		dates = append(dates, item.Date)
	}
	return dates
}

func waterDates(s *store.Store) []string {
	dates := make([]string, 0, len(s.Water))
	for _, w := range s.Water {
		dates = append(dates, w.Date)
	}
	return dates
}
