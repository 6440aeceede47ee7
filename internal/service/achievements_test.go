package service_test

import (
	"testing"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
)

func TestCheckStreakAchievementsAwardsAndNotifies(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-03 12:00")

	for _, date := range []string{"2026-03-01", "2026-03-02", "2026-03-03"} {
		if _, err := service.AddFood(s, service.FoodItemInput{Name: "Meal", Calories: 500, Date: date}); err != nil {
			t.Fatalf("add food: %v", err)
		}
	}

	awarded, err := service.CheckStreakAchievements(s)
	if err != nil {
		t.Fatalf("check achievements: %v", err)
	}
	if len(awarded) != 1 {
		t.Fatalf("expected 1 award, got %d: %+v", len(awarded), awarded)
	}
	if awarded[0].Name != "3-day food streak" {
		t.Fatalf("unexpected achievement name %q", awarded[0].Name)
	}
	if len(s.Notifications) != 1 || s.Notifications[0].Read {
		t.Fatalf("expected one unread notification, got %+v", s.Notifications)
	}
	if s.Notifications[0].Message != "Achievement unlocked: 3-day food streak" {
		t.Fatalf("unexpected notification message %q", s.Notifications[0].Message)
	}
}

func TestCheckStreakAchievementsIsIdempotent(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-03 12:00")

	for _, date := range []string{"2026-03-01", "2026-03-02", "2026-03-03"} {
		if _, err := service.AddWater(s, service.WaterInput{AmountMl: 500, Date: date}); err != nil {
			t.Fatalf("add water: %v", err)
		}
	}

	first, err := service.CheckStreakAchievements(s)
	if err != nil {
		t.Fatalf("first check: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 award, got %d", len(first))
	}

	second, err := service.CheckStreakAchievements(s)
	if err != nil {
		t.Fatalf("second check: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("re-run awarded again: %+v", second)
	}
	if len(s.Achievements) != 1 || len(s.Notifications) != 1 {
		t.Fatalf("expected single achievement and notification, got %d/%d", len(s.Achievements), len(s.Notifications))
	}
}

func TestCheckStreakAchievementsMultipleThresholds(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-07 12:00")

	for _, date := range []string{"2026-03-01", "2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-06", "2026-03-07"} {
		if _, err := service.AddExercise(s, service.ExerciseInput{Name: "walking", DurationMin: 20, CaloriesBurned: 80, Date: date}); err != nil {
			t.Fatalf("add exercise: %v", err)
		}
	}

	awarded, err := service.CheckStreakAchievements(s)
	if err != nil {
		t.Fatalf("check achievements: %v", err)
	}
	// A 7-day streak earns the 3-day and 7-day awards in one pass.
	if len(awarded) != 2 {
		t.Fatalf("expected 2 awards, got %d: %+v", len(awarded), awarded)
	}
	names := map[string]bool{}
	for _, a := range awarded {
		names[a.Name] = true
	}
	if !names["3-day exercise streak"] || !names["7-day exercise streak"] {
		t.Fatalf("unexpected award names: %v", names)
	}
}

func TestCheckStreakAchievementsNoStreak(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-03 12:00")

	if _, err := service.AddFood(s, service.FoodItemInput{Name: "Meal", Calories: 500, Date: "2026-03-01"}); err != nil {
		t.Fatalf("add food: %v", err)
	}
	if _, err := service.AddFood(s, service.FoodItemInput{Name: "Meal", Calories: 500, Date: "2026-03-03"}); err != nil {
		t.Fatalf("add food: %v", err)
	}

	awarded, err := service.CheckStreakAchievements(s)
	if err != nil {
		t.Fatalf("check achievements: %v", err)
	}
	if len(awarded) != 0 {
		t.Fatalf("expected no awards, got %+v", awarded)
	}
}
