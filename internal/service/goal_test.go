package service_test

import (
	"testing"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/model"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
)

func TestUpdateGoalsPartialMerge(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 09:00")

	defaults := model.DefaultDailyGoals()
	if err := service.UpdateGoals(s, service.UpdateGoalsInput{
		Calories: intPtr(1800),
		WaterMl:  intPtr(2500),
	}); err != nil {
		t.Fatalf("update goals: %v", err)
	}

	if s.Goals.Calories != 1800 || s.Goals.WaterMl != 2500 {
		t.Fatalf("goals not updated: %+v", s.Goals)
	}
	if s.Goals.ProteinG != defaults.ProteinG || s.Goals.Steps != defaults.Steps {
		t.Fatalf("untouched goals changed: %+v", s.Goals)
	}
}

func TestUpdateGoalsValidation(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 09:00")

	if err := service.UpdateGoals(s, service.UpdateGoalsInput{Calories: intPtr(-100)}); err == nil {
		t.Fatalf("expected error for negative calories")
	}
	if err := service.UpdateGoals(s, service.UpdateGoalsInput{SleepHours: floatPtr(25)}); err == nil {
		t.Fatalf("expected error for sleep goal over 24h")
	}
}
