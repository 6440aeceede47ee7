package service_test

import (
	"testing"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
)

func TestLogAddictionValidation(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 18:00")

	if _, err := service.LogAddiction(s, service.AddictionInput{Type: "", Amount: 1, Unit: "cups"}); err == nil {
		t.Fatalf("expected error for empty type")
	}
	if _, err := service.LogAddiction(s, service.AddictionInput{Type: "caffeine", Amount: 1, Unit: ""}); err == nil {
		t.Fatalf("expected error for empty unit")
	}
	if _, err := service.LogAddiction(s, service.AddictionInput{Type: "caffeine", Amount: -1, Unit: "cups"}); err == nil {
		t.Fatalf("expected error for negative amount")
	}
}

func TestAddictionHistoryFiltersByType(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 18:00")

	seed := []service.AddictionInput{
		{Type: "Caffeine", Amount: 3, Unit: "cups", Date: "2026-02-27"},
		{Type: "caffeine", Amount: 2, Unit: "cups", Date: "2026-02-28"},
		{Type: "sugar", Amount: 40, Unit: "g", Date: "2026-02-28"},
	}
	for _, in := range seed {
		if _, err := service.LogAddiction(s, in); err != nil {
			t.Fatalf("log addiction: %v", err)
		}
	}

	// Type is case-normalized on write and lookup.
	history := service.AddictionHistory(s, "CAFFEINE")
	if len(history) != 2 {
		t.Fatalf("expected 2 caffeine records, got %d", len(history))
	}
	if history[0].Date != "2026-02-27" {
		t.Fatalf("expected oldest first, got %+v", history)
	}
}

func TestSetAddictionGoalAppliesToType(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 18:00")

	if _, err := service.LogAddiction(s, service.AddictionInput{Type: "caffeine", Amount: 3, Unit: "cups"}); err != nil {
		t.Fatalf("log addiction: %v", err)
	}
	if err := service.SetAddictionGoal(s, "caffeine", 1); err != nil {
		t.Fatalf("set goal: %v", err)
	}
	if goal := s.Addiction[0].Goal; goal == nil || *goal != 1 {
		t.Fatalf("goal not applied: %+v", s.Addiction[0])
	}
	if err := service.SetAddictionGoal(s, "nicotine", 0); err == nil {
		t.Fatalf("expected error for type with no records")
	}
	if err := service.SetAddictionGoal(s, "caffeine", -1); err == nil {
		t.Fatalf("expected error for negative goal")
	}
}
