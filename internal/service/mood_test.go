package service_test

import (
	"testing"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
)

func TestAddMoodValidation(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 20:00")

	if _, err := service.AddMood(s, service.MoodInput{Mood: "ecstatic"}); err == nil {
		t.Fatalf("expected error for unknown mood")
	}
	if _, err := service.AddMood(s, service.MoodInput{Mood: "good", Energy: 11}); err == nil {
		t.Fatalf("expected error for energy > 10")
	}
	if _, err := service.AddMood(s, service.MoodInput{Mood: "good", Stress: -1}); err == nil {
		t.Fatalf("expected error for negative stress")
	}
}

func TestMoodSummaryAverages(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 20:00")

	// Ordinals: great=5, neutral=3, awful=1.
	seed := []service.MoodInput{
		{Mood: "great", Energy: 8, Stress: 2},
		{Mood: "neutral", Energy: 5, Stress: 5},
		{Mood: "awful", Energy: 2, Stress: 9},
	}
	for _, in := range seed {
		if _, err := service.AddMood(s, in); err != nil {
			t.Fatalf("add mood: %v", err)
		}
	}

	sum := service.MoodSummaryFor(s, 7)
	if sum.Records != 3 {
		t.Fatalf("expected 3 records, got %d", sum.Records)
	}
	if !almostEqual(sum.AvgMoodScore, 3) {
		t.Fatalf("expected avg mood 3, got %v", sum.AvgMoodScore)
	}
	if !almostEqual(sum.AvgEnergy, 5) {
		t.Fatalf("expected avg energy 5, got %v", sum.AvgEnergy)
	}
	if !almostEqual(sum.AvgStress, 16.0/3.0) {
		t.Fatalf("unexpected avg stress %v", sum.AvgStress)
	}
}

func TestMoodSummaryWindowsByInsertion(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 20:00")

	if _, err := service.AddMood(s, service.MoodInput{Mood: "awful", Date: "2026-02-20"}); err != nil {
		t.Fatalf("add mood: %v", err)
	}
	if _, err := service.AddMood(s, service.MoodInput{Mood: "great", Date: "2026-03-01"}); err != nil {
		t.Fatalf("add mood: %v", err)
	}

	sum := service.MoodSummaryFor(s, 1)
	if sum.Records != 1 || !almostEqual(sum.AvgMoodScore, 5) {
		t.Fatalf("expected only the latest record, got %+v", sum)
	}
}
