package service_test

import (
	"testing"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
)

func TestAddExerciseEstimatesCaloriesFromMET(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 12:00")

	if err := service.UpdateProfile(s, service.UpdateProfileInput{WeightKg: floatPtr(70)}); err != nil {
		t.Fatalf("update profile: %v", err)
	}

	// running_5mph has MET 8.3: 8.3 * 70kg * 30/60 = 290.5, rounded half
	// away from zero.
	if _, err := service.AddExercise(s, service.ExerciseInput{Name: "running_5mph", DurationMin: 30}); err != nil {
		t.Fatalf("add exercise: %v", err)
	}
	if got := s.Exercise[0].CaloriesBurned; got != 291 {
		t.Fatalf("expected 291 estimated calories, got %d", got)
	}
	if s.Exercise[0].Type != "cardio" {
		t.Fatalf("expected default type cardio, got %q", s.Exercise[0].Type)
	}
	if s.Today.ExerciseMin != 30 {
		t.Fatalf("expected today exercise counter 30, got %d", s.Today.ExerciseMin)
	}
}

func TestAddExerciseKeepsExplicitCalories(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 12:00")

	if _, err := service.AddExercise(s, service.ExerciseInput{Name: "running_5mph", DurationMin: 30, CaloriesBurned: 200}); err != nil {
		t.Fatalf("add exercise: %v", err)
	}
	if got := s.Exercise[0].CaloriesBurned; got != 200 {
		t.Fatalf("explicit calories overwritten: %d", got)
	}
}

func TestAddExerciseUnknownActivityStored(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 12:00")

	// An activity with no MET value is still logged; calories stay 0.
	if _, err := service.AddExercise(s, service.ExerciseInput{Name: "juggling", DurationMin: 15}); err != nil {
		t.Fatalf("add exercise: %v", err)
	}
	if got := s.Exercise[0].CaloriesBurned; got != 0 {
		t.Fatalf("expected 0 calories for unknown activity, got %d", got)
	}
}

func TestAddExerciseValidation(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 12:00")

	if _, err := service.AddExercise(s, service.ExerciseInput{Name: "", DurationMin: 30}); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if _, err := service.AddExercise(s, service.ExerciseInput{Name: "walking", DurationMin: 0}); err == nil {
		t.Fatalf("expected error for zero duration")
	}
	if _, err := service.AddExercise(s, service.ExerciseInput{Name: "walking", DurationMin: 10, CaloriesBurned: -5}); err == nil {
		t.Fatalf("expected error for negative calories")
	}
}

func TestExerciseSummaryFor(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 12:00")

	seed := []service.ExerciseInput{
		{Name: "walking", DurationMin: 20, CaloriesBurned: 80},
		{Name: "cycling", DurationMin: 40, CaloriesBurned: 300},
		{Name: "swimming", DurationMin: 30, CaloriesBurned: 250, Date: "2026-02-28"},
	}
	for _, in := range seed {
		if _, err := service.AddExercise(s, in); err != nil {
			t.Fatalf("add %s: %v", in.Name, err)
		}
	}

	sum := service.ExerciseSummaryFor(s, "2026-03-01")
	if sum.Workouts != 2 || sum.DurationMin != 60 || sum.CaloriesBurned != 380 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
}

func TestLookupMET(t *testing.T) {
	t.Parallel()

	if met, ok := service.LookupMET("running_5mph"); !ok || !almostEqual(met, 8.3) {
		t.Fatalf("expected running_5mph MET 8.3, got %v %v", met, ok)
	}
	if _, ok := service.LookupMET("juggling"); ok {
		t.Fatalf("expected unknown activity to miss")
	}
	if len(service.KnownActivities()) == 0 {
		t.Fatalf("expected non-empty activity list")
	}
}

func TestCalculateCaloriesBurned(t *testing.T) {
	t.Parallel()

	if got := service.CalculateCaloriesBurned(8.3, 70, 30); !almostEqual(got, 290.5) {
		t.Fatalf("expected 290.5, got %v", got)
	}
	if got := service.CalculateCaloriesBurned(3.5, 60, 60); !almostEqual(got, 210) {
		t.Fatalf("expected 210, got %v", got)
	}
}
