package service_test

import (
	"testing"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/model"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
)

func TestUpdateProfileMergesPartialInput(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 09:00")

	if err := service.UpdateProfile(s, service.UpdateProfileInput{
		Name:     strPtr("Alex"),
		WeightKg: floatPtr(70),
		HeightCm: floatPtr(175),
	}); err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if err := service.UpdateProfile(s, service.UpdateProfileInput{WeightKg: floatPtr(72)}); err != nil {
		t.Fatalf("second update: %v", err)
	}

	p := s.Profile
	if p == nil {
		t.Fatalf("expected profile to be set")
	}
	if p.Name != "Alex" || p.WeightKg != 72 || p.HeightCm != 175 {
		t.Fatalf("unexpected merged profile: %+v", p)
	}
}

func TestUpdateProfileRejectsInvalidValues(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 09:00")

	if err := service.UpdateProfile(s, service.UpdateProfileInput{WeightKg: floatPtr(0)}); err == nil {
		t.Fatalf("expected error for zero weight")
	}
	if err := service.UpdateProfile(s, service.UpdateProfileInput{Age: intPtr(-1)}); err == nil {
		t.Fatalf("expected error for negative age")
	}
	if err := service.UpdateProfile(s, service.UpdateProfileInput{ActivityLevel: strPtr("hyperactive")}); err == nil {
		t.Fatalf("expected error for unknown activity level")
	}
}

func TestCalculateBMI(t *testing.T) {
	t.Parallel()

	if got := service.CalculateBMI(70, 175); !almostEqual(got, 70/(1.75*1.75)) {
		t.Fatalf("unexpected BMI: %v", got)
	}
	if got := service.CalculateBMI(70, 0); got != 0 {
		t.Fatalf("expected 0 for zero height, got %v", got)
	}
}

func TestCalculateCalorieNeeds(t *testing.T) {
	t.Parallel()

	male := &model.UserProfile{
		WeightKg:      70,
		HeightCm:      175,
		Age:           30,
		Gender:        "male",
		ActivityLevel: "moderately_active",
	}
	// (10*70 + 6.25*175 - 5*30 + 5) * 1.55
	if got := service.CalculateCalorieNeeds(male); !almostEqual(got, 1648.75*1.55) {
		t.Fatalf("unexpected male needs: %v", got)
	}

	sedentary := &model.UserProfile{
		WeightKg:      60,
		HeightCm:      165,
		Age:           25,
		Gender:        "female",
		ActivityLevel: "sedentary",
	}
	// (10*60 + 6.25*165 - 5*25 - 161) * 1.2
	if got := service.CalculateCalorieNeeds(sedentary); !almostEqual(got, 1345.25*1.2) {
		t.Fatalf("unexpected sedentary needs: %v", got)
	}
}

func TestCalculateCalorieNeedsNilProfileDefaults(t *testing.T) {
	t.Parallel()

	// Nil profile: 60kg/165cm, age 30, non-male formula, factor 1.55.
	want := (10*60.0 + 6.25*165.0 - 5*30.0 - 161) * 1.55
	if got := service.CalculateCalorieNeeds(nil); !almostEqual(got, want) {
		t.Fatalf("unexpected default needs: %v (want %v)", got, want)
	}
}

func TestProfileWeightKgFallback(t *testing.T) {
	t.Parallel()

	if got := service.ProfileWeightKg(nil); got != 70 {
		t.Fatalf("expected fallback 70, got %v", got)
	}
	if got := service.ProfileWeightKg(&model.UserProfile{WeightKg: 82.5}); got != 82.5 {
		t.Fatalf("expected stored weight, got %v", got)
	}
}
