package service_test

import (
	"testing"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
)

func TestAddFoodDefaults(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 12:00")

	id, err := service.AddFood(s, service.FoodItemInput{
		Name:     "Banana",
		Calories: 105,
	})
	if err != nil {
		t.Fatalf("add food: %v", err)
	}
	if id == "" {
		t.Fatalf("expected non-empty id")
	}
	item := s.Food[0]
	if item.Quantity != 1 {
		t.Fatalf("expected quantity default 1, got %v", item.Quantity)
	}
	if item.Meal != "snack" {
		t.Fatalf("expected meal default snack, got %q", item.Meal)
	}
	if item.Date != "2026-03-01" {
		t.Fatalf("expected today's date, got %q", item.Date)
	}
}

func TestAddFoodValidation(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 12:00")

	cases := []struct {
		name string
		in   service.FoodItemInput
	}{
		{"empty name", service.FoodItemInput{Name: "  "}},
		{"negative calories", service.FoodItemInput{Name: "x", Calories: -1}},
		{"bad meal", service.FoodItemInput{Name: "x", Meal: "brunch"}},
		{"bad date", service.FoodItemInput{Name: "x", Date: "03/01/2026"}},
		{"negative fiber", service.FoodItemInput{Name: "x", FiberG: floatPtr(-2)}},
	}
	for _, tc := range cases {
		if _, err := service.AddFood(s, tc.in); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestAddFoodBumpsTodayCalories(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 12:00")

	if _, err := service.AddFood(s, service.FoodItemInput{Name: "Rice", Calories: 205.4, Quantity: 2}); err != nil {
		t.Fatalf("add food: %v", err)
	}
	if s.Today.Calories != 411 {
		t.Fatalf("expected today calories 411, got %d", s.Today.Calories)
	}

	// Backdated entries do not touch the daily counter.
	if _, err := service.AddFood(s, service.FoodItemInput{Name: "Toast", Calories: 80, Date: "2026-02-28"}); err != nil {
		t.Fatalf("add backdated food: %v", err)
	}
	if s.Today.Calories != 411 {
		t.Fatalf("backdated entry changed today counter: %d", s.Today.Calories)
	}
}

func TestNutritionSummaryScalesByQuantity(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 12:00")

	if _, err := service.AddFood(s, service.FoodItemInput{
		Name:     "Oats",
		Calories: 150,
		ProteinG: 5,
		CarbsG:   27,
		FatG:     3,
		FiberG:   floatPtr(4),
		Quantity: 2,
	}); err != nil {
		t.Fatalf("add food: %v", err)
	}
	// No fiber recorded: counts as zero, not an error.
	if _, err := service.AddFood(s, service.FoodItemInput{
		Name:     "Egg",
		Calories: 78,
		ProteinG: 6,
		FatG:     5,
	}); err != nil {
		t.Fatalf("add food: %v", err)
	}

	sum := service.NutritionSummaryFor(s, "2026-03-01")
	if sum.Items != 2 {
		t.Fatalf("expected 2 items, got %d", sum.Items)
	}
	if !almostEqual(sum.Calories, 378) {
		t.Fatalf("expected 378 calories, got %v", sum.Calories)
	}
	if !almostEqual(sum.ProteinG, 16) {
		t.Fatalf("expected 16g protein, got %v", sum.ProteinG)
	}
	if !almostEqual(sum.FiberG, 8) {
		t.Fatalf("expected 8g fiber, got %v", sum.FiberG)
	}
}

func TestNutritionSummaryEmptyDate(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 12:00")

	sum := service.NutritionSummaryFor(s, "2026-03-01")
	if sum.Items != 0 || sum.Calories != 0 {
		t.Fatalf("expected zero summary, got %+v", sum)
	}
}
