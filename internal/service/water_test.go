package service_test

import (
	"testing"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
)

func TestAddWaterDefaultsAndCounter(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 14:30")

	if _, err := service.AddWater(s, service.WaterInput{AmountMl: 250}); err != nil {
		t.Fatalf("add water: %v", err)
	}
	w := s.Water[0]
	if w.Date != "2026-03-01" || w.Time != "14:30" {
		t.Fatalf("unexpected stamps: %+v", w)
	}
	if s.Today.WaterMl != 250 {
		t.Fatalf("expected counter 250, got %d", s.Today.WaterMl)
	}

	if _, err := service.AddWater(s, service.WaterInput{AmountMl: 500, Date: "2026-02-28"}); err != nil {
		t.Fatalf("add backdated water: %v", err)
	}
	if s.Today.WaterMl != 250 {
		t.Fatalf("backdated intake changed today counter: %d", s.Today.WaterMl)
	}
}

func TestAddWaterRejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 14:30")

	if _, err := service.AddWater(s, service.WaterInput{AmountMl: 0}); err == nil {
		t.Fatalf("expected error for zero amount")
	}
	if _, err := service.AddWater(s, service.WaterInput{AmountMl: -100}); err == nil {
		t.Fatalf("expected error for negative amount")
	}
}

func TestWaterTotalForSumsCollection(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 14:30")

	for _, amount := range []int{250, 500, 330} {
		if _, err := service.AddWater(s, service.WaterInput{AmountMl: amount}); err != nil {
			t.Fatalf("add water: %v", err)
		}
	}
	if _, err := service.AddWater(s, service.WaterInput{AmountMl: 1000, Date: "2026-02-28"}); err != nil {
		t.Fatalf("add water: %v", err)
	}

	if got := service.WaterTotalFor(s, "2026-03-01"); got != 1080 {
		t.Fatalf("expected 1080ml, got %d", got)
	}
	if got := len(service.TodaysWaterIntake(s)); got != 3 {
		t.Fatalf("expected 3 intakes today, got %d", got)
	}
}
