package service_test

import (
	"testing"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
)

func TestAddBodyMeasurement(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 07:00")

	id, err := service.AddBodyMeasurement(s, service.BodyMeasurementInput{
		WeightKg:   72.4,
		BodyFatPct: floatPtr(18.5),
		Notes:      " morning weigh-in ",
	})
	if err != nil {
		t.Fatalf("add measurement: %v", err)
	}
	if id == "" {
		t.Fatalf("expected non-empty id")
	}
	m := s.Body[0]
	if m.Date != "2026-03-01" || m.Notes != "morning weigh-in" {
		t.Fatalf("unexpected measurement: %+v", m)
	}
	if m.MuscleMassKg != nil {
		t.Fatalf("expected nil muscle mass, got %v", *m.MuscleMassKg)
	}
}

func TestAddBodyMeasurementValidation(t *testing.T) {
	t.Parallel()
	s := newTestStore(t, "2026-03-01 07:00")

	cases := []struct {
		name string
		in   service.BodyMeasurementInput
	}{
		{"zero weight", service.BodyMeasurementInput{WeightKg: 0}},
		{"fat over 100", service.BodyMeasurementInput{WeightKg: 70, BodyFatPct: floatPtr(101)}},
		{"negative fat", service.BodyMeasurementInput{WeightKg: 70, BodyFatPct: floatPtr(-1)}},
		{"zero muscle", service.BodyMeasurementInput{WeightKg: 70, MuscleMassKg: floatPtr(0)}},
	}
	for _, tc := range cases {
		if _, err := service.AddBodyMeasurement(s, tc.in); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}
