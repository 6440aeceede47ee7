package service

import (
	"fmt"
	"strings"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/model"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
)

type BodyMeasurementInput struct {
	WeightKg     float64
	BodyFatPct   *float64
	MuscleMassKg *float64
	Date         string
	Notes        string
}

func AddBodyMeasurement(s *store.Store, in BodyMeasurementInput) (string, error) {
	if in.WeightKg <= 0 {
		return "", fmt.Errorf("weight must be > 0")
	}
	if in.BodyFatPct != nil && (*in.BodyFatPct < 0 || *in.BodyFatPct > 100) {
		return "", fmt.Errorf("body fat must be between 0 and 100")
	}
	if in.MuscleMassKg != nil && *in.MuscleMassKg <= 0 {
		return "", fmt.Errorf("muscle mass must be > 0")
	}
	date, err := normalizeDate(in.Date, s.TodayDate())
	if err != nil {
		return "", err
	}
	return s.AddBodyMeasurement(model.BodyMeasurement{
		WeightKg:     in.WeightKg,
		BodyFatPct:   in.BodyFatPct,
		MuscleMassKg: in.MuscleMassKg,
		Date:         date,
		Notes:        strings.TrimSpace(in.Notes),
	})
}
