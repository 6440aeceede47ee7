package service

import (
	"fmt"
	"strings"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/model"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
)

type AddictionInput struct {
	Type   string
	Amount float64
	Unit   string
	Goal   *float64
	Date   string
	Notes  string
}

func LogAddiction(s *store.Store, in AddictionInput) (string, error) {
	addictionType := normalizeName(in.Type)
	if addictionType == "" {
		return "", fmt.Errorf("addiction type is required")
	}
	if err := validateNonNegativeFloat("amount", in.Amount); err != nil {
		return "", err
	}
	unit := normalizeName(in.Unit)
	if unit == "" {
		return "", fmt.Errorf("unit is required")
	}
	if in.Goal != nil {
		if err := validateNonNegativeFloat("goal", *in.Goal); err != nil {
			return "", err
		}
	}
	date, err := normalizeDate(in.Date, s.TodayDate())
	if err != nil {
		return "", err
	}
	return s.AddAddictionRecord(model.AddictionRecord{
		Type:   addictionType,
		Amount: in.Amount,
		Unit:   unit,
		Goal:   in.Goal,
		Date:   date,
		Notes:  strings.TrimSpace(in.Notes),
	})
}

// AddictionHistory returns the records of one type, oldest first.
func AddictionHistory(s *store.Store, addictionType string) []model.AddictionRecord {
	addictionType = normalizeName(addictionType)
	out := make([]model.AddictionRecord, 0)
	for _, rec := range s.Addiction {
		if rec.Type == addictionType {
			out = append(out, rec)
		}
	}
	return out
}

func SetAddictionGoal(s *store.Store, addictionType string, goal float64) error {
	if err := validateNonNegativeFloat("goal", goal); err != nil {
		return err
	}
	return s.UpdateAddictionGoal(normalizeName(addictionType), goal)
}
