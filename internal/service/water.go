package service

import (
	"fmt"
	"strings"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/model"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
)

type WaterInput struct {
	AmountMl int
	Date     string
	Time     string
}

func AddWater(s *store.Store, in WaterInput) (string, error) {
	if in.AmountMl <= 0 {
		return "", fmt.Errorf("water amount must be > 0")
	}
	date, err := normalizeDate(in.Date, s.TodayDate())
	if err != nil {
		return "", err
	}
	clock := strings.TrimSpace(in.Time)
	if clock == "" {
		clock = s.NowTime()
	}
	id, err := s.AddWaterIntake(model.WaterIntake{
		AmountMl: in.AmountMl,
		Date:     date,
		Time:     clock,
	})
	if err != nil {
		return "", err
	}
	if date == s.TodayDate() {
		today := s.Today
		today.WaterMl += in.AmountMl
		if err := s.SaveToday(today); err != nil {
			return "", err
		}
	}
	return id, nil
}

func TodaysWaterIntake(s *store.Store) []model.WaterIntake {
	items := make([]model.WaterIntake, 0)
	for _, w := range s.Water {
		if w.Date == s.TodayDate() {
			items = append(items, w)
		}
	}
	return items
}

// WaterTotalFor sums intake for a date from the collection itself, not
// the daily counter.
func WaterTotalFor(s *store.Store, date string) int {
	total := 0
	for _, w := range s.Water {
		if w.Date == date {
			total += w.AmountMl
		}
	}
	return total
}
