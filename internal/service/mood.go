package service

import (
	"fmt"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/model"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
)

type MoodInput struct {
	Mood   string
	Energy int
	Stress int
	Date   string
}

func AddMood(s *store.Store, in MoodInput) (string, error) {
	mood := normalizeName(in.Mood)
	if _, ok := model.MoodScore[mood]; !ok {
		return "", fmt.Errorf("invalid mood %q (use awful, bad, neutral, good or great)", in.Mood)
	}
	if in.Energy < 0 || in.Energy > 10 {
		return "", fmt.Errorf("energy must be between 0 and 10")
	}
	if in.Stress < 0 || in.Stress > 10 {
		return "", fmt.Errorf("stress must be between 0 and 10")
	}
	date, err := normalizeDate(in.Date, s.TodayDate())
	if err != nil {
		return "", err
	}
	return s.AddMoodRecord(model.MoodRecord{
		Mood:   mood,
		Energy: in.Energy,
		Stress: in.Stress,
		Date:   date,
	})
}

type MoodSummary struct {
	Records      int     `json:"records"`
	AvgMoodScore float64 `json:"avg_mood_score"`
	AvgEnergy    float64 `json:"avg_energy"`
	AvgStress    float64 `json:"avg_stress"`
}

// MoodSummaryFor averages the last n records by insertion order, the
// same windowing rule the sleep summary uses.
func MoodSummaryFor(s *store.Store, n int) MoodSummary {
	if n <= 0 {
		n = 7
	}
	recent := lastN(s.Mood, n)
	out := MoodSummary{Records: len(recent)}
	if len(recent) == 0 {
		return out
	}
	var mood, energy, stress float64
	for _, rec := range recent {
		mood += model.MoodScore[rec.Mood]
		energy += float64(rec.Energy)
		stress += float64(rec.Stress)
	}
	div := float64(len(recent))
	out.AvgMoodScore = mood / div
	out.AvgEnergy = energy / div
	out.AvgStress = stress / div
	return out
}
