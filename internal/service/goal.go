package service

import (
	"fmt"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
)

// UpdateGoalsInput carries partial daily goals; nil fields keep their
// current value.
type UpdateGoalsInput struct {
	Calories    *int
	ProteinG    *float64
	CarbsG      *float64
	FatG        *float64
	WaterMl     *int
	Steps       *int
	ExerciseMin *int
	SleepHours  *float64
}

func UpdateGoals(s *store.Store, in UpdateGoalsInput) error {
	g := s.Goals
	if in.Calories != nil {
		if err := validateNonNegativeInt("calories", *in.Calories); err != nil {
			return err
		}
		g.Calories = *in.Calories
	}
	if in.ProteinG != nil {
		if err := validateNonNegativeFloat("protein", *in.ProteinG); err != nil {
			return err
		}
		g.ProteinG = *in.ProteinG
	}
	if in.CarbsG != nil {
		if err := validateNonNegativeFloat("carbs", *in.CarbsG); err != nil {
			return err
		}
		g.CarbsG = *in.CarbsG
	}
	if in.FatG != nil {
		if err := validateNonNegativeFloat("fat", *in.FatG); err != nil {
			return err
		}
		g.FatG = *in.FatG
	}
	if in.WaterMl != nil {
		if err := validateNonNegativeInt("water", *in.WaterMl); err != nil {
			return err
		}
		g.WaterMl = *in.WaterMl
	}
	if in.Steps != nil {
		if err := validateNonNegativeInt("steps", *in.Steps); err != nil {
			return err
		}
		g.Steps = *in.Steps
	}
	if in.ExerciseMin != nil {
		if err := validateNonNegativeInt("exercise", *in.ExerciseMin); err != nil {
			return err
		}
		g.ExerciseMin = *in.ExerciseMin
	}
	if in.SleepHours != nil {
		if *in.SleepHours < 0 || *in.SleepHours > 24 {
			return fmt.Errorf("sleep goal must be between 0 and 24 hours")
		}
		g.SleepHours = *in.SleepHours
	}
	return s.SaveGoals(g)
}
