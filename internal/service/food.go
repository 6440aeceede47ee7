package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/model"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
)

var validMeals = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

type FoodItemInput struct {
	Name        string
	ServingSize string
	Calories    float64
	ProteinG    float64
	CarbsG      float64
	FatG        float64
	FiberG      *float64
	Meal        string
	Quantity    float64
	Date        string
}

func AddFood(s *store.Store, in FoodItemInput) (string, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return "", fmt.Errorf("food name is required")
	}
	if err := validateNonNegativeFloat("calories", in.Calories); err != nil {
		return "", err
	}
	if err := validateNonNegativeFloat("protein", in.ProteinG); err != nil {
		return "", err
	}
	if err := validateNonNegativeFloat("carbs", in.CarbsG); err != nil {
		return "", err
	}
	if err := validateNonNegativeFloat("fat", in.FatG); err != nil {
		return "", err
	}
	if in.FiberG != nil {
		if err := validateNonNegativeFloat("fiber", *in.FiberG); err != nil {
			return "", err
		}
	}
	if in.Quantity <= 0 {
		in.Quantity = 1
	}
	meal := normalizeName(in.Meal)
	if meal == "" {
		meal = "snack"
	}
	if !validMeals[meal] {
		return "", fmt.Errorf("invalid meal %q (use breakfast, lunch, dinner or snack)", in.Meal)
	}
	date, err := normalizeDate(in.Date, s.TodayDate())
	if err != nil {
		return "", err
	}

	id, err := s.AddFoodItem(model.FoodItem{
		Name:        in.Name,
		ServingSize: strings.TrimSpace(in.ServingSize),
		Calories:    in.Calories,
		ProteinG:    in.ProteinG,
		CarbsG:      in.CarbsG,
		FatG:        in.FatG,
		FiberG:      in.FiberG,
		Meal:        meal,
		Quantity:    in.Quantity,
		Date:        date,
	})
	if err != nil {
		return "", err
	}

	if date == s.TodayDate() {
		today := s.Today
		today.Calories += int(math.Round(in.Calories * in.Quantity))
		if err := s.SaveToday(today); err != nil {
			return "", err
		}
	}
	return id, nil
}

func TodaysFoodItems(s *store.Store) []model.FoodItem {
	return FoodItemsForDate(s, s.TodayDate())
}

func FoodItemsForDate(s *store.Store, date string) []model.FoodItem {
	items := make([]model.FoodItem, 0)
	for _, item := range s.Food {
		if item.Date == date {
			items = append(items, item)
		}
	}
	return items
}

type NutritionSummary struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
	Items    int     `json:"items"`
}

// NutritionSummaryFor sums macros across the date's food items, each
// scaled by quantity. Absent fiber counts as zero.
func NutritionSummaryFor(s *store.Store, date string) NutritionSummary {
	out := NutritionSummary{Date: date}
	for _, item := range s.Food {
		if item.Date != date {
			continue
		}
		out.Items++
		out.Calories += item.Calories * item.Quantity
		out.ProteinG += item.ProteinG * item.Quantity
		out.CarbsG += item.CarbsG * item.Quantity
		out.FatG += item.FatG * item.Quantity
		if item.FiberG != nil {
			out.FiberG += *item.FiberG * item.Quantity
		}
	}
	return out
}
