package service

import (
	"fmt"
	"strings"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/model"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
)

// Fallback values used when the profile singleton is absent or a field
// was never filled in.
const (
	defaultWeightKg       = 70.0
	defaultHeightCm       = 175.0
	defaultWeightKgFemale = 60.0
	defaultHeightCmFemale = 165.0
	defaultAge            = 30
)

var activityFactors = map[string]float64{
	"sedentary":         1.2,
	"lightly_active":    1.375,
	"moderately_active": 1.55,
	"very_active":       1.725,
	"extremely_active":  1.9,
}

const defaultActivityFactor = 1.55

// UpdateProfileInput carries a partial profile; nil fields are left
// untouched by the shallow merge.
type UpdateProfileInput struct {
	Name          *string
	WeightKg      *float64
	HeightCm      *float64
	Age           *int
	Gender        *string
	ActivityLevel *string
	Goals         *string
}

func UpdateProfile(s *store.Store, in UpdateProfileInput) error {
	p := model.UserProfile{}
	if s.Profile != nil {
		p = *s.Profile
	}
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.WeightKg != nil {
		if *in.WeightKg <= 0 {
			return fmt.Errorf("weight must be > 0")
		}
		p.WeightKg = *in.WeightKg
	}
	if in.HeightCm != nil {
		if *in.HeightCm <= 0 {
			return fmt.Errorf("height must be > 0")
		}
		p.HeightCm = *in.HeightCm
	}
	if in.Age != nil {
		if *in.Age <= 0 {
			return fmt.Errorf("age must be > 0")
		}
		p.Age = *in.Age
	}
	if in.Gender != nil {
		p.Gender = normalizeName(*in.Gender)
	}
	if in.ActivityLevel != nil {
		level := normalizeName(*in.ActivityLevel)
		if level != "" {
			if _, ok := activityFactors[level]; !ok {
				return fmt.Errorf("unknown activity level %q", level)
			}
		}
		p.ActivityLevel = level
	}
	if in.Goals != nil {
		p.Goals = strings.TrimSpace(*in.Goals)
	}
	return s.SaveProfile(p)
}

// CalculateBMI expects weight in kilograms and height in centimeters.
func CalculateBMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return weightKg / (m * m)
}

// CalculateCalorieNeeds estimates daily calorie needs from the
// Mifflin-St Jeor BMR scaled by the profile's activity factor. Missing
// profile fields fall back to fixed defaults; a nil profile takes the
// non-male branch throughout.
func CalculateCalorieNeeds(p *model.UserProfile) float64 {
	male := p != nil && normalizeName(p.Gender) == "male"

	weight := defaultWeightKgFemale
	height := defaultHeightCmFemale
	if male {
		weight = defaultWeightKg
		height = defaultHeightCm
	}
	age := defaultAge
	if p != nil {
		if p.WeightKg > 0 {
			weight = p.WeightKg
		}
		if p.HeightCm > 0 {
			height = p.HeightCm
		}
		if p.Age > 0 {
			age = p.Age
		}
	}

	bmr := 10*weight + 6.25*height - 5*float64(age)
	if male {
		bmr += 5
	} else {
		bmr -= 161
	}

	factor := defaultActivityFactor
	if p != nil {
		if f, ok := activityFactors[normalizeName(p.ActivityLevel)]; ok {
			factor = f
		}
	}
	return bmr * factor
}

// ProfileWeightKg returns the stored weight or the fallback default used
// by calorie estimation.
func ProfileWeightKg(p *model.UserProfile) float64 {
	if p != nil && p.WeightKg > 0 {
		return p.WeightKg
	}
	return defaultWeightKg
}
