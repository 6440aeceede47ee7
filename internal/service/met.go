package service

// metValues maps activity names to their MET (metabolic equivalent of
// task) multiplier. Compendium values, rounded to one decimal.
var metValues = map[string]float64{
	"walking":           3.5,
	"walking_brisk":     4.3,
	"hiking":            6.0,
	"running_5mph":      8.3,
	"running_6mph":      9.8,
	"running_7mph":      11.0,
	"running_8mph":      11.8,
	"cycling_leisure":   4.0,
	"cycling_moderate":  8.0,
	"cycling_vigorous":  10.0,
	"swimming_leisure":  6.0,
	"swimming_laps":     8.3,
	"weight_training":   3.5,
	"weight_lifting":    6.0,
	"yoga":              2.5,
	"pilates":           3.0,
	"stretching":        2.3,
	"dancing":           4.8,
	"basketball":        6.5,
	"soccer":            7.0,
	"tennis":            7.3,
	"volleyball":        4.0,
	"rowing":            7.0,
	"elliptical":        5.0,
	"jump_rope":         11.0,
	"stair_climbing":    8.8,
	"aerobics":          7.3,
	"boxing":            7.8,
	"martial_arts":      10.3,
	"skiing":            7.0,
	"skating":           7.0,
	"climbing":          8.0,
	"golf":              4.8,
	"gardening":         3.8,
	"cleaning":          3.3,
}

// LookupMET returns the MET value for a named activity. Unknown names
// simply are not found; callers decide how to surface that.
func LookupMET(activity string) (float64, bool) {
	met, ok := metValues[normalizeName(activity)]
	return met, ok
}

// KnownActivities lists the activity names with a MET value, unordered.
func KnownActivities() []string {
	names := make([]string, 0, len(metValues))
	for name := range metValues {
		names = append(names, name)
	}
	return names
}

// CalculateCaloriesBurned estimates calories for an activity:
// MET * weight (kg) * hours.
func CalculateCaloriesBurned(met, weightKg float64, durationMin int) float64 {
	return met * weightKg * (float64(durationMin) / 60)
}
