package model

// UserProfile is a singleton. A nil profile means no profile has been
// created yet; computations fall back to explicit defaults in that case.
type UserProfile struct {
	Name          string  `json:"name"`
	WeightKg      float64 `json:"weight_kg"`
	HeightCm      float64 `json:"height_cm"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activity_level"`
	Goals         string  `json:"goals"`
}

// DailyGoals is a singleton with user-editable targets.
type DailyGoals struct {
	Calories    int     `json:"calories"`
	ProteinG    float64 `json:"protein_g"`
	CarbsG      float64 `json:"carbs_g"`
	FatG        float64 `json:"fat_g"`
	WaterMl     int     `json:"water_ml"`
	Steps       int     `json:"steps"`
	ExerciseMin int     `json:"exercise_min"`
	SleepHours  float64 `json:"sleep_hours"`
}

func DefaultDailyGoals() DailyGoals {
	return DailyGoals{
		Calories:    2000,
		ProteinG:    150,
		CarbsG:      250,
		FatG:        65,
		WaterMl:     2000,
		Steps:       10000,
		ExerciseMin: 30,
		SleepHours:  8,
	}
}

type FoodItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ServingSize string   `json:"serving_size"`
	Calories    float64  `json:"calories"`
	ProteinG    float64  `json:"protein_g"`
	CarbsG      float64  `json:"carbs_g"`
	FatG        float64  `json:"fat_g"`
	FiberG      *float64 `json:"fiber_g,omitempty"`
	Meal        string   `json:"meal"`
	Quantity    float64  `json:"quantity"`
	Date        string   `json:"date"`
}

type ExerciseItem struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	DurationMin    int    `json:"duration_min"`
	CaloriesBurned int    `json:"calories_burned"`
	Date           string `json:"date"`
	Notes          string `json:"notes,omitempty"`
}

const (
	SleepQualityPoor      = "poor"
	SleepQualityFair      = "fair"
	SleepQualityGood      = "good"
	SleepQualityExcellent = "excellent"
)

// SleepQualityScore maps quality labels to the ordinal used by the
// rolling-average summary.
var SleepQualityScore = map[string]float64{
	SleepQualityPoor:      1,
	SleepQualityFair:      2,
	SleepQualityGood:      3,
	SleepQualityExcellent: 4,
}

type SleepRecord struct {
	ID            string  `json:"id"`
	DurationHours float64 `json:"duration_hours"`
	Quality       string  `json:"quality"`
	Bedtime       string  `json:"bedtime"`
	WakeTime      string  `json:"wake_time"`
	Date          string  `json:"date"`
}

const (
	MoodAwful   = "awful"
	MoodBad     = "bad"
	MoodNeutral = "neutral"
	MoodGood    = "good"
	MoodGreat   = "great"
)

var MoodScore = map[string]float64{
	MoodAwful:   1,
	MoodBad:     2,
	MoodNeutral: 3,
	MoodGood:    4,
	MoodGreat:   5,
}

type MoodRecord struct {
	ID     string `json:"id"`
	Mood   string `json:"mood"`
	Energy int    `json:"energy"`
	Stress int    `json:"stress"`
	Date   string `json:"date"`
}

type AddictionRecord struct {
	ID     string   `json:"id"`
	Type   string   `json:"type"`
	Amount float64  `json:"amount"`
	Unit   string   `json:"unit"`
	Goal   *float64 `json:"goal,omitempty"`
	Date   string   `json:"date"`
	Notes  string   `json:"notes,omitempty"`
}

type WaterIntake struct {
	ID       string `json:"id"`
	AmountMl int    `json:"amount_ml"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

type BodyMeasurement struct {
	ID           string   `json:"id"`
	WeightKg     float64  `json:"weight_kg"`
	BodyFatPct   *float64 `json:"body_fat_pct,omitempty"`
	MuscleMassKg *float64 `json:"muscle_mass_kg,omitempty"`
	Date         string   `json:"date"`
	Notes        string   `json:"notes,omitempty"`
}

// Achievement entries are append-only and never mutated.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type Notification struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
	Date    string `json:"date"`
}

// TodayData carries the rolling daily counters. LastUpdated is the
// calendar date the counters belong to; a mismatch with "today" on load
// resets every counter to zero.
type TodayData struct {
	LastUpdated string `json:"last_updated"`
	Calories    int    `json:"calories"`
	WaterMl     int    `json:"water_ml"`
	Steps       int    `json:"steps"`
	ExerciseMin int    `json:"exercise_min"`
}
