package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/model"
)

// Collection keys. One key per collection or singleton; each is an
// independently persisted JSON document.
const (
	KeyProfile       = "user_profile"
	KeyGoals         = "daily_goals"
	KeyToday         = "today_data"
	KeyFood          = "food_items"
	KeyExercise      = "exercise_items"
	KeySleep         = "sleep_records"
	KeyMood          = "mood_records"
	KeyAddiction     = "addiction_records"
	KeyWater         = "water_intake"
	KeyBody          = "body_measurements"
	KeyAchievements  = "achievements"
	KeyNotifications = "notifications"
	KeyConfig        = "config"
)

// Store is the single source of truth for all user health data. It loads
// every collection from its key on startup and writes a collection back
// to its own key on every mutation. There is no cross-key
// transactionality; each collection is independently reconstructible.
type Store struct {
	db     *sql.DB
	now    func() time.Time
	lastID int64

	Profile       *model.UserProfile
	Goals         model.DailyGoals
	Today         model.TodayData
	Food          []model.FoodItem
	Exercise      []model.ExerciseItem
	Sleep         []model.SleepRecord
	Mood          []model.MoodRecord
	Addiction     []model.AddictionRecord
	Water         []model.WaterIntake
	Body          []model.BodyMeasurement
	Achievements  []model.Achievement
	Notifications []model.Notification
	Config        map[string]string
}

// Open loads all collections from the database. A missing or undecodable
// value never fails startup: it is logged and replaced by the empty
// collection or default singleton.
func Open(db *sql.DB) (*Store, error) {
	return OpenWithClock(db, time.Now)
}

// OpenWithClock is Open with an injectable clock. Date stamping, ids and
// the daily rollover all derive from it.
func OpenWithClock(db *sql.DB, now func() time.Time) (*Store, error) {
	return open(db, now)
}

func open(db *sql.DB, now func() time.Time) (*Store, error) {
	s := &Store{
		db:            db,
		now:           now,
		Goals:         model.DefaultDailyGoals(),
		Food:          []model.FoodItem{},
		Exercise:      []model.ExerciseItem{},
		Sleep:         []model.SleepRecord{},
		Mood:          []model.MoodRecord{},
		Addiction:     []model.AddictionRecord{},
		Water:         []model.WaterIntake{},
		Body:          []model.BodyMeasurement{},
		Achievements:  []model.Achievement{},
		Notifications: []model.Notification{},
		Config:        map[string]string{},
	}

	s.load(KeyProfile, &s.Profile)
	s.load(KeyGoals, &s.Goals)
	s.load(KeyToday, &s.Today)
	s.load(KeyFood, &s.Food)
	s.load(KeyExercise, &s.Exercise)
	s.load(KeySleep, &s.Sleep)
	s.load(KeyMood, &s.Mood)
	s.load(KeyAddiction, &s.Addiction)
	s.load(KeyWater, &s.Water)
	s.load(KeyBody, &s.Body)
	s.load(KeyAchievements, &s.Achievements)
	s.load(KeyNotifications, &s.Notifications)
	s.load(KeyConfig, &s.Config)

	if err := s.rolloverToday(); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads one key and decodes into dst. Absence leaves the
// already-set default in place; a decode failure is logged and the
// default kept.
func (s *Store) load(key string, dst any) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM collections WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return
	}
	if err != nil {
		log.Printf("read collection %q: %v (using default)", key, err)
		return
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		log.Printf("decode collection %q: %v (using default)", key, err)
	}
}

// rolloverToday discards the persisted daily counters when their
// calendar date differs from today's. The comparison is between date
// strings, not elapsed time: a reload at 00:01 resets counters even if
// less than 24 hours have passed.
func (s *Store) rolloverToday() error {
	today := s.TodayDate()
	if s.Today.LastUpdated == today {
		return nil
	}
	s.Today = model.TodayData{LastUpdated: today}
	return s.save(KeyToday, s.Today)
}

// TodayDate returns the current calendar date in the local timezone.
func (s *Store) TodayDate() string {
	return s.now().Format("2006-01-02")
}

// NowTime returns the current wall-clock time as HH:MM.
func (s *Store) NowTime() string {
	return s.now().Format("15:04")
}

// NewID stamps a fresh identifier derived from the current timestamp.
// Nudged forward on collision so ids stay unique within a process.
func (s *Store) NewID() string {
	id := s.now().UnixNano()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func (s *Store) save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", key, err)
	}
	_, err = s.db.Exec(`
INSERT INTO collections(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, string(raw))
	if err != nil {
		return fmt.Errorf("persist collection %q: %w", key, err)
	}
	return nil
}

// SaveProfile shallow-merges already applied by the caller; persists the
// singleton as-is.
func (s *Store) SaveProfile(p model.UserProfile) error {
	s.Profile = &p
	return s.save(KeyProfile, s.Profile)
}

func (s *Store) SaveGoals(g model.DailyGoals) error {
	s.Goals = g
	return s.save(KeyGoals, s.Goals)
}

// SaveToday persists the daily counters, stamping today's date.
func (s *Store) SaveToday(t model.TodayData) error {
	t.LastUpdated = s.TodayDate()
	s.Today = t
	return s.save(KeyToday, s.Today)
}

func (s *Store) AddFoodItem(item model.FoodItem) (string, error) {
	item.ID = s.NewID()
	s.Food = append(s.Food, item)
	return item.ID, s.save(KeyFood, s.Food)
}

func (s *Store) DeleteFoodItem(id string) error {
	filtered, ok := deleteByID(s.Food, id, func(i model.FoodItem) string { return i.ID })
	if !ok {
		return fmt.Errorf("food item %s not found", id)
	}
	s.Food = filtered
	return s.save(KeyFood, s.Food)
}

func (s *Store) AddExerciseItem(item model.ExerciseItem) (string, error) {
	item.ID = s.NewID()
	s.Exercise = append(s.Exercise, item)
	return item.ID, s.save(KeyExercise, s.Exercise)
}

func (s *Store) DeleteExerciseItem(id string) error {
	filtered, ok := deleteByID(s.Exercise, id, func(i model.ExerciseItem) string { return i.ID })
	if !ok {
		return fmt.Errorf("exercise item %s not found", id)
	}
	s.Exercise = filtered
	return s.save(KeyExercise, s.Exercise)
}

func (s *Store) AddSleepRecord(rec model.SleepRecord) (string, error) {
	rec.ID = s.NewID()
	s.Sleep = append(s.Sleep, rec)
	return rec.ID, s.save(KeySleep, s.Sleep)
}

func (s *Store) DeleteSleepRecord(id string) error {
	filtered, ok := deleteByID(s.Sleep, id, func(r model.SleepRecord) string { return r.ID })
	if !ok {
		return fmt.Errorf("sleep record %s not found", id)
	}
	s.Sleep = filtered
	return s.save(KeySleep, s.Sleep)
}

func (s *Store) AddMoodRecord(rec model.MoodRecord) (string, error) {
	rec.ID = s.NewID()
	s.Mood = append(s.Mood, rec)
	return rec.ID, s.save(KeyMood, s.Mood)
}

func (s *Store) DeleteMoodRecord(id string) error {
	filtered, ok := deleteByID(s.Mood, id, func(r model.MoodRecord) string { return r.ID })
	if !ok {
		return fmt.Errorf("mood record %s not found", id)
	}
	s.Mood = filtered
	return s.save(KeyMood, s.Mood)
}

func (s *Store) AddAddictionRecord(rec model.AddictionRecord) (string, error) {
	rec.ID = s.NewID()
	s.Addiction = append(s.Addiction, rec)
	return rec.ID, s.save(KeyAddiction, s.Addiction)
}

// UpdateAddictionGoal merges a goal value into every record of the given
// type. The records themselves are otherwise immutable.
func (s *Store) UpdateAddictionGoal(addictionType string, goal float64) error {
	found := false
	for i := range s.Addiction {
		if s.Addiction[i].Type == addictionType {
			g := goal
			s.Addiction[i].Goal = &g
			found = true
		}
	}
	if !found {
		return fmt.Errorf("no addiction records of type %q", addictionType)
	}
	return s.save(KeyAddiction, s.Addiction)
}

func (s *Store) AddWaterIntake(w model.WaterIntake) (string, error) {
	w.ID = s.NewID()
	s.Water = append(s.Water, w)
	return w.ID, s.save(KeyWater, s.Water)
}

func (s *Store) AddBodyMeasurement(m model.BodyMeasurement) (string, error) {
	m.ID = s.NewID()
	s.Body = append(s.Body, m)
	return m.ID, s.save(KeyBody, s.Body)
}

func (s *Store) DeleteBodyMeasurement(id string) error {
	filtered, ok := deleteByID(s.Body, id, func(m model.BodyMeasurement) string { return m.ID })
	if !ok {
		return fmt.Errorf("body measurement %s not found", id)
	}
	s.Body = filtered
	return s.save(KeyBody, s.Body)
}

func (s *Store) AddAchievement(a model.Achievement) (string, error) {
	a.ID = s.NewID()
	s.Achievements = append(s.Achievements, a)
	return a.ID, s.save(KeyAchievements, s.Achievements)
}

func (s *Store) AddNotification(n model.Notification) (string, error) {
	n.ID = s.NewID()
	s.Notifications = append(s.Notifications, n)
	return n.ID, s.save(KeyNotifications, s.Notifications)
}

// MarkNotificationRead flips the read flag, the only in-place mutation
// notifications allow.
func (s *Store) MarkNotificationRead(id string) error {
	for i := range s.Notifications {
		if s.Notifications[i].ID == id {
			s.Notifications[i].Read = true
			return s.save(KeyNotifications, s.Notifications)
		}
	}
	return fmt.Errorf("notification %s not found", id)
}

func (s *Store) SetConfig(key, value string) error {
	s.Config[key] = value
	return s.save(KeyConfig, s.Config)
}

func (s *Store) GetConfig(key string) (string, bool) {
	v, ok := s.Config[key]
	return v, ok
}

func deleteByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	out := make([]T, 0, len(items))
	found := false
	for _, item := range items {
		if idOf(item) == id {
			found = true
			continue
		}
		out = append(out, item)
	}
	return out, found
}
