package service

import (
	"github.com/JBLinx-Studio/vitalsync-cli/internal/model"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
)

type DoctorReport struct {
	DuplicateIDs  int `json:"duplicate_ids"`
	InvalidDates  int `json:"invalid_dates"`
	InvalidLabels int `json:"invalid_labels"`
}

// RunDoctor scans every collection for malformed records. Nothing is
// mutated; defaults-on-load already shields reads, so this exists to
// surface quietly corrupted data.
func RunDoctor(s *store.Store) DoctorReport {
	var report DoctorReport
	seen := map[string]bool{}

	check := func(id, date string) {
		if id != "" {
			if seen[id] {
				report.DuplicateIDs++
			}
			seen[id] = true
		}
		if _, err := parseISODate(date); err != nil {
			report.InvalidDates++
		}
	}

	for _, item := range s.Food {
		check(item.ID, item.Date)
	}
	for _, item := range s.Exercise {
		check(item.ID, item.Date)
	}
	for _, rec := range s.Sleep {
		check(rec.ID, rec.Date)
		if _, ok := model.SleepQualityScore[rec.Quality]; !ok {
			report.InvalidLabels++
		}
	}
	for _, rec := range s.Mood {
		check(rec.ID, rec.Date)
		if _, ok := model.MoodScore[rec.Mood]; !ok {
			report.InvalidLabels++
		}
	}
	for _, rec := range s.Addiction {
		check(rec.ID, rec.Date)
	}
	for _, w := range s.Water {
		check(w.ID, w.Date)
	}
	for _, m := range s.Body {
		check(m.ID, m.Date)
	}
	for _, a := range s.Achievements {
		check(a.ID, a.Date)
	}
	for _, n := range s.Notifications {
		check(n.ID, n.Date)
	}
	return report
}
