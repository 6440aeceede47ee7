package vitalsync

import (
	"strconv"
	"strings"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/app"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/db"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
)

func withStore(run func(*store.Store) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	s, err := store.Open(sqldb)
	if err != nil {
		return err
	}
	return run(s)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

// parseIntOr coerces free-text numeric input, falling back instead of
// erroring.
func parseIntOr(value string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return v
}

func parseFloatOr(value string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return v
}

func floatPtrIfSet(changed bool, v float64) *float64 {
	if !changed {
		return nil
	}
	return &v
}

func intPtrIfSet(changed bool, v int) *int {
	if !changed {
		return nil
	}
	return &v
}

func stringPtrIfSet(changed bool, v string) *string {
	if !changed {
		return nil
	}
	return &v
}
