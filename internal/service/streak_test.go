package service_test

import (
	"testing"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
)

func TestMaxStreak(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		dates []string
		want  int
	}{
		{"empty", nil, 0},
		{"single day", []string{"2026-03-01"}, 1},
		{"three consecutive", []string{"2026-03-01", "2026-03-02", "2026-03-03"}, 3},
		{"gap resets", []string{"2026-03-01", "2026-03-02", "2026-03-05"}, 2},
		{"unsorted input", []string{"2026-03-03", "2026-03-01", "2026-03-02"}, 3},
		{"duplicates collapse", []string{"2026-03-01", "2026-03-01", "2026-03-02"}, 2},
		{"month boundary", []string{"2026-02-27", "2026-02-28", "2026-03-01"}, 3},
		{"longest of several runs", []string{"2026-03-01", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-08"}, 3},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := service.MaxStreak(tc.dates); got != tc.want {
				t.Fatalf("MaxStreak(%v) = %d, want %d", tc.dates, got, tc.want)
			}
		})
	}
}
