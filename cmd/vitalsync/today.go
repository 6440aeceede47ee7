package vitalsync

import (
	"fmt"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's counters against goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			t := s.Today
			g := s.Goals
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", t.LastUpdated)
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %d / %d kcal\n", t.Calories, g.Calories)
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %d / %d ml\n", t.WaterMl, g.WaterMl)
			fmt.Fprintf(cmd.OutOrStdout(), "Steps: %d / %d\n", t.Steps, g.Steps)
			fmt.Fprintf(cmd.OutOrStdout(), "Exercise: %d / %d min\n", t.ExerciseMin, g.ExerciseMin)
			return nil
		})
	},
}

var todayStepsCmd = &cobra.Command{
	Use:   "steps <count>",
	Short: "Add steps to today's counter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		steps := parseIntOr(args[0], 0)
		return withStore(func(s *store.Store) error {
			t := s.Today
			t.Steps += steps
			if err := s.SaveToday(t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Steps today: %d\n", t.Steps)
			return nil
		})
	},
}

func init() {
	todayCmd.AddCommand(todayStepsCmd)
	rootCmd.AddCommand(todayCmd)
}
