package vitalsync

import (
	"fmt"
	"sort"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
	"github.com/spf13/cobra"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Manage the exercise diary",
}

var (
	exerciseName     string
	exerciseType     string
	exerciseDuration int
	exerciseCalories int
	exerciseDate     string
	exerciseNotes    string
)

var exerciseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an exercise entry (calories estimated from MET when omitted)",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.ExerciseInput{
			Name:           exerciseName,
			Type:           exerciseType,
			DurationMin:    exerciseDuration,
			CaloriesBurned: exerciseCalories,
			Date:           exerciseDate,
			Notes:          exerciseNotes,
		}
		return withStore(func(s *store.Store) error {
			id, err := service.AddExercise(s, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added exercise entry %s\n", id)
			return nil
		})
	},
}

var exerciseListDate string

var exerciseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List exercise entries for a date (default today)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			date := exerciseListDate
			if date == "" {
				date = s.TodayDate()
			}
			items := service.ExerciseItemsForDate(s, date)
			if len(items) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No exercise entries for %s\n", date)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tTYPE\tDURATION_MIN\tKCAL_BURNED\tNOTES")
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\t%d\t%s\n",
					item.ID, item.Name, item.Type, item.DurationMin, item.CaloriesBurned, item.Notes)
			}
			return nil
		})
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an exercise entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.DeleteExerciseItem(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted exercise entry %s\n", args[0])
			return nil
		})
	},
}

var exerciseSummaryDate string

var exerciseSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Exercise totals for a date (default today)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			date := exerciseSummaryDate
			if date == "" {
				date = s.TodayDate()
			}
			sum := service.ExerciseSummaryFor(s, date)
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", sum.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Workouts: %d\n", sum.Workouts)
			fmt.Fprintf(cmd.OutOrStdout(), "Duration: %d min\n", sum.DurationMin)
			fmt.Fprintf(cmd.OutOrStdout(), "Calories burned: %d kcal\n", sum.CaloriesBurned)
			return nil
		})
	},
}

var exerciseEstimateCmd = &cobra.Command{
	Use:   "estimate <activity> [duration-min]",
	Short: "Estimate calories burned for an activity from its MET value",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		duration := 30
		if len(args) == 2 {
			duration = parseIntOr(args[1], 30)
		}
		return withStore(func(s *store.Store) error {
			met, ok := service.LookupMET(args[0])
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Unknown activity %q. Run: vitalsync exercise activities\n", args[0])
				return nil
			}
			weight := service.ProfileWeightKg(s.Profile)
			kcal := service.CalculateCaloriesBurned(met, weight, duration)
			fmt.Fprintf(cmd.OutOrStdout(), "%s for %d min at %.1f kg: %.0f kcal (MET %.1f)\n",
				args[0], duration, weight, kcal, met)
			return nil
		})
	},
}

var exerciseActivitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "List activities with known MET values",
	Run: func(cmd *cobra.Command, args []string) {
		names := service.KnownActivities()
		sort.Strings(names)
		for _, name := range names {
			met, _ := service.LookupMET(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f\n", name, met)
		}
	},
}

func init() {
	exerciseAddCmd.Flags().StringVar(&exerciseName, "name", "", "Exercise name")
	exerciseAddCmd.Flags().StringVar(&exerciseType, "type", "", "Exercise type (default cardio)")
	exerciseAddCmd.Flags().IntVar(&exerciseDuration, "duration", 0, "Duration in minutes")
	exerciseAddCmd.Flags().IntVar(&exerciseCalories, "calories", 0, "Calories burned (0 = estimate from MET)")
	exerciseAddCmd.Flags().StringVar(&exerciseDate, "date", "", "Date (YYYY-MM-DD, default today)")
	exerciseAddCmd.Flags().StringVar(&exerciseNotes, "notes", "", "Notes")

	exerciseListCmd.Flags().StringVar(&exerciseListDate, "date", "", "Date (YYYY-MM-DD, default today)")
	exerciseSummaryCmd.Flags().StringVar(&exerciseSummaryDate, "date", "", "Date (YYYY-MM-DD, default today)")

	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	exerciseCmd.AddCommand(exerciseSummaryCmd)
	exerciseCmd.AddCommand(exerciseEstimateCmd)
	exerciseCmd.AddCommand(exerciseActivitiesCmd)
	rootCmd.AddCommand(exerciseCmd)
}
