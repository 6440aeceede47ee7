package vitalsync

import (
	"fmt"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage daily goals",
}

var (
	goalCalories int
	goalProtein  float64
	goalCarbs    float64
	goalFat      float64
	goalWater    int
	goalSteps    int
	goalExercise int
	goalSleep    float64
)

var goalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update daily goal targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.UpdateGoalsInput{
			Calories:    intPtrIfSet(cmd.Flags().Changed("calories"), goalCalories),
			ProteinG:    floatPtrIfSet(cmd.Flags().Changed("protein"), goalProtein),
			CarbsG:      floatPtrIfSet(cmd.Flags().Changed("carbs"), goalCarbs),
			FatG:        floatPtrIfSet(cmd.Flags().Changed("fat"), goalFat),
			WaterMl:     intPtrIfSet(cmd.Flags().Changed("water"), goalWater),
			Steps:       intPtrIfSet(cmd.Flags().Changed("steps"), goalSteps),
			ExerciseMin: intPtrIfSet(cmd.Flags().Changed("exercise"), goalExercise),
			SleepHours:  floatPtrIfSet(cmd.Flags().Changed("sleep"), goalSleep),
		}
		return withStore(func(s *store.Store) error {
			if err := service.UpdateGoals(s, in); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Goals updated")
			return nil
		})
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current daily goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			g := s.Goals
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %d kcal\n", g.Calories)
			fmt.Fprintf(cmd.OutOrStdout(), "Protein: %.0f g\n", g.ProteinG)
			fmt.Fprintf(cmd.OutOrStdout(), "Carbs: %.0f g\n", g.CarbsG)
			fmt.Fprintf(cmd.OutOrStdout(), "Fat: %.0f g\n", g.FatG)
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %d ml\n", g.WaterMl)
			fmt.Fprintf(cmd.OutOrStdout(), "Steps: %d\n", g.Steps)
			fmt.Fprintf(cmd.OutOrStdout(), "Exercise: %d min\n", g.ExerciseMin)
			fmt.Fprintf(cmd.OutOrStdout(), "Sleep: %.1f h\n", g.SleepHours)
			return nil
		})
	},
}

func init() {
	goalSetCmd.Flags().IntVar(&goalCalories, "calories", 0, "Daily calorie target")
	goalSetCmd.Flags().Float64Var(&goalProtein, "protein", 0, "Daily protein target (g)")
	goalSetCmd.Flags().Float64Var(&goalCarbs, "carbs", 0, "Daily carb target (g)")
	goalSetCmd.Flags().Float64Var(&goalFat, "fat", 0, "Daily fat target (g)")
	goalSetCmd.Flags().IntVar(&goalWater, "water", 0, "Daily water target (ml)")
	goalSetCmd.Flags().IntVar(&goalSteps, "steps", 0, "Daily step target")
	goalSetCmd.Flags().IntVar(&goalExercise, "exercise", 0, "Daily exercise target (min)")
	goalSetCmd.Flags().Float64Var(&goalSleep, "sleep", 0, "Nightly sleep target (hours)")

	goalCmd.AddCommand(goalSetCmd)
	goalCmd.AddCommand(goalShowCmd)
	rootCmd.AddCommand(goalCmd)
}
