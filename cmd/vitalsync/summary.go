package vitalsync

import (
	"encoding/json"
	"fmt"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
	"github.com/spf13/cobra"
)

var summaryJSON bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Overall health summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			sum := service.HealthSummaryFor(s)
			if summaryJSON {
				b, err := json.MarshalIndent(sum, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal health summary json: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", sum.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Today's calories: %.0f kcal\n", sum.TodayCalories)
			fmt.Fprintf(cmd.OutOrStdout(), "Total workouts: %d\n", sum.TotalWorkouts)
			fmt.Fprintf(cmd.OutOrStdout(), "Average sleep (last 7 records): %.1f h\n", sum.AvgSleepHours)
			fmt.Fprintf(cmd.OutOrStdout(), "Average mood (last 7 records): %.2f\n", sum.AvgMoodScore)
			fmt.Fprintf(cmd.OutOrStdout(), "Exercise (last 7 days): %d min, %d kcal\n", sum.WeekExerciseMin, sum.WeekExerciseCalories)
			return nil
		})
	},
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(summaryCmd)
}
