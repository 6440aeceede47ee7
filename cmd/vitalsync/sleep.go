package vitalsync

import (
	"fmt"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
	"github.com/spf13/cobra"
)

var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Manage the sleep diary",
}

var (
	sleepDuration float64
	sleepQuality  string
	sleepBedtime  string
	sleepWake     string
	sleepDate     string
)

var sleepAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a sleep record",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.SleepInput{
			DurationHours: sleepDuration,
			Quality:       sleepQuality,
			Bedtime:       sleepBedtime,
			WakeTime:      sleepWake,
			Date:          sleepDate,
		}
		return withStore(func(s *store.Store) error {
			id, err := service.AddSleep(s, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added sleep record %s\n", id)
			return nil
		})
	},
}

var sleepListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sleep records",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if len(s.Sleep) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sleep records")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tHOURS\tQUALITY\tBEDTIME\tWAKE")
			for _, rec := range s.Sleep {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.1f\t%s\t%s\t%s\n",
					rec.ID, rec.Date, rec.DurationHours, rec.Quality, rec.Bedtime, rec.WakeTime)
			}
			return nil
		})
	},
}

var sleepDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a sleep record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.DeleteSleepRecord(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted sleep record %s\n", args[0])
			return nil
		})
	},
}

var sleepSummaryRecords int

var sleepSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Rolling average over the most recent sleep records",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			sum := service.SleepSummaryFor(s, sleepSummaryRecords)
			if sum.Records == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sleep records")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Records: %d\n", sum.Records)
			fmt.Fprintf(cmd.OutOrStdout(), "Average duration: %.1f h (goal %.1f h)\n", sum.AvgDurationHours, s.Goals.SleepHours)
			fmt.Fprintf(cmd.OutOrStdout(), "Average quality: %s (%.2f)\n", sum.Quality, sum.AvgQualityScore)
			return nil
		})
	},
}

func init() {
	sleepAddCmd.Flags().Float64Var(&sleepDuration, "hours", 0, "Sleep duration in hours")
	sleepAddCmd.Flags().StringVar(&sleepQuality, "quality", "", "Quality (poor, fair, good, excellent)")
	sleepAddCmd.Flags().StringVar(&sleepBedtime, "bedtime", "", "Bedtime (HH:MM)")
	sleepAddCmd.Flags().StringVar(&sleepWake, "wake", "", "Wake time (HH:MM)")
	sleepAddCmd.Flags().StringVar(&sleepDate, "date", "", "Date (YYYY-MM-DD, default today)")

	sleepSummaryCmd.Flags().IntVar(&sleepSummaryRecords, "records", 7, "Number of most recent records to average")

	sleepCmd.AddCommand(sleepAddCmd)
	sleepCmd.AddCommand(sleepListCmd)
	sleepCmd.AddCommand(sleepDeleteCmd)
	sleepCmd.AddCommand(sleepSummaryCmd)
	rootCmd.AddCommand(sleepCmd)
}
