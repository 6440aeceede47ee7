package vitalsync

import (
	"fmt"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
	"github.com/spf13/cobra"
)

var moodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Manage the mood diary",
}

var (
	moodValue  string
	moodEnergy int
	moodStress int
	moodDate   string
)

var moodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a mood record",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.MoodInput{
			Mood:   moodValue,
			Energy: moodEnergy,
			Stress: moodStress,
			Date:   moodDate,
		}
		return withStore(func(s *store.Store) error {
			id, err := service.AddMood(s, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added mood record %s\n", id)
			return nil
		})
	},
}

var moodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List mood records",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if len(s.Mood) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No mood records")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tMOOD\tENERGY\tSTRESS")
			for _, rec := range s.Mood {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\t%d\n",
					rec.ID, rec.Date, rec.Mood, rec.Energy, rec.Stress)
			}
			return nil
		})
	},
}

var moodSummaryRecords int

var moodSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Rolling average over the most recent mood records",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			sum := service.MoodSummaryFor(s, moodSummaryRecords)
			if sum.Records == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No mood records")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Records: %d\n", sum.Records)
			fmt.Fprintf(cmd.OutOrStdout(), "Average mood score: %.2f (1=awful .. 5=great)\n", sum.AvgMoodScore)
			fmt.Fprintf(cmd.OutOrStdout(), "Average energy: %.1f / 10\n", sum.AvgEnergy)
			fmt.Fprintf(cmd.OutOrStdout(), "Average stress: %.1f / 10\n", sum.AvgStress)
			return nil
		})
	},
}

func init() {
	moodAddCmd.Flags().StringVar(&moodValue, "mood", "", "Mood (awful, bad, neutral, good, great)")
	moodAddCmd.Flags().IntVar(&moodEnergy, "energy", 5, "Energy level (0-10)")
	moodAddCmd.Flags().IntVar(&moodStress, "stress", 5, "Stress level (0-10)")
	moodAddCmd.Flags().StringVar(&moodDate, "date", "", "Date (YYYY-MM-DD, default today)")

	moodSummaryCmd.Flags().IntVar(&moodSummaryRecords, "records", 7, "Number of most recent records to average")

	moodCmd.AddCommand(moodAddCmd)
	moodCmd.AddCommand(moodListCmd)
	moodCmd.AddCommand(moodSummaryCmd)
	rootCmd.AddCommand(moodCmd)
}
