package vitalsync

import (
	"fmt"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
	"github.com/spf13/cobra"
)

var bodyCmd = &cobra.Command{
	Use:   "body",
	Short: "Track body measurements",
}

var (
	bodyWeight float64
	bodyFat    float64
	bodyMuscle float64
	bodyDate   string
	bodyNotes  string
)

var bodyAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a body measurement",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.BodyMeasurementInput{
			WeightKg:     bodyWeight,
			BodyFatPct:   floatPtrIfSet(cmd.Flags().Changed("fat"), bodyFat),
			MuscleMassKg: floatPtrIfSet(cmd.Flags().Changed("muscle"), bodyMuscle),
			Date:         bodyDate,
			Notes:        bodyNotes,
		}
		return withStore(func(s *store.Store) error {
			id, err := service.AddBodyMeasurement(s, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added body measurement %s\n", id)
			return nil
		})
	},
}

var bodyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List body measurements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if len(s.Body) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No body measurements")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tWEIGHT_KG\tBODY_FAT_PCT\tMUSCLE_KG\tNOTES")
			for _, m := range s.Body {
				fat := ""
				if m.BodyFatPct != nil {
					fat = fmt.Sprintf("%.1f", *m.BodyFatPct)
				}
				muscle := ""
				if m.MuscleMassKg != nil {
					muscle = fmt.Sprintf("%.1f", *m.MuscleMassKg)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.1f\t%s\t%s\t%s\n",
					m.ID, m.Date, m.WeightKg, fat, muscle, m.Notes)
			}
			return nil
		})
	},
}

var bodyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a body measurement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.DeleteBodyMeasurement(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted body measurement %s\n", args[0])
			return nil
		})
	},
}

func init() {
	bodyAddCmd.Flags().Float64Var(&bodyWeight, "weight", 0, "Weight in kg")
	bodyAddCmd.Flags().Float64Var(&bodyFat, "fat", 0, "Body fat percentage")
	bodyAddCmd.Flags().Float64Var(&bodyMuscle, "muscle", 0, "Muscle mass in kg")
	bodyAddCmd.Flags().StringVar(&bodyDate, "date", "", "Date (YYYY-MM-DD, default today)")
	bodyAddCmd.Flags().StringVar(&bodyNotes, "notes", "", "Notes")

	bodyCmd.AddCommand(bodyAddCmd)
	bodyCmd.AddCommand(bodyListCmd)
	bodyCmd.AddCommand(bodyDeleteCmd)
	rootCmd.AddCommand(bodyCmd)
}
