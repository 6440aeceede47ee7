package vitalsync

import (
	"fmt"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			report := service.RunDoctor(s)
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicate ids: %d\n", report.DuplicateIDs)
			fmt.Fprintf(cmd.OutOrStdout(), "Invalid dates: %d\n", report.InvalidDates)
			fmt.Fprintf(cmd.OutOrStdout(), "Invalid labels: %d\n", report.InvalidLabels)
			if report.DuplicateIDs > 0 || report.InvalidDates > 0 || report.InvalidLabels > 0 {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
