package vitalsync

import (
	"fmt"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
	"github.com/spf13/cobra"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track water intake",
}

var (
	waterDate string
	waterTime string
)

var waterAddCmd = &cobra.Command{
	Use:   "add [amount-ml]",
	Short: "Log water intake (default 250 ml)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount := 250
		if len(args) == 1 {
			amount = parseIntOr(args[0], 250)
		}
		in := service.WaterInput{AmountMl: amount, Date: waterDate, Time: waterTime}
		return withStore(func(s *store.Store) error {
			id, err := service.AddWater(s, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %d ml of water (%s)\n", amount, id)
			return nil
		})
	},
}

var waterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List today's water intake",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			items := service.TodaysWaterIntake(s)
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No water logged today")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTIME\tAMOUNT_ML")
			for _, w := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\n", w.ID, w.Time, w.AmountMl)
			}
			return nil
		})
	},
}

var waterTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's water total against the goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			total := service.WaterTotalFor(s, s.TodayDate())
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %d / %d ml\n", total, s.Goals.WaterMl)
			return nil
		})
	},
}

func init() {
	waterAddCmd.Flags().StringVar(&waterDate, "date", "", "Date (YYYY-MM-DD, default today)")
	waterAddCmd.Flags().StringVar(&waterTime, "time", "", "Time (HH:MM, default now)")

	waterCmd.AddCommand(waterAddCmd)
	waterCmd.AddCommand(waterListCmd)
	waterCmd.AddCommand(waterTodayCmd)
	rootCmd.AddCommand(waterCmd)
}
