package vitalsync

import (
	"fmt"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
	"github.com/spf13/cobra"
)

var addictionCmd = &cobra.Command{
	Use:   "addiction",
	Short: "Track addiction habits over time",
}

var (
	addictionType   string
	addictionAmount float64
	addictionUnit   string
	addictionGoal   float64
	addictionDate   string
	addictionNotes  string
)

var addictionLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log an addiction record",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.AddictionInput{
			Type:   addictionType,
			Amount: addictionAmount,
			Unit:   addictionUnit,
			Goal:   floatPtrIfSet(cmd.Flags().Changed("goal"), addictionGoal),
			Date:   addictionDate,
			Notes:  addictionNotes,
		}
		return withStore(func(s *store.Store) error {
			id, err := service.LogAddiction(s, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged addiction record %s\n", id)
			return nil
		})
	},
}

var addictionListType string

var addictionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List addiction records, optionally for one type",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			records := s.Addiction
			if addictionListType != "" {
				records = service.AddictionHistory(s, addictionListType)
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No addiction records")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tTYPE\tAMOUNT\tUNIT\tGOAL\tNOTES")
			for _, rec := range records {
				goal := ""
				if rec.Goal != nil {
					goal = fmt.Sprintf("%.1f", *rec.Goal)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.1f\t%s\t%s\t%s\n",
					rec.ID, rec.Date, rec.Type, rec.Amount, rec.Unit, goal, rec.Notes)
			}
			return nil
		})
	},
}

var (
	addictionGoalType  string
	addictionGoalValue float64
)

var addictionGoalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Set the reduction goal for an addiction type",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := service.SetAddictionGoal(s, addictionGoalType, addictionGoalValue); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated goal for %s\n", addictionGoalType)
			return nil
		})
	},
}

func init() {
	addictionLogCmd.Flags().StringVar(&addictionType, "type", "", "Addiction type (free text, e.g. caffeine)")
	addictionLogCmd.Flags().Float64Var(&addictionAmount, "amount", 0, "Amount consumed")
	addictionLogCmd.Flags().StringVar(&addictionUnit, "unit", "", "Unit (e.g. cups, cigarettes)")
	addictionLogCmd.Flags().Float64Var(&addictionGoal, "goal", 0, "Daily reduction goal")
	addictionLogCmd.Flags().StringVar(&addictionDate, "date", "", "Date (YYYY-MM-DD, default today)")
	addictionLogCmd.Flags().StringVar(&addictionNotes, "notes", "", "Notes")

	addictionListCmd.Flags().StringVar(&addictionListType, "type", "", "Filter by type")

	addictionGoalCmd.Flags().StringVar(&addictionGoalType, "type", "", "Addiction type")
	addictionGoalCmd.Flags().Float64Var(&addictionGoalValue, "value", 0, "Goal value")

	addictionCmd.AddCommand(addictionLogCmd)
	addictionCmd.AddCommand(addictionListCmd)
	addictionCmd.AddCommand(addictionGoalCmd)
	rootCmd.AddCommand(addictionCmd)
}
