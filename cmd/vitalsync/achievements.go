package vitalsync

import (
	"fmt"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/service"
	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
	"github.com/spf13/cobra"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Streak achievements",
}

var achievementsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List earned achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if len(s.Achievements) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No achievements yet. Run: vitalsync achievements check")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tNAME\tDESCRIPTION")
			for _, a := range s.Achievements {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", a.Date, a.Name, a.Description)
			}
			return nil
		})
	},
}

var achievementsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check logs for newly earned streak achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			awarded, err := service.CheckStreakAchievements(s)
			if err != nil {
				return err
			}
			if len(awarded) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No new achievements")
				return nil
			}
			for _, a := range awarded {
				fmt.Fprintf(cmd.OutOrStdout(), "Unlocked: %s\n", a.Name)
			}
			return nil
		})
	},
}

func init() {
	achievementsCmd.AddCommand(achievementsListCmd)
	achievementsCmd.AddCommand(achievementsCheckCmd)
	rootCmd.AddCommand(achievementsCmd)
}
