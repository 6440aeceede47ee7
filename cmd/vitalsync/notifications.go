package vitalsync

import (
	"fmt"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
	"github.com/spf13/cobra"
)

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Manage notifications",
}

var notificationsUnreadOnly bool

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			shown := 0
			for _, n := range s.Notifications {
				if notificationsUnreadOnly && n.Read {
					continue
				}
				status := "unread"
				if n.Read {
					status = "read"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", n.ID, n.Date, status, n.Message)
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No notifications")
			}
			return nil
		})
	},
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Mark a notification as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store) error {
			if err := s.MarkNotificationRead(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked notification %s as read\n", args[0])
			return nil
		})
	},
}

func init() {
	notificationsListCmd.Flags().BoolVar(&notificationsUnreadOnly, "unread", false, "Show only unread notifications")

	notificationsCmd.AddCommand(notificationsListCmd)
	notificationsCmd.AddCommand(notificationsReadCmd)
	rootCmd.AddCommand(notificationsCmd)
}
