package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func notificationsCmd() *cobra.Command {
	notifRoot := &cobra.Command{
		Use:   "notifications",
		Short: "Read and manage notifications",
	}

	notifRoot.AddCommand(
		notificationsListCmd(),
		notificationsUnreadCmd(),
		notificationsReadCmd(),
		notificationsClearCmd(),
	)

	return notifRoot
}

func notificationsListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your notifications, newest first",
		Example: `  mlw notifications list --user maria
  mlw notifications list --user maria --limit 10 --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			items, err := c.ListNotifications(context.Background(), limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(items)
			}
			if len(items) == 0 {
				fmt.Println("No notifications.")
				return nil
			}
			return printNotificationsTable(items)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum items to return (0 = server default)")

	return cmd
}

func notificationsUnreadCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "unread",
		Short:   "Show the unread notification count",
		Example: `  mlw notifications unread --user maria`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			count, err := c.UnreadCount(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(map[string]int{"unread": count})
			}
			fmt.Printf("%d unread\n", count)
			return nil
		},
	}
}

func notificationsReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "read",
		Short:   "Mark all notifications as read",
		Example: `  mlw notifications read --user maria`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			if err := c.MarkAllNotificationsRead(context.Background()); err != nil {
				return err
			}
			fmt.Println("All notifications marked read.")
			return nil
		},
	}
}

func notificationsClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "clear",
		Short:   "Delete all notifications",
		Example: `  mlw notifications clear --user maria`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			if err := c.ClearNotifications(context.Background()); err != nil {
				return err
			}
			fmt.Println("Notifications cleared.")
			return nil
		},
	}
}
