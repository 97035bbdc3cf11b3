package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func sessionCmd() *cobra.Command {
	sessionRoot := &cobra.Command{
		Use:   "session",
		Short: "Manage your server-side listening session",
	}

	sessionRoot.AddCommand(sessionStopCmd())

	return sessionRoot
}

func sessionStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "stop",
		Short:   "Stop listening for change notifications",
		Example: `  mlw session stop --user maria`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			if err := c.StopListening(context.Background()); err != nil {
				return err
			}
			fmt.Println("Session stopped.")
			return nil
		},
	}
}
