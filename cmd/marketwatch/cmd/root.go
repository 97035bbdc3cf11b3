// Package cmd implements the CLI commands for the marketwatch server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "marketwatch",
	Short: "Favorites-driven change notifications for Manos Locales",
	Long: "Backend service for the Manos Locales marketplace. Watches product " +
		"snapshots for the products and providers each user has favorited, " +
		"detects price changes and new products, and turns each change into " +
		"exactly one persisted notification.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
