package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/manoslocales/marketwatch/pkg/types"
)

func favoritesCmd() *cobra.Command {
	favRoot := &cobra.Command{
		Use:   "favorites",
		Short: "Manage favorites",
		Long: "Manage the products and providers you follow. Favoriting an entity\n" +
			"puts it on your watch-set: price changes and new products from\n" +
			"favorited providers produce notifications.",
	}

	favRoot.AddCommand(
		favoritesListCmd(),
		favoritesToggleCmd("product", domain.KindProduct),
		favoritesToggleCmd("provider", domain.KindProvider),
	)

	return favRoot
}

func favoritesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your favorites",
		Example: `  mlw favorites list --user maria
  mlw favorites list --user maria --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			favs, err := c.ListFavorites(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(favs)
			}
			if len(favs.Products) == 0 && len(favs.Providers) == 0 {
				fmt.Println("No favorites found.")
				return nil
			}
			return printFavoritesTable(favs)
		},
	}
}

func favoritesToggleCmd(use string, kind domain.EntityKind) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: "Toggle a " + use + " favorite",
		Example: fmt.Sprintf(`  mlw favorites %s abc123 --user maria`, use),
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			status, err := c.ToggleFavorite(context.Background(), kind, args[0])
			if err != nil {
				return err
			}
			switch status {
			case "added":
				fmt.Printf("Favorite added: %s %s\n", use, args[0])
			case "removed":
				fmt.Printf("Favorite removed: %s %s\n", use, args[0])
			default:
				fmt.Println("Request ignored (anonymous user).")
			}
			return nil
		},
	}
}
