package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func catalogCmd() *cobra.Command {
	catalogRoot := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the product catalog",
	}

	catalogRoot.AddCommand(
		catalogProductCmd(),
		catalogProviderCmd(),
		catalogProviderProductsCmd(),
	)

	return catalogRoot
}

func catalogProductCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "product <id>",
		Short:   "Show product details",
		Example: `  mlw catalog product prod-42`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			p, err := c.GetProduct(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(p)
			}
			return printProductDetail(p)
		},
	}
}

func catalogProviderCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "provider <id>",
		Short:   "Show provider details",
		Example: `  mlw catalog provider prov-7`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			p, err := c.GetProvider(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(p)
			}
			return printProviderDetail(p)
		},
	}
}

func catalogProviderProductsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "products <provider-id>",
		Short:   "List a provider's products",
		Example: `  mlw catalog products prov-7`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			products, err := c.ListProviderProducts(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(products)
			}
			if len(products) == 0 {
				fmt.Println("No products found.")
				return nil
			}
			return printProductsTable(products)
		},
	}
}
