package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/storefront"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/view"
)

var (
	productsBrand string
	productsQuery string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the catalog, optionally filtered",
	Example: `  storefront products --brand Nike
  storefront products --query "air"`,
	Args: cobra.NoArgs,
	RunE: runProducts,
}

func init() {
	productsCmd.Flags().StringVarP(&productsBrand, "brand", "b", catalog.AllBrands, "Brand filter (Nike, Adidas, Puma or all)")
	productsCmd.Flags().StringVarP(&productsQuery, "query", "q", "", "Free-text search on model and brand")
}

func runProducts(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	grid := a.session.ApplyFilters(storefront.Filters{Brand: productsBrand, Query: productsQuery})
	printGrid(cmd.OutOrStdout(), grid)
	return nil
}

func printGrid(w io.Writer, grid view.ProductGrid) {
	fmt.Fprintln(w, grid.Status.Text)
	for _, c := range grid.Cards {
		fmt.Fprintf(w, "  %-8s %-7s %-14s %10s\n", c.ID, c.Brand, c.Model, c.PriceText)
	}
}
