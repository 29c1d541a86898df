package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/storefront"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/view"
)

var addQty float64

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Inspect and change the persisted cart",
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show cart lines and totals",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		printCart(cmd.OutOrStdout(), a.session.Cart())
		return nil
	}),
}

var cartAddCmd = &cobra.Command{
	Use:   "add [product-id]",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		return addToCart(cmd.Context(), cmd.OutOrStdout(), a, args[0], addQty)
	}),
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove [product-id]",
	Short: "Remove a product line from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		v, err := a.session.RemoveFromCart(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("remove %s: %w", args[0], err)
		}
		printCart(cmd.OutOrStdout(), v)
		return nil
	}),
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		v, err := a.session.ClearCart(cmd.Context())
		if err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		printCart(cmd.OutOrStdout(), v)
		return nil
	}),
}

var cartCheckoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Simulate a purchase",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		res := a.session.Checkout()
		fmt.Fprintln(cmd.OutOrStdout(), res.Message)
		return nil
	}),
}

func init() {
	cartAddCmd.Flags().Float64Var(&addQty, "qty", 1, "Units to add (values below 1 count as 1)")

	cartCmd.AddCommand(cartShowCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartClearCmd)
	cartCmd.AddCommand(cartCheckoutCmd)
}

func withApp(fn func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(cmd, a, args)
	}
}

// addToCart treats an unknown product id as a no-op: the notice and the
// unchanged cart are printed and the command succeeds.
func addToCart(ctx context.Context, w io.Writer, a *app, productID string, qty float64) error {
	v, err := a.session.AddToCart(ctx, productID, qty)
	if errors.Is(err, storefront.ErrUnknownProduct) {
		fmt.Fprintf(w, "Producto %q no existe en el catálogo; el carrito no cambió.\n", productID)
		printCart(w, v)
		return nil
	}
	if err != nil {
		return fmt.Errorf("add %s: %w", productID, err)
	}
	printCart(w, v)
	return nil
}

func printCart(w io.Writer, v view.CartView) {
	fmt.Fprintf(w, "Carrito (%d)\n", v.Count)
	if v.Empty {
		fmt.Fprintln(w, v.EmptyMessage)
	}
	for _, row := range v.Rows {
		fmt.Fprintf(w, "  %-8s %-14s %s = %s\n", row.ID, row.Model, row.Detail, row.LineTotal)
	}
	fmt.Fprintf(w, "Subtotal: %s\n", v.Subtotal)
	fmt.Fprintf(w, "Envío:    %s\n", v.Shipping)
	fmt.Fprintf(w, "Total:    %s\n", v.Total)
}
