package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"burger-cli/services"
)

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Show the allow-lists and the ingredient price table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			m := a.menu
			fmt.Fprintf(out, "Buns:    %s\n", strings.Join(m.Buns, ", "))
			fmt.Fprintf(out, "Meats:   %s\n", strings.Join(m.Meats, ", "))
			fmt.Fprintf(out, "Cheeses: %s\n", strings.Join(m.Cheeses, ", "))
			fmt.Fprintf(out, "Sauce:   %s (password required)\n", services.FormatSauce(m.Sauce))
			fmt.Fprintln(out, "Prices:")

			names := make([]string, 0, len(m.Prices))
			for name := range m.Prices {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(out, "  %-10s %6.2f\n", name, m.Prices[name])
			}
			fmt.Fprintf(out, "Tax: %.0f%% applied %d times\n", m.Surcharge.Rate*100, m.Surcharge.Passes)
			return nil
		},
	}
}

func newPriceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "price [ingredient...]",
		Short: "Price a list of ingredients, tax included",
		Long: `Sums the base price of each ingredient and applies the tax passes.
Ingredients missing from the price table count as zero.

Example:
  burger price bun beef cheese`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ingredients := make([]string, len(args))
			for i, arg := range args {
				ingredients[i] = strings.ToLower(strings.TrimSpace(arg))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", services.CalculatePrice(a.menu, ingredients))
			return nil
		},
	}
}
