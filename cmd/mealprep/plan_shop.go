// Plan shop command computes the shopping list for the working plan.
package main

import (
	"github.com/spf13/cobra"
)

var planShopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Show the shopping list for the plan",
	Long: `Shop aggregates the plan's ingredient requirements, compares them to
the real pantry, and prints what is missing. Read-only: neither the
plan nor the pantry changes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, backend, err := openSession()
		if err != nil {
			fail(exitSysError, "plan shop", err)
		}
		defer backend.Detach()

		deficits, err := session.ShoppingList()
		if err != nil {
			fail(exitSysError, "plan shop", err)
		}

		if flagJSON {
			return printJSON(deficits)
		}
		formatDeficits(deficits)
		return nil
	},
}
