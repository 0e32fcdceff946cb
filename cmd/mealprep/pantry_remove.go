// Pantry remove command decreases or deletes a pantry entry.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

var pantryRemoveUnit string

var pantryRemoveCmd = &cobra.Command{
	Use:   "remove <item> [qty]",
	Short: "Remove quantity from a pantry item",
	Long: `Remove subtracts a quantity from a pantry item, flooring at zero.
Without a quantity the whole entry is deleted.

Example:
  mealprep pantry remove tomatoes 2
  mealprep pantry remove spinach 1 --unit count
  mealprep pantry remove rice`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var qty *int64
		if len(args) == 2 {
			n, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				fail(exitUserError, "pantry remove", fmt.Errorf("quantity %q is not an integer", args[1]))
			}
			qty = &n
		}

		backend, _, err := attachBackend()
		if err != nil {
			fail(exitSysError, "pantry remove", err)
		}
		defer backend.Detach()

		ledger, err := backend.Ledger()
		if err != nil {
			fail(exitSysError, "pantry remove", err)
		}

		have, err := ledger.Remove(args[0], qty, pantryRemoveUnit)
		if err != nil {
			if errors.Is(err, types.ErrInvalidItem) || errors.Is(err, types.ErrInvalidQuantity) {
				fail(exitUserError, "pantry remove", err)
			}
			fail(exitSysError, "pantry remove", err)
		}

		if flagJSON {
			return printJSON(map[string]any{"item": args[0], "on_hand": have})
		}
		if qty == nil {
			fmt.Printf("Removed %s from the pantry\n", args[0])
			return nil
		}
		fmt.Printf("Removed %d from %s (on hand: %d)\n", *qty, args[0], have)
		return nil
	},
}

func init() {
	pantryRemoveCmd.Flags().StringVar(&pantryRemoveUnit, "unit", "count", "unit label (count, g, kg, ml, l, ...)")
}
