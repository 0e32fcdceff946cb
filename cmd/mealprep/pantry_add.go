// Pantry add command increases an item's on-hand quantity.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

var pantryAddUnit string

var pantryAddCmd = &cobra.Command{
	Use:   "add <item> <qty>",
	Short: "Add quantity to a pantry item",
	Long: `Add increases the on-hand quantity of a pantry item. Item names and
unit labels are canonicalized, so "Tomatoes" and "tomato" land on the
same entry and "kilo" arrives as grams.

Example:
  mealprep pantry add tomatoes 4
  mealprep pantry add rice 2 --unit kilo
  mealprep pantry add milk 500 --unit ml`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		qty, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			fail(exitUserError, "pantry add", fmt.Errorf("quantity %q is not an integer", args[1]))
		}

		backend, _, err := attachBackend()
		if err != nil {
			fail(exitSysError, "pantry add", err)
		}
		defer backend.Detach()

		ledger, err := backend.Ledger()
		if err != nil {
			fail(exitSysError, "pantry add", err)
		}

		have, err := ledger.Add(args[0], qty, pantryAddUnit)
		if err != nil {
			if errors.Is(err, types.ErrInvalidItem) || errors.Is(err, types.ErrInvalidQuantity) {
				fail(exitUserError, "pantry add", err)
			}
			fail(exitSysError, "pantry add", err)
		}

		if flagJSON {
			return printJSON(map[string]any{"item": args[0], "on_hand": have})
		}
		fmt.Printf("Added %d to %s (on hand: %d)\n", qty, args[0], have)
		return nil
	},
}

func init() {
	pantryAddCmd.Flags().StringVar(&pantryAddUnit, "unit", "count", "unit label (count, g, kg, ml, l, ...)")
}
