// Pantry set command overwrites a pantry entry to an exact quantity.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

var pantrySetUnit string

var pantrySetCmd = &cobra.Command{
	Use:   "set <item> <qty>",
	Short: "Set a pantry item to an exact quantity",
	Long: `Set overwrites the on-hand quantity of a pantry item. Setting zero
deletes the entry.

Example:
  mealprep pantry set eggs 12
  mealprep pantry set rice 1500 --unit g
  mealprep pantry set milk 0 --unit ml`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		qty, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			fail(exitUserError, "pantry set", fmt.Errorf("quantity %q is not an integer", args[1]))
		}

		backend, _, err := attachBackend()
		if err != nil {
			fail(exitSysError, "pantry set", err)
		}
		defer backend.Detach()

		ledger, err := backend.Ledger()
		if err != nil {
			fail(exitSysError, "pantry set", err)
		}

		if err := ledger.Set(args[0], qty, pantrySetUnit); err != nil {
			if errors.Is(err, types.ErrInvalidItem) || errors.Is(err, types.ErrNegativeSet) {
				fail(exitUserError, "pantry set", err)
			}
			fail(exitSysError, "pantry set", err)
		}

		if flagJSON {
			return printJSON(map[string]any{"item": args[0], "on_hand": qty})
		}
		fmt.Printf("Set %s to %d\n", args[0], qty)
		return nil
	},
}

func init() {
	pantrySetCmd.Flags().StringVar(&pantrySetUnit, "unit", "count", "unit label (count, g, kg, ml, l, ...)")
}
