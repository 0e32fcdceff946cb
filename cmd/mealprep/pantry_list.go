// Pantry list command shows every ledger entry.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

var pantryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all pantry entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, _, err := attachBackend()
		if err != nil {
			fail(exitSysError, "pantry list", err)
		}
		defer backend.Detach()

		ledger, err := backend.Ledger()
		if err != nil {
			fail(exitSysError, "pantry list", err)
		}

		entries, err := ledger.List()
		if err != nil {
			fail(exitSysError, "pantry list", err)
		}

		if flagJSON {
			return printJSON(entries)
		}
		printPantryTable(entries)
		return nil
	},
}

// printPantryTable prints ledger entries in a human-readable table.
func printPantryTable(entries []types.PantryEntry) {
	if len(entries) == 0 {
		fmt.Println("Pantry is empty.")
		return
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Item, string(e.Unit), fmt.Sprintf("%d", e.Quantity)})
	}
	printTable([]string{"ITEM", "UNIT", "QTY"}, rows)
	fmt.Printf("Total: %d item(s)\n", len(entries))
}
