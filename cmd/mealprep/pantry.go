// Pantry command group for the mealprep CLI.
package main

import (
	"github.com/spf13/cobra"
)

var pantryCmd = &cobra.Command{
	Use:   "pantry",
	Short: "Inspect and mutate the pantry ledger",
}

func init() {
	pantryCmd.AddCommand(pantryAddCmd)
	pantryCmd.AddCommand(pantryRemoveCmd)
	pantryCmd.AddCommand(pantrySetCmd)
	pantryCmd.AddCommand(pantryListCmd)
}
