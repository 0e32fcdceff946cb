// Recipe command group for the mealprep CLI.
package main

import (
	"github.com/spf13/cobra"
)

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Browse and extend the recipe catalog",
}

func init() {
	recipeCmd.AddCommand(recipeListCmd)
	recipeCmd.AddCommand(recipeShowCmd)
	recipeCmd.AddCommand(recipeSuggestCmd)
	recipeCmd.AddCommand(recipeImportCmd)
}
