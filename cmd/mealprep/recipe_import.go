// Recipe import command loads recipes from a JSON file.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

var recipeImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import recipes from a JSON file",
	Long: `Import reads a JSON array of recipes (or a single recipe object) and
stores each one in the catalog, replacing existing recipes with the same
name.

Example:
  mealprep recipe import my_recipes.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fail(exitUserError, "recipe import", err)
		}

		recipes, err := parseRecipeJSON(data)
		if err != nil {
			fail(exitUserError, "recipe import", err)
		}

		backend, _, err := attachBackend()
		if err != nil {
			fail(exitSysError, "recipe import", err)
		}
		defer backend.Detach()

		catalog, err := backend.Catalog()
		if err != nil {
			fail(exitSysError, "recipe import", err)
		}

		for i := range recipes {
			if err := catalog.Put(&recipes[i]); err != nil {
				fail(exitUserError, "recipe import", fmt.Errorf("recipe %q: %w", recipes[i].Name, err))
			}
		}

		if flagJSON {
			return printJSON(map[string]any{"imported": len(recipes)})
		}
		fmt.Printf("Imported %d recipe(s)\n", len(recipes))
		return nil
	},
}

// parseRecipeJSON accepts either a JSON array of recipes or one object.
func parseRecipeJSON(data []byte) ([]types.Recipe, error) {
	var recipes []types.Recipe
	if err := json.Unmarshal(data, &recipes); err == nil {
		return recipes, nil
	}
	var one types.Recipe
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}
	return []types.Recipe{one}, nil
}
