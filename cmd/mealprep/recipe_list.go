// Recipe list command shows the catalog, optionally filtered.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

var (
	recipeListCuisine string
	recipeListDiet    string
	recipeListMaxTime int
)

var recipeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes in the catalog",
	Long: `List shows the recipe catalog. Filters mirror the planning
constraints: cuisine is an exact match, diet admits anything at most as
permissive, max-time caps prep plus cook minutes.

Example:
  mealprep recipe list
  mealprep recipe list --cuisine indian --diet veg
  mealprep recipe list --max-time 30 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, _, err := attachBackend()
		if err != nil {
			fail(exitSysError, "recipe list", err)
		}
		defer backend.Detach()

		catalog, err := backend.Catalog()
		if err != nil {
			fail(exitSysError, "recipe list", err)
		}

		var recipes []*types.Recipe
		if recipeListCuisine == "" && recipeListDiet == "" && recipeListMaxTime == 0 {
			recipes, err = catalog.List()
		} else {
			recipes, err = catalog.Eligible(types.Constraints{
				Mode:    types.ModeFreeform,
				Cuisine: recipeListCuisine,
				Diet:    recipeListDiet,
				MaxTime: recipeListMaxTime,
			})
		}
		if err != nil {
			fail(exitSysError, "recipe list", err)
		}

		if flagJSON {
			return printJSON(recipes)
		}
		printRecipeTable(recipes)
		return nil
	},
}

func init() {
	recipeListCmd.Flags().StringVar(&recipeListCuisine, "cuisine", "", "filter by cuisine")
	recipeListCmd.Flags().StringVar(&recipeListDiet, "diet", "", "filter by diet (veg, eggtarian, non-veg)")
	recipeListCmd.Flags().IntVar(&recipeListMaxTime, "max-time", 0, "maximum prep+cook minutes (0 = no limit)")
}

// printRecipeTable prints recipes in a human-readable table.
func printRecipeTable(recipes []*types.Recipe) {
	if len(recipes) == 0 {
		fmt.Println("No recipes found.")
		return
	}

	rows := make([][]string, 0, len(recipes))
	for _, r := range recipes {
		rows = append(rows, []string{
			r.Name,
			r.Cuisine,
			r.Diet,
			fmt.Sprintf("%d min", r.TotalTime()),
		})
	}
	printTable([]string{"NAME", "CUISINE", "DIET", "TIME"}, rows)
	fmt.Printf("Total: %d recipe(s)\n", len(recipes))
}
