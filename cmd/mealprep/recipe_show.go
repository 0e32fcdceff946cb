// Recipe show command prints one recipe in full.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

var recipeShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a recipe's ingredients and steps",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		backend, _, err := attachBackend()
		if err != nil {
			fail(exitSysError, "recipe show", err)
		}
		defer backend.Detach()

		catalog, err := backend.Catalog()
		if err != nil {
			fail(exitSysError, "recipe show", err)
		}

		r, err := catalog.ByName(name)
		if err != nil {
			if errors.Is(err, types.ErrDishNotFound) {
				fail(exitUserError, "recipe show", err)
			}
			fail(exitSysError, "recipe show", err)
		}

		if flagJSON {
			return printJSON(r)
		}

		fmt.Println(r.Name)
		fmt.Printf("  cuisine: %s  diet: %s  time: %d min (%d prep + %d cook)\n",
			r.Cuisine, r.Diet, r.TotalTime(), r.PrepTimeMin, r.CookTimeMin)
		fmt.Println("  ingredients:")
		for _, ing := range r.Ingredients {
			fmt.Printf("    - %s: %d %s\n", ing.Item, ing.Quantity, ing.Unit)
		}
		if len(r.Steps) > 0 {
			fmt.Println("  steps:")
			for i, step := range r.Steps {
				fmt.Printf("    %d. %s\n", i+1, step)
			}
		}
		return nil
	},
}
