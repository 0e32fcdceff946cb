// Plan cook command deducts a dish's ingredients from the real pantry.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/prakashnalubolu/meal-prep/internal/planner"
	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

var (
	planCookDay  int
	planCookMeal string
	planCookDish string
)

var planCookCmd = &cobra.Command{
	Use:   "cook [day meal]",
	Short: "Cook a dish and consume its ingredients",
	Long: `Cook resolves a dish, either named explicitly with --dish or looked
up from a plan slot, and deducts its ingredients from the real pantry,
flooring each entry at zero. Partial availability still cooks: whatever
is on hand is consumed and the shortfall is reported.

Example:
  mealprep plan cook 2 dinner
  mealprep plan cook --dish "Pad Thai"`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, meal := planCookDay, planCookMeal
		if len(args) == 2 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fail(exitUserError, "plan cook", types.ErrInvalidSlot)
			}
			day, meal = n, args[1]
		} else if len(args) == 1 {
			fail(exitUserError, "plan cook", types.ErrInvalidSlot)
		}

		session, backend, err := openSession()
		if err != nil {
			fail(exitSysError, "plan cook", err)
		}
		defer backend.Detach()

		res, err := session.Cook(planner.CookRequest{Day: day, Meal: meal, Dish: planCookDish})
		if err != nil {
			if errors.Is(err, types.ErrInvalidSlot) || errors.Is(err, types.ErrSlotEmpty) || errors.Is(err, types.ErrDishNotFound) {
				fail(exitUserError, "plan cook", err)
			}
			fail(exitSysError, "plan cook", err)
		}

		if flagJSON {
			return printJSON(res)
		}

		fmt.Printf("Cooked %s\n", res.Dish)
		printRequirementLines("used", res.Used)
		printRequirementLines("missing", res.Missing)
		return nil
	},
}

func init() {
	planCookCmd.Flags().IntVar(&planCookDay, "day", 0, "plan day holding the dish")
	planCookCmd.Flags().StringVar(&planCookMeal, "meal", "", "plan meal holding the dish")
	planCookCmd.Flags().StringVar(&planCookDish, "dish", "", "cook this dish directly, ignoring the plan")
}

// printRequirementLines renders one Used/Missing section of a cook result.
func printRequirementLines(label string, lines []types.RequirementLine) {
	if len(lines) == 0 {
		return
	}
	fmt.Printf("  %s:\n", label)
	for _, l := range lines {
		fmt.Printf("    - %s: %d %s\n", l.Item, l.Quantity, l.Unit)
	}
}
