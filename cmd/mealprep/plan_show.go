// Plan show command prints the working plan.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the working plan",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, backend, err := openSession()
		if err != nil {
			fail(exitSysError, "plan show", err)
		}
		defer backend.Detach()

		plan := session.Plan()
		if flagJSON {
			return printJSON(plan)
		}
		printPlan(plan)
		return nil
	},
}

// printPlan renders the plan day by day in slot order.
func printPlan(plan *types.Plan) {
	if plan.FilledCount() == 0 {
		fmt.Println("Plan is empty. Run `mealprep plan auto` to fill it.")
		return
	}

	var rows [][]string
	for _, day := range plan.SortedDays() {
		for _, meal := range plan.Meals {
			dish := plan.Slot(day, meal)
			if dish == "" {
				dish = "-"
			}
			rows = append(rows, []string{fmt.Sprintf("%d", day), meal, dish})
		}
	}
	printTable([]string{"DAY", "MEAL", "DISH"}, rows)
}
