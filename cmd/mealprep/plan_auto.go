// Plan auto command runs the scheduler over a horizon of meal slots.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prakashnalubolu/meal-prep/internal/planner"
	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

var (
	planAutoDays     int
	planAutoMeals    []string
	planAutoContinue bool
)

var planAutoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Fill the plan automatically",
	Long: `Auto fills the plan's open slots under the current constraints. In
the default pantry-first mode every assignment must be fully coverable
from a simulated pantry budget, and planning stops at the first slot
nothing can cover; the real pantry is never touched. Freeform mode
ignores the pantry.

Use --continue to keep the existing plan and extend it by more days.

Example:
  mealprep plan auto --days 3
  mealprep plan auto --days 2 --meals lunch,dinner
  mealprep plan auto --days 2 --continue`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, backend, err := openSession()
		if err != nil {
			fail(exitSysError, "plan auto", err)
		}
		defer backend.Detach()

		res, err := session.AutoPlan(planner.ScheduleRequest{
			Days:     planAutoDays,
			Meals:    planAutoMeals,
			Continue: planAutoContinue,
		})
		if err != nil {
			if errors.Is(err, types.ErrInvalidDays) || errors.Is(err, types.ErrInvalidMeals) || errors.Is(err, types.ErrInvalidMode) {
				fail(exitUserError, "plan auto", err)
			}
			fail(exitSysError, "plan auto", err)
		}

		if flagJSON {
			return printJSON(map[string]any{
				"result": res,
				"plan":   session.Plan(),
			})
		}

		fmt.Printf("Filled %d of %d slot(s)\n", res.Filled, res.Attempted)
		if res.Stopped {
			fmt.Println("Stopped early: the pantry budget cannot cover any further dish.")
		}
		printPlan(session.Plan())
		return nil
	},
}

func init() {
	planAutoCmd.Flags().IntVar(&planAutoDays, "days", 1, "number of days to plan")
	planAutoCmd.Flags().StringSliceVar(&planAutoMeals, "meals", nil, "meal slots per day (default: breakfast,lunch,dinner)")
	planAutoCmd.Flags().BoolVar(&planAutoContinue, "continue", false, "extend the existing plan instead of starting over")
}
