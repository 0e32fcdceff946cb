// Plan set command writes one slot manually.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

var planSetClear bool

var planSetCmd = &cobra.Command{
	Use:   "set <day> <meal> [dish]",
	Short: "Set or clear one plan slot",
	Long: `Set writes a dish into one plan slot. The dish must exist in the
catalog. Use --clear (or omit the dish) to empty the slot. Manual edits
never consume the planning budget.

Example:
  mealprep plan set 2 dinner "Pad Thai"
  mealprep plan set 2 dinner --clear`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := strconv.Atoi(args[0])
		if err != nil {
			fail(exitUserError, "plan set", types.ErrInvalidSlot)
		}
		dish := ""
		if len(args) == 3 && !planSetClear {
			dish = args[2]
		}

		session, backend, err := openSession()
		if err != nil {
			fail(exitSysError, "plan set", err)
		}
		defer backend.Detach()

		if err := session.UpdatePlan(day, args[1], dish); err != nil {
			if errors.Is(err, types.ErrInvalidSlot) || errors.Is(err, types.ErrDishNotFound) {
				fail(exitUserError, "plan set", err)
			}
			fail(exitSysError, "plan set", err)
		}

		if flagJSON {
			return printJSON(session.Plan())
		}
		printPlan(session.Plan())
		return nil
	},
}

var planClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the working plan",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, backend, err := openSession()
		if err != nil {
			fail(exitSysError, "plan clear", err)
		}
		defer backend.Detach()

		if err := session.ClearPlan(); err != nil {
			fail(exitSysError, "plan clear", err)
		}
		if flagJSON {
			return printJSON(session.Plan())
		}
		fmt.Println("Plan cleared.")
		return nil
	},
}

func init() {
	planSetCmd.Flags().BoolVar(&planSetClear, "clear", false, "clear the slot instead of setting a dish")
}
