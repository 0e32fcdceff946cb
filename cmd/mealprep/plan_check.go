// Plan check command reports what one dish is missing right now.
package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

var planCheckCmd = &cobra.Command{
	Use:   "check <dish>",
	Short: "Check whether the pantry covers one dish",
	Long: `Check compares a single dish's requirements against the real pantry,
independent of the plan.

Example:
  mealprep plan check "Chana Masala"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dish := strings.Join(args, " ")

		session, backend, err := openSession()
		if err != nil {
			fail(exitSysError, "plan check", err)
		}
		defer backend.Detach()

		deficits, err := session.CheckDish(dish)
		if err != nil {
			if errors.Is(err, types.ErrDishNotFound) {
				fail(exitUserError, "plan check", err)
			}
			fail(exitSysError, "plan check", err)
		}

		if flagJSON {
			return printJSON(deficits)
		}
		formatDeficits(deficits)
		return nil
	},
}
