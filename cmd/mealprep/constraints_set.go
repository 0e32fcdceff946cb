// Constraints set command replaces the planning constraints wholesale.
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

var (
	constraintsMode      string
	constraintsRepeats   bool
	constraintsCuisine   string
	constraintsDiet      string
	constraintsMaxTime   int
	constraintsSubPolicy string
)

var constraintsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace the planning constraints",
	Long: `Set replaces the constraints record wholesale: every run starts from
the defaults plus exactly the flags given, so omitted filters reset to
"any" rather than sticking from a previous run.

Example:
  mealprep constraints set --cuisine indian --diet veg
  mealprep constraints set --mode freeform --no-repeats
  mealprep constraints set --max-time 30`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, backend, err := openSession()
		if err != nil {
			fail(exitSysError, "constraints set", err)
		}
		defer backend.Detach()

		c := types.Constraints{
			Mode:         constraintsMode,
			AllowRepeats: !constraintsRepeats,
			Cuisine:      constraintsCuisine,
			Diet:         constraintsDiet,
			MaxTime:      constraintsMaxTime,
			SubPolicy:    constraintsSubPolicy,
		}
		if err := session.SetConstraints(c); err != nil {
			if errors.Is(err, types.ErrInvalidMode) || errors.Is(err, types.ErrInvalidQuantity) {
				fail(exitUserError, "constraints set", err)
			}
			fail(exitSysError, "constraints set", err)
		}

		if flagJSON {
			return printJSON(session.Constraints())
		}
		printConstraints(session.Constraints())
		return nil
	},
}

func init() {
	constraintsSetCmd.Flags().StringVar(&constraintsMode, "mode", types.ModePantryFirstStrict, "planning mode (pantry_first_strict, freeform)")
	constraintsSetCmd.Flags().BoolVar(&constraintsRepeats, "no-repeats", false, "forbid the same dish in consecutive slots")
	constraintsSetCmd.Flags().StringVar(&constraintsCuisine, "cuisine", "", "restrict to one cuisine")
	constraintsSetCmd.Flags().StringVar(&constraintsDiet, "diet", "", "diet ceiling (veg, eggtarian, non-veg)")
	constraintsSetCmd.Flags().IntVar(&constraintsMaxTime, "max-time", 0, "maximum prep+cook minutes (0 = no limit)")
	constraintsSetCmd.Flags().StringVar(&constraintsSubPolicy, "sub-policy", "", "ingredient substitution policy hint")
}
