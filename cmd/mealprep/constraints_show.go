// Constraints show command prints the active planning constraints.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

var constraintsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active planning constraints",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, backend, err := openSession()
		if err != nil {
			fail(exitSysError, "constraints show", err)
		}
		defer backend.Detach()

		c := session.Constraints()
		if flagJSON {
			return printJSON(c)
		}
		printConstraints(c)
		return nil
	},
}

// printConstraints renders the constraints record for human output.
func printConstraints(c types.Constraints) {
	fmt.Println("mode:         ", c.Mode)
	fmt.Println("allow repeats:", c.AllowRepeats)
	fmt.Println("cuisine:      ", orAny(c.Cuisine))
	fmt.Println("diet:         ", orAny(c.Diet))
	if c.MaxTime > 0 {
		fmt.Println("max time:     ", c.MaxTime, "min")
	} else {
		fmt.Println("max time:      any")
	}
}

func orAny(s string) string {
	if s == "" {
		return "any"
	}
	return s
}
