// Constraints command group for the mealprep CLI.
package main

import (
	"github.com/spf13/cobra"
)

var constraintsCmd = &cobra.Command{
	Use:   "constraints",
	Short: "Show or replace the planning constraints",
}

func init() {
	constraintsCmd.AddCommand(constraintsShowCmd)
	constraintsCmd.AddCommand(constraintsSetCmd)
}
