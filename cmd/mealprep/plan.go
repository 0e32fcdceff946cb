// Plan command group for the mealprep CLI.
package main

import (
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build and work with the meal plan",
}

func init() {
	planCmd.AddCommand(planAutoCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planSetCmd)
	planCmd.AddCommand(planClearCmd)
	planCmd.AddCommand(planCookCmd)
	planCmd.AddCommand(planShopCmd)
	planCmd.AddCommand(planCheckCmd)
	planCmd.AddCommand(planSaveCmd)
}
