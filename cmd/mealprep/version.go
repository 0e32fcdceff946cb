// Version command for the mealprep CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prakashnalubolu/meal-prep/pkg/mealprep"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mealprep version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("mealprep", mealprep.Version)
	},
}
