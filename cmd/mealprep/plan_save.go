// Plan save command exports the plan and its shopping list as JSON.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var planSaveName string

var planSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the plan and shopping list to a file",
	Long: `Save writes the current plan, constraints, and shopping list as a
JSON artifact under the data directory's plans/ folder.

Example:
  mealprep plan save
  mealprep plan save --name week34`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, backend, err := openSession()
		if err != nil {
			fail(exitSysError, "plan save", err)
		}
		defer backend.Detach()

		path, err := session.SavePlan(planSaveName)
		if err != nil {
			fail(exitSysError, "plan save", err)
		}

		if flagJSON {
			return printJSON(map[string]string{"path": path})
		}
		fmt.Println("Plan saved to", path)
		return nil
	},
}

func init() {
	planSaveCmd.Flags().StringVar(&planSaveName, "name", "", "artifact file name (default: timestamped)")
}
