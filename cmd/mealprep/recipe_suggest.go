// Recipe suggest command ranks eligible dishes by pantry coverage.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recipeSuggestLimit int

var recipeSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest dishes the pantry can mostly cover",
	Long: `Suggest ranks the dishes eligible under the current constraints by
how much of their ingredient list the pantry fully covers, best first.

Example:
  mealprep recipe suggest
  mealprep recipe suggest --limit 3 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, backend, err := openSession()
		if err != nil {
			fail(exitSysError, "recipe suggest", err)
		}
		defer backend.Detach()

		suggestions, err := session.Suggest(recipeSuggestLimit)
		if err != nil {
			fail(exitSysError, "recipe suggest", err)
		}

		if flagJSON {
			return printJSON(suggestions)
		}

		if len(suggestions) == 0 {
			fmt.Println("No dish overlaps with the pantry. Try adding ingredients first.")
			return nil
		}
		rows := make([][]string, 0, len(suggestions))
		for _, sg := range suggestions {
			rows = append(rows, []string{
				sg.Recipe.Name,
				fmt.Sprintf("%.0f%%", sg.Coverage*100),
				fmt.Sprintf("%d min", sg.Recipe.TotalTime()),
			})
		}
		printTable([]string{"DISH", "COVERAGE", "TIME"}, rows)
		return nil
	},
}

func init() {
	recipeSuggestCmd.Flags().IntVar(&recipeSuggestLimit, "limit", 5, "maximum number of suggestions (0 = no limit)")
}
