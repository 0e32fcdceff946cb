// Init command for the mealprep CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prakashnalubolu/meal-prep/internal/sqlite"
	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

var initSkipSeed bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize mealprep storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Resolve config directory (flag > env > default) and ensure it
		// exists with default config.yaml and alt_units.yaml.
		configDir, err := resolveConfigDir()
		if err != nil {
			fail(exitSysError, "init", err)
		}
		if err := ensureConfigDir(configDir); err != nil {
			fail(exitSysError, "init", err)
		}
		if err := ensureDefaultConfigFile(configDir); err != nil {
			fail(exitSysError, "init", err)
		}
		if err := ensureDefaultMirrorFile(configDir); err != nil {
			fail(exitSysError, "init", err)
		}

		// Attach backend (creates data directory via SQLite Attach).
		backend, dataDir, err := attachBackend()
		if err != nil {
			fail(exitSysError, "init", err)
		}
		defer backend.Detach()

		if !initSkipSeed {
			catalog, err := backend.Catalog()
			if err != nil {
				fail(exitSysError, "init", err)
			}
			if err := seedIfEmpty(catalog); err != nil {
				fail(exitSysError, "init", err)
			}
		}

		fmt.Println("Mealprep initialized successfully")
		fmt.Println("  config:", configDir)
		fmt.Println("  data:  ", dataDir)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initSkipSeed, "no-seed", false, "skip seeding the starter recipe catalog")
}

// seedIfEmpty writes the starter catalog on first init only. Re-running
// init never overwrites recipes the user has edited.
func seedIfEmpty(catalog types.Catalog) error {
	existing, err := catalog.List()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	return sqlite.SeedRecipes(catalog)
}
