// Shared helpers for mealprep CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/prakashnalubolu/meal-prep/internal/mirror"
	"github.com/prakashnalubolu/meal-prep/internal/planner"
	"github.com/prakashnalubolu/meal-prep/internal/sqlite"
	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

// attachBackend resolves the data directory, loads the mirror rule table,
// creates a SQLite backend, and attaches it. The caller must defer
// backend.Detach().
func attachBackend() (*sqlite.Backend, string, error) {
	configDir, err := resolveConfigDir()
	if err != nil {
		return nil, "", fmt.Errorf("resolve config dir: %w", err)
	}
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, "", fmt.Errorf("resolve data dir: %w", err)
	}

	rules, err := mirror.LoadRules(filepath.Join(configDir, mirrorFileName))
	if err != nil {
		return nil, "", fmt.Errorf("load mirror rules: %w", err)
	}

	cfg := types.Config{
		Backend:     types.BackendSQLite,
		DataDir:     dataDir,
		MirrorRules: rules,
	}

	backend := sqlite.NewBackend(logger)
	if err := backend.Attach(cfg); err != nil {
		return nil, "", fmt.Errorf("attach backend: %w", err)
	}

	return backend, dataDir, nil
}

// openSession attaches the backend and builds the planning session over
// it. The caller must defer backend.Detach().
func openSession() (*planner.Session, *sqlite.Backend, error) {
	backend, dataDir, err := attachBackend()
	if err != nil {
		return nil, nil, err
	}

	session, err := planner.NewSession(backend, dataDir, logger)
	if err != nil {
		backend.Detach()
		return nil, nil, fmt.Errorf("open session: %w", err)
	}
	return session, backend, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printTable renders rows through a tabwriter, trimming trailing spaces.
func printTable(header []string, rows [][]string) {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(header, "\t"))
	underline := make([]string, len(header))
	for i, h := range header {
		underline[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(w, strings.Join(underline, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
}

// fail prints the error and exits with the given code.
func fail(code int, context string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", context, err)
	os.Exit(code)
}

// formatDeficits renders a shopping list for human output.
func formatDeficits(deficits []types.Deficit) {
	if len(deficits) == 0 {
		fmt.Println("Pantry covers everything. Nothing to buy.")
		return
	}
	rows := make([][]string, 0, len(deficits))
	for _, d := range deficits {
		rows = append(rows, []string{
			d.Item,
			string(d.Unit),
			fmt.Sprintf("%d", d.Need),
			fmt.Sprintf("%d", d.Have),
			fmt.Sprintf("%d", d.Buy),
		})
	}
	printTable([]string{"ITEM", "UNIT", "NEED", "HAVE", "BUY"}, rows)
}
