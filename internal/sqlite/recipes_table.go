// Recipe catalog accessor. The catalog is collaborator-owned data: the
// planning core only resolves and filters it; Put exists for seeding and
// imports.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

// Compile-time interface check.
var _ types.Catalog = (*recipeTable)(nil)

type recipeTable struct {
	backend *Backend
}

// ByName returns the recipe with the given name, case-insensitively.
func (rt *recipeTable) ByName(name string) (*types.Recipe, error) {
	rt.backend.mu.RLock()
	defer rt.backend.mu.RUnlock()
	if !rt.backend.attached {
		return nil, types.ErrStoreDetached
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, types.ErrDishNotFound
	}
	row := rt.backend.db.QueryRow(
		`SELECT name, cuisine, diet, prep_time_min, cook_time_min, ingredients, steps
		 FROM recipes WHERE lower(name) = lower(?)`, name)
	r, err := hydrateRecipe(row.Scan)
	if err == sql.ErrNoRows {
		return nil, types.ErrDishNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting recipe %q: %w", name, err)
	}
	return r, nil
}

// Eligible returns the recipes passing the constraints' cuisine, diet,
// and max-time filters in stable (name, cuisine) order. Cuisine and time
// filter in SQL; diet filters in Go where the alias folding lives.
func (rt *recipeTable) Eligible(c types.Constraints) ([]*types.Recipe, error) {
	rt.backend.mu.RLock()
	defer rt.backend.mu.RUnlock()
	if !rt.backend.attached {
		return nil, types.ErrStoreDetached
	}

	query := `SELECT name, cuisine, diet, prep_time_min, cook_time_min, ingredients, steps
		 FROM recipes`
	var conds []string
	var args []any
	if c.Cuisine != "" {
		conds = append(conds, "lower(cuisine) = lower(?)")
		args = append(args, c.Cuisine)
	}
	if c.MaxTime > 0 {
		conds = append(conds, "prep_time_min + cook_time_min <= ?")
		args = append(args, c.MaxTime)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY name, cuisine"

	recipes, err := rt.fetch(query, args...)
	if err != nil {
		return nil, err
	}

	if c.Diet == "" {
		return recipes, nil
	}
	var out []*types.Recipe
	for _, r := range recipes {
		if types.DietAllows(r.Diet, c.Diet) {
			out = append(out, r)
		}
	}
	return out, nil
}

// List returns every recipe in stable (name, cuisine) order.
func (rt *recipeTable) List() ([]*types.Recipe, error) {
	rt.backend.mu.RLock()
	defer rt.backend.mu.RUnlock()
	if !rt.backend.attached {
		return nil, types.ErrStoreDetached
	}
	return rt.fetch(`SELECT name, cuisine, diet, prep_time_min, cook_time_min, ingredients, steps
		 FROM recipes ORDER BY name, cuisine`)
}

// Put stores a recipe keyed by name, replacing any existing definition,
// and persists recipes.jsonl before committing.
func (rt *recipeTable) Put(r *types.Recipe) error {
	if r == nil {
		return types.ErrInvalidData
	}
	if err := r.Validate(); err != nil {
		return err
	}

	rt.backend.mu.Lock()
	defer rt.backend.mu.Unlock()
	if !rt.backend.attached {
		return types.ErrStoreDetached
	}

	ingredients, err := json.Marshal(r.Ingredients)
	if err != nil {
		return fmt.Errorf("marshaling ingredients: %w", err)
	}
	steps, err := json.Marshal(r.Steps)
	if err != nil {
		return fmt.Errorf("marshaling steps: %w", err)
	}

	tx, err := rt.backend.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO recipes (name, cuisine, diet, prep_time_min, cook_time_min, ingredients, steps)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   cuisine = excluded.cuisine, diet = excluded.diet,
		   prep_time_min = excluded.prep_time_min, cook_time_min = excluded.cook_time_min,
		   ingredients = excluded.ingredients, steps = excluded.steps`,
		r.Name, r.Cuisine, r.Diet, r.PrepTimeMin, r.CookTimeMin,
		string(ingredients), string(steps)); err != nil {
		return fmt.Errorf("persisting recipe %q: %w", r.Name, err)
	}

	records, err := recipeRecords(tx)
	if err != nil {
		return err
	}
	path := filepath.Join(rt.backend.config.DataDir, recipesFile)
	if err := writeJSONL(path, records); err != nil {
		return err
	}
	return tx.Commit()
}

// fetch runs a recipe query and hydrates the rows.
func (rt *recipeTable) fetch(query string, args ...any) ([]*types.Recipe, error) {
	rows, err := rt.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying recipes: %w", err)
	}
	defer rows.Close()

	var recipes []*types.Recipe
	for rows.Next() {
		r, err := hydrateRecipe(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning recipe row: %w", err)
		}
		recipes = append(recipes, r)
	}
	return recipes, rows.Err()
}

// hydrateRecipe scans one row into a Recipe, decoding the JSON columns.
func hydrateRecipe(scan func(dest ...any) error) (*types.Recipe, error) {
	var r types.Recipe
	var ingredients, steps string
	if err := scan(&r.Name, &r.Cuisine, &r.Diet, &r.PrepTimeMin, &r.CookTimeMin,
		&ingredients, &steps); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(ingredients), &r.Ingredients); err != nil {
		return nil, fmt.Errorf("decoding ingredients: %w", err)
	}
	if err := json.Unmarshal([]byte(steps), &r.Steps); err != nil {
		return nil, fmt.Errorf("decoding steps: %w", err)
	}
	return &r, nil
}

// recipeRecords marshals the full catalog state visible to tx.
func recipeRecords(tx *sql.Tx) ([]json.RawMessage, error) {
	rows, err := tx.Query(`SELECT name, cuisine, diet, prep_time_min, cook_time_min, ingredients, steps
		 FROM recipes ORDER BY name, cuisine`)
	if err != nil {
		return nil, fmt.Errorf("querying recipes: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		r, err := hydrateRecipe(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning recipe row: %w", err)
		}
		rec, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("marshaling recipe: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// loadRecipesJSONL hydrates the recipes table from recipes.jsonl.
func (b *Backend) loadRecipesJSONL() error {
	records, err := readJSONL(filepath.Join(b.config.DataDir, recipesFile))
	if err != nil {
		return err
	}
	for _, rec := range records {
		var r types.Recipe
		if err := json.Unmarshal(rec, &r); err != nil {
			continue
		}
		if r.Name == "" {
			continue
		}
		ingredients, err := json.Marshal(r.Ingredients)
		if err != nil {
			continue
		}
		steps, err := json.Marshal(r.Steps)
		if err != nil {
			continue
		}
		if _, err := b.db.Exec(
			`INSERT INTO recipes (name, cuisine, diet, prep_time_min, cook_time_min, ingredients, steps)
			 VALUES (?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(name) DO UPDATE SET
			   cuisine = excluded.cuisine, diet = excluded.diet,
			   prep_time_min = excluded.prep_time_min, cook_time_min = excluded.cook_time_min,
			   ingredients = excluded.ingredients, steps = excluded.steps`,
			r.Name, r.Cuisine, r.Diet, r.PrepTimeMin, r.CookTimeMin,
			string(ingredients), string(steps)); err != nil {
			return fmt.Errorf("loading recipe %q: %w", r.Name, err)
		}
	}
	return nil
}
