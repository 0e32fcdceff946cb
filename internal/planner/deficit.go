package planner

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

// Deficits computes the shopping list for a plan: the shortfall between
// the plan's aggregated requirements and the real ledger, per canonical
// identity. Pure read; neither the plan nor the ledger is modified.
// Dishes that have vanished from the catalog since planning are skipped.
func Deficits(plan *types.Plan, ledger types.Ledger, catalog types.Catalog, logger *zap.Logger) ([]types.Deficit, error) {
	need := make(map[types.CanonicalIdentity]int64)
	for _, dish := range plan.FilledDishes() {
		r, err := catalog.ByName(dish)
		if errors.Is(err, types.ErrDishNotFound) {
			logger.Warn("planned dish missing from catalog", zap.String("dish", dish))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("resolving dish %q: %w", dish, err)
		}
		for id, qty := range totalNeed(Requirements(r)) {
			need[id] += qty
		}
	}
	return shortfall(need, ledger)
}

// SingleDishDeficits computes the shortfall for cooking one dish right
// now, independent of any plan.
func SingleDishDeficits(dish string, ledger types.Ledger, catalog types.Catalog) ([]types.Deficit, error) {
	r, err := catalog.ByName(dish)
	if err != nil {
		return nil, err
	}
	return shortfall(totalNeed(Requirements(r)), ledger)
}

// shortfall compares aggregated needs against the ledger and returns the
// underfunded identities sorted by item then unit.
func shortfall(need map[types.CanonicalIdentity]int64, ledger types.Ledger) ([]types.Deficit, error) {
	ids := make([]types.CanonicalIdentity, 0, len(need))
	for id := range need {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Name != ids[j].Name {
			return ids[i].Name < ids[j].Name
		}
		return ids[i].Unit < ids[j].Unit
	})

	var out []types.Deficit
	for _, id := range ids {
		have, err := ledger.Get(id.Name, string(id.Unit))
		if err != nil {
			return nil, fmt.Errorf("reading pantry for %s: %w", id.Name, err)
		}
		if have >= need[id] {
			continue
		}
		out = append(out, types.Deficit{
			Item: id.Name,
			Unit: id.Unit,
			Need: need[id],
			Have: have,
			Buy:  need[id] - have,
		})
	}
	return out, nil
}
