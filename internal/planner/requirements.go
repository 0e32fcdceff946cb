package planner

import (
	"github.com/prakashnalubolu/meal-prep/internal/canon"
	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

// Requirements resolves a recipe's ingredient list into canonical
// requirement lines, dropping blank names and non-positive quantities.
// The scheduler, deficit calculator, and cook transaction all resolve
// through this function so they agree on what a dish costs.
func Requirements(r *types.Recipe) []types.RequirementLine {
	var out []types.RequirementLine
	for _, ing := range r.Ingredients {
		name := canon.Name(ing.Item)
		if name == "" || ing.Quantity <= 0 {
			continue
		}
		qty, fam := canon.Quantity(ing.Quantity, ing.Unit)
		out = append(out, types.RequirementLine{Item: name, Unit: fam, Quantity: qty})
	}
	return out
}

// totalNeed aggregates requirement lines by canonical identity.
func totalNeed(lines []types.RequirementLine) map[types.CanonicalIdentity]int64 {
	need := make(map[types.CanonicalIdentity]int64, len(lines))
	for _, l := range lines {
		need[l.Identity()] += l.Quantity
	}
	return need
}
