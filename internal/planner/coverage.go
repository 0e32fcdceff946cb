package planner

import (
	"fmt"
	"sort"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

// Suggestion pairs an eligible recipe with the fraction of its
// requirement lines the current pantry fully covers.
type Suggestion struct {
	Recipe   *types.Recipe `json:"recipe"`
	Coverage float64       `json:"coverage"`
}

// Suggest ranks the eligible dishes by pantry coverage, best first, ties
// broken by total time then name, and returns up to k of them. Dishes
// with zero coverage are dropped; a dish with no requirements counts as
// fully covered.
func (s *Session) Suggest(k int) ([]Suggestion, error) {
	catalog, err := s.store.Catalog()
	if err != nil {
		return nil, err
	}
	eligible, err := catalog.Eligible(s.constraints)
	if err != nil {
		return nil, fmt.Errorf("resolving eligible dishes: %w", err)
	}
	snap, err := s.ledger.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("snapshotting pantry: %w", err)
	}

	var out []Suggestion
	for _, r := range eligible {
		score := coverage(Requirements(r), snap)
		if score <= 0 {
			continue
		}
		out = append(out, Suggestion{Recipe: r, Coverage: score})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Coverage != out[j].Coverage {
			return out[i].Coverage > out[j].Coverage
		}
		ti, tj := out[i].Recipe.TotalTime(), out[j].Recipe.TotalTime()
		if ti != tj {
			return ti < tj
		}
		return out[i].Recipe.Name < out[j].Recipe.Name
	})
	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out, nil
}

// coverage is the fraction of aggregated requirement identities the
// snapshot fully satisfies.
func coverage(lines []types.RequirementLine, snap map[types.CanonicalIdentity]int64) float64 {
	need := totalNeed(lines)
	if len(need) == 0 {
		return 1
	}
	covered := 0
	for id, qty := range need {
		if snap[id] >= qty {
			covered++
		}
	}
	return float64(covered) / float64(len(need))
}
