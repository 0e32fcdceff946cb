package planner

import (
	"math"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

// ShadowPantry is a disposable in-memory copy of the ledger's canonical
// quantities, used to simulate consumption during planning without
// touching durable state. It is private to one scheduling call chain and
// never persisted.
type ShadowPantry map[types.CanonicalIdentity]int64

// NewShadow snapshots the ledger into a fresh shadow pantry.
func NewShadow(ledger types.Ledger) (ShadowPantry, error) {
	snap, err := ledger.Snapshot()
	if err != nil {
		return nil, err
	}
	return ShadowPantry(snap), nil
}

// Covers reports whether every requirement line is fully satisfiable from
// the shadow's current state. Lines sharing an identity are aggregated
// before the comparison.
func (s ShadowPantry) Covers(lines []types.RequirementLine) bool {
	for id, need := range totalNeed(lines) {
		if s[id] < need {
			return false
		}
	}
	return true
}

// Deduct consumes the requirement lines from the shadow, flooring at zero
// and deleting entries that reach it.
func (s ShadowPantry) Deduct(lines []types.RequirementLine) {
	for id, need := range totalNeed(lines) {
		rest := s[id] - need
		if rest <= 0 {
			delete(s, id)
			continue
		}
		s[id] = rest
	}
}

// Tightness scores a dish's scarcity against the shadow: the minimum
// have/need ratio over its requirement lines. Lower means closer to
// infeasible, so the dish should be scheduled before shared ingredients
// are consumed by other choices. A dish with no requirements is never
// tight.
func (s ShadowPantry) Tightness(lines []types.RequirementLine) float64 {
	tightness := math.Inf(1)
	for id, need := range totalNeed(lines) {
		ratio := float64(s[id]) / float64(need)
		if ratio < tightness {
			tightness = ratio
		}
	}
	return tightness
}
