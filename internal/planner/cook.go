package planner

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

// CookRequest names the dish to cook, either explicitly or via a plan
// slot. An explicit Dish wins over the slot reference.
type CookRequest struct {
	Day  int    `json:"day,omitempty"`
	Meal string `json:"meal,omitempty"`
	Dish string `json:"dish,omitempty"`
}

// CookResult reports what a cook transaction actually consumed and what
// it could not: used is what the pantry held, missing is the remainder of
// the requirement. used + missing always equals the dish's full cost.
type CookResult struct {
	Dish    string                  `json:"dish"`
	Used    []types.RequirementLine `json:"used,omitempty"`
	Missing []types.RequirementLine `json:"missing,omitempty"`
}

// Cook deducts one dish's requirements from the durable ledger, flooring
// each entry at zero. Partial availability still cooks: whatever is on
// hand is consumed and the shortfall is reported, not refused. The plan
// slot, if one was referenced, is left untouched.
func (s *Session) Cook(req CookRequest) (CookResult, error) {
	var res CookResult

	dish := strings.TrimSpace(req.Dish)
	if dish == "" {
		if req.Day <= 0 || req.Meal == "" {
			return res, types.ErrInvalidSlot
		}
		dish = s.plan.Slot(req.Day, strings.ToLower(strings.TrimSpace(req.Meal)))
		if dish == "" {
			return res, types.ErrSlotEmpty
		}
	}

	catalog, err := s.store.Catalog()
	if err != nil {
		return res, err
	}
	r, err := catalog.ByName(dish)
	if err != nil {
		return res, err
	}
	res.Dish = r.Name

	for _, line := range Requirements(r) {
		pre, err := s.ledger.Get(line.Item, string(line.Unit))
		if err != nil {
			return res, fmt.Errorf("reading pantry for %s: %w", line.Item, err)
		}
		qty := line.Quantity
		if _, err := s.ledger.Remove(line.Item, &qty, string(line.Unit)); err != nil {
			return res, fmt.Errorf("consuming %s: %w", line.Item, err)
		}
		post, err := s.ledger.Get(line.Item, string(line.Unit))
		if err != nil {
			return res, fmt.Errorf("reading pantry for %s: %w", line.Item, err)
		}

		used := pre - post
		if used > 0 {
			res.Used = append(res.Used, types.RequirementLine{Item: line.Item, Unit: line.Unit, Quantity: used})
		}
		if missing := line.Quantity - used; missing > 0 {
			res.Missing = append(res.Missing, types.RequirementLine{Item: line.Item, Unit: line.Unit, Quantity: missing})
		}
	}

	err = s.audit.Append(types.AuditEntry{
		Kind:    types.AuditCook,
		Dish:    res.Dish,
		Day:     req.Day,
		Meal:    req.Meal,
		Used:    res.Used,
		Missing: res.Missing,
	})
	if err != nil {
		s.logger.Warn("audit append failed", zap.Error(err))
	}
	return res, nil
}
