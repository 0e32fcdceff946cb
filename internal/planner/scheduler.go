package planner

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

// ScheduleRequest asks the scheduler to fill a horizon of meal slots.
type ScheduleRequest struct {
	// Days is the number of day indices to plan. For a continue call it is
	// the number of days appended after the plan's current maximum.
	Days int

	// Meals overrides the plan's meal slot names. Empty keeps the current
	// plan's slots (or the defaults on a fresh plan).
	Meals []string

	// Continue keeps the existing plan and shadow budget and extends the
	// horizon instead of starting over. Slots left open by an earlier
	// fail-fast stop come before the appended days in scheduling order,
	// so a continue that cannot cover the old stop point reports
	// Filled=0 without reaching the new days.
	Continue bool
}

// ScheduleResult reports how much of the requested horizon was filled.
type ScheduleResult struct {
	Filled    int  `json:"filled"`
	Attempted int  `json:"attempted"`
	Stopped   bool `json:"stopped"`
}

// slotRef is one (day, meal) position in scheduling order.
type slotRef struct {
	day  int
	meal string
}

// onceDish is an eligible dish coverable from the initial shadow state,
// carrying its precomputed requirement cost and scarcity score.
type onceDish struct {
	recipe    *types.Recipe
	lines     []types.RequirementLine
	tightness float64
}

// AutoPlan fills the unoccupied slots of the requested horizon under the
// session's constraints. In strict mode every assignment must be fully
// coverable from the shadow pantry at the moment it is made; planning
// stops at the first slot no eligible dish can cover. Freeform mode
// ignores the pantry entirely. The durable ledger is never touched.
func (s *Session) AutoPlan(req ScheduleRequest) (ScheduleResult, error) {
	var res ScheduleResult
	if req.Days <= 0 {
		return res, types.ErrInvalidDays
	}

	meals, err := normalizeMeals(req.Meals)
	if err != nil {
		return res, err
	}
	if len(meals) == 0 {
		if req.Continue && len(s.plan.Meals) > 0 {
			meals = s.plan.Meals
		} else {
			meals = defaultMeals()
		}
	}

	endDay := req.Days
	if req.Continue && s.plan.FilledCount() > 0 {
		endDay = s.plan.MaxDay() + req.Days
	} else {
		s.plan = types.NewPlan(meals)
		s.shadow = nil
	}
	s.plan.Meals = append([]string(nil), meals...)

	catalog, err := s.store.Catalog()
	if err != nil {
		return res, err
	}
	eligible, err := catalog.Eligible(s.constraints)
	if err != nil {
		return res, fmt.Errorf("resolving eligible dishes: %w", err)
	}

	// Slots to fill, day-major then meal-minor, skipping anything already
	// populated. Attempted counts the whole remaining horizon even when
	// planning stops early.
	var slots []slotRef
	for day := 1; day <= endDay; day++ {
		for _, meal := range meals {
			if s.plan.Slot(day, meal) == "" {
				slots = append(slots, slotRef{day: day, meal: meal})
			}
		}
	}
	res.Attempted = len(slots)

	switch types.NormalizeMode(s.constraints.Mode) {
	case types.ModeFreeform:
		res.Filled = s.fillFreeform(slots, eligible, meals)
	case types.ModePantryFirstStrict:
		filled, err := s.fillStrict(slots, eligible, meals)
		if err != nil {
			return res, err
		}
		res.Filled = filled
	default:
		return res, types.ErrInvalidMode
	}
	res.Stopped = res.Filled < res.Attempted

	if err := s.saveState(); err != nil {
		return res, err
	}
	s.logger.Debug("auto plan complete",
		zap.Int("filled", res.Filled),
		zap.Int("attempted", res.Attempted),
		zap.String("mode", types.NormalizeMode(s.constraints.Mode)))
	return res, nil
}

// fillFreeform assigns the first eligible dish to each open slot, honoring
// only the no-immediate-repeat rule. A slot with no admissible dish stays
// open without stopping the run.
func (s *Session) fillFreeform(slots []slotRef, eligible []*types.Recipe, meals []string) int {
	filled := 0
	for _, slot := range slots {
		prev := s.dishBefore(slot, meals)
		var pick *types.Recipe
		for _, r := range eligible {
			if !s.constraints.AllowRepeats && r.Name == prev {
				continue
			}
			pick = r
			break
		}
		if pick == nil {
			continue
		}
		_ = s.plan.SetSlot(slot.day, slot.meal, pick.Name)
		filled++
		s.recordAssignment(pick.Name, slot, types.PassFreeform)
	}
	return filled
}

// fillStrict runs the two-pass coverable scheduler against the shadow
// pantry. Pass 1 drains the once-coverable set in scarcity order; pass 2
// falls back to any eligible dish still coverable from the depleted
// shadow. The run stops at the first slot neither pass can fill.
func (s *Session) fillStrict(slots []slotRef, eligible []*types.Recipe, meals []string) (int, error) {
	if s.shadow == nil {
		shadow, err := NewShadow(s.ledger)
		if err != nil {
			return 0, fmt.Errorf("snapshotting pantry: %w", err)
		}
		s.shadow = shadow
	}

	costs := make(map[string][]types.RequirementLine, len(eligible))
	for _, r := range eligible {
		costs[r.Name] = Requirements(r)
	}
	once := onceCoverable(eligible, costs, s.shadow)

	consumed := make(map[string]bool, len(once))
	filled := 0
	for _, slot := range slots {
		prev := s.dishBefore(slot, meals)

		pick, pass := pickOnce(once, consumed, s.shadow, s.constraints.AllowRepeats, prev)
		if pick == nil {
			pick = pickFallback(eligible, costs, s.shadow, s.constraints.AllowRepeats, prev)
			pass = types.PassFallback
		}
		if pick == nil {
			s.logger.Debug("no coverable dish, stopping",
				zap.Int("day", slot.day), zap.String("meal", slot.meal))
			break
		}

		_ = s.plan.SetSlot(slot.day, slot.meal, pick.Name)
		s.shadow.Deduct(costs[pick.Name])
		filled++
		s.recordAssignment(pick.Name, slot, pass)
	}
	return filled, nil
}

// onceCoverable selects the eligible dishes fully coverable from the
// initial shadow state and orders them tightest first, breaking ties by
// total time then name.
func onceCoverable(eligible []*types.Recipe, costs map[string][]types.RequirementLine, shadow ShadowPantry) []onceDish {
	var once []onceDish
	for _, r := range eligible {
		lines := costs[r.Name]
		if !shadow.Covers(lines) {
			continue
		}
		once = append(once, onceDish{
			recipe:    r,
			lines:     lines,
			tightness: shadow.Tightness(lines),
		})
	}
	sort.SliceStable(once, func(i, j int) bool {
		if once[i].tightness != once[j].tightness {
			return once[i].tightness < once[j].tightness
		}
		ti, tj := once[i].recipe.TotalTime(), once[j].recipe.TotalTime()
		if ti != tj {
			return ti < tj
		}
		return once[i].recipe.Name < once[j].recipe.Name
	})
	return once
}

// pickOnce takes the tightest unconsumed once-coverable dish that is still
// coverable from the depleted shadow and admissible under the repeat rule.
func pickOnce(once []onceDish, consumed map[string]bool, shadow ShadowPantry, allowRepeats bool, prev string) (*types.Recipe, int) {
	for _, od := range once {
		if consumed[od.recipe.Name] {
			continue
		}
		if !allowRepeats && od.recipe.Name == prev {
			continue
		}
		if !shadow.Covers(od.lines) {
			continue
		}
		consumed[od.recipe.Name] = true
		return od.recipe, types.PassOnceCoverable
	}
	return nil, 0
}

// pickFallback scans the full eligible set for any dish the depleted
// shadow still covers, once-coverable membership no longer required.
func pickFallback(eligible []*types.Recipe, costs map[string][]types.RequirementLine, shadow ShadowPantry, allowRepeats bool, prev string) *types.Recipe {
	for _, r := range eligible {
		if !allowRepeats && r.Name == prev {
			continue
		}
		if !shadow.Covers(costs[r.Name]) {
			continue
		}
		return r
	}
	return nil
}

// normalizeMeals lowercases and trims the requested meal slot names. An
// explicit list with a blank or duplicate name is rejected; an empty list
// passes through for the caller to default.
func normalizeMeals(meals []string) ([]string, error) {
	if len(meals) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(meals))
	seen := make(map[string]bool, len(meals))
	for _, m := range meals {
		m = strings.ToLower(strings.TrimSpace(m))
		if m == "" || seen[m] {
			return nil, types.ErrInvalidMeals
		}
		seen[m] = true
		out = append(out, m)
	}
	return out, nil
}

// dishBefore returns the dish occupying the slot immediately preceding
// the given one in day-major, meal-minor order, or "" at the start of the
// horizon or after an open slot.
func (s *Session) dishBefore(slot slotRef, meals []string) string {
	idx := -1
	for i, meal := range meals {
		if meal == slot.meal {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ""
	}
	if idx > 0 {
		return s.plan.Slot(slot.day, meals[idx-1])
	}
	if slot.day > 1 && len(meals) > 0 {
		return s.plan.Slot(slot.day-1, meals[len(meals)-1])
	}
	return ""
}

// recordAssignment appends an assignment entry to the audit log. Audit
// failures are logged and swallowed; the plan itself is already durable.
func (s *Session) recordAssignment(dish string, slot slotRef, pass int) {
	err := s.audit.Append(types.AuditEntry{
		Kind: types.AuditAssignment,
		Dish: dish,
		Day:  slot.day,
		Meal: slot.meal,
		Pass: pass,
	})
	if err != nil {
		s.logger.Warn("audit append failed", zap.Error(err))
	}
}
