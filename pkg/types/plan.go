package types

import "sort"

// Plan maps day index (1-based) to meal name to dish name. A missing or
// empty value means the slot is unfilled. Plans are created and extended
// only by the scheduler or an explicit manual slot write.
type Plan struct {
	Meals []string                  `json:"meals"`
	Days  map[int]map[string]string `json:"days"`
}

// NewPlan returns an empty plan with the given meal slot names in
// scheduling order.
func NewPlan(meals []string) *Plan {
	return &Plan{
		Meals: append([]string(nil), meals...),
		Days:  make(map[int]map[string]string),
	}
}

// Slot returns the dish occupying (day, meal), or "" when unfilled.
func (p *Plan) Slot(day int, meal string) string {
	if p == nil || p.Days == nil {
		return ""
	}
	return p.Days[day][meal]
}

// SetSlot writes a dish into (day, meal). An empty dish clears the slot.
// Returns ErrInvalidSlot for a non-positive day or empty meal name.
func (p *Plan) SetSlot(day int, meal, dish string) error {
	if day <= 0 || meal == "" {
		return ErrInvalidSlot
	}
	if p.Days == nil {
		p.Days = make(map[int]map[string]string)
	}
	if dish == "" {
		if slots, ok := p.Days[day]; ok {
			delete(slots, meal)
			if len(slots) == 0 {
				delete(p.Days, day)
			}
		}
		return nil
	}
	if p.Days[day] == nil {
		p.Days[day] = make(map[string]string)
	}
	p.Days[day][meal] = dish
	return nil
}

// MaxDay returns the highest day index holding at least one filled slot,
// or 0 for an empty plan.
func (p *Plan) MaxDay() int {
	max := 0
	for day, slots := range p.Days {
		if len(slots) > 0 && day > max {
			max = day
		}
	}
	return max
}

// FilledCount returns the number of non-empty slots.
func (p *Plan) FilledCount() int {
	n := 0
	for _, slots := range p.Days {
		for _, dish := range slots {
			if dish != "" {
				n++
			}
		}
	}
	return n
}

// FilledDishes returns every filled slot's dish name in deterministic
// day-major, meal-minor order. Meals not listed in p.Meals (from manual
// writes) follow in sorted order.
func (p *Plan) FilledDishes() []string {
	var out []string
	for _, day := range p.SortedDays() {
		for _, meal := range p.mealOrder(day) {
			if dish := p.Days[day][meal]; dish != "" {
				out = append(out, dish)
			}
		}
	}
	return out
}

// SortedDays returns the day indices that hold slots, ascending.
func (p *Plan) SortedDays() []int {
	days := make([]int, 0, len(p.Days))
	for day := range p.Days {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// mealOrder returns the meal names present on a day: declared slot names
// first in plan order, then any stray manual names sorted.
func (p *Plan) mealOrder(day int) []string {
	slots := p.Days[day]
	declared := make(map[string]bool, len(p.Meals))
	var out []string
	for _, meal := range p.Meals {
		declared[meal] = true
		if _, ok := slots[meal]; ok {
			out = append(out, meal)
		}
	}
	var extra []string
	for meal := range slots {
		if !declared[meal] {
			extra = append(extra, meal)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

// Clone returns a deep copy of the plan.
func (p *Plan) Clone() *Plan {
	cp := NewPlan(p.Meals)
	for day, slots := range p.Days {
		for meal, dish := range slots {
			_ = cp.SetSlot(day, meal, dish)
		}
	}
	return cp
}
