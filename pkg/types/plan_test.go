package types

import (
	"reflect"
	"testing"
)

func TestPlanSetSlot(t *testing.T) {
	p := NewPlan([]string{"lunch", "dinner"})

	if err := p.SetSlot(1, "lunch", "Jeera Rice"); err != nil {
		t.Fatalf("SetSlot failed: %v", err)
	}
	if got := p.Slot(1, "lunch"); got != "Jeera Rice" {
		t.Errorf("Slot(1, lunch) = %q", got)
	}

	// Clearing removes the slot and empty days disappear.
	if err := p.SetSlot(1, "lunch", ""); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if got := p.Slot(1, "lunch"); got != "" {
		t.Errorf("cleared slot still holds %q", got)
	}
	if p.MaxDay() != 0 {
		t.Errorf("MaxDay = %d after clearing the only slot", p.MaxDay())
	}

	if err := p.SetSlot(0, "lunch", "x"); err != ErrInvalidSlot {
		t.Errorf("day 0: expected ErrInvalidSlot, got %v", err)
	}
	if err := p.SetSlot(1, "", "x"); err != ErrInvalidSlot {
		t.Errorf("empty meal: expected ErrInvalidSlot, got %v", err)
	}
}

func TestPlanFilledDishesOrder(t *testing.T) {
	p := NewPlan([]string{"breakfast", "lunch", "dinner"})
	p.SetSlot(2, "dinner", "D2")
	p.SetSlot(1, "dinner", "D1")
	p.SetSlot(2, "breakfast", "B2")
	p.SetSlot(1, "breakfast", "B1")

	want := []string{"B1", "D1", "B2", "D2"}
	if got := p.FilledDishes(); !reflect.DeepEqual(got, want) {
		t.Errorf("FilledDishes = %v, want %v", got, want)
	}
	if p.FilledCount() != 4 {
		t.Errorf("FilledCount = %d", p.FilledCount())
	}
	if p.MaxDay() != 2 {
		t.Errorf("MaxDay = %d", p.MaxDay())
	}
}

func TestPlanClone(t *testing.T) {
	p := NewPlan([]string{"lunch"})
	p.SetSlot(1, "lunch", "Pad Thai")

	cp := p.Clone()
	cp.SetSlot(1, "lunch", "Chana Masala")

	if got := p.Slot(1, "lunch"); got != "Pad Thai" {
		t.Errorf("clone mutation leaked into original: %q", got)
	}
}
