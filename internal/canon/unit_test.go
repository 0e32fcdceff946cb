package canon

import (
	"testing"

	"github.com/prakashnalubolu/meal-prep/pkg/types"
)

func TestQuantity(t *testing.T) {
	cases := []struct {
		qty     int64
		unit    string
		wantQty int64
		wantFam types.UnitFamily
	}{
		{1, "kilo", 1000, types.UnitGram},
		{2, "kg", 2000, types.UnitGram},
		{500, "g", 500, types.UnitGram},
		{500, "grams", 500, types.UnitGram},
		{1, "l", 1000, types.UnitMilli},
		{2, "litres", 2000, types.UnitMilli},
		{250, "ml", 250, types.UnitMilli},
		{3, "count", 3, types.UnitCount},
		{3, "pcs", 3, types.UnitCount},
		{3, "Pieces", 3, types.UnitCount},
		{3, "bunch", 3, types.UnitCount},
		{3, "", 3, types.UnitCount},
	}
	for _, tc := range cases {
		gotQty, gotFam := Quantity(tc.qty, tc.unit)
		if gotQty != tc.wantQty || gotFam != tc.wantFam {
			t.Errorf("Quantity(%d, %q) = (%d, %s), want (%d, %s)",
				tc.qty, tc.unit, gotQty, gotFam, tc.wantQty, tc.wantFam)
		}
	}
}

func TestIdentity(t *testing.T) {
	a := Identity("Tomatoes", "count")
	b := Identity("tomato", "pcs")
	if a != b {
		t.Errorf("identities differ: %v vs %v", a, b)
	}

	c := Identity("rice", "kg")
	if c.Unit != types.UnitGram {
		t.Errorf("kg should fold to the gram family, got %s", c.Unit)
	}
}
