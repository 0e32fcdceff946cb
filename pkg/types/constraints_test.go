package types

import "testing"

func TestNormalizeDiet(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"veg", DietVeg},
		{"Vegetarian", DietVeg},
		{"eggetarian", DietEggtarian},
		{"ovo vegetarian", DietEggtarian},
		{"non veg", DietNonVeg},
		{"NON-VEGETARIAN", DietNonVeg},
		{"pescatarian", "pescatarian"},
		{"", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := NormalizeDiet(tc.in); got != tc.want {
				t.Errorf("NormalizeDiet(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDietAllows(t *testing.T) {
	cases := []struct {
		recipe string
		wanted string
		want   bool
	}{
		{DietVeg, DietVeg, true},
		{DietVeg, DietEggtarian, true},
		{DietVeg, DietNonVeg, true},
		{DietEggtarian, DietVeg, false},
		{DietEggtarian, DietNonVeg, true},
		{DietNonVeg, DietEggtarian, false},
		{DietNonVeg, "", true},
		{"pescatarian", "pescatarian", true},
		{"pescatarian", DietVeg, false},
	}
	for _, tc := range cases {
		if got := DietAllows(tc.recipe, tc.wanted); got != tc.want {
			t.Errorf("DietAllows(%q, %q) = %v, want %v", tc.recipe, tc.wanted, got, tc.want)
		}
	}
}

func TestNormalizeMode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"pantry_first_strict", ModePantryFirstStrict},
		{"pantry-first-strict", ModePantryFirstStrict},
		{"strict", ModePantryFirstStrict},
		{"Freeform", ModeFreeform},
		{"free-form", ModeFreeform},
		{"chaotic", "chaotic"},
	}
	for _, tc := range cases {
		if got := NormalizeMode(tc.in); got != tc.want {
			t.Errorf("NormalizeMode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestConstraintsValidate(t *testing.T) {
	c := DefaultConstraints()
	if err := c.Validate(); err != nil {
		t.Fatalf("default constraints invalid: %v", err)
	}

	c.Mode = "chaotic"
	if err := c.Validate(); err != ErrInvalidMode {
		t.Errorf("expected ErrInvalidMode, got %v", err)
	}

	c = DefaultConstraints()
	c.MaxTime = -5
	if err := c.Validate(); err != ErrInvalidQuantity {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}
}
