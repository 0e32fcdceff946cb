package canon

import "testing"

func TestName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Tomatoes", "tomato"},
		{"tomato", "tomato"},
		{"green chilli", "green chili"},
		{"Green Chilies", "green chili"},
		{"chillies", "chili"},
		{"spring onions", "spring onion"},
		{"scallions", "spring onion"},
		{"coriander leaves", "coriander leaf"},
		{"cilantro", "coriander leaf"},
		{"Fresh Coriander Leaves (chopped)", "coriander leaf"},
		{"curry leaves", "curry leaf"},
		{"cooked rice", "cooked rice"},
		{"steamed rice", "steamed rice"},
		{"rice", "rice"},
		{"rice noodles", "rice noodle"},
		{"ground chicken", "ground chicken"},
		{"boneless chicken", "chicken"},
		{"fish sauce", "fish sauce"},
		{"soy sauce", "soy sauce"},
		{"eggs", "egg"},
		{"large eggs", "egg"},
		{"olive oil", "olive oil"},
		{"thai basil", "thai basil"},
		{"dry chickpeas", "chickpea"},
		{"cheeses", "cheese"},
		{"houses", "house"},
		{"classes", "class"},
		{"radishes", "radish"},
		{"  Paneer  ", "paneer"},
		{"", ""},
		{"(chopped)", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := Name(tc.in); got != tc.want {
				t.Errorf("Name(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

// Canonical names must be fixed points: re-canonicalizing any output
// returns it unchanged. The word list deliberately includes vowel-stem
// "ses" plurals (cheeses, houses), which a naive "es" strip turns into
// non-fixed-points (cheeses -> chees -> chee).
func TestNameIdempotent(t *testing.T) {
	inputs := []string{
		"Tomatoes", "green chillies", "spring onions", "cilantro",
		"cooked rice", "rice noodles", "ground beef", "fish sauce",
		"curry leaves", "large ripe bananas",
		"cheeses", "houses", "classes", "molasses", "buses",
		"radishes", "peaches", "boxes", "potatoes", "berries",
		"cream cheese", "cottage cheeses",
	}
	for _, in := range inputs {
		once := Name(in)
		twice := Name(once)
		if once != twice {
			t.Errorf("Name not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}
